// Package operators defines the operator table of the countdown engine: the
// four binary operators, the "human effort" cost model that ranks solutions,
// and the canonical-source rules used to collapse equivalent formulas.
//
// Operators:
//
//   - Add       a ≥ b                  a + b   min(AC(a), AC(b))
//   - Subtract  a > b                  a − b   10 × min(AC(a), AC(b))
//   - Multiply  a ≥ b                  a × b   30 × (MC(a) + MC(b))
//   - Divide    b ≠ 0 and b divides a  a ÷ b   1 if a == b, else
//     100 × min(MC(a)+MC(b), MC(a)+2·MC(r), MC(b)+2·MC(r))
//
// where AC is AddComplexity and MC is MulComplexity. Add and Multiply also
// refuse operands whose result would overflow int.
//
// The support predicates fix a canonical operand order (a ≥ b), so the
// symmetric pair of a commutative operator is never explored twice.
//
// Canonical sources:
//
// Each operator judges, via AllowsCanonicalSources, whether a pair of operand
// Origins is the preferred way to have produced a step. The rules prefer flat
// left folds and non-increasing right operands along a chain:
//
//	(a+b)+c   over  a+(b+c)          (a×b)×c   over  a×(b×c)
//	(a+b)−c   over  (a−c)+b          (a×b)÷c   over  (a÷c)×b
//	(a−b)−c   over  a−(b+c)          (a÷b)÷c   over  a÷(b×c)
//
// Dispatch is a switch over Kind; there are no predicate closures.
//
// Preconditions:
//
//   - Apply panics with ErrUnsupported when Supports(a, b) is false.
package operators
