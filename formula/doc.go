// Package formula models search results: Actions (single reduction steps with
// provenance) and Formulas (validated, linear sequences of Actions).
//
// Provenance DAG:
//
//   - An Action's Prev lists every alternative Action that produced the state
//     it was applied to. Several histories can reach the same remaining
//     multiset, so Prev is a branch point and the provenance forms a DAG
//     rather than a tree. A nil Prev means the operands came straight from
//     the inputs.
//   - Actions are immutable once built and are shared by every Formula that
//     expands through them.
//   - Expand(last) walks the DAG depth-first and returns one linear Formula
//     per path, accumulating the summed difficulty on the way down.
//
// Minimality:
//
// IsMinimal applies two independent checks; both must pass.
//
//  1. No unnecessary steps. A backward demand pass starts from the final
//     result, consuming inputs before actions. Any action left unconsumed
//     produced a value nobody used.
//  2. Canonical ordering. A forward pass retires actions whose operands can
//     be matched to two distinct available values in a way the operator
//     judges canonical (operators.Kind.AllowsCanonicalSources). Any action
//     left unmatched means an equivalent, canonically ordered Formula exists.
//
// A Formula with no actions (the target is one of the inputs) is minimal.
//
// Serialization:
//
// Flat is the wire form {actions:[{a,b,op,r}], difficulty}. The operator is
// carried by display name and mapped back through operators.Parse.
package formula
