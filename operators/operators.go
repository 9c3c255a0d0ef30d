package operators

import (
	"fmt"
	"math"
)

// Supports reports whether k may combine a and b in this order.
func (k Kind) Supports(a, b int) bool {
	switch k {
	case Add:
		return a >= b && !addOverflows(a, b)
	case Subtract:
		return a > b && !(b < 0 && a > math.MaxInt+b)
	case Multiply:
		return a >= b && !mulOverflows(a, b)
	case Divide:
		return b != 0 && a%b == 0 && !(a == math.MinInt && b == -1)
	}

	return false
}

// Apply returns the result of a k b. It panics with ErrUnsupported unless
// Supports(a, b) holds.
func (k Kind) Apply(a, b int) int {
	if !k.Supports(a, b) {
		panic(fmt.Errorf("%w: %d %s %d", ErrUnsupported, a, k, b))
	}

	return k.apply(a, b)
}

func (k Kind) apply(a, b int) int {
	switch k {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	default:
		return a / b
	}
}

// Difficulty returns the effort score of the step a k b.
func (k Kind) Difficulty(a, b int) int {
	switch k {
	case Add:
		return min(AddComplexity(a), AddComplexity(b))
	case Subtract:
		return min(AddComplexity(a), AddComplexity(b)) * 10
	case Multiply:
		return (MulComplexity(a) + MulComplexity(b)) * 30
	case Divide:
		if a == b {
			return 1
		}
		ca := MulComplexity(a)
		cb := MulComplexity(b)
		cr := MulComplexity(a / b)
		return min(ca+cb, ca+cr*2, cb+cr*2) * 100
	}

	return 0
}

// AllowsCanonicalSources reports whether producing this step from operands
// with origins a and b is the preferred form among its equivalents.
func (k Kind) AllowsCanonicalSources(a, b Origin) bool {
	switch k {
	case Add:
		// (a+b)+c over a+(b+c); (a+b)-c over (a-c)+b; a ≥ b ≥ c along the chain.
		if b.Op.Chain() == ChainAddition || a.Op == Subtract {
			return false
		}
		if a.Op == Add {
			return a.B >= b.Value
		}
	case Subtract:
		if b.Op.Chain() == ChainAddition {
			return false
		}
		if a.Op == Subtract {
			return a.B >= b.Value
		}
	case Multiply:
		if b.Op.Chain() == ChainMultiplication || a.Op == Divide {
			return false
		}
		if a.Op == Multiply {
			return a.B >= b.Value
		}
	case Divide:
		return b.Op.Chain() != ChainMultiplication
	default:
		return false
	}

	return true
}

// Parse is the inverse of Name for every operator in t.
func (t Table) Parse(name string) (Kind, error) {
	k, err := Parse(name)
	if err != nil {
		return None, err
	}
	for _, op := range t {
		if op == k {
			return k, nil
		}
	}

	return None, fmt.Errorf("%w: %q not in table", ErrUnknownOperator, name)
}

func addOverflows(a, b int) bool {
	if b > 0 {
		return a > math.MaxInt-b
	}

	return a < math.MinInt-b
}

func mulOverflows(a, b int) bool {
	if a == 0 || b == 0 {
		return false
	}
	r := a * b
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return true
	}

	return r/b != a
}
