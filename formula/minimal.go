package formula

import (
	"slices"

	"github.com/katalvlaran/countdown/operators"
)

// IsMinimal reports whether f uses every step it computes and orders them
// canonically, given the inputs it was derived from.
func (f Formula) IsMinimal(inputs []int) bool {
	if len(f.Actions) == 0 {
		return true
	}

	return !hasUnnecessarySteps(f.Actions, inputs) && !hasNoncanonicalOrdering(f.Actions, inputs)
}

// hasUnnecessarySteps runs the backward demand pass.
func hasUnnecessarySteps(actions []*Action, inputs []int) bool {
	steps := slices.Clone(actions)
	required := []int{steps[len(steps)-1].Result()}
	available := slices.Clone(inputs)

	for len(required) > 0 {
		target := required[len(required)-1]
		required = required[:len(required)-1]

		if i := slices.Index(available, target); i >= 0 {
			available = slices.Delete(available, i, i+1)
			continue
		}
		for i, s := range steps {
			if s.Result() == target {
				required = append(required, s.A, s.B)
				steps = slices.Delete(steps, i, i+1)
				break
			}
		}
	}

	return len(steps) > 0
}

// hasNoncanonicalOrdering runs the forward canonical-consumption pass.
func hasNoncanonicalOrdering(actions []*Action, inputs []int) bool {
	values := make([]operators.Origin, len(inputs))
	for i, v := range inputs {
		values[i] = operators.Input(v)
	}

	remaining := slices.Clone(actions)
	for progress := true; progress && len(remaining) > 0; {
		progress = false
		for i, a := range remaining {
			ia, ib, ok := canonicalSources(a, values)
			if !ok {
				continue
			}
			values = retire(values, ia, ib)
			values = append(values, a.Origin())
			remaining = slices.Delete(remaining, i, i+1)
			progress = true
			break
		}
	}

	return len(remaining) > 0
}

// canonicalSources finds two distinct available values matching a's
// operands in a combination a's operator accepts.
func canonicalSources(a *Action, values []operators.Origin) (int, int, bool) {
	for ia, va := range values {
		if va.Value != a.A {
			continue
		}
		for ib, vb := range values {
			if ib != ia && vb.Value == a.B && a.Op.AllowsCanonicalSources(va, vb) {
				return ia, ib, true
			}
		}
	}

	return 0, 0, false
}

// retire drops the values at indices i and j, preserving order.
func retire(values []operators.Origin, i, j int) []operators.Origin {
	out := values[:0:0]
	for k, v := range values {
		if k != i && k != j {
			out = append(out, v)
		}
	}

	return out
}
