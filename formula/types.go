package formula

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/countdown/operators"
)

// Sentinel errors returned when rehydrating a Flat formula.
var (
	// ErrInvalidAction indicates an action whose operator does not support
	// its operands.
	ErrInvalidAction = errors.New("formula: invalid action")

	// ErrResultMismatch indicates a stored result that disagrees with the
	// operator applied to the stored operands.
	ErrResultMismatch = errors.New("formula: stored result does not match operands")
)

// Action is one reduction step: A Op B, with A ≥ B for the commutative
// operators.
type Action struct {
	A, B int
	Op   operators.Kind

	// Prev holds the alternative Actions that produced the state this step
	// was applied to; nil when the operands are inputs.
	Prev []*Action

	r int
}

// NewAction builds an Action. It panics with operators.ErrUnsupported when
// op does not support (a, b).
func NewAction(a, b int, op operators.Kind, prev []*Action) *Action {
	return &Action{A: a, B: b, Op: op, Prev: prev, r: op.Apply(a, b)}
}

// Result returns A Op B.
func (a *Action) Result() int { return a.r }

// Difficulty returns the operator's effort score for this step.
func (a *Action) Difficulty() int { return a.Op.Difficulty(a.A, a.B) }

// Origin describes the value this action produces.
func (a *Action) Origin() operators.Origin {
	return operators.Origin{Value: a.r, Op: a.Op, B: a.B}
}

// String renders "a op b = r".
func (a *Action) String() string {
	return fmt.Sprintf("%d %s %d = %d", a.A, a.Op.Name(), a.B, a.r)
}

// Formula is a linear sequence of Actions and their summed difficulty.
type Formula struct {
	Actions    []*Action
	Difficulty int
}

// New returns a Formula over actions with the difficulty summed from them.
func New(actions ...*Action) Formula {
	d := 0
	for _, a := range actions {
		d += a.Difficulty()
	}

	return Formula{Actions: actions, Difficulty: d}
}

// Len returns the number of actions.
func (f Formula) Len() int { return len(f.Actions) }

// Result returns the value produced by the last action. ok is false for a
// Formula with no actions.
func (f Formula) Result() (int, bool) {
	if len(f.Actions) == 0 {
		return 0, false
	}

	return f.Actions[len(f.Actions)-1].Result(), true
}

// String renders one action per line, or "(no actions)".
func (f Formula) String() string {
	if len(f.Actions) == 0 {
		return "(no actions)\n"
	}
	s := ""
	for _, a := range f.Actions {
		s += a.String() + "\n"
	}

	return s
}

// Key identifies the expression f computes independently of the order in
// which independent steps were linearized: the sorted list of its steps.
func (f Formula) Key() string {
	steps := make([]string, len(f.Actions))
	for i, a := range f.Actions {
		steps[i] = a.String()
	}
	slices.Sort(steps)

	return strings.Join(steps, ";")
}

// Dedupe drops every Formula whose Key was already seen, keeping the first.
func Dedupe(fs []Formula) []Formula {
	seen := make(map[string]struct{}, len(fs))
	out := fs[:0:0]
	for _, f := range fs {
		k := f.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, f)
	}

	return out
}
