package formula

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/countdown/operators"
)

// FlatAction is the serialized form of an Action.
type FlatAction struct {
	A  int    `json:"a"`
	B  int    `json:"b"`
	Op string `json:"op"`
	R  int    `json:"r"`
}

// Flat is the serialized form of a Formula.
type Flat struct {
	Actions    []FlatAction `json:"actions"`
	Difficulty int          `json:"difficulty"`
}

// Flatten converts f to its wire form. Provenance is not carried.
func (f Formula) Flatten() Flat {
	out := Flat{
		Actions:    make([]FlatAction, len(f.Actions)),
		Difficulty: f.Difficulty,
	}
	for i, a := range f.Actions {
		out.Actions[i] = FlatAction{A: a.A, B: a.B, Op: a.Op.Name(), R: a.Result()}
	}

	return out
}

// FromFlat rehydrates a Formula, mapping each operator name back to its
// Kind and checking the stored results. The stored difficulty is kept.
func FromFlat(fl Flat) (Formula, error) {
	actions := make([]*Action, len(fl.Actions))
	for i, fa := range fl.Actions {
		op, err := operators.Parse(fa.Op)
		if err != nil {
			return Formula{}, fmt.Errorf("formula: action %d: %w", i, err)
		}
		if !op.Supports(fa.A, fa.B) {
			return Formula{}, fmt.Errorf("%w: action %d: %d %s %d", ErrInvalidAction, i, fa.A, fa.Op, fa.B)
		}
		a := NewAction(fa.A, fa.B, op, nil)
		if a.Result() != fa.R {
			return Formula{}, fmt.Errorf("%w: action %d: %s, stored %d", ErrResultMismatch, i, a, fa.R)
		}
		actions[i] = a
	}

	return Formula{Actions: actions, Difficulty: fl.Difficulty}, nil
}

// MarshalJSON encodes f in its Flat form.
func (f Formula) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Flatten())
}

// UnmarshalJSON decodes a Flat form.
func (f *Formula) UnmarshalJSON(data []byte) error {
	var fl Flat
	if err := json.Unmarshal(data, &fl); err != nil {
		return err
	}
	out, err := FromFlat(fl)
	if err != nil {
		return err
	}
	*f = out

	return nil
}
