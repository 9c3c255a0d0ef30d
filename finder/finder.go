package finder

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/countdown/eqmap"
	"github.com/katalvlaran/countdown/formula"
	"github.com/katalvlaran/countdown/multiset"
	"github.com/katalvlaran/countdown/operators"
)

// states maps each live multiset to the data the current search carries
// for it: the alternative last Actions, or the minimum difficulty so far.
type states[V any] = eqmap.Map[*multiset.Multiset, V]

// transition is called once per (state, pair, operator) step. rest is the
// resulting state, valid only for the duration of the call.
type transition[V any] func(rest *multiset.Multiset, from V, a, b int, op operators.Kind, v int)

// explore visits every legal step out of every state in current.
func explore[V any](ops operators.Table, current *states[V], fn transition[V]) {
	current.Range(func(values *multiset.Multiset, from V) bool {
		values.PairingsInPlace(func(a, b int, rest *multiset.Multiset) {
			for _, op := range ops {
				if !op.Supports(a, b) {
					continue
				}
				v := op.Apply(a, b)
				rest.Inc(v)
				fn(rest, from, a, b, op, v)
				rest.Dec(v)
			}
		})
		return true
	})
}

// FindAllFormulas returns every minimal Formula reaching target exactly.
func (f *Finder) FindAllFormulas(inputs []int, target int) ([]formula.Formula, error) {
	return f.FindAllNearest(inputs, target, WithMaxDist(0))
}

// FindAllNearest returns every minimal Formula whose result is as close to
// target as any value reachable from inputs within the configured range.
//
// An empty slice (and nil error) means nothing lies within MaxDist. If
// target is itself an input the single zero-action Formula is returned.
func (f *Finder) FindAllNearest(inputs []int, target int, opts ...SolveOption) ([]formula.Formula, error) {
	cfg := DefaultSolveOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	if slices.Contains(inputs, target) {
		return []formula.Formula{formula.New()}, nil
	}

	var candidates []*formula.Action
	best := -1

	current := eqmap.New[*multiset.Multiset, []*formula.Action]()
	current.Set(multiset.Of(inputs...), nil)

	for round := 0; round < len(inputs)-1; round++ {
		next := eqmap.New[*multiset.Multiset, []*formula.Action]()
		explore(f.ops, current, func(rest *multiset.Multiset, prev []*formula.Action, a, b int, op operators.Kind, v int) {
			action := formula.NewAction(a, b, op, prev)
			next.Compute(rest, func(old []*formula.Action, _ bool) []*formula.Action {
				return append(old, action)
			})

			if v < cfg.RangeMin || v > cfg.RangeMax {
				return
			}
			dist := distance(v, target)
			if dist > cfg.MaxDist {
				return
			}
			if best < 0 || dist < best {
				best = dist
				candidates = candidates[:0]
			}
			if dist == best {
				candidates = append(candidates, action)
			}
		})
		f.log.Debug("search round complete",
			zap.Ints("inputs", inputs),
			zap.Int("round", round),
			zap.Int("states", next.Len()),
			zap.Int("bestDistance", best),
			zap.Int("candidates", len(candidates)),
		)
		current = next
	}

	if best < 0 {
		return nil, nil
	}

	var solutions []formula.Formula
	for _, action := range candidates {
		for _, fm := range formula.Expand(action) {
			if fm.IsMinimal(inputs) {
				solutions = append(solutions, fm)
			}
		}
	}
	if len(solutions) == 0 {
		return nil, fmt.Errorf("%w: %d candidates for %d from %v", ErrInternal, len(candidates), target, inputs)
	}
	solutions = formula.Dedupe(solutions)

	f.log.Debug("search complete",
		zap.Ints("inputs", inputs),
		zap.Int("target", target),
		zap.Int("distance", best),
		zap.Int("solutions", len(solutions)),
	)

	return solutions, nil
}

// FindTargets returns every value in range reachable from inputs, each with
// the minimum cumulative difficulty of reaching it, ordered by value. Inputs
// within range are reported at difficulty 0.
func (f *Finder) FindTargets(inputs []int, opts ...RangeOption) []Target {
	cfg := DefaultRangeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	inRange := func(v int) bool { return v >= cfg.Min && v <= cfg.Max }

	best := make(map[int]int)
	for _, v := range inputs {
		if inRange(v) {
			best[v] = 0
		}
	}

	current := eqmap.New[*multiset.Multiset, int]()
	current.Set(multiset.Of(inputs...), 0)

	for round := 0; round < len(inputs)-1; round++ {
		next := eqmap.New[*multiset.Multiset, int]()
		explore(f.ops, current, func(rest *multiset.Multiset, prevDiff, a, b int, op operators.Kind, v int) {
			d := prevDiff + op.Difficulty(a, b)
			next.Compute(rest, func(old int, ok bool) int {
				if !ok || d < old {
					return d
				}
				return old
			})
			if inRange(v) {
				if old, ok := best[v]; !ok || d < old {
					best[v] = d
				}
			}
		})
		current = next
	}

	targets := make([]Target, 0, len(best))
	for v, d := range best {
		targets = append(targets, Target{Value: v, Difficulty: d})
	}
	slices.SortFunc(targets, func(x, y Target) int { return cmp.Compare(x.Value, y.Value) })

	f.log.Debug("targets found", zap.Ints("inputs", inputs), zap.Int("targets", len(targets)))

	return targets
}

// distance returns |v − target|, saturating at math.MaxInt.
func distance(v, target int) int {
	d := v - target
	overflow := (v >= target) != (d >= 0)
	if overflow || d == math.MinInt {
		return math.MaxInt
	}
	if d < 0 {
		d = -d
	}

	return d
}
