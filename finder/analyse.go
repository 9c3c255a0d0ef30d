package finder

import (
	"cmp"
	"slices"
)

// Analyse runs FindTargets independently for every game and summarises the
// result: how many targets are achievable, the easiest and hardest of them,
// and their mean difficulty.
func (f *Finder) Analyse(games [][]int, opts ...RangeOption) []Analysis {
	out := make([]Analysis, 0, len(games))
	for _, inputs := range games {
		out = append(out, f.analyseOne(inputs, opts))
	}

	return out
}

func (f *Finder) analyseOne(inputs []int, opts []RangeOption) Analysis {
	targets := f.FindTargets(inputs, opts...)
	slices.SortStableFunc(targets, func(x, y Target) int {
		return cmp.Compare(x.Difficulty, y.Difficulty)
	})

	a := Analysis{Inputs: slices.Clone(inputs), Achievable: len(targets)}
	if len(targets) == 0 {
		return a
	}

	sum := 0
	for _, t := range targets {
		sum += t.Difficulty
	}
	easiest, hardest := targets[0], targets[len(targets)-1]
	a.Easiest = &easiest
	a.Hardest = &hardest
	a.AverageDifficulty = float64(sum) / float64(len(targets))

	return a
}

// Summarize compares analysed games. Games with no achievable target are
// listed as Impossible and excluded from every other statistic. Ties go to
// the earliest game for minima and to the latest for maxima.
func Summarize(results []Analysis) Summary {
	s := Summary{Total: len(results)}

	var possible []Analysis
	for _, r := range results {
		if r.Achievable == 0 || r.Easiest == nil || r.Hardest == nil {
			s.Impossible = append(s.Impossible, r.Inputs)
			continue
		}
		possible = append(possible, r)
	}
	if len(possible) == 0 {
		return s
	}

	byEasiest := func(a Analysis) float64 { return float64(a.Easiest.Difficulty) }
	byHardest := func(a Analysis) float64 { return float64(a.Hardest.Difficulty) }
	byAverage := func(a Analysis) float64 { return a.AverageDifficulty }

	lo, hi := extremes(possible, byEasiest)
	s.EasiestGame = &Game{Inputs: lo.Inputs, Target: *lo.Easiest}
	s.HardestNumbers = hi.Inputs

	lo, hi = extremes(possible, byHardest)
	s.EasiestNumbers = lo.Inputs
	s.HardestGame = &Game{Inputs: hi.Inputs, Target: *hi.Hardest}

	lo, hi = extremes(possible, byAverage)
	s.TypicallyEasiest = lo.Inputs
	s.TypicallyHardest = hi.Inputs

	return s
}

// extremes returns the first minimum and the last maximum of key over rs.
func extremes(rs []Analysis, key func(Analysis) float64) (Analysis, Analysis) {
	lo, hi := rs[0], rs[0]
	for _, r := range rs[1:] {
		if key(r) < key(lo) {
			lo = r
		}
		if key(r) >= key(hi) {
			hi = r
		}
	}

	return lo, hi
}
