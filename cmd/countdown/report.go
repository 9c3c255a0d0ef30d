package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/katalvlaran/countdown/finder"
	"github.com/katalvlaran/countdown/formula"
)

const (
	// hardestMargin is how much harder than the easiest method the hardest
	// one must be to be worth showing.
	hardestMargin = 500
	// otherTargets bounds the list of alternative targets.
	otherTargets = 20
)

// solveReport is everything the solve command prints.
type solveReport struct {
	Inputs      []int
	Target      int
	Min, Max    int
	Solutions   []formula.Formula
	SolveTime   time.Duration
	Targets     []finder.Target
	TargetsTime time.Duration
}

// methods picks the easiest and hardest solutions and the shortest one,
// which is only reported when strictly shorter than both.
func (r solveReport) methods() (easiest, hardest formula.Formula, shortest *formula.Formula) {
	byDifficulty := slices.Clone(r.Solutions)
	slices.SortStableFunc(byDifficulty, func(a, b formula.Formula) int { return cmp.Compare(a.Difficulty, b.Difficulty) })
	easiest, hardest = byDifficulty[0], byDifficulty[len(byDifficulty)-1]

	byLength := slices.Clone(byDifficulty)
	slices.SortStableFunc(byLength, func(a, b formula.Formula) int { return cmp.Compare(a.Len(), b.Len()) })
	if s := byLength[0]; s.Len() < easiest.Len() && s.Len() < hardest.Len() {
		shortest = &s
	}

	return easiest, hardest, shortest
}

// hardestFirst orders targets by descending difficulty, then by value.
func (r solveReport) hardestFirst() []finder.Target {
	ts := slices.Clone(r.Targets)
	slices.SortStableFunc(ts, func(a, b finder.Target) int { return cmp.Compare(b.Difficulty, a.Difficulty) })

	return ts
}

// impossible lists the values in Min..Max missing from Targets.
func (r solveReport) impossible() []int {
	reachable := make(map[int]bool, len(r.Targets))
	for _, t := range r.Targets {
		reachable[t.Value] = true
	}
	var out []int
	for v := r.Min; v <= r.Max; v++ {
		if !reachable[v] {
			out = append(out, v)
		}
	}

	return out
}

func writeSolveReport(w io.Writer, r solveReport) {
	if len(r.Solutions) > 0 {
		easiest, hardest, shortest := r.methods()
		fmt.Fprint(w, easiest.String())
		fmt.Fprintf(w, "-- calculated in %dms\n\n", r.SolveTime.Milliseconds())
		if easiest.Difficulty+hardestMargin < hardest.Difficulty {
			fmt.Fprintf(w, "Hardest method:\n%s\n", hardest.String())
		}
		if shortest != nil {
			fmt.Fprintf(w, "Shortest method:\n%s\n", shortest.String())
		}
	} else {
		fmt.Fprint(w, "No solution!\n\n")
	}

	ts := r.hardestFirst()
	fmt.Fprintln(w, "Other possible targets (hardest first):")
	for _, t := range ts[:min(len(ts), otherTargets)] {
		fmt.Fprintln(w, t.Value)
	}
	fmt.Fprintf(w, "-- calculated in %dms\n\n", r.TargetsTime.Milliseconds())

	if imp := r.impossible(); len(imp) > 0 {
		fmt.Fprintf(w, "Impossible targets (%d):\n", len(imp))
		for _, v := range imp {
			fmt.Fprintln(w, v)
		}
	}
}

// solveJSON is the --json form of a solveReport.
type solveJSON struct {
	Inputs     []int           `json:"inputs"`
	Target     int             `json:"target"`
	Solutions  []formula.Flat  `json:"solutions"`
	Targets    []finder.Target `json:"targets"`
	Impossible []int           `json:"impossible"`
	Time       int64           `json:"time"`
}

func (r solveReport) json() solveJSON {
	out := solveJSON{
		Inputs:     r.Inputs,
		Target:     r.Target,
		Solutions:  make([]formula.Flat, len(r.Solutions)),
		Targets:    r.Targets,
		Impossible: r.impossible(),
		Time:       (r.SolveTime + r.TargetsTime).Milliseconds(),
	}
	for i, f := range r.Solutions {
		out.Solutions[i] = f.Flatten()
	}

	return out
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, ",")
}

func representGame(g *finder.Game) string {
	return fmt.Sprintf("%s -> %d", joinInts(g.Inputs), g.Target.Value)
}

// writeSummary prints a batch analysis summary.
func writeSummary(w io.Writer, s finder.Summary, elapsed time.Duration) {
	fmt.Fprintf(w, "Total permutations: %d\n", s.Total)
	fmt.Fprintln(w, "Impossible numbers:")
	for _, g := range s.Impossible {
		fmt.Fprintln(w, joinInts(g))
	}
	if s.EasiestGame == nil {
		fmt.Fprintf(w, "-- %.3fs\n", elapsed.Seconds())
		return
	}

	fmt.Fprintf(w, "Easiest game: %s\n", representGame(s.EasiestGame))
	fmt.Fprintf(w, "Hardest game: %s\n", representGame(s.HardestGame))
	fmt.Fprintf(w, "Easiest numbers: %s\n", joinInts(s.EasiestNumbers))
	fmt.Fprintf(w, "Hardest numbers: %s\n", joinInts(s.HardestNumbers))
	fmt.Fprintf(w, "Typically easiest numbers: %s\n", joinInts(s.TypicallyEasiest))
	fmt.Fprintf(w, "Typically hardest numbers: %s\n", joinInts(s.TypicallyHardest))

	possible := s.Total - len(s.Impossible)
	fmt.Fprintf(w, "-- %.3fs (%.3fs per game)\n", elapsed.Seconds(), elapsed.Seconds()/float64(possible))
}
