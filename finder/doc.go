// Package finder is the search engine of the countdown numbers game: given a
// handful of source numbers it finds every minimal, canonically ordered way
// to reach a target (or the nearest attainable value), and conversely maps
// out every target the sources can reach together with its difficulty.
//
// Overview:
//
//   - The search runs in rounds. A state is the multiset of values still
//     available; each round combines two of them with one operator, so a
//     state of k values becomes states of k−1 values. With n inputs the
//     search always runs exactly n−1 rounds: a closer result may still
//     appear in the last round after an earlier exact one.
//   - States are merged by value equality (eqmap.Map keyed by
//     multiset.Multiset). When two histories reach the same state their
//     Actions are collected together, which turns the provenance into a DAG
//     that is expanded into linear Formulas only once the search is over.
//   - Expanded Formulas pass through formula.IsMinimal and finally through
//     formula.Dedupe, which collapses different step orders of the same
//     expression.
//
// Operations:
//
//   - FindAllNearest(inputs, target, opts...): every minimal Formula whose
//     result is nearest to target, optionally restricted to a value range
//     and a maximum distance.
//   - FindAllFormulas(inputs, target): exact solutions only.
//   - FindTargets(inputs, opts...): every reachable value within a range
//     and the minimum cumulative difficulty to reach it.
//   - Analyse(games, opts...): FindTargets summarised per source set.
//   - Summarize(analyses): comparative statistics across source sets.
//
// Options:
//
//   - WithRangeMin / WithRangeMax   admissible values for FindAllNearest
//     (default 1 … math.MaxInt).
//   - WithMaxDist                   maximum accepted |value − target|
//     (default math.MaxInt); negative values panic with ErrBadMaxDist.
//   - WithMin / WithMax             target range for FindTargets / Analyse.
//   - WithLogger                    zap logger for search statistics.
//
// Errors:
//
//   - ErrNoInputs   FindAllNearest was given no inputs.
//   - ErrInternal   the minimality filter rejected every candidate. This is
//     a defect in the canonicalization rules, never a legitimate
//     "no solution" outcome, which is reported as an empty slice.
//
// Thread safety:
//
//   - A Finder holds no mutable state; one instance may serve concurrent
//     calls. Each call allocates its own search maps.
package finder
