// Package countdown finds, ranks and analyses solutions to countdown
// numbers games: reach a target from a handful of source numbers using
// + − × ÷, each source used at most once.
//
// 🚀 What is countdown?
//
//	A search engine and toolkit for the numbers round that brings together:
//		• Exhaustive search: every minimal, distinct formula for a target
//		• Nearest fallback: the closest reachable value when the target is not
//		• Difficulty scoring: how hard each step is to work out mentally
//		• Reachability: every target a set of sources can make, and how easily
//		• Batch analysis: the easiest, hardest and impossible games
//
// Under the hood, everything is organized into these subpackages:
//
//	multiset/  order-independent bags of numbers with a stable hash
//	eqmap/     insertion-ordered maps keyed by hashable values
//	operators/ the four operators, their rules and difficulty scores
//	formula/   actions, formulas, expansion and minimality checks
//	finder/    the search: FindAllFormulas, FindAllNearest, FindTargets, Analyse
//	games/     source selections, deals and random targets
//	worker/    background workers with a JSON message protocol and a pool
//	store/     BadgerDB cache of analysed games
//	config/    YAML configuration
//	logging/   zap logger construction
//
// Quick example:
//
//	sources 100 75 50 25 6 3, target 952
//
//	100 + 6 = 106
//	106 × 3 = 318
//	318 × 75 = 23850
//	23850 − 50 = 23800
//	23800 ÷ 25 = 952
//
// The countdown command in cmd/countdown puts all of it on the command line.
//
//	go install github.com/katalvlaran/countdown/cmd/countdown@latest
package countdown
