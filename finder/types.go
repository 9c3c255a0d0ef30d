package finder

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/countdown/operators"
)

// Sentinel errors.
var (
	// ErrNoInputs indicates a search over an empty input list.
	ErrNoInputs = errors.New("finder: no input values")

	// ErrInternal indicates that minimality filtering removed every
	// candidate solution.
	ErrInternal = errors.New("finder: internal error: filtering removed all solutions")

	// ErrBadMaxDist indicates a negative maximum distance.
	ErrBadMaxDist = errors.New("finder: MaxDist must be non-negative")
)

// Finder runs searches over a fixed operator table.
type Finder struct {
	ops operators.Table
	log *zap.Logger
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger used for search statistics.
func WithLogger(l *zap.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.log = l
		}
	}
}

// New returns a Finder over ops. An empty table selects
// operators.CountdownRules.
func New(ops operators.Table, opts ...Option) *Finder {
	if len(ops) == 0 {
		ops = operators.CountdownRules
	}
	f := &Finder{ops: ops, log: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// SolveOptions configures FindAllNearest.
type SolveOptions struct {
	RangeMin int // smallest admissible result
	RangeMax int // largest admissible result
	MaxDist  int // largest accepted distance from the target
}

// SolveOption is a functional option for FindAllNearest.
type SolveOption func(*SolveOptions)

// DefaultSolveOptions returns RangeMin 1 and no other limit.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{RangeMin: 1, RangeMax: math.MaxInt, MaxDist: math.MaxInt}
}

// WithRangeMin sets the smallest value a solution may produce.
func WithRangeMin(v int) SolveOption {
	return func(o *SolveOptions) { o.RangeMin = v }
}

// WithRangeMax sets the largest value a solution may produce.
func WithRangeMax(v int) SolveOption {
	return func(o *SolveOptions) { o.RangeMax = v }
}

// WithMaxDist bounds the distance between a solution and the target. It
// panics with ErrBadMaxDist for negative d.
func WithMaxDist(d int) SolveOption {
	return func(o *SolveOptions) {
		if d < 0 {
			panic(ErrBadMaxDist.Error())
		}
		o.MaxDist = d
	}
}

// RangeOptions bounds the targets reported by FindTargets and Analyse.
type RangeOptions struct {
	Min int
	Max int
}

// RangeOption is a functional option for FindTargets and Analyse.
type RangeOption func(*RangeOptions)

// DefaultRangeOptions returns Min 1, Max math.MaxInt.
func DefaultRangeOptions() RangeOptions {
	return RangeOptions{Min: 1, Max: math.MaxInt}
}

// WithMin sets the smallest reported target.
func WithMin(v int) RangeOption {
	return func(o *RangeOptions) { o.Min = v }
}

// WithMax sets the largest reported target.
func WithMax(v int) RangeOption {
	return func(o *RangeOptions) { o.Max = v }
}

// Target is a reachable value and the minimum difficulty of reaching it.
type Target struct {
	Value      int `json:"value"`
	Difficulty int `json:"difficulty"`
}

// Analysis summarises the targets reachable from one set of inputs.
// Easiest and Hardest are nil when nothing in range is achievable.
type Analysis struct {
	Inputs            []int   `json:"inputs"`
	Achievable        int     `json:"achievable"`
	Easiest           *Target `json:"easiest"`
	Hardest           *Target `json:"hardest"`
	AverageDifficulty float64 `json:"averageDifficulty"`
}

// Game pairs a set of inputs with one of its targets.
type Game struct {
	Inputs []int  `json:"inputs"`
	Target Target `json:"target"`
}

// Summary compares many analysed source sets.
type Summary struct {
	Total      int     `json:"total"`
	Impossible [][]int `json:"impossible"`

	// EasiestGame is the single easiest (inputs, target) pair overall and
	// HardestGame the single hardest.
	EasiestGame *Game `json:"easiestGame"`
	HardestGame *Game `json:"hardestGame"`

	// EasiestNumbers have the lowest hardest-target difficulty;
	// HardestNumbers have the highest easiest-target difficulty.
	EasiestNumbers []int `json:"easiestNumbers"`
	HardestNumbers []int `json:"hardestNumbers"`

	// Typically easiest / hardest by average difficulty.
	TypicallyEasiest []int `json:"typicallyEasiest"`
	TypicallyHardest []int `json:"typicallyHardest"`
}
