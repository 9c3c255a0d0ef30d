package worker

import (
	"errors"

	"github.com/katalvlaran/countdown/finder"
	"github.com/katalvlaran/countdown/formula"
)

var (
	// ErrAborted is returned to every caller awaiting a Worker when it is aborted.
	ErrAborted = errors.New("worker: aborted")

	// ErrClosed is returned by a Worker or Pool used after Close.
	ErrClosed = errors.New("worker: closed")

	// ErrRemote wraps the error text carried by a failed response.
	ErrRemote = errors.New("worker: request failed")

	// ErrUnknownKind indicates a request type Handle does not serve.
	ErrUnknownKind = errors.New("worker: unknown request type")
)

// Kind names a request type.
type Kind string

// Request kinds.
const (
	KindTargets Kind = "TARGETS"
	KindSolve   Kind = "SOLVE"
	KindAnalyse Kind = "ANALYSE"
)

// Options carries the optional parameters of every request kind. Unset
// fields take the finder defaults.
type Options struct {
	Min      *int `json:"min,omitempty"`
	Max      *int `json:"max,omitempty"`
	RangeMin *int `json:"rangeMin,omitempty"`
	RangeMax *int `json:"rangeMax,omitempty"`
	MaxDist  *int `json:"maxDist,omitempty"`
}

// Request is one message posted to a Worker.
type Request struct {
	Type    Kind     `json:"type"`
	Inputs  []int    `json:"inputs,omitempty"`
	Target  int      `json:"target,omitempty"`
	Games   [][]int  `json:"games,omitempty"`
	Options *Options `json:"options,omitempty"`
}

// Response answers one Request. The result field of the request's kind is
// always a JSON array, empty when nothing was found.
type Response struct {
	Targets   []finder.Target   `json:"targets"`
	Solutions []formula.Flat    `json:"solutions"`
	Analysis  []finder.Analysis `json:"analysis"`
	Time      int64             `json:"time"`
	Error     string            `json:"error,omitempty"`
}

// Int returns a pointer to v, for filling Options.
func Int(v int) *int { return &v }

func (o *Options) rangeOptions() []finder.RangeOption {
	if o == nil {
		return nil
	}
	var out []finder.RangeOption
	if o.Min != nil {
		out = append(out, finder.WithMin(*o.Min))
	}
	if o.Max != nil {
		out = append(out, finder.WithMax(*o.Max))
	}

	return out
}

func (o *Options) solveOptions() []finder.SolveOption {
	if o == nil {
		return nil
	}
	var out []finder.SolveOption
	if o.RangeMin != nil {
		out = append(out, finder.WithRangeMin(*o.RangeMin))
	}
	if o.RangeMax != nil {
		out = append(out, finder.WithRangeMax(*o.RangeMax))
	}
	if o.MaxDist != nil {
		out = append(out, finder.WithMaxDist(*o.MaxDist))
	}

	return out
}

// rangeRequest builds the Options of a TARGETS or ANALYSE request.
func rangeRequest(min, max int) *Options {
	return &Options{Min: Int(min), Max: Int(max)}
}
