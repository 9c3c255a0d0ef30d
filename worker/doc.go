// Package worker runs finder searches on background goroutines.
//
// A Worker owns one goroutine and one finder.Finder. Callers post requests
// and receive responses over a strictly ordered unary channel: the n-th
// response answers the n-th request, so messages carry no correlation id.
// Requests and responses travel as JSON, the same encoding Handle accepts
// from any other transport.
//
// Request kinds:
//
//	TARGETS  {inputs, options:{min,max}}                        → {targets, time}
//	SOLVE    {inputs, target, options:{rangeMin,rangeMax,maxDist}} → {solutions, time}
//	ANALYSE  {games, options:{min,max}}                         → {analysis, time}
//
// time is in milliseconds. A failed request answers {error, time}.
//
// The goroutine starts lazily on the first request. Abort drops it: every
// awaiting caller fails with ErrAborted, the computation in progress runs to
// completion and its result is discarded, and the next request starts a
// fresh goroutine. Close aborts and refuses further requests with ErrClosed.
//
// Contexts passed to Worker methods bound only how long the caller waits;
// a search once started is never interrupted.
//
// Pool spreads a batch analysis over several Workers. Games are cut into
// batches (default 10) taken from the end of the queue; each worker takes
// the next batch as soon as it finishes one. Results already present in an
// optional Cache are not recomputed.
package worker
