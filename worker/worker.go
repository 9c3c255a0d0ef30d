package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/countdown/finder"
	"github.com/katalvlaran/countdown/formula"
	"github.com/katalvlaran/countdown/operators"
)

// Worker serves finder requests on its own goroutine.
type Worker struct {
	ops     operators.Table
	log     *zap.Logger
	metrics *Metrics

	mu      sync.Mutex
	gen     *generation
	retired []*generation // aborted, possibly still computing
	closed  bool
}

// Option configures a Worker.
type Option func(*Worker)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *Worker) {
		if l != nil {
			w.log = l
		}
	}
}

// WithMetrics records every request in m.
func WithMetrics(m *Metrics) Option {
	return func(w *Worker) { w.metrics = m }
}

// New returns an idle Worker using ops. No goroutine runs until the first
// request.
func New(ops operators.Table, opts ...Option) *Worker {
	w := &Worker{ops: ops, log: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

type reply struct {
	data []byte
	err  error
}

// generation is one lifetime of the background goroutine. pending and
// awaiting always have matching order: a request is queued and its reply
// channel registered under the same lock.
type generation struct {
	mu       sync.Mutex
	pending  [][]byte
	awaiting []chan reply
	aborted  bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

func (w *Worker) start() *generation {
	g := &generation{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	f := finder.New(w.ops, finder.WithLogger(w.log))
	go g.run(f)
	w.log.Debug("worker started")

	return g
}

func (g *generation) run(f *finder.Finder) {
	defer close(g.done)
	for {
		select {
		case <-g.quit:
			return
		case <-g.wake:
		}
		for {
			msg, ok := g.next()
			if !ok {
				break
			}
			g.deliver(Handle(f, msg))
		}
	}
}

func (g *generation) next() ([]byte, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.aborted || len(g.pending) == 0 {
		return nil, false
	}
	msg := g.pending[0]
	g.pending = g.pending[1:]

	return msg, true
}

func (g *generation) deliver(data []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.aborted || len(g.awaiting) == 0 {
		return
	}
	ch := g.awaiting[0]
	g.awaiting = g.awaiting[1:]
	ch <- reply{data: data}
}

func (g *generation) enqueue(msg []byte) chan reply {
	ch := make(chan reply, 1)
	g.mu.Lock()
	g.pending = append(g.pending, msg)
	g.awaiting = append(g.awaiting, ch)
	g.mu.Unlock()

	select {
	case g.wake <- struct{}{}:
	default:
	}

	return ch
}

func (g *generation) abort() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.aborted = true
	n := len(g.awaiting)
	for _, ch := range g.awaiting {
		ch <- reply{err: ErrAborted}
	}
	g.awaiting = nil
	g.pending = nil
	close(g.quit)

	return n
}

// PostRaw sends an encoded request and waits for the encoded response.
func (w *Worker) PostRaw(ctx context.Context, msg []byte) ([]byte, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrClosed
	}
	if w.gen == nil {
		w.gen = w.start()
	}
	ch := w.gen.enqueue(msg)
	w.mu.Unlock()

	select {
	case r := <-ch:
		return r.data, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Post sends req and decodes the response. A response carrying an error
// is returned as ErrRemote.
func (w *Worker) Post(ctx context.Context, req Request) (Response, error) {
	start := time.Now()
	resp, err := w.post(ctx, req)
	w.metrics.observe(req.Type, start, err)
	if err != nil {
		w.log.Debug("request failed", zap.String("type", string(req.Type)), zap.Error(err))
	}

	return resp, err
}

func (w *Worker) post(ctx context.Context, req Request) (Response, error) {
	msg, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("worker: encode request: %w", err)
	}

	w.metrics.inFlight(1)
	data, err := w.PostRaw(ctx, msg)
	w.metrics.inFlight(-1)
	if err != nil {
		return Response{}, err
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return Response{}, fmt.Errorf("worker: decode response: %w", err)
	}
	if resp.Error != "" {
		return resp, fmt.Errorf("%w: %s", ErrRemote, resp.Error)
	}

	return resp, nil
}

// Abort drops the current goroutine, failing every awaiting caller with
// ErrAborted. It is a no-op on an idle Worker.
func (w *Worker) Abort() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.abortLocked()
}

func (w *Worker) abortLocked() {
	if w.gen == nil {
		return
	}
	n := w.gen.abort()
	w.retired = slices.DeleteFunc(w.retired, func(g *generation) bool {
		select {
		case <-g.done:
			return true
		default:
			return false
		}
	})
	w.retired = append(w.retired, w.gen)
	w.gen = nil
	w.log.Debug("worker aborted", zap.Int("awaiting", n))
}

// Close aborts the Worker and refuses further requests.
func (w *Worker) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.abortLocked()
	w.closed = true
}

// Shutdown closes the Worker and waits until every goroutine it started
// has exited, which happens once their computations in progress complete.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	w.abortLocked()
	w.closed = true
	gens := w.retired
	w.retired = nil
	w.mu.Unlock()

	for _, g := range gens {
		select {
		case <-g.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// FindAllFormulas returns every minimal Formula reaching target exactly.
func (w *Worker) FindAllFormulas(ctx context.Context, inputs []int, target int) ([]formula.Formula, time.Duration, error) {
	return w.FindAllNearest(ctx, inputs, target, &Options{MaxDist: Int(0)})
}

// FindAllNearest is finder.FindAllNearest run on the Worker.
func (w *Worker) FindAllNearest(ctx context.Context, inputs []int, target int, opts *Options) ([]formula.Formula, time.Duration, error) {
	resp, err := w.Post(ctx, Request{Type: KindSolve, Inputs: inputs, Target: target, Options: opts})
	if err != nil {
		return nil, 0, err
	}
	out := make([]formula.Formula, len(resp.Solutions))
	for i, fl := range resp.Solutions {
		if out[i], err = formula.FromFlat(fl); err != nil {
			return nil, 0, fmt.Errorf("worker: solution %d: %w", i, err)
		}
	}

	return out, time.Duration(resp.Time) * time.Millisecond, nil
}

// FindTargets is finder.FindTargets over min..max run on the Worker.
func (w *Worker) FindTargets(ctx context.Context, inputs []int, min, max int) ([]finder.Target, time.Duration, error) {
	resp, err := w.Post(ctx, Request{Type: KindTargets, Inputs: inputs, Options: rangeRequest(min, max)})
	if err != nil {
		return nil, 0, err
	}

	return resp.Targets, time.Duration(resp.Time) * time.Millisecond, nil
}

// Analyse is finder.Analyse over min..max run on the Worker.
func (w *Worker) Analyse(ctx context.Context, games [][]int, min, max int) ([]finder.Analysis, time.Duration, error) {
	resp, err := w.Post(ctx, Request{Type: KindAnalyse, Games: games, Options: rangeRequest(min, max)})
	if err != nil {
		return nil, 0, err
	}

	return resp.Analysis, time.Duration(resp.Time) * time.Millisecond, nil
}
