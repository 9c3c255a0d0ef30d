package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/countdown/finder"
	"github.com/katalvlaran/countdown/operators"
)

// DefaultBatchSize is the number of games sent to a worker at a time.
const DefaultBatchSize = 10

// Cache stores analyses between runs. store.Store implements it.
type Cache interface {
	Get(ctx context.Context, inputs []int, min, max int) (finder.Analysis, bool, error)
	PutAll(ctx context.Context, as []finder.Analysis, min, max int) error
}

// Progress is told how many of total games are done after every batch.
// Calls are serialised.
type Progress func(done, total int)

// Pool is a fixed set of Workers sharing batch analyses.
type Pool struct {
	workers []*Worker
	batch   int
	cache   Cache
	log     *zap.Logger
	metrics *Metrics
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithBatchSize sets the games per request. Values below 1 are ignored.
func WithBatchSize(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.batch = n
		}
	}
}

// WithCache skips games already in c and records new results there.
func WithCache(c Cache) PoolOption {
	return func(p *Pool) { p.cache = c }
}

// WithPoolLogger sets the logger of the pool and its workers.
func WithPoolLogger(l *zap.Logger) PoolOption {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// WithPoolMetrics records requests and games in m.
func WithPoolMetrics(m *Metrics) PoolOption {
	return func(p *Pool) { p.metrics = m }
}

// NewPool returns n Workers (at least one) using ops.
func NewPool(n int, ops operators.Table, opts ...PoolOption) *Pool {
	p := &Pool{batch: DefaultBatchSize, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	n = max(n, 1)
	p.workers = make([]*Worker, n)
	for i := range p.workers {
		p.workers[i] = New(ops, WithLogger(p.log.With(zap.Int("worker", i))), WithMetrics(p.metrics))
	}

	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.workers) }

// Worker returns the i-th worker, for single requests.
func (p *Pool) Worker(i int) *Worker { return p.workers[i%len(p.workers)] }

type job struct {
	idx    int
	inputs []int
}

// AnalyseAll analyses every game over lo..hi and returns the results in
// the order of games. The first failing batch cancels the run.
func (p *Pool) AnalyseAll(ctx context.Context, games [][]int, lo, hi int, progress Progress) ([]finder.Analysis, error) {
	runID := uuid.NewString()
	log := p.log.With(zap.String("run", runID))
	results := make([]finder.Analysis, len(games))

	var queue []job
	cached := 0
	for i, g := range games {
		if p.cache != nil {
			a, ok, err := p.cache.Get(ctx, g, lo, hi)
			if err != nil {
				return nil, fmt.Errorf("worker: cache lookup: %w", err)
			}
			if ok {
				results[i] = a
				cached++
				continue
			}
		}
		queue = append(queue, job{idx: i, inputs: g})
	}
	p.metrics.gamesDone("cache", cached)
	if progress != nil && cached > 0 {
		progress(cached, len(games))
	}
	log.Info("analysis started",
		zap.Int("games", len(games)),
		zap.Int("cached", cached),
		zap.Int("workers", len(p.workers)),
		zap.Int("batch", p.batch),
	)

	var mu sync.Mutex
	done := cached
	report := func(n int) {
		done += n
		if progress != nil {
			progress(done, len(games))
		}
	}
	// take removes up to one batch from the end of the queue.
	take := func() []job {
		mu.Lock()
		defer mu.Unlock()
		n := min(p.batch, len(queue))
		b := queue[len(queue)-n:]
		queue = queue[:len(queue)-n]
		return b
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, w := range p.workers {
		eg.Go(func() error {
			for {
				b := take()
				if len(b) == 0 {
					return nil
				}
				inputs := make([][]int, len(b))
				for i, j := range b {
					inputs[i] = j.inputs
				}
				as, _, err := w.Analyse(egCtx, inputs, lo, hi)
				if err != nil {
					return err
				}
				if len(as) != len(b) {
					return fmt.Errorf("worker: %d analyses for %d games", len(as), len(b))
				}
				if p.cache != nil {
					if err := p.cache.PutAll(egCtx, as, lo, hi); err != nil {
						return fmt.Errorf("worker: cache store: %w", err)
					}
				}

				mu.Lock()
				for i, j := range b {
					results[j.idx] = as[i]
				}
				report(len(b))
				mu.Unlock()
				p.metrics.gamesDone("computed", len(b))
				log.Debug("batch complete", zap.Int("games", len(b)))
			}
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn("analysis failed", zap.Error(err))
		return nil, err
	}
	log.Info("analysis complete", zap.Int("games", len(games)))

	return results, nil
}

// Abort aborts every worker.
func (p *Pool) Abort() {
	for _, w := range p.workers {
		w.Abort()
	}
}

// Shutdown closes every worker and waits for their goroutines to exit.
func (p *Pool) Shutdown(ctx context.Context) error {
	var first error
	for _, w := range p.workers {
		if err := w.Shutdown(ctx); err != nil && first == nil {
			first = err
		}
	}

	return first
}
