// Package store persists per-game analysis results in BadgerDB so repeated
// batch runs only compute games they have not seen.
//
// Keys are "analysis/<min>-<max>/<sorted inputs>", values the JSON form of
// finder.Analysis. The store is safe for concurrent use.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/katalvlaran/countdown/finder"
)

// ErrNoPath indicates a persistent store configured without a directory.
var ErrNoPath = errors.New("store: path is required for a persistent store")

const prefix = "analysis/"

// Config configures a Store.
type Config struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM; used by tests.
	InMemory bool

	// SyncWrites flushes every commit to disk.
	SyncWrites bool

	// Logger receives badger's own log output. Nil silences it.
	Logger *zap.Logger
}

// DefaultConfig returns a durable on-disk configuration at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts zap to badger.Logger.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func (l badgerLogger) Errorf(f string, args ...interface{})   { l.s.Errorf(f, args...) }
func (l badgerLogger) Warningf(f string, args ...interface{}) { l.s.Warnf(f, args...) }
func (l badgerLogger) Infof(f string, args ...interface{})    { l.s.Infof(f, args...) }
func (l badgerLogger) Debugf(f string, args ...interface{})   { l.s.Debugf(f, args...) }

// Store is a cache of finder.Analysis values.
type Store struct {
	db *badger.DB
}

// Open opens or creates the database described by cfg.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, ErrNoPath
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(badgerLogger{s: cfg.Logger.Named("badger").Sugar()})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key returns the storage key of inputs analysed over min..max. The order
// of inputs does not matter.
func Key(inputs []int, min, max int) []byte {
	vs := slices.Clone(inputs)
	slices.Sort(vs)
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return []byte(fmt.Sprintf("%s%d-%d/%s", prefix, min, max, strings.Join(parts, ",")))
}

// Get returns the cached analysis of inputs over min..max, if any.
func (s *Store) Get(ctx context.Context, inputs []int, min, max int) (finder.Analysis, bool, error) {
	var a finder.Analysis
	if err := ctx.Err(); err != nil {
		return a, false, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(inputs, min, max))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &a)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return finder.Analysis{}, false, nil
	}
	if err != nil {
		return finder.Analysis{}, false, fmt.Errorf("store: get: %w", err)
	}

	return a, true, nil
}

// Put records the analysis a, computed over min..max.
func (s *Store) Put(ctx context.Context, a finder.Analysis, min, max int) error {
	return s.PutAll(ctx, []finder.Analysis{a}, min, max)
}

// PutAll records several analyses in one transaction.
func (s *Store) PutAll(ctx context.Context, as []finder.Analysis, min, max int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		for _, a := range as {
			val, err := json.Marshal(a)
			if err != nil {
				return err
			}
			if err := txn.Set(Key(a.Inputs, min, max), val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store: put: %w", err)
	}

	return nil
}

// Count returns the number of analyses stored for min..max.
func (s *Store) Count(ctx context.Context, min, max int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	p := []byte(fmt.Sprintf("%s%d-%d/", prefix, min, max))
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = p
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}

	return n, nil
}
