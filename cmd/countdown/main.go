// Command countdown solves and analyses countdown numbers games.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/countdown/config"
	"github.com/katalvlaran/countdown/logging"
	"github.com/katalvlaran/countdown/store"
	"github.com/katalvlaran/countdown/worker"
)

var errBadNumber = errors.New("not a positive whole number")

// shutdownTimeout bounds the wait for running searches when a command ends.
const shutdownTimeout = 30 * time.Second

var (
	// Global flags
	configPath  string
	verbose     bool
	jsonOutput  bool
	workerCount int
	dbPath      string
	metricsAddr string

	// Set up by PersistentPreRunE
	cfg        *config.Config
	logger     *zap.Logger
	metrics    *worker.Metrics
	metricsSrv *http.Server
)

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Solve and analyse countdown numbers games",
	Long: `countdown finds every distinct way to reach a target from a set of
source numbers using + − × ÷, ranks them by how hard they are to work out
mentally, and analyses which games are easy, hard or impossible.

Settings are read from --config (YAML); flags override them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "countdown.yaml", "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Write results as JSON")
	rootCmd.PersistentFlags().IntVarP(&workerCount, "workers", "w", 0, "Background workers (default: one per CPU)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Analysis cache directory (BadgerDB)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(analyseCmd)
	rootCmd.AddCommand(dealCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Analysis.Workers = workerCount
	}
	if flags.Changed("db") {
		cfg.Analysis.DBPath = dbPath
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var lvl zap.AtomicLevel
	logger, lvl, err = logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		lvl.SetLevel(zapcore.DebugLevel)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	if metrics, err = worker.NewMetrics(reg); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	if cfg.Metrics.Addr != "" {
		serveMetrics(cfg.Metrics.Addr, reg)
	}

	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	metricsSrv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", addr))
}

func teardown() {
	if metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = metricsSrv.Shutdown(ctx)
		cancel()
		metricsSrv = nil
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

// newPool builds n workers wired to the configured logger, metrics and cache.
// The returned cleanup closes the cache.
func newPool(ctx context.Context, n int) (*worker.Pool, func(), error) {
	opts := []worker.PoolOption{
		worker.WithPoolLogger(logger),
		worker.WithPoolMetrics(metrics),
		worker.WithBatchSize(cfg.Analysis.BatchSize),
	}
	closeDB := func() {}
	if cfg.Analysis.DBPath != "" {
		scfg := store.DefaultConfig(cfg.Analysis.DBPath)
		scfg.Logger = logger
		db, err := store.Open(scfg)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, worker.WithCache(db))
		closeDB = func() { _ = db.Close() }
	}
	p := worker.NewPool(n, nil, opts...)

	return p, func() {
		// a cancelled run leaves searches running; wait for them before the
		// cache closes, even after ctx is done
		waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := p.Shutdown(waitCtx); err != nil {
			logger.Warn("workers still busy at exit", zap.Error(err))
		}
		closeDB()
	}, nil
}

// parseNumbers reads source numbers given as separate arguments or as
// comma-separated lists.
func parseNumbers(args []string) ([]int, error) {
	var out []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil || v < 1 {
				return nil, fmt.Errorf("%q: %w", field, errBadNumber)
			}
			out = append(out, v)
		}
	}

	return out, nil
}
