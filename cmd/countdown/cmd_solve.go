package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/countdown/config"
	"github.com/katalvlaran/countdown/worker"
)

var (
	solveTarget  int
	solveNearest bool
	solveMaxDist int
	rangeMin     int
	rangeMax     int
)

var solveCmd = &cobra.Command{
	Use:   "solve --target N SOURCES...",
	Short: "Find every distinct way to reach a target",
	Long: `Finds every minimal, distinct formula reaching the target from the sources
and reports the easiest, the hardest (when notably harder) and the shortest
(when shorter than both). Also lists the other targets the sources can make
and the ones in range they cannot.`,
	Example: `  countdown solve -t 952 100 75 50 25 6 3
  countdown solve -t 999 --nearest 1,2,3,4,5,6`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&solveTarget, "target", "t", 0, "Target value (required)")
	solveCmd.Flags().BoolVar(&solveNearest, "nearest", false, "Fall back to the closest reachable value")
	solveCmd.Flags().IntVar(&solveMaxDist, "max-dist", -1, "With --nearest, the largest accepted distance")
	_ = solveCmd.MarkFlagRequired("target")

	for _, c := range []*cobra.Command{solveCmd, targetsCmd, analyseCmd, dealCmd} {
		c.Flags().IntVar(&rangeMin, "min", 0, "Smallest target (default from config)")
		c.Flags().IntVar(&rangeMax, "max", 0, "Largest target (default from config)")
	}
}

// targetRange resolves --min and --max against the configuration.
func targetRange() (int, int, error) {
	lo, hi := cfg.Numbers.MinTarget, cfg.Numbers.MaxTarget
	if rangeMin > 0 {
		lo = rangeMin
	}
	if rangeMax > 0 {
		hi = rangeMax
	}
	if err := config.CheckRange(lo, hi); err != nil {
		return 0, 0, err
	}

	return lo, hi, nil
}

func solveOptions() *worker.Options {
	if !solveNearest {
		return &worker.Options{MaxDist: worker.Int(0)}
	}
	if solveMaxDist >= 0 {
		return &worker.Options{MaxDist: worker.Int(solveMaxDist)}
	}

	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	inputs, err := parseNumbers(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no sources given")
	}
	lo, hi, err := targetRange()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, cleanup, err := newPool(ctx, 2)
	if err != nil {
		return err
	}
	defer cleanup()

	r := solveReport{Inputs: inputs, Target: solveTarget, Min: lo, Max: hi}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		r.Solutions, r.SolveTime, err = pool.Worker(0).FindAllNearest(egCtx, inputs, solveTarget, solveOptions())
		return err
	})
	eg.Go(func() (err error) {
		r.Targets, r.TargetsTime, err = pool.Worker(1).FindTargets(egCtx, inputs, lo, hi)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	logger.Info("solved",
		zap.Ints("inputs", inputs),
		zap.Int("target", solveTarget),
		zap.Int("solutions", len(r.Solutions)),
		zap.Int("targets", len(r.Targets)),
	)

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r.json())
	}
	writeSolveReport(out, r)

	return nil
}
