package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/countdown/finder"
	"github.com/katalvlaran/countdown/games"
)

var (
	analyseCount int
	analyseQuiet bool
)

var analyseCmd = &cobra.Command{
	Use:   "analyse [GAME...]",
	Short: "Compare the difficulty of many games",
	Long: `Analyses every distinct game that can be drawn from the configured big and
small numbers (or only the games given, each as a comma-separated list) and
reports the easiest and hardest games, the easiest and hardest sets of
numbers, and the sets from which no target in range can be made.

Work is spread over --workers background workers. With --db, results are
cached so later runs only compute games they have not seen.`,
	Example: `  countdown analyse --count 4 --workers 8
  countdown analyse 100,75,50,25,6,3 1,1,2,2,3,3`,
	Aliases: []string{"analyze"},
	RunE:    runAnalyse,
}

func init() {
	analyseCmd.Flags().IntVarP(&analyseCount, "count", "n", 0, "Sources per game (default from config)")
	analyseCmd.Flags().BoolVarP(&analyseQuiet, "quiet", "q", false, "Do not report progress")
}

// gameList returns the games named in args, or every game of the selection.
func gameList(args []string) ([][]int, error) {
	if len(args) > 0 {
		out := make([][]int, 0, len(args))
		for _, arg := range args {
			g, err := parseNumbers([]string{arg})
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
		return out, nil
	}

	count := cfg.Numbers.InputCount
	if analyseCount > 0 {
		count = analyseCount
	}

	return games.All(cfg.Selection(), count)
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	gs, err := gameList(args)
	if err != nil {
		return err
	}
	lo, hi, err := targetRange()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, cleanup, err := newPool(ctx, cfg.WorkerCount())
	if err != nil {
		return err
	}
	defer cleanup()

	errOut := cmd.ErrOrStderr()
	progress := func(done, total int) {
		if !analyseQuiet {
			fmt.Fprintf(errOut, "\rAnalysing %d games… %d / %d", total, done, total)
		}
	}

	start := time.Now()
	results, err := pool.AnalyseAll(ctx, gs, lo, hi, progress)
	if !analyseQuiet && len(gs) > 0 {
		fmt.Fprintln(errOut)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	summary := finder.Summarize(results)
	logger.Info("analysis summarised",
		zap.Int("games", summary.Total),
		zap.Int("impossible", len(summary.Impossible)),
		zap.Duration("elapsed", elapsed),
	)

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	writeSummary(out, summary, elapsed)

	return nil
}
