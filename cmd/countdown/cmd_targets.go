package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/countdown/games"
)

var targetsRandom bool

var targetsCmd = &cobra.Command{
	Use:   "targets SOURCES...",
	Short: "List every target the sources can reach",
	Long: `Lists every value in the target range the sources can make, each with the
difficulty of its easiest method. With --random, picks one of them.`,
	Example: `  countdown targets 100 75 50 25 6 3
  countdown targets --random --min 101 --max 999 25,50,3,7,8,9`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTargets,
}

func init() {
	targetsCmd.Flags().BoolVar(&targetsRandom, "random", false, "Print one achievable target at random")
}

func runTargets(cmd *cobra.Command, args []string) error {
	inputs, err := parseNumbers(args)
	if err != nil {
		return err
	}
	lo, hi, err := targetRange()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, cleanup, err := newPool(ctx, 1)
	if err != nil {
		return err
	}
	defer cleanup()

	ts, _, err := pool.Worker(0).FindTargets(ctx, inputs, lo, hi)
	if err != nil {
		return err
	}
	if targetsRandom {
		t, ok := games.PickTarget(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), ts)
		if !ok {
			return errors.New("no achievable target in range")
		}
		ts = append(ts[:0], t)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return json.NewEncoder(out).Encode(ts)
	}
	for _, t := range ts {
		fmt.Fprintf(out, "%d\t%d\n", t.Value, t.Difficulty)
	}

	return nil
}
