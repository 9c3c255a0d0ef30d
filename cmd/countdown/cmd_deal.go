package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/countdown/games"
)

var dealSeed uint64

var dealCmd = &cobra.Command{
	Use:   "deal [PATTERN|PRESET]",
	Short: "Deal a random game and target",
	Long: `Draws sources at random following a pattern of 'B' (big) and 's' (small),
or the pattern of a named preset, then picks a target the sources can reach.
Without an argument the second preset is used.`,
	Example: `  countdown deal BBssss
  countdown deal "Four big ones" --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeal,
}

func init() {
	dealCmd.Flags().Uint64Var(&dealSeed, "seed", 0, "Random seed (default: random)")
}

// dealPattern resolves a preset name or returns arg as a pattern.
func dealPattern(args []string) (string, error) {
	presets := cfg.Picker.Presets
	if len(args) == 0 {
		if len(presets) == 0 {
			return "", errors.New("no presets configured")
		}
		return presets[min(1, len(presets)-1)].Pattern, nil
	}
	for _, p := range presets {
		if strings.EqualFold(p.Name, args[0]) {
			return p.Pattern, nil
		}
	}

	return args[0], nil
}

type dealt struct {
	Inputs []int `json:"inputs"`
	Target int   `json:"target"`
}

func runDeal(cmd *cobra.Command, args []string) error {
	pattern, err := dealPattern(args)
	if err != nil {
		return err
	}
	lo, hi, err := targetRange()
	if err != nil {
		return err
	}

	seed := dealSeed
	if !cmd.Flags().Changed("seed") {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed))

	inputs, err := games.Deal(r, pattern, cfg.Picker.Big, cfg.Picker.Small)
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
	t, ok := games.PickTarget(r, ts)
	if !ok {
		return fmt.Errorf("%s: no target in %d..%d", joinInts(inputs), lo, hi)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return json.NewEncoder(out).Encode(dealt{Inputs: inputs, Target: t.Value})
	}
	fmt.Fprintf(out, "%s -> %d\n", joinInts(inputs), t.Value)

	return nil
}
