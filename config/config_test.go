package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/countdown/config"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Selection(), 22)
	require.Positive(t, cfg.WorkerCount())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
numbers:
  min_target: 10
  max_target: 50
analysis:
  workers: 3
logging:
  level: debug
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Numbers.MinTarget)
	require.Equal(t, 50, cfg.Numbers.MaxTarget)
	require.Equal(t, 6, cfg.Numbers.InputCount, "untouched keys keep defaults")
	require.Equal(t, 3, cfg.WorkerCount())
	require.Equal(t, 10, cfg.Analysis.BatchSize)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("numbers: [1, 2"), 0o644))
	_, err := config.Load(bad)
	require.Error(t, err)

	inverted := filepath.Join(dir, "inverted.yaml")
	require.NoError(t, os.WriteFile(inverted, []byte("numbers:\n  min_target: 500\n  max_target: 100\n"), 0o644))
	_, err = config.Load(inverted)
	require.ErrorIs(t, err, config.ErrInvalidRange)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate func(*config.Config)
		want   error
	}{
		"count too large": {func(c *config.Config) { c.Numbers.InputCount = 23 }, config.ErrInvalidCount},
		"count zero":      {func(c *config.Config) { c.Numbers.InputCount = 0 }, config.ErrInvalidCount},
		"zero in small":   {func(c *config.Config) { c.Picker.Small[0] = 0 }, config.ErrInvalidSelection},
		"bad pattern":     {func(c *config.Config) { c.Picker.Presets[0].Pattern = "BBx" }, config.ErrInvalidPreset},
		"five big":        {func(c *config.Config) { c.Picker.Presets[0].Pattern = "BBBBBs" }, config.ErrInvalidPreset},
		"negative batch":  {func(c *config.Config) { c.Analysis.BatchSize = -1 }, config.ErrInvalidAnalysis},
		"min zero":        {func(c *config.Config) { c.Numbers.MinTarget = 0 }, config.ErrInvalidRange},
		"range too wide":  {func(c *config.Config) { c.Numbers.MaxTarget = math.MaxInt }, config.ErrInvalidRange},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}

	require.NoError(t, config.CheckRange(1, config.MaxTargetSpan))
	require.ErrorIs(t, config.CheckRange(1, config.MaxTargetSpan+1), config.ErrInvalidRange)
	require.ErrorIs(t, config.CheckRange(5, 4), config.ErrInvalidRange)

	cfg := config.Default()
	cfg.Logging.Level = "loud"
	require.Error(t, cfg.Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "countdown.yaml")
	cfg := config.Default()
	cfg.Metrics.Addr = ":9090"
	cfg.Analysis.DBPath = "/tmp/countdown-db"
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
