package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/config"
	"github.com/born-ml/scalargrad/internal/train"
)

func TestDefault(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	tc, err := cfg.TrainConfig()
	require.NoError(t, err)
	assert.Equal(t, train.DefaultConfig(), tc)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
	assert.Empty(t, cfg.Log.File)
	assert.False(t, cfg.Log.Journal)
	assert.Empty(t, cfg.Checkpoint.Save)
	assert.Equal(t, []int64{1, 2, 3, 4}, cfg.Sweep.Seeds)
	assert.Equal(t, 0, cfg.Sweep.Workers)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xor.cue")
	require.NoError(t, os.WriteFile(path, []byte(`
train: {
	epochs:   500
	lr:       0.25
	hidden:   3
	strategy: "perpath"
}
log: level: "debug"
checkpoint: save: "out.json"
sweep: seeds: [7, 8]
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	tc, err := cfg.TrainConfig()
	require.NoError(t, err)
	assert.Equal(t, 500, tc.Epochs)
	assert.Equal(t, 0.25, tc.LR)
	assert.Equal(t, 3, tc.Hidden)
	assert.Equal(t, int64(1), tc.Seed)
	assert.Equal(t, autodiff.PerPath, tc.Strategy)
	assert.Equal(t, 1000, tc.LogEvery)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, "out.json", cfg.Checkpoint.Save)
	assert.Equal(t, []int64{7, 8}, cfg.Sweep.Seeds)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"negative epochs": `train: epochs: -1`,
		"unknown field":   `train: momentum: 0.9`,
		"bad strategy":    `train: strategy: "bfs"`,
		"bad level":       `log: level: "trace"`,
		"syntax":          `train: {`,
		"bad seeds":       `sweep: seeds: ["a"]`,
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(src), name+".cue")
			assert.True(t, errors.Is(err, config.ErrInvalid), "got %v", err)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.cue"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
