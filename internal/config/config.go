// Package config loads training configuration from CUE files.
//
// Files are unified with an embedded schema that supplies defaults and
// rejects unknown fields, then decoded into Config.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/train"
)

//go:embed schema.cue
var schemaSrc string

// ErrInvalid is returned when a file does not satisfy the schema.
var ErrInvalid = errors.New("invalid config")

// Config is the decoded configuration file.
type Config struct {
	Train      TrainConfig      `json:"train"`
	Log        LogConfig        `json:"log"`
	Checkpoint CheckpointConfig `json:"checkpoint"`
	Sweep      SweepConfig      `json:"sweep"`
}

// TrainConfig mirrors train.Config with file-friendly types.
type TrainConfig struct {
	Epochs   int     `json:"epochs"`
	LR       float64 `json:"lr"`
	Hidden   int     `json:"hidden"`
	Seed     int64   `json:"seed"`
	Strategy string  `json:"strategy"`
	LogEvery int     `json:"log_every"`
}

// LogConfig selects log sinks.
type LogConfig struct {
	Level   string `json:"level"`
	File    string `json:"file"`
	Journal bool   `json:"journal"`
}

// CheckpointConfig names optional checkpoint files.
type CheckpointConfig struct {
	Load string `json:"load"`
	Save string `json:"save"`
}

// SweepConfig lists the seeds of a multi-seed run.
type SweepConfig struct {
	Seeds   []int64 `json:"seeds"`
	Workers int     `json:"workers"` // 0 uses every CPU
}

// Default returns the configuration produced by an empty file.
func Default() (Config, error) {
	return Parse(nil, "default.cue")
}

// Load reads and validates the CUE file at path.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(content, path)
}

// Parse validates CUE source against the schema and decodes it.
// filename is used in error positions only.
func Parse(src []byte, filename string) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	unified := def.Unify(value)
	if err := unified.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// TrainConfig converts the file section into a train.Config.
func (c Config) TrainConfig() (train.Config, error) {
	strategy, err := autodiff.ParseStrategy(c.Train.Strategy)
	if err != nil {
		return train.Config{}, err
	}
	return train.Config{
		Epochs:   c.Train.Epochs,
		LR:       c.Train.LR,
		Hidden:   c.Train.Hidden,
		Seed:     c.Train.Seed,
		Strategy: strategy,
		LogEvery: c.Train.LogEvery,
	}, nil
}

// SlogLevel parses the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return level, nil
}
