// Package train runs gradient-descent training of scalar networks.
package train

import (
	"errors"
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Errors returned by the trainer.
var (
	ErrInvalidConfig = errors.New("invalid training config")
	ErrEmptyDataset  = errors.New("dataset is empty")
)

// Config holds training hyperparameters.
type Config struct {
	Epochs   int               // Full passes over the dataset (default: 10000)
	LR       float64           // SGD learning rate (default: 0.5)
	Hidden   int               // Hidden units of the XOR network (default: 2)
	Seed     int64             // Weight initialization seed (default: 1)
	Strategy autodiff.Strategy // Backward traversal strategy (default: Topological)
	LogEvery int               // Log mean loss every N epochs, 0 disables (default: 1000)
}

// DefaultConfig returns the configuration of the classic XOR run.
func DefaultConfig() Config {
	return Config{
		Epochs:   10000,
		LR:       0.5,
		Hidden:   2,
		Seed:     1,
		Strategy: autodiff.Topological,
		LogEvery: 1000,
	}
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	switch {
	case c.Epochs <= 0:
		return fmt.Errorf("%w: epochs must be positive, got %d", ErrInvalidConfig, c.Epochs)
	case c.LR <= 0:
		return fmt.Errorf("%w: lr must be positive, got %g", ErrInvalidConfig, c.LR)
	case c.Hidden <= 0:
		return fmt.Errorf("%w: hidden must be positive, got %d", ErrInvalidConfig, c.Hidden)
	case c.LogEvery < 0:
		return fmt.Errorf("%w: log_every must not be negative, got %d", ErrInvalidConfig, c.LogEvery)
	case c.Strategy != autodiff.Topological && c.Strategy != autodiff.PerPath:
		return fmt.Errorf("%w: %w: %s", ErrInvalidConfig, autodiff.ErrUnknownStrategy, c.Strategy)
	}
	return nil
}
