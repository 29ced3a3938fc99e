package train

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/data"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
)

// Trainer fits a single-output model with per-sample SGD.
//
// For every sample it zeroes all parameter gradients, builds a fresh graph,
// seeds Backward with the squared-error derivative, and applies one update.
type Trainer struct {
	cfg    Config
	model  nn.Module
	opt    *optim.SGD
	logger *slog.Logger
}

// History records the mean loss of each completed epoch.
type History struct {
	EpochLoss []float64
}

// Final returns the mean loss of the last completed epoch, or 0 if none.
func (h History) Final() float64 {
	if len(h.EpochLoss) == 0 {
		return 0
	}
	return h.EpochLoss[len(h.EpochLoss)-1]
}

// Prediction pairs a sample with the model output.
type Prediction struct {
	Inputs []float64
	Target float64
	Output float64
}

// New creates a trainer for a freshly initialized XOR network.
//
// A nil logger discards all log output.
func New(cfg Config, logger *slog.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(cfg.Seed))
	return NewWithModel(cfg, nn.NewXORNet(rng, cfg.Hidden), logger)
}

// NewWithModel creates a trainer for an existing model.
//
// Hidden and Seed are ignored; the model is used as given.
func NewWithModel(cfg Config, model nn.Module, logger *slog.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Trainer{
		cfg:    cfg,
		model:  model,
		opt:    optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LR}),
		logger: logger,
	}, nil
}

// Model returns the model being trained.
func (t *Trainer) Model() nn.Module {
	return t.model
}

// Fit trains for cfg.Epochs passes over ds, visiting samples in order.
//
// Cancellation is checked between epochs; the history up to that point is
// returned together with the wrapped context error.
func (t *Trainer) Fit(ctx context.Context, ds *data.Dataset) (History, error) {
	var hist History
	if ds.Len() == 0 {
		return hist, ErrEmptyDataset
	}

	t.logger.Info("training started",
		"dataset", ds.Name(),
		"samples", ds.Len(),
		"params", len(t.model.Parameters()),
		"epochs", t.cfg.Epochs,
		"lr", t.cfg.LR,
		"strategy", t.cfg.Strategy.String(),
	)

	hist.EpochLoss = make([]float64, 0, t.cfg.Epochs)
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			t.logger.Warn("training interrupted", "epoch", epoch, "error", err)
			return hist, fmt.Errorf("training stopped at epoch %d: %w", epoch, err)
		}

		total := 0.0
		for _, sample := range ds.Samples() {
			total += t.Step(sample)
		}
		mean := total / float64(ds.Len())
		hist.EpochLoss = append(hist.EpochLoss, mean)

		if t.cfg.LogEvery > 0 && (epoch+1)%t.cfg.LogEvery == 0 {
			t.logger.Info("epoch", "epoch", epoch+1, "loss", mean)
		} else {
			t.logger.Debug("epoch", "epoch", epoch+1, "loss", mean)
		}
	}

	t.logger.Info("training finished", "loss", hist.Final())
	return hist, nil
}

// Step runs one forward/backward/update cycle on a sample and returns its loss
// measured before the update.
func (t *Trainer) Step(sample data.Sample) float64 {
	t.opt.ZeroGrad()

	out := t.forward(sample.Inputs)
	loss, seed := nn.MSELoss(out, sample.Target)
	autodiff.BackwardWith(out, seed, t.cfg.Strategy)

	t.opt.Step()
	return loss
}

// Predict returns the model output for inputs.
func (t *Trainer) Predict(inputs []float64) float64 {
	return t.forward(inputs).Value()
}

// Results evaluates the model on every sample of ds.
func (t *Trainer) Results(ds *data.Dataset) []Prediction {
	out := make([]Prediction, ds.Len())
	for i, s := range ds.Samples() {
		out[i] = Prediction{
			Inputs: s.Inputs,
			Target: s.Target,
			Output: t.Predict(s.Inputs),
		}
	}
	return out
}

func (t *Trainer) forward(inputs []float64) *autodiff.Value {
	outs := t.model.Forward(nn.Leaves(inputs))
	if len(outs) != 1 {
		panic(fmt.Sprintf("Trainer: model must have a single output, got %d", len(outs)))
	}
	return outs[0]
}
