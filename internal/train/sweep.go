package train

import (
	"context"
	"errors"
	"log/slog"

	"github.com/born-ml/scalargrad/internal/data"
	"github.com/born-ml/scalargrad/internal/parallel"
)

// SweepResult is the outcome of one seed in a sweep.
type SweepResult struct {
	Seed        int64
	History     History
	Predictions []Prediction
	Err         error
}

// Sweep trains one fresh model per seed, running seeds concurrently.
//
// Each run owns its graph and parameters, so runs share nothing but ds, which
// is only read. Results are returned in seed order. The returned error joins
// every per-run error.
func Sweep(ctx context.Context, cfg Config, ds *data.Dataset, seeds []int64, pcfg parallel.Config, logger *slog.Logger) ([]SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	results := parallel.Map(len(seeds), func(i int) SweepResult {
		run := cfg
		run.Seed = seeds[i]
		res := SweepResult{Seed: seeds[i]}

		trainer, err := New(run, logger.With("seed", seeds[i]))
		if err != nil {
			res.Err = err
			return res
		}
		res.History, res.Err = trainer.Fit(ctx, ds)
		if res.Err == nil {
			res.Predictions = trainer.Results(ds)
		}
		return res
	}, pcfg)

	errs := make([]error, 0, len(results))
	for _, r := range results {
		errs = append(errs, r.Err)
	}
	return results, errors.Join(errs...)
}
