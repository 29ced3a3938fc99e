// Package main provides the scalargrad CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/config"
	"github.com/born-ml/scalargrad/internal/data"
	"github.com/born-ml/scalargrad/internal/logs"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/parallel"
	"github.com/born-ml/scalargrad/internal/train"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "scalargrad %s\n", version)
		return 0
	case "train", "sweep":
		cmd := runTrain
		if args[0] == "sweep" {
			cmd = runSweep
		}
		if err := cmd(ctx, args[1:], stdout, stderr); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "scalargrad - scalar reverse-mode autodiff")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  train      Train the XOR network and print its outputs")
	fmt.Fprintln(w, "  sweep      Train one network per seed concurrently")
	fmt.Fprintln(w, "  version    Show version")
}

// settings are the flags shared by train and sweep.
type settings struct {
	configPath *string
	epochs     *int
	lr         *float64
	hidden     *int
	seed       *int64
	strategy   *string
	logEvery   *int
	logLevel   *string
	logFile    *string
	journal    *bool
}

func registerSettings(fs *flag.FlagSet) *settings {
	return &settings{
		configPath: fs.String("config", "", "CUE config file (defaults apply when empty)"),
		epochs:     fs.Int("epochs", 0, "Number of training epochs"),
		lr:         fs.Float64("lr", 0, "Learning rate for SGD"),
		hidden:     fs.Int("hidden", 0, "Hidden units"),
		seed:       fs.Int64("seed", 0, "Weight initialization seed"),
		strategy:   fs.String("strategy", "", "Backward strategy: topological or perpath"),
		logEvery:   fs.Int("log-every", 0, "Log mean loss every N epochs (0 = never)"),
		logLevel:   fs.String("log-level", "", "Log level: debug, info, warn, error"),
		logFile:    fs.String("log-file", "", "Also write JSON logs to this file"),
		journal:    fs.Bool("journal", false, "Also write logs to the systemd journal"),
	}
}

// resolve loads the config file and applies explicitly set flags on top.
func (s *settings) resolve(fs *flag.FlagSet) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if *s.configPath != "" {
		cfg, err = config.Load(*s.configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return config.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "epochs":
			cfg.Train.Epochs = *s.epochs
		case "lr":
			cfg.Train.LR = *s.lr
		case "hidden":
			cfg.Train.Hidden = *s.hidden
		case "seed":
			cfg.Train.Seed = *s.seed
		case "strategy":
			cfg.Train.Strategy = *s.strategy
		case "log-every":
			cfg.Train.LogEvery = *s.logEvery
		case "log-level":
			cfg.Log.Level = *s.logLevel
		case "log-file":
			cfg.Log.File = *s.logFile
		case "journal":
			cfg.Log.Journal = *s.journal
		}
	})
	return cfg, nil
}

// newLogger builds the logger described by cfg. The returned func closes
// the log file, if any.
func newLogger(cfg config.LogConfig, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	opts := logs.Options{Level: level, Writer: stderr, Journal: cfg.Journal}
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		opts.JSON = f
		closeFn = func() { _ = f.Close() }
	}
	return logs.New(opts), closeFn, nil
}

func runTrain(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	s := registerSettings(fs)
	load := fs.String("load", "", "Load parameters from a checkpoint before training")
	save := fs.String("save", "", "Save parameters to a checkpoint after training")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := s.resolve(fs)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "load":
			cfg.Checkpoint.Load = *load
		case "save":
			cfg.Checkpoint.Save = *save
		}
	})

	trainCfg, err := cfg.TrainConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	trainer, err := train.New(trainCfg, logger)
	if err != nil {
		return err
	}
	if cfg.Checkpoint.Load != "" {
		ckpt, err := nn.LoadCheckpoint(cfg.Checkpoint.Load, trainer.Model())
		if err != nil {
			return err
		}
		logger.Info("checkpoint loaded", "path", cfg.Checkpoint.Load, "epoch", ckpt.Epoch, "loss", ckpt.Loss)
	}

	ds := data.XOR()
	hist, err := trainer.Fit(ctx, ds)
	if err != nil {
		return err
	}

	for _, p := range trainer.Results(ds) {
		fmt.Fprintf(stdout, "Input: %g %g Output: %g\n", p.Inputs[0], p.Inputs[1], p.Output)
	}

	if cfg.Checkpoint.Save != "" {
		ckpt := nn.NewCheckpoint(trainer.Model(), len(hist.EpochLoss), hist.Final())
		if err := ckpt.Save(cfg.Checkpoint.Save); err != nil {
			return err
		}
		logger.Info("checkpoint saved", "path", cfg.Checkpoint.Save)
	}

	logSummary(logger, trainCfg.Strategy, hist)
	return nil
}

func runSweep(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	s := registerSettings(fs)
	seeds := fs.String("seeds", "", "Comma-separated seeds, e.g. 1,2,3")
	workers := fs.Int("workers", 0, "Concurrent runs (0 = number of CPUs)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := s.resolve(fs)
	if err != nil {
		return err
	}
	if *seeds != "" {
		cfg.Sweep.Seeds, err = parseSeeds(*seeds)
		if err != nil {
			return err
		}
	}
	if *workers > 0 {
		cfg.Sweep.Workers = *workers
	}

	trainCfg, err := cfg.TrainConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	pcfg := parallel.Config{Enabled: true, NumWorkers: cfg.Sweep.Workers}
	results, err := train.Sweep(ctx, trainCfg, data.XOR(), cfg.Sweep.Seeds, pcfg, logger)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stdout, "seed=%d error=%v\n", r.Seed, r.Err)
			continue
		}
		fmt.Fprintf(stdout, "seed=%d loss=%g solved=%t\n", r.Seed, r.History.Final(), solved(r.Predictions))
	}
	return err
}

func parseSeeds(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	seeds := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", p, err)
		}
		seeds = append(seeds, n)
	}
	return seeds, nil
}

// solved reports whether every output rounds to its target.
func solved(preds []train.Prediction) bool {
	for _, p := range preds {
		if math.Abs(p.Output-p.Target) >= 0.5 {
			return false
		}
	}
	return len(preds) > 0
}

func logSummary(logger *slog.Logger, strategy autodiff.Strategy, hist train.History) {
	logger.Debug("summary",
		"strategy", strategy.String(),
		"epochs", len(hist.EpochLoss),
		"final_loss", hist.Final(),
	)
}
