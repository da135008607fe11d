// Command mapgen runs a map generation pipeline described by a TOML document and reports a
// summary of every attribute it produced.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/internal/config"
	"github.com/askiada/go-mapgen/pkg/pipeline"
	"github.com/askiada/go-mapgen/pkg/pipeline/attribute"
	"github.com/askiada/go-mapgen/pkg/pipeline/drawer"
	"github.com/askiada/go-mapgen/pkg/pipeline/measure"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// errUsage reports invalid command-line arguments.
var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mapgen:", err)

		if errors.Is(err, errUsage) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}

// parseArgs reads the settings from the environment then lets flags override them.
func parseArgs(args []string, output io.Writer) (string, config.Settings, error) {
	var settings config.Settings

	err := config.ParseEnv(&settings)
	if err != nil {
		return "", settings, err
	}

	flagSet := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
mapgen - run a declarative map generation pipeline.

Usage:
  mapgen [options] PIPELINE.toml

Options:
`)
		flagSet.PrintDefaults()
	}

	flagSet.IntVar(&settings.Workers, "workers", settings.Workers, "Goroutines computing rows of a step. 0 uses GOMAXPROCS.")
	flagSet.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&settings.LogFormat, "log-format", settings.LogFormat, "Log output format: 'text' or 'json'.")
	flagSet.StringVar(&settings.DOTFile, "dot", settings.DOTFile, "Write the attribute lineage graph to this DOT file.")
	flagSet.BoolVar(&settings.Preflight, "preflight", settings.Preflight, "Validate the whole pipeline before computing any cell.")

	err = flagSet.Parse(args)
	if err != nil {
		return "", settings, errors.Wrap(errUsage, err.Error())
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()

		return "", settings, errors.Wrap(errUsage, "expected exactly one pipeline document")
	}

	err = settings.Validate()
	if err != nil {
		return "", settings, errors.Wrap(errUsage, err.Error())
	}

	return flagSet.Arg(0), settings, nil
}

func run(ctx context.Context, args []string, output io.Writer) error {
	path, settings, err := parseArgs(args, output)
	if err != nil {
		return err
	}

	logger := newLogger(settings.LogLevel, settings.LogFormat, output)

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	msr := measure.NewDefaultMeasure()
	hooks := []model.PipelineOption{measure.PipelineMeasure(msr)}

	if settings.DOTFile != "" {
		hooks = append(hooks, drawer.PipelineDrawer(drawer.NewDOTDrawer(settings.DOTFile), msr))
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithHooks(hooks...),
	}

	if settings.Workers > 0 {
		opts = append(opts, pipeline.WithWorkers(settings.Workers))
	}

	if !settings.Preflight {
		opts = append(opts, pipeline.WithoutPreflight())
	}

	pipe, err := pipeline.New(cfg, opts...)
	if err != nil {
		return err
	}

	store, err := pipe.Run(ctx)
	if err != nil {
		return err
	}

	logSteps(logger, msr)

	return logAttributes(logger, store)
}

func logSteps(logger *slog.Logger, msr measure.Measure) {
	for _, label := range msr.Labels() {
		mt := msr.GetMetric(label)
		logger.Debug("step timing",
			"step", label,
			"rows", mt.Rows(),
			"avg_row", mt.AVGDuration(),
			"total", mt.GetTotalDuration(),
		)
	}
}

func logAttributes(logger *slog.Logger, store *attribute.Store) error {
	for _, name := range store.Names() {
		stats, err := store.Stats(name)
		if err != nil {
			return err
		}

		sum, err := store.Checksum(name)
		if err != nil {
			return err
		}

		logger.Info("attribute",
			"name", name,
			"min", stats.Min,
			"max", stats.Max,
			"mean", stats.Mean,
			"checksum", fmt.Sprintf("%016x", sum),
		)
	}

	return nil
}
