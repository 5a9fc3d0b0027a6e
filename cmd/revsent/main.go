// Command revsent scores review text against a sentiment lexicon.
//
// Usage:
//
//	revsent [-config run.yaml] [-mode compare|lines|file|template] [-format text|json] [-input path] [path]
//
// Without flags it compares the Spotify and Apple Music reviews in
// app_store_music_reviews.csv. A positional path overrides -input.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ahrav/go-revsent/infrastructure/middleware"
	"github.com/ahrav/go-revsent/infrastructure/templates"
	"github.com/ahrav/go-revsent/internal/application"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML run configuration")
		mode       = flag.String("mode", "", "Run mode: compare, lines, file or template")
		input      = flag.String("input", "", "Input file path")
		format     = flag.String("format", "", "Output format: text or json")
	)
	flag.Parse()

	cfg := application.DefaultRunConfig()
	if *configPath != "" {
		loaded, err := application.LoadRunConfigFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *input != "" {
		cfg.InputPath = *input
	}
	if flag.NArg() > 0 {
		cfg.InputPath = flag.Arg(0)
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("run failed", "mode", cfg.Mode, "input", cfg.InputPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error reading the file: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg application.RunConfig, logger *slog.Logger, out io.Writer) error {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewPrometheusMetrics(registry)

	res := application.NewLoader(logger, metrics).Load(ctx, cfg.Resources)

	seed := rand.Uint64()
	if cfg.Template.Seed != nil {
		seed = *cfg.Template.Seed
	}
	gen := templates.NewGenerator(res.Adjectives, rand.New(rand.NewPCG(seed, seed)))

	analyzer := application.NewAnalyzer(res, logger, metrics)
	report, err := analyzer.Run(ctx, cfg, gen)
	if err != nil {
		return err
	}

	if err := application.Render(out, cfg.Format, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.Metrics.TextfilePath != "" {
		if err := middleware.WriteTextfile(cfg.Metrics.TextfilePath, registry); err != nil {
			logger.Warn("metrics export failed", "path", cfg.Metrics.TextfilePath, "error", err)
		}
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
