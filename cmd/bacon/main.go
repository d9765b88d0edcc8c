// SPDX-License-Identifier: MIT

// Command bacon plays the Kevin Bacon game: it loads a cast file (or
// generates a synthetic cast), prints a shortest co-star path from the
// start actor to every target and draws distance histograms.
//
// Usage:
//
//	bacon [-config lvkit.yaml] [-file cast.tsv.sz] [-save out.tsv] [-metrics]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvkit/bacon"
	"github.com/katalvlaran/lvkit/bfs"
	"github.com/katalvlaran/lvkit/builder"
	"github.com/katalvlaran/lvkit/config"
	"github.com/katalvlaran/lvkit/core"
	"github.com/katalvlaran/lvkit/logging"
	"github.com/katalvlaran/lvkit/metrics"
	"github.com/katalvlaran/lvkit/plot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "bacon:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bacon", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML config file")
	file := fs.String("file", "", "cast file (.tsv or .sz); overrides bacon.file")
	save := fs.String("save", "", "write the loaded or generated cast to this file")
	dump := fs.Bool("metrics", false, "print metrics on exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *file != "" {
		cfg.Bacon.File = *file
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Env)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	reg := metrics.NewRegistry()

	g, err := loadCast(cfg.Bacon, logger)
	if err != nil {
		return err
	}
	if *save != "" {
		if err := bacon.WriteGraphFile(*save, g); err != nil {
			return err
		}
		logger.Info("cast saved", zap.String("path", *save))
	}

	outcomes, err := bacon.Play(ctx, g, cfg.Bacon.Start, cfg.Bacon.Targets, bacon.WithMetrics(reg))
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		fmt.Fprintf(stdout, "%s (%s): %s\n", o.Target, plot.DistanceLabel(o.Distance), bacon.FormatPath(o.Path))
	}

	for _, person := range cfg.Bacon.Histograms {
		hist, err := bfs.DistanceHistogram(g, person, bfs.WithContext(ctx))
		if err != nil {
			logger.Warn("histogram skipped", zap.String("person", person), zap.Error(err))
			continue
		}
		reg.RecordBFS(len(g.Vertices()) - hist[bfs.Unreachable])
		fmt.Fprintln(stdout, plot.Bars(person, hist, plot.DistanceLabel, plot.DefaultWidth))
	}

	if *dump || cfg.Metrics.Dump {
		return reg.WriteText(stdout)
	}
	return nil
}

// loadCast reads cfg.File, or builds a synthetic cast whose first actors
// carry the configured names so the game has something to find.
func loadCast(cfg config.BaconConfig, logger *zap.Logger) (*core.Graph, error) {
	if cfg.File != "" {
		g, err := bacon.LoadGraphFile(cfg.File)
		if err != nil {
			return nil, err
		}
		logger.Info("cast loaded", zap.String("file", cfg.File), zap.Int("actors", g.VertexCount()), zap.Int("pairs", g.EdgeCount()))
		return g, nil
	}

	names := namedActors(cfg)
	idFn := func(i int) string {
		if i < len(names) {
			return names[i]
		}
		return builder.PrefixIDFn("Actor ")(i)
	}
	sc := cfg.Synthetic
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(sc.Seed), builder.WithIDScheme(idFn)},
		builder.Cast(sc.Movies, sc.CastSize, max(sc.Actors, len(names))),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("synthetic cast", zap.Int("movies", sc.Movies), zap.Int("actors", g.VertexCount()), zap.Int64("seed", sc.Seed))
	return g, nil
}

// namedActors lists start, targets and histogram people once each, in order.
func namedActors(cfg config.BaconConfig) []string {
	seen := make(map[string]bool)
	var names []string
	for _, group := range [][]string{{cfg.Start}, cfg.Targets, cfg.Histograms} {
		for _, n := range group {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}
