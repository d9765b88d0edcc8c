// SPDX-License-Identifier: MIT

// Command stocks compares Markov-chain orders at predicting binned daily
// price changes. Prices come from a directory of SYMBOL.csv and
// SYMBOL_test.csv files or are generated synthetically.
//
// Usage:
//
//	stocks [-config lvkit.yaml] [-data DIR] [-plot] [-metrics]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvkit/config"
	"github.com/katalvlaran/lvkit/logging"
	"github.com/katalvlaran/lvkit/metrics"
	"github.com/katalvlaran/lvkit/plot"
	"github.com/katalvlaran/lvkit/stocks"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "stocks:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("stocks", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML config file")
	dataDir := fs.String("data", "", "directory of SYMBOL.csv and SYMBOL_test.csv; overrides stocks.data_dir")
	plots := fs.Bool("plot", false, "draw daily-change sparklines and bin histograms")
	dump := fs.Bool("metrics", false, "print metrics on exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *dataDir != "" {
		cfg.Stocks.DataDir = *dataDir
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Env)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	reg := metrics.NewRegistry()

	sc := cfg.Stocks
	var data map[string]stocks.Series
	if sc.DataDir != "" {
		data, err = stocks.LoadDir(sc.DataDir)
		if err != nil {
			return err
		}
		logger.Info("prices loaded", zap.String("dir", sc.DataDir), zap.Int("symbols", len(data)))
	} else {
		data = stocks.Synthetic(sc.Symbols, sc.Days, sc.Seed)
		logger.Info("synthetic prices", zap.Strings("symbols", sc.Symbols), zap.Int("days", sc.Days))
	}

	if *plots {
		symbols := make([]string, 0, len(data))
		for s := range data {
			symbols = append(symbols, s)
		}
		sort.Strings(symbols)
		for _, s := range symbols {
			fmt.Fprintln(stdout, plot.Sparkline(s+" daily change %", stocks.DailyChange(data[s].Train)))
		}
	}

	h := stocks.NewHarness(logger,
		stocks.WithOrders(sc.Orders...),
		stocks.WithTrials(sc.Trials),
		stocks.WithDays(sc.Horizon),
		stocks.WithSeed(sc.Seed),
		stocks.WithParallelism(sc.Parallelism),
		stocks.WithMetrics(reg),
	)
	reports, err := h.Run(ctx, data)
	if err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Fprintln(stdout, r.Symbol)
		fmt.Fprintln(stdout, "====")
		fmt.Fprintln(stdout, "Actual:", r.Actual)
		for _, res := range r.Results {
			fmt.Fprintf(stdout, "Order %d : %.4f\n", res.Order, res.MSE)
		}
		if best, ok := r.Best(); ok {
			fmt.Fprintf(stdout, "Best order: %d\n", best.Order)
		}
		if *plots {
			fmt.Fprintln(stdout, plot.Bars(r.Symbol+" bins", r.Histogram(), plot.BinLabel, plot.DefaultWidth))
		}
		fmt.Fprintln(stdout)
	}

	if *dump || cfg.Metrics.Dump {
		return reg.WriteText(stdout)
	}
	return nil
}
