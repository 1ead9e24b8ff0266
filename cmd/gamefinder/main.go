// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

// Package main is the entry point for the gamefinder command.
//
// gamefinder loads a game catalog snapshot and answers one query per
// invocation, printing the result as JSON on stdout:
//
//	gamefinder resolve "hollow night"
//	gamefinder resolve --exact "Hollow Knight"
//	gamefinder search "dark souls"
//	gamefinder like souls
//	gamefinder complete dar
//	gamefinder developer "team chery"
//	gamefinder developers --apps
//	gamefinder tag metroidvania
//	gamefinder related --relation genres 40
//	gamefinder recommend --k 3 "Hollow Knight"
//	gamefinder sample --count 10 --seed 7
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (CATALOG_PATH, LOG_LEVEL, FUZZY_EDIT_THRESHOLD, ...)
//   - Config file (config.yaml or $CONFIG_PATH)
//   - Built-in defaults
//
// The global -catalog flag overrides catalog.path for one run.
//
// # Exit Codes
//
//	0  success
//	1  configuration, catalog or internal error
//	2  usage error or invalid request
//	3  nothing matched the query
//
// # Metrics
//
// When METRICS_TEXTFILE is set, the Prometheus registry is written there on
// exit for the node-exporter textfile collector.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/gamefinder/internal/catalog"
	"github.com/tomtom215/gamefinder/internal/config"
	"github.com/tomtom215/gamefinder/internal/logging"
	"github.com/tomtom215/gamefinder/internal/metrics"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitUsage    = 2
	exitNotFound = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run loads configuration and the catalog, then executes one command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("gamefinder", flag.ContinueOnError)
	global.SetOutput(stderr)
	catalogPath := global.String("catalog", "", "catalog snapshot file (overrides CATALOG_PATH)")
	global.Usage = func() { printUsage(global) }
	if err := global.Parse(args); err != nil {
		return exitUsage
	}
	if global.NArg() == 0 {
		printUsage(global)
		return exitUsage
	}
	if _, ok := commands[global.Arg(0)]; !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", global.Arg(0))
		printUsage(global)
		return exitUsage
	}

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return exitError
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}

	lc := cfg.LoggingOptions()
	lc.Output = stderr
	logging.Init(lc)

	ctx = logging.ContextWithNewCorrelationID(ctx)
	logger := logging.Ctx(ctx)

	logging.Debug().
		Str("catalog", cfg.Catalog.Path).
		Bool("cache", cfg.Cache.Enabled).
		Float64("min_confidence", cfg.Fuzzy.MinConfidence).
		Msg("configuration loaded")

	snap, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load catalog")
		return exitError
	}

	svc, err := catalog.NewService(snap, cfg.CatalogOptions(), logging.WithComponent("catalog"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize catalog service")
		return exitError
	}
	defer svc.Close()

	code := execute(ctx, svc, global.Arg(0), global.Args()[1:], stdout, stderr)

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn().Err(err).Str("path", cfg.Metrics.Textfile).Msg("Failed to write metrics textfile")
		}
	}

	return code
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage: gamefinder [-catalog path] <command> [flags] [query]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, name := range commandNames() {
		fmt.Fprintf(out, "  %-11s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Global flags:")
	fs.PrintDefaults()
}
