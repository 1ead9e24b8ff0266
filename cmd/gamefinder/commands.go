// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamefinder/internal/catalog"
	"github.com/tomtom215/gamefinder/internal/logging"
	"github.com/tomtom215/gamefinder/internal/validation"
)

// errUsage marks a malformed command line.
var errUsage = errors.New("usage")

// command is one sub-command. run parses its own flags from args and returns
// the value to print.
type command struct {
	summary string
	run     func(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error)
}

var commands = map[string]command{
	"resolve": {
		summary: "best app for an id or name",
		run:     runResolve,
	},
	"search": {
		summary: "apps passing the similarity thresholds",
		run:     runSearch,
	},
	"like": {
		summary: "apps whose name contains the query",
		run:     runLike,
	},
	"complete": {
		summary: "apps whose name starts with the prefix",
		run:     runComplete,
	},
	"developer": {
		summary: "best developer for a name, with their apps",
		run:     runDeveloper,
	},
	"developers": {
		summary: "every developer in the catalog",
		run:     runDevelopers,
	},
	"tag": {
		summary: "best tag for an id or name, with its apps",
		run:     runTag,
	},
	"related": {
		summary: "tags, genres or categories of an app",
		run:     runRelated,
	},
	"recommend": {
		summary: "apps sharing the most tags with an app",
		run:     runRecommend,
	},
	"sample": {
		summary: "random typo fixtures that still resolve",
		run:     runSample,
	},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// execute runs one command against svc and writes its JSON result to stdout.
func execute(ctx context.Context, svc *catalog.Service, name string, args []string, stdout, stderr io.Writer) int {
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q; commands: %s\n", name, strings.Join(commandNames(), ", "))
		return exitUsage
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	result, err := cmd.run(ctx, svc, fs, args)
	if err != nil {
		return reportError(ctx, name, err, stderr)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("command", name).Msg("Failed to encode result")
		return exitError
	}
	return exitOK
}

// reportError maps err to an exit code and prints a one-line reason.
func reportError(ctx context.Context, name string, err error, stderr io.Writer) int {
	var verr *validation.RequestValidationError
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitUsage
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitUsage
	case errors.As(err, &verr):
		fmt.Fprintf(stderr, "%s: invalid request: %v\n", name, verr)
		return exitUsage
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, catalog.ErrNoTags),
		errors.Is(err, catalog.ErrLowConfidence):
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitNotFound
	default:
		logging.Ctx(ctx).Error().Err(err).Str("command", name).Msg("Command failed")
		return exitError
	}
}

// parseFlags parses fs, marking malformed flags as usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", errUsage, err)
}

// parseQuery parses flags and joins the remaining arguments into one query,
// so that multi-word names need no quoting.
func parseQuery(fs *flag.FlagSet, args []string) (string, error) {
	if err := parseFlags(fs, args); err != nil {
		return "", err
	}
	if fs.NArg() == 0 {
		return "", fmt.Errorf("%w: missing query", errUsage)
	}
	return strings.Join(fs.Args(), " "), nil
}

func runResolve(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	exact := fs.Bool("exact", false, "case-insensitive equality instead of fuzzy matching")
	query, err := parseQuery(fs, args)
	if err != nil {
		return nil, err
	}
	return svc.LookupApp(ctx, catalog.LookupRequest{Query: query, Exact: *exact})
}

func runSearch(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	limit := fs.Int("limit", 0, "maximum matches, 0 for all")
	query, err := parseQuery(fs, args)
	if err != nil {
		return nil, err
	}
	return svc.Search(ctx, catalog.SearchRequest{Query: query, Limit: *limit})
}

func runLike(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	limit := fs.Int("limit", 0, "maximum results, 0 for all")
	query, err := parseQuery(fs, args)
	if err != nil {
		return nil, err
	}
	return svc.SearchLike(ctx, catalog.SearchRequest{Query: query, Limit: *limit})
}

func runComplete(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	limit := fs.Int("limit", 10, "maximum completions, 0 for all")
	query, err := parseQuery(fs, args)
	if err != nil {
		return nil, err
	}
	return svc.Complete(ctx, catalog.SearchRequest{Query: query, Limit: *limit})
}

func runDeveloper(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	exact := fs.Bool("exact", false, "case-insensitive equality instead of fuzzy matching")
	query, err := parseQuery(fs, args)
	if err != nil {
		return nil, err
	}
	return svc.LookupDeveloper(ctx, catalog.LookupRequest{Query: query, Exact: *exact})
}

func runDevelopers(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	withApps := fs.Bool("apps", false, "include each developer's apps")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("%w: developers takes no query", errUsage)
	}
	return svc.Developers(ctx, *withApps)
}

func runTag(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	exact := fs.Bool("exact", false, "case-insensitive equality instead of fuzzy matching")
	query, err := parseQuery(fs, args)
	if err != nil {
		return nil, err
	}
	return svc.AppsByTag(ctx, catalog.LookupRequest{Query: query, Exact: *exact})
}

func runRelated(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	relation := fs.String("relation", string(catalog.RelationTags), "tags, genres or categories")
	exact := fs.Bool("exact", false, "case-insensitive equality instead of fuzzy matching")
	query, err := parseQuery(fs, args)
	if err != nil {
		return nil, err
	}
	return svc.Related(ctx, catalog.RelatedRequest{
		Query:    query,
		Relation: catalog.Relation(*relation),
		Exact:    *exact,
	})
}

func runRecommend(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	k := fs.Int("k", 0, "number of recommendations, 0 for the configured default")
	query, err := parseQuery(fs, args)
	if err != nil {
		return nil, err
	}
	return svc.Recommend(ctx, catalog.RecommendRequest{Query: query, K: *k})
}

// sampleOutput is the fixture map keyed by typo, plus the seed that
// reproduces it.
type sampleOutput struct {
	Seed     int64                       `json:"seed"`
	Fixtures map[string]catalog.Expected `json:"fixtures"`
}

func runSample(ctx context.Context, svc *catalog.Service, fs *flag.FlagSet, args []string) (any, error) {
	count := fs.Int("count", 0, "number of fixtures, 0 for the default")
	seed := fs.Int64("seed", 0, "random seed, 0 for the configured seed")
	verbose := fs.Bool("v", false, "print every fixture with its score and operators")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("%w: sample takes no query", errUsage)
	}

	sample, err := svc.RandomSample(ctx, catalog.SampleRequest{Count: *count, Seed: *seed})
	if err != nil {
		return nil, err
	}
	if *verbose {
		return sample, nil
	}
	return sampleOutput{Seed: sample.Seed, Fixtures: sample.Map()}, nil
}
