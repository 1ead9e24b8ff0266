// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package catalog

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamefinder/internal/cache"
	"github.com/tomtom215/gamefinder/internal/fuzzy"
	"github.com/tomtom215/gamefinder/internal/logging"
	"github.com/tomtom215/gamefinder/internal/metrics"
	"github.com/tomtom215/gamefinder/internal/phonetic"
	"github.com/tomtom215/gamefinder/internal/recommend"
	"github.com/tomtom215/gamefinder/internal/validation"
)

// Entity kinds used in errors, cache keys and metric labels.
const (
	kindApp       = "app"
	kindDeveloper = "developer"
	kindTag       = "tag"
)

// Service answers lookup, search and recommendation queries over one
// immutable catalog snapshot. It is safe for concurrent use.
type Service struct {
	idx       *index
	opts      Options
	cache     *cache.Cache
	suggester *phonetic.Suggester
	logger    zerolog.Logger
}

// NewService indexes snap and returns a Service over it. logger is used as
// given; callers tag it, e.g. with logging.WithComponent("catalog").
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(snap *Snapshot, opts Options, logger zerolog.Logger) (*Service, error) {
	if snap == nil || len(snap.Apps) == 0 {
		return nil, ErrEmptyCatalog
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	s := &Service{
		idx:       buildIndex(snap),
		opts:      opts,
		suggester: phonetic.New(phonetic.WithLimit(opts.SuggestLimit)),
		logger:    logger,
	}
	if opts.CacheEnabled {
		s.cache = cache.NewWithLimit(opts.CacheTTL, opts.CacheMaxEntries)
	}

	metrics.SetCatalogSize(len(s.idx.apps), len(s.idx.tags))
	s.logger.Info().
		Int("apps", len(s.idx.apps)).
		Int("tags", len(s.idx.tags)).
		Int("developers", len(s.idx.developers)).
		Int("tag_links", s.idx.membership.Len()).
		Int("distinct_names", s.idx.names.Size()).
		Bool("cache", opts.CacheEnabled).
		Msg("catalog indexed")

	return s, nil
}

// Close releases background resources and logs cache effectiveness.
func (s *Service) Close() {
	if s.cache == nil {
		return
	}
	s.cache.Close()

	stats := s.cache.GetStats()
	s.logger.Info().
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Int64("evictions", stats.Evictions).
		Float64("hit_rate", round2(s.cache.HitRate())).
		Msg("resolution cache closed")
}

// Len returns the number of apps in the catalog.
func (s *Service) Len() int {
	return len(s.idx.apps)
}

// log returns the service logger carrying the correlation ID from ctx.
func (s *Service) log(ctx context.Context) *zerolog.Logger {
	return logging.Ctx(logging.ContextWithLogger(ctx, s.logger))
}

// normalizeQuery trims q and converts it to NFC, the form catalog names are
// stored in.
func normalizeQuery(q string) string {
	return normalizeName(q)
}

// LookupRequest identifies one app, developer or tag by id or name.
type LookupRequest struct {
	Query string `json:"query" validate:"required,notblank,max=256"`

	// Exact disables fuzzy matching in favour of case-insensitive equality.
	Exact bool `json:"exact"`
}

// AppMatch is a resolved app.
type AppMatch struct {
	App   App     `json:"app"`
	Score float64 `json:"score"`
	ByID  bool    `json:"by_id,omitempty"`
}

// LookupApp resolves an app by numeric id, exact name, or best fuzzy match.
// An all-digit query is always treated as an id.
func (s *Service) LookupApp(ctx context.Context, req LookupRequest) (AppMatch, error) {
	defer metrics.ObserveOperation("lookup_app", time.Now())

	if err := validation.Validate(&req); err != nil {
		return AppMatch{}, err
	}
	if err := ctx.Err(); err != nil {
		return AppMatch{}, err
	}
	return s.lookupApp(ctx, req.Query, !req.Exact)
}

func (s *Service) lookupApp(ctx context.Context, query string, fuzzyMode bool) (AppMatch, error) {
	q := normalizeQuery(query)

	if id, ok := parseID(q); ok {
		app, found := s.idx.app(id)
		if !found {
			metrics.RecordResolution(kindApp, metrics.OutcomeNotFound, 0)
			return AppMatch{}, fmt.Errorf("app %d: %w", id, ErrNotFound)
		}
		metrics.RecordResolution(kindApp, metrics.OutcomeExactID, fuzzy.MaxScore)
		return AppMatch{App: app, Score: fuzzy.MaxScore, ByID: true}, nil
	}

	if !fuzzyMode {
		app, err := s.exactApp(q)
		if err != nil {
			return AppMatch{}, err
		}
		return AppMatch{App: app, Score: fuzzy.MaxScore}, nil
	}

	best, err := resolve(ctx, s, kindApp, q, s.idx.apps, appName)
	if err != nil {
		return AppMatch{}, err
	}
	return AppMatch{App: best.Entity, Score: round2(best.Score)}, nil
}

// DeveloperMatch is a resolved developer with their apps.
type DeveloperMatch struct {
	Name  string    `json:"name"`
	Score float64   `json:"score"`
	Apps  []Summary `json:"apps"`
}

// LookupDeveloper resolves a developer name and lists their apps.
func (s *Service) LookupDeveloper(ctx context.Context, req LookupRequest) (DeveloperMatch, error) {
	defer metrics.ObserveOperation("lookup_developer", time.Now())

	if err := validation.Validate(&req); err != nil {
		return DeveloperMatch{}, err
	}
	if err := ctx.Err(); err != nil {
		return DeveloperMatch{}, err
	}

	q := normalizeQuery(req.Query)
	var name string
	score := fuzzy.MaxScore

	if req.Exact {
		dev, err := exactMatch(kindDeveloper, q, s.idx.developers, developerName)
		if err != nil {
			return DeveloperMatch{}, err
		}
		name = dev
	} else {
		best, err := resolve(ctx, s, kindDeveloper, q, s.idx.developers, developerName)
		if err != nil {
			return DeveloperMatch{}, err
		}
		name, score = best.Entity, round2(best.Score)
	}

	return DeveloperMatch{
		Name:  name,
		Score: score,
		Apps:  s.idx.summaries(s.idx.appsByDeveloper[name]),
	}, nil
}

// TagMatch is a resolved tag with the apps carrying it.
type TagMatch struct {
	Tag   recommend.Tag `json:"tag"`
	Score float64       `json:"score"`
	Apps  []Summary     `json:"apps"`
}

// AppsByTag resolves a tag by numeric id or name and lists the apps
// carrying it.
func (s *Service) AppsByTag(ctx context.Context, req LookupRequest) (TagMatch, error) {
	defer metrics.ObserveOperation("apps_by_tag", time.Now())

	if err := validation.Validate(&req); err != nil {
		return TagMatch{}, err
	}
	if err := ctx.Err(); err != nil {
		return TagMatch{}, err
	}

	q := normalizeQuery(req.Query)
	var tag recommend.Tag
	score := fuzzy.MaxScore

	switch id, isID := parseID(q); {
	case isID:
		t, ok := s.idx.tagByID[id]
		if !ok {
			metrics.RecordResolution(kindTag, metrics.OutcomeNotFound, 0)
			return TagMatch{}, fmt.Errorf("tag %d: %w", id, ErrNotFound)
		}
		metrics.RecordResolution(kindTag, metrics.OutcomeExactID, fuzzy.MaxScore)
		tag = t
	case req.Exact:
		t, err := exactMatch(kindTag, q, s.idx.tags, tagName)
		if err != nil {
			return TagMatch{}, err
		}
		tag = t
	default:
		best, err := resolve(ctx, s, kindTag, q, s.idx.tags, tagName)
		if err != nil {
			return TagMatch{}, err
		}
		tag, score = best.Entity, round2(best.Score)
	}

	return TagMatch{
		Tag:   tag,
		Score: score,
		Apps:  s.idx.summaries(s.idx.appsByTag[tag.ID]),
	}, nil
}

// Relation names a labelled association of an app.
type Relation string

// Supported relations.
const (
	RelationTags       Relation = "tags"
	RelationGenres     Relation = "genres"
	RelationCategories Relation = "categories"
)

// RelatedRequest asks for one relation of an app.
type RelatedRequest struct {
	Query    string   `json:"query" validate:"required,notblank,max=256"`
	Relation Relation `json:"relation" validate:"required,oneof=tags genres categories"`
	Exact    bool     `json:"exact"`
}

// Related returns the tags, genres or categories of an app. An app without
// any entries for the relation yields ErrNotFound.
func (s *Service) Related(ctx context.Context, req RelatedRequest) ([]recommend.Tag, error) {
	defer metrics.ObserveOperation("related", time.Now())

	if err := validation.Validate(&req); err != nil {
		return nil, err
	}

	match, err := s.lookupApp(ctx, req.Query, !req.Exact)
	if err != nil {
		return nil, err
	}

	var labels []recommend.Tag
	switch req.Relation {
	case RelationTags:
		labels = match.App.Tags
	case RelationGenres:
		labels = match.App.Genres
	case RelationCategories:
		labels = match.App.Categories
	}

	if len(labels) == 0 {
		return nil, fmt.Errorf("%s of app %d: %w", req.Relation, match.App.ID, ErrNotFound)
	}
	return append([]recommend.Tag(nil), labels...), nil
}

// SearchRequest is a free-text name search.
type SearchRequest struct {
	Query string `json:"query" validate:"required,notblank,max=256"`

	// Limit bounds the number of results. 0 returns all.
	Limit int `json:"limit" validate:"gte=0"`
}

// ScoredApp is a search hit.
type ScoredApp struct {
	Summary
	Score float64 `json:"score"`
}

// SearchResult holds threshold matches, or phonetic suggestions when there
// are none.
type SearchResult struct {
	Query       string                `json:"query"`
	Matches     []ScoredApp           `json:"matches"`
	Suggestions []phonetic.Suggestion `json:"suggestions,omitempty"`
}

// Search returns every app whose name passes either similarity threshold,
// best first. When nothing passes, phonetic suggestions are attached.
func (s *Service) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	defer metrics.ObserveOperation("search", time.Now())

	if err := validation.Validate(&req); err != nil {
		return SearchResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	q := normalizeQuery(req.Query)
	found := fuzzy.ResolveAll(q, s.idx.apps, appName, s.opts.Thresholds)
	metrics.RecordMatches(len(found))

	if req.Limit > 0 && len(found) > req.Limit {
		found = found[:req.Limit]
	}

	result := SearchResult{Query: q, Matches: make([]ScoredApp, len(found))}
	for i, m := range found {
		result.Matches[i] = ScoredApp{Summary: m.Entity.Summarize(), Score: round2(m.Score)}
	}

	if len(found) == 0 {
		metrics.RecordSuggestion()
		result.Suggestions = s.suggester.Suggest(q, s.idx.phonetic, s.opts.SuggestLimit)
		for i := range result.Suggestions {
			result.Suggestions[i].Score = round2(result.Suggestions[i].Score)
		}
	}

	s.log(ctx).Debug().
		Str("query", q).
		Int("matches", len(result.Matches)).
		Int("suggestions", len(result.Suggestions)).
		Msg("search")

	return result, nil
}

// SearchLike returns apps whose name contains the query, ignoring case.
func (s *Service) SearchLike(ctx context.Context, req SearchRequest) ([]Summary, error) {
	defer metrics.ObserveOperation("search_like", time.Now())

	if err := validation.Validate(&req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(normalizeQuery(req.Query))
	out := make([]Summary, 0)
	for i := range s.idx.apps {
		if strings.Contains(strings.ToLower(s.idx.apps[i].Name), needle) {
			out = append(out, s.idx.apps[i].Summarize())
			if req.Limit > 0 && len(out) == req.Limit {
				break
			}
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("apps like %q: %w", needle, ErrNotFound)
	}
	return out, nil
}

// Complete returns apps whose name starts with prefix, alphabetically.
// A zero limit returns every completion.
func (s *Service) Complete(ctx context.Context, req SearchRequest) ([]Summary, error) {
	defer metrics.ObserveOperation("complete", time.Now())

	if err := validation.Validate(&req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys := req.Limit
	if keys <= 0 {
		keys = s.idx.names.Size()
	}

	out := make([]Summary, 0)
	for _, hit := range s.idx.names.Autocomplete(normalizeQuery(req.Query), keys) {
		for _, id := range hit.Items {
			if req.Limit > 0 && len(out) == req.Limit {
				return out, nil
			}
			if app, ok := s.idx.app(id); ok {
				out = append(out, app.Summarize())
			}
		}
	}
	return out, nil
}

// Developers lists distinct developer names in app id order, optionally
// with their apps.
func (s *Service) Developers(ctx context.Context, withApps bool) ([]Developer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.idx.developers) == 0 {
		return nil, fmt.Errorf("developers: %w", ErrNotFound)
	}

	out := make([]Developer, len(s.idx.developers))
	for i, name := range s.idx.developers {
		out[i] = Developer{Name: name}
		if withApps {
			out[i].Apps = s.idx.summaries(s.idx.appsByDeveloper[name])
		}
	}
	return out, nil
}

// RecommendRequest asks for apps similar to one target.
type RecommendRequest struct {
	Query string `json:"query" validate:"required,notblank,max=256"`

	// K is the number of results. 0 selects the configured default; larger
	// values are capped at the configured maximum.
	K int `json:"k" validate:"gte=0"`
}

// Recommendation is the ranked neighbourhood of a target app.
type Recommendation struct {
	Target  AppMatch                    `json:"target"`
	Flagged bool                        `json:"flagged"`
	Results []recommend.Scored[Summary] `json:"results"`
}

// Recommend resolves the target by id or fuzzy name and ranks every other
// app by the share of the target's tags it carries. Targets carrying a
// blocked content tag are flagged.
func (s *Service) Recommend(ctx context.Context, req RecommendRequest) (Recommendation, error) {
	defer metrics.ObserveOperation("recommend", time.Now())

	req.Query = stripMarkup(req.Query)
	if err := validation.Validate(&req); err != nil {
		return Recommendation{}, err
	}
	if err := ctx.Err(); err != nil {
		return Recommendation{}, err
	}

	target, err := s.lookupApp(ctx, req.Query, true)
	if err != nil {
		metrics.RecordRecommendation("not_found", false)
		return Recommendation{}, err
	}
	if len(target.App.Tags) == 0 {
		metrics.RecordRecommendation("no_tags", false)
		return Recommendation{}, fmt.Errorf("app %d: %w", target.App.ID, ErrNoTags)
	}

	cfg := s.opts.Recommend
	pool := make([]App, 0, len(s.idx.apps)-1)
	for i := range s.idx.apps {
		app := &s.idx.apps[i]
		if app.ID == target.App.ID {
			continue
		}
		if cfg.ExcludeBlocked && cfg.IsBlocked(app.Tags) {
			continue
		}
		pool = append(pool, *app)
	}

	k := cfg.ClampK(req.K)
	ranked := recommend.RankBySharedTags(target.App.Tags, pool, appID, s.idx.membership, k)

	rec := Recommendation{
		Target:  target,
		Flagged: cfg.IsBlocked(target.App.Tags),
		Results: make([]recommend.Scored[Summary], len(ranked)),
	}
	for i, r := range ranked {
		rec.Results[i] = recommend.Scored[Summary]{Entity: r.Entity.Summarize(), Score: r.Score}
	}

	outcome := "ok"
	if len(rec.Results) == 0 {
		outcome = "empty"
	}
	metrics.RecordRecommendation(outcome, rec.Flagged)

	s.log(ctx).Debug().
		Int64("appid", target.App.ID).
		Int("k", k).
		Int("results", len(rec.Results)).
		Bool("flagged", rec.Flagged).
		Msg("recommendation ranked")

	return rec, nil
}

// resolve runs single-best fuzzy resolution over candidates, memoized per
// kind and lower-cased query, and applies the confidence floor.
func resolve[T any](ctx context.Context, s *Service, kind, query string, candidates []T, name fuzzy.NameFunc[T]) (fuzzy.Match[T], error) {
	key := cache.GenerateKey("resolve_"+kind, strings.ToLower(query))

	var best fuzzy.Match[T]
	cached := false
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			best, cached = v.(fuzzy.Match[T])
		}
	}

	if !cached {
		m, ok := fuzzy.ResolveBest(query, candidates, name)
		if !ok {
			metrics.RecordResolution(kind, metrics.OutcomeNotFound, 0)
			return best, fmt.Errorf("%s %q: %w", kind, query, ErrNotFound)
		}
		best = m
		if s.cache != nil {
			s.cache.Set(key, best)
		}
	}

	if s.opts.MinConfidence > 0 && best.Score < s.opts.MinConfidence {
		metrics.RecordResolution(kind, metrics.OutcomeLowConfidence, best.Score)
		s.log(ctx).Info().
			Str("kind", kind).
			Str("query", query).
			Str("best", name(best.Entity)).
			Float64("score", best.Score).
			Msg("best match below confidence floor")
		return best, fmt.Errorf("%s %q: best match %q scored %.2f: %w",
			kind, query, name(best.Entity), best.Score, ErrLowConfidence)
	}

	metrics.RecordResolution(kind, metrics.OutcomeMatched, best.Score)
	s.log(ctx).Debug().
		Str("kind", kind).
		Str("query", query).
		Str("match", name(best.Entity)).
		Float64("score", best.Score).
		Bool("cached", cached).
		Msg("resolved")

	return best, nil
}

// exactApp returns the lowest-id app named query, ignoring case.
func (s *Service) exactApp(query string) (App, error) {
	if ids, ok := s.idx.names.Search(query); ok {
		if app, found := s.idx.app(ids[0]); found {
			metrics.RecordResolution(kindApp, metrics.OutcomeMatched, fuzzy.MaxScore)
			return app, nil
		}
	}
	metrics.RecordResolution(kindApp, metrics.OutcomeNotFound, 0)
	return App{}, fmt.Errorf("%s %q: %w", kindApp, query, ErrNotFound)
}

// exactMatch returns the first candidate whose name equals query ignoring case.
func exactMatch[T any](kind, query string, candidates []T, name fuzzy.NameFunc[T]) (T, error) {
	for _, c := range candidates {
		if strings.EqualFold(strings.TrimSpace(name(c)), query) {
			metrics.RecordResolution(kind, metrics.OutcomeMatched, fuzzy.MaxScore)
			return c, nil
		}
	}
	metrics.RecordResolution(kind, metrics.OutcomeNotFound, 0)

	var zero T
	return zero, fmt.Errorf("%s %q: %w", kind, query, ErrNotFound)
}

// parseID reports whether s is a non-empty run of ASCII digits that fits in
// an int64.
func parseID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// stripMarkup removes angle brackets from user input.
func stripMarkup(s string) string {
	return strings.TrimSpace(strings.NewReplacer("<", "", ">", "").Replace(s))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
