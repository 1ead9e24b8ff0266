// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes.
const (
	OutcomeMatched       = "matched"
	OutcomeNotFound      = "not_found"
	OutcomeLowConfidence = "low_confidence"
	OutcomeExactID       = "exact_id"
)

var (
	// Resolution Metrics
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamefinder_resolutions_total",
			Help: "Total number of entity resolutions by entity kind and outcome",
		},
		[]string{"kind", "outcome"}, // kind: "app", "developer", "tag"
	)

	ResolutionScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamefinder_resolution_score",
			Help:    "Similarity score of the best match returned by single-best resolution",
			Buckets: []float64{10, 25, 40, 50, 60, 70, 75, 80, 90, 95, 100},
		},
		[]string{"kind"},
	)

	MatchesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gamefinder_matches_returned",
			Help:    "Number of candidates returned by threshold matching",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	SuggestionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamefinder_suggestions_total",
			Help: "Total number of phonetic suggestion lookups after an empty match",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamefinder_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "no_tags", "not_found", "empty"
	)

	RecommendationsFlagged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamefinder_recommendations_flagged_total",
			Help: "Total number of recommendation targets carrying a blocked content tag",
		},
	)

	// Typo Fixture Metrics
	TypoFixturesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamefinder_typo_fixtures_total",
			Help: "Total number of generated typo fixtures by result",
		},
		[]string{"result"}, // "verified", "fallback"
	)

	// Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamefinder_cache_hits_total",
			Help: "Total number of resolution cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamefinder_cache_misses_total",
			Help: "Total number of resolution cache misses",
		},
	)

	// Catalog Metrics
	CatalogApps = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamefinder_catalog_apps",
			Help: "Number of apps in the loaded catalog snapshot",
		},
	)

	CatalogTags = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamefinder_catalog_tags",
			Help: "Number of distinct tags in the loaded catalog snapshot",
		},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamefinder_operation_duration_seconds",
			Help:    "Duration of catalog service operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)
)

// RecordResolution records one single-best resolution. score is ignored for
// not-found outcomes.
func RecordResolution(kind, outcome string, score float64) {
	ResolutionsTotal.WithLabelValues(kind, outcome).Inc()
	if outcome != OutcomeNotFound {
		ResolutionScore.WithLabelValues(kind).Observe(score)
	}
}

// RecordMatches records the size of a threshold match result.
func RecordMatches(n int) {
	MatchesReturned.Observe(float64(n))
}

// RecordSuggestion records a fallback to phonetic suggestions.
func RecordSuggestion() {
	SuggestionsTotal.Inc()
}

// RecordRecommendation records one recommendation request.
func RecordRecommendation(outcome string, flagged bool) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if flagged {
		RecommendationsFlagged.Inc()
	}
}

// RecordTypoFixture records whether a generated fixture passed its self-check.
func RecordTypoFixture(verified bool) {
	result := "fallback"
	if verified {
		result = "verified"
	}
	TypoFixturesTotal.WithLabelValues(result).Inc()
}

// RecordCacheHit records a resolution cache hit.
func RecordCacheHit() {
	CacheHits.Inc()
}

// RecordCacheMiss records a resolution cache miss.
func RecordCacheMiss() {
	CacheMisses.Inc()
}

// SetCatalogSize publishes the size of the loaded catalog.
func SetCatalogSize(apps, tags int) {
	CatalogApps.Set(float64(apps))
	CatalogTags.Set(float64(tags))
}

// ObserveOperation records how long operation took since start.
//
//	defer metrics.ObserveOperation("recommend", time.Now())
func ObserveOperation(operation string, start time.Time) {
	OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes every registered metric to path in the Prometheus text
// format, for pickup by the node exporter textfile collector. The file is
// written atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
