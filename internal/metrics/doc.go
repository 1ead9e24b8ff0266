// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

/*
Package metrics provides Prometheus metrics for catalog resolution,
recommendation and typo fixture generation.

Collectors are registered on the default registry via promauto. The CLI is
short-lived, so instead of serving /metrics it writes a snapshot of the
registry to a file in the Prometheus text format with WriteTextfile. The
node exporter textfile collector can pick that file up.

# Available Metrics

Resolution Metrics:
  - gamefinder_resolutions_total: Resolutions (counter)
    Labels: kind, outcome
  - gamefinder_resolution_score: Best-match score (histogram)
    Labels: kind
  - gamefinder_matches_returned: Threshold match result size (histogram)
  - gamefinder_suggestions_total: Phonetic fallbacks (counter)

Recommendation Metrics:
  - gamefinder_recommendations_total: Requests (counter)
    Labels: outcome
  - gamefinder_recommendations_flagged_total: Flagged targets (counter)

Typo Fixture Metrics:
  - gamefinder_typo_fixtures_total: Generated fixtures (counter)
    Labels: result (verified, fallback)

Cache Metrics:
  - gamefinder_cache_hits_total, gamefinder_cache_misses_total

Catalog Metrics:
  - gamefinder_catalog_apps, gamefinder_catalog_tags (gauges)
  - gamefinder_operation_duration_seconds (histogram)
    Labels: operation

# Usage

	defer metrics.ObserveOperation("recommend", time.Now())
	metrics.RecordResolution("app", metrics.OutcomeMatched, 91.3)

	if err := metrics.WriteTextfile("/var/lib/node_exporter/gamefinder.prom"); err != nil {
	    logging.Warn().Err(err).Msg("metrics export failed")
	}
*/
package metrics
