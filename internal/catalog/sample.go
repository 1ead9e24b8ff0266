// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/gamefinder/internal/metrics"
	"github.com/tomtom215/gamefinder/internal/typo"
	"github.com/tomtom215/gamefinder/internal/validation"
)

// SampleRequest asks for a batch of typo fixtures.
type SampleRequest struct {
	// Count is the number of fixtures. 0 selects DefaultSampleCount; the
	// result is always between 1 and the configured maximum.
	Count int `json:"count" validate:"gte=0"`

	// Seed overrides the configured seed when non-zero.
	Seed int64 `json:"seed"`
}

// Expected is the app a fixture must resolve to.
type Expected struct {
	ID   int64  `json:"expected_appid"`
	Name string `json:"expected_name"`
}

// Fixture is one generated typo and the app it stands for.
type Fixture struct {
	Typo string `json:"typo"`
	Expected
	Verified  bool     `json:"verified"`
	Score     float64  `json:"score"`
	Operators []string `json:"operators,omitempty"`
}

// Sample is a batch of fixtures in selection order.
type Sample struct {
	Seed     int64     `json:"seed"`
	Fixtures []Fixture `json:"fixtures"`
}

// Map returns the fixtures keyed by typo text. Later fixtures win on the
// rare collision.
func (s Sample) Map() map[string]Expected {
	out := make(map[string]Expected, len(s.Fixtures))
	for _, f := range s.Fixtures {
		out[f.Typo] = f.Expected
	}
	return out
}

// RandomSample picks distinct random apps and corrupts each name into a typo
// that still resolves back to it. The same seed yields the same sample
// regardless of worker scheduling.
func (s *Service) RandomSample(ctx context.Context, req SampleRequest) (Sample, error) {
	defer metrics.ObserveOperation("random_sample", time.Now())

	if err := validation.Validate(&req); err != nil {
		return Sample{}, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = s.opts.Typo.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	count := min(s.opts.clampSample(req.Count), len(s.idx.apps))
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // fixtures, not secrets
	picks := rng.Perm(len(s.idx.apps))[:count]

	fixtures := make([]Fixture, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Typo.Workers)

	for i, pos := range picks {
		app := s.idx.apps[pos]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			gen := typo.New(seed+int64(i)+1, typo.WithVerifyThreshold(s.opts.Typo.VerifyThreshold))
			res := gen.CorruptDetailed(app.Name, app.ID, s.idx.pool)
			metrics.RecordTypoFixture(res.Verified)

			ops := make([]string, len(res.Operators))
			for j, op := range res.Operators {
				ops[j] = op.String()
			}
			fixtures[i] = Fixture{
				Typo:      res.Text,
				Expected:  Expected{ID: app.ID, Name: app.Name},
				Verified:  res.Verified,
				Score:     round2(res.Score),
				Operators: ops,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Sample{}, fmt.Errorf("random sample: %w", err)
	}

	verified := 0
	for i := range fixtures {
		if fixtures[i].Verified {
			verified++
		}
	}
	s.log(ctx).Debug().
		Int64("seed", seed).
		Int("count", count).
		Int("verified", verified).
		Msg("typo sample generated")

	return Sample{Seed: seed, Fixtures: fixtures}, nil
}
