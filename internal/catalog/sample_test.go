// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package catalog

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/tomtom215/gamefinder/internal/fuzzy"
	"github.com/tomtom215/gamefinder/internal/validation"
)

func TestRandomSample_Fixtures(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	sample, err := svc.RandomSample(context.Background(), SampleRequest{Count: 5, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	if sample.Seed != 7 {
		t.Errorf("Seed = %d, want 7", sample.Seed)
	}
	if len(sample.Fixtures) != 5 {
		t.Fatalf("len(Fixtures) = %d, want 5", len(sample.Fixtures))
	}

	seen := make(map[int64]bool)
	for _, f := range sample.Fixtures {
		if seen[f.ID] {
			t.Errorf("app %d sampled twice", f.ID)
		}
		seen[f.ID] = true

		app, ok := svc.idx.app(f.ID)
		if !ok || app.Name != f.Name {
			t.Errorf("fixture %+v does not match catalog", f)
		}

		if !f.Verified {
			if f.Typo != strconv.FormatInt(f.ID, 10) {
				t.Errorf("unverified fixture %q should fall back to the id %d", f.Typo, f.ID)
			}
			continue
		}

		best, ok := fuzzy.ResolveBest(f.Typo, svc.idx.apps, appName)
		if !ok || best.Entity.ID != f.ID {
			t.Errorf("typo %q resolves to %d, want %d", f.Typo, best.Entity.ID, f.ID)
		}
		if best.Score <= svc.opts.Typo.VerifyThreshold {
			t.Errorf("typo %q scored %.2f, want > %.0f", f.Typo, best.Score, svc.opts.Typo.VerifyThreshold)
		}
	}
}

func TestRandomSample_Deterministic(t *testing.T) {
	t.Parallel()
	serial := newTestService(t, func(o *Options) { o.Typo.Workers = 1 })
	parallel := newTestService(t, func(o *Options) { o.Typo.Workers = 8 })
	ctx := context.Background()

	a, err := serial.RandomSample(ctx, SampleRequest{Count: 6, Seed: 1234})
	if err != nil {
		t.Fatal(err)
	}
	b, err := parallel.RandomSample(ctx, SampleRequest{Count: 6, Seed: 1234})
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Fixtures {
		if a.Fixtures[i].Typo != b.Fixtures[i].Typo || a.Fixtures[i].ID != b.Fixtures[i].ID {
			t.Errorf("fixture %d differs: %+v vs %+v", i, a.Fixtures[i], b.Fixtures[i])
		}
	}
}

func TestRandomSample_CountClamping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(t, nil)
	tests := []struct {
		count int
		want  int
	}{
		{0, 8}, // default 15, capped by catalog size
		{1, 1},
		{3, 3},
		{100, 8},
	}
	for _, tt := range tests {
		sample, err := svc.RandomSample(ctx, SampleRequest{Count: tt.count, Seed: 1})
		if err != nil {
			t.Fatal(err)
		}
		if len(sample.Fixtures) != tt.want {
			t.Errorf("Count=%d gave %d fixtures, want %d", tt.count, len(sample.Fixtures), tt.want)
		}
	}

	capped := newTestService(t, func(o *Options) { o.Typo.MaxSample = 2 })
	sample, err := capped.RandomSample(ctx, SampleRequest{Count: 10, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(sample.Fixtures) != 2 {
		t.Errorf("MaxSample=2 gave %d fixtures", len(sample.Fixtures))
	}
}

func TestRandomSample_ConfiguredSeed(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, func(o *Options) { o.Typo.Seed = 99 })

	sample, err := svc.RandomSample(context.Background(), SampleRequest{Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if sample.Seed != 99 {
		t.Errorf("Seed = %d, want configured 99", sample.Seed)
	}
}

func TestRandomSample_Map(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	sample, err := svc.RandomSample(context.Background(), SampleRequest{Count: 8, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}

	m := sample.Map()
	if len(m) == 0 || len(m) > len(sample.Fixtures) {
		t.Fatalf("Map() has %d entries for %d fixtures", len(m), len(sample.Fixtures))
	}
	for _, f := range sample.Fixtures {
		if got, ok := m[f.Typo]; !ok || got.ID == 0 || got.Name == "" {
			t.Errorf("Map()[%q] = %+v, %v", f.Typo, got, ok)
		}
	}
}

func TestRandomSample_Errors(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, nil)

	var verr *validation.RequestValidationError
	if _, err := svc.RandomSample(context.Background(), SampleRequest{Count: -1}); !errors.As(err, &verr) {
		t.Errorf("negative count error = %v, want validation error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.RandomSample(ctx, SampleRequest{Count: 3, Seed: 1}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled error = %v, want context.Canceled", err)
	}
}
