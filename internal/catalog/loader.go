// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/gamefinder/internal/recommend"
	"github.com/tomtom215/gamefinder/internal/validation"
)

// Format is a snapshot encoding.
type Format string

// Supported snapshot formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the snapshot format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension %q", filepath.Ext(path))
	}
}

// Load reads, normalizes and validates the snapshot at path.
func Load(path string) (*Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	snap, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return snap, nil
}

// Decode parses data in the given format, then normalizes and validates it.
func Decode(data []byte, format Format) (*Snapshot, error) {
	var snap Snapshot

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	normalize(&snap)

	if err := validateSnapshot(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// normalize trims names and converts them to NFC so that composed and
// decomposed spellings compare equal rune for rune.
func normalize(snap *Snapshot) {
	for i := range snap.Apps {
		app := &snap.Apps[i]
		app.Name = normalizeName(app.Name)
		app.Developer = normalizeName(app.Developer)
		for j := range app.Tags {
			app.Tags[j].Name = normalizeName(app.Tags[j].Name)
		}
		for j := range app.Genres {
			app.Genres[j].Name = normalizeName(app.Genres[j].Name)
		}
		for j := range app.Categories {
			app.Categories[j].Name = normalizeName(app.Categories[j].Name)
		}
	}
}

func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func validateSnapshot(snap *Snapshot) error {
	if len(snap.Apps) == 0 {
		return ErrEmptyCatalog
	}

	if err := validation.Validate(snap); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	seen := make(map[int64]struct{}, len(snap.Apps))
	for i := range snap.Apps {
		id := snap.Apps[i].ID
		if _, dup := seen[id]; dup {
			return fmt.Errorf("invalid catalog: duplicate appid %d", id)
		}
		seen[id] = struct{}{}
	}

	tags := make(map[int64]string)
	genres := make(map[int64]string)
	categories := make(map[int64]string)
	for i := range snap.Apps {
		app := &snap.Apps[i]
		if err := checkLabelNames("tag", tags, app.Tags); err != nil {
			return err
		}
		if err := checkLabelNames("genre", genres, app.Genres); err != nil {
			return err
		}
		if err := checkLabelNames("category", categories, app.Categories); err != nil {
			return err
		}
	}
	return nil
}

// checkLabelNames records the name of each label id in seen and fails when
// one id carries two different names.
func checkLabelNames(kind string, seen map[int64]string, labels []recommend.Tag) error {
	for _, l := range labels {
		if prev, ok := seen[l.ID]; ok && !strings.EqualFold(prev, l.Name) {
			return fmt.Errorf("invalid catalog: %s id %d named both %q and %q", kind, l.ID, prev, l.Name)
		}
		seen[l.ID] = l.Name
	}
	return nil
}
