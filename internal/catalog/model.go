// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package catalog

import (
	"github.com/tomtom215/gamefinder/internal/recommend"
)

// App is one catalog entry.
type App struct {
	ID               int64           `json:"appid" yaml:"appid" validate:"gt=0"`
	Name             string          `json:"name" yaml:"name" validate:"required,notblank"`
	Developer        string          `json:"developer,omitempty" yaml:"developer"`
	ShortDescription string          `json:"short_description,omitempty" yaml:"short_description"`
	Price            string          `json:"price,omitempty" yaml:"price"`
	HeaderImage      string          `json:"header_image,omitempty" yaml:"header_image" validate:"omitempty,url"`
	BackgroundImage  string          `json:"background_image,omitempty" yaml:"background_image" validate:"omitempty,url"`
	Tags             []recommend.Tag `json:"tags,omitempty" yaml:"tags" validate:"dive"`
	Genres           []recommend.Tag `json:"genres,omitempty" yaml:"genres" validate:"dive"`
	Categories       []recommend.Tag `json:"categories,omitempty" yaml:"categories" validate:"dive"`
}

// Snapshot is the on-disk form of a catalog.
type Snapshot struct {
	Apps []App `json:"apps" yaml:"apps" validate:"dive"`
}

// Membership returns the app-tag relation of the snapshot.
func (s *Snapshot) Membership() recommend.Membership {
	pairs := make([]recommend.Pair, 0, len(s.Apps)*4)
	for i := range s.Apps {
		for _, t := range s.Apps[i].Tags {
			pairs = append(pairs, recommend.Pair{EntityID: s.Apps[i].ID, TagID: t.ID})
		}
	}
	return recommend.NewMembership(pairs)
}

// Summary is the short form of an app used in listings.
type Summary struct {
	ID        int64  `json:"appid"`
	Name      string `json:"name"`
	Developer string `json:"developer,omitempty"`
}

// Summarize returns the listing form of a.
func (a App) Summarize() Summary {
	return Summary{ID: a.ID, Name: a.Name, Developer: a.Developer}
}

// Developer is one distinct developer name in the catalog.
type Developer struct {
	Name string    `json:"name"`
	Apps []Summary `json:"apps,omitempty"`
}

func appName(a App) string { return a.Name }
func appID(a App) int64 { return a.ID }
func tagName(t recommend.Tag) string { return t.Name }
func developerName(d string) string { return d }
