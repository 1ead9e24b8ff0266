// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

// Package typo generates misspelled catalog names for exercising fuzzy
// resolution.
//
// A Generator applies one to three corruption operators to a name and then
// checks its own work: the corrupted text must still resolve to the original
// entity through fuzzy.ResolveBest with a score above the verification
// threshold (75 by default). When it does not, the generator returns the
// entity id as a decimal string instead. Every fixture is therefore either a
// verified-recoverable typo or an exact id.
//
// Operators:
//
//   - duplicate a random character
//   - remove all whitespace (multi-word names only)
//   - replace whitespace with '+' (multi-word names only)
//   - randomly capitalize characters
//   - strip characters that are neither letters, digits, nor spaces
//   - return the reference id outright (only when the id is non-zero)
//
// # Determinism
//
// A Generator owns its *rand.Rand. Two generators built from the same seed
// produce identical output for identical input. A Generator is not safe for
// concurrent use; give each goroutine its own.
//
//	gen := typo.New(42)
//	fixture := gen.Corrupt("Hollow Knight", 367520, pool)
package typo
