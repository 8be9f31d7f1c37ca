// Package keyed provides Map, an ordered mapping whose string keys can also
// be reached through a normalized attribute form.
//
// # Keys
//
// Entries are stored under their original key, in insertion order. String
// keys additionally have a normalized form: surrounding white space is
// trimmed, every space and hyphen becomes an underscore and the result is
// lower cased, so "Accept-Encoding" normalizes to "accept_encoding". Keys
// of other types are their own normalized form.
//
// Lookups (Get, Attr, Delete, Pop) resolve a key through its normalized
// form first and then verbatim. Membership (Has, Contains) is exact:
//
//	m := keyed.MustNew(map[string]any{"Accept-Encoding": "gzip"})
//	m.Attr("accept_encoding") // "gzip", nil
//	m.Has("accept_encoding")  // false
//
// Two original keys with the same normalized form cannot coexist: setting
// the second replaces the first in place.
//
// # Wrapping
//
// Values are wrapped on the way in: plain mappings at any depth become
// *Map, and sequences holding mappings become []any of wrapped elements.
// Dict reverses this. The Missing marker deletes on assignment and is
// dropped from wrapped mappings.
//
// # Paths
//
// GetFrom evaluates a restricted path expression of the form
//
//	$.field.field[0].field
//
// Fields are resolved as attributes and indices select sequence elements.
// Nothing else is evaluated. Select offers full JSONPath queries over the
// JSON form of a Map.
//
// # Comparison and merging
//
// Equal compares visible content regardless of order. IsSubmapOf and
// IsSupermapOf check recursive containment. Merge and MergeInto combine
// plain content, and Patch and MergePatch apply JSON patches.
//
// # Encoding
//
// JSON and YAML output keeps insertion order. FromJSON and FromYAML parse
// documents whose top level value is a mapping.
//
// # Debugging
//
// Setting KEYED_DEBUG_WRAP, KEYED_DEBUG_PATH, KEYED_DEBUG_MATCH or
// KEYED_DEBUG_MERGE in the environment logs the corresponding operations
// to stderr.
package keyed
