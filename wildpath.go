// Package wildpath reads values out of decoded JSON-like documents by path.
//
// Documents are trees of map[string]any records, []any lists and leaf values,
// as produced by encoding/json, DecodeJSON or a YAML decoder. Paths use the
// syntax of package wpath, where "[]" fans out over every element of a list:
//
//	doc := map[string]any{"a": []any{
//		map[string]any{"b": []any{map[string]any{"c": 42.0}, map[string]any{"c": 43.0}}},
//		map[string]any{"b": []any{map[string]any{"c": 99.0}}},
//	}}
//
//	wildpath.Get(doc, "a.[].b.[].c")  // [[42 43] [99]]
//	wildpath.Pick(doc, "a.[].b[0].c") // {"a": [{"b": [{"c": 42}]}, {"b": [{"c": 99}]}]}
//
// Nothing here mutates the document or the paths, and all functions are safe
// for concurrent use.
package wildpath

import (
	"github.com/tobbstr/wildpath/internal/debug"
	"github.com/tobbstr/wildpath/wpath"
)

// Get resolves path against source. When nothing resolves it returns nil for
// a path without wildcards and an empty list for a path with wildcards.
func Get(source any, path string) any {
	return GetPath(source, wpath.Tokenize(path))
}

// GetOr is like Get but returns def when nothing resolves.
func GetOr(source any, path string, def any) any {
	return GetPathOr(source, wpath.Tokenize(path), def)
}

// Lookup resolves path against source and reports whether anything resolved.
// A key holding null resolves to (nil, true).
func Lookup(source any, path string) (any, bool) {
	return LookupPath(source, wpath.Tokenize(path))
}

// GetPath is Get for a tokenized path.
func GetPath(source any, p wpath.Path) any {
	if v, ok := LookupPath(source, p); ok {
		return v
	}
	if p.HasWildcard() {
		return []any{}
	}
	return nil
}

// GetPathOr is GetOr for a tokenized path.
func GetPathOr(source any, p wpath.Path, def any) any {
	if v, ok := LookupPath(source, p); ok {
		return v
	}
	return def
}

// LookupPath is Lookup for a tokenized path.
//
// Without wildcards the result is the value at p. With wildcards it is a list
// nested once per wildcard, holding the leaf values in source order; elements
// whose branch does not resolve are left out rather than kept as holes.
func LookupPath(source any, p wpath.Path) (any, bool) {
	if source == nil {
		return nil, false
	}
	var (
		v  any
		ok bool
	)
	if p.HasWildcard() {
		v, ok = fanOut(source, p)
	} else {
		v, ok = walk(source, p)
	}
	if debug.Resolve() {
		debug.Logf("resolve %s -> found=%t %v\n", p, ok, v)
	}
	return v, ok
}
