// Package wpath provides parsing and formatting of wildcard object paths.
//
// A path addresses a location inside a decoded JSON-like document:
//   - a.b.c            - record keys separated by '.'
//   - a[0].b           - index (or any literal key) in brackets
//   - a["b.c"], a['x'] - quoted keys, '\' escapes the next character
//   - a.[].b, a[].b    - wildcard: fan out over every element of the array at a
//
// # Usage
//
//	p := wpath.Tokenize("users.[].emails[0]")
//	// p == wpath.Path{"users", "[]", "emails", "0"}
//
//	p, err := wpath.Parse(`users["first name`) // strict: reports syntax errors
//
//	s := p.String() // canonical form, Tokenize(s) == p
//
// # Empty segments
//
// Runs of empty segments (a..b, a[""].b, trailing dots) are coalesced into the
// following segment, one '.' per empty segment: "a...c" addresses the key "..c"
// under a. A run with nothing after it becomes a segment made only of dots. Runs
// never merge into a wildcard.
package wpath
