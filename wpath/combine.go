package wpath

import "strings"

// CombineEmpty merges every run of empty segments into the segment that
// follows it, prefixing that segment with one '.' per empty segment. A run
// with no segment after it becomes a segment of only dots.
//
//	CombineEmpty([]string{"a", "", "", "c"}) // ["a", "..c"]
//	CombineEmpty([]string{"", ""})           // [".."]
//
// The input is not modified.
func CombineEmpty(segments []string) []string {
	out := make([]string, 0, len(segments))
	run := 0
	for _, seg := range segments {
		if seg == "" {
			run++
			continue
		}
		if run > 0 {
			seg = strings.Repeat(".", run) + seg
			run = 0
		}
		out = append(out, seg)
	}
	if run > 0 {
		out = append(out, strings.Repeat(".", run))
	}
	return out
}

// coalesce applies CombineEmpty to each stretch between Wildcard segments so
// that a run of empties never turns a wildcard into a key.
func coalesce(segs []string) Path {
	out := make(Path, 0, len(segs))
	start := 0
	for i, seg := range segs {
		if seg != Wildcard {
			continue
		}
		out = append(out, CombineEmpty(segs[start:i])...)
		out = append(out, Wildcard)
		start = i + 1
	}
	return append(out, CombineEmpty(segs[start:])...)
}
