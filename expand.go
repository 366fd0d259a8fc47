package wildpath

import (
	"github.com/tobbstr/wildpath/wpath"
)

// Expand expands path into the concrete paths found in source: every
// wildcard is replaced by the index of each element whose branch resolves.
// Paths are returned in depth-first source order; the result is empty, not
// nil, when nothing resolves.
//
//	Expand(doc, "friends.[].nets.[]")
//	// friends[0].nets[0], friends[0].nets[1], friends[1].nets[0], ...
func Expand(source any, path string) []wpath.Path {
	return ExpandPath(source, wpath.Tokenize(path))
}

// ExpandPath is Expand for a tokenized path.
func ExpandPath(source any, p wpath.Path) []wpath.Path {
	results := []wpath.Path{}
	if source == nil {
		return results
	}
	return expandPathComponent(source, p, make(wpath.Path, 0, len(p)), results)
}

// ExpandStrings is Expand with the concrete paths formatted as strings.
func ExpandStrings(source any, path string) []string {
	expanded := Expand(source, path)
	res := make([]string, len(expanded))
	for i, p := range expanded {
		res[i] = p.String()
	}
	return res
}

// expandPathComponent appends to results every concrete path under current
// that p resolves from data. current has room for all of p, so siblings reuse
// its backing array and only finished paths are copied.
func expandPathComponent(data any, p wpath.Path, current wpath.Path, results []wpath.Path) []wpath.Path {
	if len(p) == 0 {
		final := make(wpath.Path, len(current))
		copy(final, current)
		return append(results, final)
	}

	component := p[0]
	if component != wpath.Wildcard {
		fieldValue, ok := child(data, component)
		if !ok {
			return results
		}
		return expandPathComponent(fieldValue, p[1:], append(current, component), results)
	}

	arr, ok := data.([]any)
	if !ok {
		return results
	}
	for i := range arr {
		results = expandPathComponent(arr[i], p[1:], append(current, wpath.IndexSegment(i)), results)
	}
	return results
}
