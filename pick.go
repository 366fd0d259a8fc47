package wildpath

import (
	"github.com/tobbstr/wildpath/internal/debug"
	"github.com/tobbstr/wildpath/wpath"
)

// Pick builds a partial copy of source holding only what paths reach.
//
// A path without wildcards contributes a single entry keyed by its last
// segment. A path with wildcards contributes an entry keyed by its first
// segment holding the source's shape along every branch that reaches a value:
// records keep only the key on the path, lists keep only the elements that
// resolve, in order. A path starting with a wildcard has no first key and
// contributes nothing.
//
// Entries are merged in argument order and the last path wins when two paths
// produce the same key. A nil source gives an empty map.
func Pick(source any, paths ...string) map[string]any {
	ps := make([]wpath.Path, len(paths))
	for i, p := range paths {
		ps[i] = wpath.Tokenize(p)
	}
	return PickPaths(source, ps...)
}

// PickPaths is Pick for tokenized paths.
func PickPaths(source any, paths ...wpath.Path) map[string]any {
	res := map[string]any{}
	if source == nil {
		return res
	}
	for _, p := range paths {
		key, v, ok := pickOne(source, p)
		if debug.Pick() {
			debug.Logf("pick %s -> found=%t %q: %v\n", p, ok, key, v)
		}
		if ok {
			res[key] = v
		}
	}
	return res
}

func pickOne(source any, p wpath.Path) (string, any, bool) {
	if len(p) == 0 {
		return "", nil, false
	}
	if !p.HasWildcard() {
		v, ok := walk(source, p)
		if !ok {
			return "", nil, false
		}
		return p.Last(), clone(v), true
	}
	if p[0] == wpath.Wildcard {
		return "", nil, false
	}
	c, ok := child(source, p[0])
	if !ok {
		return "", nil, false
	}
	v, ok := project(c, p[1:])
	if !ok {
		return "", nil, false
	}
	return p[0], v, true
}

// project rebuilds v along p, pruning every branch that does not reach a
// value.
func project(v any, p wpath.Path) (any, bool) {
	if len(p) == 0 {
		return clone(v), true
	}
	seg, rest := p[0], p[1:]
	if seg == wpath.Wildcard {
		list, ok := v.([]any)
		if !ok {
			return nil, false
		}
		var res []any
		for _, e := range list {
			if r, ok := project(e, rest); ok {
				res = append(res, r)
			}
		}
		if len(res) == 0 {
			return nil, false
		}
		return res, true
	}
	switch x := v.(type) {
	case map[string]any:
		c, ok := x[seg]
		if !ok {
			return nil, false
		}
		r, ok := project(c, rest)
		if !ok {
			return nil, false
		}
		return map[string]any{seg: r}, true
	case []any:
		i, ok := wpath.Index(seg)
		if !ok || i >= len(x) {
			return nil, false
		}
		r, ok := project(x[i], rest)
		if !ok {
			return nil, false
		}
		// only the picked element is kept, not its position
		return []any{r}, true
	default:
		return nil, false
	}
}
