package wildpath

import "github.com/tobbstr/wildpath/wpath"

// walk follows a path without wildcards.
func walk(v any, p wpath.Path) (any, bool) {
	for _, seg := range p {
		var ok bool
		v, ok = child(v, seg)
		if !ok {
			return nil, false
		}
	}
	return v, true
}

// fanOut follows p, collecting one list level per wildcard. A branch that
// resolves nowhere reports false so the caller can drop it.
func fanOut(v any, p wpath.Path) (any, bool) {
	for len(p) > 0 && p[0] != wpath.Wildcard {
		var ok bool
		v, ok = child(v, p[0])
		if !ok {
			return nil, false
		}
		p = p[1:]
	}
	if len(p) == 0 {
		return v, true
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	var res []any
	for _, e := range list {
		if r, ok := fanOut(e, p[1:]); ok {
			res = append(res, r)
		}
	}
	if len(res) == 0 {
		return nil, false
	}
	return res, true
}
