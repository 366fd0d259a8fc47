package wpath

import (
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/tobbstr/wildpath/internal/debug"
)

// maxCached bounds the tokenization cache. Paths past the bound are still
// tokenized, just not remembered.
const maxCached = 4096

var (
	// pathCache maps a literal path string to its coalesced Path.
	pathCache sync.Map
	cached    atomic.Int64
)

// Tokenize converts a path string into a coalesced Path. It never fails:
// malformed brackets are recovered as well as possible.
//   - an unterminated '[' makes the rest of the string one key
//   - an unterminated quote makes the rest of the string (escapes applied) one key
//   - characters between a closing quote and ']' are dropped
//   - a ']' outside brackets is an ordinary key character
//
// Use Parse to reject such paths instead.
func Tokenize(path string) Path {
	if path == "" {
		return Path{}
	}
	if v, ok := pathCache.Load(path); ok {
		return slices.Clone(v.(Path))
	}
	segs, _ := scan(path, false)
	p := coalesce(segs)
	if debug.Tokenize() {
		debug.Logf("tokenize %q -> %q\n", path, []string(p))
	}
	if cached.Load() < maxCached {
		if _, loaded := pathCache.LoadOrStore(path, p); !loaded {
			cached.Add(1)
		}
	}
	return slices.Clone(p)
}

// Parse is the strict form of Tokenize: it returns a *SyntaxError for paths
// Tokenize would have to recover.
func Parse(path string) (Path, error) {
	segs, err := scan(path, true)
	if err != nil {
		return nil, err
	}
	return coalesce(segs), nil
}

// MustParse is like Parse but panics on syntax errors.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

// FromSegments builds a Path from already split segments, coalescing empty
// segments the same way Tokenize does. segments is not modified.
func FromSegments(segments []string) Path {
	return coalesce(segments)
}

// scan splits path into raw segments, empty ones included. In strict mode
// the first syntax error stops the scan.
func scan(path string, strict bool) ([]string, error) {
	var (
		segs []string
		cur  strings.Builder
		// afterBracket is set right after a bracket form; a '.' there is optional.
		afterBracket bool
		// open is set after a '.' that still needs a segment to follow it.
		open bool
	)
	flush := func() {
		segs = append(segs, cur.String())
		cur.Reset()
	}
	for i := 0; i < len(path); {
		c := path[i]
		switch c {
		case '.':
			switch {
			case cur.Len() > 0:
				flush()
				open = true
			case afterBracket:
				open = false
			default:
				segs = append(segs, "")
				open = true
			}
			afterBracket = false
			i++
		case '[':
			if cur.Len() > 0 {
				flush()
			}
			seg, next, err := scanBracket(path, i)
			if err != nil && strict {
				return nil, err
			}
			segs = append(segs, seg)
			afterBracket, open = true, false
			i = next
		case ']':
			if strict {
				return nil, syntaxError(path, i, ErrUnexpectedBracket)
			}
			fallthrough
		default:
			cur.WriteByte(c)
			afterBracket, open = false, false
			i++
		}
	}
	if cur.Len() > 0 {
		flush()
	} else if open {
		segs = append(segs, "")
	}
	return segs, nil
}

// scanBracket reads the bracket form starting at path[start] == '['. It
// returns the segment, the offset just past the form and, for malformed forms,
// the error alongside the recovered segment.
func scanBracket(path string, start int) (string, int, error) {
	i := start + 1
	if i < len(path) && path[i] == ']' {
		return Wildcard, i + 1, nil
	}
	if i < len(path) && (path[i] == '"' || path[i] == '\'') {
		q := path[i]
		var b strings.Builder
		closed := false
		for i++; i < len(path); i++ {
			c := path[i]
			if c == '\\' && i+1 < len(path) {
				i++
				b.WriteByte(path[i])
				continue
			}
			if c == q {
				closed = true
				break
			}
			b.WriteByte(c)
		}
		if !closed {
			return b.String(), len(path), syntaxError(path, start, ErrUnterminatedQuote)
		}
		rest := path[i+1:]
		end := strings.IndexByte(rest, ']')
		switch {
		case end == -1:
			return b.String(), len(path), syntaxError(path, i+1, ErrUnterminatedBracket)
		case end > 0:
			return b.String(), i + 1 + end + 1, syntaxError(path, i+1, ErrTrailingCharacters)
		}
		return b.String(), i + 2, nil
	}
	end := strings.IndexByte(path[i:], ']')
	if end == -1 {
		return path[i:], len(path), syntaxError(path, start, ErrUnterminatedBracket)
	}
	return path[i : i+end], i + end + 1, nil
}
