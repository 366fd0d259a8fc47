package wpath

import (
	"strconv"
	"strings"
)

// Wildcard is the segment that fans out over every element of an array.
const Wildcard = "[]"

// Path is a tokenized path: an ordered list of keys, indices and Wildcard
// sentinels. The zero value addresses the document root.
type Path []string

// IsWildcard reports whether seg is the Wildcard sentinel.
func IsWildcard(seg string) bool {
	return seg == Wildcard
}

// HasWildcard reports whether p fans out anywhere.
func (p Path) HasWildcard() bool {
	return p.Wildcards() > 0
}

// Wildcards counts the Wildcard segments of p, which is also the nesting depth
// of the sequences a resolved value is collected into.
func (p Path) Wildcards() int {
	n := 0
	for _, seg := range p {
		if seg == Wildcard {
			n++
		}
	}
	return n
}

// Last returns the final segment of p, or "" for the root path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Equal reports whether p and q have the same segments.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Index interprets seg as an array index. Only the canonical decimal form of a
// non-negative integer qualifies: "01", "-1" and "+1" are keys, not indices.
func Index(seg string) (int, bool) {
	if seg == "" || len(seg) > 18 {
		return 0, false
	}
	if seg[0] == '0' && len(seg) > 1 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// String formats p so that Tokenize(p.String()) reproduces p for any
// coalesced path.
//
//	Path{"a", "[]", "b.c", "0"}.String() == `a[]["b.c"][0]`
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		switch {
		case seg == Wildcard:
			b.WriteString(Wildcard)
		case isIndexSegment(seg):
			b.WriteByte('[')
			b.WriteString(seg)
			b.WriteByte(']')
		case needsQuote(seg):
			b.WriteString(quote(seg))
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(seg)
		}
	}
	return b.String()
}

// GJSON formats p in GJSON/SJSON path syntax. Keys are escaped and the
// Wildcard is rendered as '#'.
//
// See https://github.com/tidwall/gjson/blob/master/SYNTAX.md
func (p Path) GJSON() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		if seg == Wildcard {
			parts[i] = "#"
			continue
		}
		parts[i] = escapeGJSON(seg)
	}
	return strings.Join(parts, ".")
}

// Join formats literal segments as a path string. No segment is treated as a
// separator, so Join("a.b", "c") addresses the key "a.b".
func Join(segments ...string) string {
	return Path(segments).String()
}

func isIndexSegment(seg string) bool {
	_, ok := Index(seg)
	return ok
}

func needsQuote(seg string) bool {
	if seg == "" {
		return true
	}
	return strings.ContainsAny(seg, `.[]"'\`)
}

func quote(seg string) string {
	var b strings.Builder
	b.Grow(len(seg) + 4)
	b.WriteString(`["`)
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteString(`"]`)
	return b.String()
}

func escapeGJSON(seg string) string {
	needsEscape := false
	for i := 0; i < len(seg); i++ {
		if gjsonSpecial(seg[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg) * 2)
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if gjsonSpecial(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func gjsonSpecial(c byte) bool {
	switch c {
	case '\\', '.', ':', '|', '@', '*', '?', '#', ',', '(', ')', '=', '!', '<', '>', '~':
		return true
	}
	return false
}

// IndexSegment is the segment addressing element i of an array.
func IndexSegment(i int) string {
	return strconv.Itoa(i)
}
