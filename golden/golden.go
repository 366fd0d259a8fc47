// Package golden compares values with golden JSON files in tests.
//
// Options address parts of the golden JSON with wildpath paths, so a single
// option can reach every element of a list:
//
//	golden.AssertJSON(t, "testdata/users.json", got,
//		golden.WithSkippedPaths("users.[].id", "users.[].createdAt"),
//		golden.CheckResolves("users.[].name"),
//	)
package golden

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/tobbstr/wildpath"
)

// update is a flag that is used to update the golden test files. If the flag is set to true, the golden test files
// will be updated with the new test results.
//
//	Example:
//	 * To set the flag to true, run 'go test -update'
//	 * Example: To set the flag to false, run 'go test'
var update = flag.Bool("update", false, "Update golden test file")

// SkippedValue replaces the values of skipped paths.
const SkippedValue = "--* SKIPPED *--"

var (
	// filesWritten keeps track of the files that have been written to. This is to prevent writing to the same file twice.
	filesWritten   = make(map[string]struct{})
	filesWrittenMu sync.Mutex
)

// golden is a model of the golden file.
type golden struct {
	// result is the JSON that is compared with, or written to, the golden file.
	result []byte
	// doc is result decoded before any option touched it. Options resolve their paths against it.
	doc    any
	update bool
}

// OptionType orders options: checks see the untouched value, modifiers rewrite the JSON and annotations, which make
// the JSON invalid, run last.
type OptionType int

const (
	OptionTypeCheck OptionType = iota
	OptionTypeModifier
	OptionTypeAnnotation
)

// Option checks or modifies the golden result before it is compared with the golden file.
type Option interface {
	IsType() OptionType
	apply(t testing.TB, failNow bool, g *golden)
}

type option struct {
	typ OptionType
	fn  func(t testing.TB, failNow bool, g *golden)
}

func (o option) IsType() OptionType {
	return o.typ
}

func (o option) apply(t testing.TB, failNow bool, g *golden) {
	o.fn(t, failNow, g)
}

// sortOptions returns opts ordered by OptionType, keeping the given order within a type.
func sortOptions(opts []Option) []Option {
	sorted := make([]Option, len(opts))
	copy(sorted, opts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IsType() < sorted[j].IsType()
	})
	return sorted
}

// CheckResolves fails the test unless every path resolves to something in the value under test.
func CheckResolves(paths ...string) Option {
	return option{typ: OptionTypeCheck, fn: func(t testing.TB, failNow bool, g *golden) {
		t.Helper()
		for _, p := range paths {
			if _, ok := wildpath.Lookup(g.doc, p); !ok {
				fail(t, failNow, "path %q resolves to nothing", p)
			}
		}
	}}
}

// CheckKind fails the test unless every value reached by path has the given kind.
//
// Example: CheckKind("users.[].age", wildpath.NumberKind)
func CheckKind(path string, kind wildpath.Kind) Option {
	return option{typ: OptionTypeCheck, fn: func(t testing.TB, failNow bool, g *golden) {
		t.Helper()
		for _, cp := range wildpath.Expand(g.doc, path) {
			got := wildpath.KindOf(wildpath.GetPath(g.doc, cp))
			if got != kind {
				fail(t, failNow, "%s: kind is %s, want %s", cp, got, kind)
			}
		}
	}}
}

// WithSkippedPaths replaces the values at paths with "--* SKIPPED *--". Wildcards reach every element of a list.
//
// The rules are as follows:
//   - A path that resolves to nothing is ignored.
//   - A null value is not marked as skipped, since it is already deterministic.
//   - Any other value is marked as skipped.
func WithSkippedPaths(paths ...string) Option {
	return option{typ: OptionTypeModifier, fn: func(t testing.TB, failNow bool, g *golden) {
		t.Helper()
		for _, p := range paths {
			for _, cp := range wildpath.Expand(g.doc, p) {
				gp := cp.GJSON()
				gres := gjson.GetBytes(g.result, gp)
				if !gres.Exists() || gres.Type == gjson.Null {
					continue
				}
				res, err := sjson.SetBytes(g.result, gp, SkippedValue)
				if !noError(t, failNow, err, "skipping path = %s", cp) {
					return
				}
				g.result = res
			}
		}
	}}
}

// UpdateGoldenFiles makes the comparison write the golden file instead, like the -update flag.
func UpdateGoldenFiles() Option {
	return option{typ: OptionTypeModifier, fn: func(_ testing.TB, _ bool, g *golden) {
		g.update = true
	}}
}

// PathComment is a comment that describes what to look for when inspecting the values at Path.
type PathComment struct {
	// Path is a wildpath path; with wildcards the comment is added to every value it reaches.
	//
	// Example: "data.users.[].name"
	Path string
	// Comment is the comment that describes what to look for when inspecting the value.
	Comment string
}

// WithPathComments adds comments after the values at the given paths.
//
//	Example:
//	 {
//	   "age": 30, // This my path comment
//	 }
//
// NOTE! Adding comments to JSON makes it invalid, since JSON does not support comments. To keep you IDE happy,
// give the golden file the .jsonc extension.
func WithPathComments(comments ...PathComment) Option {
	return option{typ: OptionTypeAnnotation, fn: func(t testing.TB, failNow bool, g *golden) {
		t.Helper()
		type insertion struct {
			at   int
			text string
		}
		var inserts []insertion
		for _, c := range comments {
			for _, cp := range wildpath.Expand(g.doc, c.Path) {
				value := gjson.GetBytes(g.result, cp.GJSON())
				if !value.Exists() || value.Index == 0 {
					continue
				}
				end := value.Index + len(value.Raw)
				// keep the comma before the comment
				if end < len(g.result) && g.result[end] == ',' {
					end++
				}
				inserts = append(inserts, insertion{at: end, text: " // " + c.Comment})
			}
		}
		// insert from the back so earlier offsets stay valid
		sort.SliceStable(inserts, func(i, j int) bool {
			return inserts[i].at > inserts[j].at
		})
		// comments on the same value are joined in the order they were given
		merged := inserts[:0]
		for _, ins := range inserts {
			if n := len(merged); n > 0 && merged[n-1].at == ins.at {
				merged[n-1].text += ins.text
				continue
			}
			merged = append(merged, ins)
		}
		for _, ins := range merged {
			res := make([]byte, 0, len(g.result)+len(ins.text))
			res = append(res, g.result[:ins.at]...)
			res = append(res, ins.text...)
			g.result = append(res, g.result[ins.at:]...)
		}
	}}
}

// WithFileComment adds a comment to the top of the golden file. This is useful for providing context to the reader.
//
// NOTE! Adding comments to JSON makes it invalid, since JSON does not support comments. To keep you IDE happy,
// give the golden file the .jsonc extension.
func WithFileComment(comment string) Option {
	return option{typ: OptionTypeAnnotation, fn: func(_ testing.TB, _ bool, g *golden) {
		g.result = append([]byte("/*\n"+comment+"\n*/\n\n"), g.result...)
	}}
}

// AssertJSON compares the expected JSON (want) with the actual value (got), and if they are different it marks
// the test as failed, but continues execution. The expected JSON is read from a golden file.
//
// To update the golden file with the actual value instead of comparing with it, set the update flag to true.
func AssertJSON(t testing.TB, want string, got any, opts ...Option) {
	t.Helper()
	compareJSON(t, false, want, got, opts...)
}

// RequireJSON does the same as AssertJSON, but if the expected JSON (want) and the actual value (got) are different,
// it marks the test as failed and stops execution.
func RequireJSON(t testing.TB, want string, got any, opts ...Option) {
	t.Helper()
	compareJSON(t, true, want, got, opts...)
}

// AssertPick picks paths from source and compares the result with the golden file want.
func AssertPick(t testing.TB, want string, source any, paths ...string) {
	t.Helper()
	compareJSON(t, false, want, wildpath.Pick(source, paths...))
}

func compareJSON(t testing.TB, failNow bool, want string, got any, opts ...Option) {
	t.Helper()
	gotBytes, err := json.MarshalIndent(got, "", "    ")
	if !noError(t, failNow, err, "marshalling got") {
		return
	}
	doc, err := wildpath.DecodeJSON(gotBytes)
	if !noError(t, failNow, err, "decoding got") {
		return
	}

	g := &golden{result: gotBytes, doc: doc}
	for _, opt := range sortOptions(opts) {
		opt.apply(t, failNow, g)
	}

	if g.update || (update != nil && *update) {
		writeGoldenFile(t, failNow, want, g.result)
		return
	}

	goldenBytes, err := os.ReadFile(want)
	if !noError(t, failNow, err, "reading golden file") {
		return
	}
	if bytes.Equal(goldenBytes, g.result) {
		return
	}
	fail(t, failNow, "comparing with golden file = %s (- want, + got):\n%s", want, lineDiff(string(goldenBytes), string(g.result)))
}

func writeGoldenFile(t testing.TB, failNow bool, want string, got []byte) {
	t.Helper()
	filesWrittenMu.Lock()
	defer filesWrittenMu.Unlock()
	// check for duplicate writes
	if _, written := filesWritten[want]; written {
		fail(t, failNow, "writing golden file = %s: attempting to write to the same file twice", want)
		return
	}

	if err := os.MkdirAll(filepath.Dir(want), 0o755); !noError(t, failNow, err, "creating directory for golden file = %s", want) {
		return
	}
	err := os.WriteFile(want, got, 0644)
	if !noError(t, failNow, err, "writing golden file = %s", want) {
		return
	}

	// mark the file as written
	filesWritten[want] = struct{}{}
}

// lineDiff renders the line based difference between want and got.
func lineDiff(want, got string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}

func noError(t testing.TB, failNow bool, err error, msg string, args ...any) bool {
	t.Helper()
	msgAndArgs := append([]any{msg}, args...)
	if failNow {
		require.NoError(t, err, msgAndArgs...)
		return err == nil
	}
	return assert.NoError(t, err, msgAndArgs...)
}

func fail(t testing.TB, failNow bool, format string, args ...any) {
	t.Helper()
	if failNow {
		require.Fail(t, fmt.Sprintf(format, args...))
		return
	}
	assert.Fail(t, fmt.Sprintf(format, args...))
}
