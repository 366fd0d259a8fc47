// Package debug holds trace switches read from the environment.
//
//	WILDPATH_DEBUG_TOKENIZE=1  trace path tokenization
//	WILDPATH_DEBUG_RESOLVE=1   trace Get/Lookup
//	WILDPATH_DEBUG_PICK=1      trace Pick
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Resolve  bool
	Pick     bool
}

var (
	d *debug
	w io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("WILDPATH_DEBUG_TOKENIZE")
	d.Resolve = boolEnv("WILDPATH_DEBUG_RESOLVE")
	d.Pick = boolEnv("WILDPATH_DEBUG_PICK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Resolve() bool {
	return d.Resolve
}
func Pick() bool {
	return d.Pick
}

// Logf writes a trace line to stderr. Records and sequences among args are
// rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			b, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(b)
		default:
		}
	}
	fmt.Fprintf(w, msg, args...)
}
