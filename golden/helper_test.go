package golden

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read file")
	return b
}

// recorder stands in for the test under test so failures can be asserted on
// instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failed bool
	msgs   []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func (r *recorder) FailNow() {
	r.failed = true
}

func (r *recorder) Helper() {}

func users() map[string]any {
	return map[string]any{
		"users": []any{
			map[string]any{"id": "u-1", "name": "Ann", "age": 31},
			map[string]any{"id": "u-2", "name": "Bo", "age": nil},
		},
	}
}
