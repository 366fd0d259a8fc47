package wildpath

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// peopleFile holds records, lists of records, nested lists, a dotted key and
// a list whose elements lack or null a field.
const peopleFile = "testdata/people.json"

func readFile(t testing.TB, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read file")
	return b
}

func loadPeople(t testing.TB) any {
	t.Helper()
	doc, err := DecodeJSON(readFile(t, peopleFile))
	require.NoError(t, err)
	return doc
}

func mustDecode(t testing.TB, s string) any {
	t.Helper()
	doc, err := DecodeJSON([]byte(s))
	require.NoError(t, err)
	return doc
}
