package wpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	type (
		args struct {
			path string
		}
		given struct {
			args args
		}
		want struct {
			path Path
		}
	)

	tests := []struct {
		name  string
		given given
		want  want
	}{
		{
			name:  "empty path is the root",
			given: given{args: args{path: ""}},
			want:  want{path: Path{}},
		},
		{
			name:  "dotted keys",
			given: given{args: args{path: "a.b.c"}},
			want:  want{path: Path{"a", "b", "c"}},
		},
		{
			name:  "bracketed index",
			given: given{args: args{path: "a[0].b"}},
			want:  want{path: Path{"a", "0", "b"}},
		},
		{
			name:  "dot before bracket is optional",
			given: given{args: args{path: "a.[0]"}},
			want:  want{path: Path{"a", "0"}},
		},
		{
			name:  "key directly after bracket",
			given: given{args: args{path: "a[0]b"}},
			want:  want{path: Path{"a", "0", "b"}},
		},
		{
			name:  "consecutive brackets",
			given: given{args: args{path: "m[1][2]"}},
			want:  want{path: Path{"m", "1", "2"}},
		},
		{
			name:  "double quoted key keeps dots",
			given: given{args: args{path: `a["b.c"].d`}},
			want:  want{path: Path{"a", "b.c", "d"}},
		},
		{
			name:  "single quoted key with escaped quote",
			given: given{args: args{path: `a['it\'s']`}},
			want:  want{path: Path{"a", "it's"}},
		},
		{
			name:  "escaped backslash in quoted key",
			given: given{args: args{path: `["x\\y"]`}},
			want:  want{path: Path{`x\y`}},
		},
		{
			name:  "unquoted bracket content is taken literally",
			given: given{args: args{path: "a[first name]"}},
			want:  want{path: Path{"a", "first name"}},
		},
		{
			name:  "wildcard with dots",
			given: given{args: args{path: "a.[].b"}},
			want:  want{path: Path{"a", Wildcard, "b"}},
		},
		{
			name:  "wildcard without dots",
			given: given{args: args{path: "a[]b"}},
			want:  want{path: Path{"a", Wildcard, "b"}},
		},
		{
			name:  "leading wildcard",
			given: given{args: args{path: "[].a"}},
			want:  want{path: Path{Wildcard, "a"}},
		},
		{
			name:  "trailing wildcard",
			given: given{args: args{path: "a[]"}},
			want:  want{path: Path{"a", Wildcard}},
		},
		{
			name:  "trailing wildcard followed by dot",
			given: given{args: args{path: "a.[]."}},
			want:  want{path: Path{"a", Wildcard}},
		},
		{
			name:  "consecutive wildcards",
			given: given{args: args{path: "a.[].[].c"}},
			want:  want{path: Path{"a", Wildcard, Wildcard, "c"}},
		},
		{
			name:  "doubled dot coalesces into the next key",
			given: given{args: args{path: "a..b"}},
			want:  want{path: Path{"a", ".b"}},
		},
		{
			name:  "two empty segments",
			given: given{args: args{path: "a...c"}},
			want:  want{path: Path{"a", "..c"}},
		},
		{
			name:  "leading dot",
			given: given{args: args{path: ".a"}},
			want:  want{path: Path{".a"}},
		},
		{
			name:  "trailing dot",
			given: given{args: args{path: "a."}},
			want:  want{path: Path{"a", "."}},
		},
		{
			name:  "lone dot is two empty segments",
			given: given{args: args{path: "."}},
			want:  want{path: Path{".."}},
		},
		{
			name:  "empty quoted key",
			given: given{args: args{path: `a[""].b`}},
			want:  want{path: Path{"a", ".b"}},
		},
		{
			name:  "empty run before a wildcard stays out of the wildcard",
			given: given{args: args{path: "a..[].b"}},
			want:  want{path: Path{"a", ".", Wildcard, "b"}},
		},
		{
			name:  "unterminated bracket keeps the rest as a key",
			given: given{args: args{path: "a[0"}},
			want:  want{path: Path{"a", "0"}},
		},
		{
			name:  "unterminated quote keeps the rest as a key",
			given: given{args: args{path: `a["b.c`}},
			want:  want{path: Path{"a", "b.c"}},
		},
		{
			name:  "junk after closing quote is dropped",
			given: given{args: args{path: `a["b"x].c`}},
			want:  want{path: Path{"a", "b", "c"}},
		},
		{
			name:  "stray closing bracket is a key character",
			given: given{args: args{path: "a]b.c"}},
			want:  want{path: Path{"a]b", "c"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			/* ---------------------------------- Given --------------------------------- */
			require := require.New(t)

			/* ---------------------------------- When ---------------------------------- */
			got := Tokenize(tt.given.args.path)

			/* ---------------------------------- Then ---------------------------------- */
			require.Equal(tt.want.path, got, "Tokenize() returned unexpected segments")
		})
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	paths := []string{"a.[].b[0].c", `x["y.z"]..w`, "a[0", ""}
	for _, p := range paths {
		first := Tokenize(p)
		second := Tokenize(p)
		require.Equal(t, first, second, "path %q", p)
	}
}

func TestTokenize_CacheReturnsCopies(t *testing.T) {
	p := Tokenize("cache.copy.check")
	p[0] = "mutated"

	require.Equal(t, Path{"cache", "copy", "check"}, Tokenize("cache.copy.check"))
}

func TestParse(t *testing.T) {
	type want struct {
		path   Path
		err    error
		offset int
	}
	tests := []struct {
		name string
		path string
		want want
	}{
		{
			name: "valid path",
			path: `a.[]["b.c"][0]`,
			want: want{path: Path{"a", Wildcard, "b.c", "0"}},
		},
		{
			name: "unterminated bracket",
			path: "a[0",
			want: want{err: ErrUnterminatedBracket, offset: 1},
		},
		{
			name: "unterminated quote",
			path: `a["b`,
			want: want{err: ErrUnterminatedQuote, offset: 1},
		},
		{
			name: "missing bracket after quote",
			path: `a["b"`,
			want: want{err: ErrUnterminatedBracket, offset: 5},
		},
		{
			name: "characters after closing quote",
			path: `a["b"x].c`,
			want: want{err: ErrTrailingCharacters, offset: 5},
		},
		{
			name: "stray closing bracket",
			path: "a]b",
			want: want{err: ErrUnexpectedBracket, offset: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			got, err := Parse(tt.path)

			if tt.want.err == nil {
				require.NoError(err)
				require.Equal(tt.want.path, got)
				return
			}
			require.ErrorIs(err, tt.want.err)
			var se *SyntaxError
			require.ErrorAs(err, &se)
			require.Equal(tt.want.offset, se.Offset)
			require.Equal(tt.path, se.Path)
			require.Nil(got)
		})
	}
}

func TestMustParse(t *testing.T) {
	require.Equal(t, Path{"a", "b"}, MustParse("a.b"))
	require.Panics(t, func() { MustParse("a[") })
}

func TestFromSegments(t *testing.T) {
	in := []string{"a", "", Wildcard, "", "", "b", ""}

	got := FromSegments(in)

	require.Equal(t, Path{"a", ".", Wildcard, "..b", "."}, got)
	require.Equal(t, []string{"a", "", Wildcard, "", "", "b", ""}, in, "input must not be modified")
}

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Tokenize(`families.[].members.[].hobbies[0]["name"]`)
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(`families.[].members.[].hobbies[0]["name"]`)
	}
}
