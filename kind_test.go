package wildpath

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want Kind
	}{
		{name: "nil", v: nil, want: NullKind},
		{name: "bool", v: true, want: BoolKind},
		{name: "float64", v: 1.5, want: NumberKind},
		{name: "int", v: 3, want: NumberKind},
		{name: "uint64 from yaml", v: uint64(3), want: NumberKind},
		{name: "json.Number", v: json.Number("3"), want: NumberKind},
		{name: "string", v: "s", want: StringKind},
		{name: "record", v: map[string]any{}, want: RecordKind},
		{name: "list", v: []any{}, want: ListKind},
		{name: "typed map", v: map[string]string{}, want: OtherKind},
		{name: "typed slice", v: []string{}, want: OtherKind},
		{name: "struct", v: struct{}{}, want: OtherKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.v))
		})
	}
}

func TestKind_Text(t *testing.T) {
	require := require.New(t)

	for _, k := range []Kind{NullKind, BoolKind, NumberKind, StringKind, RecordKind, ListKind, OtherKind} {
		b, err := k.MarshalText()
		require.NoError(err)

		var got Kind
		require.NoError(got.UnmarshalText(b))
		require.Equal(k, got)
	}

	data, err := json.Marshal(map[string]Kind{"age": NumberKind})
	require.NoError(err)
	require.JSONEq(`{"age":"Number"}`, string(data))

	var k Kind
	require.Error(k.UnmarshalText([]byte("Integer")))
	require.Equal("<unknown kind>", Kind(42).String())
}

func TestKind_IsLeaf(t *testing.T) {
	require := require.New(t)

	require.False(RecordKind.IsLeaf())
	require.False(ListKind.IsLeaf())
	require.True(NullKind.IsLeaf())
	require.True(StringKind.IsLeaf())
	require.True(OtherKind.IsLeaf())
}

func TestChild(t *testing.T) {
	list := []any{"a", "b"}
	tests := []struct {
		name   string
		v      any
		seg    string
		want   any
		wantOK bool
	}{
		{name: "record key", v: map[string]any{"k": 1}, seg: "k", want: 1, wantOK: true},
		{name: "record key holding null", v: map[string]any{"k": nil}, seg: "k", want: nil, wantOK: true},
		{name: "missing key", v: map[string]any{"k": 1}, seg: "x"},
		{name: "numeric key of a record", v: map[string]any{"0": "zero"}, seg: "0", want: "zero", wantOK: true},
		{name: "list index", v: list, seg: "1", want: "b", wantOK: true},
		{name: "index out of range", v: list, seg: "2"},
		{name: "negative index", v: list, seg: "-1"},
		{name: "leading zero", v: list, seg: "01"},
		{name: "key of a list", v: list, seg: "a"},
		{name: "leaf", v: "abc", seg: "0"},
		{name: "typed map", v: map[string]string{"k": "v"}, seg: "k"},
		{name: "nil", v: nil, seg: "k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := child(tt.v, tt.seg)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClone(t *testing.T) {
	require := require.New(t)

	/* ---------------------------------- Given --------------------------------- */
	src := map[string]any{
		"list":   []any{map[string]any{"n": 1.0}, "s"},
		"record": map[string]any{"inner": []any{1.0}},
		"leaf":   true,
	}
	want := map[string]any{
		"list":   []any{map[string]any{"n": 1.0}, "s"},
		"record": map[string]any{"inner": []any{1.0}},
		"leaf":   true,
	}

	/* ---------------------------------- When ---------------------------------- */
	got := clone(src).(map[string]any)
	got["list"].([]any)[0].(map[string]any)["n"] = 2.0
	got["record"].(map[string]any)["inner"].([]any)[0] = 2.0
	got["leaf"] = false

	/* ---------------------------------- Then ---------------------------------- */
	require.Empty(cmp.Diff(want, src))
}

func TestClone_Cycles(t *testing.T) {
	require := require.New(t)

	/* ---------------------------------- Given --------------------------------- */
	list := []any{"x", nil}
	list[1] = list
	shared := map[string]any{"n": 1.0}
	src := map[string]any{"list": list, "a": shared, "b": shared}

	/* ---------------------------------- When ---------------------------------- */
	got := clone(src).(map[string]any)

	/* ---------------------------------- Then ---------------------------------- */
	gotList := got["list"].([]any)
	require.Equal("x", gotList[0])
	inner := gotList[1].([]any)
	require.Equal(reflect.ValueOf(gotList).Pointer(), reflect.ValueOf(inner).Pointer(), "the copy keeps the cycle")
	require.NotEqual(reflect.ValueOf(list).Pointer(), reflect.ValueOf(gotList).Pointer())

	// a record reached twice is copied once
	require.Equal(reflect.ValueOf(got["a"]).Pointer(), reflect.ValueOf(got["b"]).Pointer())
	got["a"].(map[string]any)["n"] = 2.0
	require.Equal(1.0, shared["n"])
}
