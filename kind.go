package wildpath

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/tobbstr/wildpath/wpath"
)

// Kind classifies the values found in a decoded document. Records are
// map[string]any and lists are []any; anything else is a leaf.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	RecordKind
	ListKind
	// OtherKind is any Go value outside the document model, e.g. a typed
	// struct or a map[string]string. Paths never descend into it.
	OtherKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		BoolKind:   "Bool",
		NumberKind: "Number",
		StringKind: "String",
		RecordKind: "Record",
		ListKind:   "List",
		OtherKind:  "Other",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   NullKind,
		"Bool":   BoolKind,
		"Number": NumberKind,
		"String": StringKind,
		"Record": RecordKind,
		"List":   ListKind,
		"Other":  OtherKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// IsLeaf reports whether a path can not descend into values of kind k.
func (k Kind) IsLeaf() bool {
	return k != RecordKind && k != ListKind
}

// KindOf classifies v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return NullKind
	case bool:
		return BoolKind
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return NumberKind
	case string:
		return StringKind
	case map[string]any:
		return RecordKind
	case []any:
		return ListKind
	default:
		return OtherKind
	}
}

// child steps from v into seg: a key of a record or an index of a list.
func child(v any, seg string) (any, bool) {
	switch x := v.(type) {
	case map[string]any:
		c, ok := x[seg]
		return c, ok
	case []any:
		i, ok := wpath.Index(seg)
		if !ok || i >= len(x) {
			return nil, false
		}
		return x[i], true
	default:
		return nil, false
	}
}

// clone deep copies records and lists so results never share containers with
// the source document. A container reached again while it is being copied
// maps to its copy, so cyclic sources give equally cyclic copies.
func clone(v any) any {
	return cloneSeen(v, map[container]any{})
}

// container identifies a record or list by its backing storage.
type container struct {
	ptr uintptr
	len int
}

func cloneSeen(v any, seen map[container]any) any {
	switch x := v.(type) {
	case map[string]any:
		key := container{ptr: reflect.ValueOf(x).Pointer(), len: -1}
		if c, ok := seen[key]; ok {
			return c
		}
		res := make(map[string]any, len(x))
		seen[key] = res
		for k, e := range x {
			res[k] = cloneSeen(e, seen)
		}
		return res
	case []any:
		if len(x) == 0 {
			return []any{}
		}
		key := container{ptr: reflect.ValueOf(x).Pointer(), len: len(x)}
		if c, ok := seen[key]; ok {
			return c
		}
		res := make([]any, len(x))
		seen[key] = res
		for i, e := range x {
			res[i] = cloneSeen(e, seen)
		}
		return res
	default:
		return v
	}
}
