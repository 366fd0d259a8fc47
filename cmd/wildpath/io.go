package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/pretty"

	"github.com/tobbstr/wildpath"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// decode reads one document from r in the input format.
func (cfg *MainConfig) decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if cfg.InFormat == yamlFormat {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return normalize(v), nil
	}
	return wildpath.DecodeJSON(data)
}

// normalize rewrites YAML mappings with non-string keys into records so
// paths can descend into them.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[fmt.Sprint(k)] = normalize(e)
		}
		return res
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	default:
		return v
	}
}

// encode writes v to w in the output format, or as a Go value dump with -dump.
func (cfg *MainConfig) encode(w io.Writer, v any) error {
	if cfg.Dump {
		dumper.Fdump(w, v)
		return nil
	}
	var (
		data []byte
		err  error
	)
	switch cfg.OutFormat {
	case yamlFormat:
		data, err = yaml.Marshal(v)
	default:
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
			if cfg.useColor(w) {
				data = pretty.Color(data, nil)
			}
		}
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(data)
	return err
}
