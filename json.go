package wildpath

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned for input that is not a single valid JSON value.
var ErrInvalidJSON = errors.New("invalid JSON")

// DecodeJSON decodes data into the document model: objects become
// map[string]any, arrays []any and numbers float64.
func DecodeJSON(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return gjson.ParseBytes(data).Value(), nil
}

// GetJSON decodes data and resolves path against it like Get.
func GetJSON(data []byte, path string) (any, error) {
	doc, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Get(doc, path), nil
}

// PickJSON decodes data, picks paths from it like Pick and encodes the result.
func PickJSON(data []byte, paths ...string) ([]byte, error) {
	doc, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	res, err := json.Marshal(Pick(doc, paths...))
	if err != nil {
		return nil, fmt.Errorf("encoding picked values: %w", err)
	}
	return res, nil
}

// ExpandJSON decodes data and expands path against it like ExpandStrings.
func ExpandJSON(data []byte, path string) ([]string, error) {
	doc, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return ExpandStrings(doc, path), nil
}
