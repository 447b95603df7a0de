package hierarchy

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/csese/networkD3/pkg/errors"
)

// DecodeJSON decodes a JSON document into a normalized tree.
// The document must be a single object at the top level; arrays and scalars
// fail with INVALID_INPUT after decoding.
func DecodeJSON(r io.Reader) (*Node, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed JSON")
	}
	return Normalize(v)
}

// DecodeYAML decodes a YAML document into a normalized tree.
// Tree data is commonly maintained by hand, where YAML is friendlier than
// JSON; the accepted shape is identical.
func DecodeYAML(r io.Reader) (*Node, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed YAML")
	}
	return Normalize(normalizeYAML(v))
}

// normalizeYAML rewrites yaml.v3's map[string]any values so that nested
// maps and slices match what encoding/json produces, letting Normalize
// treat both decoders identically.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	case int:
		return float64(val)
	default:
		return v
	}
}
