package sink

import (
	"encoding/json"

	"github.com/csese/networkD3/pkg/widget"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
	fixedID string
}

// WithJSONCompact emits minified output instead of the default
// pretty-printed document. Useful when the payload is embedded inside
// another document or sent over the wire.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// WithJSONElementID overrides the payload's generated element id with a
// fixed value. This makes output byte-stable, which matters for cache keys
// and golden-file comparisons.
func WithJSONElementID(id string) JSONOption {
	return func(r *jsonRenderer) { r.fixedID = id }
}

// RenderJSON serializes a payload to the JSON document consumed by the
// external rendering runtime. The payload itself is never modified; id
// overrides apply to a copy.
//
// RenderJSON returns an error only if JSON marshaling fails, which cannot
// happen for payloads produced by the widget constructors.
func RenderJSON(p *widget.Payload, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := *p
	if r.fixedID != "" {
		out.ElementID = r.fixedID
	}

	if r.compact {
		return json.Marshal(&out)
	}
	return json.MarshalIndent(&out, "", "  ")
}
