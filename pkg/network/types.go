package network

import (
	"fmt"
	"strconv"

	"github.com/csese/networkD3/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Graph type discriminators. The rendering runtime dispatches on this value
// to pick the matching layout behavior.
const (
	TypeSimple = "simple" // minimal node-link diagram derived from links alone
	TypeForce  = "force"  // force-directed graph with grouped, sized nodes
	TypeTree   = "tree"   // hierarchical tree layout
	TypeFlow   = "flow"   // weighted flow (sankey) diagram
)

// ValidTypes is the set of supported graph types.
var ValidTypes = map[string]bool{
	TypeSimple: true,
	TypeForce:  true,
	TypeTree:   true,
	TypeFlow:   true,
}

// ValidateType checks that a graph type is valid.
func ValidateType(graphType string) error {
	if !ValidTypes[graphType] {
		return errors.New(errors.ErrCodeInvalidGraphType,
			"invalid graph type: %q (must be one of: simple, force, tree, flow)", graphType)
	}
	return nil
}

// =============================================================================
// Link - Weighted Relation Between Nodes
// =============================================================================

// Link is a relation between two nodes, referenced by row index into the
// node sequence. Value is the optional weight: when the source data has no
// value column, the field is absent from serialized output entirely, never
// zero-filled.
type Link struct {
	Source int      `json:"source"`
	Target int      `json:"target"`
	Value  *float64 `json:"value,omitempty"`
}

// =============================================================================
// Node - Graph Participant
// =============================================================================

// Node is an entity participating in the graph. Group is a categorical
// label used for coloring; Size is an optional weight whose presence is
// signaled to the renderer through the nodesize option.
//
// Name uniqueness is the caller's responsibility. When links reference nodes
// positionally, the row index in the source table is the node identity.
type Node struct {
	Name  string   `json:"name"`
	Group string   `json:"group,omitempty"`
	Size  *float64 `json:"nodesize,omitempty"`
}

// formatCell renders a table cell as a categorical label. Whole numbers
// print without a decimal point so numeric group columns keep their
// familiar form.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// asFloat coerces a numeric table cell to float64.
func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
