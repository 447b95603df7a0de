package network

import (
	"github.com/csese/networkD3/pkg/errors"
	"github.com/csese/networkD3/pkg/table"
)

// =============================================================================
// Tabular Extraction - Tables In, Canonical Records Out
// =============================================================================

// LinkColumns names the columns to project out of a links table.
// Value may be empty, in which case links carry no weight.
type LinkColumns struct {
	Source string
	Target string
	Value  string // optional
}

// NodeColumns names the columns to project out of a nodes table.
// Group and Size may be empty; Size presence is what toggles the nodesize
// option downstream.
type NodeColumns struct {
	ID    string
	Group string // optional
	Size  string // optional
}

// ExtractNodes projects the id/group/size columns out of a nodes table into
// the canonical node sequence, preserving row order.
//
// A nil table fails with INVALID_INPUT before any lookup. A named column
// that does not exist fails with MISSING_COLUMN at lookup time. Extraction
// is a pure projection with no side effects.
func ExtractNodes(t *table.Table, cols NodeColumns) ([]Node, error) {
	if t == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nodes input is not tabular")
	}

	ids, err := t.Column(cols.ID)
	if err != nil {
		return nil, err
	}

	var groups []table.Value
	if cols.Group != "" {
		if groups, err = t.Column(cols.Group); err != nil {
			return nil, err
		}
	}

	var sizes []table.Value
	if cols.Size != "" {
		if sizes, err = t.Column(cols.Size); err != nil {
			return nil, err
		}
	}

	nodes := make([]Node, len(ids))
	for i, id := range ids {
		n := Node{Name: formatCell(id)}
		if groups != nil {
			n.Group = formatCell(groups[i])
		}
		if sizes != nil {
			size, ok := asFloat(sizes[i])
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"node size in row %d is not numeric: %v", i, sizes[i])
			}
			n.Size = &size
		}
		nodes[i] = n
	}
	return nodes, nil
}

// ExtractLinks projects the source/target/value columns out of a links table
// into the canonical link sequence.
//
// Endpoint cells resolve against nodes by name when they match a node, and
// are otherwise taken as positional row indexes. Out-of-range indexes are
// passed through untouched: positional identity is the caller's contract
// and the renderer is the place where a dangling reference surfaces.
//
// When cols.Value is empty the produced links carry no weight field at all.
func ExtractLinks(t *table.Table, cols LinkColumns, nodes []Node) ([]Link, error) {
	if t == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "links input is not tabular")
	}

	sources, err := t.Column(cols.Source)
	if err != nil {
		return nil, err
	}
	targets, err := t.Column(cols.Target)
	if err != nil {
		return nil, err
	}

	var values []table.Value
	if cols.Value != "" {
		if values, err = t.Column(cols.Value); err != nil {
			return nil, err
		}
	}

	byName := make(map[string]int, len(nodes))
	for i, n := range nodes {
		// First occurrence wins when names repeat; duplicate ids are the
		// caller's responsibility.
		if _, seen := byName[n.Name]; !seen {
			byName[n.Name] = i
		}
	}

	links := make([]Link, len(sources))
	for i := range sources {
		src, err := resolveEndpoint(sources[i], byName, "source", i)
		if err != nil {
			return nil, err
		}
		dst, err := resolveEndpoint(targets[i], byName, "target", i)
		if err != nil {
			return nil, err
		}

		l := Link{Source: src, Target: dst}
		if values != nil {
			v, ok := asFloat(values[i])
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"link value in row %d is not numeric: %v", i, values[i])
			}
			l.Value = &v
		}
		links[i] = l
	}
	return links, nil
}

// NodesFromLinks derives a node sequence from the endpoint names of a links
// table, in order of first appearance. This supports the simple graph form
// where no separate nodes table exists.
func NodesFromLinks(t *table.Table, cols LinkColumns) ([]Node, error) {
	if t == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "links input is not tabular")
	}

	sources, err := t.Column(cols.Source)
	if err != nil {
		return nil, err
	}
	targets, err := t.Column(cols.Target)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var nodes []Node
	add := func(v table.Value) {
		name := formatCell(v)
		if !seen[name] {
			seen[name] = true
			nodes = append(nodes, Node{Name: name})
		}
	}
	for i := range sources {
		add(sources[i])
		add(targets[i])
	}
	return nodes, nil
}

// resolveEndpoint maps a link endpoint cell to a node row index.
// Names resolve through the node set; numeric cells are positional indexes
// used as-is. A non-numeric name that resolves nowhere fails with
// INVALID_INPUT.
func resolveEndpoint(v table.Value, byName map[string]int, role string, row int) (int, error) {
	if name, ok := v.(string); ok {
		if idx, found := byName[name]; found {
			return idx, nil
		}
		if f, numeric := asFloat(name); numeric {
			return int(f), nil
		}
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"link %s %q in row %d does not resolve to a node", role, name, row)
	}

	if f, ok := asFloat(v); ok {
		return int(f), nil
	}

	return 0, errors.New(errors.ErrCodeInvalidInput,
		"link %s in row %d is neither a node name nor an index: %v", role, row, v)
}
