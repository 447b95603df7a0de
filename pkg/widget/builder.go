package widget

import (
	"github.com/csese/networkD3/pkg/errors"
	"github.com/csese/networkD3/pkg/hierarchy"
	"github.com/csese/networkD3/pkg/network"
	"github.com/csese/networkD3/pkg/table"
)

// =============================================================================
// Graph Constructors - One Per Discriminator
// =============================================================================

// SimpleConfig configures [NewSimple]. Only a links table is required; the
// node set is derived from endpoint names in first-appearance order. Source
// and Target default to the table's first two columns.
type SimpleConfig struct {
	Links   *table.Table
	Source  string
	Target  string
	Options network.Options
	Sizing  Sizing
}

// NewSimple builds a minimal node-link payload from a links table.
func NewSimple(cfg SimpleConfig) (*Payload, error) {
	if cfg.Links == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "links input is not tabular")
	}

	cols := network.LinkColumns{Source: cfg.Source, Target: cfg.Target}
	if cols.Source == "" || cols.Target == "" {
		columns := cfg.Links.Columns()
		if len(columns) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"links table needs at least two columns, has %d", len(columns))
		}
		if cols.Source == "" {
			cols.Source = columns[0]
		}
		if cols.Target == "" {
			cols.Target = columns[1]
		}
	}

	nodes, err := network.NodesFromLinks(cfg.Links, cols)
	if err != nil {
		return nil, err
	}
	links, err := network.ExtractLinks(cfg.Links, cols, nodes)
	if err != nil {
		return nil, err
	}

	opts := cfg.Options
	if err := opts.ValidateAndSetDefaults(network.TypeSimple); err != nil {
		return nil, err
	}
	if opts.NodeColour == "" {
		opts.NodeColour = network.DefaultNodeColour
	}

	return newPayload(network.TypeSimple, Data{Links: links, Nodes: nodes}, opts, cfg.Sizing), nil
}

// ForceConfig configures [NewForce]. Links and Nodes are both required.
// Value and NodeSize are optional column names; their presence toggles the
// weight field on links and the nodesize option respectively.
type ForceConfig struct {
	Links    *table.Table
	Nodes    *table.Table
	Source   string
	Target   string
	Value    string // optional
	NodeID   string
	Group    string // optional
	NodeSize string // optional
	Options  network.Options
	Sizing   Sizing
}

// NewForce builds a force-directed graph payload from links and nodes
// tables. Link endpoints resolve against the node id column by name, or are
// taken as positional row indexes when numeric.
func NewForce(cfg ForceConfig) (*Payload, error) {
	links, nodes, err := extractPair(cfg.Links, cfg.Nodes,
		network.LinkColumns{Source: cfg.Source, Target: cfg.Target, Value: cfg.Value},
		network.NodeColumns{ID: cfg.NodeID, Group: cfg.Group, Size: cfg.NodeSize})
	if err != nil {
		return nil, err
	}

	opts := cfg.Options
	opts.NodeSize = cfg.NodeSize != ""
	if err := opts.ValidateAndSetDefaults(network.TypeForce); err != nil {
		return nil, err
	}

	return newPayload(network.TypeForce, Data{Links: links, Nodes: nodes}, opts, cfg.Sizing), nil
}

// TreeConfig configures [NewTree]. Root accepts anything the hierarchy
// normalizer accepts: a typed node or a generic decoded object.
type TreeConfig struct {
	Root    any
	Options network.Options
	Sizing  Sizing
}

// NewTree builds a hierarchical tree payload from a single root value.
// Only the top-level shape is validated; malformed deeper nodes surface at
// the renderer.
func NewTree(cfg TreeConfig) (*Payload, error) {
	root, err := hierarchy.Normalize(cfg.Root)
	if err != nil {
		return nil, err
	}

	opts := cfg.Options
	if err := opts.ValidateAndSetDefaults(network.TypeTree); err != nil {
		return nil, err
	}

	return newPayload(network.TypeTree, Data{Root: root}, opts, cfg.Sizing), nil
}

// FlowConfig configures [NewFlow]. Flow diagrams are weighted by
// definition, so Value is required.
type FlowConfig struct {
	Links    *table.Table
	Nodes    *table.Table
	Source   string
	Target   string
	Value    string
	NodeID   string
	Group    string // optional
	NodeSize string // optional
	Units    string
	Options  network.Options
	Sizing   Sizing
}

// NewFlow builds a weighted flow (sankey) payload from links and nodes
// tables.
func NewFlow(cfg FlowConfig) (*Payload, error) {
	if cfg.Value == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "flow graphs require a value column")
	}

	links, nodes, err := extractPair(cfg.Links, cfg.Nodes,
		network.LinkColumns{Source: cfg.Source, Target: cfg.Target, Value: cfg.Value},
		network.NodeColumns{ID: cfg.NodeID, Group: cfg.Group, Size: cfg.NodeSize})
	if err != nil {
		return nil, err
	}

	opts := cfg.Options
	opts.NodeSize = cfg.NodeSize != ""
	opts.Units = cfg.Units
	if err := opts.ValidateAndSetDefaults(network.TypeFlow); err != nil {
		return nil, err
	}

	return newPayload(network.TypeFlow, Data{Links: links, Nodes: nodes}, opts, cfg.Sizing), nil
}

// extractPair runs the nodes-then-links projection shared by the force and
// flow constructors.
func extractPair(links, nodes *table.Table, lc network.LinkColumns, nc network.NodeColumns) ([]network.Link, []network.Node, error) {
	if links == nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "links input is not tabular")
	}
	if nodes == nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "nodes input is not tabular")
	}

	nodeRecords, err := network.ExtractNodes(nodes, nc)
	if err != nil {
		return nil, nil, err
	}
	linkRecords, err := network.ExtractLinks(links, lc, nodeRecords)
	if err != nil {
		return nil, nil, err
	}
	return linkRecords, nodeRecords, nil
}
