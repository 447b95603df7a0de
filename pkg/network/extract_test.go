package network

import (
	"testing"

	"github.com/csese/networkD3/pkg/errors"
	"github.com/csese/networkD3/pkg/table"
)

func mustTable(t *testing.T, columns []string, rows [][]table.Value) *table.Table {
	t.Helper()
	tbl, err := table.New(columns, rows)
	if err != nil {
		t.Fatalf("table.New() error: %v", err)
	}
	return tbl
}

func TestExtractNodes(t *testing.T) {
	tbl := mustTable(t,
		[]string{"id", "group", "influence"},
		[][]table.Value{
			{"Myriel", 1.0, 3.0},
			{"Napoleon", 1.0, 5.0},
			{"Valjean", 2.0, 8.0},
		},
	)

	nodes, err := ExtractNodes(tbl, NodeColumns{ID: "id", Group: "group", Size: "influence"})
	if err != nil {
		t.Fatalf("ExtractNodes() error: %v", err)
	}

	if len(nodes) != 3 {
		t.Fatalf("len(nodes) = %d, want 3", len(nodes))
	}
	if nodes[0].Name != "Myriel" {
		t.Errorf("nodes[0].Name = %q, want Myriel", nodes[0].Name)
	}
	if nodes[2].Group != "2" {
		t.Errorf("nodes[2].Group = %q, want 2", nodes[2].Group)
	}
	if nodes[1].Size == nil || *nodes[1].Size != 5 {
		t.Errorf("nodes[1].Size = %v, want 5", nodes[1].Size)
	}
}

func TestExtractNodesNoSize(t *testing.T) {
	tbl := mustTable(t, []string{"id"}, [][]table.Value{{"A"}, {"B"}})

	nodes, err := ExtractNodes(tbl, NodeColumns{ID: "id"})
	if err != nil {
		t.Fatalf("ExtractNodes() error: %v", err)
	}
	for i, n := range nodes {
		if n.Size != nil {
			t.Errorf("nodes[%d].Size = %v, want nil", i, n.Size)
		}
	}
}

func TestExtractNodesNilTable(t *testing.T) {
	_, err := ExtractNodes(nil, NodeColumns{ID: "id"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestExtractNodesMissingColumn(t *testing.T) {
	tbl := mustTable(t, []string{"id"}, [][]table.Value{{"A"}})

	_, err := ExtractNodes(tbl, NodeColumns{ID: "id", Group: "grp"})
	if !errors.Is(err, errors.ErrCodeMissingColumn) {
		t.Errorf("error code = %v, want MISSING_COLUMN", errors.GetCode(err))
	}
}

func TestExtractLinksByName(t *testing.T) {
	links := mustTable(t,
		[]string{"from", "to"},
		[][]table.Value{
			{"A", "B"},
			{"A", "C"},
		},
	)
	nodes := []Node{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	got, err := ExtractLinks(links, LinkColumns{Source: "from", Target: "to"}, nodes)
	if err != nil {
		t.Fatalf("ExtractLinks() error: %v", err)
	}

	want := []Link{{Source: 0, Target: 1}, {Source: 0, Target: 2}}
	for i := range want {
		if got[i].Source != want[i].Source || got[i].Target != want[i].Target {
			t.Errorf("links[%d] = {%d,%d}, want {%d,%d}",
				i, got[i].Source, got[i].Target, want[i].Source, want[i].Target)
		}
		if got[i].Value != nil {
			t.Errorf("links[%d].Value = %v, want nil (no value column)", i, got[i].Value)
		}
	}
}

func TestExtractLinksPositional(t *testing.T) {
	links := mustTable(t,
		[]string{"source", "target", "value"},
		[][]table.Value{
			{0.0, 1.0, 2.5},
			{1.0, 2.0, 4.0},
		},
	)
	nodes := []Node{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	got, err := ExtractLinks(links, LinkColumns{Source: "source", Target: "target", Value: "value"}, nodes)
	if err != nil {
		t.Fatalf("ExtractLinks() error: %v", err)
	}

	if got[0].Source != 0 || got[0].Target != 1 {
		t.Errorf("links[0] = {%d,%d}, want {0,1}", got[0].Source, got[0].Target)
	}
	if got[0].Value == nil || *got[0].Value != 2.5 {
		t.Errorf("links[0].Value = %v, want 2.5", got[0].Value)
	}
}

func TestExtractLinksWithinBounds(t *testing.T) {
	links := mustTable(t,
		[]string{"source", "target"},
		[][]table.Value{
			{"A", "C"},
			{"C", "B"},
			{"B", "A"},
		},
	)
	nodes := []Node{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	got, err := ExtractLinks(links, LinkColumns{Source: "source", Target: "target"}, nodes)
	if err != nil {
		t.Fatalf("ExtractLinks() error: %v", err)
	}

	for i, l := range got {
		if l.Source < 0 || l.Source >= len(nodes) {
			t.Errorf("links[%d].Source = %d out of bounds", i, l.Source)
		}
		if l.Target < 0 || l.Target >= len(nodes) {
			t.Errorf("links[%d].Target = %d out of bounds", i, l.Target)
		}
	}
}

func TestExtractLinksUnresolvedName(t *testing.T) {
	links := mustTable(t,
		[]string{"source", "target"},
		[][]table.Value{{"A", "Zeus"}},
	)
	nodes := []Node{{Name: "A"}}

	_, err := ExtractLinks(links, LinkColumns{Source: "source", Target: "target"}, nodes)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestExtractLinksMissingColumn(t *testing.T) {
	links := mustTable(t, []string{"source", "target"}, [][]table.Value{{"A", "B"}})

	_, err := ExtractLinks(links, LinkColumns{Source: "source", Target: "to"}, []Node{{Name: "A"}, {Name: "B"}})
	if !errors.Is(err, errors.ErrCodeMissingColumn) {
		t.Errorf("error code = %v, want MISSING_COLUMN", errors.GetCode(err))
	}
}

func TestExtractLinksNilTable(t *testing.T) {
	_, err := ExtractLinks(nil, LinkColumns{Source: "s", Target: "t"}, nil)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestExtractLinksNonNumericValue(t *testing.T) {
	links := mustTable(t,
		[]string{"source", "target", "value"},
		[][]table.Value{{"A", "B", "heavy"}},
	)
	nodes := []Node{{Name: "A"}, {Name: "B"}}

	_, err := ExtractLinks(links, LinkColumns{Source: "source", Target: "target", Value: "value"}, nodes)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestNodesFromLinks(t *testing.T) {
	links := mustTable(t,
		[]string{"source", "target"},
		[][]table.Value{
			{"B", "A"},
			{"B", "C"},
			{"A", "C"},
		},
	)

	nodes, err := NodesFromLinks(links, LinkColumns{Source: "source", Target: "target"})
	if err != nil {
		t.Fatalf("NodesFromLinks() error: %v", err)
	}

	// First-appearance order.
	want := []string{"B", "A", "C"}
	if len(nodes) != len(want) {
		t.Fatalf("len(nodes) = %d, want %d", len(nodes), len(want))
	}
	for i, name := range want {
		if nodes[i].Name != name {
			t.Errorf("nodes[%d].Name = %q, want %q", i, nodes[i].Name, name)
		}
	}
}
