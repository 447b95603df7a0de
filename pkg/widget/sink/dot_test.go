package sink

import (
	"strings"
	"testing"

	"github.com/csese/networkD3/pkg/hierarchy"
	"github.com/csese/networkD3/pkg/network"
	"github.com/csese/networkD3/pkg/widget"
)

func TestToDOTForce(t *testing.T) {
	p := forcePayload(t)

	dot, err := ToDOT(p)
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("expected undirected graph, got prefix %q", dot[:20])
	}
	for _, want := range []string{`label="A"`, `label="B"`, `label="C"`, "0 -- 1", "0 -- 2"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
	// Weighted links carry their value as an edge label.
	if !strings.Contains(dot, `label="2"`) {
		t.Error("DOT output missing link weight label")
	}
}

func TestToDOTArrows(t *testing.T) {
	p := forcePayload(t)
	p.Options.Arrows = true

	dot, err := ToDOT(p)
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("arrows option should produce a directed graph")
	}
	if !strings.Contains(dot, "0 -> 1") {
		t.Error("DOT output missing directed edge")
	}
}

func TestToDOTTree(t *testing.T) {
	p, err := widget.NewTree(widget.TreeConfig{
		Root: hierarchy.Node{
			Name: "root",
			Children: []hierarchy.Node{
				{Name: "left", Children: []hierarchy.Node{{Name: "leaf"}}},
				{Name: "right"},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewTree() error: %v", err)
	}

	dot, err := ToDOT(p)
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("tree preview should be directed")
	}
	for _, want := range []string{`label="root"`, `label="left"`, `label="right"`, `label="leaf"`, "0 -> 1", "0 -> 2", "1 -> 3"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
}

func TestToDOTTreeWithoutRoot(t *testing.T) {
	p := &widget.Payload{Type: network.TypeTree}
	if _, err := ToDOT(p); err == nil {
		t.Error("ToDOT() on rootless tree expected error")
	}
}

func TestApplySizing(t *testing.T) {
	svg := []byte(`<svg width="120pt" height="80pt" viewBox="0.00 0.00 120.00 80.00">`)

	out := applySizing(svg, widget.Sizing{Width: 640, Height: 480})
	s := string(out)
	if !strings.Contains(s, `width="640"`) {
		t.Errorf("width not applied: %s", s)
	}
	if !strings.Contains(s, `height="480"`) {
		t.Errorf("height not applied: %s", s)
	}
	if !strings.Contains(s, `viewBox="0 0 120.00 80.00"`) {
		t.Errorf("viewBox not preserved: %s", s)
	}
}

func TestApplySizingFillKeepsNaturalSize(t *testing.T) {
	svg := []byte(`<svg width="120pt" height="80pt" viewBox="0.00 0.00 120.00 80.00">`)

	out := applySizing(svg, widget.DefaultSizing())
	s := string(out)
	if !strings.Contains(s, `width="120"`) || !strings.Contains(s, `height="80"`) {
		t.Errorf("fill sizing should keep natural dimensions: %s", s)
	}
}
