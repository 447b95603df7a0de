package sink

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/csese/networkD3/pkg/table"
	"github.com/csese/networkD3/pkg/widget"
)

func forcePayload(t *testing.T) *widget.Payload {
	t.Helper()

	links, err := table.New(
		[]string{"source", "target", "value"},
		[][]table.Value{
			{"A", "B", 1.0},
			{"A", "C", 2.0},
		},
	)
	if err != nil {
		t.Fatalf("table.New() error: %v", err)
	}
	nodes, err := table.New(
		[]string{"id", "group"},
		[][]table.Value{
			{"A", 1.0},
			{"B", 1.0},
			{"C", 2.0},
		},
	)
	if err != nil {
		t.Fatalf("table.New() error: %v", err)
	}

	p, err := widget.NewForce(widget.ForceConfig{
		Links:  links,
		Nodes:  nodes,
		Source: "source",
		Target: "target",
		Value:  "value",
		NodeID: "id",
		Group:  "group",
	})
	if err != nil {
		t.Fatalf("NewForce() error: %v", err)
	}
	return p
}

func TestRenderJSON(t *testing.T) {
	p := forcePayload(t)

	data, err := RenderJSON(p)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out widget.Payload
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Type != "force" {
		t.Errorf("Type = %q, want force", out.Type)
	}
	if len(out.Data.Links) != 2 {
		t.Errorf("Links count = %d, want 2", len(out.Data.Links))
	}
	if len(out.Data.Nodes) != 3 {
		t.Errorf("Nodes count = %d, want 3", len(out.Data.Nodes))
	}
	if out.Options.ClickTextSize != 17.5 {
		t.Errorf("ClickTextSize = %v, want 17.5", out.Options.ClickTextSize)
	}
	if out.ElementID != p.ElementID {
		t.Errorf("ElementID = %q, want %q", out.ElementID, p.ElementID)
	}
}

func TestRenderJSONCompact(t *testing.T) {
	p := forcePayload(t)

	data, err := RenderJSON(p, WithJSONCompact())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	if bytes.Contains(data, []byte("\n")) {
		t.Error("compact output contains newlines")
	}
}

func TestRenderJSONElementIDOverride(t *testing.T) {
	p := forcePayload(t)

	data, err := RenderJSON(p, WithJSONElementID("fixed-id"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out widget.Payload
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.ElementID != "fixed-id" {
		t.Errorf("ElementID = %q, want fixed-id", out.ElementID)
	}

	// The payload itself must stay untouched.
	if p.ElementID == "fixed-id" {
		t.Error("RenderJSON mutated the payload's element id")
	}
}

func TestRenderJSONStableWithFixedID(t *testing.T) {
	p := forcePayload(t)

	a, err := RenderJSON(p, WithJSONElementID("x"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	b, err := RenderJSON(p, WithJSONElementID("x"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("output with fixed element id is not byte-stable")
	}
}
