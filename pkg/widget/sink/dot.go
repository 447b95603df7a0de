package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/csese/networkD3/pkg/errors"
	"github.com/csese/networkD3/pkg/hierarchy"
	"github.com/csese/networkD3/pkg/network"
	"github.com/csese/networkD3/pkg/widget"
)

// ToDOT converts a payload to Graphviz DOT format for static preview.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
//
// Link/node payloads become a node-link diagram, directed when the arrows
// option is on. Tree payloads become a top-down parent/child diagram. Link
// weights appear as edge labels.
func ToDOT(p *widget.Payload) (string, error) {
	var buf bytes.Buffer

	keyword, connector := "graph", "--"
	if p.Type == network.TypeTree || p.Type == network.TypeFlow || p.Options.Arrows {
		keyword, connector = "digraph", "->"
	}

	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=ellipse, style=filled, fillcolor=%q, fontname=%q, fontsize=%0.f];\n",
		nodeFill(p), p.Options.FontFamily, previewFontSize(p.Options.FontSize))
	buf.WriteString("\n")

	switch p.Type {
	case network.TypeTree:
		if p.Data.Root == nil {
			return "", errors.New(errors.ErrCodeInvalidInput, "tree payload has no root")
		}
		writeTree(&buf, p.Data.Root, connector)
	case network.TypeSimple, network.TypeForce, network.TypeFlow:
		writeNetwork(&buf, p, connector)
	default:
		return "", errors.New(errors.ErrCodeInvalidGraphType, "cannot preview graph type %q", p.Type)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// previewFontSize scales the widget font size up to something legible in a
// static image; browser widgets enlarge labels on hover, a preview cannot.
func previewFontSize(base float64) float64 {
	return base * 2
}

func nodeFill(p *widget.Payload) string {
	if p.Options.NodeColour != "" {
		return p.Options.NodeColour
	}
	return network.DefaultNodeColour
}

func writeNetwork(buf *bytes.Buffer, p *widget.Payload, connector string) {
	for i, n := range p.Data.Nodes {
		attrs := []string{fmt.Sprintf("label=%q", n.Name)}
		if n.Group != "" {
			attrs = append(attrs, fmt.Sprintf("tooltip=%q", "group "+n.Group))
		}
		fmt.Fprintf(buf, "  %d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, l := range p.Data.Links {
		if l.Value != nil {
			fmt.Fprintf(buf, "  %d %s %d [label=%q];\n",
				l.Source, connector, l.Target, strconv.FormatFloat(*l.Value, 'f', -1, 64))
		} else {
			fmt.Fprintf(buf, "  %d %s %d;\n", l.Source, connector, l.Target)
		}
	}
}

func writeTree(buf *bytes.Buffer, root *hierarchy.Node, connector string) {
	// Breadth-first ids keep sibling order stable in the output.
	type entry struct {
		node *hierarchy.Node
		id   int
	}
	queue := []entry{{root, 0}}
	next := 1

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		fmt.Fprintf(buf, "  %d [label=%q];\n", e.id, e.node.Name)
		for i := range e.node.Children {
			child := &e.node.Children[i]
			fmt.Fprintf(buf, "  %d %s %d;\n", e.id, connector, next)
			queue = append(queue, entry{child, next})
			next++
		}
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz. When sizing names
// fixed dimensions, the SVG tag is rewritten to match them while the
// viewBox preserves the drawing's aspect ratio.
func RenderSVG(dot string, sizing widget.Sizing) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return applySizing(buf.Bytes(), sizing), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// applySizing rewrites the SVG root element so the image honors the widget
// sizing policy. Fill-container dimensions keep Graphviz's natural size.
func applySizing(svg []byte, sizing widget.Sizing) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	outW, outH := w, h
	if sizing.Width != widget.FillContainer {
		outW = float64(sizing.Width)
	}
	if sizing.Height != widget.FillContainer {
		outH = float64(sizing.Height)
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, outW, outH)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
