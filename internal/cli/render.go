package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csese/networkD3/pkg/errors"
	"github.com/csese/networkD3/pkg/network"
	"github.com/csese/networkD3/pkg/widget"
	"github.com/csese/networkD3/pkg/widget/sink"
)

// renderOpts holds the command-line flags for the render command.
// These options select the graph type, map input columns, and tune the
// renderer configuration embedded in the payload.
type renderOpts struct {
	output      string   // output file path (or base path for multiple formats)
	graphType   string   // graph type: simple, force, tree, flow
	formats     []string // output formats: json, html, svg, png
	inputFormat string   // input format override: csv, json, yaml
	nodes       string   // nodes table path or URL (force, flow)

	// column mapping
	source   string
	target   string
	value    string
	nodeID   string
	group    string
	nodeSize string
	units    string

	// renderer options
	fontSize     float64
	fontFamily   string
	charge       float64
	linkDistance float64
	linkColour   string
	nodeColour   string
	opacity      float64
	zoom         bool
	legend       bool
	arrows       bool
	bounded      bool

	// sizing
	width   int
	height  int
	padding int

	title string // HTML page title
}

// newRenderCmd creates the render command for building widget payloads.
// The input may be a local file or an HTTP(S) URL; remote inputs go through
// the configured fetch cache.
//
// Default settings:
//   - format: json
//   - graph type: prompted interactively on a TTY, otherwise simple
//   - columns: first two columns as source/target for simple graphs
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file|url]",
		Short: "Build a widget payload and render it to JSON, HTML, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			for _, col := range []string{opts.source, opts.target, opts.value, opts.nodeID, opts.group, opts.nodeSize} {
				if col == "" {
					continue
				}
				if err := errors.ValidateColumnName(col); err != nil {
					return err
				}
			}
			if opts.graphType == "" {
				t, err := pickGraphType()
				if err != nil {
					return err
				}
				opts.graphType = t
			}
			if err := network.ValidateType(opts.graphType); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.graphType, "type", "t", "", "graph type: simple, force, tree, flow")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), html, svg, png (comma-separated)")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "input format override: csv, json, yaml")
	cmd.Flags().StringVar(&opts.nodes, "nodes", "", "nodes table file or URL (force, flow)")

	cmd.Flags().StringVar(&opts.source, "source", "", "links column holding the source endpoint")
	cmd.Flags().StringVar(&opts.target, "target", "", "links column holding the target endpoint")
	cmd.Flags().StringVar(&opts.value, "value", "", "links column holding the link weight")
	cmd.Flags().StringVar(&opts.nodeID, "node-id", "", "nodes column holding the node name")
	cmd.Flags().StringVar(&opts.group, "group", "", "nodes column holding the node group")
	cmd.Flags().StringVar(&opts.nodeSize, "node-size", "", "nodes column holding the node size")
	cmd.Flags().StringVar(&opts.units, "units", "", "unit label for flow link weights")

	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "label font size in pixels")
	cmd.Flags().StringVar(&opts.fontFamily, "font-family", "", "label font family")
	cmd.Flags().Float64Var(&opts.charge, "charge", 0, "node repulsion strength")
	cmd.Flags().Float64Var(&opts.linkDistance, "link-distance", 0, "resting link length in pixels")
	cmd.Flags().StringVar(&opts.linkColour, "link-colour", "", "link stroke color")
	cmd.Flags().StringVar(&opts.nodeColour, "node-colour", "", "node fill color")
	cmd.Flags().Float64Var(&opts.opacity, "opacity", 0, "node and label opacity")
	cmd.Flags().BoolVar(&opts.zoom, "zoom", false, "enable pan and zoom")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "show the group legend")
	cmd.Flags().BoolVar(&opts.arrows, "arrows", false, "draw directed link arrows")
	cmd.Flags().BoolVar(&opts.bounded, "bounded", false, "confine the layout to the viewport")

	cmd.Flags().IntVar(&opts.width, "width", 0, "widget width in pixels (0 fills the container)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "widget height in pixels (0 fills the container)")
	cmd.Flags().IntVar(&opts.padding, "padding", 0, "widget padding in pixels")
	cmd.Flags().StringVar(&opts.title, "title", "", "HTML page title")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["json"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"json"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"json": true, "html": true, "svg": true, "png": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'json', 'html', 'svg', or 'png')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from the input file name.
func basePath(output, input string) string {
	if output == "" {
		base := filepath.Base(input)
		if i := strings.IndexByte(base, '?'); i >= 0 {
			base = base[:i]
		}
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the input, builds the payload, and writes the requested
// formats.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s graph from %s", opts.graphType, input)
	track := newProgress(logger)

	p, err := buildPayload(ctx, input, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Built payload: %d links, %d nodes", len(p.Data.Links), len(p.Data.Nodes))

	if len(opts.formats) == 1 {
		outputPath := opts.output
		if outputPath == "" {
			outputPath = basePath("", input) + "." + opts.formats[0]
		}
		if err := renderAndWrite(ctx, p, opts.formats[0], outputPath, opts); err != nil {
			return err
		}
		track.done("render complete")
		return nil
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		if err := renderAndWrite(ctx, p, format, base+"."+format, opts); err != nil {
			return err
		}
	}
	track.done("render complete")
	return nil
}

// buildPayload loads the inputs named by opts and dispatches to the
// constructor for the selected graph type.
func buildPayload(ctx context.Context, input string, opts *renderOpts) (*widget.Payload, error) {
	cfg := configFromContext(ctx)
	sizing := cfg.DefaultSizing()
	if opts.width > 0 {
		sizing.Width = opts.width
	}
	if opts.height > 0 {
		sizing.Height = opts.height
	}
	if opts.padding > 0 {
		sizing.Padding = opts.padding
	}

	netOpts := cfg.BaseOptions()
	if opts.fontSize != 0 {
		netOpts.FontSize = opts.fontSize
	}
	if opts.fontFamily != "" {
		netOpts.FontFamily = opts.fontFamily
	}
	if opts.charge != 0 {
		netOpts.Charge = opts.charge
	}
	if opts.linkDistance != 0 {
		netOpts.LinkDistance = opts.linkDistance
	}
	if opts.linkColour != "" {
		netOpts.LinkColour = opts.linkColour
	}
	if opts.nodeColour != "" {
		netOpts.NodeColour = opts.nodeColour
	}
	if opts.opacity != 0 {
		netOpts.Opacity = opts.opacity
	}
	netOpts.Zoom = opts.zoom
	netOpts.Legend = opts.legend
	netOpts.Arrows = opts.arrows
	netOpts.Bounded = opts.bounded

	data, err := readInput(ctx, input)
	if err != nil {
		return nil, err
	}
	format := opts.inputFormat
	if format == "" {
		format = detectFormat(input)
	}

	if opts.graphType == network.TypeTree {
		root, err := loadHierarchy(data, format)
		if err != nil {
			return nil, err
		}
		return widget.NewTree(widget.TreeConfig{Root: root, Options: netOpts, Sizing: sizing})
	}

	links, err := loadTable(data, format)
	if err != nil {
		return nil, err
	}

	switch opts.graphType {
	case network.TypeSimple:
		return widget.NewSimple(widget.SimpleConfig{
			Links:   links,
			Source:  opts.source,
			Target:  opts.target,
			Options: netOpts,
			Sizing:  sizing,
		})
	case network.TypeForce, network.TypeFlow:
		if opts.nodes == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"%s graphs require a nodes table (--nodes)", opts.graphType)
		}
		nodesData, err := readInput(ctx, opts.nodes)
		if err != nil {
			return nil, err
		}
		nodes, err := loadTable(nodesData, detectFormatOr(opts.nodes, format))
		if err != nil {
			return nil, err
		}
		if opts.graphType == network.TypeForce {
			return widget.NewForce(widget.ForceConfig{
				Links:    links,
				Nodes:    nodes,
				Source:   opts.source,
				Target:   opts.target,
				Value:    opts.value,
				NodeID:   opts.nodeID,
				Group:    opts.group,
				NodeSize: opts.nodeSize,
				Options:  netOpts,
				Sizing:   sizing,
			})
		}
		return widget.NewFlow(widget.FlowConfig{
			Links:    links,
			Nodes:    nodes,
			Source:   opts.source,
			Target:   opts.target,
			Value:    opts.value,
			NodeID:   opts.nodeID,
			Group:    opts.group,
			NodeSize: opts.nodeSize,
			Units:    opts.units,
			Options:  netOpts,
			Sizing:   sizing,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidGraphType, "unknown graph type: %s", opts.graphType)
	}
}

// detectFormatOr detects the format of path, falling back to the override.
func detectFormatOr(path, fallback string) string {
	if f := detectFormat(path); f != "" {
		return f
	}
	return fallback
}

// renderAndWrite renders a single format and writes it to path.
func renderAndWrite(ctx context.Context, p *widget.Payload, format, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := renderPayload(p, format, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	if err := writeOutput(path, data); err != nil {
		return err
	}
	printWrote(path)
	return nil
}

// renderPayload dispatches to the sink for the requested format.
func renderPayload(p *widget.Payload, format string, opts *renderOpts) ([]byte, error) {
	switch format {
	case "json":
		return sink.RenderJSON(p)
	case "html":
		var htmlOpts []sink.HTMLOption
		if opts.title != "" {
			htmlOpts = append(htmlOpts, sink.WithHTMLTitle(opts.title))
		}
		return sink.RenderHTML(p, htmlOpts...)
	case "svg":
		dot, err := sink.ToDOT(p)
		if err != nil {
			return nil, err
		}
		return sink.RenderSVG(dot, p.Sizing)
	case "png":
		dot, err := sink.ToDOT(p)
		if err != nil {
			return nil, err
		}
		return sink.RenderPNG(dot)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// writeOutput writes data to path, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
