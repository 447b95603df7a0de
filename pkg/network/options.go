package network

// =============================================================================
// Default Values - Single Source of Truth for Library, CLI, and Server
// =============================================================================

const (
	// DefaultFontSize is the base label font size in pixels.
	DefaultFontSize = 7.0

	// DefaultFontFamily is the label font family.
	DefaultFontFamily = "serif"

	// DefaultOpacity is the overall node/label opacity.
	DefaultOpacity = 0.6

	// DefaultCharge is the node repulsion strength for force layouts.
	DefaultCharge = -30.0

	// DefaultLinkDistance is the resting link length in pixels.
	DefaultLinkDistance = 50.0

	// DefaultLinkColour is the link stroke color.
	DefaultLinkColour = "#666"

	// DefaultNodeColour is the node fill color for ungrouped graphs.
	DefaultNodeColour = "#3182bd"

	// DefaultNodeWidth is the node bar width for flow diagrams.
	DefaultNodeWidth = 15.0

	// DefaultNodePadding is the vertical node separation for flow diagrams.
	DefaultNodePadding = 10.0

	// DefaultIterations is the layout iteration count for flow diagrams.
	DefaultIterations = 32
)

// Derivation constants. These are fixed multiples, not tunables: changing
// them changes the rendered output of every existing caller.
const (
	// ClickTextFactor scales the base font size up for the enlarged label
	// shown while a node is clicked or hovered.
	ClickTextFactor = 2.5

	// LinkOpacityFactor scales the overall opacity down for link strokes.
	LinkOpacityFactor = 0.5
)

// Default renderer-side expressions. These are opaque snippets evaluated by
// the external runtime's expression evaluator, never parsed here.
const (
	DefaultColourScale Expr = "d3.scaleOrdinal(d3.schemeCategory20);"
	DefaultLinkWidth   Expr = "function(d) { return Math.sqrt(d.value); }"
	DefaultRadius      Expr = "Math.sqrt(d.nodesize)+6"
)

// Expr is a renderer-side expression passed through uninterpreted. Syntax
// errors in an Expr are a renderer-side failure; this layer performs no
// validation of the snippet.
type Expr string

// =============================================================================
// Options - Flat Renderer Configuration
// =============================================================================

// Options is the flat key set handed to the rendering runtime. All keys are
// independent; no two options conflict. Fields marked derived are computed
// by [Options.ValidateAndSetDefaults] from their base values and must not be
// set directly.
type Options struct {
	// Label styling
	FontSize      float64 `json:"fontSize"`
	FontFamily    string  `json:"fontFamily"`
	ClickTextSize float64 `json:"clickTextSize"` // derived: FontSize * ClickTextFactor

	// Link styling
	LinkDistance float64 `json:"linkDistance"`
	LinkWidth    Expr    `json:"linkWidth,omitempty"`
	LinkColour   string  `json:"linkColour"`
	LinkOpacity  float64 `json:"linkOpacity"` // derived: Opacity * LinkOpacityFactor

	// Node styling
	NodeColour  string `json:"nodeColour,omitempty"`
	ColourScale Expr   `json:"colourScale,omitempty"`
	NodeSize    bool   `json:"nodesize"` // size field present on nodes
	Radius      Expr   `json:"radiusCalculation,omitempty"`

	// Physics
	Charge float64 `json:"charge"`

	// Opacity
	Opacity        float64 `json:"opacity"`
	OpacityNoHover float64 `json:"opacityNoHover"`

	// Behavior toggles
	Zoom    bool `json:"zoom"`
	Legend  bool `json:"legend"`
	Arrows  bool `json:"arrows"`
	Bounded bool `json:"bounded"`

	// Interaction hook, evaluated by the renderer on node click.
	ClickAction Expr `json:"clickAction,omitempty"`

	// Flow-only keys
	Units       string  `json:"units,omitempty"`
	NodeWidth   float64 `json:"nodeWidth,omitempty"`
	NodePadding float64 `json:"nodePadding,omitempty"`
	Iterations  int     `json:"iterations,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the graph type, fills unset fields with the
// defaults for that type, and computes derived values. It is idempotent:
// calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults(graphType string) error {
	if o.validated {
		return nil
	}
	if err := ValidateType(graphType); err != nil {
		return err
	}

	o.setCommonDefaults()
	switch graphType {
	case TypeForce:
		o.setForceDefaults()
	case TypeFlow:
		o.setFlowDefaults()
	}
	o.derive()

	o.validated = true
	return nil
}

// setCommonDefaults fills fields shared by every graph type.
func (o *Options) setCommonDefaults() {
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	if o.Opacity == 0 {
		o.Opacity = DefaultOpacity
	}
	if o.LinkDistance == 0 {
		o.LinkDistance = DefaultLinkDistance
	}
	if o.LinkColour == "" {
		o.LinkColour = DefaultLinkColour
	}
	if o.Charge == 0 {
		o.Charge = DefaultCharge
	}
}

// setForceDefaults fills the force-directed extras: a color scale for
// grouped nodes and expressions for link width and node radius.
func (o *Options) setForceDefaults() {
	if o.ColourScale == "" {
		o.ColourScale = DefaultColourScale
	}
	if o.LinkWidth == "" {
		o.LinkWidth = DefaultLinkWidth
	}
	if o.Radius == "" {
		o.Radius = DefaultRadius
	}
}

// setFlowDefaults fills the flow-diagram extras.
func (o *Options) setFlowDefaults() {
	if o.NodeWidth == 0 {
		o.NodeWidth = DefaultNodeWidth
	}
	if o.NodePadding == 0 {
		o.NodePadding = DefaultNodePadding
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
}

// derive computes options that are fixed functions of other options.
// Reproducing these exactly preserves visual parity with prior output.
func (o *Options) derive() {
	o.ClickTextSize = o.FontSize * ClickTextFactor
	o.LinkOpacity = o.Opacity * LinkOpacityFactor
}
