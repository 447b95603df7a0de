// Package widget composes extracted graph data, assembled options, and a
// sizing policy into the payload handed to the external rendering runtime.
//
// A [Payload] is the unit that crosses the system boundary. It is built in
// one shot, is not mutated afterwards, and has no further lifecycle here:
// ownership passes entirely to the renderer (or a serialization sink) on
// construction. Every build is an independent, stateless transformation, so
// concurrent callers never interfere.
package widget

import (
	"github.com/google/uuid"

	"github.com/csese/networkD3/pkg/hierarchy"
	"github.com/csese/networkD3/pkg/network"
)

// FillContainer is the sizing sentinel meaning "take the hosting container's
// dimension" instead of a fixed pixel value.
const FillContainer = 0

// DefaultPadding is the frame padding in pixels.
const DefaultPadding = 10

// Sizing is the frame policy for the rendered output: fixed pixel dimensions
// or the fill-container sentinel, plus padding and fill behavior.
type Sizing struct {
	Width   int  `json:"width"`  // pixels, or FillContainer
	Height  int  `json:"height"` // pixels, or FillContainer
	Padding int  `json:"padding"`
	Fill    bool `json:"fill"` // resize with the hosting container
}

// DefaultSizing returns the sizing policy used when the caller supplies
// none: fill the container with 10px padding.
func DefaultSizing() Sizing {
	return Sizing{Width: FillContainer, Height: FillContainer, Padding: DefaultPadding, Fill: true}
}

// Data is the data field of a payload: either a link/node pair (simple,
// force, flow) or a rooted hierarchy (tree), never both.
type Data struct {
	Links []network.Link  `json:"links,omitempty"`
	Nodes []network.Node  `json:"nodes,omitempty"`
	Root  *hierarchy.Node `json:"root,omitempty"`
}

// Payload is the serializable document handed across the rendering boundary.
// Type is the graph variant discriminator the renderer dispatches on.
// ElementID is a unique DOM id so multiple widgets can share one page.
type Payload struct {
	Type      string          `json:"type"`
	Data      Data            `json:"data"`
	Options   network.Options `json:"options"`
	Sizing    Sizing          `json:"sizing"`
	ElementID string          `json:"elementId"`
}

// newElementID produces a unique DOM id for a widget container.
func newElementID() string {
	return "networkd3-" + uuid.NewString()
}

// newPayload assembles the final document. By the time this runs, all
// validation has already happened; this step only composes.
func newPayload(graphType string, data Data, opts network.Options, sizing Sizing) *Payload {
	if sizing == (Sizing{}) {
		sizing = DefaultSizing()
	}
	return &Payload{
		Type:      graphType,
		Data:      data,
		Options:   opts,
		Sizing:    sizing,
		ElementID: newElementID(),
	}
}
