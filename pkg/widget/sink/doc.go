// Package sink serializes widget payloads to the formats consumed outside
// the system boundary.
//
// Three sinks cover the three embedding modes:
//
//   - [RenderJSON] emits the payload document itself, for callers that feed
//     an already-running visualization runtime or store the payload as an
//     external artifact.
//   - [RenderHTML] emits a standalone HTML document that embeds the payload
//     and defers layout, drawing, and interaction to the browser-side
//     runtime it references.
//   - [ToDOT] with [RenderSVG] or [RenderPNG] produces a static Graphviz
//     preview for contexts with no browser runtime at all. The preview is a
//     convenience; it is not the renderer the payload contract targets.
//
// Sinks never mutate the payload and are safe for concurrent use.
package sink
