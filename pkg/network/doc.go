// Package network defines the canonical graph records and renderer options
// for networkD3 visualizations.
//
// The package covers two of the system's core concerns:
//
//   - Extraction: projecting named columns out of tabular input into the
//     canonical link and node sequences ([ExtractLinks], [ExtractNodes],
//     [NodesFromLinks]). Extraction is a pure projection; any precondition
//     failure aborts with nothing partially constructed.
//
//   - Options assembly: merging caller-supplied style and behavior keys with
//     per-graph-type defaults and computing derived values
//     ([Options.ValidateAndSetDefaults]). Expression-valued options ([Expr])
//     are forwarded to the rendering runtime uninterpreted.
//
// Payload construction on top of these records lives in package widget.
package network
