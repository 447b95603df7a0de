package sink

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/csese/networkD3/pkg/widget"
)

// Default script locations for the standalone document. The D3 core ships
// from the public CDN; the runtime is the browser-side library that
// understands the payload contract.
const (
	DefaultD3URL      = "https://d3js.org/d3.v7.min.js"
	DefaultRuntimeURL = "https://unpkg.com/networkd3-runtime/dist/networkd3.min.js"
)

// HTMLOption configures standalone document rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title      string
	d3URL      string
	runtimeURL string
}

// WithHTMLTitle sets the document title. Defaults to the graph type.
func WithHTMLTitle(title string) HTMLOption {
	return func(r *htmlRenderer) { r.title = title }
}

// WithHTMLD3URL overrides the D3 script location, e.g. for offline
// deployments serving a vendored copy.
func WithHTMLD3URL(url string) HTMLOption {
	return func(r *htmlRenderer) { r.d3URL = url }
}

// WithHTMLRuntimeURL overrides the rendering runtime script location.
func WithHTMLRuntimeURL(url string) HTMLOption {
	return func(r *htmlRenderer) { r.runtimeURL = url }
}

// htmlTemplate is the standalone document skeleton. The payload travels in
// an application/json script element; the inline bootstrap only parses it
// and hands it to the runtime, which owns all layout and interaction logic.
var htmlTemplate = template.Must(template.New("widget").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.D3URL}}"></script>
<script src="{{.RuntimeURL}}"></script>
<style>
html, body { margin: 0; padding: 0; }
.networkd3-widget { width: {{.Width}}; height: {{.Height}}; padding: {{.Padding}}px; }
</style>
</head>
<body>
<div id="{{.ElementID}}" class="networkd3-widget"></div>
<script type="application/json" id="{{.ElementID}}-payload">{{.Payload}}</script>
<script>
(function() {
  var el = document.getElementById({{.ElementID}});
  var payload = JSON.parse(document.getElementById({{.ElementID}} + "-payload").textContent);
  networkD3.render(el, payload);
})();
</script>
</body>
</html>
`))

type htmlData struct {
	Title      string
	D3URL      string
	RuntimeURL string
	ElementID  string
	Width      string
	Height     string
	Padding    int
	Payload    template.JS
}

// RenderHTML serializes a payload into a standalone HTML document that
// embeds the payload JSON and defers all rendering to the external runtime.
func RenderHTML(p *widget.Payload, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{
		title:      p.Type + " network",
		d3URL:      DefaultD3URL,
		runtimeURL: DefaultRuntimeURL,
	}
	for _, opt := range opts {
		opt(&r)
	}

	payload, err := RenderJSON(p, WithJSONCompact())
	if err != nil {
		return nil, err
	}

	data := htmlData{
		Title:      r.title,
		D3URL:      r.d3URL,
		RuntimeURL: r.runtimeURL,
		ElementID:  p.ElementID,
		Width:      cssDimension(p.Sizing.Width),
		Height:     cssDimension(p.Sizing.Height),
		Padding:    p.Sizing.Padding,
		Payload:    template.JS(payload),
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// cssDimension maps a sizing dimension to CSS, honoring the fill-container
// sentinel.
func cssDimension(px int) string {
	if px == widget.FillContainer {
		return "100%"
	}
	return fmt.Sprintf("%dpx", px)
}
