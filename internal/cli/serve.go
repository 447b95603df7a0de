package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/csese/networkD3/pkg/widget/sink"
)

const (
	// defaultServeAddr is the default listen address for the serve command.
	defaultServeAddr = "127.0.0.1:8478"

	// serveShutdownTimeout bounds graceful shutdown on interrupt.
	serveShutdownTimeout = 5 * time.Second
)

// newServeCmd creates the serve command. It builds the widget payload from
// the input and serves the rendered page over HTTP for live preview. The
// payload is rebuilt on every request, so edits to a local input file show
// up on refresh.
func newServeCmd() *cobra.Command {
	var addr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "serve [file|url]",
		Short: "Serve the rendered widget page over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.graphType == "" {
				t, err := pickGraphType()
				if err != nil {
					return err
				}
				opts.graphType = t
			}
			return runServe(cmd.Context(), addr, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().StringVarP(&opts.graphType, "type", "t", "", "graph type: simple, force, tree, flow")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "input format override: csv, json, yaml")
	cmd.Flags().StringVar(&opts.nodes, "nodes", "", "nodes table file or URL (force, flow)")
	cmd.Flags().StringVar(&opts.source, "source", "", "links column holding the source endpoint")
	cmd.Flags().StringVar(&opts.target, "target", "", "links column holding the target endpoint")
	cmd.Flags().StringVar(&opts.value, "value", "", "links column holding the link weight")
	cmd.Flags().StringVar(&opts.nodeID, "node-id", "", "nodes column holding the node name")
	cmd.Flags().StringVar(&opts.group, "group", "", "nodes column holding the node group")
	cmd.Flags().StringVar(&opts.nodeSize, "node-size", "", "nodes column holding the node size")
	cmd.Flags().StringVar(&opts.units, "units", "", "unit label for flow link weights")
	cmd.Flags().StringVar(&opts.title, "title", "", "HTML page title")

	return cmd
}

// runServe starts the preview server and blocks until ctx is cancelled or
// the listener fails.
func runServe(ctx context.Context, addr, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	// Fail fast on broken input before binding the listener.
	if _, err := buildPayload(ctx, input, opts); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		p, err := buildPayload(ctx, input, opts)
		if err != nil {
			serveError(w, logger, err)
			return
		}
		var htmlOpts []sink.HTMLOption
		if opts.title != "" {
			htmlOpts = append(htmlOpts, sink.WithHTMLTitle(opts.title))
		}
		page, err := sink.RenderHTML(p, htmlOpts...)
		if err != nil {
			serveError(w, logger, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})

	r.Get("/payload.json", func(w http.ResponseWriter, req *http.Request) {
		p, err := buildPayload(ctx, input, opts)
		if err != nil {
			serveError(w, logger, err)
			return
		}
		data, err := sink.RenderJSON(p)
		if err != nil {
			serveError(w, logger, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: r}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	logger.Infof("Serving %s graph at http://%s/", opts.graphType, ln.Addr())
	printSuccess("preview running at %s", StyleLink.Render(fmt.Sprintf("http://%s/", ln.Addr())))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// serveError reports a request failure without killing the server.
func serveError(w http.ResponseWriter, logger *log.Logger, err error) {
	logger.Errorf("request failed: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
