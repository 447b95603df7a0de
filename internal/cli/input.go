package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/csese/networkD3/pkg/errors"
	"github.com/csese/networkD3/pkg/hierarchy"
	"github.com/csese/networkD3/pkg/httputil"
	"github.com/csese/networkD3/pkg/table"
)

// =============================================================================
// Input Loading
// =============================================================================

// isRemote reports whether path is an HTTP(S) URL rather than a local file.
func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// detectFormat infers the input format from the path extension.
// Query strings on URLs are ignored.
func detectFormat(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// readInput returns the raw bytes at path, fetching over HTTP with the
// configured cache when path is a URL.
func readInput(ctx context.Context, path string) ([]byte, error) {
	if !isRemote(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file not found: %s", path)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read input: %s", path)
		}
		return data, nil
	}

	cfg := configFromContext(ctx)
	c, err := cfg.NewCache(ctx)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	fetcher := httputil.NewFetcher(c, cfg.FetchTTL(), loggerFromContext(ctx))

	sp := newSpinnerWithContext(ctx, "fetching "+path)
	sp.Start()
	data, err := fetcher.Fetch(ctx, path)
	if err != nil {
		sp.StopWithError("fetch failed")
		return nil, err
	}
	sp.Stop()
	return data, nil
}

// loadTable parses tabular input. CSV is parsed directly; JSON must be an
// array of flat objects.
func loadTable(data []byte, format string) (*table.Table, error) {
	switch format {
	case "", "csv":
		return table.ReadCSV(bytes.NewReader(data))
	case "json":
		return tableFromJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported table format: %s", format)
	}
}

// loadHierarchy parses hierarchical input as JSON or YAML.
func loadHierarchy(data []byte, format string) (*hierarchy.Node, error) {
	switch format {
	case "yaml":
		return hierarchy.DecodeYAML(bytes.NewReader(data))
	case "", "json":
		return hierarchy.DecodeJSON(bytes.NewReader(data))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported hierarchy format: %s", format)
	}
}

// tableFromJSON builds a table from a JSON array of flat objects. Column
// order puts conventional link/node columns first, remaining keys sorted.
func tableFromJSON(data []byte) (*table.Table, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "input is not a JSON array of objects")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input contains no records")
	}

	columns := orderColumns(records)
	rows := make([][]table.Value, 0, len(records))
	for _, rec := range records {
		row := make([]table.Value, len(columns))
		for i, col := range columns {
			row[i] = rec[col]
		}
		rows = append(rows, row)
	}
	return table.New(columns, rows)
}

// conventionalColumns are placed first, in this order, when present.
var conventionalColumns = []string{"source", "target", "value", "name", "group", "nodesize"}

func orderColumns(records []map[string]any) []string {
	seen := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			seen[k] = true
		}
	}

	var columns []string
	for _, k := range conventionalColumns {
		if seen[k] {
			columns = append(columns, k)
			delete(seen, k)
		}
	}
	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}
