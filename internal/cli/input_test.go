package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"links.csv", "csv"},
		{"data.JSON", "json"},
		{"tree.yaml", "yaml"},
		{"tree.yml", "yaml"},
		{"https://example.com/data.csv?token=abc", "csv"},
		{"unknown.txt", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := detectFormat(tt.path); got != tt.want {
				t.Errorf("detectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsRemote(t *testing.T) {
	if !isRemote("https://example.com/links.csv") {
		t.Error("https URL should be remote")
	}
	if !isRemote("http://example.com/links.csv") {
		t.Error("http URL should be remote")
	}
	if isRemote("/tmp/links.csv") {
		t.Error("local path should not be remote")
	}
}

func TestReadInputLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "links.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := readInput(context.Background(), path)
	if err != nil {
		t.Fatalf("readInput() error: %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("readInput() = %q", data)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("readInput() on missing file should fail")
	}
}

func TestReadInputRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("source,target\nA,B\n"))
	}))
	defer srv.Close()

	// Disable on-disk caching so the test leaves no state behind.
	ctx := withConfig(context.Background(), Config{Cache: CacheConfig{Backend: "none"}})

	data, err := readInput(ctx, srv.URL+"/links.csv")
	if err != nil {
		t.Fatalf("readInput() error: %v", err)
	}
	if string(data) != "source,target\nA,B\n" {
		t.Errorf("readInput() = %q", data)
	}
}

func TestLoadTableCSV(t *testing.T) {
	tbl, err := loadTable([]byte("source,target,value\nA,B,1\n"), "csv")
	if err != nil {
		t.Fatalf("loadTable() error: %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("rows = %d, want 1", tbl.Len())
	}
	if !tbl.HasColumn("value") {
		t.Error("missing value column")
	}
}

func TestLoadTableJSON(t *testing.T) {
	data := []byte(`[{"source":"A","target":"B","value":2},{"source":"B","target":"C"}]`)
	tbl, err := loadTable(data, "json")
	if err != nil {
		t.Fatalf("loadTable() error: %v", err)
	}

	cols := tbl.Columns()
	if len(cols) != 3 || cols[0] != "source" || cols[1] != "target" || cols[2] != "value" {
		t.Errorf("columns = %v, want [source target value]", cols)
	}
	if tbl.Len() != 2 {
		t.Errorf("rows = %d, want 2", tbl.Len())
	}
}

func TestLoadTableJSONNotArray(t *testing.T) {
	if _, err := loadTable([]byte(`{"source":"A"}`), "json"); err == nil {
		t.Error("loadTable() with a JSON object should fail")
	}
}

func TestLoadTableEmptyJSON(t *testing.T) {
	if _, err := loadTable([]byte(`[]`), "json"); err == nil {
		t.Error("loadTable() with zero records should fail")
	}
}

func TestLoadHierarchyYAML(t *testing.T) {
	data := []byte("name: root\nchildren:\n  - name: leaf\n    size: 4\n")
	root, err := loadHierarchy(data, "yaml")
	if err != nil {
		t.Fatalf("loadHierarchy() error: %v", err)
	}
	if root.Name != "root" || len(root.Children) != 1 {
		t.Errorf("unexpected hierarchy: %+v", root)
	}
}

func TestOrderColumnsConventionalFirst(t *testing.T) {
	records := []map[string]any{
		{"zeta": 1, "target": "b", "alpha": 2, "source": "a"},
	}
	got := orderColumns(records)
	want := []string{"source", "target", "alpha", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("columns[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
