package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/seqcat/internal/logging"
	"github.com/vegasq/seqcat/query"
)

// TestRow defines a simple test data structure
type TestRow struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int64   `parquet:"age"`
	Salary float64 `parquet:"salary"`
}

// createTestParquetFile creates a temporary parquet file with test data
func createTestParquetFile(t *testing.T, dir, filename string, rows []TestRow) string {
	t.Helper()
	testFile := filepath.Join(dir, filename)

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[TestRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return testFile
}

func people(t *testing.T, dir string) string {
	return createTestParquetFile(t, dir, "people.parquet", []TestRow{
		{ID: 1, Name: "Alice", Age: 30, Salary: 50000.0},
		{ID: 2, Name: "Bob", Age: 25, Salary: 45000.0},
		{ID: 3, Name: "Charlie", Age: 35, Salary: 60000.0},
		{ID: 4, Name: "Dana", Age: 30, Salary: 55000.0},
	})
}

// execute runs the command line args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logging.SetGlobalLogger(zerolog.Nop()) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var rows []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var row map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &row), line)
		rows = append(rows, row)
	}
	return rows
}

func TestCommandPresence(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"tour", "list", "run", "rows", "schema", "fixture"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	for _, flag := range []string{"config", "data", "log-level", "log-format", "no-color"} {
		require.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestTour(t *testing.T) {
	out, err := execute(t, "tour")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "# Courses about C#, ordered by name (filter-order)\nA 16 Hour C# Course with Visual Studio 2013\n"))
	require.Contains(t, out, "Key: 1\n\tC# Basics\n")
	require.Contains(t, out, "John Smith (0)\n")
	require.True(t, strings.HasSuffix(out, "# Average course price (average-price)\n73.22\n"))
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "-f", "jsonl")
	require.NoError(t, err)

	rows := decodeLines(t, out)
	require.Equal(t, "filter-order", rows[0]["name"])
	require.Equal(t, "average-price", rows[len(rows)-1]["name"])
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "group-join-count")
	require.NoError(t, err)

	rows := decodeLines(t, out)
	require.Len(t, rows, 5)
	require.Equal(t, map[string]any{"authorName": "John Smith", "courses": float64(0)}, rows[4])

	out, err = execute(t, "run", "count-beginner", "-f", "csv")
	require.NoError(t, err)
	require.Equal(t, "result\n5\n", out)

	_, err = execute(t, "run", "nope")
	require.ErrorContains(t, err, `unknown scenario "nope"`)

	_, err = execute(t, "run", "inner-join", "-f", "xml")
	require.ErrorContains(t, err, "unknown output format")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: csv\n"), 0o644))

	out, err := execute(t, "--config", path, "run", "any-beginner")
	require.NoError(t, err)
	require.Equal(t, "result\ntrue\n", out)

	out, err = execute(t, "--config", path, "run", "any-beginner", "-f", "jsonl")
	require.NoError(t, err)
	require.Equal(t, "{\"result\":true}\n", out)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	require.ErrorContains(t, err, "failed to read config")
}

func TestFixtureRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")

	out, err := execute(t, "fixture", dir)
	require.NoError(t, err)
	require.Equal(t, "wrote 9 courses, 5 authors and 7 tags to "+dir+"\n", out)

	out, err = execute(t, "--data", dir, "run", "method-order", "-f", "jsonl")
	require.NoError(t, err)
	rows := decodeLines(t, out)
	require.Len(t, rows, 5)
	require.Equal(t, "Programming for Complete Beginners", rows[0]["name"])
	require.Equal(t, "Tom Owsiak", rows[0]["author"])

	out, err = execute(t, "rows", filepath.Join(dir, "courses.parquet"), "--where", "level=2", "--order-by", "full_price:desc")
	require.NoError(t, err)
	rows = decodeLines(t, out)
	require.Len(t, rows, 3)
	require.Equal(t, "Javascript: Understanding the Weird Parts", rows[0]["name"])
}

func TestRows(t *testing.T) {
	dir := t.TempDir()
	file := people(t, dir)

	tests := []struct {
		name  string
		args  []string
		names []string
	}{
		{"all", nil, []string{"Alice", "Bob", "Charlie", "Dana"}},
		{"where", []string{"--where", "age=30"}, []string{"Alice", "Dana"}},
		{"where string", []string{"--where", "name='Bob'"}, []string{"Bob"}},
		{"order", []string{"--order-by", "age:desc", "--order-by", "name"}, []string{"Charlie", "Alice", "Dana", "Bob"}},
		{"page", []string{"--order-by", "salary", "--skip", "1", "--take", "2"}, []string{"Alice", "Dana"}},
		{"take zero", []string{"--take", "0"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"rows", file}, tt.args...)...)
			require.NoError(t, err)

			var names []string
			for _, row := range decodeLines(t, out) {
				names = append(names, row["name"].(string))
			}
			require.Equal(t, tt.names, names)
		})
	}
}

func TestRows_GlobAndDistinct(t *testing.T) {
	dir := t.TempDir()
	createTestParquetFile(t, dir, "a.parquet", []TestRow{{ID: 1, Name: "Alice"}, {ID: 1, Name: "Alice"}})
	createTestParquetFile(t, dir, "b.parquet", []TestRow{{ID: 1, Name: "Alice"}})

	out, err := execute(t, "rows", filepath.Join(dir, "*.parquet"))
	require.NoError(t, err)
	rows := decodeLines(t, out)
	require.Len(t, rows, 3)
	require.Contains(t, rows[0], "_file")

	// The _file column makes rows from different files distinct.
	out, err = execute(t, "rows", filepath.Join(dir, "*.parquet"), "--distinct")
	require.NoError(t, err)
	require.Len(t, decodeLines(t, out), 2)

	out, err = execute(t, "rows", filepath.Join(dir, "a.parquet"), "--distinct")
	require.NoError(t, err)
	require.Len(t, decodeLines(t, out), 1)
}

func TestRows_Errors(t *testing.T) {
	dir := t.TempDir()
	file := people(t, dir)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad where", []string{"rows", file, "--where", "age"}, "invalid --where"},
		{"bad direction", []string{"rows", file, "--order-by", "age:sideways"}, "direction must be asc or desc"},
		{"negative skip", []string{"rows", file, "--skip", "-1"}, query.ErrInvalidArgument.Error()},
		{"missing file", []string{"rows", filepath.Join(dir, "missing.parquet")}, "failed to open file"},
		{"no match", []string{"rows", filepath.Join(dir, "*.csv")}, "no files match pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSchema(t *testing.T) {
	file := people(t, t.TempDir())

	out, err := execute(t, "schema", file, "-f", "jsonl")
	require.NoError(t, err)

	rows := decodeLines(t, out)
	require.Len(t, rows, 4)
	require.Equal(t, "id", rows[0]["name"])
	require.Equal(t, "INT64", rows[0]["type"])
	require.Equal(t, "salary", rows[3]["name"])
	require.Equal(t, "DOUBLE", rows[3]["type"])
}

func TestConfigFormat_AppliesToEveryCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: csv\n"), 0o644))
	file := people(t, t.TempDir())

	out, err := execute(t, "--config", path, "list")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "name,title\nfilter-order,"), out)

	out, err = execute(t, "--config", path, "schema", file)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "logical,name,optional,physical,repeated,type\n"), out)

	out, err = execute(t, "list")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "(26 rows)\n"), out)
}

func TestLogging(t *testing.T) {
	var stderr bytes.Buffer
	t.Cleanup(func() { logging.SetGlobalLogger(zerolog.Nop()) })

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--log-level", "debug", "--log-format", "json", "run", "paging"})
	require.NoError(t, cmd.Execute())

	var sawScenario bool
	for _, line := range strings.Split(strings.TrimSpace(stderr.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		require.NotEmpty(t, entry["run_id"])
		if entry["scenario"] == "paging" {
			sawScenario = true
		}
	}
	require.True(t, sawScenario)

	_, err := execute(t, "--log-level", "loud", "list")
	require.ErrorContains(t, err, "invalid log level")
}
