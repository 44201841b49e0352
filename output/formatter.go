package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/vegasq/seqcat/query"
)

// Formatter writes rows in one output format.
type Formatter interface {
	// Format writes rows in the formatter's specific format
	Format(rows []query.Row) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Format names accepted by New.
const (
	FormatJSONLines = "jsonl"
	FormatJSON      = "json"
	FormatCSV       = "csv"
	FormatTable     = "table"
)

// Formats lists every name New accepts.
var Formats = []string{FormatJSONLines, FormatJSON, FormatCSV, FormatTable}

// New returns the formatter registered under name, writing to w.
func New(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case FormatJSONLines:
		return NewJSONFormatter(w), nil
	case FormatJSON:
		return NewJSONArrayFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(Formats, ", "))
	}
}

// columnNames collects the columns of every row, sorted. Rows may have
// different columns, e.g. after reading files with different schemas.
func columnNames(rows []query.Row) []string {
	set := make(map[string]struct{})
	for _, row := range rows {
		for col := range row {
			set[col] = struct{}{}
		}
	}
	columns := make([]string, 0, len(set))
	for col := range set {
		columns = append(columns, col)
	}
	slices.Sort(columns)
	return columns
}
