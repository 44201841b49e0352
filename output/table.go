package output

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/seqcat/query"
)

// TableFormatter renders rows as an aligned text table. Numbers get
// thousands separators.
type TableFormatter struct {
	writer io.Writer
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes a table with one column per distinct row key, sorted, and
// a footer with the row count.
func (t *TableFormatter) Format(rows []query.Row) error {
	columns := columnNames(rows)

	table := tablewriter.NewWriter(t.writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(columns)

	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = tableValue(row[col])
		}
		table.Append(record)
	}
	table.Render()

	_, err := fmt.Fprintf(t.writer, "(%s %s)\n", humanize.Comma(int64(len(rows))), plural(len(rows), "row", "rows"))
	return err
}

func tableValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case int:
		return humanize.Comma(int64(val))
	case int32:
		return humanize.Comma(int64(val))
	case int64:
		return humanize.Comma(val)
	case float32:
		return humanize.Commaf(float64(val))
	case float64:
		return humanize.Commaf(val)
	case string:
		return val
	default:
		return formatValue(val)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
