package reader

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/seqcat/query"
)

// Column describes one leaf column of a parquet file. Nested columns are
// named with dots ("address.street").
type Column struct {
	Name     string
	Type     string
	Physical string
	Logical  string
	Optional bool
	Repeated bool
}

// Row returns the column as a dynamic row, for the output formatters.
func (c Column) Row() query.Row {
	return query.Row{
		"name":     c.Name,
		"type":     c.Type,
		"physical": c.Physical,
		"logical":  c.Logical,
		"optional": c.Optional,
		"repeated": c.Repeated,
	}
}

// Columns lists the leaf columns of the parquet file at path.
func Columns(path string) ([]Column, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = r.Close() }()

	var columns []Column
	for _, field := range r.Schema().Fields() {
		columns = appendColumns(columns, field, "", false)
	}
	return columns, nil
}

// SchemaRows is Columns as dynamic rows.
func SchemaRows(path string) ([]query.Row, error) {
	columns, err := Columns(path)
	if err != nil {
		return nil, err
	}
	rows := make([]query.Row, len(columns))
	for i, c := range columns {
		rows[i] = c.Row()
	}
	return rows, nil
}

// appendColumns walks groups depth first. A repeated group makes every
// column below it repeated.
func appendColumns(columns []Column, field parquet.Field, prefix string, parentRepeated bool) []Column {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}
	repeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		for _, child := range children {
			columns = appendColumns(columns, child, name, repeated)
		}
		return columns
	}

	col := Column{
		Name:     name,
		Physical: physicalType(field.Type()),
		Optional: field.Optional(),
		Repeated: repeated,
	}
	col.Type = col.Physical
	if lt := field.Type().LogicalType(); lt != nil {
		col.Logical = lt.String()
		if name := logicalName(col.Logical); name != "" {
			col.Type = name
		}
	}
	return append(columns, col)
}

// logicalTypes are the annotations shown as a column's type in place of
// its physical type. Integer annotations keep the physical width instead.
var logicalTypes = map[string]bool{
	"STRING":    true,
	"ENUM":      true,
	"UUID":      true,
	"DATE":      true,
	"TIME":      true,
	"TIMESTAMP": true,
	"DECIMAL":   true,
	"JSON":      true,
	"BSON":      true,
}

// logicalName reduces a logical type such as "DECIMAL(10,2)" or
// "TIMESTAMP(isAdjustedToUTC=true,unit=MILLIS)" to its name, or returns ""
// when the type is not shown.
func logicalName(logical string) string {
	name, _, _ := strings.Cut(logical, "(")
	name = strings.ToUpper(strings.TrimSpace(name))
	if !logicalTypes[name] {
		return ""
	}
	return name
}

func physicalType(t parquet.Type) string {
	if t == nil {
		return "GROUP"
	}
	switch t.Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}
