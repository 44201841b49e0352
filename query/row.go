package query

import (
	"cmp"
	"encoding/hex"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Row is a dynamic record: column name to value.
type Row = map[string]any

// Field returns a function reading one column. Missing columns read as
// nil. The raw value may be a slice, so use FieldKey when grouping,
// joining or deduplicating on a column.
func Field(name string) func(Row) any {
	return func(row Row) any {
		return row[name]
	}
}

// FieldKey returns a key function reading one column as a canonical string.
// Values equal under CompareValues share a key, and list, map and byte
// columns are usable as keys.
func FieldKey(name string) func(Row) string {
	return func(row Row) string {
		return ValueKey(row[name])
	}
}

// FieldEquals returns a predicate matching rows whose column equals v under
// CompareValues. Rows without the column never match.
func FieldEquals(name string, v any) func(Row) bool {
	return func(row Row) bool {
		got, exists := row[name]
		return exists && CompareValues(got, v) == 0
	}
}

// CompareField returns a comparison of two rows by one column, for use with
// OrderByFunc and ThenByFunc. Missing columns sort like nil, first.
func CompareField(name string) func(a, b Row) int {
	return func(a, b Row) int {
		return CompareValues(a[name], b[name])
	}
}

// Kinds of dynamic value, in sort order.
const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankTime
	rankOther
)

func rank(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case string:
		return rankString
	case time.Time:
		return rankTime
	}
	if _, ok := toFloat64(v); ok {
		return rankNumber
	}
	return rankOther
}

// CompareValues orders two dynamic values. Values of different kinds sort
// nil < bool < number < string < time < anything else. Within a kind:
//   - false sorts before true
//   - numbers of any width compare as float64
//   - strings compare lexically
//   - times compare chronologically
//   - other values (lists, maps, bytes) compare by ValueKey
func CompareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankNil:
		return 0
	case rankBool:
		aBool, bBool := a.(bool), b.(bool)
		switch {
		case aBool == bBool:
			return 0
		case !aBool:
			return -1
		default:
			return 1
		}
	case rankNumber:
		aNum, _ := toFloat64(a)
		bNum, _ := toFloat64(b)
		return cmp.Compare(aNum, bNum)
	case rankString:
		return strings.Compare(a.(string), b.(string))
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time))
	default:
		return strings.Compare(ValueKey(a), ValueKey(b))
	}
}

// toFloat64 converts a value to float64 if possible
func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// ValueKey renders a dynamic value as a canonical string. Two values have
// the same key exactly when CompareValues reports them equal.
func ValueKey(v any) string {
	var b strings.Builder
	writeValueKey(&b, v)
	return b.String()
}

func writeValueKey(b *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case string:
		b.WriteString(strconv.Quote(val))
	case time.Time:
		b.WriteString("t:")
		b.WriteString(val.UTC().Format(time.RFC3339Nano))
	case []byte:
		b.WriteString("x:")
		b.WriteString(hex.EncodeToString(val))
	case []any:
		b.WriteByte('[')
		for i, e := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			writeValueKey(b, e)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			writeValueKey(b, val[k])
		}
		b.WriteByte('}')
	default:
		if f, ok := toFloat64(v); ok {
			if f == 0 {
				f = 0 // -0 and 0 share a key
			}
			b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
			return
		}
		fmt.Fprintf(b, "%T:%v", v, v)
	}
}

// RowKey hashes a row's column names and value keys. Rows equal under
// RowsEqual hash alike regardless of map iteration order.
func RowKey(row Row) uint64 {
	columns := make([]string, 0, len(row))
	for col := range row {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	digest := xxhash.New()
	for _, col := range columns {
		_, _ = digest.WriteString(strconv.Quote(col))
		_, _ = digest.WriteString(":")
		_, _ = digest.WriteString(ValueKey(row[col]))
		_, _ = digest.WriteString(";")
	}
	return digest.Sum64()
}

// RowsEqual reports whether a and b have the same columns with values equal
// under CompareValues.
func RowsEqual(a, b Row) bool {
	if len(a) != len(b) {
		return false
	}
	for col, av := range a {
		bv, ok := b[col]
		if !ok || CompareValues(av, bv) != 0 {
			return false
		}
	}
	return true
}

// DistinctRows removes rows equal to an earlier row, keeping the order of
// first occurrences. RowKey only picks the bucket; candidates are compared
// with RowsEqual.
func DistinctRows(s Sequence[Row]) Sequence[Row] {
	return Sequence[Row]{seq: func(yield func(Row, error) bool) {
		buckets := make(map[uint64][]Row)
		for row, err := range s.Seq() {
			if err != nil {
				yield(nil, err)
				return
			}
			h := RowKey(row)
			if slices.ContainsFunc(buckets[h], func(seen Row) bool { return RowsEqual(seen, row) }) {
				continue
			}
			buckets[h] = append(buckets[h], row)
			if !yield(row, nil) {
				return
			}
		}
	}}
}

// ParseValue interprets a literal typed on a command line: integers become
// int64, other numbers float64, true/false bool, null nil. Anything else,
// or text in single or double quotes, stays a string.
func ParseValue(s string) any {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	return s
}
