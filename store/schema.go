package store

import (
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/vegasq/seqcat/catalog"
)

const (
	tableCourses = "courses"
	tableAuthors = "authors"
	tableTags    = "tags"

	indexID     = "id"
	indexAuthor = "authorId"
	indexLevel  = "level"
)

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableCourses: {
			Name: tableCourses,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {
					Name:    indexID,
					Unique:  true,
					Indexer: intIndex(func(c catalog.Course) int { return c.ID }),
				},
				indexAuthor: {
					Name:    indexAuthor,
					Unique:  false,
					Indexer: intIndex(func(c catalog.Course) int { return c.AuthorID }),
				},
				indexLevel: {
					Name:    indexLevel,
					Unique:  false,
					Indexer: intIndex(func(c catalog.Course) int { return int(c.Level) }),
				},
			},
		},
		tableAuthors: {
			Name: tableAuthors,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {
					Name:    indexID,
					Unique:  true,
					Indexer: intIndex(func(a catalog.Author) int { return a.ID }),
				},
			},
		},
		tableTags: {
			Name: tableTags,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {
					Name:    indexID,
					Unique:  true,
					Indexer: intIndex(func(t catalog.Tag) int { return t.ID }),
				},
			},
		},
	},
}

// intFieldIndex indexes an int key of a record. Keys are encoded big-endian
// with the sign bit flipped, so index order is numeric order.
// memdb.IntFieldIndex uses varints, which do not sort.
type intFieldIndex struct {
	field func(raw any) (int, bool)
}

func intIndex[T any](field func(T) int) *intFieldIndex {
	return &intFieldIndex{field: func(raw any) (int, bool) {
		v, ok := raw.(T)
		if !ok {
			return 0, false
		}
		return field(v), true
	}}
}

func (x *intFieldIndex) FromObject(raw any) (bool, []byte, error) {
	v, ok := x.field(raw)
	if !ok {
		return false, nil, fmt.Errorf("unexpected record type %T", raw)
	}
	return true, encodeInt(v), nil
}

func (x *intFieldIndex) FromArgs(args ...any) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("must provide only a single argument")
	}
	v, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("argument must be an int: %#v", args[0])
	}
	return encodeInt(v), nil
}

func encodeInt(v int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(int64(v))^(1<<63))
	return buf
}
