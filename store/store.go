// Package store holds a loaded course catalogue in indexed in-memory
// tables and exposes them as query sequences.
package store

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hashicorp/go-memdb"

	"github.com/vegasq/seqcat/catalog"
	"github.com/vegasq/seqcat/internal/logging"
	"github.com/vegasq/seqcat/query"
)

// Context is the catalogue data source. Its sequences open a fresh read
// transaction on every iteration, so they can be iterated any number of
// times and from several goroutines at once.
type Context struct {
	db *memdb.MemDB
}

// Open loads cat into a new Context. Every course's Author is resolved from
// its AuthorID; IDs must be unique within each record type.
func Open(cat catalog.Catalog) (*Context, error) {
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	txn := db.Txn(true)
	defer txn.Abort()

	authors := make(map[int]catalog.Author, len(cat.Authors))
	for _, a := range cat.Authors {
		if err := insertUnique(txn, tableAuthors, a.ID, a); err != nil {
			return nil, err
		}
		authors[a.ID] = a
	}
	for _, t := range cat.Tags {
		if err := insertUnique(txn, tableTags, t.ID, t); err != nil {
			return nil, err
		}
	}
	for _, c := range cat.Courses {
		author, ok := authors[c.AuthorID]
		if !ok {
			return nil, fmt.Errorf("course %d references unknown author %d", c.ID, c.AuthorID)
		}
		c.Author = &author
		c.Tags = slices.Clone(c.Tags)
		if err := insertUnique(txn, tableCourses, c.ID, c); err != nil {
			return nil, err
		}
	}
	txn.Commit()

	logging.Debug().
		Int("authors", len(cat.Authors)).
		Int("tags", len(cat.Tags)).
		Int("courses", len(cat.Courses)).
		Msg("opened catalog store")
	return &Context{db: db}, nil
}

func insertUnique(txn *memdb.Txn, table string, id int, record any) error {
	existing, err := txn.First(table, indexID, id)
	if err != nil {
		return fmt.Errorf("failed to look up %s %d: %w", table, id, err)
	}
	if existing != nil {
		return fmt.Errorf("duplicate %s id %d", table, id)
	}
	if err := txn.Insert(table, record); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// Courses yields every course in ID order.
func (c *Context) Courses() query.Sequence[catalog.Course] {
	return query.Select(scan[catalog.Course](c.db, tableCourses, indexID), cloneCourse)
}

// Authors yields every author in ID order.
func (c *Context) Authors() query.Sequence[catalog.Author] {
	return scan[catalog.Author](c.db, tableAuthors, indexID)
}

// Tags yields every tag in ID order.
func (c *Context) Tags() query.Sequence[catalog.Tag] {
	return scan[catalog.Tag](c.db, tableTags, indexID)
}

// CoursesByLevel yields the courses of one level in ID order, using the
// level index.
func (c *Context) CoursesByLevel(level catalog.CourseLevel) query.Sequence[catalog.Course] {
	return query.Select(scan[catalog.Course](c.db, tableCourses, indexLevel, int(level)), cloneCourse)
}

// CoursesByAuthor yields the courses of one author in ID order.
func (c *Context) CoursesByAuthor(authorID int) query.Sequence[catalog.Course] {
	return query.Select(scan[catalog.Course](c.db, tableCourses, indexAuthor, authorID), cloneCourse)
}

// Author looks an author up by ID.
func (c *Context) Author(id int) (query.Optional[catalog.Author], error) {
	return scan[catalog.Author](c.db, tableAuthors, indexID, id).FirstOrDefault()
}

func scan[T any](db *memdb.MemDB, table, index string, args ...any) query.Sequence[T] {
	return query.FromSeq2(iter.Seq2[T, error](func(yield func(T, error) bool) {
		txn := db.Txn(false)
		defer txn.Abort()

		it, err := txn.Get(table, index, args...)
		if err != nil {
			var zero T
			yield(zero, fmt.Errorf("failed to scan %s: %w", table, err))
			return
		}
		for obj := it.Next(); obj != nil; obj = it.Next() {
			if !yield(obj.(T), nil) {
				return
			}
		}
	}))
}

// cloneCourse keeps callers from mutating stored records through the
// shared Author pointer or Tags slice.
func cloneCourse(c catalog.Course) catalog.Course {
	if c.Author != nil {
		author := *c.Author
		c.Author = &author
	}
	c.Tags = slices.Clone(c.Tags)
	return c
}
