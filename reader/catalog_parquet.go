package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/seqcat/catalog"
	"github.com/vegasq/seqcat/internal/logging"
)

// File names of a catalogue written by WriteCatalogParquet.
const (
	AuthorsFile = "authors.parquet"
	TagsFile    = "tags.parquet"
	CoursesFile = "courses.parquet"
)

type authorRecord struct {
	ID   int64  `parquet:"id"`
	Name string `parquet:"name"`
}

type tagRecord struct {
	ID   int64  `parquet:"id"`
	Name string `parquet:"name"`
}

type courseRecord struct {
	ID          int64   `parquet:"id"`
	Name        string  `parquet:"name"`
	Description string  `parquet:"description"`
	Level       int32   `parquet:"level"`
	FullPrice   float64 `parquet:"full_price"`
	AuthorID    int64   `parquet:"author_id"`
	TagIDs      []int64 `parquet:"tag_ids,list"`
}

// WriteCatalogParquet writes cat into dir as one parquet file per record
// type. Course tags are stored as a list of tag IDs.
func WriteCatalogParquet(dir string, cat catalog.Catalog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	authors := make([]authorRecord, len(cat.Authors))
	for i, a := range cat.Authors {
		authors[i] = authorRecord{ID: int64(a.ID), Name: a.Name}
	}
	tags := make([]tagRecord, len(cat.Tags))
	for i, t := range cat.Tags {
		tags[i] = tagRecord{ID: int64(t.ID), Name: t.Name}
	}
	courses := make([]courseRecord, len(cat.Courses))
	for i, c := range cat.Courses {
		rec := courseRecord{
			ID:          int64(c.ID),
			Name:        c.Name,
			Description: c.Description,
			Level:       int32(c.Level),
			FullPrice:   c.FullPrice,
			AuthorID:    int64(c.AuthorID),
			TagIDs:      make([]int64, len(c.Tags)),
		}
		for j, t := range c.Tags {
			rec.TagIDs[j] = int64(t.ID)
		}
		courses[i] = rec
	}

	if err := writeRecords(filepath.Join(dir, AuthorsFile), authors); err != nil {
		return err
	}
	if err := writeRecords(filepath.Join(dir, TagsFile), tags); err != nil {
		return err
	}
	if err := writeRecords(filepath.Join(dir, CoursesFile), courses); err != nil {
		return err
	}

	logging.Debug().Str("dir", dir).Int("courses", len(courses)).Msg("wrote parquet catalog")
	return nil
}

// LoadCatalogParquet reads a catalogue written by WriteCatalogParquet.
func LoadCatalogParquet(dir string) (catalog.Catalog, error) {
	authors, err := readRecords[authorRecord](filepath.Join(dir, AuthorsFile))
	if err != nil {
		return catalog.Catalog{}, err
	}
	tagRecs, err := readRecords[tagRecord](filepath.Join(dir, TagsFile))
	if err != nil {
		return catalog.Catalog{}, err
	}
	courses, err := readRecords[courseRecord](filepath.Join(dir, CoursesFile))
	if err != nil {
		return catalog.Catalog{}, err
	}

	cat := catalog.Catalog{
		Authors: make([]catalog.Author, len(authors)),
		Tags:    make([]catalog.Tag, len(tagRecs)),
		Courses: make([]catalog.Course, 0, len(courses)),
	}
	for i, a := range authors {
		cat.Authors[i] = catalog.Author{ID: int(a.ID), Name: a.Name}
	}
	for i, t := range tagRecs {
		cat.Tags[i] = catalog.Tag{ID: int(t.ID), Name: t.Name}
	}

	tags, err := indexTags(cat.Tags)
	if err != nil {
		return catalog.Catalog{}, err
	}
	for _, c := range courses {
		ids := make([]int, len(c.TagIDs))
		for i, id := range c.TagIDs {
			ids[i] = int(id)
		}
		courseTags, err := resolveTags(tags, int(c.ID), ids)
		if err != nil {
			return catalog.Catalog{}, err
		}
		cat.Courses = append(cat.Courses, catalog.Course{
			ID:          int(c.ID),
			Name:        c.Name,
			Description: c.Description,
			Level:       catalog.CourseLevel(c.Level),
			FullPrice:   c.FullPrice,
			AuthorID:    int(c.AuthorID),
			Tags:        courseTags,
		})
	}

	logging.Debug().Str("dir", dir).Int("courses", len(cat.Courses)).Msg("loaded parquet catalog")
	return cat, nil
}

func writeRecords[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	writer := parquet.NewGenericWriter[T](f)
	if _, err := writer.Write(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to close writer for %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// readRecords decodes every row of path into a fresh T; rows are not
// reused between reads so slice fields stay valid.
func readRecords[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := parquet.NewGenericReader[T](f)
	defer func() { _ = reader.Close() }()

	rows := make([]T, reader.NumRows())
	read := 0
	for read < len(rows) {
		n, err := reader.Read(rows[read:])
		read += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return rows[:read], nil
}
