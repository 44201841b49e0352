package reader

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vegasq/seqcat/catalog"
	"github.com/vegasq/seqcat/internal/logging"
)

//go:embed fixtures/catalog.yaml
var defaultCatalogYAML []byte

// DefaultCatalog returns the catalogue embedded in the binary.
func DefaultCatalog() (catalog.Catalog, error) {
	return ParseCatalogYAML(defaultCatalogYAML)
}

// LoadCatalog loads the catalogue at path: a parquet catalogue directory,
// a YAML fixture file, or the embedded catalogue when path is empty.
func LoadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	info, err := os.Stat(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("failed to open catalog: %w", err)
	}
	if info.IsDir() {
		return LoadCatalogParquet(path)
	}
	return LoadCatalogYAML(path)
}

type catalogDocument struct {
	Authors []catalog.Author `yaml:"authors"`
	Tags    []catalog.Tag    `yaml:"tags"`
	Courses []courseDocument `yaml:"courses"`
}

type courseDocument struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Level       int     `yaml:"level"`
	FullPrice   float64 `yaml:"fullPrice"`
	AuthorID    int     `yaml:"authorId"`
	Tags        []int   `yaml:"tags"`
}

// LoadCatalogYAML reads a catalogue fixture from path.
func LoadCatalogYAML(path string) (catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	cat, err := ParseCatalogYAML(data)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalogYAML decodes a catalogue fixture. Courses list their tags by
// ID; each ID must name a tag of the same document. Unknown keys are
// rejected.
func ParseCatalogYAML(data []byte) (catalog.Catalog, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return catalog.Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}

	tags, err := indexTags(doc.Tags)
	if err != nil {
		return catalog.Catalog{}, err
	}

	cat := catalog.Catalog{
		Authors: doc.Authors,
		Tags:    doc.Tags,
		Courses: make([]catalog.Course, 0, len(doc.Courses)),
	}
	for _, c := range doc.Courses {
		courseTags, err := resolveTags(tags, c.ID, c.Tags)
		if err != nil {
			return catalog.Catalog{}, err
		}
		cat.Courses = append(cat.Courses, catalog.Course{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Level:       catalog.CourseLevel(c.Level),
			FullPrice:   c.FullPrice,
			AuthorID:    c.AuthorID,
			Tags:        courseTags,
		})
	}

	logging.Debug().
		Int("authors", len(cat.Authors)).
		Int("tags", len(cat.Tags)).
		Int("courses", len(cat.Courses)).
		Msg("parsed catalog")
	return cat, nil
}

func indexTags(tags []catalog.Tag) (map[int]catalog.Tag, error) {
	byID := make(map[int]catalog.Tag, len(tags))
	for _, t := range tags {
		if _, ok := byID[t.ID]; ok {
			return nil, fmt.Errorf("duplicate tag id %d", t.ID)
		}
		byID[t.ID] = t
	}
	return byID, nil
}

// resolveTags returns nil for a course without tags.
func resolveTags(tags map[int]catalog.Tag, courseID int, ids []int) ([]catalog.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	resolved := make([]catalog.Tag, 0, len(ids))
	for _, id := range ids {
		t, ok := tags[id]
		if !ok {
			return nil, fmt.Errorf("course %d references unknown tag %d", courseID, id)
		}
		resolved = append(resolved, t)
	}
	return resolved, nil
}
