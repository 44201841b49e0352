package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vegasq/seqcat/catalog"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	require.Len(t, cat.Authors, 5)
	require.Len(t, cat.Tags, 7)
	require.Len(t, cat.Courses, 9)

	first := cat.Courses[0]
	require.Equal(t, "C# Basics", first.Name)
	require.Equal(t, catalog.Beginner, first.Level)
	require.Equal(t, 49.0, first.FullPrice)
	require.Equal(t, 1, first.AuthorID)
	require.Nil(t, first.Author, "authors are resolved by the store")
	require.Equal(t, []catalog.Tag{{ID: 1, Name: "c#"}, {ID: 7, Name: "beginner"}}, first.Tags)
}

func TestParseCatalogYAML(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "minimal",
			doc: `
authors: [{id: 1, name: Ann}]
tags: [{id: 1, name: go}]
courses: [{id: 1, name: Go, level: 1, fullPrice: 10, authorId: 1, tags: [1]}]
`,
		},
		{
			name: "empty document",
			doc:  "",
		},
		{
			name:    "unknown tag",
			doc:     "tags: [{id: 1, name: go}]\ncourses: [{id: 4, name: Go, tags: [2]}]\n",
			wantErr: "course 4 references unknown tag 2",
		},
		{
			name:    "duplicate tag",
			doc:     "tags: [{id: 1, name: go}, {id: 1, name: rust}]\n",
			wantErr: "duplicate tag id 1",
		},
		{
			name:    "unknown field",
			doc:     "courses: [{id: 1, price: 10}]\n",
			wantErr: "failed to parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalogYAML([]byte(tt.doc))
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoadCatalogYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, defaultCatalogYAML, 0o644))

	loaded, err := LoadCatalogYAML(path)
	require.NoError(t, err)

	embedded, err := DefaultCatalog()
	require.NoError(t, err)
	require.Equal(t, embedded, loaded)

	_, err = LoadCatalogYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read catalog")
}

func TestCatalogParquet_RoundTrip(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)
	// A course without tags must survive the trip as well.
	cat.Courses = append(cat.Courses, catalog.Course{ID: 10, Name: "Untagged", Level: catalog.Advanced, AuthorID: 5})

	dir := filepath.Join(t.TempDir(), "catalog")
	require.NoError(t, WriteCatalogParquet(dir, cat))

	for _, name := range []string{AuthorsFile, TagsFile, CoursesFile} {
		require.FileExists(t, filepath.Join(dir, name))
	}

	loaded, err := LoadCatalogParquet(dir)
	require.NoError(t, err)
	require.Equal(t, cat, loaded)
}

func TestCatalogParquet_CoursesAreQueryableRows(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteCatalogParquet(dir, cat))

	rows, err := ReadMultipleFiles(filepath.Join(dir, CoursesFile))
	require.NoError(t, err)
	require.Len(t, rows, len(cat.Courses))
	require.Equal(t, "C# Basics", rows[0]["name"])
	require.Equal(t, int64(1), rows[0]["author_id"])
}

func TestLoadCatalogParquet_MissingFile(t *testing.T) {
	_, err := LoadCatalogParquet(t.TempDir())
	require.ErrorContains(t, err, AuthorsFile)
}

func TestLoadCatalog(t *testing.T) {
	embedded, err := DefaultCatalog()
	require.NoError(t, err)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(yamlPath, defaultCatalogYAML, 0o644))
	parquetDir := filepath.Join(dir, "parquet")
	require.NoError(t, WriteCatalogParquet(parquetDir, embedded))

	tests := []struct {
		name string
		path string
	}{
		{"embedded", ""},
		{"yaml file", yamlPath},
		{"parquet directory", parquetDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := LoadCatalog(tt.path)
			require.NoError(t, err)
			require.Equal(t, embedded, cat)
		})
	}

	_, err = LoadCatalog(filepath.Join(dir, "nope"))
	require.ErrorContains(t, err, "failed to open catalog")
}
