package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vegasq/seqcat/query"
)

// writeCatalogDir writes the embedded catalogue as parquet files into a
// fresh directory.
func writeCatalogDir(t *testing.T) string {
	t.Helper()
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteCatalogParquet(dir, cat))
	return dir
}

func TestReadMultipleFiles_SingleFileIsNotTagged(t *testing.T) {
	dir := writeCatalogDir(t)

	rows, err := ReadMultipleFiles(filepath.Join(dir, CoursesFile))
	require.NoError(t, err)
	require.Len(t, rows, 9)
	require.Equal(t, "C# Basics", rows[0]["name"])
	for _, row := range rows {
		require.NotContains(t, row, FileColumn)
	}
}

func TestRows_FilterByFile(t *testing.T) {
	dir := writeCatalogDir(t)
	all := Rows(filepath.Join(dir, "*.parquet"))

	tests := []struct {
		file string
		want int
	}{
		{AuthorsFile, 5},
		{TagsFile, 7},
		{CoursesFile, 9},
		{"missing.parquet", 0},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			count, err := all.Where(query.FieldEquals(FileColumn, filepath.Join(dir, tt.file))).Count()
			require.NoError(t, err)
			require.Equal(t, tt.want, count)
		})
	}

	total, err := all.Count()
	require.NoError(t, err)
	require.Equal(t, 21, total)
}

func TestRows_PatternSelectsFiles(t *testing.T) {
	dir := writeCatalogDir(t)

	names, err := query.Select(
		Rows(filepath.Join(dir, "[at]*.parquet")).Where(query.FieldEquals("id", 2)),
		query.Field("name"),
	).ToSlice()
	require.NoError(t, err)
	require.Equal(t, []any{"Anthony Alicea", "angularjs"}, names)

	beginners, err := Rows(filepath.Join(dir, "c*.parquet")).Count(query.FieldEquals("level", 1))
	require.NoError(t, err)
	require.Equal(t, 5, beginners)
}

func TestRows_NoMatch(t *testing.T) {
	_, err := Rows(filepath.Join(t.TempDir(), "*.parquet")).ToSlice()
	require.ErrorContains(t, err, "no files match pattern")
}

func TestRows_ReloadsOnEveryIteration(t *testing.T) {
	dir := t.TempDir()
	seq := Rows(filepath.Join(dir, "*.parquet"))

	require.NoError(t, writeRecords(filepath.Join(dir, TagsFile), []tagRecord{{ID: 1, Name: "c#"}}))
	count, err := seq.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.NoError(t, writeRecords(filepath.Join(dir, AuthorsFile), []authorRecord{
		{ID: 1, Name: "Mosh Hamedani"},
		{ID: 2, Name: "Anthony Alicea"},
	}))
	count, err = seq.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestReader_ReadAll(t *testing.T) {
	dir := writeCatalogDir(t)

	r, err := NewReader(filepath.Join(dir, CoursesFile))
	require.NoError(t, err)
	defer r.Close()

	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 9)
	require.Equal(t, "Node.js for Beginners", rows[8]["name"])
	require.True(t, query.FieldEquals("full_price", 29)(rows[8]))

	expensive, err := r.Rows().Count(func(row query.Row) bool {
		return query.CompareValues(row["full_price"], 100) > 0
	})
	require.NoError(t, err)
	require.Equal(t, 2, expensive)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}

func TestNewReader_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewReader(filepath.Join(dir, "missing.parquet"))
	require.Error(t, err)

	bogus := filepath.Join(dir, "bogus.parquet")
	require.NoError(t, os.WriteFile(bogus, []byte("not parquet"), 0o644))
	_, err = NewReader(bogus)
	require.Error(t, err)
}
