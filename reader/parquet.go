package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/seqcat/internal/logging"
	"github.com/vegasq/seqcat/query"
)

// FileColumn is the column added to rows read through a glob pattern.
const FileColumn = "_file"

// maxFiles caps how many files one glob may expand to.
const maxFiles = 1000

// Reader reads a parquet file as dynamic rows.
type Reader struct {
	path   string
	file   *os.File
	pqFile *parquet.File
}

// NewReader opens path and validates it as a parquet file.
//
//	r, err := reader.NewReader("courses.parquet")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{path: path, file: file, pqFile: pqFile}, nil
}

// ReadAll loads every row of the file into memory, keyed by column name.
func (r *Reader) ReadAll() ([]query.Row, error) {
	rows := make([]query.Row, 0, r.pqFile.NumRows())

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]any)
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, row)
	}

	logging.Debug().Str("path", r.path).Int("rows", len(rows)).Msg("read parquet file")
	return rows, nil
}

// Rows is ReadAll as a lazy sequence. The file is read again on every
// iteration and must stay open while the sequence is in use.
func (r *Reader) Rows() query.Sequence[query.Row] {
	return query.FromFunc(r.ReadAll)
}

// Schema returns the parquet schema of the file.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close releases the file handle. It is safe to call more than once.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ReadMultipleFiles reads every row of the files matching pattern.
//
// A pattern without wildcards names a single file, whose rows are returned
// unchanged. Rows read through a wildcard pattern get a FileColumn naming
// their source file. No match is an error.
func ReadMultipleFiles(pattern string) ([]query.Row, error) {
	if !strings.ContainsAny(pattern, "*?[]{}") {
		return readFile(pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var all []query.Row
	for _, path := range matches {
		rows, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for _, row := range rows {
			row[FileColumn] = path
		}
		all = append(all, rows...)
	}
	return all, nil
}

// Rows is ReadMultipleFiles as a lazy sequence: the files are globbed and
// read again on every iteration.
func Rows(pattern string) query.Sequence[query.Row] {
	return query.FromFunc(func() ([]query.Row, error) {
		return ReadMultipleFiles(pattern)
	})
}

func readFile(path string) ([]query.Row, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}

	rows, readErr := r.ReadAll()
	closeErr := r.Close()
	if readErr != nil {
		return nil, readErr
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	return rows, nil
}
