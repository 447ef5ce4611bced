package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure TableSink implements the interface.
var _ driven.TableSink = (*TableSink)(nil)

// TableSink writes the canonical corpus table to a CSV file.
type TableSink struct {
	path string
}

// NewTableSink creates a sink writing to the given path.
func NewTableSink(path string) *TableSink {
	return &TableSink{path: path}
}

// WriteTable writes the table with canonical columns in canonical order,
// UTF-8, dates as YYYY-MM-DD. Any prior file at the path is replaced.
func (s *TableSink) WriteTable(_ context.Context, table domain.Table) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(domain.CanonicalColumns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(domain.CanonicalColumns()))
	for i := range table {
		for j, column := range domain.CanonicalColumns() {
			row[j] = table[i].Field(column)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	return writeFileAtomic(s.path, buf.Bytes())
}

// Path returns the output file location.
func (s *TableSink) Path() string {
	return s.path
}

// writeFileAtomic writes data via a temp file in the target directory,
// then renames it over the destination.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing output file: %w", err)
	}
	return nil
}
