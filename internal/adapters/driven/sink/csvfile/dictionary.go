package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure DictionarySink implements the interface.
var _ driven.DictionarySink = (*DictionarySink)(nil)

// dictionaryHeader is the fixed dictionary CSV layout.
var dictionaryHeader = []string{"column_name", "type", "description", "allowed_values"}

// allowedValuesSeparator joins a categorical column's observed domain.
const allowedValuesSeparator = ","

// DictionarySink writes the data dictionary to a CSV file.
//
// The derived schema is a scaffold: humans annotate the description
// column afterwards. On regeneration the sink reads the previous
// dictionary and carries descriptions over by column name, so the
// annotations survive re-runs while names, types and domains are
// always regenerated from the data.
type DictionarySink struct {
	path string
}

// NewDictionarySink creates a sink writing to the given path.
func NewDictionarySink(path string) *DictionarySink {
	return &DictionarySink{path: path}
}

// WriteDictionary writes one row per canonical column.
func (s *DictionarySink) WriteDictionary(_ context.Context, schema domain.Schema) error {
	existing, err := s.existingDescriptions()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(dictionaryHeader); err != nil {
		return fmt.Errorf("writing dictionary header: %w", err)
	}

	for _, col := range schema.Columns {
		description := col.Description
		if description == "" {
			description = existing[col.Name]
		}
		record := []string{
			col.Name,
			string(col.Type),
			description,
			strings.Join(col.AllowedValues, allowedValuesSeparator),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing dictionary row %s: %w", col.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing dictionary: %w", err)
	}

	return writeFileAtomic(s.path, buf.Bytes())
}

// Path returns the output file location.
func (s *DictionarySink) Path() string {
	return s.path
}

// existingDescriptions reads human-authored descriptions from a previous
// dictionary file, keyed by column name. A missing file means no
// annotations yet; a malformed one is reported rather than clobbered.
func (s *DictionarySink) existingDescriptions() (map[string]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading previous dictionary: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing previous dictionary: %w", err)
	}

	descriptions := make(map[string]string)
	for i, record := range records {
		if i == 0 || len(record) < 3 {
			continue
		}
		if record[2] != "" {
			descriptions[record[0]] = record[2]
		}
	}
	return descriptions, nil
}
