package domain

import "time"

// Canonical column names. Metadata columns always precede the body column;
// CanonicalColumns fixes the order every output artifact must use.
const (
	ColumnSpeakerSurname   = "speaker_surname"
	ColumnSpeakerGivenName = "speaker_given_name"
	ColumnAffiliation      = "affiliation"
	ColumnOccurredOn       = "occurred_on"
	ColumnCategory         = "category"
	ColumnDeliveryMode     = "delivery_mode"
	ColumnBody             = "body"
)

// DateLayout is the wire format for occurred_on in every output artifact.
const DateLayout = "2006-01-02"

// CanonicalColumns returns the fixed output column order.
// Callers must not mutate the returned slice.
func CanonicalColumns() []string {
	return []string{
		ColumnSpeakerSurname,
		ColumnSpeakerGivenName,
		ColumnAffiliation,
		ColumnOccurredOn,
		ColumnCategory,
		ColumnDeliveryMode,
		ColumnBody,
	}
}

// RequiredColumns returns the columns that must be non-empty in every record.
func RequiredColumns() []string {
	return []string{
		ColumnSpeakerSurname,
		ColumnOccurredOn,
		ColumnBody,
	}
}

// CategoricalColumns returns the columns whose observed value domain is
// enumerated in the derived schema.
func CategoricalColumns() []string {
	return []string{
		ColumnAffiliation,
		ColumnCategory,
		ColumnDeliveryMode,
	}
}

// Record is one document of the corpus in canonical shape.
// Its identity is positional: the index within a sorted Table.
type Record struct {
	// SpeakerSurname is the speaker's family name. Required.
	SpeakerSurname string

	// SpeakerGivenName is the speaker's given name.
	SpeakerGivenName string

	// Affiliation is the speaker's political affiliation at delivery time.
	Affiliation string

	// OccurredOn is the calendar date of delivery. Required.
	// Only the date part is meaningful; the time is always midnight UTC.
	OccurredOn time.Time

	// Category distinguishes formally-titled addresses from other
	// forms of communication.
	Category string

	// DeliveryMode records how the document was delivered, e.g.
	// spoken before an audience or transmitted in writing.
	DeliveryMode string

	// Body is the full text of the document. Required.
	Body string
}

// Field returns the record's value for a canonical column, formatted the
// way output artifacts expect it (dates as DateLayout).
func (r *Record) Field(column string) string {
	switch column {
	case ColumnSpeakerSurname:
		return r.SpeakerSurname
	case ColumnSpeakerGivenName:
		return r.SpeakerGivenName
	case ColumnAffiliation:
		return r.Affiliation
	case ColumnOccurredOn:
		if r.OccurredOn.IsZero() {
			return ""
		}
		return r.OccurredOn.Format(DateLayout)
	case ColumnCategory:
		return r.Category
	case ColumnDeliveryMode:
		return r.DeliveryMode
	case ColumnBody:
		return r.Body
	}
	return ""
}

// Table is the canonical corpus: records in canonical shape, sorted
// ascending by OccurredOn with ties broken by SpeakerSurname.
type Table []Record

// RawTable is the collaborator's export before normalisation: a header of
// source column names and one row of cells per document, in export order.
type RawTable struct {
	// Columns are the source column names, in export order.
	Columns []string

	// Rows hold one cell per column, aligned with Columns.
	Rows [][]string
}

// ColumnIndex returns the position of a source column, or -1 if absent.
func (t *RawTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ColumnMapping maps canonical column names to the source column names of
// a specific corpus provider's export format.
type ColumnMapping map[string]string

// PipelinePaths carries every file location the pipeline touches.
// Paths are explicit configuration, never ambient working-directory state.
type PipelinePaths struct {
	// Input is the collaborator's raw export.
	Input string

	// Table is where the canonical corpus CSV is written.
	Table string

	// Dictionary is where the data dictionary CSV is written.
	Dictionary string

	// Database is the optional SQLite export location.
	Database string
}
