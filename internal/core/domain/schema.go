package domain

// ColumnType classifies a canonical column for the data dictionary.
type ColumnType string

const (
	// ColumnTypeText is free text with no enumerable domain.
	ColumnTypeText ColumnType = "text"

	// ColumnTypeCategorical is text drawn from a small observed value set.
	ColumnTypeCategorical ColumnType = "categorical"

	// ColumnTypeDate is a calendar date formatted as DateLayout.
	ColumnTypeDate ColumnType = "date"
)

// SchemaColumn describes one canonical column in the data dictionary.
type SchemaColumn struct {
	// Name is the canonical column name.
	Name string

	// Type is the inferred primitive type.
	Type ColumnType

	// Description is free text authored by a human downstream.
	// Derivation always emits it empty; the dictionary sink preserves
	// existing annotations across regeneration.
	Description string

	// AllowedValues is the sorted set of distinct observed values.
	// Populated for categorical columns only.
	AllowedValues []string
}

// Schema is the derived data dictionary: one entry per canonical column,
// in canonical column order. It is a scaffold generated from the data,
// never a hand-maintained constant.
type Schema struct {
	Columns []SchemaColumn
}

// Column returns the schema entry for a canonical column name.
func (s *Schema) Column(name string) (SchemaColumn, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return SchemaColumn{}, false
}
