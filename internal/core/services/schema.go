package services

import (
	"sort"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

// DeriveSchema builds the data dictionary from the canonical table.
// It depends only on each column's value set, never on row order, so
// permuting the table yields an identical schema. Descriptions are
// always emitted empty; annotating them is a human's job downstream.
func DeriveSchema(table domain.Table) domain.Schema {
	categorical := make(map[string]bool, 3)
	for _, c := range domain.CategoricalColumns() {
		categorical[c] = true
	}

	schema := domain.Schema{Columns: make([]domain.SchemaColumn, 0, len(domain.CanonicalColumns()))}
	for _, name := range domain.CanonicalColumns() {
		col := domain.SchemaColumn{Name: name, Type: columnType(name)}
		if categorical[name] {
			col.AllowedValues = distinctValues(table, name)
		}
		schema.Columns = append(schema.Columns, col)
	}
	return schema
}

// columnType infers the primitive type for a canonical column.
func columnType(name string) domain.ColumnType {
	switch name {
	case domain.ColumnOccurredOn:
		return domain.ColumnTypeDate
	case domain.ColumnAffiliation, domain.ColumnCategory, domain.ColumnDeliveryMode:
		return domain.ColumnTypeCategorical
	default:
		return domain.ColumnTypeText
	}
}

// distinctValues returns the sorted set of non-empty values observed in
// a column. Unknown values are enumerated as-is: the dictionary records
// what the data says, it does not police it.
func distinctValues(table domain.Table, column string) []string {
	seen := make(map[string]bool)
	for i := range table {
		if v := table[i].Field(column); v != "" {
			seen[v] = true
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
