package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

func schemaTestTable() domain.Table {
	return domain.Table{
		{
			SpeakerSurname:   "Washington",
			SpeakerGivenName: "George",
			Affiliation:      "Unaffiliated",
			OccurredOn:       time.Date(1790, 1, 8, 0, 0, 0, 0, time.UTC),
			Category:         "address",
			DeliveryMode:     "spoken",
			Body:             "Fellow-Citizens...",
		},
		{
			SpeakerSurname:   "Jefferson",
			SpeakerGivenName: "Thomas",
			Affiliation:      "Democratic-Republican",
			OccurredOn:       time.Date(1801, 12, 8, 0, 0, 0, 0, time.UTC),
			Category:         "other",
			DeliveryMode:     "written",
			Body:             "Fellow Citizens...",
		},
	}
}

func TestDeriveSchema_CoversEveryCanonicalColumn(t *testing.T) {
	schema := DeriveSchema(schemaTestTable())

	require.Len(t, schema.Columns, len(domain.CanonicalColumns()))
	for i, name := range domain.CanonicalColumns() {
		assert.Equal(t, name, schema.Columns[i].Name, "schema must follow canonical column order")
	}
}

func TestDeriveSchema_Types(t *testing.T) {
	schema := DeriveSchema(schemaTestTable())

	tests := []struct {
		column   string
		expected domain.ColumnType
	}{
		{domain.ColumnSpeakerSurname, domain.ColumnTypeText},
		{domain.ColumnSpeakerGivenName, domain.ColumnTypeText},
		{domain.ColumnAffiliation, domain.ColumnTypeCategorical},
		{domain.ColumnOccurredOn, domain.ColumnTypeDate},
		{domain.ColumnCategory, domain.ColumnTypeCategorical},
		{domain.ColumnDeliveryMode, domain.ColumnTypeCategorical},
		{domain.ColumnBody, domain.ColumnTypeText},
	}

	for _, tt := range tests {
		col, ok := schema.Column(tt.column)
		require.True(t, ok, tt.column)
		assert.Equal(t, tt.expected, col.Type, tt.column)
	}
}

func TestDeriveSchema_CategoricalDomains(t *testing.T) {
	schema := DeriveSchema(schemaTestTable())

	col, ok := schema.Column(domain.ColumnDeliveryMode)
	require.True(t, ok)
	assert.Equal(t, []string{"spoken", "written"}, col.AllowedValues)

	col, ok = schema.Column(domain.ColumnAffiliation)
	require.True(t, ok)
	assert.Equal(t, []string{"Democratic-Republican", "Unaffiliated"}, col.AllowedValues)
}

func TestDeriveSchema_TextColumnsHaveNoDomain(t *testing.T) {
	schema := DeriveSchema(schemaTestTable())

	for _, name := range []string{domain.ColumnSpeakerSurname, domain.ColumnBody} {
		col, ok := schema.Column(name)
		require.True(t, ok)
		assert.Nil(t, col.AllowedValues, name)
	}
}

func TestDeriveSchema_PermutationInvariant(t *testing.T) {
	table := schemaTestTable()
	reversed := domain.Table{table[1], table[0]}

	assert.Equal(t, DeriveSchema(table), DeriveSchema(reversed))
}

func TestDeriveSchema_Idempotent(t *testing.T) {
	table := schemaTestTable()
	assert.Equal(t, DeriveSchema(table), DeriveSchema(table))
}

func TestDeriveSchema_EmptyDescriptions(t *testing.T) {
	schema := DeriveSchema(schemaTestTable())

	for _, col := range schema.Columns {
		assert.Empty(t, col.Description, "derivation never synthesises descriptions")
	}
}

func TestDeriveSchema_IgnoresEmptyCategoricalValues(t *testing.T) {
	table := schemaTestTable()
	table = append(table, domain.Record{
		SpeakerSurname: "Adams",
		OccurredOn:     time.Date(1797, 11, 23, 0, 0, 0, 0, time.UTC),
		Body:           "Gentlemen...",
	})

	schema := DeriveSchema(table)
	col, ok := schema.Column(domain.ColumnDeliveryMode)
	require.True(t, ok)
	assert.NotContains(t, col.AllowedValues, "")
}
