// Package models defines the canonical output shapes of an ingestion run.
package models

// Canonical column names of the intermediate table, independent of how the
// source workbook spelled them.
const (
	ColumnID   = "id_column"
	ColumnCatA = "eligibility_cat_a"
	ColumnCatB = "eligibility_cat_b"
)

// Projection is the canonical row set for one run. Columns lists only the
// canonical columns that actually resolved against the source; each row
// holds one value per column, nil standing for null.
type Projection struct {
	Columns []string
	Rows    [][]any
}

// HistoryRecord is the one summary line appended to the history log per
// successfully processed file. ProcessingTimestamp has minute precision,
// formatted "YYYY-MM-DD HH:MM".
type HistoryRecord struct {
	Filename            string
	ProcessingTimestamp string
	CountCategoryA      int64
	CountCategoryB      int64
}
