// Package sheetingest ingests one externally authored Excel delivery:
// it resolves the target worksheet and columns despite inconsistent naming,
// reshapes valid rows into a canonical schema, and persists the snapshot
// plus one summary record into the warehouse.
package sheetingest

// Options configures a pipeline run.
type Options struct {
	// SheetPrefix is the prefix the target worksheet's name must start
	// with, compared under normalization.
	SheetPrefix string
	// IDColumnPrefix is the match target for the required identifier
	// column.
	IDColumnPrefix string
}

// DefaultOptions returns the prefixes used for the regular delivery.
func DefaultOptions() Options {
	return Options{
		SheetPrefix:    "SheetToProcess",
		IDColumnPrefix: "id_column",
	}
}
