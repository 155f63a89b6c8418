package sheetingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSourceUnreadable indicates the input workbook could not be opened or
// decoded at all. Nothing has been written when this surfaces.
var ErrSourceUnreadable = errors.New("source workbook unreadable")

// RequiredColumnError indicates the identifier column could not be resolved.
// Fatal: without an id column no row can be validated.
type RequiredColumnError struct {
	Prefix    string
	Key       string
	Available []string
}

func (e *RequiredColumnError) Error() string {
	return fmt.Sprintf("required column starting with %q (normalized %q) not found; headers: [%s]",
		e.Prefix, e.Key, strings.Join(e.Available, ", "))
}
