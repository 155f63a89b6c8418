package match

import (
	"fmt"
	"strings"
)

// SheetNotFoundError indicates no worksheet matched the target prefix. It
// carries the raw prefix, its normalized key and every available sheet name
// so a naming mismatch can be diagnosed from the log alone.
type SheetNotFoundError struct {
	Prefix    string
	Key       string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("no sheet starting with %q (normalized %q); available sheets: [%s]",
		e.Prefix, e.Key, strings.Join(e.Available, ", "))
}

// ResolveSheet returns the first sheet name, in workbook order, whose
// normalized form starts with the normalized target prefix.
func ResolveSheet(sheetNames []string, targetPrefix string) (string, error) {
	want := Key(targetPrefix)
	for _, name := range sheetNames {
		if strings.HasPrefix(Key(name), want) {
			return name, nil
		}
	}
	return "", &SheetNotFoundError{
		Prefix:    targetPrefix,
		Key:       want,
		Available: sheetNames,
	}
}
