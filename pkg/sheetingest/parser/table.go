// Package parser loads worksheet grids into tabular form.
package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Table is one sheet's grid with the header row promoted to column names.
// Each row maps a column name to the authored cell string; a cell missing
// from a short row is absent from the map, which downstream layers treat
// as null. Row order carries no meaning downstream.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// LoadTable reads a sheet into a Table, promoting the first row to column
// names. Blank header cells are skipped, so a column only exists if it was
// named. An empty sheet yields a Table with no columns and no rows. Cell
// values stay strings; no type coercion happens at this layer.
func LoadTable(f *excelize.File, sheetName string) (*Table, error) {
	grid, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(grid) == 0 {
		return &Table{}, nil
	}

	header := grid[0]
	columns := make([]string, 0, len(header))
	colIdx := make(map[int]string, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		columns = append(columns, name)
		colIdx[i] = name
	}

	var rows []map[string]string
	for _, raw := range grid[1:] {
		row := make(map[string]string, len(colIdx))
		for i, value := range raw {
			name, ok := colIdx[i]
			if !ok {
				continue
			}
			row[name] = value
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}
