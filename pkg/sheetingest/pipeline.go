package sheetingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/opsdata/sheetingest/pkg/sheetingest/match"
	"github.com/opsdata/sheetingest/pkg/sheetingest/models"
	"github.com/opsdata/sheetingest/pkg/sheetingest/parser"
	"github.com/opsdata/sheetingest/pkg/sheetingest/store"
)

// timestampLayout truncates the run timestamp to the minute.
const timestampLayout = "2006-01-02 15:04"

// Pipeline runs the ingestion for a single delivery. Construct one, call
// Run once, discard it. The warehouse handle and logger are threaded in
// explicitly; nothing here is global.
type Pipeline struct {
	warehouse *store.Warehouse
	log       *zap.Logger
	opts      Options
	now       func() time.Time
}

// Result summarizes a completed run.
type Result struct {
	SheetName string
	RowsKept  int
	History   models.HistoryRecord
}

// New builds a pipeline over an open warehouse handle.
func New(warehouse *store.Warehouse, log *zap.Logger, opts Options) *Pipeline {
	return &Pipeline{
		warehouse: warehouse,
		log:       log,
		opts:      opts,
		now:       time.Now,
	}
}

// Run ingests the workbook at path: resolve sheet, load rows, resolve
// columns, filter, project, persist the snapshot, aggregate, append the
// history record. Any failure aborts immediately and propagates; completed
// writes are not rolled back.
func (p *Pipeline) Run(ctx context.Context, path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		p.log.Error("workbook unreadable", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	sheetName, err := match.ResolveSheet(sheetNames, p.opts.SheetPrefix)
	if err != nil {
		p.log.Error("sheet not resolved",
			zap.String("prefix", p.opts.SheetPrefix),
			zap.String("normalized_prefix", match.Key(p.opts.SheetPrefix)),
			zap.Strings("available_sheets", sheetNames))
		return nil, err
	}
	p.log.Info("sheet resolved", zap.String("sheet", sheetName))

	table, err := parser.LoadTable(f, sheetName)
	if err != nil {
		return nil, err
	}
	p.log.Info("table loaded",
		zap.Int("rows", len(table.Rows)),
		zap.Strings("columns", table.Columns))

	idCols := match.ResolveColumns(table.Columns, []string{p.opts.IDColumnPrefix})
	if len(idCols) == 0 {
		rcErr := &RequiredColumnError{
			Prefix:    p.opts.IDColumnPrefix,
			Key:       match.Key(p.opts.IDColumnPrefix),
			Available: table.Columns,
		}
		p.log.Error("id column not resolved",
			zap.String("prefix", rcErr.Prefix),
			zap.String("normalized_prefix", rcErr.Key),
			zap.Strings("headers", rcErr.Available))
		return nil, rcErr
	}
	idCol := idCols[0]

	catA, catB := match.CategoryColumns(table.Columns)
	if catA == "" {
		p.log.Warn("category A column not found, its sum degrades to zero",
			zap.Strings("headers", table.Columns))
	}
	if catB == "" {
		p.log.Warn("category B column not found, its sum degrades to zero",
			zap.Strings("headers", table.Columns))
	}

	kept := filterRows(table.Rows, idCol)
	p.log.Info("rows filtered",
		zap.String("id_column", idCol),
		zap.Int("kept", len(kept)),
		zap.Int("dropped", len(table.Rows)-len(kept)))

	proj := project(kept, idCol, catA, catB)
	if err := p.warehouse.ReplaceIntermediate(ctx, proj); err != nil {
		p.log.Error("intermediate write failed", zap.Error(err))
		return nil, fmt.Errorf("persist intermediate table: %w", err)
	}

	var sumA, sumB int64
	if len(kept) > 0 {
		sumA = sumColumn(kept, catA)
		sumB = sumColumn(kept, catB)
	}
	p.log.Info("aggregates computed", zap.Int64("category_a", sumA), zap.Int64("category_b", sumB))

	rec := models.HistoryRecord{
		Filename:            filepath.Base(path),
		ProcessingTimestamp: p.now().Format(timestampLayout),
		CountCategoryA:      sumA,
		CountCategoryB:      sumB,
	}
	if err := p.warehouse.AppendHistory(ctx, rec); err != nil {
		p.log.Error("history append failed", zap.Error(err))
		return nil, fmt.Errorf("append history record: %w", err)
	}
	p.log.Info("history appended", zap.String("filename", rec.Filename),
		zap.String("processed_at", rec.ProcessingTimestamp))

	return &Result{SheetName: sheetName, RowsKept: len(kept), History: rec}, nil
}

// filterRows keeps rows whose id cell is present and non-blank after
// trimming. Every surviving row has a usable identifier.
func filterRows(rows []map[string]string, idCol string) []map[string]string {
	var kept []map[string]string
	for _, row := range rows {
		id, ok := row[idCol]
		if !ok || strings.TrimSpace(id) == "" {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// project reshapes surviving rows to the canonical schema. Unresolved
// category columns are omitted from the projection entirely rather than
// defaulted; absent cells project as nil.
func project(rows []map[string]string, idCol, catA, catB string) models.Projection {
	columns := []string{models.ColumnID}
	source := []string{idCol}
	if catA != "" {
		columns = append(columns, models.ColumnCatA)
		source = append(source, catA)
	}
	if catB != "" {
		columns = append(columns, models.ColumnCatB)
		source = append(source, catB)
	}

	projected := make([][]any, 0, len(rows))
	for _, row := range rows {
		values := make([]any, len(source))
		for i, col := range source {
			if v, ok := row[col]; ok {
				values[i] = v
			}
		}
		projected = append(projected, values)
	}
	return models.Projection{Columns: columns, Rows: projected}
}

// sumColumn sums the integral casts of a column's cells. Cells that are
// absent or fail the cast are skipped, matching sum-ignores-null
// semantics; an unresolved column (empty name) contributes zero.
func sumColumn(rows []map[string]string, col string) int64 {
	if col == "" {
		return 0
	}
	var sum int64
	for _, row := range rows {
		v, ok := row[col]
		if !ok {
			continue
		}
		if n, ok := asLong(v); ok {
			sum += n
		}
	}
	return sum
}

// asLong casts a cell to an integer the strict way: base-10 integers pass,
// floats pass only with no fractional part (spreadsheet numerics often
// render as "7.0"), anything else is rejected.
func asLong(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return int64(f), true
	}
	return 0, false
}
