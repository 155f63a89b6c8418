// Package store persists pipeline output to the warehouse database.
//
// Two tables are owned here: the intermediate table, a per-run snapshot
// that is fully replaced on every run, and the history log, which only
// ever grows by one record per successful run.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/opsdata/sheetingest/pkg/sheetingest/match"
	"github.com/opsdata/sheetingest/pkg/sheetingest/models"
)

// Warehouse is a scoped handle on the two output tables. Open it at run
// start and release it with Close on every exit path; it is not meant to
// live as ambient global state.
type Warehouse struct {
	db                *sql.DB
	intermediateTable string
	historyTable      string
}

// Open connects to the warehouse database and verifies the connection.
func Open(dsn, intermediateTable, historyTable string) (*Warehouse, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open warehouse %q: %w", dsn, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("verify warehouse %q: %w", dsn, err)
	}
	return &Warehouse{
		db:                db,
		intermediateTable: intermediateTable,
		historyTable:      historyTable,
	}, nil
}

// Close releases the underlying connection.
func (w *Warehouse) Close() error {
	return w.db.Close()
}

// ReplaceIntermediate overwrites the intermediate table with the run's
// canonical rows: prior contents are dropped, never merged. The whole
// replacement happens in one transaction, so a failed run leaves either
// the previous snapshot or the new one, not a mix.
func (w *Warehouse) ReplaceIntermediate(ctx context.Context, p models.Projection) error {
	if len(p.Columns) == 0 {
		return fmt.Errorf("replace %s: no columns resolved for the intermediate table", w.intermediateTable)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace %s: begin: %w", w.intermediateTable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", w.intermediateTable)); err != nil {
		return fmt.Errorf("replace %s: drop: %w", w.intermediateTable, err)
	}

	defs := make([]string, len(p.Columns))
	for i, col := range p.Columns {
		defs[i] = match.QuoteIfNeeded(col) + " TEXT"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", w.intermediateTable, strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("replace %s: create: %w", w.intermediateTable, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(p.Columns)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", w.intermediateTable, placeholders)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("replace %s: prepare: %w", w.intermediateTable, err)
	}
	defer stmt.Close()

	for _, row := range p.Rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("replace %s: insert: %w", w.intermediateTable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace %s: commit: %w", w.intermediateTable, err)
	}
	return nil
}

// AppendHistory appends exactly one summary record to the history log,
// creating the table on first use. The log is never updated or truncated.
func (w *Warehouse) AppendHistory(ctx context.Context, rec models.HistoryRecord) error {
	create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		filename TEXT,
		processing_timestamp TEXT,
		count_category_a INTEGER,
		count_category_b INTEGER
	)`, w.historyTable)
	if _, err := w.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("append %s: create: %w", w.historyTable, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (filename, processing_timestamp, count_category_a, count_category_b) VALUES (?, ?, ?, ?)", w.historyTable)
	if _, err := w.db.ExecContext(ctx, insert,
		rec.Filename, rec.ProcessingTimestamp, rec.CountCategoryA, rec.CountCategoryB); err != nil {
		return fmt.Errorf("append %s: insert: %w", w.historyTable, err)
	}
	return nil
}
