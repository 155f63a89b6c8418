// Package main provides the CLI entry point for sheetingest.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opsdata/sheetingest/pkg/sheetingest"
	"github.com/opsdata/sheetingest/pkg/sheetingest/store"
)

var (
	warehouseDSN      string
	intermediateTable string
	historyTable      string
	sheetPrefix       string
	idColumnPrefix    string
	verbose           bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetingest [input.xlsx]",
		Short: "Ingest one Excel delivery into the warehouse",
		Long: `sheetingest locates the target worksheet and columns in an externally
authored Excel delivery despite inconsistent naming, reshapes valid rows into
the canonical schema, overwrites the intermediate table with the snapshot and
appends one summary record to the history log.

The source file is never deleted or modified; the orchestrator removes it
after a zero exit status.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&warehouseDSN, "db", "warehouse.db", "Warehouse database DSN")
	rootCmd.Flags().StringVar(&intermediateTable, "intermediate-table", "intermediate_table", "Intermediate table name (overwritten each run)")
	rootCmd.Flags().StringVar(&historyTable, "history-table", "history_log", "History table name (append-only)")
	rootCmd.Flags().StringVar(&sheetPrefix, "sheet-prefix", "SheetToProcess", "Worksheet name prefix to match")
	rootCmd.Flags().StringVar(&idColumnPrefix, "id-prefix", "id_column", "Identifier column prefix to match")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug-level logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	defer logger.Sync()

	// The warehouse session is scoped to this run and released on every
	// exit path.
	warehouse, err := store.Open(warehouseDSN, intermediateTable, historyTable)
	if err != nil {
		logger.Error("warehouse unavailable", zap.Error(err))
		return err
	}
	defer warehouse.Close()

	opts := sheetingest.Options{
		SheetPrefix:    sheetPrefix,
		IDColumnPrefix: idColumnPrefix,
	}

	pipeline := sheetingest.New(warehouse, logger, opts)
	res, err := pipeline.Run(cmd.Context(), inputPath)
	if err != nil {
		logger.Error("ingestion failed", zap.String("path", inputPath), zap.Error(err))
		return err
	}

	fmt.Printf("processed %s: sheet %q, %d rows, category A %d, category B %d\n",
		res.History.Filename, res.SheetName, res.RowsKept,
		res.History.CountCategoryA, res.History.CountCategoryB)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}
