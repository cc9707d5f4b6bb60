// Package etl runs the load pipeline: read a JSON record document, flatten
// it into rows, infer the column schema, and write a single table into an
// embedded database file.
package etl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PalNilsson/json2duckdb/recreader"
	"github.com/PalNilsson/json2duckdb/recschema"
	"github.com/PalNilsson/json2duckdb/recsql"
)

// driverNames maps engine names to database/sql driver names. The drivers
// themselves must be registered by the importer; cmd/json2duckdb imports
// both.
var driverNames = map[string]string{
	"duckdb": "duckdb",
	"sqlite": "sqlite",
}

// Run executes one load with the given configuration. It runs to completion
// or fails; there is no retry and no partial-progress state, and the
// destination table only becomes visible after the write commits.
func Run(ctx context.Context, cfg Config) error {
	cfg.applyDefaults()
	if cfg.JSONPath == "" {
		return errors.New("no input JSON path configured")
	}
	driver, ok := driverNames[cfg.Engine]
	if !ok {
		return fmt.Errorf("unknown engine %q (supported: duckdb, sqlite)", cfg.Engine)
	}

	records, err := recreader.Read(cfg.JSONPath)
	if err != nil {
		return err
	}

	rows := recschema.Flatten(records)
	schema := recschema.InferSchema(rows)

	db, err := sql.Open(driver, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", cfg.DBPath, err)
	}
	defer db.Close()

	if err := recsql.WriteTable(ctx, db, cfg.Table, schema, rows); err != nil {
		return fmt.Errorf("writing %s:%s: %w", cfg.DBPath, cfg.Table, err)
	}
	return nil
}
