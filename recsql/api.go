package recsql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/PalNilsson/json2duckdb/recschema"
)

// WriteTable replaces the named table in db with one column per schema entry
// and bulk-inserts the rows. Any pre-existing table of the same name is
// dropped first; create and insert commit as a single unit, so the new table
// is only visible after a successful run.
//
// The insert uses the column order of the first row; schema columns absent
// from a row insert as NULL. With zero rows the table is created empty and
// insertion is skipped.
func WriteTable(ctx context.Context, db *sql.DB, table string, schema *recschema.Schema, rows []recschema.Row) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(table)); err != nil {
		return fmt.Errorf("dropping table %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, TableSQL(table, schema)); err != nil {
		return fmt.Errorf("creating table %s: %w", table, err)
	}

	if len(rows) == 0 {
		return tx.Commit()
	}

	columns := rows[0].Columns()
	stmt, err := tx.PrepareContext(ctx, insertSQL(table, columns))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(columns))
	for i := range rows {
		for j, c := range columns {
			v, _ := rows[i].Value(c)
			args[j] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// TableSQL returns the CREATE TABLE statement for the schema, with columns
// in schema order.
func TableSQL(table string, schema *recschema.Schema) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(quoteIdent(table))
	b.WriteString(" (")
	for i, column := range schema.Columns() {
		if i > 0 {
			b.WriteString(", ")
		}
		kind, _ := schema.Kind(column)
		b.WriteString(quoteIdent(column))
		b.WriteByte(' ')
		b.WriteString(kind.String())
	}
	b.WriteString(")")
	return b.String()
}

func insertSQL(table string, columns []string) string {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
}

// quoteIdent double-quotes an identifier, doubling embedded quotes. Table
// and column names come straight from user input, so every identifier is
// quoted rather than checked against a reserved-word list.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
