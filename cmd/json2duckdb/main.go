// Command json2duckdb loads a top-level JSON dictionary into one table of an
// embedded database file. Keys of the top-level dictionary become the
// record_id column; column types are inferred from the values.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/marcboeker/go-duckdb/v2"
	_ "modernc.org/sqlite"

	"github.com/PalNilsson/json2duckdb/internal/etl"
)

func main() {
	var (
		jsonPath   = flag.String("json", "", "Path to the input JSON file (top-level dictionary, required)")
		dbPath     = flag.String("db", etl.DefaultDBPath, "Path to the destination database file")
		table      = flag.String("table", etl.DefaultTable, "Destination table name")
		engine     = flag.String("engine", etl.DefaultEngine, "Embedded database engine (duckdb or sqlite)")
		configPath = flag.String("config", "", "Optional YAML file with default settings")
	)
	flag.Parse()

	var cfg etl.Config
	if *configPath != "" {
		var err error
		cfg, err = etl.LoadConfig(*configPath)
		if err != nil {
			fatal(err)
		}
	}

	// Explicitly-set flags win over the config file.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	cfg = cfg.Merge(etl.Config{
		JSONPath: *jsonPath,
		DBPath:   *dbPath,
		Table:    *table,
		Engine:   *engine,
	}, set)

	if cfg.JSONPath == "" {
		fmt.Fprintln(os.Stderr, "error: -json flag is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := etl.Run(context.Background(), cfg); err != nil {
		fatal(err)
	}

	fmt.Printf("Loaded '%s' into %s:%s\n", cfg.JSONPath, cfg.DBPath, cfg.Table)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
