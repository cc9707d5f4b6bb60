// Package recreader loads record documents from JSON files into recschema
// types.
//
// The primary entry point is [Read], which accepts a file path and returns
// the document's records in their original key order. The input must be a
// JSON object whose keys are record identifiers; each value is the record's
// payload.
//
// The reader uses [io/fs.FS] for filesystem abstraction, which allows
// testing with in-memory filesystems. By default it reads from the OS
// filesystem.
package recreader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PalNilsson/json2duckdb/recschema"
)

// Sentinel errors reported by Read. Wrapped errors remain matchable with
// [errors.Is].
var (
	// ErrNotFound reports that the input path does not exist.
	ErrNotFound = errors.New("input file not found")

	// ErrParse reports that the input is not valid JSON.
	ErrParse = errors.New("invalid JSON")

	// ErrNotObject reports that the input parsed but its top level is not
	// an object.
	ErrNotObject = errors.New("top level must be a dictionary")
)

// Option configures the behavior of Read.
type Option func(*config)

type config struct {
	fsys fs.FS
}

// WithFS provides a custom filesystem for reading the input file. When set,
// the path argument to Read is interpreted relative to this filesystem.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		c.fsys = fsys
	}
}

// Read loads the JSON document at path and returns its records in document
// order. It fails with [ErrNotFound] if the path does not exist, [ErrParse]
// if the file is not valid JSON, and [ErrNotObject] if the parsed top level
// is not an object.
func Read(path string, opts ...Option) ([]recschema.Record, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var (
		data []byte
		err  error
	)
	if cfg.fsys != nil {
		data, err = fs.ReadFile(cfg.fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	records, err := parseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
