package driver

import "errors"

var (
	// ErrNoFiles is returned by FixPaths when the paths hold no matching files.
	ErrNoFiles = errors.New("no source files found")
	// ErrLexErrors marks files skipped because the tokenizer reported errors.
	ErrLexErrors = errors.New("file has tokenizer errors")
)
