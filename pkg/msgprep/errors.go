package msgprep

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := pipeline.Run(ctx, config)
//	if errors.Is(err, msgprep.ErrSchemaMismatch) {
//	    // A row's category encoding diverged from the derived schema
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was invoked incorrectly.
	ErrUsage = errors.New("usage error")

	// ErrMalformedData indicates an input file could not be parsed as
	// delimited text, or a category token had a non-numeric value.
	ErrMalformedData = errors.New("malformed input data")

	// ErrSchemaMismatch indicates a row's category encoding does not match
	// the schema derived from the first row (wrong token count, or a
	// diverging category name in strict mode).
	ErrSchemaMismatch = errors.New("category schema mismatch")

	// ErrStorageFailed indicates the destination database could not be
	// opened or written.
	ErrStorageFailed = errors.New("storage failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrStorageFailed):
		return ExitStorageError
	case errors.Is(err, ErrMalformedData):
		return ExitDataError
	case errors.Is(err, ErrSchemaMismatch):
		return ExitDataError
	}

	return ExitGeneralError
}
