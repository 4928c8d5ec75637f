package msgprep

import (
	"errors"
	"fmt"
)

// PipelineConfig contains all parameters needed for one pipeline run.
type PipelineConfig struct {
	// MessagesPath is the path to the messages CSV file.
	MessagesPath string

	// CategoriesPath is the path to the categories CSV file.
	CategoriesPath string

	// DatabasePath is the SQLite database file the cleaned table is written to.
	// Created if it does not exist.
	DatabasePath string

	// TableName is the destination table. Any existing table of this name is
	// dropped and recreated on every run.
	TableName string

	// Delimiter separates category tokens in the raw categories column.
	Delimiter string

	// Placeholder is the fill value for missing text fields.
	Placeholder string

	// Strict enables fail-fast validation of every row's category names
	// against the schema derived from the first row. When false, only the
	// token count is validated and values are matched by position.
	Strict bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the PipelineConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *PipelineConfig) Validate() error {
	var errs []error

	if c.MessagesPath == "" {
		errs = append(errs, fmt.Errorf("MessagesPath is required: %w", ErrInvalidConfig))
	}

	if c.CategoriesPath == "" {
		errs = append(errs, fmt.Errorf("CategoriesPath is required: %w", ErrInvalidConfig))
	}

	if c.DatabasePath == "" {
		errs = append(errs, fmt.Errorf("DatabasePath is required: %w", ErrInvalidConfig))
	}

	if c.TableName == "" {
		errs = append(errs, fmt.Errorf("TableName is required: %w", ErrInvalidConfig))
	}

	if c.Delimiter == "" {
		errs = append(errs, fmt.Errorf("Delimiter is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// WithDefaults returns a copy of the config with empty optional fields
// replaced by the built-in defaults. Paths are never defaulted.
func (c PipelineConfig) WithDefaults() PipelineConfig {
	if c.TableName == "" {
		c.TableName = DefaultTableName
	}
	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
	if c.Placeholder == "" {
		c.Placeholder = DefaultPlaceholder
	}
	return c
}
