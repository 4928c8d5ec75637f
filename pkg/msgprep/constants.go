package msgprep

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Pipeline completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or parameters
	ExitStorageError = 11 // Failed to open or write the destination database
	ExitDataError    = 12 // Input data is malformed or violates the category schema
)

const (
	// DefaultTableName is the destination table the cleaned dataset is
	// written to unless overridden via flag, environment, or msgprep.yaml.
	DefaultTableName = "messages"

	// DefaultDelimiter separates category tokens in the raw categories column.
	DefaultDelimiter = ";"

	// DefaultPlaceholder is the fill value for missing text fields.
	// Numeric fields are filled with 0 instead.
	DefaultPlaceholder = "."

	// JoinKeyColumn is the column name both input datasets must carry.
	// The loader performs an inner join on this column.
	JoinKeyColumn = "id"

	// CategoriesColumn is the raw encoded column in the categories dataset.
	// The cleaner replaces it with one binary column per category.
	CategoriesColumn = "categories"
)
