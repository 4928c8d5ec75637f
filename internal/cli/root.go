package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsml-pipelines/msgprep/internal/term"
)

var rootCmd = &cobra.Command{
	Use:   "msgprep",
	Short: "Disaster message ETL pipeline",
	Long: `msgprep prepares disaster-response message datasets for model training.

It joins a messages CSV with a categories CSV on their shared id column,
expands the semicolon-encoded category labels into one binary column per
category, drops duplicate rows, fills missing values, and writes the cleaned
table into a SQLite database file.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Destination database could not be opened or written
  12 - Input data malformed or category schema mismatch`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, term.Failure("Error: "+err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
