package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsml-pipelines/msgprep/pkg/msgprep"
)

// RequireDataPaths validates that exactly three positional arguments are
// provided: the messages CSV, the categories CSV, and the destination
// database file. Returns a usage message with an example invocation if the
// count is wrong.
func RequireDataPaths(cmd *cobra.Command, args []string) error {
	if len(args) == 3 {
		return nil
	}

	return fmt.Errorf(`%w: expected 3 arguments, received %d

Please provide the filepaths of the messages and categories datasets as the
first and second argument respectively, and the filepath of the database to
save the cleaned data to as the third argument.

Usage: %s

Example:
  %s disaster_messages.csv disaster_categories.csv DisasterResponse.db`,
		msgprep.ErrUsage, len(args), cmd.UseLine(), cmd.CommandPath())
}
