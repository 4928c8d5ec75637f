package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dsml-pipelines/msgprep/internal/config"
	"github.com/dsml-pipelines/msgprep/internal/logging"
	"github.com/dsml-pipelines/msgprep/internal/services"
	"github.com/dsml-pipelines/msgprep/internal/store"
	"github.com/dsml-pipelines/msgprep/internal/term"
	"github.com/dsml-pipelines/msgprep/pkg/msgprep"
)

var processCmd = &cobra.Command{
	Use:   "process <messages_csv> <categories_csv> <database_file>",
	Short: "Run the ETL pipeline",
	Long: `Process joins the messages and categories datasets, cleans the result, and
saves it into a SQLite database.

The process command:
1. Reads both CSV files and inner-joins them on the shared id column
2. Expands the encoded categories column into one binary column per category
3. Drops exact duplicate rows and fills missing values (0 for numeric
   columns, "` + msgprep.DefaultPlaceholder + `" for text columns)
4. Writes the cleaned table into the database file, replacing any existing
   table of the same name

Arguments:
  messages_csv     Messages dataset (CSV with header, must contain an id column)
  categories_csv   Categories dataset (CSV with header, id column plus an
                   encoded categories column such as "related-1;request-0")
  database_file    Destination SQLite database file (created if absent)

Configuration:
  Settings may also come from msgprep.yaml in the working directory and from
  MSGPREP_TABLE, MSGPREP_DELIMITER, and MSGPREP_PLACEHOLDER environment
  variables (a .env file is honored). Precedence: flag > environment >
  msgprep.yaml > default.

Examples:
  # Basic run
  msgprep process disaster_messages.csv disaster_categories.csv DisasterResponse.db

  # Write to a differently named table
  msgprep process messages.csv categories.csv out.db --table responses

  # Tolerate rows whose category names diverge from the first row's
  msgprep process messages.csv categories.csv out.db --strict=false`,
	Args: RequireDataPaths,
	RunE: runProcess,
}

type processFlagValues struct {
	table  string
	strict bool
}

var processFlags processFlagValues

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processFlags.table, "table", "t", "",
		"Destination table name (default \""+msgprep.DefaultTableName+"\")\n"+
			"Precedence: --table > $MSGPREP_TABLE > msgprep.yaml")
	processCmd.Flags().BoolVar(&processFlags.strict, "strict", true,
		"Fail when a row's category names diverge from the schema derived\n"+
			"from the first row. --strict=false matches values by position instead;\n"+
			"token counts are always validated.")
}

// buildPipelineConfig resolves the pipeline configuration from positional
// arguments, flags, environment, and the optional msgprep.yaml file.
func buildPipelineConfig(cmd *cobra.Command, args []string, verbose bool) (msgprep.PipelineConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return msgprep.PipelineConfig{}, fmt.Errorf("load %s: %w: %w",
				config.ConfigFileName, msgprep.ErrInvalidConfig, err)
		}
		projectCfg = &config.ProjectConfig{}
	}

	cfg := msgprep.PipelineConfig{
		MessagesPath:   args[0],
		CategoriesPath: args[1],
		DatabasePath:   args[2],
		Strict:         processFlags.strict,
		Verbose:        verbose,
	}

	cfg.TableName = firstNonEmpty(processFlags.table, os.Getenv("MSGPREP_TABLE"), projectCfg.Table)
	cfg.Delimiter = firstNonEmpty(os.Getenv("MSGPREP_DELIMITER"), projectCfg.Delimiter)
	cfg.Placeholder = firstNonEmpty(os.Getenv("MSGPREP_PLACEHOLDER"), projectCfg.Placeholder)

	// msgprep.yaml may relax strict mode, but an explicit flag wins.
	if projectCfg.Strict != nil && !cmd.Flags().Changed("strict") {
		cfg.Strict = *projectCfg.Strict
	}

	cfg = cfg.WithDefaults()

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Configuration resolved:\n")
		fmt.Fprintf(os.Stderr, "  Messages: %s\n", cfg.MessagesPath)
		fmt.Fprintf(os.Stderr, "  Categories: %s\n", cfg.CategoriesPath)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DatabasePath)
		fmt.Fprintf(os.Stderr, "  Table: %s\n", cfg.TableName)
		fmt.Fprintf(os.Stderr, "  Strict: %t\n", cfg.Strict)
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func runProcess(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildPipelineConfig(cmd, args, verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewConsoleLogger(verbose)
	pipeline := services.NewPipelineService(
		func(ctx context.Context, path string) (services.Store, error) {
			return store.Connect(ctx, path)
		},
		logger,
	)

	if err := pipeline.Run(ctx, cfg); err != nil {
		return err
	}

	logger.Info("%s", term.Success("Cleaned data saved to database!"))
	return nil
}
