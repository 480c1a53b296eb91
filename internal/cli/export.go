package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/internmatch/internal/config"
	"github.com/vijay-prabhu/internmatch/internal/output"
	"github.com/vijay-prabhu/internmatch/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export cached postings to CSV or JSON",
	Long: `Export the raw cached postings (before filtering/ranking) to stdout.

Supported formats:
  - csv: Comma-separated values (spreadsheet-compatible)
  - json: JSON array of posting objects

Examples:
  internmatch export --format=csv > postings.csv
  internmatch export --format=json > postings.json`,
	RunE: runExport,
}

var exportFormat string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv, json)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Cache.Path)
	if err != nil {
		return fmt.Errorf("failed to open posting cache: %w", err)
	}
	defer db.Close()

	postings, err := db.ListRecent(ctx, time.Now().Add(-cfg.Cache.MaxAge()))
	if err != nil {
		return fmt.Errorf("failed to read posting cache: %w", err)
	}

	switch exportFormat {
	case "csv":
		return output.CSVStdout(postings)
	case "json":
		return output.JSON(postings)
	default:
		return fmt.Errorf("unknown format: %s (use csv or json)", exportFormat)
	}
}
