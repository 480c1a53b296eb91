package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/internmatch/internal/config"
	"github.com/vijay-prabhu/internmatch/internal/output"
	"github.com/vijay-prabhu/internmatch/internal/pipeline"
	"github.com/vijay-prabhu/internmatch/internal/rank"
	"github.com/vijay-prabhu/internmatch/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics over cached postings",
	Long: `Display aggregate statistics about the cached postings that pass
your filter criteria: stipend spread, relevance, age, remote share.

Examples:
  internmatch stats --skills=python,sql
  internmatch stats --skills=go -o json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringSliceVar(&searchSkills, "skills", nil, "Comma-separated skills (overrides config)")
	statsCmd.Flags().Float64Var(&searchMinStipend, "min-stipend", -1, "Minimum monthly stipend")
	statsCmd.Flags().IntVar(&searchMaxAge, "max-age", 0, "Maximum posting age in days (999 = unlimited)")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts := pipelineOptions(cfg)
	// Stats cover the whole filtered set, not a page of it.
	opts.TopN = -1

	db, err := store.Open(cfg.Cache.Path)
	if err != nil {
		return fmt.Errorf("failed to open posting cache: %w", err)
	}
	defer db.Close()

	postings, err := db.ListRecent(ctx, time.Now().Add(-cfg.Cache.MaxAge()))
	if err != nil {
		return fmt.Errorf("failed to read posting cache: %w", err)
	}
	if len(postings) == 0 {
		fmt.Println("Posting cache is empty. Run 'internmatch search' first.")
		return nil
	}

	result, err := pipeline.Run(postings, opts)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, rank.Summarize(result.Postings))
}
