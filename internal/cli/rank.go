package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/internmatch/internal/config"
	"github.com/vijay-prabhu/internmatch/internal/output"
	"github.com/vijay-prabhu/internmatch/internal/pipeline"
	"github.com/vijay-prabhu/internmatch/internal/posting"
	"github.com/vijay-prabhu/internmatch/internal/rank"
)

var rankCmd = &cobra.Command{
	Use:   "rank <postings.json>",
	Short: "Rank postings from a JSON file (no network)",
	Long: `Run the scoring pipeline over a JSON array of raw posting records.
Useful for re-ranking exported data or postings from other tools.

Each record may carry title, company, location, description, apply_url,
date_posted, stipend, days_old and relevance_score; anything missing is
substituted with conservative defaults.

Examples:
  internmatch rank postings.json --skills=python,sql
  internmatch rank postings.json --skills=go --top=10 -o csv
  internmatch rank postings.json --skills=python --export=results.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringSliceVar(&searchSkills, "skills", nil, "Comma-separated skills (overrides config)")
	rankCmd.Flags().Float64Var(&searchMinStipend, "min-stipend", -1, "Minimum monthly stipend")
	rankCmd.Flags().IntVar(&searchMaxAge, "max-age", 0, "Maximum posting age in days (999 = unlimited)")
	rankCmd.Flags().IntVar(&searchTopN, "top", 0, "Number of results to return")
	rankCmd.Flags().StringVar(&searchCategory, "category", "", "Category view (high_stipend, recent, high_relevance, prestigious)")
	rankCmd.Flags().StringVar(&searchExport, "export", "", "Write results as CSV to this file")
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts := pipelineOptions(cfg)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read postings file: %w", err)
	}

	var raws []posting.Raw
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("failed to parse postings file: %w", err)
	}

	postings := posting.FromRawBatch(raws, opts.Skills, time.Now())

	result, err := pipeline.Run(postings, opts)
	if err != nil {
		return err
	}

	ranked := result.Postings
	if searchCategory != "" {
		category, err := rank.ParseCategory(searchCategory)
		if err != nil {
			return err
		}
		ranked = rank.TopByCategory(ranked, category, opts.TopN)
	}

	if len(ranked) == 0 {
		fmt.Printf("0 of %d postings matched your criteria.\n", result.Total)
		return nil
	}

	if searchExport != "" {
		if err := exportCSVFile(searchExport, ranked); err != nil {
			return err
		}
		fmt.Printf("Wrote %d postings to %s\n", len(ranked), searchExport)
	}

	return output.Output(outputFmt, ranked)
}
