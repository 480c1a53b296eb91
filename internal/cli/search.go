package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vijay-prabhu/internmatch/internal/config"
	"github.com/vijay-prabhu/internmatch/internal/fetch"
	"github.com/vijay-prabhu/internmatch/internal/output"
	"github.com/vijay-prabhu/internmatch/internal/pipeline"
	"github.com/vijay-prabhu/internmatch/internal/posting"
	"github.com/vijay-prabhu/internmatch/internal/rank"
	"github.com/vijay-prabhu/internmatch/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Fetch, filter and rank internship postings",
	Long: `Fetch internship postings from the configured job boards, score them
against your skills, and print the ranked top-N list.

Examples:
  internmatch search --skills=python,sql
  internmatch search --skills=go --min-stipend=1500 --max-age=14
  internmatch search --skills=python --category=high_stipend
  internmatch search --skills=python --offline      # rank cached postings
  internmatch search --skills=python --export=results.csv`,
	RunE: runSearch,
}

var (
	searchSkills     []string
	searchLocation   string
	searchMinStipend float64
	searchMaxAge     int
	searchTopN       int
	searchCategory   string
	searchExport     string
	searchOffline    bool
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringSliceVar(&searchSkills, "skills", nil, "Comma-separated skills (overrides config)")
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "Preferred location (overrides config)")
	searchCmd.Flags().Float64Var(&searchMinStipend, "min-stipend", -1, "Minimum monthly stipend")
	searchCmd.Flags().IntVar(&searchMaxAge, "max-age", 0, "Maximum posting age in days (999 = unlimited)")
	searchCmd.Flags().IntVar(&searchTopN, "top", 0, "Number of results to return")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Category view (high_stipend, recent, high_relevance, prestigious)")
	searchCmd.Flags().StringVar(&searchExport, "export", "", "Write results as CSV to this file")
	searchCmd.Flags().BoolVar(&searchOffline, "offline", false, "Rank cached postings instead of fetching")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts := pipelineOptions(cfg)

	db, err := store.Open(cfg.Cache.Path)
	if err != nil {
		return fmt.Errorf("failed to open posting cache: %w", err)
	}
	defer db.Close()

	var postings []posting.Posting
	if searchOffline {
		postings, err = db.ListRecent(ctx, time.Now().Add(-cfg.Cache.MaxAge()))
		if err != nil {
			return fmt.Errorf("failed to read posting cache: %w", err)
		}
		if len(postings) == 0 {
			return errors.New("no results available: posting cache is empty, run without --offline first")
		}
	} else {
		postings, err = fetchPostings(cmd, cfg, opts.Skills)
		if err != nil {
			if errors.Is(err, fetch.ErrNoPostings) {
				return errors.New("no results available: every source failed or returned nothing")
			}
			return err
		}

		if err := db.SavePostings(ctx, postings); err != nil {
			logger.Warn("failed to cache postings", zap.Error(err))
		}
		if pruned, err := db.Prune(ctx, time.Now().Add(-cfg.Cache.MaxAge())); err == nil && pruned > 0 {
			logger.Debug("pruned stale cache entries", zap.Int64("count", pruned))
		}
	}

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
		fmt.Printf("0 of %d postings matched your criteria. Try loosening --min-stipend or --max-age.\n", result.Total)
		return nil
	}

	if searchExport != "" {
		if err := exportCSVFile(searchExport, ranked); err != nil {
			return err
		}
		fmt.Printf("Wrote %d postings to %s\n", len(ranked), searchExport)
	}

	fmt.Printf("Showing %d of %d postings (%d passed filters)\n\n",
		len(ranked), result.Total, result.Filtered)
	return output.Output(outputFmt, ranked)
}

// pipelineOptions merges explicit flags over the config file.
func pipelineOptions(cfg *config.Config) pipeline.Options {
	opts := pipeline.Options{
		Skills:     cfg.Search.Skills,
		MinStipend: cfg.Search.MinStipend,
		MaxAgeDays: cfg.Search.MaxAgeDays,
		TopN:       cfg.Search.TopN,
	}

	if len(searchSkills) > 0 {
		opts.Skills = searchSkills
	}
	if searchMinStipend >= 0 {
		opts.MinStipend = searchMinStipend
	}
	if searchMaxAge > 0 {
		opts.MaxAgeDays = searchMaxAge
	}
	if searchTopN > 0 {
		opts.TopN = searchTopN
	}

	return opts
}

func fetchPostings(cmd *cobra.Command, cfg *config.Config, skills []string) ([]posting.Posting, error) {
	sources, err := buildSources(cfg.Fetch.Sources)
	if err != nil {
		return nil, err
	}

	location := cfg.Search.Location
	if searchLocation != "" {
		location = searchLocation
	}

	fetchCfg := fetch.Config{
		Location:   location,
		MaxResults: cfg.Fetch.MaxResults,
		Delay:      cfg.Fetch.Delay(),
	}

	// Progress bar only on a real terminal, so piped output stays clean.
	var bar *pb.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) && !verbose {
		fetchCfg.Progress = func(done, total int) {
			if bar == nil {
				bar = pb.StartNew(total)
			}
			bar.SetCurrent(int64(done))
		}
	}

	fetcher := fetch.New(sources, fetchCfg, logger)
	postings, err := fetcher.Fetch(cmd.Context(), skills)
	if bar != nil {
		bar.Finish()
	}
	return postings, err
}

func buildSources(names []string) ([]fetch.Source, error) {
	sources := make([]fetch.Source, 0, len(names))
	for _, name := range names {
		switch name {
		case "linkedin":
			sources = append(sources, fetch.NewLinkedInSource())
		case "remotive":
			sources = append(sources, fetch.NewRemotiveSource())
		default:
			return nil, fmt.Errorf("unknown fetch source: %q", name)
		}
	}
	return sources, nil
}

func exportCSVFile(path string, ranked []rank.ScoredPosting) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	return output.CSVTo(f, ranked)
}
