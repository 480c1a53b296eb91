package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/vijay-prabhu/internmatch/internal/posting"
	"github.com/vijay-prabhu/internmatch/internal/rank"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []rank.ScoredPosting:
		return rankedTable(w, v)
	case []posting.Posting:
		return postingsTable(w, v)
	case rank.Summary:
		return summaryTable(w, v)
	case *rank.Summary:
		return summaryTable(w, *v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func rankedTable(w io.Writer, scored []rank.ScoredPosting) error {
	if len(scored) == 0 {
		fmt.Fprintln(w, "No postings matched your criteria.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("#", "TITLE", "COMPANY", "LOCATION", "STIPEND", "AGE", "RELEVANCE", "SCORE")

	for i, s := range scored {
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			truncate(s.Title, 40),
			truncate(s.Company, 22),
			truncate(s.Location, 18),
			formatStipend(s.Stipend),
			formatAge(s.Posting),
			fmt.Sprintf("%.1f/10", s.Relevance),
			fmt.Sprintf("%.2f", s.FinalScore),
		}); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	for i, s := range scored {
		fmt.Fprintf(w, "%2d. %s\n", i+1, s.ApplyURL)
	}
	return nil
}

func postingsTable(w io.Writer, postings []posting.Posting) error {
	if len(postings) == 0 {
		fmt.Fprintln(w, "No postings found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("TITLE", "COMPANY", "LOCATION", "STIPEND", "AGE", "SOURCE")

	for _, p := range postings {
		if err := table.Append([]string{
			truncate(p.Title, 40),
			truncate(p.Company, 22),
			truncate(p.Location, 18),
			formatStipend(p.Stipend),
			formatAge(p),
			p.Source,
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func summaryTable(w io.Writer, s rank.Summary) error {
	fmt.Fprintln(w, "Posting Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Total postings:         %d\n", s.Total)
	fmt.Fprintf(w, "Avg stipend:            %s\n", formatStipend(s.AvgStipend))
	fmt.Fprintf(w, "Max stipend:            %s\n", formatStipend(s.MaxStipend))
	fmt.Fprintf(w, "Min stipend:            %s\n", formatStipend(s.MinStipend))
	fmt.Fprintf(w, "Avg relevance:          %.2f/10\n", s.AvgRelevance)
	fmt.Fprintf(w, "Avg age:                %.1f days\n", s.AvgAgeDays)
	fmt.Fprintf(w, "Remote postings:        %d\n", s.RemoteCount)
	fmt.Fprintf(w, "Prestigious companies:  %d\n", s.PrestigiousHits)
	fmt.Fprintf(w, "Recent (<=3 days):      %d\n", s.RecentCount)
	return nil
}

func formatStipend(stipend float64) string {
	if stipend <= 0 {
		return "-"
	}
	return fmt.Sprintf("$%s/mo", humanize.CommafWithDigits(stipend, 0))
}

func formatAge(p posting.Posting) string {
	if !p.HasAge() {
		return "unknown"
	}
	switch {
	case p.AgeDays == 0:
		return "today"
	case p.AgeDays == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%dd ago", p.AgeDays)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
