package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vijay-prabhu/internmatch/internal/posting"
	"github.com/vijay-prabhu/internmatch/internal/rank"
)

// scoredHeader names every posting field plus the four sub-scores and the
// final score, one record per row.
var scoredHeader = []string{
	"title", "company", "location", "stipend", "days_old",
	"relevance_score", "apply_url", "description", "source",
	"relevance_normalized", "stipend_normalized",
	"recency_normalized", "reputation_normalized", "final_score",
}

var postingHeader = []string{
	"title", "company", "location", "stipend", "days_old",
	"relevance_score", "apply_url", "description", "source",
}

// CSVStdout writes data as CSV to stdout.
func CSVStdout(data interface{}) error {
	return CSVTo(os.Stdout, data)
}

// CSVTo writes data as CSV with a header row to the given writer.
func CSVTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []rank.ScoredPosting:
		return scoredCSV(w, v)
	case []posting.Posting:
		return postingsCSV(w, v)
	default:
		return fmt.Errorf("unsupported data type for csv output: %T", data)
	}
}

func scoredCSV(w io.Writer, scored []rank.ScoredPosting) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(scoredHeader); err != nil {
		return err
	}

	for _, s := range scored {
		row := append(postingRow(s.Posting),
			formatFloat(s.RelevanceNorm),
			formatFloat(s.StipendNorm),
			formatFloat(s.RecencyNorm),
			formatFloat(s.ReputationNorm),
			formatFloat(s.FinalScore),
		)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func postingsCSV(w io.Writer, postings []posting.Posting) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(postingHeader); err != nil {
		return err
	}

	for _, p := range postings {
		if err := cw.Write(postingRow(p)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func postingRow(p posting.Posting) []string {
	return []string{
		p.Title,
		p.Company,
		p.Location,
		formatFloat(p.Stipend),
		strconv.Itoa(p.AgeDays),
		formatFloat(p.Relevance),
		p.ApplyURL,
		p.Description,
		p.Source,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
