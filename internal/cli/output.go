package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// RunResult summarizes one scrape run for reporting.
type RunResult struct {
	ScrapedAt     time.Time `json:"scraped_at"`
	State         string    `json:"state"`
	MonthsVisited int       `json:"months_visited"`
	PagesFetched  int       `json:"pages_fetched"`
	PageFailures  int       `json:"page_failures"`
	Records       int       `json:"records"`
	OutputFile    string    `json:"output_file"`
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *RunResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *RunResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *RunResult) error {
	if result.Records == 0 {
		fmt.Fprintln(w, "No tournaments found.")
	} else {
		fmt.Fprintf(w, "Scraped %d tournaments (%s).\n", result.Records, result.State)
	}

	fmt.Fprintf(w, "Months visited: %d\n", result.MonthsVisited)
	fmt.Fprintf(w, "Pages fetched:  %d\n", result.PagesFetched)
	if result.PageFailures > 0 {
		fmt.Fprintf(w, "Page failures:  %d\n", result.PageFailures)
	}
	fmt.Fprintf(w, "Dataset: %s\n", result.OutputFile)

	return nil
}
