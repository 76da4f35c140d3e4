package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/marinfc/tournament-directory/internal/scraper"
	"github.com/marinfc/tournament-directory/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// sourceLabel is the provenance string written into the dataset envelope.
const sourceLabel = "GotSoccer (home.gotsoccer.com)"

var (
	flagDataDir string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament-scraper",
		Short: "Scrape California youth soccer tournaments from GotSoccer",
		Long: `Scrapes the GotSoccer tournament listings for California, walking six
months of first-of-month date filters with up to ten pages each, and
writes the deduplicated dataset snapshot to the data directory.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagDataDir, "data-dir", "./data", "Directory for dataset snapshots")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Scraping %s listings from %s\n", scraper.State, scraper.ListingsURL)
		fmt.Fprintf(os.Stderr, "Data directory: %s\n", flagDataDir)
	}

	sc := scraper.New()
	records, stats := sc.ScrapeAll()

	if err := store.SaveScraped(records, sourceLabel, scraper.State); err != nil {
		return fmt.Errorf("saving dataset: %w", err)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Saved %d records to %s\n", len(records), store.ScrapedPath())
	}

	result := &RunResult{
		ScrapedAt:     time.Now().UTC(),
		State:         scraper.State,
		MonthsVisited: stats.MonthsVisited,
		PagesFetched:  stats.PagesFetched,
		PageFailures:  stats.PageFailures,
		Records:       len(records),
		OutputFile:    store.ScrapedPath(),
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
