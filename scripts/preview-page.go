package main

import (
	"fmt"
	"os"

	"github.com/marinfc/tournament-directory/internal/scraper"
)

// Parses a saved listings page and prints the extracted records, for
// eyeballing selector changes against real GotSoccer HTML:
//
//	curl -o page.html 'https://home.gotsoccer.com/events.aspx?type=tournament&state=CA'
//	go run ./scripts/preview-page.go page.html
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: preview-page <saved-listings.html>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := scraper.ParseListings(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing page: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No tournaments extracted. Selectors may need updating.")
		return
	}

	for _, r := range records {
		fmt.Printf("%s\n", r.Name)
		fmt.Printf("  Dates:    %s .. %s\n", r.StartDate, r.EndDate)
		if r.Location != "" {
			fmt.Printf("  Location: %s\n", r.Location)
		}
		if r.URL != "" {
			fmt.Printf("  URL:      %s\n", r.URL)
		}
	}
	fmt.Printf("\nTotal: %d tournaments\n", len(records))
}
