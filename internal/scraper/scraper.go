package scraper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dghubble/sling"
	"github.com/marinfc/tournament-directory/internal/logger"
	"github.com/marinfc/tournament-directory/internal/tournament"
)

const (
	// ListingsHost is the upstream host, used to resolve relative links.
	ListingsHost = "https://home.gotsoccer.com"
	// ListingsURL is the paginated tournament listings endpoint.
	ListingsURL = ListingsHost + "/events.aspx"
	// UserAgent identifies the scraper to the upstream source.
	UserAgent = "tournament-directory-scraper/1.0 (github.com/marinfc/tournament-directory)"
	// Timeout bounds a single page fetch.
	Timeout = 30 * time.Second

	// State restricts the scrape to California listings.
	State = "CA"
	// MonthsAhead is the forward window of first-of-month date filters.
	MonthsAhead = 6
	// MaxPages caps pagination within a single month.
	MaxPages = 10

	// pageDelay is the politeness delay between page fetches.
	pageDelay = 500 * time.Millisecond
)

// listingParams is the query string for one listings page. Field names
// mirror the upstream search form, including its capitalized Page.
type listingParams struct {
	Type     string `url:"type"`
	Search   string `url:"search"`
	State    string `url:"state"`
	Date     string `url:"date"`
	Age      string `url:"age"`
	Featured string `url:"featured"`
	Page     int    `url:"Page"`
}

// Scraper fetches and parses paginated tournament listings
type Scraper struct {
	client *http.Client
	base   *sling.Sling
	state  string
	delay  time.Duration
}

// RunStats summarizes one scrape run for reporting.
type RunStats struct {
	MonthsVisited int `json:"months_visited"`
	PagesFetched  int `json:"pages_fetched"`
	PageFailures  int `json:"page_failures"`
	Records       int `json:"records"`
}

// New creates a Scraper against the production listings endpoint.
func New() *Scraper {
	return NewWithOptions(ListingsURL, pageDelay)
}

// NewWithOptions creates a Scraper with an explicit endpoint and politeness
// delay. Tests point this at a local server with a zero delay.
func NewWithOptions(baseURL string, delay time.Duration) *Scraper {
	client := &http.Client{Timeout: Timeout}
	return &Scraper{
		client: client,
		base:   sling.New().Client(client).Base(baseURL).Set("User-Agent", UserAgent),
		state:  State,
		delay:  delay,
	}
}

// FetchPage fetches and parses one listings page for a month anchor.
func (s *Scraper) FetchPage(date string, page int) ([]tournament.Record, error) {
	params := &listingParams{
		Type:  "Tournament",
		State: s.state,
		Date:  date,
		Page:  page,
	}

	req, err := s.base.New().Get("").QueryStruct(params).Request()
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ParseListings(resp.Body)
}

// ScrapeAll walks the forward month window, paginating each month until a
// page yields no records, and accumulates deduplicated records keyed by
// lowercased name plus start date.
//
// Page failures are absorbed: a failed fetch is logged, counted, and treated
// like an empty page (the month's pagination is abandoned, the run
// continues). A partial directory beats a failed run.
func (s *Scraper) ScrapeAll() ([]tournament.Record, *RunStats) {
	stats := &RunStats{}
	byKey := make(map[string]tournament.Record)
	keys := make([]string, 0)

	for _, date := range monthAnchors(time.Now(), MonthsAhead) {
		stats.MonthsVisited++

		for page := 1; page <= MaxPages; page++ {
			records, err := s.FetchPage(date, page)
			stats.PagesFetched++

			if err != nil {
				stats.PageFailures++
				logger.Warn("page fetch failed, abandoning month", logger.Fields{
					"date":  date,
					"page":  page,
					"error": err.Error(),
				})
				logger.IncrCounter("scrape.page_failures")
				break
			}

			logger.IncrCounter("scrape.pages_fetched")

			// An empty page means this month's pagination is exhausted
			if len(records) == 0 {
				break
			}

			for _, r := range records {
				key := tournament.Key(r)
				if _, dup := byKey[key]; !dup {
					r.ID = tournament.GenerateID(r)
					byKey[key] = r
					keys = append(keys, key)
				}
			}

			time.Sleep(s.delay)
		}
	}

	// Preserve first-seen order for records sharing a start date
	out := make([]tournament.Record, 0, len(keys))
	for _, key := range keys {
		out = append(out, byKey[key])
	}
	tournament.SortByStartDate(out)

	stats.Records = len(out)
	return out, stats
}

// monthAnchors returns first-of-month date filters ("M/1/YYYY") for the
// given number of months starting with the month containing now.
func monthAnchors(now time.Time, months int) []string {
	anchors := make([]string, 0, months)
	for i := 0; i < months; i++ {
		d := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		anchors = append(anchors, fmt.Sprintf("%d/1/%d", int(d.Month()), d.Year()))
	}
	return anchors
}
