package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/marinfc/tournament-directory/internal/tournament"
)

const (
	// ScrapedFile is the dataset snapshot written by the scraper.
	ScrapedFile = "tournaments.json"
	// ManualFile is the hand-maintained dataset. It is externally authored
	// and read-only to this code.
	ManualFile = "manual-tournaments.json"
)

// Dataset is the persisted tournament dataset envelope.
type Dataset struct {
	LastUpdated string              `json:"lastUpdated"`
	Source      string              `json:"source"`
	State       string              `json:"state"`
	Count       int                 `json:"count"`
	Tournaments []tournament.Record `json:"tournaments"`
}

// Storage handles persistence of tournament datasets
type Storage struct {
	dataDir string
}

// New creates a new Storage instance rooted at dataDir, creating the
// directory if needed. A leading ~/ expands to the home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// ScrapedPath returns the path of the scraped dataset file.
func (s *Storage) ScrapedPath() string {
	return filepath.Join(s.dataDir, ScrapedFile)
}

// ManualPath returns the path of the manual dataset file.
func (s *Storage) ManualPath() string {
	return filepath.Join(s.dataDir, ManualFile)
}

// SaveScraped writes the scraped dataset snapshot with a fresh run timestamp
// and record count.
func (s *Storage) SaveScraped(records []tournament.Record, sourceLabel, state string) error {
	ds := &Dataset{
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Source:      sourceLabel,
		State:       state,
		Count:       len(records),
		Tournaments: records,
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	if err := os.WriteFile(s.ScrapedPath(), data, 0644); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	return nil
}

// LoadScraped loads the scraped dataset. A missing file yields an empty
// dataset, not an error.
func (s *Storage) LoadScraped() (*Dataset, error) {
	return loadDataset(s.ScrapedPath())
}

// LoadManual loads the manual dataset. A missing file yields an empty
// dataset, not an error: the manual list is optional.
func (s *Storage) LoadManual() (*Dataset, error) {
	return loadDataset(s.ManualPath())
}

// Generation returns an opaque token that changes whenever either dataset
// file is rewritten, used to invalidate cached merges.
func (s *Storage) Generation() string {
	return fileStamp(s.ScrapedPath()) + "|" + fileStamp(s.ManualPath())
}

func fileStamp(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "absent"
	}
	return strconv.FormatInt(info.ModTime().UnixNano(), 10)
}

func loadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Dataset{Tournaments: []tournament.Record{}}, nil
		}
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	if ds.Tournaments == nil {
		ds.Tournaments = []tournament.Record{}
	}

	return &ds, nil
}
