// Package directory serves the merged tournament catalog over HTTP.
//
// The catalog is the scraped dataset merged with the manual one (scraped
// records win on conflicts), loaded from disk on demand and cached until
// either dataset file changes or a short TTL passes. Handlers layer
// optional filtering and an iCalendar export on top.
package directory

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marinfc/tournament-directory/internal/apperr"
	"github.com/marinfc/tournament-directory/internal/calendar"
	"github.com/marinfc/tournament-directory/internal/filter"
	"github.com/marinfc/tournament-directory/internal/logger"
	"github.com/marinfc/tournament-directory/internal/storage"
	"github.com/marinfc/tournament-directory/internal/tournament"
)

// Handler exposes the merged catalog and its calendar feed.
type Handler struct {
	store *storage.Storage
	cache *mergeCache
}

// NewHandler creates the directory handler backed by the given storage.
func NewHandler(store *storage.Storage) *Handler {
	return &Handler{
		store: store,
		cache: newMergeCache(defaultTTL),
	}
}

// Routes returns the chi router for the /tournaments resource.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Get("/calendar.ics", h.calendar)
	return r
}

// catalogResponse is the GET envelope. Tournaments is always present,
// never null.
type catalogResponse struct {
	LastUpdated string              `json:"lastUpdated"`
	Count       int                 `json:"count"`
	Tournaments []tournament.Record `json:"tournaments"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	records, lastUpdated, err := h.load()
	if err != nil {
		writeError(w, err)
		return
	}

	f := filterFromQuery(r)
	records = f.Apply(records)

	writeJSON(w, http.StatusOK, catalogResponse{
		LastUpdated: lastUpdated,
		Count:       len(records),
		Tournaments: records,
	})
}

func (h *Handler) calendar(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.load()
	if err != nil {
		writeError(w, err)
		return
	}

	// The feed carries the upcoming slice of the catalog; past seasons
	// would only clutter subscribers' calendars.
	f := &filter.Filter{Upcoming: true}
	records = f.Apply(records)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="tournaments.ics"`)
	_, _ = w.Write([]byte(calendar.GenerateICS(records, time.Now())))
}

// load returns the merged catalog, reusing the cache while the dataset
// files are unchanged.
func (h *Handler) load() ([]tournament.Record, string, error) {
	generation := h.store.Generation()
	if records, lastUpdated, ok := h.cache.Get(generation); ok {
		return records, lastUpdated, nil
	}

	scraped, err := h.store.LoadScraped()
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	manual, err := h.store.LoadManual()
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	merged := tournament.Merge(scraped.Tournaments, manual.Tournaments)
	h.cache.Set(generation, merged, scraped.LastUpdated)
	return merged, scraped.LastUpdated, nil
}

func filterFromQuery(r *http.Request) *filter.Filter {
	q := r.URL.Query()
	return &filter.Filter{
		Query:    q.Get("q"),
		Upcoming: q.Get("upcoming") == "true",
		Source:   q.Get("source"),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	ae := apperr.As(err)
	if ae == nil {
		ae = apperr.Internal(err)
	}

	if ae.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("directory request failed", logger.Fields{"code": ae.Code}, ae.Cause)
	}

	writeJSON(w, ae.HTTPStatus, errorResponse{Error: ae.Message})
}
