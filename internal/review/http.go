package review

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marinfc/tournament-directory/internal/apperr"
	"github.com/marinfc/tournament-directory/internal/logger"
)

// Handler exposes the ledger over HTTP. All routes answer on the
// collection path itself; delete takes its target from the request body,
// not the URL, matching the deployed API shape.
type Handler struct {
	svc *Service
}

// NewHandler creates the HTTP handler for the review ledger.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes returns the chi router for the /reviews resource.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Post("/", h.upsert)
	r.Delete("/", h.delete)
	return r
}

// listResponse is the GET envelope. Reviews is always present, never null.
type listResponse struct {
	Reviews []Review `json:"reviews"`
}

// upsertResponse is the POST success envelope.
type upsertResponse struct {
	Status string `json:"status"`
	Review Review `json:"review"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type deleteRequest struct {
	ID       string `json:"id"`
	Reviewer string `json:"reviewer"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Reviews: reviews})
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var incoming Review
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		writeError(w, apperr.Validation("Invalid request body"))
		return
	}

	stored, err := h.svc.Upsert(r.Context(), incoming)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, upsertResponse{Status: "success", Review: stored})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("Invalid request body"))
		return
	}

	if err := h.svc.Delete(r.Context(), req.ID, req.Reviewer); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps a domain error to its HTTP status and a client-safe
// message. Unclassified errors become 500s with their cause kept to the
// server logs.
func writeError(w http.ResponseWriter, err error) {
	ae := apperr.As(err)
	if ae == nil {
		ae = apperr.Internal(err)
	}

	if ae.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("review request failed", logger.Fields{"code": ae.Code}, ae.Cause)
	}

	writeJSON(w, ae.HTTPStatus, errorResponse{Error: ae.Message})
}
