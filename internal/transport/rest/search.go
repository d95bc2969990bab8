package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

type searchService interface {
	Search(ctx context.Context, term string) (*domain.SearchResult, error)
}

// SearchHandler serves the unified /api/search endpoint.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /api/search?q=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toSearchResponse(res))
}
