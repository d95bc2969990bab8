package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/journal"
)

type journalService interface {
	Create(ctx context.Context, input journal.CreateInput) (*journal.WriteResult, error)
	Update(ctx context.Context, input journal.UpdateInput) (*journal.WriteResult, error)
	Get(ctx context.Context, id int64) (*domain.JournalEntry, error)
	List(ctx context.Context, input journal.ListInput) (*journal.ListResult, error)
	Search(ctx context.Context, input journal.SearchInput) ([]domain.JournalEntry, error)
	Delete(ctx context.Context, id int64) error
}

// JournalHandler serves /api/journal.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type createEntryRequest struct {
	EnglishText     string `json:"english_text"`
	GermanText      string `json:"german_text"`
	SessionDuration int    `json:"session_duration"`
}

type updateEntryRequest struct {
	EnglishText *string `json:"english_text"`
	GermanText  *string `json:"german_text"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type entryListResponse struct {
	Success    bool            `json:"success"`
	Data       []entryResponse `json:"data"`
	Pagination pagination      `json:"pagination"`
}

type entrySearchResponse struct {
	Success bool            `json:"success"`
	Data    []entryResponse `json:"data"`
	Count   int             `json:"count"`
}

// List handles GET /api/journal/entries?page=&limit=&sort=.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.List(r.Context(), journal.ListInput{
		Page:  page,
		Limit: limit,
		Sort:  domain.JournalSort(r.URL.Query().Get("sort")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entryListResponse{
		Success: true,
		Data:    toEntryResponses(res.Entries),
		Pagination: pagination{
			Page:  res.Page,
			Limit: res.Limit,
			Total: res.Total,
			Pages: res.Pages,
		},
	})
}

// Get handles GET /api/journal/entry/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toEntryResponse(*entry))
}

// Create handles POST /api/journal/entry.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Create(r.Context(), journal.CreateInput{
		EnglishText:     req.EnglishText,
		GermanText:      req.GermanText,
		SessionDuration: req.SessionDuration,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toEntryWriteResponse(res.Entry, res.NewWords))
}

// Update handles PUT /api/journal/entry/{id}.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Update(r.Context(), journal.UpdateInput{
		ID:          id,
		EnglishText: req.EnglishText,
		GermanText:  req.GermanText,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toEntryWriteResponse(res.Entry, res.NewWords))
}

// Delete handles DELETE /api/journal/entry/{id}.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeMessage(w, "Journal entry deleted successfully")
}

// Search handles GET /api/journal/search?q=&startDate=&endDate=.
func (h *JournalHandler) Search(w http.ResponseWriter, r *http.Request) {
	start, err := queryDay(r, "startDate")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	end, err := queryDay(r, "endDate")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.Search(r.Context(), journal.SearchInput{
		Query:     r.URL.Query().Get("q"),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entrySearchResponse{
		Success: true,
		Data:    toEntryResponses(entries),
		Count:   len(entries),
	})
}
