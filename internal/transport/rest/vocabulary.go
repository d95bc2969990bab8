package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/vocabulary"
)

type vocabularyService interface {
	List(ctx context.Context, input vocabulary.ListInput) ([]domain.VocabularyWord, error)
	Add(ctx context.Context, input vocabulary.AddWordInput) (*domain.VocabularyWord, error)
	Delete(ctx context.Context, id int64) error
	MarkReviewed(ctx context.Context, id int64) (*domain.VocabularyWord, error)
	Stats(ctx context.Context) (domain.VocabularyStats, error)
}

// VocabularyHandler serves /api/vocabulary.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type addWordRequest struct {
	Word string `json:"word"`
}

type wordListResponse struct {
	Success bool           `json:"success"`
	Data    []wordResponse `json:"data"`
	Count   int            `json:"count"`
}

// List handles GET /api/vocabulary?search=&sort=&limit=.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words, err := h.svc.List(r.Context(), vocabulary.ListInput{
		Search: r.URL.Query().Get("search"),
		Sort:   domain.VocabularySort(r.URL.Query().Get("sort")),
		Limit:  limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wordListResponse{
		Success: true,
		Data:    toWordResponses(words),
		Count:   len(words),
	})
}

// Stats handles GET /api/vocabulary/stats.
func (h *VocabularyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, vocabularyStatsResponse{
		Total:          stats.Total,
		ThisWeek:       stats.ThisWeek,
		ThisMonth:      stats.ThisMonth,
		AveragePerWeek: stats.AveragePerWeek,
	})
}

// Add handles POST /api/vocabulary.
func (h *VocabularyHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.Add(r.Context(), vocabulary.AddWordInput{Word: req.Word})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toWordResponse(*word))
}

// Delete handles DELETE /api/vocabulary/{id}.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeMessage(w, "Vocabulary word deleted successfully")
}

// Review handles PUT /api/vocabulary/{id}/review.
func (h *VocabularyHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.MarkReviewed(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toWordResponse(*word))
}
