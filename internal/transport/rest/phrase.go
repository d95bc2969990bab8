package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/phrase"
)

type phraseService interface {
	List(ctx context.Context) (*phrase.ListResult, error)
	Add(ctx context.Context, input phrase.AddInput) (*domain.Phrase, error)
	Review(ctx context.Context, id int64) (*domain.Phrase, error)
	Delete(ctx context.Context, id int64) error
}

// PhraseHandler serves /api/phrases.
type PhraseHandler struct {
	svc phraseService
	log *slog.Logger
}

// NewPhraseHandler creates a PhraseHandler.
func NewPhraseHandler(svc phraseService, logger *slog.Logger) *PhraseHandler {
	return &PhraseHandler{svc: svc, log: logger.With("handler", "phrase")}
}

type addPhraseRequest struct {
	English string `json:"english"`
	German  string `json:"german"`
}

type phraseCounts struct {
	Total   int `json:"total"`
	BuiltIn int `json:"builtin"`
	Custom  int `json:"custom"`
}

type phraseListResponse struct {
	Success bool             `json:"success"`
	Data    []phraseResponse `json:"data"`
	Count   phraseCounts     `json:"count"`
}

// List handles GET /api/phrases.
func (h *PhraseHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	data := make([]phraseResponse, 0, len(res.Phrases))
	for _, p := range res.Phrases {
		data = append(data, toPhraseResponse(p))
	}
	writeJSON(w, http.StatusOK, phraseListResponse{
		Success: true,
		Data:    data,
		Count: phraseCounts{
			Total:   len(data),
			BuiltIn: res.BuiltIn,
			Custom:  res.Custom,
		},
	})
}

// Add handles POST /api/phrases.
func (h *PhraseHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addPhraseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Add(r.Context(), phrase.AddInput{English: req.English, German: req.German})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toPhraseResponse(*p))
}

// Review handles PUT /api/phrases/{id}/review.
func (h *PhraseHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Review(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toPhraseResponse(*p))
}

// Delete handles DELETE /api/phrases/{id}.
func (h *PhraseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, "Custom phrase deleted successfully")
}
