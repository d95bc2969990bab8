package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tagebuch-backend/internal/adapter/provider/translate"
	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

const maxTranslateLength = 5000

type translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// TranslateHandler serves /api/translate.
type TranslateHandler struct {
	tr  translator
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(tr translator, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{tr: tr, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type translateResponse struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	Target      string `json:"target"`
}

// Translate handles POST /api/translate. Target is "de" (default) or "en".
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var errs []domain.FieldError
	text := strings.TrimSpace(req.Text)
	switch {
	case text == "":
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	case utf8.RuneCountInString(text) > maxTranslateLength:
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 5000 characters"})
	}

	var target string
	switch strings.ToLower(strings.TrimSpace(req.Target)) {
	case "", "de", "german":
		target = translate.German
	case "en", "english":
		target = translate.English
	default:
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be de or en"})
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	out, err := h.tr.Translate(r.Context(), text, target)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, translateResponse{Text: text, Translation: out, Target: target})
}
