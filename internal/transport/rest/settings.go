package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/settings"
)

type settingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, input settings.UpdateInput) (domain.Settings, error)
}

// SettingsHandler serves /api/settings.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type updateSettingsRequest struct {
	DailyGoalMinutes  *int          `json:"daily_goal_minutes"`
	DailySentenceGoal *int          `json:"daily_sentence_goal"`
	Theme             *domain.Theme `json:"theme"`
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toSettingsResponse(st))
}

// Update handles PUT /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	st, err := h.svc.Update(r.Context(), settings.UpdateInput{
		DailyGoalMinutes:  req.DailyGoalMinutes,
		DailySentenceGoal: req.DailySentenceGoal,
		Theme:             req.Theme,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toSettingsResponse(st))
}
