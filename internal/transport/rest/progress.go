package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

type progressService interface {
	Stats(ctx context.Context) (domain.ProgressStats, error)
	Streak(ctx context.Context) (domain.Streak, error)
	History(ctx context.Context, days int) ([]domain.DailyProgress, error)
	ChartData(ctx context.Context, days int) (domain.ChartData, error)
	Dashboard(ctx context.Context) (domain.ProgressDashboard, error)
	Day(ctx context.Context, date time.Time) (domain.DailyProgress, error)
	ActiveDays(ctx context.Context) ([]time.Time, error)
}

// ProgressHandler serves /api/progress.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

// Stats handles GET /api/progress/stats.
func (h *ProgressHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toProgressStatsResponse(stats))
}

// Streak handles GET /api/progress/streak.
func (h *ProgressHandler) Streak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.svc.Streak(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toStreakResponse(streak))
}

// History handles GET /api/progress/history?days=.
func (h *ProgressHandler) History(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	history, err := h.svc.History(r.Context(), days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toDayResponses(history))
}

// Chart handles GET /api/progress/chart-data?days=.
func (h *ProgressHandler) Chart(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	chart, err := h.svc.ChartData(r.Context(), days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toChartResponse(chart))
}

// Dashboard handles GET /api/progress/dashboard.
func (h *ProgressHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, dashboardResponse{
		Stats:   toProgressStatsResponse(d.Stats),
		Streak:  toStreakResponse(d.Streak),
		History: toDayResponses(d.History),
	})
}

// Day handles GET /api/progress/days/{date}.
func (h *ProgressHandler) Day(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDay(r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("date", "must be a date in YYYY-MM-DD format"))
		return
	}

	day, err := h.svc.Day(r.Context(), date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toDayResponse(day))
}

// ActiveDays handles GET /api/progress/active-days.
func (h *ProgressHandler) ActiveDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.svc.ActiveDays(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, domain.FormatDay(d))
	}
	writeData(w, http.StatusOK, out)
}
