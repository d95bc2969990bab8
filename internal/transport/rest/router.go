package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Journal    *JournalHandler
	Vocabulary *VocabularyHandler
	Progress   *ProgressHandler
	Phrases    *PhraseHandler
	Notes      *NoteHandler
	Settings   *SettingsHandler
	Search     *SearchHandler
	Translate  *TranslateHandler
	Data       *DataHandler
}

// NewRouter registers all routes on a new ServeMux. An empty metricsPath
// leaves /metrics unmounted.
func NewRouter(h Handlers, metricsPath string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if metricsPath != "" {
		mux.Handle("GET "+metricsPath, promhttp.Handler())
	}

	mux.HandleFunc("GET /api/journal/entries", h.Journal.List)
	mux.HandleFunc("GET /api/journal/search", h.Journal.Search)
	mux.HandleFunc("POST /api/journal/entry", h.Journal.Create)
	mux.HandleFunc("GET /api/journal/entry/{id}", h.Journal.Get)
	mux.HandleFunc("PUT /api/journal/entry/{id}", h.Journal.Update)
	mux.HandleFunc("DELETE /api/journal/entry/{id}", h.Journal.Delete)

	mux.HandleFunc("GET /api/vocabulary", h.Vocabulary.List)
	mux.HandleFunc("GET /api/vocabulary/stats", h.Vocabulary.Stats)
	mux.HandleFunc("POST /api/vocabulary", h.Vocabulary.Add)
	mux.HandleFunc("DELETE /api/vocabulary/{id}", h.Vocabulary.Delete)
	mux.HandleFunc("PUT /api/vocabulary/{id}/review", h.Vocabulary.Review)

	mux.HandleFunc("GET /api/progress/stats", h.Progress.Stats)
	mux.HandleFunc("GET /api/progress/streak", h.Progress.Streak)
	mux.HandleFunc("GET /api/progress/history", h.Progress.History)
	mux.HandleFunc("GET /api/progress/chart-data", h.Progress.Chart)
	mux.HandleFunc("GET /api/progress/dashboard", h.Progress.Dashboard)
	mux.HandleFunc("GET /api/progress/days/{date}", h.Progress.Day)
	mux.HandleFunc("GET /api/progress/active-days", h.Progress.ActiveDays)

	mux.HandleFunc("GET /api/phrases", h.Phrases.List)
	mux.HandleFunc("POST /api/phrases", h.Phrases.Add)
	mux.HandleFunc("PUT /api/phrases/{id}/review", h.Phrases.Review)
	mux.HandleFunc("DELETE /api/phrases/{id}", h.Phrases.Delete)

	mux.HandleFunc("GET /api/notes", h.Notes.List)
	mux.HandleFunc("POST /api/notes", h.Notes.Create)
	mux.HandleFunc("GET /api/notes/{id}", h.Notes.Get)
	mux.HandleFunc("PUT /api/notes/{id}", h.Notes.Update)
	mux.HandleFunc("DELETE /api/notes/{id}", h.Notes.Delete)

	mux.HandleFunc("GET /api/settings", h.Settings.Get)
	mux.HandleFunc("PUT /api/settings", h.Settings.Update)

	mux.HandleFunc("GET /api/search", h.Search.Search)
	mux.HandleFunc("POST /api/translate", h.Translate.Translate)

	mux.HandleFunc("GET /api/data/export", h.Data.Export)
	mux.HandleFunc("POST /api/data/import", h.Data.Import)
	mux.HandleFunc("DELETE /api/data/clear", h.Data.Clear)

	return mux
}
