package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres"
	journalrepo "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres/journal"
	noterepo "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres/note"
	phraserepo "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres/phrase"
	progressrepo "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres/progress"
	settingsrepo "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres/settings"
	vocabularyrepo "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/tagebuch-backend/internal/config"
	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/backup"
	"github.com/heartmarshall/tagebuch-backend/internal/service/journal"
	"github.com/heartmarshall/tagebuch-backend/internal/service/note"
	"github.com/heartmarshall/tagebuch-backend/internal/service/phrase"
	"github.com/heartmarshall/tagebuch-backend/internal/service/progress"
	"github.com/heartmarshall/tagebuch-backend/internal/service/search"
	"github.com/heartmarshall/tagebuch-backend/internal/service/settings"
	"github.com/heartmarshall/tagebuch-backend/internal/service/vocabulary"
)

// EventPublisher receives journal events after commit.
type EventPublisher interface {
	PublishEntryCreated(ctx context.Context, event domain.EntryCreatedEvent) error
}

// Services holds every domain service built on one connection pool.
type Services struct {
	Vocabulary *vocabulary.Service
	Progress   *progress.Service
	Journal    *journal.Service
	Phrases    *phrase.Service
	Notes      *note.Service
	Settings   *settings.Service
	Search     *search.Service
	Backup     *backup.Service
}

// NewServices wires repositories and services. The server and cmd/import
// share it so both write through the same paths.
func NewServices(
	cfg *config.Config,
	pool *pgxpool.Pool,
	events EventPublisher,
	clock clockwork.Clock,
	logger *slog.Logger,
) *Services {
	tx := postgres.NewTxManager(pool)

	entries := journalrepo.New(pool)
	words := vocabularyrepo.New(pool)
	days := progressrepo.New(pool)
	phrases := phraserepo.New(pool)
	notes := noterepo.New(pool)
	prefs := settingsrepo.New(pool)

	vocabularySvc := vocabulary.NewService(logger, words, tx, clock, cfg.Journal.MinWordLength)
	progressSvc := progress.NewService(logger, days, entries, words, clock, progress.Config{
		Location:    domain.ParseTimezone(cfg.Journal.Timezone),
		DefaultDays: cfg.Journal.HistoryDefaultDays,
		MaxDays:     cfg.Journal.HistoryMaxDays,
	})
	journalSvc := journal.NewService(logger, entries, vocabularySvc, progressSvc, events, tx, clock, cfg.Journal.PageSizeDefault)
	phraseSvc := phrase.NewService(logger, phrases, clock)
	noteSvc := note.NewService(logger, notes, clock)
	settingsSvc := settings.NewService(logger, prefs, clock)

	backupSvc := backup.NewService(logger,
		backup.Stores{
			Entries:  entries,
			Words:    words,
			Phrases:  phrases,
			Notes:    notes,
			Progress: days,
			Settings: prefs,
		},
		journalSvc,
		backup.ServiceRestorer{
			Vocabulary: vocabularySvc,
			Phrases:    phraseSvc,
			Notes:      noteSvc,
			Settings:   settingsSvc,
		},
		tx,
		clock,
	)

	return &Services{
		Vocabulary: vocabularySvc,
		Progress:   progressSvc,
		Journal:    journalSvc,
		Phrases:    phraseSvc,
		Notes:      noteSvc,
		Settings:   settingsSvc,
		Search:     search.NewService(words, entries),
		Backup:     backupSvc,
	}
}
