// Package progress aggregates practice sessions into per-day records and
// derives history, chart series, streaks and totals from them.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

//go:generate moq -out progress_repo_mock_test.go -pkg progress . progressRepo
//go:generate moq -out entry_repo_mock_test.go -pkg progress . entryRepo
//go:generate moq -out word_repo_mock_test.go -pkg progress . wordRepo

type progressRepo interface {
	Upsert(ctx context.Context, date time.Time, delta domain.ProgressDelta) (*domain.DailyProgress, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyProgress, error)
	ListRange(ctx context.Context, from, to time.Time) ([]domain.DailyProgress, error)
	ActiveDates(ctx context.Context) ([]time.Time, error)
	TotalMinutes(ctx context.Context) (int, error)
}

type entryRepo interface {
	EntryDates(ctx context.Context) ([]time.Time, error)
	Totals(ctx context.Context, since time.Time) (count, countSince, words int, err error)
}

type wordRepo interface {
	Count(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	FirstSeenTimes(ctx context.Context) ([]time.Time, error)
}

// Config holds the history window limits.
type Config struct {
	Location    *time.Location
	DefaultDays int
	MaxDays     int
}

const (
	defaultHistoryDays = 7
	maxHistoryDays     = 365
	weekDays           = 7
)

// Service provides progress aggregation and reporting.
type Service struct {
	progress progressRepo
	entries  entryRepo
	words    wordRepo
	clock    clockwork.Clock
	cfg      Config
	log      *slog.Logger
}

// NewService creates a new progress Service.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	entries entryRepo,
	words wordRepo,
	clock clockwork.Clock,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.MaxDays <= 0 {
		cfg.MaxDays = maxHistoryDays
	}
	if cfg.DefaultDays <= 0 || cfg.DefaultDays > cfg.MaxDays {
		cfg.DefaultDays = min(defaultHistoryDays, cfg.MaxDays)
	}
	return &Service{
		progress: progress,
		entries:  entries,
		words:    words,
		clock:    clock,
		cfg:      cfg,
		log:      log.With("service", "progress"),
	}
}

// Today returns the current calendar day in the configured location.
func (s *Service) Today() time.Time {
	return s.DayOf(s.clock.Now())
}

// DayOf returns the calendar day of t in the configured location.
func (s *Service) DayOf(t time.Time) time.Time {
	return domain.Day(t, s.cfg.Location)
}
