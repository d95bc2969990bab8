// Package journal implements bilingual journal entries. Writing an entry
// feeds its German text to the vocabulary extractor and its session into
// the day's progress record.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

//go:generate moq -out entry_repo_mock_test.go -pkg journal . entryRepo
//go:generate moq -out extractor_mock_test.go -pkg journal . extractor
//go:generate moq -out progress_recorder_mock_test.go -pkg journal . progressRecorder
//go:generate moq -out publisher_mock_test.go -pkg journal . publisher
//go:generate moq -out tx_manager_mock_test.go -pkg journal . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	Create(ctx context.Context, e domain.JournalEntry) (*domain.JournalEntry, error)
	Update(ctx context.Context, e domain.JournalEntry) (*domain.JournalEntry, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.JournalEntry, error)
	List(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, int, error)
}

type extractor interface {
	Extract(ctx context.Context, germanText string, at time.Time) ([]domain.VocabularyWord, error)
}

type progressRecorder interface {
	RecordSession(ctx context.Context, date time.Time, wordsLearned, minutes int) (*domain.DailyProgress, error)
	DayOf(t time.Time) time.Time
}

type publisher interface {
	PublishEntryCreated(ctx context.Context, event domain.EntryCreatedEvent) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the journal business logic.
type Service struct {
	log        *slog.Logger
	entries    entryRepo
	vocabulary extractor
	progress   progressRecorder
	events     publisher
	tx         txManager
	clock      clockwork.Clock
	pageSize   int
}

// NewService creates a new journal Service. pageSize is the listing limit
// used when the caller does not pass one.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	vocabulary extractor,
	progress progressRecorder,
	events publisher,
	tx txManager,
	clock clockwork.Clock,
	pageSize int,
) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		log:        logger.With("service", "journal"),
		entries:    entries,
		vocabulary: vocabulary,
		progress:   progress,
		events:     events,
		tx:         tx,
		clock:      clock,
		pageSize:   pageSize,
	}
}
