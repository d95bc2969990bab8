// Package backup exports all journal data into one document and restores
// it again.
package backup

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/journal"
)

//go:generate moq -out entry_store_mock_test.go -pkg backup . entryStore
//go:generate moq -out word_store_mock_test.go -pkg backup . wordStore
//go:generate moq -out phrase_store_mock_test.go -pkg backup . phraseStore
//go:generate moq -out note_store_mock_test.go -pkg backup . noteStore
//go:generate moq -out progress_store_mock_test.go -pkg backup . progressStore
//go:generate moq -out settings_store_mock_test.go -pkg backup . settingsStore
//go:generate moq -out entry_writer_mock_test.go -pkg backup . entryWriter
//go:generate moq -out restorer_mock_test.go -pkg backup . restorer
//go:generate moq -out tx_manager_mock_test.go -pkg backup . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryStore interface {
	ListAll(ctx context.Context) ([]domain.JournalEntry, error)
	Exists(ctx context.Context, createdAt time.Time, germanText string) (bool, error)
	DeleteAll(ctx context.Context) error
}

type wordStore interface {
	// Exclusive writers lock: live entry writes wait until the bulk
	// transaction ends.
	LockExclusive(ctx context.Context) error
	List(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyWord, error)
	DeleteAll(ctx context.Context) error
}

type phraseStore interface {
	List(ctx context.Context) ([]domain.Phrase, error)
	DeleteAll(ctx context.Context) error
}

type noteStore interface {
	List(ctx context.Context, sort domain.NoteSort) ([]domain.Note, error)
	DeleteAll(ctx context.Context) error
}

type progressStore interface {
	ListAll(ctx context.Context) ([]domain.DailyProgress, error)
	Restore(ctx context.Context, p domain.DailyProgress) error
	DeleteAll(ctx context.Context) error
}

type settingsStore interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// entryWriter replays entries through the live write path.
type entryWriter interface {
	Replay(ctx context.Context, input journal.CreateInput, createdAt time.Time) (*journal.WriteResult, error)
}

// restorer stores backed-up records through the owning services so their
// validation applies.
type restorer interface {
	RestoreWord(ctx context.Context, w domain.VocabularyWord) error
	RestorePhrase(ctx context.Context, p domain.Phrase) error
	RestoreSettings(ctx context.Context, s domain.Settings) error
	RestoreNote(ctx context.Context, n domain.Note) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Stores groups the repositories read by export and cleared by replace.
type Stores struct {
	Entries  entryStore
	Words    wordStore
	Phrases  phraseStore
	Notes    noteStore
	Progress progressStore
	Settings settingsStore
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements export, import and clear.
type Service struct {
	log      *slog.Logger
	stores   Stores
	entries  entryWriter
	restorer restorer
	tx       txManager
	clock    clockwork.Clock
}

// NewService creates a new backup Service.
func NewService(
	logger *slog.Logger,
	stores Stores,
	entries entryWriter,
	restorer restorer,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:      logger.With("service", "backup"),
		stores:   stores,
		entries:  entries,
		restorer: restorer,
		tx:       tx,
		clock:    clock,
	}
}
