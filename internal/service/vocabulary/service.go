// Package vocabulary mines German journal text for vocabulary and manages
// the resulting word list.
package vocabulary

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

//go:generate moq -out word_repo_mock_test.go -pkg vocabulary . wordRepo
//go:generate moq -out tx_manager_mock_test.go -pkg vocabulary . txManager

type wordRepo interface {
	// Shared writers lock, held until the surrounding transaction ends.
	LockShared(ctx context.Context) error
	// Atomic insert-or-increment keyed on the case-folded word.
	RecordOccurrence(ctx context.Context, word string, at time.Time) (*domain.VocabularyWord, bool, error)

	GetByWord(ctx context.Context, word string) (*domain.VocabularyWord, error)
	Create(ctx context.Context, w domain.VocabularyWord) (*domain.VocabularyWord, error)
	MarkReviewed(ctx context.Context, id int64, at time.Time) (*domain.VocabularyWord, error)
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyWord, error)
	Count(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	EarliestFirstSeen(ctx context.Context) (*time.Time, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultMinWordLength is the shortest token, in runes, tracked as vocabulary.
const DefaultMinWordLength = 4

// Service provides vocabulary extraction and word list management.
type Service struct {
	words     wordRepo
	tx        txManager
	clock     clockwork.Clock
	log       *slog.Logger
	minLength int
}

// NewService creates a new vocabulary Service. minLength values below 1
// fall back to DefaultMinWordLength.
func NewService(
	log *slog.Logger,
	words wordRepo,
	tx txManager,
	clock clockwork.Clock,
	minLength int,
) *Service {
	if minLength < 1 {
		minLength = DefaultMinWordLength
	}
	return &Service{
		words:     words,
		tx:        tx,
		clock:     clock,
		log:       log.With("service", "vocabulary"),
		minLength: minLength,
	}
}
