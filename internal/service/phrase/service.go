// Package phrase serves the built-in phrase list together with the
// owner's custom phrases.
package phrase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

//go:generate moq -out phrase_repo_mock_test.go -pkg phrase . phraseRepo

type phraseRepo interface {
	Create(ctx context.Context, p domain.Phrase) (*domain.Phrase, error)
	Exists(ctx context.Context, english, german string) (bool, error)
	List(ctx context.Context) ([]domain.Phrase, error)
	IncrementReviewed(ctx context.Context, id int64) (*domain.Phrase, error)
	Delete(ctx context.Context, id int64) error
}

const maxPhraseLength = 500

// Service implements phrase management.
type Service struct {
	log     *slog.Logger
	phrases phraseRepo
	clock   clockwork.Clock
}

// NewService creates a new phrase Service.
func NewService(logger *slog.Logger, phrases phraseRepo, clock clockwork.Clock) *Service {
	return &Service{
		log:     logger.With("service", "phrase"),
		phrases: phrases,
		clock:   clock,
	}
}

// ListResult holds all phrases, built-in first, with per-kind counts.
type ListResult struct {
	Phrases []domain.Phrase
	BuiltIn int
	Custom  int
}

// AddInput holds the parameters for adding a custom phrase.
type AddInput struct {
	English string
	German  string
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	for _, f := range []struct{ name, value string }{
		{"english", i.English},
		{"german", i.German},
	} {
		v := strings.TrimSpace(f.value)
		switch {
		case v == "":
			errs = append(errs, domain.FieldError{Field: f.name, Message: "required"})
		case utf8.RuneCountInString(v) > maxPhraseLength:
			errs = append(errs, domain.FieldError{Field: f.name, Message: "too long (max 500)"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns the built-in phrases followed by custom phrases, newest first.
func (s *Service) List(ctx context.Context) (*ListResult, error) {
	custom, err := s.phrases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list phrases: %w", err)
	}

	all := make([]domain.Phrase, 0, len(domain.BuiltInPhrases)+len(custom))
	all = append(all, domain.BuiltInPhrases...)
	all = append(all, custom...)

	return &ListResult{
		Phrases: all,
		BuiltIn: len(domain.BuiltInPhrases),
		Custom:  len(custom),
	}, nil
}

// Add stores a custom phrase. Both texts are trimmed. Returns
// domain.ErrAlreadyExists when either text is already a custom phrase,
// ignoring case.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Phrase, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	english := strings.TrimSpace(input.English)
	german := strings.TrimSpace(input.German)

	exists, err := s.phrases.Exists(ctx, english, german)
	if err != nil {
		return nil, fmt.Errorf("check phrase: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("phrase %q: %w", english, domain.ErrAlreadyExists)
	}

	created, err := s.phrases.Create(ctx, domain.Phrase{
		English:   english,
		German:    german,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create phrase: %w", err)
	}

	s.log.InfoContext(ctx, "phrase added", slog.Int64("phrase_id", created.ID))
	return created, nil
}

// Restore stores a phrase from a backup, keeping its review count and
// creation time.
func (s *Service) Restore(ctx context.Context, p domain.Phrase) (*domain.Phrase, error) {
	if err := (AddInput{English: p.English, German: p.German}).Validate(); err != nil {
		return nil, err
	}
	p.English = strings.TrimSpace(p.English)
	p.German = strings.TrimSpace(p.German)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.clock.Now()
	}
	p.TimesReviewed = max(p.TimesReviewed, 0)

	restored, err := s.phrases.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("restore phrase: %w", err)
	}
	return restored, nil
}

// Review counts one more review of a custom phrase.
func (s *Service) Review(ctx context.Context, id int64) (*domain.Phrase, error) {
	p, err := s.phrases.IncrementReviewed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review phrase: %w", err)
	}
	return p, nil
}

// Delete removes a custom phrase.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.phrases.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete phrase: %w", err)
	}
	s.log.InfoContext(ctx, "phrase deleted", slog.Int64("phrase_id", id))
	return nil
}
