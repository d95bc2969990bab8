package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// List returns vocabulary matching the input, newest first by default.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.VocabularyWord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sort := input.Sort
	if sort == "" {
		sort = domain.VocabularySortNewest
	}

	words, err := s.words.List(ctx, domain.VocabularyFilter{
		Search: strings.TrimSpace(input.Search),
		Sort:   sort,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	return words, nil
}

// Add stores a word typed in by hand with frequency 1.
// Returns domain.ErrAlreadyExists when the word is known under any casing.
func (s *Service) Add(ctx context.Context, input AddWordInput) (*domain.VocabularyWord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	word := strings.TrimSpace(input.Word)

	_, err := s.words.GetByWord(ctx, word)
	switch {
	case err == nil:
		return nil, fmt.Errorf("vocabulary %q: %w", word, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("lookup word: %w", err)
	}

	now := s.clock.Now()
	created, err := s.words.Create(ctx, domain.VocabularyWord{
		Word:         word,
		FirstSeen:    now,
		Frequency:    1,
		LastReviewed: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary word added",
		slog.Int64("word_id", created.ID),
		slog.String("word", created.Word),
	)
	return created, nil
}

// Restore stores a word from a backup, keeping its history.
// Returns domain.ErrAlreadyExists when the word is already present.
func (s *Service) Restore(ctx context.Context, w domain.VocabularyWord) (*domain.VocabularyWord, error) {
	w.Word = strings.TrimSpace(w.Word)
	if err := (AddWordInput{Word: w.Word}).Validate(); err != nil {
		return nil, err
	}
	if w.FirstSeen.IsZero() {
		w.FirstSeen = s.clock.Now()
	}

	restored, err := s.words.Create(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("restore word: %w", err)
	}
	return restored, nil
}

// Delete removes a word from the vocabulary.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary word deleted", slog.Int64("word_id", id))
	return nil
}

// MarkReviewed stamps the word's last review time with the current time.
func (s *Service) MarkReviewed(ctx context.Context, id int64) (*domain.VocabularyWord, error) {
	w, err := s.words.MarkReviewed(ctx, id, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("mark word reviewed: %w", err)
	}
	return w, nil
}
