package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/observability"
)

// Update edits an entry. Vocabulary is extracted again only when the German
// text changed; progress records are left untouched.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*WriteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res := &WriteResult{NewWords: make([]domain.VocabularyWord, 0)}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.entries.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}

		e := *existing
		germanChanged := false
		if input.EnglishText != nil {
			e.EnglishText = *input.EnglishText
		}
		if input.GermanText != nil && *input.GermanText != existing.GermanText {
			e.GermanText = *input.GermanText
			e.WordCount = domain.CountWords(e.GermanText)
			germanChanged = true
		}

		now := s.clock.Now()
		e.UpdatedAt = now

		updated, err := s.entries.Update(txCtx, e)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
		res.Entry = *updated

		if germanChanged {
			res.NewWords, err = s.vocabulary.Extract(txCtx, e.GermanText, now)
			if err != nil {
				return fmt.Errorf("extract vocabulary: %w", err)
			}
		}
		return nil
	})
	observability.RecordJournalOp("update", err)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "journal entry updated",
		slog.Int64("entry_id", res.Entry.ID),
		slog.Int("new_words", len(res.NewWords)),
	)
	return res, nil
}
