package backup

import (
	"context"
	"fmt"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// Clear deletes all entries, vocabulary, custom phrases, notes and
// progress. Settings are kept. confirm must equal ClearConfirmation.
func (s *Service) Clear(ctx context.Context, confirm string) error {
	if confirm != ClearConfirmation {
		return domain.NewValidationError("confirm", "must be "+ClearConfirmation)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.stores.Words.LockExclusive(txCtx); err != nil {
			return err
		}
		return s.clearAll(txCtx)
	})
	if err != nil {
		return fmt.Errorf("clear data: %w", err)
	}

	s.log.WarnContext(ctx, "all data cleared")
	return nil
}

func (s *Service) clearAll(ctx context.Context) error {
	if err := s.stores.Entries.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.stores.Words.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.stores.Phrases.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.stores.Notes.DeleteAll(ctx); err != nil {
		return err
	}
	return s.stores.Progress.DeleteAll(ctx)
}
