package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/observability"
)

// Create writes a new entry at the current time. The entry row, the
// vocabulary it introduces and the day's progress are committed together;
// a failing progress update rolls the whole entry back. Subscribers are
// notified after the commit.
func (s *Service) Create(ctx context.Context, input CreateInput) (*WriteResult, error) {
	res, err := s.write(ctx, input, s.clock.Now())
	observability.RecordJournalOp("create", err)
	if err != nil {
		return nil, err
	}

	observability.RecordEntryWritten(res.Entry.CreatedAt, res.Entry.SessionDuration)
	s.publish(ctx, res)
	return res, nil
}

// Replay writes an entry as if it had been created at createdAt. It runs
// the same extraction and aggregation as Create, so a replayed history
// ends up in the same state as the live one. No event is published.
func (s *Service) Replay(ctx context.Context, input CreateInput, createdAt time.Time) (*WriteResult, error) {
	if createdAt.IsZero() {
		createdAt = s.clock.Now()
	}
	res, err := s.write(ctx, input, createdAt)
	observability.RecordJournalOp("replay", err)
	return res, err
}

func (s *Service) write(ctx context.Context, input CreateInput, at time.Time) (*WriteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	day := s.progress.DayOf(at)
	res := &WriteResult{}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.entries.Create(txCtx, domain.JournalEntry{
			EnglishText:     input.EnglishText,
			GermanText:      input.GermanText,
			WordCount:       domain.CountWords(input.GermanText),
			SessionDuration: input.SessionDuration,
			EntryDate:       day,
			CreatedAt:       at,
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		res.Entry = *created

		res.NewWords, err = s.vocabulary.Extract(txCtx, input.GermanText, at)
		if err != nil {
			return fmt.Errorf("extract vocabulary: %w", err)
		}

		if _, err := s.progress.RecordSession(txCtx, day, len(res.NewWords), input.SessionDuration); err != nil {
			return fmt.Errorf("record session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "journal entry created",
		slog.Int64("entry_id", res.Entry.ID),
		slog.Int("word_count", res.Entry.WordCount),
		slog.Int("new_words", len(res.NewWords)),
		slog.String("entry_date", domain.FormatDay(day)),
	)
	return res, nil
}

func (s *Service) publish(ctx context.Context, res *WriteResult) {
	words := make([]string, len(res.NewWords))
	for i, w := range res.NewWords {
		words[i] = w.Word
	}

	err := s.events.PublishEntryCreated(ctx, domain.EntryCreatedEvent{
		EntryID:          res.Entry.ID,
		EntryDate:        res.Entry.EntryDate,
		NewWords:         words,
		WordCount:        res.Entry.WordCount,
		MinutesPracticed: res.Entry.SessionDuration,
		OccurredAt:       res.Entry.CreatedAt,
	})
	if err != nil {
		s.log.WarnContext(ctx, "publish entry created",
			slog.Int64("entry_id", res.Entry.ID),
			slog.String("error", err.Error()),
		)
	}
}
