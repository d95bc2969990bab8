package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// RecordSession adds one written entry to the record for date, together
// with the number of new words and the minutes practiced. The record is
// created on the first session of the day; later sessions add to it.
func (s *Service) RecordSession(ctx context.Context, date time.Time, wordsLearned, minutes int) (*domain.DailyProgress, error) {
	var errs []domain.FieldError
	if wordsLearned < 0 {
		errs = append(errs, domain.FieldError{Field: "words_learned", Message: "must be >= 0"})
	}
	if minutes < 0 {
		errs = append(errs, domain.FieldError{Field: "minutes_practiced", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	day := domain.Day(date, time.UTC)
	p, err := s.progress.Upsert(ctx, day, domain.ProgressDelta{
		WordsLearned:     wordsLearned,
		EntriesWritten:   1,
		MinutesPracticed: minutes,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}

	s.log.DebugContext(ctx, "session recorded",
		slog.String("date", domain.FormatDay(day)),
		slog.Int("words_learned", wordsLearned),
		slog.Int("minutes", minutes),
	)
	return p, nil
}

// Day returns the stored record for a day, or a zero record when nothing
// was practiced that day.
func (s *Service) Day(ctx context.Context, date time.Time) (domain.DailyProgress, error) {
	day := domain.Day(date, time.UTC)
	p, err := s.progress.GetByDate(ctx, day)
	if err != nil {
		if isNotFound(err) {
			return domain.DailyProgress{Date: day}, nil
		}
		return domain.DailyProgress{}, fmt.Errorf("get progress: %w", err)
	}
	return *p, nil
}
