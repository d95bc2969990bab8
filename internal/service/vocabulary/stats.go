package vocabulary

import (
	"context"
	"fmt"
	"math"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// Stats summarizes vocabulary growth: total words, words first seen in the
// last 7 and 30 days, and the rounded average of new words per week since
// the first word was recorded.
func (s *Service) Stats(ctx context.Context) (domain.VocabularyStats, error) {
	now := s.clock.Now()

	total, err := s.words.Count(ctx)
	if err != nil {
		return domain.VocabularyStats{}, fmt.Errorf("count words: %w", err)
	}
	week, err := s.words.CountSince(ctx, now.AddDate(0, 0, -statsWeekDays))
	if err != nil {
		return domain.VocabularyStats{}, fmt.Errorf("count words this week: %w", err)
	}
	month, err := s.words.CountSince(ctx, now.AddDate(0, 0, -statsMonthDays))
	if err != nil {
		return domain.VocabularyStats{}, fmt.Errorf("count words this month: %w", err)
	}
	earliest, err := s.words.EarliestFirstSeen(ctx)
	if err != nil {
		return domain.VocabularyStats{}, fmt.Errorf("earliest word: %w", err)
	}

	weeks := 1.0
	if earliest != nil {
		weeks = math.Max(1, now.Sub(*earliest).Hours()/(24*7))
	}

	return domain.VocabularyStats{
		Total:          total,
		ThisWeek:       week,
		ThisMonth:      month,
		AveragePerWeek: int(math.Round(float64(total) / weeks)),
	}, nil
}
