package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// History returns exactly days records ending today, oldest first. Days
// without activity are present with all counters at zero. days == 0 selects
// the configured default.
func (s *Service) History(ctx context.Context, days int) ([]domain.DailyProgress, error) {
	days, err := s.windowSize(days)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	from := today.AddDate(0, 0, -(days - 1))

	stored, err := s.progress.ListRange(ctx, from, today)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	byDay := make(map[time.Time]domain.DailyProgress, len(stored))
	for _, p := range stored {
		byDay[domain.Day(p.Date, time.UTC)] = p
	}

	window := make([]domain.DailyProgress, days)
	for i := range window {
		d := from.AddDate(0, 0, i)
		p := byDay[d]
		p.Date = d
		window[i] = p
	}
	return window, nil
}

// ChartData returns the History window as parallel series labelled with
// short weekday names.
func (s *Service) ChartData(ctx context.Context, days int) (domain.ChartData, error) {
	history, err := s.History(ctx, days)
	if err != nil {
		return domain.ChartData{}, err
	}

	chart := domain.ChartData{
		Labels:  make([]string, len(history)),
		Words:   make([]int, len(history)),
		Entries: make([]int, len(history)),
		Minutes: make([]int, len(history)),
	}
	for i, p := range history {
		chart.Labels[i] = p.Date.Weekday().String()[:3]
		chart.Words[i] = p.WordsLearned
		chart.Entries[i] = p.EntriesWritten
		chart.Minutes[i] = p.MinutesPracticed
	}
	return chart, nil
}

func (s *Service) windowSize(days int) (int, error) {
	switch {
	case days == 0:
		return s.cfg.DefaultDays, nil
	case days < 0 || days > s.cfg.MaxDays:
		return 0, domain.NewValidationError("days", fmt.Sprintf("must be between 1 and %d", s.cfg.MaxDays))
	}
	return days, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
