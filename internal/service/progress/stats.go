package progress

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// Streak computes practice streaks over the days with journal entries.
func (s *Service) Streak(ctx context.Context) (domain.Streak, error) {
	dates, err := s.entries.EntryDates(ctx)
	if err != nil {
		return domain.Streak{}, fmt.Errorf("list entry dates: %w", err)
	}
	return ComputeStreak(dates, s.Today()), nil
}

// Stats returns lifetime totals plus counts for the last seven days.
func (s *Service) Stats(ctx context.Context) (domain.ProgressStats, error) {
	weekAgo := s.clock.Now().AddDate(0, 0, -weekDays)

	var stats domain.ProgressStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats.VocabularyTotal, err = s.words.Count(gctx)
		if err != nil {
			return fmt.Errorf("count vocabulary: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.VocabularyThisWeek, err = s.words.CountSince(gctx, weekAgo)
		if err != nil {
			return fmt.Errorf("count vocabulary this week: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.EntriesTotal, stats.EntriesThisWeek, stats.WordsWritten, err = s.entries.Totals(gctx, weekAgo)
		if err != nil {
			return fmt.Errorf("journal totals: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.MinutesPracticed, err = s.progress.TotalMinutes(gctx)
		if err != nil {
			return fmt.Errorf("total minutes: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.ProgressStats{}, err
	}
	return stats, nil
}

// ActiveDays returns every day on which a word was first seen or progress
// was recorded, newest first, without duplicates.
func (s *Service) ActiveDays(ctx context.Context) ([]time.Time, error) {
	var firstSeen, progressDays []time.Time

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		firstSeen, err = s.words.FirstSeenTimes(gctx)
		if err != nil {
			return fmt.Errorf("list first seen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		progressDays, err = s.progress.ActiveDates(gctx)
		if err != nil {
			return fmt.Errorf("list progress days: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	days := make([]time.Time, 0, len(firstSeen)+len(progressDays))
	for _, t := range firstSeen {
		days = append(days, s.DayOf(t))
	}
	for _, d := range progressDays {
		days = append(days, domain.Day(d, time.UTC))
	}
	return uniqueDesc(days), nil
}

// Dashboard loads stats, streak and the default history window concurrently.
func (s *Service) Dashboard(ctx context.Context) (domain.ProgressDashboard, error) {
	var d domain.ProgressDashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Stats, err = s.Stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Streak, err = s.Streak(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.History, err = s.History(gctx, 0)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.ProgressDashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	return d, nil
}
