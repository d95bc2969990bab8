package backup

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// Export loads every record and returns the backup document. Records are
// ordered oldest first.
func (s *Service) Export(ctx context.Context) (*Document, error) {
	var (
		entries  []domain.JournalEntry
		words    []domain.VocabularyWord
		phrases  []domain.Phrase
		notes    []domain.Note
		progress []domain.DailyProgress
		settings *domain.Settings
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		entries, err = s.stores.Entries.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("list journal entries: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		words, err = s.stores.Words.List(gctx, domain.VocabularyFilter{})
		if err != nil {
			return fmt.Errorf("list vocabulary: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		phrases, err = s.stores.Phrases.List(gctx)
		if err != nil {
			return fmt.Errorf("list phrases: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		notes, err = s.stores.Notes.List(gctx, domain.NoteSortOldest)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		progress, err = s.stores.Progress.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("list progress: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		settings, err = s.stores.Settings.Get(gctx)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(words, func(a, b domain.VocabularyWord) int {
		return cmp.Compare(a.FirstSeen.UnixNano(), b.FirstSeen.UnixNano())
	})
	slices.SortStableFunc(phrases, func(a, b domain.Phrase) int {
		return cmp.Compare(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano())
	})

	doc := &Document{
		Version:    FormatVersion,
		ExportDate: s.clock.Now().UTC(),
		Data: Data{
			JournalEntries: make([]JournalEntry, len(entries)),
			Vocabulary:     make([]Word, len(words)),
			CustomPhrases:  make([]Phrase, len(phrases)),
			Notes:          make([]Note, len(notes)),
			ProgressStats:  make([]Progress, len(progress)),
		},
	}
	for i, e := range entries {
		doc.Data.JournalEntries[i] = toEntry(e)
	}
	for i, w := range words {
		doc.Data.Vocabulary[i] = toWord(w)
	}
	for i, p := range phrases {
		doc.Data.CustomPhrases[i] = toPhrase(p)
	}
	for i, n := range notes {
		doc.Data.Notes[i] = Note{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: Time{n.CreatedAt},
			UpdatedAt: Time{n.UpdatedAt},
		}
	}
	for i, p := range progress {
		doc.Data.ProgressStats[i] = toProgress(p)
	}
	if settings != nil {
		doc.Data.Settings = &Settings{
			DailyGoalMinutes:  settings.DailyGoalMinutes,
			DailySentenceGoal: settings.DailySentenceGoal,
			Theme:             string(settings.Theme),
		}
	}
	doc.Metadata = Metadata{
		TotalEntries:       len(entries),
		TotalVocabulary:    len(words),
		TotalCustomPhrases: len(phrases),
		TotalNotes:         len(notes),
		TotalProgressDays:  len(progress),
	}

	s.log.InfoContext(ctx, "data exported",
		slog.Int("entries", len(entries)),
		slog.Int("vocabulary", len(words)),
		slog.Int("phrases", len(phrases)),
		slog.Int("notes", len(notes)),
		slog.Int("progress_days", len(progress)),
	)
	return doc, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toEntry(e domain.JournalEntry) JournalEntry {
	return JournalEntry{
		ID:              e.ID,
		EnglishText:     e.EnglishText,
		GermanText:      e.GermanText,
		WordCount:       e.WordCount,
		SessionDuration: e.SessionDuration,
		CreatedAt:       Time{e.CreatedAt},
	}
}

func toWord(w domain.VocabularyWord) Word {
	out := Word{
		ID:        w.ID,
		Word:      w.Word,
		FirstSeen: Time{w.FirstSeen},
		Frequency: w.Frequency,
	}
	if w.LastReviewed != nil {
		out.LastReviewed = &Time{*w.LastReviewed}
	}
	return out
}

func toPhrase(p domain.Phrase) Phrase {
	return Phrase{
		ID:            p.ID,
		English:       p.English,
		German:        p.German,
		CreatedAt:     Time{p.CreatedAt},
		TimesReviewed: p.TimesReviewed,
	}
}

func toProgress(p domain.DailyProgress) Progress {
	return Progress{
		Date:             domain.FormatDay(p.Date),
		WordsLearned:     p.WordsLearned,
		EntriesWritten:   p.EntriesWritten,
		MinutesPracticed: p.MinutesPracticed,
	}
}
