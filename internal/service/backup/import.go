package backup

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/journal"
)

// Decode reads a backup document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: invalid backup document: %v", domain.ErrValidation, err)
	}
	return &doc, nil
}

// Import restores a backup document.
//
// Journal entries are replayed oldest first through the same write path as
// live entries, so vocabulary and progress are rebuilt by the extractor
// and aggregator. Entries already present (same creation time and German
// text) are skipped. Backed-up words the replay did not produce are then
// restored, and backed-up progress days fill in what the replay could not
// rebuild without counting a day twice.
//
// The import runs in one transaction holding the vocabulary writers lock
// exclusively, so live entries wait instead of interleaving with it. A
// record that fails is reported in ImportReport.Errors and rolled back on
// its own.
func (s *Service) Import(ctx context.Context, doc *Document, mode Mode) (*ImportReport, error) {
	if mode == "" {
		mode = ModeMerge
	}
	if err := validateImport(doc, mode); err != nil {
		return nil, err
	}

	report := &ImportReport{}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.stores.Words.LockExclusive(txCtx); err != nil {
			return err
		}
		if mode == ModeReplace {
			if err := s.clearAll(txCtx); err != nil {
				return err
			}
		}

		if err := s.importEntries(txCtx, doc.Data.JournalEntries, report); err != nil {
			return err
		}
		if err := s.importWords(txCtx, doc.Data.Vocabulary, report); err != nil {
			return err
		}
		if err := s.importPhrases(txCtx, doc.Data.CustomPhrases, report); err != nil {
			return err
		}
		if err := s.importNotes(txCtx, doc.Data.Notes, report); err != nil {
			return err
		}
		if err := s.importProgress(txCtx, doc.Data.ProgressStats, report); err != nil {
			return err
		}
		if doc.Data.Settings != nil {
			st := domain.Settings{
				DailyGoalMinutes:  cmp.Or(doc.Data.Settings.DailyGoalMinutes, domain.DefaultSettings().DailyGoalMinutes),
				DailySentenceGoal: cmp.Or(doc.Data.Settings.DailySentenceGoal, domain.DefaultSettings().DailySentenceGoal),
				Theme:             cmp.Or(domain.Theme(doc.Data.Settings.Theme), domain.DefaultSettings().Theme),
			}
			if err := s.step(txCtx, func(c context.Context) error { return s.restorer.RestoreSettings(c, st) }); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				report.Errors = append(report.Errors, fmt.Sprintf("settings: %v", err))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	s.log.InfoContext(ctx, "data imported",
		slog.String("mode", string(mode)),
		slog.Int("entries", report.Imported.JournalEntries),
		slog.Int("vocabulary", report.Imported.Vocabulary),
		slog.Int("phrases", report.Imported.CustomPhrases),
		slog.Int("notes", report.Imported.Notes),
		slog.Int("progress_days", report.Imported.ProgressStats),
		slog.Int("errors", len(report.Errors)),
	)
	return report, nil
}

func validateImport(doc *Document, mode Mode) error {
	var errs []domain.FieldError

	if doc == nil {
		return domain.NewValidationError("data", "required")
	}
	if mode != ModeMerge && mode != ModeReplace {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be merge or replace"})
	}
	if doc.Version != "" && !strings.HasPrefix(doc.Version, "1.") {
		errs = append(errs, domain.FieldError{Field: "version", Message: "unsupported backup version"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// step runs fn in a nested transaction so a failing record does not abort
// the import.
func (s *Service) step(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.tx.RunInTx(ctx, fn)
}

func (s *Service) importEntries(ctx context.Context, entries []JournalEntry, report *ImportReport) error {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b JournalEntry) int {
		return a.CreatedAt.Compare(b.CreatedAt.Time)
	})

	for i, e := range sorted {
		if err := ctx.Err(); err != nil {
			return err
		}

		exists, err := s.stores.Entries.Exists(ctx, e.CreatedAt.Time, e.GermanText)
		if err != nil {
			return fmt.Errorf("check entry: %w", err)
		}
		if exists {
			report.Skipped.JournalEntries++
			continue
		}

		err = s.step(ctx, func(c context.Context) error {
			_, err := s.entries.Replay(c, journal.CreateInput{
				EnglishText:     e.EnglishText,
				GermanText:      e.GermanText,
				SessionDuration: max(e.SessionDuration, 0),
			}, e.CreatedAt.Time)
			return err
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			report.Errors = append(report.Errors, fmt.Sprintf("journal entry %d: %v", i+1, err))
			continue
		}
		report.Imported.JournalEntries++
	}
	return nil
}

func (s *Service) importWords(ctx context.Context, words []Word, report *ImportReport) error {
	for _, w := range words {
		word := domain.VocabularyWord{
			Word:      w.Word,
			FirstSeen: w.FirstSeen.Time,
			Frequency: max(w.Frequency, 1),
		}
		if w.LastReviewed != nil && !w.LastReviewed.IsZero() {
			t := w.LastReviewed.Time
			word.LastReviewed = &t
		}

		err := s.step(ctx, func(c context.Context) error { return s.restorer.RestoreWord(c, word) })
		switch {
		case err == nil:
			report.Imported.Vocabulary++
		case errors.Is(err, domain.ErrAlreadyExists):
			report.Skipped.Vocabulary++
		default:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			report.Errors = append(report.Errors, fmt.Sprintf("vocabulary %q: %v", w.Word, err))
		}
	}
	return nil
}

func (s *Service) importPhrases(ctx context.Context, phrases []Phrase, report *ImportReport) error {
	for _, p := range phrases {
		phrase := domain.Phrase{
			English:       p.English,
			German:        p.German,
			CreatedAt:     p.CreatedAt.Time,
			TimesReviewed: p.TimesReviewed,
		}

		err := s.step(ctx, func(c context.Context) error { return s.restorer.RestorePhrase(c, phrase) })
		switch {
		case err == nil:
			report.Imported.CustomPhrases++
		case errors.Is(err, domain.ErrAlreadyExists):
			report.Skipped.CustomPhrases++
		default:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			report.Errors = append(report.Errors, fmt.Sprintf("phrase %q: %v", p.English, err))
		}
	}
	return nil
}

func (s *Service) importNotes(ctx context.Context, notes []Note, report *ImportReport) error {
	for _, n := range notes {
		rec := domain.Note{
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: n.CreatedAt.Time,
			UpdatedAt: n.UpdatedAt.Time,
		}

		err := s.step(ctx, func(c context.Context) error { return s.restorer.RestoreNote(c, rec) })
		switch {
		case err == nil:
			report.Imported.Notes++
		case errors.Is(err, domain.ErrAlreadyExists):
			report.Skipped.Notes++
		default:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			report.Errors = append(report.Errors, fmt.Sprintf("note %q: %v", n.Title, err))
		}
	}
	return nil
}

func (s *Service) importProgress(ctx context.Context, stats []Progress, report *ImportReport) error {
	for _, p := range stats {
		day, err := domain.ParseDay(strings.TrimSpace(p.Date))
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("progress %q: invalid date", p.Date))
			continue
		}
		if p.WordsLearned < 0 || p.EntriesWritten < 0 || p.MinutesPracticed < 0 {
			report.Errors = append(report.Errors, fmt.Sprintf("progress %s: negative counter", p.Date))
			continue
		}

		rec := domain.DailyProgress{
			Date:             day,
			WordsLearned:     p.WordsLearned,
			EntriesWritten:   p.EntriesWritten,
			MinutesPracticed: p.MinutesPracticed,
		}
		err = s.step(ctx, func(c context.Context) error { return s.stores.Progress.Restore(c, rec) })
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			report.Errors = append(report.Errors, fmt.Sprintf("progress %s: %v", p.Date, err))
			continue
		}
		report.Imported.ProgressStats++
	}
	return nil
}
