package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/observability"
)

// Candidates returns the tokens of text that qualify as vocabulary, in order
// of appearance. Repeated tokens are kept: every occurrence counts.
func (s *Service) Candidates(text string) []string {
	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		word := strings.TrimSpace(tok)
		if utf8.RuneCountInString(word) < s.minLength || IsStopWord(word) {
			observability.RecordWord(observability.WordSkipped)
			continue
		}
		out = append(out, word)
	}
	return out
}

// Extract records every qualifying word of germanText at time at and
// returns the words that were not in the vocabulary before, in order of
// appearance.
//
// The writers lock is taken in shared mode first and the words are then
// written in word key order, so two entries sharing words always lock their
// rows in the same sequence. Each word is written in its own nested
// transaction. A word that fails to persist is logged and skipped; the
// remaining words are still processed.
func (s *Service) Extract(ctx context.Context, germanText string, at time.Time) ([]domain.VocabularyWord, error) {
	candidates := s.Candidates(germanText)
	if len(candidates) == 0 {
		return []domain.VocabularyWord{}, nil
	}

	if err := ctx.Err(); err != nil {
		return []domain.VocabularyWord{}, err
	}
	if err := s.words.LockShared(ctx); err != nil {
		return nil, fmt.Errorf("lock vocabulary: %w", err)
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return domain.WordKey(candidates[order[a]]) < domain.WordKey(candidates[order[b]])
	})

	// Indexed by position in the text.
	fresh := make([]*domain.VocabularyWord, len(candidates))

	for _, idx := range order {
		word := candidates[idx]
		if err := ctx.Err(); err != nil {
			return collect(fresh), err
		}

		var (
			w        *domain.VocabularyWord
			inserted bool
		)
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var recErr error
			w, inserted, recErr = s.words.RecordOccurrence(txCtx, word, at)
			return recErr
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return collect(fresh), ctxErr
			}
			observability.RecordWord(observability.WordFailed)
			s.log.WarnContext(ctx, "vocabulary word skipped",
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			continue
		}

		if inserted {
			observability.RecordWord(observability.WordNew)
			fresh[idx] = w
		} else {
			observability.RecordWord(observability.WordRepeat)
		}
	}

	added := collect(fresh)
	if len(added) > 0 {
		s.log.DebugContext(ctx, "vocabulary extracted", slog.Int("new_words", len(added)))
	}
	return added, nil
}

func collect(fresh []*domain.VocabularyWord) []domain.VocabularyWord {
	out := make([]domain.VocabularyWord, 0, len(fresh))
	for _, w := range fresh {
		if w != nil {
			out = append(out, *w)
		}
	}
	return out
}
