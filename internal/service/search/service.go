// Package search runs the unified search over vocabulary and journal
// sentences.
package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

//go:generate moq -out word_repo_mock_test.go -pkg search . wordRepo
//go:generate moq -out entry_repo_mock_test.go -pkg search . entryRepo

type wordRepo interface {
	List(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyWord, error)
}

type entryRepo interface {
	List(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, int, error)
}

const (
	MaxResults     = 50
	maxQueryLength = 200

	LanguageGerman  = "german"
	LanguageEnglish = "english"
)

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Service implements unified search.
type Service struct {
	words   wordRepo
	entries entryRepo
}

// NewService creates a new search Service.
func NewService(words wordRepo, entries entryRepo) *Service {
	return &Service{words: words, entries: entries}
}

// Search returns up to MaxResults vocabulary words containing term, most
// frequent first, and every sentence of the MaxResults newest matching
// journal entries that contains term. German sentences of an entry come
// before its English ones.
func (s *Service) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewValidationError("q", "required")
	}
	if utf8.RuneCountInString(term) > maxQueryLength {
		return nil, domain.NewValidationError("q", "max 200 characters")
	}

	var (
		words   []domain.VocabularyWord
		entries []domain.JournalEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		words, err = s.words.List(gctx, domain.VocabularyFilter{
			Search: term,
			Sort:   domain.VocabularySortFrequency,
			Limit:  MaxResults,
		})
		if err != nil {
			return fmt.Errorf("search vocabulary: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, _, err = s.entries.List(gctx, domain.JournalFilter{
			Query: term,
			Sort:  domain.JournalSortNewest,
			Limit: MaxResults,
		})
		if err != nil {
			return fmt.Errorf("search journal: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sentences := make([]domain.SentenceMatch, 0)
	for _, e := range entries {
		for _, sentence := range SentencesWith(e.GermanText, term) {
			sentences = append(sentences, domain.SentenceMatch{
				EntryID: e.ID, Sentence: sentence, Language: LanguageGerman, CreatedAt: e.CreatedAt,
			})
		}
		for _, sentence := range SentencesWith(e.EnglishText, term) {
			sentences = append(sentences, domain.SentenceMatch{
				EntryID: e.ID, Sentence: sentence, Language: LanguageEnglish, CreatedAt: e.CreatedAt,
			})
		}
	}

	return &domain.SearchResult{Vocabulary: words, Sentences: sentences}, nil
}

// SentencesWith splits text into sentences ending in '.', '!' or '?' and
// returns the trimmed ones containing term, ignoring case. Text without
// sentence punctuation is treated as a single sentence.
func SentencesWith(text, term string) []string {
	if text == "" || term == "" {
		return nil
	}

	sentences := sentenceRe.FindAllString(text, -1)
	if sentences == nil {
		sentences = []string{text}
	}

	needle := domain.WordKey(term)
	var out []string
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if strings.Contains(domain.WordKey(sentence), needle) {
			out = append(out, sentence)
		}
	}
	return out
}
