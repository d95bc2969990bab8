package journal

import "github.com/heartmarshall/tagebuch-backend/internal/domain"

// WriteResult is returned by Create and Update: the stored entry and the
// vocabulary words its German text introduced.
type WriteResult struct {
	Entry    domain.JournalEntry
	NewWords []domain.VocabularyWord
}

// ListResult is one page of entries.
type ListResult struct {
	Entries []domain.JournalEntry
	Page    int
	Limit   int
	Total   int
	Pages   int
}
