package domain

import "time"

// SentenceMatch is a journal sentence containing a search term.
type SentenceMatch struct {
	EntryID   int64
	Sentence  string
	Language  string
	CreatedAt time.Time
}

// SearchResult is the unified search response.
type SearchResult struct {
	Vocabulary []VocabularyWord
	Sentences  []SentenceMatch
}
