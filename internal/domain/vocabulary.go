package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VocabularyWord is a German word mined from journal entries or added by hand.
// Word keeps the surface form as first observed; uniqueness is enforced on
// its case-folded key.
type VocabularyWord struct {
	ID           int64
	Word         string
	FirstSeen    time.Time
	Frequency    int
	LastReviewed *time.Time
}

// VocabularySort selects the ordering of vocabulary listings.
type VocabularySort string

const (
	VocabularySortNewest    VocabularySort = "newest"
	VocabularySortAZ        VocabularySort = "az"
	VocabularySortZA        VocabularySort = "za"
	VocabularySortFrequency VocabularySort = "frequency"
)

// IsValid reports whether s is a known sort order.
func (s VocabularySort) IsValid() bool {
	switch s {
	case VocabularySortNewest, VocabularySortAZ, VocabularySortZA, VocabularySortFrequency:
		return true
	}
	return false
}

// VocabularyFilter narrows a vocabulary listing.
type VocabularyFilter struct {
	Search string
	Sort   VocabularySort
	Limit  int
}

// VocabularyStats summarizes vocabulary growth.
type VocabularyStats struct {
	Total          int
	ThisWeek       int
	ThisMonth      int
	AveragePerWeek int
}

// WordKey returns the case-insensitive comparison key for a word.
// German casing rules apply, so "Haus", "haus" and "HAUS" share a key.
func WordKey(word string) string {
	return cases.Lower(language.German).String(strings.TrimSpace(word))
}
