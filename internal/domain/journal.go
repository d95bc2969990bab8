package domain

import (
	"strings"
	"time"
)

// JournalEntry is one bilingual journal entry.
// EntryDate is the server-local calendar day the entry was written on.
type JournalEntry struct {
	ID              int64
	EnglishText     string
	GermanText      string
	WordCount       int
	SessionDuration int
	EntryDate       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// JournalSort selects the ordering of journal listings.
type JournalSort string

const (
	JournalSortNewest   JournalSort = "newest"
	JournalSortOldest   JournalSort = "oldest"
	JournalSortLongest  JournalSort = "longest"
	JournalSortShortest JournalSort = "shortest"
)

// JournalFilter narrows a journal listing or search.
type JournalFilter struct {
	Query     string
	StartDate *time.Time
	EndDate   *time.Time
	Sort      JournalSort
	Limit     int
	Offset    int
}

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// EntryCreatedEvent is emitted after a journal entry has been committed.
type EntryCreatedEvent struct {
	EntryID          int64
	EntryDate        time.Time
	NewWords         []string
	WordCount        int
	MinutesPracticed int
	OccurredAt       time.Time
}
