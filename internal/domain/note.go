package domain

import "time"

// Note is a free-form study note kept next to the journal.
type Note struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteSort selects the ordering of note listings.
type NoteSort string

const (
	NoteSortNewest NoteSort = "newest"
	NoteSortOldest NoteSort = "oldest"
	NoteSortAZ     NoteSort = "az"
	NoteSortZA     NoteSort = "za"
)

// IsValid reports whether s is a known sort order.
func (s NoteSort) IsValid() bool {
	switch s {
	case NoteSortNewest, NoteSortOldest, NoteSortAZ, NoteSortZA:
		return true
	}
	return false
}
