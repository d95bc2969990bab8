package backup

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FormatVersion is written into every exported document.
const FormatVersion = "1.0"

// Document is the backup file layout.
type Document struct {
	Version    string    `json:"version"`
	ExportDate time.Time `json:"exportDate"`
	Data       Data      `json:"data"`
	Metadata   Metadata  `json:"metadata"`
}

// Data holds the exported records.
type Data struct {
	JournalEntries []JournalEntry `json:"journalEntries"`
	Vocabulary     []Word         `json:"vocabulary"`
	CustomPhrases  []Phrase       `json:"customPhrases"`
	Notes          []Note         `json:"notes"`
	Settings       *Settings      `json:"settings,omitempty"`
	ProgressStats  []Progress     `json:"progressStats"`
}

// Metadata holds record counts.
type Metadata struct {
	TotalEntries       int `json:"totalEntries"`
	TotalVocabulary    int `json:"totalVocabulary"`
	TotalCustomPhrases int `json:"totalCustomPhrases"`
	TotalNotes         int `json:"totalNotes"`
	TotalProgressDays  int `json:"totalProgressDays"`
}

type JournalEntry struct {
	ID              int64  `json:"id,omitempty"`
	EnglishText     string `json:"english_text"`
	GermanText      string `json:"german_text"`
	WordCount       int    `json:"word_count"`
	SessionDuration int    `json:"session_duration"`
	CreatedAt       Time   `json:"created_at"`
}

type Word struct {
	ID           int64  `json:"id,omitempty"`
	Word         string `json:"word"`
	FirstSeen    Time   `json:"first_seen"`
	Frequency    int    `json:"frequency"`
	LastReviewed *Time  `json:"last_reviewed"`
}

type Phrase struct {
	ID            int64  `json:"id,omitempty"`
	English       string `json:"english"`
	German        string `json:"german"`
	CreatedAt     Time   `json:"created_at"`
	TimesReviewed int    `json:"times_reviewed"`
}

type Note struct {
	ID        int64  `json:"id,omitempty"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt Time   `json:"created_at"`
	UpdatedAt Time   `json:"updated_at"`
}

type Settings struct {
	DailyGoalMinutes  int    `json:"daily_goal_minutes"`
	DailySentenceGoal int    `json:"daily_sentence_goal"`
	Theme             string `json:"theme"`
}

// Progress.Date is a YYYY-MM-DD calendar day.
type Progress struct {
	Date             string `json:"date"`
	WordsLearned     int    `json:"words_learned"`
	EntriesWritten   int    `json:"entries_written"`
	MinutesPracticed int    `json:"minutes_practiced"`
}

// Mode selects how an import treats existing data.
type Mode string

const (
	ModeMerge   Mode = "merge"
	ModeReplace Mode = "replace"
)

// ClearConfirmation must be passed to Clear.
const ClearConfirmation = "DELETE_ALL_DATA"

// ImportCounts counts records per kind.
type ImportCounts struct {
	JournalEntries int `json:"journalEntries"`
	Vocabulary     int `json:"vocabulary"`
	CustomPhrases  int `json:"customPhrases"`
	Notes          int `json:"notes"`
	ProgressStats  int `json:"progressStats"`
}

// ImportReport summarizes an import.
type ImportReport struct {
	Imported ImportCounts `json:"imported"`
	Skipped  ImportCounts `json:"skipped"`
	Errors   []string     `json:"errors,omitempty"`
}

// Time is a timestamp that also accepts the "2006-01-02 15:04:05" layout
// found in older backups. It is always written as RFC 3339.
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("timestamp %q: unsupported format", s)
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
