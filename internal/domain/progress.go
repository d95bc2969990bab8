package domain

import "time"

// DailyProgress is the aggregate learning record for one calendar day.
// Date is normalized with Day; at most one record exists per date.
type DailyProgress struct {
	Date             time.Time
	WordsLearned     int
	EntriesWritten   int
	MinutesPracticed int
}

// ProgressDelta is added to a day's counters on each recorded session.
type ProgressDelta struct {
	WordsLearned     int
	EntriesWritten   int
	MinutesPracticed int
}

// Streak holds consecutive-day practice metrics. LastActive is nil when
// there has been no activity at all.
type Streak struct {
	Current    int
	Longest    int
	LastActive *time.Time
}

// ChartData is a fixed-length series prepared for charting.
type ChartData struct {
	Labels  []string
	Words   []int
	Entries []int
	Minutes []int
}

// ProgressStats holds lifetime and weekly totals.
type ProgressStats struct {
	VocabularyTotal    int
	VocabularyThisWeek int
	EntriesTotal       int
	EntriesThisWeek    int
	WordsWritten       int
	MinutesPracticed   int
}

// ProgressDashboard bundles the figures shown on the home screen.
type ProgressDashboard struct {
	Stats   ProgressStats
	Streak  Streak
	History []DailyProgress
}
