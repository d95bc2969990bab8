package domain

import "time"

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid reports whether t is a supported theme.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings holds the journal owner's goals and display preferences.
type Settings struct {
	DailyGoalMinutes  int
	DailySentenceGoal int
	Theme             Theme
	UpdatedAt         time.Time
}

// DefaultSettings returns Settings used before anything has been saved.
func DefaultSettings() Settings {
	return Settings{
		DailyGoalMinutes:  60,
		DailySentenceGoal: 10,
		Theme:             ThemeLight,
	}
}
