package journal

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

const (
	DefaultPageSize    = 20
	MaxPageSize        = 100
	MaxSearchResults   = 50
	maxTextLength      = 20000
	maxSessionDuration = 24 * 60
	maxQueryLength     = 200
)

// CreateInput holds the parameters for writing a new entry.
type CreateInput struct {
	EnglishText     string
	GermanText      string
	SessionDuration int
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = validateText(errs, "english_text", i.EnglishText)
	errs = validateText(errs, "german_text", i.GermanText)
	if i.SessionDuration < 0 || i.SessionDuration > maxSessionDuration {
		errs = append(errs, domain.FieldError{Field: "session_duration", Message: "must be between 0 and 1440"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for editing an entry. Nil fields keep
// their stored value.
type UpdateInput struct {
	ID          int64
	EnglishText *string
	GermanText  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.EnglishText != nil {
		errs = validateText(errs, "english_text", *i.EnglishText)
	}
	if i.GermanText != nil {
		errs = validateText(errs, "german_text", *i.GermanText)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for a paged listing. Page starts at 1.
type ListInput struct {
	Page  int
	Limit int
	Sort  domain.JournalSort
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 1"})
	}
	if i.Limit < 0 || i.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}
	switch i.Sort {
	case "", domain.JournalSortNewest, domain.JournalSortOldest, domain.JournalSortLongest, domain.JournalSortShortest:
	default:
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be one of newest, oldest, longest, shortest"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SearchInput holds the parameters for searching entries. At least one
// field must be set. Dates are calendar days, inclusive.
type SearchInput struct {
	Query     string
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.Query)
	if q == "" && i.StartDate == nil && i.EndDate == nil {
		errs = append(errs, domain.FieldError{Field: "q", Message: "search query or date range required"})
	}
	if utf8.RuneCountInString(q) > maxQueryLength {
		errs = append(errs, domain.FieldError{Field: "q", Message: "max 200 characters"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateText(errs []domain.FieldError, field, text string) []domain.FieldError {
	switch {
	case strings.TrimSpace(text) == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(text) > maxTextLength:
		errs = append(errs, domain.FieldError{Field: field, Message: "too long (max 20000)"})
	}
	return errs
}
