package vocabulary

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

const (
	maxWordLength  = 100
	maxSearchLen   = 100
	maxListLimit   = 1000
	statsWeekDays  = 7
	statsMonthDays = 30
)

// ListInput holds the parameters for listing vocabulary.
type ListInput struct {
	Search string
	Sort   domain.VocabularySort
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be one of newest, az, za, frequency"})
	}
	if utf8.RuneCountInString(i.Search) > maxSearchLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 100 characters"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 1000"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddWordInput holds the parameters for adding a word by hand.
type AddWordInput struct {
	Word string
}

// Validate checks all fields and collects all errors.
func (i AddWordInput) Validate() error {
	var errs []domain.FieldError

	word := strings.TrimSpace(i.Word)
	if word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if utf8.RuneCountInString(word) > maxWordLength {
		errs = append(errs, domain.FieldError{Field: "word", Message: "max 100 characters"})
	}
	if strings.ContainsAny(word, " \t\n") {
		errs = append(errs, domain.FieldError{Field: "word", Message: "must be a single word"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
