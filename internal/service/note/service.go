// Package note manages free-form study notes.
package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

//go:generate moq -out note_repo_mock_test.go -pkg note . noteRepo

type noteRepo interface {
	Create(ctx context.Context, n domain.Note) (*domain.Note, error)
	Update(ctx context.Context, n domain.Note) (*domain.Note, error)
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	Exists(ctx context.Context, createdAt time.Time, title string) (bool, error)
	List(ctx context.Context, sort domain.NoteSort) ([]domain.Note, error)
	Delete(ctx context.Context, id int64) error
}

const (
	maxTitleLength   = 200
	maxContentLength = 20000
)

// Service implements note management.
type Service struct {
	log   *slog.Logger
	notes noteRepo
	clock clockwork.Clock
}

// NewService creates a new note Service.
func NewService(logger *slog.Logger, notes noteRepo, clock clockwork.Clock) *Service {
	return &Service{
		log:   logger.With("service", "note"),
		notes: notes,
		clock: clock,
	}
}

// WriteInput holds the editable fields of a note.
type WriteInput struct {
	Title   string
	Content string
}

// Validate checks both fields after trimming and collects all errors.
func (i WriteInput) Validate() error {
	var errs []domain.FieldError

	for _, f := range []struct {
		name, value string
		max         int
	}{
		{"title", i.Title, maxTitleLength},
		{"content", i.Content, maxContentLength},
	} {
		v := strings.TrimSpace(f.value)
		switch {
		case v == "":
			errs = append(errs, domain.FieldError{Field: f.name, Message: "required"})
		case utf8.RuneCountInString(v) > f.max:
			errs = append(errs, domain.FieldError{Field: f.name, Message: fmt.Sprintf("too long (max %d)", f.max)})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns all notes, newest first unless sort says otherwise.
func (s *Service) List(ctx context.Context, sort domain.NoteSort) ([]domain.Note, error) {
	if sort == "" {
		sort = domain.NoteSortNewest
	}
	if !sort.IsValid() {
		return nil, domain.NewValidationError("sort", "must be one of newest, oldest, az, za")
	}

	notes, err := s.notes.List(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Get returns one note.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Note, error) {
	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

// Create stores a new note with trimmed title and content.
func (s *Service) Create(ctx context.Context, input WriteInput) (*domain.Note, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	created, err := s.notes.Create(ctx, domain.Note{
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created", slog.Int64("note_id", created.ID))
	return created, nil
}

// Update replaces a note's title and content.
func (s *Service) Update(ctx context.Context, id int64, input WriteInput) (*domain.Note, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.notes.Update(ctx, domain.Note{
		ID:        id,
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated", slog.Int64("note_id", id))
	return updated, nil
}

// Delete removes a note.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	s.log.InfoContext(ctx, "note deleted", slog.Int64("note_id", id))
	return nil
}

// Restore stores a note from a backup, keeping its timestamps. Returns
// domain.ErrAlreadyExists when a note with the same creation time and
// title is already stored.
func (s *Service) Restore(ctx context.Context, n domain.Note) (*domain.Note, error) {
	if err := (WriteInput{Title: n.Title, Content: n.Content}).Validate(); err != nil {
		return nil, err
	}
	n.Title = strings.TrimSpace(n.Title)
	n.Content = strings.TrimSpace(n.Content)
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.clock.Now()
	}
	if n.UpdatedAt.Before(n.CreatedAt) {
		n.UpdatedAt = n.CreatedAt
	}

	exists, err := s.notes.Exists(ctx, n.CreatedAt, n.Title)
	if err != nil {
		return nil, fmt.Errorf("check note: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("note %q: %w", n.Title, domain.ErrAlreadyExists)
	}

	restored, err := s.notes.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("restore note: %w", err)
	}
	return restored, nil
}
