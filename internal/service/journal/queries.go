package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/observability"
)

// Get returns one entry by ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// List returns one page of entries together with the total count.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := max(input.Page, 1)
	limit := input.Limit
	if limit == 0 {
		limit = s.pageSize
	}
	sort := input.Sort
	if sort == "" {
		sort = domain.JournalSortNewest
	}

	entries, total, err := s.entries.List(ctx, domain.JournalFilter{
		Sort:   sort,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return &ListResult{
		Entries: entries,
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   (total + limit - 1) / limit,
	}, nil
}

// Search returns up to MaxSearchResults entries, newest first, whose English
// or German text contains the query and whose day lies in the given range.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.JournalEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.JournalFilter{
		Query: strings.TrimSpace(input.Query),
		Sort:  domain.JournalSortNewest,
		Limit: MaxSearchResults,
	}
	if input.StartDate != nil {
		d := domain.Day(*input.StartDate, nil)
		filter.StartDate = &d
	}
	if input.EndDate != nil {
		d := domain.Day(*input.EndDate, nil)
		filter.EndDate = &d
	}

	entries, _, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	return entries, nil
}

// Delete removes an entry. Vocabulary and progress it contributed stay.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.entries.Delete(ctx, id)
	observability.RecordJournalOp("delete", err)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry deleted", slog.Int64("entry_id", id))
	return nil
}
