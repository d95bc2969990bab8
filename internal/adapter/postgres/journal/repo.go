// Package journal implements the journal entry repository using PostgreSQL.
package journal

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

const entity = "journal entry"

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, english_text, german_text, word_count, session_duration, entry_date, created_at, updated_at`

const createSQL = `
INSERT INTO journal_entries (english_text, german_text, word_count, session_duration, entry_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + columns

const updateSQL = `
UPDATE journal_entries
SET english_text = $2, german_text = $3, word_count = $4, updated_at = $5
WHERE id = $1
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM journal_entries WHERE id = $1`

const existsSQL = `
SELECT EXISTS(SELECT 1 FROM journal_entries WHERE created_at = $1 AND german_text = $2)`

const entryDatesSQL = `SELECT DISTINCT entry_date FROM journal_entries ORDER BY entry_date DESC`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry. CreatedAt and EntryDate are taken from e.
func (r *Repo) Create(ctx context.Context, e domain.JournalEntry) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		e.EnglishText, e.GermanText, e.WordCount, e.SessionDuration, e.EntryDate, e.CreatedAt,
	)
	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, "new")
	}
	return created, nil
}

// Update replaces both texts and the word count.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Update(ctx context.Context, e domain.JournalEntry) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL, e.ID, e.EnglishText, e.GermanText, e.WordCount, e.UpdatedAt)
	updated, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, e.ID)
	}
	return updated, nil
}

// Delete removes an entry. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every entry.
func (r *Repo) DeleteAll(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM journal_entries`); err != nil {
		return fmt.Errorf("delete all journal entries: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return e, nil
}

// Exists reports whether an entry with the same creation time and German
// text is already stored. Used to keep repeated imports idempotent.
func (r *Repo) Exists(ctx context.Context, createdAt time.Time, germanText string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, createdAt, germanText).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check journal entry exists: %w", err)
	}
	return exists, nil
}

// List returns a page of entries matching the filter together with the total
// number of matching entries.
func (r *Repo) List(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, int, error) {
	where := whereClause(filter)

	countQuery, countArgs, err := postgres.Builder.Select("count(*)").From("journal_entries").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count journal query: %w", err)
	}

	var total int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count journal entries: %w", err)
	}

	entries, err := r.query(ctx, selectBuilder(filter).Where(where))
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// ListAll returns every entry, oldest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.JournalEntry, error) {
	return r.query(ctx, postgres.Builder.Select(columns).From("journal_entries").OrderBy("created_at ASC", "id ASC"))
}

// EntryDates returns the distinct days with at least one entry, newest first.
func (r *Repo) EntryDates(ctx context.Context) ([]time.Time, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, entryDatesSQL)
	if err != nil {
		return nil, fmt.Errorf("list entry dates: %w", err)
	}
	dates, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("list entry dates: %w", err)
	}
	return dates, nil
}

// Totals returns the number of entries, the number created at or after
// since, and the sum of their word counts.
func (r *Repo) Totals(ctx context.Context, since time.Time) (count, countSince, words int, err error) {
	const totalsSQL = `
SELECT count(*),
       count(*) FILTER (WHERE created_at >= $1),
       COALESCE(sum(word_count), 0)
FROM journal_entries`

	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, totalsSQL, since).Scan(&count, &countSince, &words)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("journal totals: %w", err)
	}
	return count, countSince, words, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func whereClause(filter domain.JournalFilter) sq.And {
	where := sq.And{}
	if filter.Query != "" {
		pattern := postgres.Contains(filter.Query)
		where = append(where, sq.Or{
			sq.ILike{"english_text": pattern},
			sq.ILike{"german_text": pattern},
		})
	}
	if filter.StartDate != nil {
		where = append(where, sq.GtOrEq{"entry_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		where = append(where, sq.LtOrEq{"entry_date": *filter.EndDate})
	}
	return where
}

func selectBuilder(filter domain.JournalFilter) sq.SelectBuilder {
	b := postgres.Builder.Select(columns).From("journal_entries")

	switch filter.Sort {
	case domain.JournalSortOldest:
		b = b.OrderBy("created_at ASC", "id ASC")
	case domain.JournalSortLongest:
		b = b.OrderBy("word_count DESC", "created_at DESC", "id DESC")
	case domain.JournalSortShortest:
		b = b.OrderBy("word_count ASC", "created_at DESC", "id DESC")
	default:
		b = b.OrderBy("created_at DESC", "id DESC")
	}

	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}
	return b
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]domain.JournalEntry, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(&e.ID, &e.EnglishText, &e.GermanText, &e.WordCount,
		&e.SessionDuration, &e.EntryDate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
