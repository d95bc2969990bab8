// Package vocabulary implements the vocabulary repository using PostgreSQL.
// Uniqueness is enforced on word_key, the case-folded form of the word, so
// that concurrent writers never create two rows for "Haus" and "haus".
package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

const entity = "vocabulary"

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, word, first_seen, frequency, last_reviewed`

const recordOccurrenceSQL = `
INSERT INTO vocabulary (word, word_key, first_seen, frequency, last_reviewed)
VALUES ($1, $2, $3, 1, $3)
ON CONFLICT (word_key) DO UPDATE
SET frequency = vocabulary.frequency + 1,
    last_reviewed = EXCLUDED.last_reviewed
RETURNING ` + columns + `, (xmax = 0) AS inserted`

const createSQL = `
INSERT INTO vocabulary (word, word_key, first_seen, frequency, last_reviewed)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (word_key) DO NOTHING
RETURNING ` + columns

const getByWordSQL = `SELECT ` + columns + ` FROM vocabulary WHERE word_key = $1`

const markReviewedSQL = `
UPDATE vocabulary SET last_reviewed = $2 WHERE id = $1 RETURNING ` + columns

// writersLockKey is the transaction-level advisory lock that orders
// vocabulary writers. Entry writes hold it shared; bulk rewrites (import,
// clear) hold it exclusively, so a long import never interleaves its row
// locks with those of live entries.
const writersLockKey int64 = 0x7461676562756368

// ---------------------------------------------------------------------------
// Locking
// ---------------------------------------------------------------------------

// LockShared takes the writers lock in shared mode until the surrounding
// transaction ends. Outside a transaction it is released immediately.
func (r *Repo) LockShared(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).
		Exec(ctx, `SELECT pg_advisory_xact_lock_shared($1)`, writersLockKey); err != nil {
		return fmt.Errorf("lock vocabulary shared: %w", err)
	}
	return nil
}

// LockExclusive takes the writers lock exclusively until the surrounding
// transaction ends. It waits for every entry write in flight.
func (r *Repo) LockExclusive(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).
		Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, writersLockKey); err != nil {
		return fmt.Errorf("lock vocabulary exclusive: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// RecordOccurrence inserts word with frequency 1 or, when its case-folded key
// already exists, increments the frequency and sets last_reviewed to at.
// It runs as one statement so concurrent callers cannot lose an update.
// The returned flag is true when a new row was created.
func (r *Repo) RecordOccurrence(ctx context.Context, word string, at time.Time) (*domain.VocabularyWord, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		w        domain.VocabularyWord
		inserted bool
	)
	err := q.QueryRow(ctx, recordOccurrenceSQL, word, domain.WordKey(word), at).
		Scan(&w.ID, &w.Word, &w.FirstSeen, &w.Frequency, &w.LastReviewed, &inserted)
	if err != nil {
		return nil, false, postgres.MapError(err, entity, word)
	}
	return &w, inserted, nil
}

// Create inserts a word as-is. Returns domain.ErrAlreadyExists when a word
// with the same case-folded key is present.
func (r *Repo) Create(ctx context.Context, w domain.VocabularyWord) (*domain.VocabularyWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if w.Frequency < 1 {
		w.Frequency = 1
	}

	row := q.QueryRow(ctx, createSQL, w.Word, domain.WordKey(w.Word), w.FirstSeen, w.Frequency, w.LastReviewed)
	created, err := scanWord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", entity, w.Word, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, entity, w.Word)
	}
	return created, nil
}

// MarkReviewed sets last_reviewed without touching the frequency.
func (r *Repo) MarkReviewed(ctx context.Context, id int64, at time.Time) (*domain.VocabularyWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, markReviewedSQL, id, at))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return w, nil
}

// Delete removes a word. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM vocabulary WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every word.
func (r *Repo) DeleteAll(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `DELETE FROM vocabulary`); err != nil {
		return fmt.Errorf("delete all vocabulary: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByWord looks a word up case-insensitively.
// Returns domain.ErrNotFound if no such word exists.
func (r *Repo) GetByWord(ctx context.Context, word string) (*domain.VocabularyWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, getByWordSQL, domain.WordKey(word)))
	if err != nil {
		return nil, postgres.MapError(err, entity, word)
	}
	return w, nil
}

// List returns words matching the filter. A zero Limit means no limit.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyWord, error) {
	b := postgres.Builder.Select(columns).From("vocabulary")

	if filter.Search != "" {
		b = b.Where(sq.ILike{"word": postgres.Contains(filter.Search)})
	}

	switch filter.Sort {
	case domain.VocabularySortAZ:
		b = b.OrderBy("word_key ASC", "id ASC")
	case domain.VocabularySortZA:
		b = b.OrderBy("word_key DESC", "id DESC")
	case domain.VocabularySortFrequency:
		b = b.OrderBy("frequency DESC", "first_seen DESC", "id DESC")
	default:
		b = b.OrderBy("first_seen DESC", "id DESC")
	}

	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list vocabulary query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	defer rows.Close()

	words := make([]domain.VocabularyWord, 0)
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vocabulary: %w", err)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	return words, nil
}

// Count returns the total number of words.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT count(*) FROM vocabulary`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count vocabulary: %w", err)
	}
	return n, nil
}

// CountSince returns the number of words first seen at or after since.
func (r *Repo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT count(*) FROM vocabulary WHERE first_seen >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count vocabulary since: %w", err)
	}
	return n, nil
}

// EarliestFirstSeen returns the oldest first_seen, or nil for an empty vocabulary.
func (r *Repo) EarliestFirstSeen(ctx context.Context) (*time.Time, error) {
	var t *time.Time
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT min(first_seen) FROM vocabulary`).Scan(&t)
	if err != nil {
		return nil, fmt.Errorf("earliest first_seen: %w", err)
	}
	return t, nil
}

// FirstSeenTimes returns the distinct first_seen timestamps, newest first.
func (r *Repo) FirstSeenTimes(ctx context.Context) ([]time.Time, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).
		Query(ctx, `SELECT DISTINCT first_seen FROM vocabulary ORDER BY first_seen DESC`)
	if err != nil {
		return nil, fmt.Errorf("list first_seen: %w", err)
	}
	times, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("list first_seen: %w", err)
	}
	return times, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.VocabularyWord, error) {
	var w domain.VocabularyWord
	if err := row.Scan(&w.ID, &w.Word, &w.FirstSeen, &w.Frequency, &w.LastReviewed); err != nil {
		return nil, err
	}
	return &w, nil
}
