// Package phrase implements the custom phrase repository using PostgreSQL.
package phrase

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

const entity = "phrase"

// Repo provides custom phrase persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new phrase repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, english, german, created_at, times_reviewed`

// Case-insensitive uniqueness on either side is enforced by unique indexes
// on lower(english) and lower(german); a clash surfaces as 23505.
const createSQL = `
INSERT INTO custom_phrases (english, german, created_at, times_reviewed)
VALUES ($1, $2, $3, $4)
RETURNING ` + columns

const existsSQL = `
SELECT EXISTS(
    SELECT 1 FROM custom_phrases
    WHERE lower(english) = lower($1) OR lower(german) = lower($2)
)`

const reviewSQL = `
UPDATE custom_phrases SET times_reviewed = times_reviewed + 1
WHERE id = $1
RETURNING ` + columns

// Create inserts a phrase. Returns domain.ErrAlreadyExists when either text
// is already stored under case-insensitive comparison.
func (r *Repo) Create(ctx context.Context, p domain.Phrase) (*domain.Phrase, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanPhrase(q.QueryRow(ctx, createSQL, p.English, p.German, p.CreatedAt, p.TimesReviewed))
	if err != nil {
		return nil, postgres.MapError(err, entity, p.English)
	}
	return created, nil
}

// Exists reports whether english or german is already a custom phrase.
func (r *Repo) Exists(ctx context.Context, english, german string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, english, german).Scan(&exists); err != nil {
		return false, fmt.Errorf("check phrase exists: %w", err)
	}
	return exists, nil
}

// List returns all custom phrases, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Phrase, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).
		Query(ctx, `SELECT `+columns+` FROM custom_phrases ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list phrases: %w", err)
	}
	defer rows.Close()

	phrases := make([]domain.Phrase, 0)
	for rows.Next() {
		p, err := scanPhrase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan phrase: %w", err)
		}
		phrases = append(phrases, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list phrases: %w", err)
	}
	return phrases, nil
}

// IncrementReviewed adds one review to the phrase.
func (r *Repo) IncrementReviewed(ctx context.Context, id int64) (*domain.Phrase, error) {
	p, err := scanPhrase(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, reviewSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return p, nil
}

// Delete removes a phrase. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM custom_phrases WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every custom phrase.
func (r *Repo) DeleteAll(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM custom_phrases`); err != nil {
		return fmt.Errorf("delete all phrases: %w", err)
	}
	return nil
}

func scanPhrase(row pgx.Row) (*domain.Phrase, error) {
	var p domain.Phrase
	if err := row.Scan(&p.ID, &p.English, &p.German, &p.CreatedAt, &p.TimesReviewed); err != nil {
		return nil, err
	}
	return &p, nil
}
