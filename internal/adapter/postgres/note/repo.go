// Package note implements the study note repository using PostgreSQL.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

const entity = "note"

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, title, content, created_at, updated_at`

const createSQL = `
INSERT INTO notes (title, content, created_at, updated_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + columns

const updateSQL = `
UPDATE notes SET title = $2, content = $3, updated_at = $4
WHERE id = $1
RETURNING ` + columns

const existsSQL = `SELECT EXISTS(SELECT 1 FROM notes WHERE created_at = $1 AND title = $2)`

// Create inserts a note with the given timestamps.
func (r *Repo) Create(ctx context.Context, n domain.Note) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanNote(q.QueryRow(ctx, createSQL, n.Title, n.Content, n.CreatedAt, n.UpdatedAt))
	if err != nil {
		return nil, postgres.MapError(err, entity, n.Title)
	}
	return created, nil
}

// Update replaces title and content. Returns domain.ErrNotFound if the
// note does not exist.
func (r *Repo) Update(ctx context.Context, n domain.Note) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanNote(q.QueryRow(ctx, updateSQL, n.ID, n.Title, n.Content, n.UpdatedAt))
	if err != nil {
		return nil, postgres.MapError(err, entity, n.ID)
	}
	return updated, nil
}

// GetByID returns a note by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNote(q.QueryRow(ctx, `SELECT `+columns+` FROM notes WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return n, nil
}

// Exists reports whether a note with this creation time and title is
// stored. Backup import uses it to skip notes already present.
func (r *Repo) Exists(ctx context.Context, createdAt time.Time, title string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, createdAt, title).Scan(&exists); err != nil {
		return false, fmt.Errorf("check note exists: %w", err)
	}
	return exists, nil
}

// List returns all notes in the given order. Title ordering ignores case.
func (r *Repo) List(ctx context.Context, sort domain.NoteSort) ([]domain.Note, error) {
	b := postgres.Builder.Select(columns).From("notes")

	switch sort {
	case domain.NoteSortOldest:
		b = b.OrderBy("created_at ASC", "id ASC")
	case domain.NoteSortAZ:
		b = b.OrderBy("lower(title) ASC", "id ASC")
	case domain.NoteSortZA:
		b = b.OrderBy("lower(title) DESC", "id DESC")
	default:
		b = b.OrderBy("created_at DESC", "id DESC")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Delete removes a note. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every note.
func (r *Repo) DeleteAll(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("delete all notes: %w", err)
	}
	return nil
}

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}
