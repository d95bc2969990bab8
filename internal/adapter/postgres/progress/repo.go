// Package progress implements the daily progress repository using PostgreSQL.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

const entity = "progress"

// Repo provides per-day progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `date, words_learned, entries_written, minutes_practiced`

// Counters are added to the stored row, never overwritten.
const upsertSQL = `
INSERT INTO progress_stats (` + columns + `)
VALUES ($1, $2, $3, $4)
ON CONFLICT (date) DO UPDATE
SET words_learned     = progress_stats.words_learned + EXCLUDED.words_learned,
    entries_written   = progress_stats.entries_written + EXCLUDED.entries_written,
    minutes_practiced = progress_stats.minutes_practiced + EXCLUDED.minutes_practiced
RETURNING ` + columns

// Restore keeps the larger of the stored and restored counters.
const restoreSQL = `
INSERT INTO progress_stats (` + columns + `)
VALUES ($1, $2, $3, $4)
ON CONFLICT (date) DO UPDATE
SET words_learned     = GREATEST(progress_stats.words_learned, EXCLUDED.words_learned),
    entries_written   = GREATEST(progress_stats.entries_written, EXCLUDED.entries_written),
    minutes_practiced = GREATEST(progress_stats.minutes_practiced, EXCLUDED.minutes_practiced)`

const getByDateSQL = `SELECT ` + columns + ` FROM progress_stats WHERE date = $1`

const listRangeSQL = `
SELECT ` + columns + `
FROM progress_stats
WHERE date BETWEEN $1 AND $2
ORDER BY date`

const listAllSQL = `SELECT ` + columns + ` FROM progress_stats ORDER BY date`

const activeDatesSQL = `
SELECT date FROM progress_stats
WHERE words_learned > 0 OR entries_written > 0 OR minutes_practiced > 0
ORDER BY date DESC`

// Upsert adds delta to the record for date, creating it when absent.
// The whole read-modify-write is one statement.
func (r *Repo) Upsert(ctx context.Context, date time.Time, delta domain.ProgressDelta) (*domain.DailyProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, upsertSQL, date, delta.WordsLearned, delta.EntriesWritten, delta.MinutesPracticed)
	p, err := scanProgress(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, domain.FormatDay(date))
	}
	return p, nil
}

// Restore writes a record from a backup without double counting a day
// that has already been rebuilt by replaying its entries.
func (r *Repo) Restore(ctx context.Context, p domain.DailyProgress) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, restoreSQL, p.Date, p.WordsLearned, p.EntriesWritten, p.MinutesPracticed)
	if err != nil {
		return postgres.MapError(err, entity, domain.FormatDay(p.Date))
	}
	return nil
}

// GetByDate returns the record for a day. Returns domain.ErrNotFound if none exists.
func (r *Repo) GetByDate(ctx context.Context, date time.Time) (*domain.DailyProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgress(q.QueryRow(ctx, getByDateSQL, date))
	if err != nil {
		return nil, postgres.MapError(err, entity, domain.FormatDay(date))
	}
	return p, nil
}

// ListRange returns the stored records between from and to inclusive, oldest first.
// Days without a record are absent.
func (r *Repo) ListRange(ctx context.Context, from, to time.Time) ([]domain.DailyProgress, error) {
	return r.list(ctx, listRangeSQL, from, to)
}

// ListAll returns every record, oldest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.DailyProgress, error) {
	return r.list(ctx, listAllSQL)
}

// ActiveDates returns the days with any recorded activity, newest first.
func (r *Repo) ActiveDates(ctx context.Context) ([]time.Time, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, activeDatesSQL)
	if err != nil {
		return nil, fmt.Errorf("list active dates: %w", err)
	}
	dates, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("list active dates: %w", err)
	}
	return dates, nil
}

// TotalMinutes returns the sum of minutes practiced over all days.
func (r *Repo) TotalMinutes(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT COALESCE(sum(minutes_practiced), 0) FROM progress_stats`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("sum minutes practiced: %w", err)
	}
	return n, nil
}

// DeleteAll removes every record.
func (r *Repo) DeleteAll(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM progress_stats`); err != nil {
		return fmt.Errorf("delete all progress: %w", err)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]domain.DailyProgress, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	result := make([]domain.DailyProgress, 0)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return result, nil
}

func scanProgress(row pgx.Row) (*domain.DailyProgress, error) {
	var p domain.DailyProgress
	if err := row.Scan(&p.Date, &p.WordsLearned, &p.EntriesWritten, &p.MinutesPracticed); err != nil {
		return nil, err
	}
	return &p, nil
}
