// Package settings implements the single-row settings repository using PostgreSQL.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT daily_goal_minutes, daily_sentence_goal, theme, updated_at
FROM user_settings WHERE id = 1`

const upsertSQL = `
INSERT INTO user_settings (id, daily_goal_minutes, daily_sentence_goal, theme, updated_at)
VALUES (1, $1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET daily_goal_minutes  = EXCLUDED.daily_goal_minutes,
    daily_sentence_goal = EXCLUDED.daily_sentence_goal,
    theme               = EXCLUDED.theme,
    updated_at          = EXCLUDED.updated_at
RETURNING daily_goal_minutes, daily_sentence_goal, theme, updated_at`

// Get returns the stored settings, or nil when none have been saved yet.
func (r *Repo) Get(ctx context.Context) (*domain.Settings, error) {
	s, err := scanSettings(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// Save stores the settings row, creating it on first use.
func (r *Repo) Save(ctx context.Context, s domain.Settings) (*domain.Settings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	saved, err := scanSettings(q.QueryRow(ctx, upsertSQL, s.DailyGoalMinutes, s.DailySentenceGoal, string(s.Theme), s.UpdatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "settings", 1)
	}
	return saved, nil
}

func scanSettings(row pgx.Row) (*domain.Settings, error) {
	var (
		s     domain.Settings
		theme string
	)
	if err := row.Scan(&s.DailyGoalMinutes, &s.DailySentenceGoal, &theme, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Theme = domain.Theme(theme)
	return &s, nil
}
