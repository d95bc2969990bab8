// Package settings manages the journal owner's goals and theme.
package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

//go:generate moq -out settings_repo_mock_test.go -pkg settings . settingsRepo

type settingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) (*domain.Settings, error)
}

const (
	minGoalMinutes  = 1
	maxGoalMinutes  = 480
	minSentenceGoal = 1
	maxSentenceGoal = 100
)

// Service reads and updates settings.
type Service struct {
	log   *slog.Logger
	repo  settingsRepo
	clock clockwork.Clock
}

// NewService creates a new settings Service.
func NewService(logger *slog.Logger, repo settingsRepo, clock clockwork.Clock) *Service {
	return &Service{
		log:   logger.With("service", "settings"),
		repo:  repo,
		clock: clock,
	}
}

// UpdateInput holds a partial update. Nil fields keep their current value.
type UpdateInput struct {
	DailyGoalMinutes  *int
	DailySentenceGoal *int
	Theme             *domain.Theme
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if v := i.DailyGoalMinutes; v != nil && (*v < minGoalMinutes || *v > maxGoalMinutes) {
		errs = append(errs, domain.FieldError{Field: "daily_goal_minutes", Message: "must be between 1 and 480"})
	}
	if v := i.DailySentenceGoal; v != nil && (*v < minSentenceGoal || *v > maxSentenceGoal) {
		errs = append(errs, domain.FieldError{Field: "daily_sentence_goal", Message: "must be between 1 and 100"})
	}
	if i.Theme != nil && !i.Theme.IsValid() {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "must be either light or dark"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Get returns the saved settings, or the defaults when nothing was saved.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	saved, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	if saved == nil {
		return domain.DefaultSettings(), nil
	}
	return *saved, nil
}

// Update applies a partial update on top of the current settings.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Settings, error) {
	if err := input.Validate(); err != nil {
		return domain.Settings{}, err
	}

	current, err := s.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if input.DailyGoalMinutes != nil {
		current.DailyGoalMinutes = *input.DailyGoalMinutes
	}
	if input.DailySentenceGoal != nil {
		current.DailySentenceGoal = *input.DailySentenceGoal
	}
	if input.Theme != nil {
		current.Theme = *input.Theme
	}

	return s.save(ctx, current)
}

// Restore replaces the settings with a backed-up copy. Out-of-range values
// are rejected the same way Update rejects them.
func (s *Service) Restore(ctx context.Context, st domain.Settings) (domain.Settings, error) {
	input := UpdateInput{
		DailyGoalMinutes:  &st.DailyGoalMinutes,
		DailySentenceGoal: &st.DailySentenceGoal,
		Theme:             &st.Theme,
	}
	if err := input.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return s.save(ctx, st)
}

func (s *Service) save(ctx context.Context, st domain.Settings) (domain.Settings, error) {
	st.UpdatedAt = s.clock.Now()
	saved, err := s.repo.Save(ctx, st)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings saved",
		slog.Int("daily_goal_minutes", saved.DailyGoalMinutes),
		slog.Int("daily_sentence_goal", saved.DailySentenceGoal),
		slog.String("theme", string(saved.Theme)),
	)
	return *saved, nil
}
