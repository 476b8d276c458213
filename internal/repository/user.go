package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/workout-coach-bot/internal/domain/entities"
)

// GetUser returns the user or (nil, nil) if they have never contacted the
// bot.
func (s *Store) GetUser(ctx context.Context, userID int64) (*entities.User, error) {
	query := `
		SELECT id, name, week, day, total_workouts, total_exercises_completed, created_at
		FROM users
		WHERE id = $1
	`

	var u entities.User
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&u.ID,
		&u.Name,
		&u.Week,
		&u.Day,
		&u.TotalWorkouts,
		&u.TotalExercisesCompleted,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// CreateUser inserts the user on first contact. Safe to call repeatedly;
// an existing user is returned unchanged.
func (s *Store) CreateUser(ctx context.Context, userID int64, name string) (*entities.User, error) {
	query := `
		INSERT INTO users (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := s.db.Exec(ctx, query, userID, name); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.GetUser(ctx, userID)
}

// SetPosition records the user's current (week, day) position.
func (s *Store) SetPosition(ctx context.Context, userID int64, week, day int) error {
	query := `UPDATE users SET week = $2, day = $3 WHERE id = $1`

	if _, err := s.db.Exec(ctx, query, userID, week, day); err != nil {
		return fmt.Errorf("set position: %w", err)
	}
	return nil
}

// AdjustCompletedCounter moves the exercises-completed counter by a
// relative delta. A relative update stays correct under concurrent
// writers, unlike an equality-checked rewrite of a previously read value.
func (s *Store) AdjustCompletedCounter(ctx context.Context, userID int64, delta int) error {
	query := `
		UPDATE users
		SET total_exercises_completed = GREATEST(0, total_exercises_completed + $2)
		WHERE id = $1
	`

	if _, err := s.db.Exec(ctx, query, userID, delta); err != nil {
		return fmt.Errorf("adjust completed counter: %w", err)
	}
	return nil
}

// AdjustWorkoutCounter moves the finished-workouts counter by a relative
// delta.
func (s *Store) AdjustWorkoutCounter(ctx context.Context, userID int64, delta int) error {
	query := `
		UPDATE users
		SET total_workouts = GREATEST(0, total_workouts + $2)
		WHERE id = $1
	`

	if _, err := s.db.Exec(ctx, query, userID, delta); err != nil {
		return fmt.Errorf("adjust workout counter: %w", err)
	}
	return nil
}
