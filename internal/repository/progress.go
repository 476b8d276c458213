package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/workout-coach-bot/internal/domain/entities"
)

// GetProgress returns the completion/weight state for all records of the
// user in the given (week, day) context, keyed by exercise ID.
func (s *Store) GetProgress(ctx context.Context, userID int64, week, day int) (map[string]entities.ExerciseProgress, error) {
	query := `
		SELECT exercise_id, completed, weight
		FROM user_progress
		WHERE user_id = $1 AND week = $2 AND day = $3
	`

	rows, err := s.db.Query(ctx, query, userID, week, day)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[string]entities.ExerciseProgress)
	for rows.Next() {
		var (
			exerciseID string
			p          entities.ExerciseProgress
		)
		if err = rows.Scan(&exerciseID, &p.Completed, &p.Weight); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		progress[exerciseID] = p
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}

	return progress, nil
}

// GetRecord returns a single record by its (userID, exerciseID) key
// regardless of the denormalized week/day, or (nil, nil) if absent.
func (s *Store) GetRecord(ctx context.Context, userID int64, exerciseID string) (*entities.ProgressRecord, error) {
	query := `
		SELECT user_id, exercise_id, week, day, completed, weight, last_updated_at
		FROM user_progress
		WHERE user_id = $1 AND exercise_id = $2
	`

	var rec entities.ProgressRecord
	err := s.db.QueryRow(ctx, query, userID, exerciseID).Scan(
		&rec.UserID,
		&rec.ExerciseID,
		&rec.Week,
		&rec.Day,
		&rec.Completed,
		&rec.Weight,
		&rec.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record: %w", err)
	}

	return &rec, nil
}

// UpsertProgress creates or updates the record for (userID, exerciseID).
// Nil completed/weight leave the stored field untouched; week and day are
// always rewritten to the caller-supplied context.
func (s *Store) UpsertProgress(ctx context.Context, userID int64, week, day int, exerciseID string, completed *bool, weight *float64) error {
	query := `
		INSERT INTO user_progress (user_id, exercise_id, week, day, completed, weight, last_updated_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, false), $6, NOW())
		ON CONFLICT (user_id, exercise_id)
		DO UPDATE SET
			week = excluded.week,
			day = excluded.day,
			completed = COALESCE($5, user_progress.completed),
			weight = COALESCE($6, user_progress.weight),
			last_updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, userID, exerciseID, week, day, completed, weight); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// ResetAllProgress deletes every record of the user and zeroes both
// counters in one transaction. The position is left as is.
func (s *Store) ResetAllProgress(ctx context.Context, userID int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM user_progress WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}

		query := `
			UPDATE users
			SET total_workouts = 0, total_exercises_completed = 0
			WHERE id = $1
		`
		if _, err := tx.Exec(ctx, query, userID); err != nil {
			return fmt.Errorf("zero counters: %w", err)
		}

		return nil
	})
}
