package repository

import (
	"context"
	"fmt"
)

// AppendTimerHistory logs one completed timer run. Append-only; cancelled
// timers never reach this call.
func (s *Store) AppendTimerHistory(ctx context.Context, userID int64, exerciseName string, seconds int) error {
	query := `
		INSERT INTO timer_history (user_id, exercise_name, duration_seconds)
		VALUES ($1, $2, $3)
	`

	if _, err := s.db.Exec(ctx, query, userID, exerciseName, seconds); err != nil {
		return fmt.Errorf("append timer history: %w", err)
	}
	return nil
}
