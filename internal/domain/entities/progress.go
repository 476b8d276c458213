package entities

import "time"

// ProgressRecord is the durable unit of per-user, per-exercise state.
// Unique per (UserID, ExerciseID); Week and Day are denormalized from the
// context the record was last touched in and do not participate in
// uniqueness.
type ProgressRecord struct {
	UserID        int64
	ExerciseID    string
	Week          int
	Day           int
	Completed     bool
	Weight        *float64 // nullable
	LastUpdatedAt time.Time
}

func NewProgressRecord(userID int64, exerciseID string, week, day int) *ProgressRecord {
	return &ProgressRecord{
		UserID:        userID,
		ExerciseID:    exerciseID,
		Week:          week,
		Day:           day,
		LastUpdatedAt: time.Now(),
	}
}

// ExerciseProgress is the per-exercise slice of a day's progress as
// returned by store lookups keyed by exercise ID.
type ExerciseProgress struct {
	Completed bool
	Weight    *float64
}
