package entities

import "time"

// TimerHistoryEntry is an append-only log record written once per timer
// that ran to completion. Cancelled timers are never logged.
type TimerHistoryEntry struct {
	UserID          int64
	ExerciseName    string
	DurationSeconds int
	CompletedAt     time.Time
}

// PendingWeight marks that the user's next free-text message is a weight
// entry for the exercise at the given position. Transient, cleared after
// one successful use or explicit cancel.
type PendingWeight struct {
	Week          int
	Day           int
	ExerciseIndex int
	SetIndex      int
}
