package entities

import "time"

// User is a bot user together with their current position in the program
// and aggregate progress counters.
type User struct {
	ID                      int64
	Name                    string
	Week                    int
	Day                     int
	TotalWorkouts           int
	TotalExercisesCompleted int
	CreatedAt               time.Time
}

// NewUser creates a user positioned at the start of the program.
func NewUser(id int64, name string) *User {
	return &User{
		ID:        id,
		Name:      name,
		Week:      1,
		Day:       1,
		CreatedAt: time.Now(),
	}
}
