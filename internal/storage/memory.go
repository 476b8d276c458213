package storage

import (
	"context"
	"sync"
	"time"

	"github.com/aliskhannn/workout-coach-bot/internal/domain/entities"
)

// Memory is an in-memory implementation of the engine's store contract.
// Used by tests and for running the bot without a database. Lookups for
// missing rows return (nil, nil), mirroring the Postgres store.
type Memory struct {
	mu      sync.RWMutex
	users   map[int64]*entities.User
	records map[int64]map[string]*entities.ProgressRecord
	history []entities.TimerHistoryEntry
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[int64]*entities.User),
		records: make(map[int64]map[string]*entities.ProgressRecord),
	}
}

func (m *Memory) GetUser(_ context.Context, userID int64) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *Memory) CreateUser(_ context.Context, userID int64, name string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.users[userID]; ok {
		cp := *u
		return &cp, nil
	}

	u := entities.NewUser(userID, name)
	m.users[userID] = u
	cp := *u
	return &cp, nil
}

func (m *Memory) SetPosition(_ context.Context, userID int64, week, day int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.users[userID]; ok {
		u.Week = week
		u.Day = day
	}
	return nil
}

func (m *Memory) GetProgress(_ context.Context, userID int64, week, day int) (map[string]entities.ExerciseProgress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]entities.ExerciseProgress)
	for id, rec := range m.records[userID] {
		if rec.Week == week && rec.Day == day {
			out[id] = entities.ExerciseProgress{Completed: rec.Completed, Weight: rec.Weight}
		}
	}
	return out, nil
}

func (m *Memory) GetRecord(_ context.Context, userID int64, exerciseID string) (*entities.ProgressRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[userID][exerciseID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *Memory) UpsertProgress(_ context.Context, userID int64, week, day int, exerciseID string, completed *bool, weight *float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byUser, ok := m.records[userID]
	if !ok {
		byUser = make(map[string]*entities.ProgressRecord)
		m.records[userID] = byUser
	}

	rec, ok := byUser[exerciseID]
	if !ok {
		rec = entities.NewProgressRecord(userID, exerciseID, week, day)
		byUser[exerciseID] = rec
	}

	rec.Week = week
	rec.Day = day
	if completed != nil {
		rec.Completed = *completed
	}
	if weight != nil {
		w := *weight
		rec.Weight = &w
	}
	rec.LastUpdatedAt = time.Now()
	return nil
}

func (m *Memory) AdjustCompletedCounter(_ context.Context, userID int64, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.users[userID]; ok {
		u.TotalExercisesCompleted += delta
		if u.TotalExercisesCompleted < 0 {
			u.TotalExercisesCompleted = 0
		}
	}
	return nil
}

func (m *Memory) AdjustWorkoutCounter(_ context.Context, userID int64, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.users[userID]; ok {
		u.TotalWorkouts += delta
		if u.TotalWorkouts < 0 {
			u.TotalWorkouts = 0
		}
	}
	return nil
}

func (m *Memory) ResetAllProgress(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, userID)
	if u, ok := m.users[userID]; ok {
		u.TotalWorkouts = 0
		u.TotalExercisesCompleted = 0
	}
	return nil
}

func (m *Memory) AppendTimerHistory(_ context.Context, userID int64, exerciseName string, seconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, entities.TimerHistoryEntry{
		UserID:          userID,
		ExerciseName:    exerciseName,
		DurationSeconds: seconds,
		CompletedAt:     time.Now(),
	})
	return nil
}

// TimerHistory returns a copy of the recorded timer runs.
func (m *Memory) TimerHistory() []entities.TimerHistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.TimerHistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}
