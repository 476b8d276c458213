package storage

import (
	"sync"

	"github.com/aliskhannn/workout-coach-bot/internal/domain/entities"
)

// PendingWeights tracks, per user, whether the next free-text message is
// a weight entry and for which exercise.
type PendingWeights struct {
	mu      sync.RWMutex
	pending map[int64]entities.PendingWeight
}

// NewPendingWeights creates an empty pending-input store.
func NewPendingWeights() *PendingWeights {
	return &PendingWeights{
		pending: make(map[int64]entities.PendingWeight),
	}
}

// Set marks the user's next message as a weight entry.
func (s *PendingWeights) Set(userID int64, p entities.PendingWeight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = p
}

// Get returns the user's pending entry, if any.
func (s *PendingWeights) Get(userID int64) (entities.PendingWeight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pending[userID]
	return p, ok
}

// Clear removes the user's pending entry.
func (s *PendingWeights) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, userID)
}
