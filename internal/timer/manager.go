package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/workout-coach-bot/internal/engine"
)

// Notifier delivers countdown render commands to the user. A Tick error
// means the underlying message is gone; the manager stops that session's
// loop and never retries.
type Notifier interface {
	Tick(userID int64, cmd engine.RenderCommand) error
	Done(userID int64, cmd engine.RenderCommand) error
}

// HistoryStore records completed timer runs.
type HistoryStore interface {
	AppendTimerHistory(ctx context.Context, userID int64, exerciseName string, seconds int) error
}

// session is the transient per-user countdown state. Owned exclusively by
// the manager; destroyed on expiry, cancellation, or replacement.
type session struct {
	generation uint64
	label      string
	target     int
	remaining  int
	cancel     context.CancelFunc
}

// Manager owns at most one running countdown per user. Starting a new
// timer replaces the previous one; a superseded session's in-flight ticks
// detect the generation mismatch and no-op.
type Manager struct {
	notifier Notifier
	history  HistoryStore
	logger   *zap.Logger
	interval time.Duration

	mu          sync.Mutex
	generations map[int64]uint64
	sessions    map[int64]*session
}

func NewManager(notifier Notifier, history HistoryStore, logger *zap.Logger) *Manager {
	return &Manager{
		notifier:    notifier,
		history:     history,
		logger:      logger,
		interval:    time.Second,
		generations: make(map[int64]uint64),
		sessions:    make(map[int64]*session),
	}
}

// Start launches a countdown for the user, replacing any running one.
func (m *Manager) Start(ctx context.Context, userID int64, seconds int, label string) {
	if seconds <= 0 {
		return
	}

	tctx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	if old, ok := m.sessions[userID]; ok {
		old.cancel()
	}
	m.generations[userID]++
	s := &session{
		generation: m.generations[userID],
		label:      label,
		target:     seconds,
		remaining:  seconds,
		cancel:     cancel,
	}
	m.sessions[userID] = s
	m.mu.Unlock()

	go m.run(tctx, userID, s)
}

// CancelIfActive stops the user's countdown if one is running. Cancelled
// timers are never written to history. Reports whether a timer was
// stopped.
func (m *Manager) CancelIfActive(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return false
	}

	m.generations[userID]++
	s.cancel()
	delete(m.sessions, userID)
	return true
}

func (m *Manager) run(ctx context.Context, userID int64, s *session) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.mu.Lock()
			if m.generations[userID] != s.generation {
				// Superseded while this tick was in flight.
				m.mu.Unlock()
				return
			}
			s.remaining--
			remaining := s.remaining
			m.mu.Unlock()

			if remaining > 0 {
				cmd := engine.ShowText(fmt.Sprintf("⏱ %s — %s", s.label, FormatClock(remaining)))
				if err := m.notifier.Tick(userID, cmd); err != nil {
					m.logger.Warn("timer tick undeliverable, stopping session",
						zap.Int64("user_id", userID),
						zap.Error(err),
					)
					m.clear(userID, s.generation)
					return
				}
				continue
			}

			m.finish(userID, s)
			return
		}
	}
}

// finish emits the completion notification and logs the run with the
// original target duration, not the remaining time.
func (m *Manager) finish(userID int64, s *session) {
	cmd := engine.ShowText(fmt.Sprintf("🔔 Отдых окончен! %s — %s", s.label, FormatClock(s.target)))
	if err := m.notifier.Done(userID, cmd); err != nil {
		m.logger.Warn("timer completion undeliverable",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.history.AppendTimerHistory(ctx, userID, s.label, s.target); err != nil {
		m.logger.Error("append timer history",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	m.clear(userID, s.generation)
}

// clear removes the session if it still is the current one for the user.
func (m *Manager) clear(userID int64, generation uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.sessions[userID]; ok && cur.generation == generation {
		cur.cancel()
		delete(m.sessions, userID)
	}
}

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
