package timer

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/workout-coach-bot/internal/engine"
	"github.com/aliskhannn/workout-coach-bot/internal/storage"
)

type fakeNotifier struct {
	mu      sync.Mutex
	ticks   []string
	done    []string
	tickErr error
	failed  int
}

func (f *fakeNotifier) Tick(_ int64, cmd engine.RenderCommand) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.tickErr != nil {
		f.failed++
		return f.tickErr
	}
	f.ticks = append(f.ticks, cmd.Body)
	return nil
}

func (f *fakeNotifier) Done(_ int64, cmd engine.RenderCommand) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.done = append(f.done, cmd.Body)
	return nil
}

func (f *fakeNotifier) tickCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ticks)
}

func (f *fakeNotifier) doneCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.done)
}

func (f *fakeNotifier) tickBodies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ticks...)
}

func newTestManager(t *testing.T) (*Manager, *fakeNotifier, *storage.Memory) {
	t.Helper()

	notifier := &fakeNotifier{}
	history := storage.NewMemory()

	m := NewManager(notifier, history, zap.NewNop())
	m.interval = 10 * time.Millisecond

	return m, notifier, history
}

func TestManager_CompletesAndLogsHistory(t *testing.T) {
	m, notifier, history := newTestManager(t)

	m.Start(context.Background(), 1, 3, "Жим лежа")

	require.Eventually(t, func() bool {
		return notifier.doneCount() == 1
	}, 2*time.Second, 5*time.Millisecond)

	ticks := notifier.tickBodies()
	require.Len(t, ticks, 2)
	assert.Contains(t, ticks[0], "00:02")
	assert.Contains(t, ticks[1], "00:01")

	entries := history.TimerHistory()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].UserID)
	assert.Equal(t, "Жим лежа", entries[0].ExerciseName)
	// The original target is logged, not the remaining time.
	assert.Equal(t, 3, entries[0].DurationSeconds)

	// The session is gone once the countdown completed.
	assert.False(t, m.CancelIfActive(1))
}

func TestManager_CancelWritesNoHistory(t *testing.T) {
	m, notifier, history := newTestManager(t)

	m.Start(context.Background(), 1, 60, "Отдых")

	require.Eventually(t, func() bool {
		return notifier.tickCount() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	require.True(t, m.CancelIfActive(1))

	seen := notifier.tickCount()
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, seen, notifier.tickCount(), "cancelled session must stop ticking")
	assert.Zero(t, notifier.doneCount())
	assert.Empty(t, history.TimerHistory())
}

func TestManager_CancelIfActiveIdle(t *testing.T) {
	m, _, _ := newTestManager(t)
	assert.False(t, m.CancelIfActive(42))
}

func TestManager_StartReplacesRunningTimer(t *testing.T) {
	m, notifier, history := newTestManager(t)

	m.Start(context.Background(), 1, 600, "старый")

	require.Eventually(t, func() bool {
		return notifier.tickCount() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	m.Start(context.Background(), 1, 2, "новый")

	require.Eventually(t, func() bool {
		return notifier.doneCount() == 1
	}, 2*time.Second, 5*time.Millisecond)

	// Once the replacement produced output, the superseded session must
	// stay silent.
	ticks := notifier.tickBodies()
	firstNew := -1
	for i, body := range ticks {
		if strings.Contains(body, "новый") {
			firstNew = i
			break
		}
	}
	require.NotEqual(t, -1, firstNew)
	for _, body := range ticks[firstNew:] {
		assert.NotContains(t, body, "старый")
	}

	// Only the replacement run is logged.
	entries := history.TimerHistory()
	require.Len(t, entries, 1)
	assert.Equal(t, "новый", entries[0].ExerciseName)
	assert.Equal(t, 2, entries[0].DurationSeconds)
}

func TestManager_IndependentUsers(t *testing.T) {
	m, notifier, history := newTestManager(t)

	m.Start(context.Background(), 1, 2, "первый")
	m.Start(context.Background(), 2, 2, "второй")

	require.Eventually(t, func() bool {
		return notifier.doneCount() == 2
	}, 2*time.Second, 5*time.Millisecond)

	assert.Len(t, history.TimerHistory(), 2)
}

func TestManager_UndeliverableTickStopsSession(t *testing.T) {
	m, notifier, history := newTestManager(t)
	notifier.tickErr = assert.AnError

	m.Start(context.Background(), 1, 60, "Отдых")

	require.Eventually(t, func() bool {
		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		return notifier.failed >= 1
	}, 2*time.Second, 5*time.Millisecond)

	// The failed tick tore the session down without completing it.
	require.Eventually(t, func() bool {
		return !m.CancelIfActive(1)
	}, 2*time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	notifier.mu.Lock()
	failed := notifier.failed
	notifier.mu.Unlock()
	assert.Equal(t, 1, failed, "loop must stop after the first delivery failure")

	assert.Zero(t, notifier.doneCount())
	assert.Empty(t, history.TimerHistory())
}

func TestFormatClock(t *testing.T) {
	for _, tc := range []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{90, "01:30"},
		{3599, "59:59"},
		{-3, "00:00"},
	} {
		assert.Equal(t, tc.want, FormatClock(tc.seconds))
	}
}
