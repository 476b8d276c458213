package engine

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/workout-coach-bot/internal/catalog"
	"github.com/aliskhannn/workout-coach-bot/internal/domain/entities"
)

// Store is the persistence contract the engine depends on. All calls are
// immediately consistent for a single user. Lookups return (nil, nil)
// when the requested row does not exist.
type Store interface {
	GetUser(ctx context.Context, userID int64) (*entities.User, error)
	CreateUser(ctx context.Context, userID int64, name string) (*entities.User, error)
	SetPosition(ctx context.Context, userID int64, week, day int) error

	GetProgress(ctx context.Context, userID int64, week, day int) (map[string]entities.ExerciseProgress, error)
	GetRecord(ctx context.Context, userID int64, exerciseID string) (*entities.ProgressRecord, error)
	UpsertProgress(ctx context.Context, userID int64, week, day int, exerciseID string, completed *bool, weight *float64) error

	AdjustCompletedCounter(ctx context.Context, userID int64, delta int) error
	AdjustWorkoutCounter(ctx context.Context, userID int64, delta int) error
	ResetAllProgress(ctx context.Context, userID int64) error
}

// PendingStore tracks which users are expected to send a weight value as
// their next free-text message.
type PendingStore interface {
	Set(userID int64, p entities.PendingWeight)
	Get(userID int64) (entities.PendingWeight, bool)
	Clear(userID int64)
}

// NavigationEngine interprets decoded actions against the user's stored
// state and produces render commands. It never talks to the transport.
type NavigationEngine struct {
	catalog     *catalog.Catalog
	store       Store
	pending     PendingStore
	logger      *zap.Logger
	locks       *userLock
	restOptions []int
}

func New(c *catalog.Catalog, store Store, pending PendingStore, restOptions []int, logger *zap.Logger) *NavigationEngine {
	if len(restOptions) == 0 {
		restOptions = []int{60, 90, 120}
	}

	return &NavigationEngine{
		catalog:     c,
		store:       store,
		pending:     pending,
		logger:      logger,
		locks:       newUserLock(),
		restOptions: restOptions,
	}
}

// HandleAction processes one action for one user. Domain-level failures
// (stale buttons, bad input) come back as Error or Prompt render commands;
// the returned error is reserved for infrastructure faults the transport
// adapter answers with a generic message.
func (e *NavigationEngine) HandleAction(ctx context.Context, userID int64, a Action) (RenderCommand, error) {
	switch a.Kind {
	case KindShowRoot:
		return e.rootMenu(ctx, userID)
	case KindSelectWeek:
		return e.weekMenu(a.Week)
	case KindSelectDay:
		return e.selectDay(ctx, userID, a.Week, a.Day)
	case KindSelectExercise:
		return e.exerciseView(ctx, userID, a.Week, a.Day, a.ExerciseIndex)
	case KindToggleCompletion:
		return e.toggleCompletion(ctx, userID, a)
	case KindBeginWeightEntry:
		return e.beginWeightEntry(userID, a)
	case KindSubmitWeight:
		return e.submitWeight(ctx, userID, a.Value)
	case KindNavigateBack:
		return e.navigateBack(ctx, userID, a)
	case KindResetProgress:
		return resetConfirmMenu(), nil
	case KindResetConfirm:
		return e.resetProgress(ctx, userID)
	case KindResetCancel:
		return e.rootMenu(ctx, userID)
	default:
		return ShowError(msgUnknownAction), nil
	}
}

// TimerLabel resolves the display label for a rest timer started from
// the exercise at the given catalog position. Reports false when the
// position no longer exists, which means the button is stale.
func (e *NavigationEngine) TimerLabel(week, day, idx int) (string, bool) {
	ex, err := e.catalog.Exercise(week, day, idx)
	if err != nil {
		return "", false
	}
	return ex.Name, true
}

// selectDay renders the exercise list for a day and records the user's
// current position. Opening a day always moves the position, even when
// nothing gets completed.
func (e *NavigationEngine) selectDay(ctx context.Context, userID int64, week, day int) (RenderCommand, error) {
	cmd, err := e.dayMenu(ctx, userID, week, day)
	if err != nil || cmd.Kind == RenderError {
		return cmd, err
	}

	if err := e.store.SetPosition(ctx, userID, week, day); err != nil {
		return RenderCommand{}, fmt.Errorf("set position: %w", err)
	}

	return cmd, nil
}

func (e *NavigationEngine) toggleCompletion(ctx context.Context, userID int64, a Action) (RenderCommand, error) {
	day, err := e.catalog.Day(a.Week, a.Day)
	if err != nil {
		return ShowError(msgExerciseNotFound), nil
	}

	l := e.locks.get(userID)
	l.Lock()
	err = e.applyToggle(ctx, userID, a, day)
	l.Unlock()
	if err != nil {
		return RenderCommand{}, err
	}

	return e.dayMenu(ctx, userID, a.Week, a.Day)
}

// applyToggle flips the completion flag and keeps both counters in step
// with the stored records. The counter moves by a relative delta and only
// on an actual flip, so a double tap lands back on the original state.
func (e *NavigationEngine) applyToggle(ctx context.Context, userID int64, a Action, day *entities.Day) error {
	rec, err := e.store.GetRecord(ctx, userID, a.ExerciseID)
	if err != nil {
		return fmt.Errorf("get record: %w", err)
	}

	completedBefore := rec != nil && rec.Completed
	completedNow := !completedBefore

	doneBefore, err := e.completedInDay(ctx, userID, a.Week, a.Day, day)
	if err != nil {
		return err
	}

	if err := e.store.UpsertProgress(ctx, userID, a.Week, a.Day, a.ExerciseID, &completedNow, nil); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}

	delta := 1
	if !completedNow {
		delta = -1
	}
	if err := e.store.AdjustCompletedCounter(ctx, userID, delta); err != nil {
		return fmt.Errorf("adjust completed counter: %w", err)
	}

	// A workout is a fully completed day. Crossing the boundary in either
	// direction moves the workout counter.
	total := len(day.Exercises)
	doneNow := doneBefore + delta
	switch {
	case doneNow == total && doneBefore < total:
		err = e.store.AdjustWorkoutCounter(ctx, userID, 1)
	case doneBefore == total && doneNow < total:
		err = e.store.AdjustWorkoutCounter(ctx, userID, -1)
	}
	if err != nil {
		return fmt.Errorf("adjust workout counter: %w", err)
	}

	return nil
}

func (e *NavigationEngine) completedInDay(ctx context.Context, userID int64, week, dayNum int, day *entities.Day) (int, error) {
	progress, err := e.store.GetProgress(ctx, userID, week, dayNum)
	if err != nil {
		return 0, fmt.Errorf("get progress: %w", err)
	}

	done := 0
	for _, ex := range day.Exercises {
		if progress[ex.ID].Completed {
			done++
		}
	}
	return done, nil
}

func (e *NavigationEngine) beginWeightEntry(userID int64, a Action) (RenderCommand, error) {
	ex, err := e.catalog.Exercise(a.Week, a.Day, a.ExerciseIndex)
	if err != nil {
		return ShowError(msgExerciseNotFound), nil
	}

	e.pending.Set(userID, entities.PendingWeight{
		Week:          a.Week,
		Day:           a.Day,
		ExerciseIndex: a.ExerciseIndex,
		SetIndex:      a.SetIndex,
	})

	return Prompt(fmt.Sprintf(msgWeightPrompt, ex.Name)), nil
}

func (e *NavigationEngine) submitWeight(ctx context.Context, userID int64, value string) (RenderCommand, error) {
	p, ok := e.pending.Get(userID)
	if !ok {
		// No active prompt: the message is ordinary unrecognized input.
		return ShowText(msgUnknownInput), nil
	}

	weight, err := parseWeight(value)
	if err != nil {
		// The prompt stays active so the user can retry.
		return Prompt(msgInvalidWeight), nil
	}

	ex, err := e.catalog.Exercise(p.Week, p.Day, p.ExerciseIndex)
	if err != nil {
		e.pending.Clear(userID)
		return ShowError(msgExerciseNotFound), nil
	}

	l := e.locks.get(userID)
	l.Lock()
	err = e.store.UpsertProgress(ctx, userID, p.Week, p.Day, ex.ID, nil, &weight)
	l.Unlock()
	if err != nil {
		return RenderCommand{}, fmt.Errorf("upsert weight: %w", err)
	}

	e.pending.Clear(userID)

	return e.exerciseView(ctx, userID, p.Week, p.Day, p.ExerciseIndex)
}

func (e *NavigationEngine) navigateBack(ctx context.Context, userID int64, a Action) (RenderCommand, error) {
	switch a.Back {
	case BackToDays:
		return e.weekMenu(a.Week)
	case BackToExercises:
		return e.dayMenu(ctx, userID, a.Week, a.Day)
	default:
		return e.rootMenu(ctx, userID)
	}
}

// resetProgress wipes all records and counters but leaves the user's
// position where it was.
func (e *NavigationEngine) resetProgress(ctx context.Context, userID int64) (RenderCommand, error) {
	e.pending.Clear(userID)

	if err := e.store.ResetAllProgress(ctx, userID); err != nil {
		return RenderCommand{}, fmt.Errorf("reset progress: %w", err)
	}

	e.logger.Info("user progress reset", zap.Int64("user_id", userID))

	return e.rootMenu(ctx, userID)
}

// parseWeight parses a decimal weight accepting both "." and "," as the
// separator.
func parseWeight(value string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")

	weight, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return 0, ErrInvalidWeight
	}
	return weight, nil
}
