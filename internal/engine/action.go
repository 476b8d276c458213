package engine

import (
	"strconv"
	"strings"
)

// Kind discriminates Action variants.
type Kind int

const (
	KindUnknown Kind = iota
	KindShowRoot
	KindSelectWeek
	KindSelectDay
	KindSelectExercise
	KindToggleCompletion
	KindBeginWeightEntry
	KindSubmitWeight
	KindNavigateBack
	KindResetProgress
	KindResetConfirm
	KindResetCancel
	KindStartTimer
	KindCancelTimer
)

// BackTarget identifies which parent menu a back action returns to.
type BackTarget int

const (
	BackToWeeks BackTarget = iota
	BackToDays
	BackToExercises
)

// Action is a decoded, typed user event. Exactly one variant is populated
// according to Kind; the zero value is KindUnknown.
type Action struct {
	Kind          Kind
	Week          int
	Day           int
	ExerciseIndex int
	SetIndex      int
	ExerciseID    string
	Seconds       int
	Value         string // raw text for KindSubmitWeight
	Back          BackTarget
}

// Token prefixes. Tokens are colon-separated, the same shape the rest of
// the callback data uses.
const (
	tokenMenu     = "menu"
	tokenWeek     = "week"
	tokenDay      = "day"
	tokenExercise = "exercise"
	tokenToggle   = "toggle"
	tokenWeight   = "weight"
	tokenBack     = "back"
	tokenReset    = "reset"
	tokenTimer    = "timer"
)

// SubmitWeight wraps a free-text message as a weight submission. Free text
// has no token form; it arrives through the message handler, not a button.
func SubmitWeight(value string) Action {
	return Action{Kind: KindSubmitWeight, Value: value}
}

// DecodeAction parses an inbound callback token into a typed Action.
// Any malformed or unrecognized token decodes to KindUnknown; the decoder
// fails closed and never guesses.
func DecodeAction(token string) Action {
	parts := strings.Split(token, ":")

	switch parts[0] {
	case tokenMenu:
		if len(parts) == 1 {
			return Action{Kind: KindShowRoot}
		}

	case tokenWeek:
		if w, ok := atoi(parts, 1); ok && len(parts) == 2 {
			return Action{Kind: KindSelectWeek, Week: w}
		}

	case tokenDay:
		w, okW := atoi(parts, 1)
		d, okD := atoi(parts, 2)
		if okW && okD && len(parts) == 3 {
			return Action{Kind: KindSelectDay, Week: w, Day: d}
		}

	case tokenExercise:
		w, okW := atoi(parts, 1)
		d, okD := atoi(parts, 2)
		i, okI := atoi(parts, 3)
		if okW && okD && okI && len(parts) == 4 {
			return Action{Kind: KindSelectExercise, Week: w, Day: d, ExerciseIndex: i}
		}

	case tokenToggle:
		w, okW := atoi(parts, 1)
		d, okD := atoi(parts, 2)
		if okW && okD && len(parts) == 4 && parts[3] != "" {
			return Action{Kind: KindToggleCompletion, Week: w, Day: d, ExerciseID: parts[3]}
		}

	case tokenWeight:
		w, okW := atoi(parts, 1)
		d, okD := atoi(parts, 2)
		i, okI := atoi(parts, 3)
		s, okS := atoi(parts, 4)
		if okW && okD && okI && okS && len(parts) == 5 {
			return Action{Kind: KindBeginWeightEntry, Week: w, Day: d, ExerciseIndex: i, SetIndex: s}
		}

	case tokenBack:
		return decodeBack(parts)

	case tokenReset:
		switch {
		case len(parts) == 1:
			return Action{Kind: KindResetProgress}
		case len(parts) == 2 && parts[1] == "confirm":
			return Action{Kind: KindResetConfirm}
		case len(parts) == 2 && parts[1] == "cancel":
			return Action{Kind: KindResetCancel}
		}

	case tokenTimer:
		return decodeTimer(parts)
	}

	return Action{Kind: KindUnknown}
}

func decodeBack(parts []string) Action {
	if len(parts) < 2 {
		return Action{Kind: KindUnknown}
	}

	switch parts[1] {
	case "weeks":
		if len(parts) == 2 {
			return Action{Kind: KindNavigateBack, Back: BackToWeeks}
		}
	case "days":
		if w, ok := atoi(parts, 2); ok && len(parts) == 3 {
			return Action{Kind: KindNavigateBack, Back: BackToDays, Week: w}
		}
	case "exercises":
		w, okW := atoi(parts, 2)
		d, okD := atoi(parts, 3)
		if okW && okD && len(parts) == 4 {
			return Action{Kind: KindNavigateBack, Back: BackToExercises, Week: w, Day: d}
		}
	}

	return Action{Kind: KindUnknown}
}

func decodeTimer(parts []string) Action {
	if len(parts) < 2 {
		return Action{Kind: KindUnknown}
	}

	switch parts[1] {
	case "cancel":
		if len(parts) == 2 {
			return Action{Kind: KindCancelTimer}
		}
	case "start":
		// Timer tokens carry the catalog position, never the exercise
		// name: callback data is capped at 64 bytes and names do not fit.
		s, okS := atoi(parts, 2)
		w, okW := atoi(parts, 3)
		d, okD := atoi(parts, 4)
		i, okI := atoi(parts, 5)
		if okS && okW && okD && okI && len(parts) == 6 && s > 0 {
			return Action{Kind: KindStartTimer, Seconds: s, Week: w, Day: d, ExerciseIndex: i}
		}
	}

	return Action{Kind: KindUnknown}
}

func atoi(parts []string, idx int) (int, bool) {
	if idx >= len(parts) {
		return 0, false
	}
	n, err := strconv.Atoi(parts[idx])
	// Only canonical non-negative decimals pass; strconv alone would also
	// accept "+5" and "007".
	if err != nil || n < 0 || strconv.Itoa(n) != parts[idx] {
		return 0, false
	}
	return n, true
}

// Token builders used when rendering menus.

func buildWeekToken(w int) string {
	return tokenWeek + ":" + strconv.Itoa(w)
}

func buildDayToken(w, d int) string {
	return tokenDay + ":" + strconv.Itoa(w) + ":" + strconv.Itoa(d)
}

func buildExerciseToken(w, d, idx int) string {
	return tokenExercise + ":" + strconv.Itoa(w) + ":" + strconv.Itoa(d) + ":" + strconv.Itoa(idx)
}

func buildToggleToken(w, d int, exerciseID string) string {
	return tokenToggle + ":" + strconv.Itoa(w) + ":" + strconv.Itoa(d) + ":" + exerciseID
}

func buildWeightToken(w, d, exIdx, setIdx int) string {
	return tokenWeight + ":" + strconv.Itoa(w) + ":" + strconv.Itoa(d) + ":" + strconv.Itoa(exIdx) + ":" + strconv.Itoa(setIdx)
}

func buildBackToWeeksToken() string { return tokenBack + ":weeks" }

func buildBackToDaysToken(w int) string {
	return tokenBack + ":days:" + strconv.Itoa(w)
}

func buildBackToExercisesToken(w, d int) string {
	return tokenBack + ":exercises:" + strconv.Itoa(w) + ":" + strconv.Itoa(d)
}

func buildResetToken() string        { return tokenReset }
func buildResetConfirmToken() string { return tokenReset + ":confirm" }
func buildResetCancelToken() string  { return tokenReset + ":cancel" }

func buildTimerStartToken(seconds, w, d, idx int) string {
	return tokenTimer + ":start:" + strconv.Itoa(seconds) + ":" +
		strconv.Itoa(w) + ":" + strconv.Itoa(d) + ":" + strconv.Itoa(idx)
}

func buildTimerCancelToken() string { return tokenTimer + ":cancel" }
