package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAction(t *testing.T) {
	for _, tc := range []struct {
		token string
		want  Action
	}{
		{"menu", Action{Kind: KindShowRoot}},
		{"week:2", Action{Kind: KindSelectWeek, Week: 2}},
		{"day:1:3", Action{Kind: KindSelectDay, Week: 1, Day: 3}},
		{"exercise:1:2:0", Action{Kind: KindSelectExercise, Week: 1, Day: 2}},
		{"toggle:1:2:bench", Action{Kind: KindToggleCompletion, Week: 1, Day: 2, ExerciseID: "bench"}},
		{"weight:1:2:0:1", Action{Kind: KindBeginWeightEntry, Week: 1, Day: 2, SetIndex: 1}},
		{"back:weeks", Action{Kind: KindNavigateBack, Back: BackToWeeks}},
		{"back:days:2", Action{Kind: KindNavigateBack, Back: BackToDays, Week: 2}},
		{"back:exercises:2:1", Action{Kind: KindNavigateBack, Back: BackToExercises, Week: 2, Day: 1}},
		{"reset", Action{Kind: KindResetProgress}},
		{"reset:confirm", Action{Kind: KindResetConfirm}},
		{"reset:cancel", Action{Kind: KindResetCancel}},
		{"timer:cancel", Action{Kind: KindCancelTimer}},
		{"timer:start:90:1:2:0", Action{Kind: KindStartTimer, Seconds: 90, Week: 1, Day: 2}},
	} {
		assert.Equal(t, tc.want, DecodeAction(tc.token), tc.token)
	}
}

func TestDecodeAction_FailsClosed(t *testing.T) {
	for _, token := range []string{
		"",
		"bogus",
		"menu:extra",
		"week:",
		"week:abc",
		"week:-1",
		"week:+5",
		"week:05",
		"week:1:2",
		"day:1",
		"exercise:1:2",
		"exercise:1:2:x",
		"toggle:1:2:",
		"weight:1:2:0",
		"back",
		"back:nowhere",
		"reset:maybe",
		"timer",
		"timer:start:0:1:1:0",
		"timer:start:abc:1:1:0",
		"timer:start:60",
		"timer:start:60:1:1",
		"timer:start:60:Жим лежа",
	} {
		assert.Equal(t, KindUnknown, DecodeAction(token).Kind, token)
	}
}

func TestTokenBuildersRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		token string
		want  Action
	}{
		{buildWeekToken(3), Action{Kind: KindSelectWeek, Week: 3}},
		{buildDayToken(1, 2), Action{Kind: KindSelectDay, Week: 1, Day: 2}},
		{buildExerciseToken(1, 2, 4), Action{Kind: KindSelectExercise, Week: 1, Day: 2, ExerciseIndex: 4}},
		{buildToggleToken(1, 2, "squat"), Action{Kind: KindToggleCompletion, Week: 1, Day: 2, ExerciseID: "squat"}},
		{buildWeightToken(1, 2, 0, 2), Action{Kind: KindBeginWeightEntry, Week: 1, Day: 2, SetIndex: 2}},
		{buildBackToWeeksToken(), Action{Kind: KindNavigateBack, Back: BackToWeeks}},
		{buildBackToDaysToken(2), Action{Kind: KindNavigateBack, Back: BackToDays, Week: 2}},
		{buildBackToExercisesToken(2, 3), Action{Kind: KindNavigateBack, Back: BackToExercises, Week: 2, Day: 3}},
		{buildResetConfirmToken(), Action{Kind: KindResetConfirm}},
		{buildTimerStartToken(120, 1, 2, 3), Action{Kind: KindStartTimer, Seconds: 120, Week: 1, Day: 2, ExerciseIndex: 3}},
		{buildTimerCancelToken(), Action{Kind: KindCancelTimer}},
	} {
		assert.Equal(t, tc.want, DecodeAction(tc.token), tc.token)
	}
}
