package engine

import (
	"context"
	"fmt"
	"strings"
)

// User-facing texts.
const (
	msgUnknownAction    = "Неизвестное действие. Откройте меню заново: /program"
	msgUnknownInput     = "Я вас не понял. Откройте программу тренировок: /program"
	msgWeekNotFound     = "Такой недели в программе нет. Откройте меню заново: /program"
	msgDayNotFound      = "Такого дня в программе нет. Откройте меню заново: /program"
	msgExerciseNotFound = "Упражнение не найдено. Похоже, меню устарело — откройте его заново: /program"
	msgInvalidWeight    = "Не удалось распознать вес. Введите число, например 62,5 или 62.5"
	msgWeightPrompt     = "Введите рабочий вес для «%s» в килограммах, например 62,5"
	msgResetConfirm     = "Сбросить весь прогресс? Отметки выполнения, веса и счётчики будут удалены. Текущая позиция в программе сохранится."
)

func (e *NavigationEngine) rootMenu(ctx context.Context, userID int64) (RenderCommand, error) {
	user, err := e.store.GetUser(ctx, userID)
	if err != nil {
		return RenderCommand{}, fmt.Errorf("get user: %w", err)
	}

	var body strings.Builder
	if user != nil {
		body.WriteString(fmt.Sprintf("🏆 Тренировок завершено: %d\n", user.TotalWorkouts))
		body.WriteString(fmt.Sprintf("✅ Упражнений выполнено: %d\n", user.TotalExercisesCompleted))
		body.WriteString(fmt.Sprintf("📍 Вы остановились: неделя %d, день %d", user.Week, user.Day))
	}

	options := make([]MenuOption, 0, len(e.catalog.Weeks())+1)
	for _, w := range e.catalog.Weeks() {
		options = append(options, MenuOption{
			Label: fmt.Sprintf("📅 Неделя %d", w.Number),
			Token: buildWeekToken(w.Number),
		})
	}
	options = append(options, MenuOption{Label: "🔄 Сбросить прогресс", Token: buildResetToken()})

	cmd := ShowMenu("🏋️ Программа тренировок", options)
	cmd.Body = body.String()
	return cmd, nil
}

func (e *NavigationEngine) weekMenu(week int) (RenderCommand, error) {
	w, err := e.catalog.Week(week)
	if err != nil {
		return ShowError(msgWeekNotFound), nil
	}

	options := make([]MenuOption, 0, len(w.Days)+1)
	for _, d := range w.Days {
		options = append(options, MenuOption{
			Label: fmt.Sprintf("День %d — %s", d.Number, d.Title),
			Token: buildDayToken(week, d.Number),
		})
	}
	options = append(options, MenuOption{Label: "« К неделям", Token: buildBackToWeeksToken()})

	return ShowMenu(fmt.Sprintf("📅 Неделя %d", week), options), nil
}

func (e *NavigationEngine) dayMenu(ctx context.Context, userID int64, week, day int) (RenderCommand, error) {
	d, err := e.catalog.Day(week, day)
	if err != nil {
		return ShowError(msgDayNotFound), nil
	}

	progress, err := e.store.GetProgress(ctx, userID, week, day)
	if err != nil {
		return RenderCommand{}, fmt.Errorf("get progress: %w", err)
	}

	done := 0
	options := make([]MenuOption, 0, len(d.Exercises)+1)
	for i, ex := range d.Exercises {
		mark := "⬜"
		if progress[ex.ID].Completed {
			mark = "✅"
			done++
		}
		options = append(options, MenuOption{
			Label: fmt.Sprintf("%s %s", mark, ex.Name),
			Token: buildExerciseToken(week, day, i),
		})
	}
	options = append(options, MenuOption{Label: "« К дням недели", Token: buildBackToDaysToken(week)})

	cmd := ShowMenu(fmt.Sprintf("Неделя %d · День %d — %s", week, day, d.Title), options)
	cmd.Body = fmt.Sprintf("Выполнено: %d из %d", done, len(d.Exercises))
	return cmd, nil
}

func (e *NavigationEngine) exerciseView(ctx context.Context, userID int64, week, day, idx int) (RenderCommand, error) {
	ex, err := e.catalog.Exercise(week, day, idx)
	if err != nil {
		return ShowError(msgExerciseNotFound), nil
	}

	rec, err := e.store.GetRecord(ctx, userID, ex.ID)
	if err != nil {
		return RenderCommand{}, fmt.Errorf("get record: %w", err)
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("%s · %s\n\n", ex.MuscleGroup, ex.Movement))
	for i, set := range ex.Sets {
		body.WriteString(fmt.Sprintf("Подход %d: %d повторений, %s\n", i+1, set.Reps, set.Intensity))
	}
	if ex.Description != "" {
		body.WriteString("\n" + ex.Description + "\n")
	}

	toggleLabel := "☑️ Отметить выполненным"
	if rec != nil && rec.Completed {
		body.WriteString("\n✅ Выполнено")
		toggleLabel = "↩️ Снять отметку"
	}
	if rec != nil && rec.Weight != nil {
		body.WriteString(fmt.Sprintf("\n⚖️ Рабочий вес: %.1f кг", *rec.Weight))
	}

	options := []MenuOption{
		{Label: toggleLabel, Token: buildToggleToken(week, day, ex.ID)},
		{Label: "⚖️ Записать вес", Token: buildWeightToken(week, day, idx, 0)},
	}
	for _, seconds := range e.restOptions {
		options = append(options, MenuOption{
			Label: fmt.Sprintf("⏱ Отдых %d сек", seconds),
			Token: buildTimerStartToken(seconds, week, day, idx),
		})
	}
	options = append(options,
		MenuOption{Label: "⏹ Остановить таймер", Token: buildTimerCancelToken()},
		MenuOption{Label: "« К упражнениям", Token: buildBackToExercisesToken(week, day)},
	)

	cmd := ShowMenu(ex.Name, options)
	cmd.Body = body.String()
	return cmd, nil
}

func resetConfirmMenu() RenderCommand {
	cmd := ShowMenu("🔄 Сброс прогресса", []MenuOption{
		{Label: "❗ Да, сбросить", Token: buildResetConfirmToken()},
		{Label: "Отмена", Token: buildResetCancelToken()},
	})
	cmd.Body = msgResetConfirm
	return cmd
}
