// messages.go contains message templates for Telegram.

package telegram

const (
	msgWelcome = "🏋️‍♂️ Привет! Я бот для тренировок!\n\n" +
		"Я помогу вести многонедельную программу: отмечать выполненные упражнения, " +
		"записывать рабочие веса и засекать отдых между подходами.\n\n" +
		"Используй /help для списка команд"

	msgHelp = "📋 Доступные команды:\n" +
		"/start — Начало работы\n" +
		"/help — Эта справка\n" +
		"/program — Программа тренировок"

	msgUnknownCommand = "Неизвестная команда. Список доступных команд:\n\n" +
		"/program — открыть программу тренировок\n" +
		"/help — справка"

	msgInternalError = "Что‑то пошло не так. Попробуйте позже."

	msgTimerStarted   = "Таймер запущен"
	msgTimerCancelled = "Таймер остановлен"
	msgNoActiveTimer  = "Нет активного таймера"
	msgMenuOutdated   = "Меню устарело, откройте его заново: /program"
)
