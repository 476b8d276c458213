package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/workout-coach-bot/internal/domain/entities"
	"github.com/aliskhannn/workout-coach-bot/internal/engine"
)

type Engine interface {
	HandleAction(ctx context.Context, userID int64, a engine.Action) (engine.RenderCommand, error)
	TimerLabel(week, day, idx int) (string, bool)
}

type Timers interface {
	Start(ctx context.Context, userID int64, seconds int, label string)
	CancelIfActive(userID int64) bool
}

type UserStore interface {
	GetUser(ctx context.Context, userID int64) (*entities.User, error)
	CreateUser(ctx context.Context, userID int64, name string) (*entities.User, error)
}

// Handler adapts Telegram updates to engine actions and renders the
// engine's output back into messages and inline keyboards.
type Handler struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
	engine Engine
	timers Timers
	users  UserStore
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	eng Engine,
	timers Timers,
	users UserStore,
) *Handler {
	return &Handler{
		bot:    bot,
		logger: logger,
		engine: eng,
		timers: timers,
		users:  users,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.handleMessage(ctx, update.Message)
}

func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	from := msg.From
	if from == nil {
		return
	}

	h.logger.Debug("message received",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.String("text", msg.Text),
	)

	h.ensureUser(ctx, from)
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			h.send(newHTMLMessage(chatID, msgWelcome))
		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))
		case "program":
			h.dispatch(ctx, from.ID, chatID, 0, engine.Action{Kind: engine.KindShowRoot})
		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}
		return
	}

	// Any non-command text is treated as a weight submission; the engine
	// answers with a hint when no weight prompt is active.
	h.dispatch(ctx, from.ID, chatID, 0, engine.SubmitWeight(msg.Text))
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	h.logger.Debug("callback received",
		zap.Int64("user_id", cb.From.ID),
		zap.String("data", cb.Data),
	)

	h.ensureUser(ctx, cb.From)

	chatID := cb.From.ID
	messageID := 0
	if cb.Message != nil {
		chatID = cb.Message.Chat.ID
		messageID = cb.Message.MessageID
	}

	a := engine.DecodeAction(cb.Data)

	switch a.Kind {
	case engine.KindStartTimer:
		label, ok := h.engine.TimerLabel(a.Week, a.Day, a.ExerciseIndex)
		if !ok {
			h.answerCallback(cb.ID, msgMenuOutdated)
			return
		}
		h.timers.Start(ctx, cb.From.ID, a.Seconds, label)
		h.answerCallback(cb.ID, msgTimerStarted)
		return

	case engine.KindCancelTimer:
		if h.timers.CancelIfActive(cb.From.ID) {
			h.answerCallback(cb.ID, msgTimerCancelled)
		} else {
			h.answerCallback(cb.ID, msgNoActiveTimer)
		}
		return
	}

	h.dispatch(ctx, cb.From.ID, chatID, messageID, a)
	h.answerCallback(cb.ID, "")
}

// dispatch runs an action through the engine and renders the result.
// Infrastructure failures never reach the user beyond a generic message.
func (h *Handler) dispatch(ctx context.Context, userID, chatID int64, messageID int, a engine.Action) {
	cmd, err := h.engine.HandleAction(ctx, userID, a)
	if err != nil {
		h.logger.Error("handle action",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}

	h.respond(chatID, messageID, cmd)
}

// ensureUser creates the user on first contact.
func (h *Handler) ensureUser(ctx context.Context, from *tgbotapi.User) {
	u, err := h.users.GetUser(ctx, from.ID)
	if err == nil && u != nil {
		return
	}
	if err != nil {
		h.logger.Error("get user", zap.Int64("user_id", from.ID), zap.Error(err))
		return
	}

	name := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if _, err := h.users.CreateUser(ctx, from.ID, name); err != nil {
		h.logger.Error("create user", zap.Int64("user_id", from.ID), zap.Error(err))
	}
}

func (h *Handler) answerCallback(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
	}
}
