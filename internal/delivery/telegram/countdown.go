package telegram

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/workout-coach-bot/internal/engine"
)

// CountdownNotifier delivers timer render commands. The first tick sends
// a fresh message; later ticks edit it in place so the chat shows a single
// live countdown. A delivery error is returned to the timer manager,
// which stops that session's loop.
type CountdownNotifier struct {
	bot *tgbotapi.BotAPI

	mu       sync.Mutex
	messages map[int64]int
}

func NewCountdownNotifier(bot *tgbotapi.BotAPI) *CountdownNotifier {
	return &CountdownNotifier{
		bot:      bot,
		messages: make(map[int64]int),
	}
}

func (n *CountdownNotifier) Tick(userID int64, cmd engine.RenderCommand) error {
	n.mu.Lock()
	messageID, ok := n.messages[userID]
	n.mu.Unlock()

	if ok {
		if _, err := n.bot.Send(tgbotapi.NewEditMessageText(userID, messageID, cmd.Body)); err != nil {
			n.forget(userID)
			return err
		}
		return nil
	}

	sent, err := n.bot.Send(tgbotapi.NewMessage(userID, cmd.Body))
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.messages[userID] = sent.MessageID
	n.mu.Unlock()
	return nil
}

func (n *CountdownNotifier) Done(userID int64, cmd engine.RenderCommand) error {
	n.mu.Lock()
	messageID, ok := n.messages[userID]
	n.mu.Unlock()
	n.forget(userID)

	if ok {
		_, err := n.bot.Send(tgbotapi.NewEditMessageText(userID, messageID, cmd.Body))
		return err
	}

	_, err := n.bot.Send(tgbotapi.NewMessage(userID, cmd.Body))
	return err
}

func (n *CountdownNotifier) forget(userID int64) {
	n.mu.Lock()
	delete(n.messages, userID)
	n.mu.Unlock()
}
