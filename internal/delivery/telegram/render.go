package telegram

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/workout-coach-bot/internal/engine"
)

// respond turns a render command into a Telegram message. Menus answering
// a button press edit the pressed message in place; everything else is
// sent as a new message.
func (h *Handler) respond(chatID int64, messageID int, cmd engine.RenderCommand) {
	text := renderText(cmd)
	keyboard := buildKeyboard(cmd.Options)

	if cmd.Kind == engine.RenderMenu && messageID != 0 {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
		edit.ParseMode = tgbotapi.ModeHTML
		edit.ReplyMarkup = keyboard
		h.send(edit)
		return
	}

	msg := newHTMLMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	h.send(msg)
}

func renderText(cmd engine.RenderCommand) string {
	switch cmd.Kind {
	case engine.RenderMenu:
		text := fmt.Sprintf("<b>%s</b>", html.EscapeString(cmd.Title))
		if cmd.Body != "" {
			text += "\n\n" + html.EscapeString(cmd.Body)
		}
		return text
	case engine.RenderError:
		return "⚠️ " + html.EscapeString(cmd.Body)
	default:
		return html.EscapeString(cmd.Body)
	}
}

// buildKeyboard lays menu options out one per row.
func buildKeyboard(options []engine.MenuOption) *tgbotapi.InlineKeyboardMarkup {
	if len(options) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, opt := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt.Label, opt.Token),
		))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}
