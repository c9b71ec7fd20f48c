package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	app.log.Infof("[command] /%s tgID=%d", msg.Command(), userID)

	switch msg.Command() {
	case "start":
		app.sendMarkdown(chatID, fmt.Sprintf(app.cfg.Persona.Welcome, msg.From.FirstName))

	case "help":
		app.sendMarkdown(chatID, app.cfg.Persona.Help)

	case "donate":
		d := app.cfg.Persona.Donation
		m := tgbotapi.NewMessage(chatID, fmt.Sprintf(
			app.cfg.Persona.Donate,
			d.CardNumber, d.Bank, d.Cardholder, d.Info,
		))
		m.ParseMode = tgbotapi.ModeMarkdown
		m.ReplyMarkup = buildDonateKeyboard()
		if _, err := app.bot.Send(m); err != nil {
			app.log.Warnf("[command] donate send fail: %v", err)
		}

	case "reset":
		app.Relay.Reset(userID)
		app.sendMarkdown(chatID, app.cfg.Persona.ResetDone)

	case "feedback":
		app.armFeedback(userID)
		app.sendMarkdown(chatID, app.cfg.Persona.FeedbackPrompt)

	default:
		app.sendPlain(chatID, "Неизвестная команда. Список команд — /start")
	}
}
