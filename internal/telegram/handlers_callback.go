package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID

	// всегда отвечаем Telegram
	app.bot.Request(tgbotapi.NewCallback(cb.ID, ""))

	app.log.Infof("[callback] tgID=%d data=%s", cb.From.ID, cb.Data)

	switch cb.Data {
	case "donated":
		edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, app.cfg.Persona.DonateThanks)
		edit.ParseMode = tgbotapi.ModeMarkdown
		if _, err := app.bot.Send(edit); err != nil {
			app.log.Warnf("[callback] edit fail: %v", err)
		}

	case "copy_details":
		d := app.cfg.Persona.Donation
		m := tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"`Карта: %s\nБанк: %s`\n\nРеквизиты в текстовом формате.",
			d.CardNumber, d.Bank,
		))
		m.ParseMode = tgbotapi.ModeMarkdown
		if _, err := app.bot.Send(m); err != nil {
			app.log.Warnf("[callback] send fail: %v", err)
		}
	}
}
