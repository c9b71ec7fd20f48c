package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yradaev/astrobot/internal/relay"
)

func (app *BotApp) handleText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	app.log.Infof("[text] start tgID=%d", userID)

	// индикатор «печатает…» на время похода в completion-сервис
	app.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	resp := app.Relay.HandleMessage(ctx, userID, msg.Text)

	switch resp.Kind {
	case relay.KindReply:
		text := resp.Text
		if resp.DonationHint {
			text += "\n\n" + app.cfg.Persona.DonateReminder
		}
		app.sendMarkdown(chatID, text)

	default:
		// Soft/Hard: фиксированный шаблон, всегда plain text
		app.sendPlain(chatID, resp.Text)
		app.Notify.Notify(ctx, fmt.Errorf("relay response kind=%d", resp.Kind),
			fmt.Sprintf("Пользователь: %d\nВопрос: %q", userID, msg.Text))
	}

	app.log.Infof("[text] done tgID=%d kind=%d", userID, resp.Kind)
}

// sendMarkdown — Markdown-ответ; если Telegram не принял разметку
// (модель любит незакрытые звёздочки), повторяем как plain text.
func (app *BotApp) sendMarkdown(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeMarkdown
	if _, err := app.bot.Send(m); err != nil {
		app.log.Warnf("[text] markdown send fail, retry plain: %v", err)
		app.sendPlain(chatID, text)
	}
}

func (app *BotApp) sendPlain(chatID int64, text string) {
	if _, err := app.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		app.log.Warnf("[text] send fail chatID=%d: %v", chatID, err)
	}
}
