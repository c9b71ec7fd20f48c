package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

func (app *BotApp) handleFeedback(ctx context.Context, msg *tgbotapi.Message) {
	user := msg.From

	feedbackID := uuid.NewString()
	app.log.Infow("[feedback] received",
		"id", feedbackID,
		"tgID", user.ID,
		"username", user.UserName,
		"text", msg.Text,
		"ts", time.Now().UTC().Format(time.RFC3339),
	)

	if err := app.Notify.Send(ctx, fmt.Sprintf(
		"📨 Новый отзыв для Астробота\n\nID: %s\nПользователь: %s (@%s)\nTG: %d\n\n%s",
		feedbackID, user.FirstName, user.UserName, user.ID, msg.Text,
	)); err != nil {
		app.log.Warnf("[feedback] admin forward fail: %v", err)
	}

	app.sendMarkdown(msg.Chat.ID, app.cfg.Persona.FeedbackThanks)
}
