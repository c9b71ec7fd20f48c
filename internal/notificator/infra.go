package notificator

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	adminChatID int64
	bot         *tgbotapi.BotAPI
}

func NewInfra(adminChatID int64) *Infra {
	return &Infra{adminChatID: adminChatID}
}

// SetBot — позволяет передать бота ПОСЛЕ того, как он инициализировался
func (i *Infra) SetBot(bot *tgbotapi.BotAPI) {
	i.bot = bot
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	text := fmt.Sprintf("❗ Ошибка в Астроботе\n\nОшибка: %v\n\nДетали: %s", err, details)
	return i.Send(ctx, text)
}

func (i *Infra) Send(_ context.Context, text string) error {
	if i.adminChatID == 0 || i.bot == nil {
		log.Printf("[notificator] admin chat disabled, dropping: %.80s", text)
		return nil
	}

	msg := tgbotapi.NewMessage(i.adminChatID, text)

	if _, sendErr := i.bot.Send(msg); sendErr != nil {
		log.Printf("[notificator] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
