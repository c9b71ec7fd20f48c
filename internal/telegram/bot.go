package telegram

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RunPolling — long-poll цикл получения апдейтов (локальная разработка
// и хостинг без публичного домена).
func (app *BotApp) RunPolling() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	app.log.Infof("[bot_loop] polling started @%s", app.bot.Self.UserName)

	app.consume(updates)
}

// RunWebhook — регистрирует вебхук на https://<domain>/<token> и вешает
// приёмник апдейтов на общий chi-роутер. Цикл обработки уходит в фон,
// сам HTTP-сервер поднимает main.
func (app *BotApp) RunWebhook(r chi.Router, domain string) error {
	url := "https://" + domain + "/" + app.cfg.TelegramToken

	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return err
	}
	if _, err := app.bot.Request(wh); err != nil {
		return err
	}

	updates := make(chan tgbotapi.Update, 128)

	r.Post("/"+app.cfg.TelegramToken, func(w http.ResponseWriter, req *http.Request) {
		update, err := app.bot.HandleUpdate(req)
		if err != nil {
			app.log.Warnf("[webhook] bad update: %v", err)
			http.Error(w, "bad update", http.StatusBadRequest)
			return
		}
		updates <- *update
		w.WriteHeader(http.StatusOK)
	})

	app.log.Infof("[bot_loop] webhook registered: %s", domain)
	go app.consume(updates)
	return nil
}

func (app *BotApp) consume(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		// каждый апдейт — своя горутина, пользователи не ждут друг друга
		go app.dispatchUpdate(context.Background(), update)
	}
}

func (app *BotApp) dispatchUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		app.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		app.handleCallback(ctx, update.CallbackQuery)
	}
}

func (app *BotApp) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		app.handleCommand(ctx, msg)
		return
	}

	if msg.Text == "" {
		return
	}

	if app.takeFeedback(msg.From.ID) {
		app.handleFeedback(ctx, msg)
		return
	}

	app.handleText(ctx, msg)
}
