package telegram

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yradaev/astrobot/internal/config"
	"github.com/yradaev/astrobot/internal/notificator"
	"github.com/yradaev/astrobot/internal/relay"
)

type BotApp struct {
	Relay  *relay.Service
	Notify notificator.Notificator

	cfg *config.Config
	log *zap.SugaredLogger
	bot *tgbotapi.BotAPI

	mu               sync.Mutex
	awaitingFeedback map[int64]bool
}

func NewBotApp(
	cfg *config.Config,
	relaySvc *relay.Service,
	notify notificator.Notificator,
	log *zap.SugaredLogger,
) *BotApp {
	return &BotApp{
		Relay:            relaySvc,
		Notify:           notify,
		cfg:              cfg,
		log:              log,
		awaitingFeedback: make(map[int64]bool),
	}
}

func (app *BotApp) InitBot() error {
	bot, err := tgbotapi.NewBotAPI(app.cfg.TelegramToken)
	if err != nil {
		return err
	}

	app.bot = bot
	app.log.Infof("[bot_app] ready: @%s", bot.Self.UserName)
	return nil
}

func (app *BotApp) Bot() *tgbotapi.BotAPI {
	return app.bot
}

// armFeedback — следующее текстовое сообщение пользователя уйдёт
// как отзыв, а не в completion-сервис.
func (app *BotApp) armFeedback(userID int64) {
	app.mu.Lock()
	app.awaitingFeedback[userID] = true
	app.mu.Unlock()
}

// takeFeedback — снимает флаг и сообщает, был ли он взведён.
func (app *BotApp) takeFeedback(userID int64) bool {
	app.mu.Lock()
	defer app.mu.Unlock()
	armed := app.awaitingFeedback[userID]
	delete(app.awaitingFeedback, userID)
	return armed
}
