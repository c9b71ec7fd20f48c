package main

import (
	"log"
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/yradaev/astrobot/internal/ai"
	"github.com/yradaev/astrobot/internal/config"
	"github.com/yradaev/astrobot/internal/notificator"
	"github.com/yradaev/astrobot/internal/relay"
	"github.com/yradaev/astrobot/internal/telegram"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	sugar := baseLogger.Sugar()
	zl := logger.NewZapLogger(sugar)

	// =========================================================================
	// CLIENTS / SERVICES
	// =========================================================================

	deepseekClient := ai.NewDeepSeekClient(cfg.AI, sugar)

	notifInfra := notificator.NewInfra(cfg.AdminChatID)
	notifService := notificator.NewService(notifInfra)

	relayService := relay.NewService(deepseekClient, relay.Options{
		SystemPrompt:      cfg.Persona.SystemPrompt,
		MaxHistory:        cfg.Relay.MaxHistory,
		SoftErrorText:     cfg.Persona.SoftError,
		HardErrorText:     cfg.Persona.HardError,
		DonateInterval:    cfg.Relay.DonateInterval,
		DonateProbability: cfg.Relay.DonateProbability,
	}, sugar)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	botApp := telegram.NewBotApp(cfg, relayService, notifService, sugar)

	if err := botApp.InitBot(); err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	notifInfra.SetBot(botApp.Bot())

	// =========================================================================
	// HTTP ROUTER (healthcheck + webhook)
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.With(httputil.RecoverMiddleware).Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("Bot is running"))
	})

	if cfg.PublicDomain != "" {
		if err := botApp.RunWebhook(r, cfg.PublicDomain); err != nil {
			log.Fatalf("failed to set webhook: %v", err)
		}
	} else {
		go botApp.RunPolling()
	}

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "astrobot",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
