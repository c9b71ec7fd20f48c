package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config собирает все настройки процесса. Загружается один раз на старте;
// отсутствие обязательных токенов — фатальная ошибка конфигурации,
// сервис в таком состоянии не запускается.
type Config struct {
	TelegramToken string
	AdminChatID   int64
	Port          string
	PublicDomain  string

	AI      AIConfig
	Relay   RelayConfig
	Persona Persona
}

type AIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type RelayConfig struct {
	MaxHistory        int
	DonateInterval    time.Duration
	DonateProbability float64
}

func Load() (*Config, error) {
	token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	apiKey := strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("DEEPSEEK_API_KEY is not set")
	}

	adminChatID, err := parseInt64Env("ADMIN_CHAT_ID", 0)
	if err != nil {
		return nil, err
	}

	maxHistory, err := parseIntEnv("MAX_HISTORY", 10)
	if err != nil {
		return nil, err
	}

	temperature, err := parseFloatEnv("MODEL_TEMPERATURE", 0.7)
	if err != nil {
		return nil, err
	}

	maxTokens, err := parseIntEnv("MODEL_MAX_TOKENS", 1000)
	if err != nil {
		return nil, err
	}

	donateHours, err := parseIntEnv("DONATE_INTERVAL_HOURS", 24)
	if err != nil {
		return nil, err
	}

	donateProb, err := parseFloatEnv("DONATE_PROBABILITY", 0.3)
	if err != nil {
		return nil, err
	}

	return &Config{
		TelegramToken: token,
		AdminChatID:   adminChatID,
		Port:          getEnvOrDefault("PORT", "8080"),
		PublicDomain:  strings.TrimSpace(os.Getenv("PUBLIC_DOMAIN")),
		AI: AIConfig{
			APIKey:      apiKey,
			BaseURL:     getEnvOrDefault("DEEPSEEK_API_URL", "https://api.deepseek.com/v1"),
			Model:       getEnvOrDefault("DEEPSEEK_MODEL", "deepseek-chat"),
			Temperature: float32(temperature),
			MaxTokens:   maxTokens,
			Timeout:     30 * time.Second,
		},
		Relay: RelayConfig{
			MaxHistory:        maxHistory,
			DonateInterval:    time.Duration(donateHours) * time.Hour,
			DonateProbability: donateProb,
		},
		Persona: loadPersona(),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseInt64Env(key string, defaultValue int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
