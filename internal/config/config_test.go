package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
}

func TestLoadMissingTelegramToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "TELEGRAM_BOT_TOKEN") {
		t.Fatalf("expected TELEGRAM_BOT_TOKEN error, got %v", err)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DEEPSEEK_API_KEY", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "DEEPSEEK_API_KEY") {
		t.Fatalf("expected DEEPSEEK_API_KEY error, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port: got %q", cfg.Port)
	}
	if cfg.Relay.MaxHistory != 10 {
		t.Errorf("MaxHistory: got %d", cfg.Relay.MaxHistory)
	}
	if cfg.AI.Model != "deepseek-chat" {
		t.Errorf("Model: got %q", cfg.AI.Model)
	}
	if cfg.AI.BaseURL != "https://api.deepseek.com/v1" {
		t.Errorf("BaseURL: got %q", cfg.AI.BaseURL)
	}
	if cfg.AI.Temperature != 0.7 {
		t.Errorf("Temperature: got %v", cfg.AI.Temperature)
	}
	if cfg.AI.MaxTokens != 1000 {
		t.Errorf("MaxTokens: got %d", cfg.AI.MaxTokens)
	}
	if cfg.AI.Timeout != 30*time.Second {
		t.Errorf("Timeout: got %v", cfg.AI.Timeout)
	}
	if cfg.Relay.DonateInterval != 24*time.Hour {
		t.Errorf("DonateInterval: got %v", cfg.Relay.DonateInterval)
	}
	if cfg.Persona.SystemPrompt == "" {
		t.Error("SystemPrompt is empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MAX_HISTORY", "6")
	t.Setenv("MODEL_MAX_TOKENS", "500")
	t.Setenv("ADMIN_CHAT_ID", "4242")
	t.Setenv("SYSTEM_PROMPT", "ты краткий бот")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Relay.MaxHistory != 6 {
		t.Errorf("MaxHistory: got %d", cfg.Relay.MaxHistory)
	}
	if cfg.AI.MaxTokens != 500 {
		t.Errorf("MaxTokens: got %d", cfg.AI.MaxTokens)
	}
	if cfg.AdminChatID != 4242 {
		t.Errorf("AdminChatID: got %d", cfg.AdminChatID)
	}
	if cfg.Persona.SystemPrompt != "ты краткий бот" {
		t.Errorf("SystemPrompt: got %q", cfg.Persona.SystemPrompt)
	}
}

func TestLoadBadNumber(t *testing.T) {
	setRequired(t)
	t.Setenv("MAX_HISTORY", "ten")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid MAX_HISTORY")
	}
}
