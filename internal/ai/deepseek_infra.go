package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	tiktoken "github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/yradaev/astrobot/internal/config"
	"github.com/yradaev/astrobot/internal/relay"
)

// ErrCompletionUnavailable — любой провал обмена с completion-сервисом:
// сеть, таймаут, не-200, пустой или кривой ответ. Наружу различия
// не выносим, для relay всё это «ответа нет».
var ErrCompletionUnavailable = errors.New("completion unavailable")

// DeepSeekClient — один запрос к OpenAI-совместимому API DeepSeek.
// Таймаут на весь обмен, без ретраев.
type DeepSeekClient struct {
	client *openai.Client
	cfg    config.AIConfig
	enc    *tiktoken.Tiktoken
	log    *zap.SugaredLogger
}

func NewDeepSeekClient(cfg config.AIConfig, log *zap.SugaredLogger) *DeepSeekClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	// токенизатор только для диагностики размера промпта
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		log.Warnf("[ai] tokenizer init fail: %v", err)
		enc = nil
	}

	return &DeepSeekClient{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		enc:    enc,
		log:    log,
	}
}

func (c *DeepSeekClient) Complete(ctx context.Context, turns []relay.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(t.Role),
			Content: t.Content,
		})
	}

	if c.enc != nil {
		c.log.Debugw("[ai] request", "turns", len(turns), "prompt_tokens", c.countTokens(turns))
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		c.log.Warnf("[ai] completion fail: %v", err)
		return "", fmt.Errorf("%w: %v", ErrCompletionUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		c.log.Warn("[ai] completion returned no choices")
		return "", ErrCompletionUnavailable
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *DeepSeekClient) countTokens(turns []relay.Turn) int {
	total := 0
	for _, t := range turns {
		total += len(c.enc.Encode(t.Content, nil, nil))
	}
	return total
}
