package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/yradaev/astrobot/internal/config"
	"github.com/yradaev/astrobot/internal/relay"
)

func testClient(baseURL string, timeout time.Duration) *DeepSeekClient {
	return NewDeepSeekClient(config.AIConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "deepseek-chat",
		Temperature: 0.7,
		MaxTokens:   1000,
		Timeout:     timeout,
	}, zap.NewNop().Sugar())
}

func testTurns() []relay.Turn {
	return []relay.Turn{
		{Role: relay.RoleSystem, Content: "system"},
		{Role: relay.RoleUser, Content: "Hello"},
	}
}

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "c1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hi there"}}]
		}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL, time.Second).Complete(context.Background(), testTurns())
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if got != "Hi there" {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "upstream down", "type": "server_error"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, time.Second).Complete(context.Background(), testTurns())
	if !errors.Is(err, ErrCompletionUnavailable) {
		t.Fatalf("expected ErrCompletionUnavailable, got %v", err)
	}
}

func TestCompleteMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, time.Second).Complete(context.Background(), testTurns())
	if !errors.Is(err, ErrCompletionUnavailable) {
		t.Fatalf("expected ErrCompletionUnavailable, got %v", err)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "c1", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, time.Second).Complete(context.Background(), testTurns())
	if !errors.Is(err, ErrCompletionUnavailable) {
		t.Fatalf("expected ErrCompletionUnavailable, got %v", err)
	}
}

func TestCompleteTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "too late"}}]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 50*time.Millisecond).Complete(context.Background(), testTurns())
	if !errors.Is(err, ErrCompletionUnavailable) {
		t.Fatalf("expected ErrCompletionUnavailable on timeout, got %v", err)
	}
}
