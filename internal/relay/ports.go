package relay

import "context"

type Completer interface {
	// Complete выполняет один запрос к completion-сервису.
	// Ровно одна попытка, без ретраев — ретраи здесь не делаем.
	Complete(ctx context.Context, turns []Turn) (string, error)
}
