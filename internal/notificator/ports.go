package notificator

import "context"

type Notificator interface {
	// Notify — отправляет сообщение об ошибке в админский чат
	Notify(ctx context.Context, err error, details string) error

	// Send — произвольное служебное сообщение админу (отзывы и т.п.)
	Send(ctx context.Context, text string) error
}
