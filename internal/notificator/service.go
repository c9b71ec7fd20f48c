package notificator

import "context"

type Service struct {
	infra Notificator
}

func NewService(infra Notificator) *Service {
	return &Service{infra: infra}
}

func (s *Service) Notify(ctx context.Context, err error, details string) error {
	return s.infra.Notify(ctx, err, details)
}

func (s *Service) Send(ctx context.Context, text string) error {
	return s.infra.Send(ctx, text)
}
