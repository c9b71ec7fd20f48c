package relay

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Kind int

const (
	KindReply Kind = iota
	KindSoftError
	KindHardError
)

// Response — единственное, что relay отдаёт транспорту.
// Ошибки наружу не выходят: любой исход мапится в один из трёх Kind.
type Response struct {
	Kind Kind
	Text string

	// DonationHint — после удачного ответа сработал donation-гейт,
	// транспорт дописывает напоминание о поддержке проекта.
	DonationHint bool
}

type Options struct {
	SystemPrompt string
	MaxHistory   int

	SoftErrorText string
	HardErrorText string

	DonateInterval    time.Duration
	DonateProbability float64
}

type Service struct {
	store     *Store
	completer Completer
	reminders *ReminderGate
	opts      Options
	log       *zap.SugaredLogger
}

func NewService(completer Completer, opts Options, log *zap.SugaredLogger) *Service {
	if opts.MaxHistory < 2 {
		opts.MaxHistory = 10
	}
	return &Service{
		store:     NewStore(),
		completer: completer,
		reminders: NewReminderGate(opts.DonateInterval, opts.DonateProbability),
		opts:      opts,
		log:       log,
	}
}

// HandleMessage — ровно один терминальный Response на каждое входящее
// сообщение. Паника любого происхождения гасится здесь же и превращается
// в HardError, чтобы не уронить обработку и не зацепить других пользователей.
func (s *Service) HandleMessage(ctx context.Context, userID int64, text string) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorw("[relay] panic recovered", "user", userID, "panic", r)
			resp = Response{Kind: KindHardError, Text: s.opts.HardErrorText}
		}
	}()

	sess := s.store.acquire(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// ленивый посев: пустая сессия (новая или после /reset)
	// получает системный промпт первым ходом
	if len(sess.turns) == 0 {
		sess.turns = append(sess.turns, Turn{Role: RoleSystem, Content: s.opts.SystemPrompt})
	}

	sess.turns = append(sess.turns, Turn{Role: RoleUser, Content: text})
	sess.turns = trimTurns(sess.turns, s.opts.MaxHistory)

	payload := make([]Turn, len(sess.turns))
	copy(payload, sess.turns)

	reply, err := s.completer.Complete(ctx, payload)
	if err != nil {
		// user-ход остаётся без ответа в истории, это осознанно
		s.log.Warnw("[relay] completion fail", "user", userID, "err", err)
		return Response{Kind: KindSoftError, Text: s.opts.SoftErrorText}
	}

	sess.turns = trimTurns(
		append(sess.turns, Turn{Role: RoleAssistant, Content: reply}),
		s.opts.MaxHistory,
	)

	return Response{
		Kind:         KindReply,
		Text:         reply,
		DonationHint: s.reminders.ShouldRemind(userID),
	}
}

// Reset очищает сессию полностью, включая системный ход, — как в первой
// версии бота. Следующее сообщение засеет системный промпт заново.
func (s *Service) Reset(userID int64) {
	sess := s.store.acquire(userID)
	sess.mu.Lock()
	sess.turns = nil
	sess.mu.Unlock()
}

// History — копия текущей истории пользователя.
func (s *Service) History(userID int64) []Turn {
	sess := s.store.acquire(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]Turn, len(sess.turns))
	copy(out, sess.turns)
	return out
}
