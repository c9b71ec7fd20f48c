package relay

import "sync"

// Store — таблица сессий по telegram user id.
// Табличный lock держится только на check-and-create, чтобы две
// конкурентные «первые» message от нового пользователя получили
// один и тот же *session. Сами операции над историей сериализуются
// per-user мьютексом сессии, разные пользователи идут параллельно.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*session)}
}

func (s *Store) acquire(userID int64) *session {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[userID]; ok {
		return sess
	}
	sess = &session{}
	s.sessions[userID] = sess
	return sess
}
