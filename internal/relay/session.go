package relay

import "sync"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn — одно сообщение диалога. После создания не меняется.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// session — история одного пользователя.
// mu сериализует весь цикл append-trim-call-append (см. service.go),
// поэтому держится в том числе на время запроса к completion-сервису.
type session struct {
	mu    sync.Mutex
	turns []Turn
}

// trimTurns — скользящее окно с якорем: turns[0] (системный промпт)
// не вытесняется никогда, удаляются самые старые user/assistant ходы.
func trimTurns(turns []Turn, max int) []Turn {
	if len(turns) <= max {
		return turns
	}
	out := make([]Turn, 0, max)
	out = append(out, turns[0])
	out = append(out, turns[len(turns)-(max-1):]...)
	return out
}
