package relay

import (
	"math/rand"
	"sync"
	"time"
)

// ReminderGate решает, пора ли дописать к ответу напоминание о донате:
// с последнего напоминания прошло не меньше interval И выпал шанс
// probability. Первому успешному ответу пользователя напоминание
// не показываем, только запоминаем время.
type ReminderGate struct {
	mu          sync.Mutex
	last        map[int64]time.Time
	interval    time.Duration
	probability float64

	now  func() time.Time
	roll func() float64
}

func NewReminderGate(interval time.Duration, probability float64) *ReminderGate {
	return &ReminderGate{
		last:        make(map[int64]time.Time),
		interval:    interval,
		probability: probability,
		now:         time.Now,
		roll:        rand.Float64,
	}
}

func (g *ReminderGate) ShouldRemind(userID int64) bool {
	if g.probability <= 0 || g.interval <= 0 {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	last, ok := g.last[userID]
	if !ok {
		g.last[userID] = now
		return false
	}

	if now.Sub(last) < g.interval {
		return false
	}
	if g.roll() >= g.probability {
		return false
	}

	g.last[userID] = now
	return true
}
