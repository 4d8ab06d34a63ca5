package ratelimit

import (
	"sync"
	"time"
)

// Decision 单次准入判定结果
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type window struct {
	start time.Time
	count int
}

// Limiter 固定窗口计数器，按 key 维护进程内计数。
// 计数只是准入启发，不持久化，进程重启即清零。
type Limiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	windows map[string]*window
}

func NewLimiter(limit int, period time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		period:  period,
		windows: make(map[string]*window),
	}
}

// Allow 判定 key 在当前窗口内是否还有配额。
// 只有放行才消耗配额，拒绝不计数；同一 key 的并发调用不会超卖。
func (l *Limiter) Allow(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.period {
		if len(l.windows) >= 10000 {
			l.sweep(now)
		}
		w = &window{start: now}
		l.windows[key] = w
	}

	resetAt := w.start.Add(l.period)
	if w.count >= l.limit {
		return Decision{Allowed: false, Remaining: 0, ResetAt: resetAt}
	}

	w.count++
	return Decision{Allowed: true, Remaining: l.limit - w.count, ResetAt: resetAt}
}

// sweep 清理已过期的窗口，调用方必须持有锁
func (l *Limiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.period {
			delete(l.windows, key)
		}
	}
}
