// Package session tracks admin token activity so idle sessions expire
// server-side.
package session

import (
	"sync"
	"time"
)

// DefaultThrottle coalesces touches that arrive in quick succession.
const DefaultThrottle = 2 * time.Second

type entry struct {
	lastSeen  time.Time
	expiresAt time.Time
	revoked   bool
}

// Tracker records the last activity of every token id (jti). Entries are
// kept until the token itself expires so that an ended session cannot be
// revived.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*entry
	idle     time.Duration
	throttle time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewTracker returns a tracker that ends sessions idle for longer than
// idle. A zero idle disables the timeout; logout still works.
func NewTracker(idle time.Duration) *Tracker {
	return &Tracker{
		sessions: make(map[string]*entry),
		idle:     idle,
		throttle: DefaultThrottle,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Touch records activity for id and reports whether the session is still
// alive. Unknown ids start a fresh session.
func (t *Tracker) Touch(id string, expiresAt time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	e, ok := t.sessions[id]
	if !ok {
		t.sessions[id] = &entry{lastSeen: now, expiresAt: expiresAt}
		return true
	}
	if e.revoked {
		return false
	}
	if t.idle > 0 && now.Sub(e.lastSeen) > t.idle {
		e.revoked = true
		return false
	}
	if now.Sub(e.lastSeen) >= t.throttle {
		e.lastSeen = now
	}
	return true
}

// Revoke ends the session for id.
func (t *Tracker) Revoke(id string, expiresAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.sessions[id]
	if !ok {
		e = &entry{expiresAt: expiresAt}
		t.sessions[id] = e
	}
	e.revoked = true
}

// Len returns the number of tracked sessions.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// Start runs the cleanup loop until Stop is called.
func (t *Tracker) Start(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				t.cleanup()
			case <-t.stop:
				return
			}
		}
	}()
}

func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

// cleanup drops sessions whose token has expired
func (t *Tracker) cleanup() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	for id, e := range t.sessions {
		if now.After(e.expiresAt) {
			delete(t.sessions, id)
		}
	}
}
