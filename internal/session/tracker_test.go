package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker(idle time.Duration) (*Tracker, *clock) {
	c := &clock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	tr := NewTracker(idle)
	tr.now = c.now
	return tr, c
}

func TestTracker_IdleSessionExpires(t *testing.T) {
	tr, c := newTestTracker(10 * time.Minute)
	exp := c.t.Add(7 * 24 * time.Hour)

	assert.True(t, tr.Touch("jti", exp))
	c.advance(9 * time.Minute)
	assert.True(t, tr.Touch("jti", exp))
	c.advance(9 * time.Minute)
	assert.True(t, tr.Touch("jti", exp), "activity resets the idle timer")

	c.advance(11 * time.Minute)
	assert.False(t, tr.Touch("jti", exp))
	c.advance(time.Second)
	assert.False(t, tr.Touch("jti", exp), "an ended session stays ended")
}

func TestTracker_ThrottlesTouches(t *testing.T) {
	tr, c := newTestTracker(10 * time.Second)
	exp := c.t.Add(time.Hour)
	start := c.t

	assert.True(t, tr.Touch("jti", exp))
	c.advance(time.Second)
	assert.True(t, tr.Touch("jti", exp))
	assert.Equal(t, start, tr.sessions["jti"].lastSeen)

	c.advance(1500 * time.Millisecond)
	assert.True(t, tr.Touch("jti", exp))
	assert.Equal(t, c.t, tr.sessions["jti"].lastSeen)
}

func TestTracker_Revoke(t *testing.T) {
	tr, c := newTestTracker(0)
	exp := c.t.Add(time.Hour)

	assert.True(t, tr.Touch("a", exp))
	tr.Revoke("a", exp)
	assert.False(t, tr.Touch("a", exp))

	tr.Revoke("never-seen", exp)
	assert.False(t, tr.Touch("never-seen", exp))
}

func TestTracker_ZeroIdleDisablesTimeout(t *testing.T) {
	tr, c := newTestTracker(0)
	exp := c.t.Add(48 * time.Hour)

	assert.True(t, tr.Touch("jti", exp))
	c.advance(24 * time.Hour)
	assert.True(t, tr.Touch("jti", exp))
}

func TestTracker_CleanupDropsExpiredTokens(t *testing.T) {
	tr, c := newTestTracker(time.Minute)

	tr.Touch("short", c.t.Add(time.Minute))
	tr.Touch("long", c.t.Add(time.Hour))
	c.advance(2 * time.Minute)
	tr.cleanup()

	assert.Equal(t, 1, tr.Len())
}

func TestTracker_StartStop(t *testing.T) {
	tr := NewTracker(time.Minute)
	tr.Start(time.Millisecond)
	tr.Stop()
	tr.Stop()
}
