// Package notify holds the single current user notification. Showing a
// new one cancels the previous auto-dismiss timer before scheduling its
// own, so at most one notification is ever visible.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"kanakku/internal/core"
)

// DefaultTTL is how long a notification stays visible unless
// superseded.
const DefaultTTL = 3 * time.Second

type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	timer   *time.Timer
	current *core.Notification
}

func NewCenter() *Center {
	return NewCenterTTL(DefaultTTL)
}

func NewCenterTTL(ttl time.Duration) *Center {
	return &Center{ttl: ttl}
}

// Show replaces the current notification and restarts the dismiss
// timer.
func (c *Center) Show(message string, kind core.NotificationKind) core.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}

	n := core.Notification{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
	}
	c.current = &n
	c.timer = time.AfterFunc(c.ttl, func() { c.expire(n.ID) })
	return n
}

func (c *Center) Success(message string) core.Notification {
	return c.Show(message, core.NotifySuccess)
}

func (c *Center) Error(message string) core.Notification {
	return c.Show(message, core.NotifyError)
}

func (c *Center) Info(message string) core.Notification {
	return c.Show(message, core.NotifyInfo)
}

// Current returns the visible notification, if any.
func (c *Center) Current() (core.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return core.Notification{}, false
	}
	return *c.current, true
}

// Dismiss clears the notification ahead of its timer.
func (c *Center) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
}

// expire clears only if the notification hasn't been superseded since
// the timer was armed.
func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && c.current.ID == id {
		c.current = nil
		c.timer = nil
	}
}
