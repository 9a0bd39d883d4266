package application

import (
	"sync"
	"time"

	"github.com/greendaybank/greenday-cli/internal/domain"
)

// DefaultNotificationTTL matches the original client's toast duration.
const DefaultNotificationTTL = 3 * time.Second

// Notification is the transient status message shown to the user.
type Notification struct {
	Message string
	Kind    domain.ActivityKind
	ShownAt time.Time
}

// NotificationCenter holds at most one notification. A new one preempts the
// current one; otherwise a notification only ever disappears by expiring TTL
// after it was shown.
type NotificationCenter struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
}

func NewNotificationCenter(ttl time.Duration) *NotificationCenter {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &NotificationCenter{ttl: ttl}
}

// Notify replaces whatever is currently displayed.
func (c *NotificationCenter) Notify(message string, kind domain.ActivityKind, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &Notification{Message: message, Kind: kind, ShownAt: now}
}

// Current returns the visible notification, if any. Expired notifications
// are dropped on read.
func (c *NotificationCenter) Current(now time.Time) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Notification{}, false
	}
	if now.Sub(c.current.ShownAt) >= c.ttl {
		c.current = nil
		return Notification{}, false
	}

	return *c.current, true
}
