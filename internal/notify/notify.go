// Package notify holds the single transient notification.
package notify

import "time"

// DefaultTTL is how long a notice stays up without interaction.
const DefaultTTL = 4 * time.Second

// Kind is the notice flavour.
type Kind int

// Notice kinds.
const (
	KindSuccess Kind = iota
	KindError
)

// Notice is a shown notification.
type Notice struct {
	ID      uint64
	Kind    Kind
	Text    string
	ShownAt time.Time
}

// Center shows at most one notice at a time.
type Center struct {
	ttl     time.Duration
	now     func() time.Time
	seq     uint64
	current *Notice
}

// NewCenter returns a Center. ttl <= 0 uses DefaultTTL; a nil now uses time.Now.
func NewCenter(ttl time.Duration, now func() time.Time) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Center{ttl: ttl, now: now}
}

// TTL returns the auto-dismiss duration.
func (c *Center) TTL() time.Duration {
	return c.ttl
}

// Show replaces any current notice and returns the new one.
func (c *Center) Show(kind Kind, text string) Notice {
	c.seq++
	n := Notice{ID: c.seq, Kind: kind, Text: text, ShownAt: c.now()}
	c.current = &n
	return n
}

// Current returns the shown notice, if any.
func (c *Center) Current() (Notice, bool) {
	if c.current == nil {
		return Notice{}, false
	}
	return *c.current, true
}

// Expire clears the notice with id. A replaced notice's timer is a no-op.
func (c *Center) Expire(id uint64) bool {
	if c.current == nil || c.current.ID != id {
		return false
	}
	c.current = nil
	return true
}

// Dismiss clears the current notice immediately.
func (c *Center) Dismiss() bool {
	if c.current == nil {
		return false
	}
	c.current = nil
	return true
}

// Sweep clears the current notice once its TTL has elapsed at now.
func (c *Center) Sweep(now time.Time) bool {
	if c.current == nil {
		return false
	}
	if now.Sub(c.current.ShownAt) < c.ttl {
		return false
	}
	c.current = nil
	return true
}
