package notify

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func TestNoticeAutoDismissAfterTTL(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	c := NewCenter(4*time.Second, clock.Now)
	c.Show(KindSuccess, "sent")

	if c.Sweep(clock.t.Add(3999 * time.Millisecond)) {
		t.Fatalf("notice removed before ttl")
	}
	if _, ok := c.Current(); !ok {
		t.Fatalf("expected notice still shown")
	}
	if !c.Sweep(clock.t.Add(4 * time.Second)) {
		t.Fatalf("expected notice removed at ttl")
	}
	if _, ok := c.Current(); ok {
		t.Fatalf("notice still present after ttl")
	}
}

func TestExplicitDismissIsImmediate(t *testing.T) {
	c := NewCenter(0, nil)
	c.Show(KindError, "failed")
	if !c.Dismiss() {
		t.Fatalf("expected dismiss to clear notice")
	}
	if _, ok := c.Current(); ok {
		t.Fatalf("notice present after dismiss")
	}
	if c.Dismiss() {
		t.Fatalf("dismiss with nothing shown should report false")
	}
}

func TestNewNoticeReplacesAndOldTimerIsNoop(t *testing.T) {
	c := NewCenter(0, nil)
	first := c.Show(KindError, "first")
	second := c.Show(KindSuccess, "second")
	if c.Expire(first.ID) {
		t.Fatalf("expiring a replaced notice must not clear the current one")
	}
	cur, ok := c.Current()
	if !ok || cur.ID != second.ID || cur.Text != "second" {
		t.Fatalf("unexpected current notice %+v", cur)
	}
	if !c.Expire(second.ID) {
		t.Fatalf("expected current notice to expire")
	}
}

func TestDefaultTTL(t *testing.T) {
	if NewCenter(0, nil).TTL() != DefaultTTL {
		t.Fatalf("expected default ttl")
	}
}
