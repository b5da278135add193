package sections

import "testing"

func fixed(r Rect) BoundsFunc {
	return func() (Rect, bool) { return r, true }
}

func TestSelectThresholdBounds(t *testing.T) {
	measured := []Measured{
		{ID: "about", Rect: Rect{Top: 50, Bottom: 150}, OK: true},
		{ID: "projects", Rect: Rect{Top: 150, Bottom: 300}, OK: true},
	}
	id, ok := Select(measured, 100)
	if !ok || id != "about" {
		t.Fatalf("expected about, got %q (%v)", id, ok)
	}
	id, ok = Select(measured[1:], 100)
	if ok {
		t.Fatalf("expected no match for top=150, got %q", id)
	}
}

func TestSelectFirstMatchWins(t *testing.T) {
	measured := []Measured{
		{ID: "missing", OK: false},
		{ID: "a", Rect: Rect{Top: 0, Bottom: 200}, OK: true},
		{ID: "b", Rect: Rect{Top: 90, Bottom: 110}, OK: true},
	}
	id, ok := Select(measured, 100)
	if !ok || id != "a" {
		t.Fatalf("expected first registered match a, got %q", id)
	}
}

func TestTrackerUpdatesOnceOnSwitch(t *testing.T) {
	offset := 0
	// Layout in document coordinates: about [50,150], projects [150,400].
	bounds := func(top, bottom int) BoundsFunc {
		return func() (Rect, bool) { return Rect{Top: top - offset, Bottom: bottom - offset}, true }
	}
	tr := NewTracker([]Section{
		{ID: "about", Bounds: bounds(50, 150)},
		{ID: "projects", Bounds: bounds(151, 400)},
	}, Options{Threshold: 100, TopThreshold: 500, Default: "home"})

	if tr.Active() != "home" {
		t.Fatalf("expected default before scroll, got %q", tr.Active())
	}
	if !tr.OnScroll(offset) || tr.Active() != "about" {
		t.Fatalf("expected about after first scroll, got %q", tr.Active())
	}

	offset = 100
	if !tr.OnScroll(offset) {
		t.Fatalf("expected change to projects")
	}
	if tr.Active() != "projects" {
		t.Fatalf("expected projects, got %q", tr.Active())
	}
	changes := tr.Changes()
	for i := 0; i < 3; i++ {
		if tr.OnScroll(offset) {
			t.Fatalf("repeated scroll must not report a change")
		}
	}
	if tr.Changes() != changes {
		t.Fatalf("active id updated more than once")
	}
}

func TestTrackerKeepsActiveWhenNothingMatches(t *testing.T) {
	tr := NewTracker([]Section{
		{ID: "a", Bounds: fixed(Rect{Top: 0, Bottom: 200})},
	}, Options{Threshold: 100})
	tr.OnScroll(0)
	tr.sections[0].Bounds = fixed(Rect{Top: 300, Bottom: 400})
	if tr.OnScroll(10) {
		t.Fatalf("no match should not change active")
	}
	if tr.Active() != "a" {
		t.Fatalf("expected a to remain active, got %q", tr.Active())
	}
}

func TestTrackerPastThreshold(t *testing.T) {
	tr := NewTracker(nil, Options{TopThreshold: 500})
	tr.OnScroll(500)
	if tr.PastThreshold() {
		t.Fatalf("500 is not past 500")
	}
	tr.OnScroll(501)
	if !tr.PastThreshold() {
		t.Fatalf("501 is past 500")
	}
	tr.OnScroll(0)
	if tr.PastThreshold() {
		t.Fatalf("expected flag cleared at top")
	}
}

func TestTrackerSkipsUnmeasuredSections(t *testing.T) {
	tr := NewTracker([]Section{
		{ID: "hidden", Bounds: func() (Rect, bool) { return Rect{}, false }},
		{ID: "nil"},
		{ID: "shown", Bounds: fixed(Rect{Top: 0, Bottom: 10})},
	}, Options{Threshold: 5})
	tr.OnScroll(0)
	if tr.Active() != "shown" {
		t.Fatalf("expected shown, got %q", tr.Active())
	}
}
