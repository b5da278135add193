package spotlight

import "testing"

func TestGateStartsVisibleAndLocked(t *testing.T) {
	g := New(0)
	if !g.Visible() || !g.ScrollLocked() || !g.Tracking() {
		t.Fatalf("expected visible, locked, tracking gate")
	}
	if _, ok := g.Position(); ok {
		t.Fatalf("expected no position before movement")
	}
}

func TestGateTracksUntilDismissed(t *testing.T) {
	g := New(4)
	if !g.Move(3, 4) {
		t.Fatalf("expected move to be tracked")
	}
	if p, ok := g.Position(); !ok || p != (Point{X: 3, Y: 4}) {
		t.Fatalf("unexpected position %+v", p)
	}
	if !g.Dismiss() {
		t.Fatalf("first dismiss should report true")
	}
	if g.Move(10, 10) {
		t.Fatalf("move after dismiss must be ignored")
	}
	if p, _ := g.Position(); p != (Point{X: 3, Y: 4}) {
		t.Fatalf("position changed after dismiss: %+v", p)
	}
	if g.Moves() != 1 {
		t.Fatalf("expected 1 tracked move, got %d", g.Moves())
	}
	if g.ScrollLocked() {
		t.Fatalf("scroll must unlock on dismiss")
	}
}

func TestGateDismissIsOneWay(t *testing.T) {
	g := New(0)
	g.Dismiss()
	if g.Dismiss() {
		t.Fatalf("second dismiss should report false")
	}
	if g.Visible() {
		t.Fatalf("gate must stay dismissed")
	}
}

func TestGateTouchSinglePointOnly(t *testing.T) {
	g := New(0)
	if g.Touch([]Point{{X: 1, Y: 1}, {X: 2, Y: 2}}) {
		t.Fatalf("multi-touch should be ignored")
	}
	if !g.Touch([]Point{{X: 5, Y: 6}}) {
		t.Fatalf("single touch should be tracked")
	}
	if p, _ := g.Position(); p != (Point{X: 5, Y: 6}) {
		t.Fatalf("unexpected position %+v", p)
	}
}

func TestGateLit(t *testing.T) {
	g := New(4)
	if g.Lit(0, 0) {
		t.Fatalf("nothing is lit before the pointer moves")
	}
	g.Move(10, 10)
	if !g.Lit(10, 10) || !g.Lit(14, 10) || !g.Lit(10, 12) {
		t.Fatalf("expected cells within radius to be lit")
	}
	if g.Lit(15, 10) || g.Lit(10, 13) {
		t.Fatalf("expected cells outside radius to be dark")
	}
}
