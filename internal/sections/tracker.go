// Package sections tracks which page section is in view.
package sections

// Rect is a vertical span in viewport coordinates. Top and Bottom are
// relative to the viewport's first visible row.
type Rect struct {
	Top    int
	Bottom int
}

// Contains reports whether y falls inside the span, inclusive.
func (r Rect) Contains(y int) bool {
	return r.Top <= y && r.Bottom >= y
}

// BoundsFunc measures a section. ok is false when the section is not laid out.
type BoundsFunc func() (r Rect, ok bool)

// Section is a registered page section.
type Section struct {
	ID     string
	Bounds BoundsFunc
}

// Measured is a section with its rectangle already computed.
type Measured struct {
	ID   string
	Rect Rect
	OK   bool
}

// Select returns the first section, in order, whose span contains threshold.
// Overlapping sections resolve to the earliest one.
func Select(measured []Measured, threshold int) (string, bool) {
	for _, m := range measured {
		if m.OK && m.Rect.Contains(threshold) {
			return m.ID, true
		}
	}
	return "", false
}

// Options configures a Tracker.
type Options struct {
	// Threshold is the row offset from the viewport top used for selection.
	Threshold int
	// TopThreshold is the scroll offset past which the back-to-top
	// affordance is shown.
	TopThreshold int
	// Default is the active id before any section matched.
	Default string
}

// Tracker owns the active section id.
type Tracker struct {
	sections      []Section
	opts          Options
	active        string
	pastThreshold bool
	changes       int
}

// NewTracker registers sections in order.
func NewTracker(sections []Section, opts Options) *Tracker {
	return &Tracker{
		sections: append([]Section(nil), sections...),
		opts:     opts,
		active:   opts.Default,
	}
}

// Active returns the current section id.
func (t *Tracker) Active() string {
	return t.active
}

// PastThreshold reports whether the scroll offset is past TopThreshold.
func (t *Tracker) PastThreshold() bool {
	return t.pastThreshold
}

// Changes returns how many times the active id has changed.
func (t *Tracker) Changes() int {
	return t.changes
}

// IDs returns the registered ids in order.
func (t *Tracker) IDs() []string {
	ids := make([]string, len(t.sections))
	for i, s := range t.sections {
		ids[i] = s.ID
	}
	return ids
}

// Measure computes every section's rectangle now.
func (t *Tracker) Measure() []Measured {
	out := make([]Measured, len(t.sections))
	for i, s := range t.sections {
		out[i].ID = s.ID
		if s.Bounds != nil {
			out[i].Rect, out[i].OK = s.Bounds()
		}
	}
	return out
}

// OnScroll re-measures after a scroll or resize to offset scrollY and
// reports whether the active section changed. When no section matches the
// active id is kept.
func (t *Tracker) OnScroll(scrollY int) bool {
	t.pastThreshold = scrollY > t.opts.TopThreshold
	id, ok := Select(t.Measure(), t.opts.Threshold)
	if !ok || id == t.active {
		return false
	}
	t.active = id
	t.changes++
	return true
}
