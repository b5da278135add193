// Package typewriter reveals a fixed script one character at a time.
//
// The animator is a plain state machine advanced by Step. Callers schedule
// steps with NextDelay, either on real timers or on a logical clock through
// Advance. Every scheduled tick carries the generation that was current when
// it was scheduled; Begin, Restart and Stop bump the generation so ticks
// scheduled before them are dropped by Handle.
package typewriter

import (
	"fmt"
	"time"
)

// Cursor is appended to the line being typed.
const Cursor = "▋"

// Default cadence.
const (
	DefaultCharDelay = 50 * time.Millisecond
	DefaultLinePause = 800 * time.Millisecond
)

// Phase is the lifecycle stage of an Animator.
type Phase int

// Animator phases.
const (
	PhaseIdle Phase = iota
	PhaseTyping
	PhaseDone
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTyping:
		return "typing"
	case PhaseDone:
		return "done"
	case PhaseStopped:
		return "stopped"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the typing position.
type State struct {
	Line     int
	Revealed int
}

// Tick is a scheduled step for a generation.
type Tick struct {
	Gen uint64
}

// Options configures cadence. Zero values use the defaults.
type Options struct {
	CharDelay time.Duration
	LinePause time.Duration
}

// Animator holds the typing state for one script.
type Animator struct {
	script    []string
	lines     [][]rune
	charDelay time.Duration
	linePause time.Duration

	phase Phase
	state State
	gen   uint64
	wait  time.Duration
}

// New validates script and returns an idle Animator.
func New(script []string, opts Options) (*Animator, error) {
	if len(script) == 0 {
		return nil, fmt.Errorf("script must not be empty")
	}
	lines := make([][]rune, len(script))
	for i, line := range script {
		if line == "" {
			return nil, fmt.Errorf("script line %d is empty", i+1)
		}
		lines[i] = []rune(line)
	}
	if opts.CharDelay <= 0 {
		opts.CharDelay = DefaultCharDelay
	}
	if opts.LinePause <= 0 {
		opts.LinePause = DefaultLinePause
	}
	return &Animator{
		script:    append([]string(nil), script...),
		lines:     lines,
		charDelay: opts.CharDelay,
		linePause: opts.LinePause,
	}, nil
}

// Phase returns the current phase.
func (a *Animator) Phase() Phase {
	return a.phase
}

// State returns the current typing position.
func (a *Animator) State() State {
	return a.state
}

// Gen returns the current generation.
func (a *Animator) Gen() uint64 {
	return a.gen
}

// Active reports whether more steps are pending.
func (a *Animator) Active() bool {
	return a.phase == PhaseTyping
}

// Begin starts typing. It is a no-op unless the animator is idle and
// returns whether a first tick should be scheduled.
func (a *Animator) Begin() bool {
	if a.phase != PhaseIdle {
		return false
	}
	a.phase = PhaseTyping
	a.gen++
	a.wait = a.charDelay
	return true
}

// Restart rewinds to the first line and starts typing again.
func (a *Animator) Restart() {
	a.gen++
	a.state = State{}
	a.phase = PhaseTyping
	a.wait = a.charDelay
}

// Stop tears the animator down. No later tick mutates state.
func (a *Animator) Stop() {
	a.gen++
	a.phase = PhaseStopped
	a.wait = 0
}

// Step performs one transition and reports whether state changed.
// A line that is not the last takes one step per character plus one step to
// move to the next line. The last line ends the animation when its final
// character is revealed.
func (a *Animator) Step() bool {
	if a.phase != PhaseTyping {
		return false
	}
	cur := a.lines[a.state.Line]
	last := len(a.lines) - 1
	switch {
	case a.state.Revealed < len(cur):
		a.state.Revealed++
		if a.state.Line == last && a.state.Revealed == len(cur) {
			a.phase = PhaseDone
		}
	case a.state.Line < last:
		a.state.Line++
		a.state.Revealed = 0
	default:
		a.phase = PhaseDone
		return false
	}
	return true
}

// Handle applies a scheduled tick. Ticks from an older generation are ignored.
func (a *Animator) Handle(t Tick) bool {
	if t.Gen != a.gen {
		return false
	}
	return a.Step()
}

// NextDelay returns how long to wait before the next step, or zero when no
// step is pending.
func (a *Animator) NextDelay() time.Duration {
	if a.phase != PhaseTyping {
		return 0
	}
	if a.state.Revealed < len(a.lines[a.state.Line]) {
		return a.charDelay
	}
	return a.linePause
}

// Advance moves a logical clock forward by elapsed and runs every step that
// falls due. It returns the number of steps taken.
func (a *Animator) Advance(elapsed time.Duration) int {
	steps := 0
	for a.phase == PhaseTyping {
		if elapsed < a.wait {
			a.wait -= elapsed
			return steps
		}
		elapsed -= a.wait
		a.Step()
		steps++
		a.wait = a.NextDelay()
	}
	return steps
}

// Lines renders the display: completed lines in full, then the current
// prefix with the cursor. Before Begin only the cursor is shown.
func (a *Animator) Lines() []string {
	if a.phase == PhaseIdle {
		return []string{Cursor}
	}
	out := make([]string, 0, a.state.Line+1)
	out = append(out, a.script[:a.state.Line]...)
	cur := a.lines[a.state.Line]
	out = append(out, string(cur[:a.state.Revealed])+Cursor)
	return out
}
