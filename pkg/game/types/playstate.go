package types

// PlayState is the state of play gating which simulation systems run.
type PlayState uint8

const (
	PlayStateRunning PlayState = iota
	PlayStateScored
	PlayStatePaused
	PlayStateMenu
)

func (s PlayState) String() string {
	switch s {
	case PlayStateRunning:
		return "Running"
	case PlayStateScored:
		return "Scored"
	case PlayStatePaused:
		return "Paused"
	case PlayStateMenu:
		return "Menu"
	}
	return "Unknown"
}

// Simulating reports whether motion, collisions and scoring run in this state.
func (s PlayState) Simulating() bool {
	return s == PlayStateRunning
}

// Transition is a change of play state applied at the end of a tick.
type Transition struct {
	From PlayState
	To   PlayState
}

// StateMachine holds the current play state and the one requested for the
// next apply point. Requests made during a tick never take effect mid-tick.
type StateMachine struct {
	current    PlayState
	pending    PlayState
	hasPending bool
}

func NewStateMachine(initial PlayState) *StateMachine {
	return &StateMachine{
		current: initial,
	}
}

func (m *StateMachine) Current() PlayState {
	return m.current
}

// Pending returns the requested state, if any.
func (m *StateMachine) Pending() (PlayState, bool) {
	return m.pending, m.hasPending
}

// Request sets the state to apply at the next call to Apply.
// The last request before Apply wins.
func (m *StateMachine) Request(state PlayState) {
	m.pending = state
	m.hasPending = true
}

// Apply makes the pending state current and reports the transition.
// ok is false when nothing was pending or the pending state equals the current one.
func (m *StateMachine) Apply() (transition Transition, ok bool) {
	if !m.hasPending {
		return Transition{}, false
	}
	m.hasPending = false
	if m.pending == m.current {
		return Transition{}, false
	}
	transition = Transition{From: m.current, To: m.pending}
	m.current = m.pending
	return transition, true
}
