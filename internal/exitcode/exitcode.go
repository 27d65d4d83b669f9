// Package exitcode is the terminal-state machine translating pipeline and
// downstream outcomes into a process exit code.
package exitcode

import "fmt"

// Exit codes.
const (
	OK    = 0
	Error = 1
)

// State of one invocation as it moves through the pipeline.
type State int

const (
	StateStart State = iota
	StateVersionRequested
	StateValidating
	StateValidationFailed
	StateReady
	StateHandedToEngine
	StateEngineSucceeded
	StateEngineFailed
)

var stateNames = map[State]string{
	StateStart:            "Start",
	StateVersionRequested: "VersionRequested",
	StateValidating:       "Validating",
	StateValidationFailed: "ValidationFailed",
	StateReady:            "Ready",
	StateHandedToEngine:   "HandedToEngine",
	StateEngineSucceeded:  "EngineSucceeded",
	StateEngineFailed:     "EngineFailed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// transitions enumerates the legal moves. Anything else is a programmer
// error in the orchestration, not a user-visible condition.
var transitions = map[State][]State{
	StateStart:          {StateVersionRequested, StateValidating},
	StateValidating:     {StateValidationFailed, StateReady},
	StateReady:          {StateHandedToEngine},
	StateHandedToEngine: {StateEngineSucceeded, StateEngineFailed},
}

// Machine tracks the invocation state and yields the exit code for the
// terminal state it ends in.
type Machine struct {
	state State
}

// New returns a machine in the Start state.
func New() *Machine { return &Machine{state: StateStart} }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// To moves the machine to next, rejecting transitions the pipeline does not
// define.
func (m *Machine) To(next State) error {
	for _, allowed := range transitions[m.state] {
		if next == allowed {
			m.state = next
			return nil
		}
	}
	return fmt.Errorf("illegal transition %s -> %s", m.state, next)
}

// ExitCode maps the current state to a process exit code. Only terminal
// states map to OK or Error; being asked mid-pipeline reports Error since
// the invocation cannot have finished cleanly.
func (m *Machine) ExitCode() int {
	switch m.state {
	case StateVersionRequested, StateEngineSucceeded:
		return OK
	default:
		return Error
	}
}

// InterruptExitCode is the code used when an external interrupt arrives,
// regardless of pipeline state. Mapping an interrupt to success is carried
// over from the source behavior on purpose; see DESIGN.md before changing
// it.
func InterruptExitCode() int { return OK }
