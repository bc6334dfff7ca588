// SPDX-License-Identifier: MIT

package heat

// State is the lifecycle position of a Simulation.
type State int

const (
	// StateUninitialized is the state after New.
	StateUninitialized State = iota

	// StateInitialized has buffers allocated and the initial condition set.
	StateInitialized

	// StateStepping has performed at least one step.
	StateStepping

	// StateTerminated has stopped: criterion met, failure, or Finish.
	StateTerminated
)

var stateNames = [...]string{"uninitialized", "initialized", "stepping", "terminated"}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}
