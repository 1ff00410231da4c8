package link

// State is the controller lifecycle state.
type State uint32

const (
	// StateStopped is the initial state; Start is accepted.
	StateStopped State = 0
	// StateStarting is held while the start sequence runs.
	StateStarting State = 1
	// StateRunning means the link driver is started and events are forwarded.
	StateRunning State = 2
	// StateStopping is held while the stop sequence runs.
	StateStopping State = 3
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "STOPPED"
	case StateStarting:
		return "STARTING"
	case StateRunning:
		return "RUNNING"
	case StateStopping:
		return "STOPPING"
	default:
		return "UNKNOWN"
	}
}
