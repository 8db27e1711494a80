package engine

// Phase is the loop's top-level state
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseEnding
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseEnding:
		return "Ending"
	}
	return "Unknown"
}

// Reason explains why the loop is ending
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonQuit
	ReasonWin
	ReasonLoss
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonQuit:
		return "quit"
	case ReasonWin:
		return "win"
	case ReasonLoss:
		return "loss"
	}
	return "unknown"
}

// State is a snapshot of phase and reason
type State struct {
	Phase  Phase
	Reason Reason
}

func (s State) String() string {
	if s.Phase == PhaseEnding {
		return "Ending(" + s.Reason.String() + ")"
	}
	return s.Phase.String()
}

// canTransition allows Running to Ending only; Ending is terminal
func canTransition(from, to Phase) bool {
	return from == PhaseRunning && to == PhaseEnding
}
