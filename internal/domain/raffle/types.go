package raffle

// Status is the lifecycle state of a raffle.
//
//	DRAFT -> READY -> ACTIVE -> CLOSED -> DRAWN
//
// CANCELLED is reachable from any non-terminal state by explicit admin action.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusReady     Status = "READY"
	StatusActive    Status = "ACTIVE"
	StatusClosed    Status = "CLOSED"
	StatusDrawn     Status = "DRAWN"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusReady, StatusActive, StatusClosed, StatusDrawn, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDrawn || s == StatusCancelled
}

// CanTransitionTo enumerates the legal edges of the lifecycle machine.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusCancelled {
		return !s.IsTerminal()
	}
	switch s {
	case StatusDraft:
		return next == StatusReady
	case StatusReady:
		return next == StatusActive
	case StatusActive:
		return next == StatusClosed
	case StatusClosed:
		return next == StatusDrawn
	default:
		return false
	}
}
