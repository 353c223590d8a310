package session

// State enumerates the phases of a drawing session.
type State int

const (
	StateEmpty     State = iota // no line art yet
	StateLoaded                 // line art ready, no target region
	StateSelecting              // region overlay is open
	StateReady                  // line art and region both present
	StateDrawing                // draw pass running
	StateStopping               // stop requested, pass unwinding
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateSelecting:
		return "selecting"
	case StateReady:
		return "ready"
	case StateDrawing:
		return "drawing"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Busy reports whether a draw pass owns the pointer.
func (s State) Busy() bool { return s == StateDrawing || s == StateStopping }

// Listener is called on the event loop after each state change.
type Listener func(prev, next State)

// Interface slices for consumers (presenters).
type Source interface{ Current() State }
type ImageEvents interface{ EventImageLoaded() }
type SelectionEvents interface {
	EventSelectionStarted()
	EventSelectionFinished(ok bool)
	EventRegionReset()
}
type DrawEvents interface {
	EventDrawStarted()
	EventStopRequested()
	EventDrawFinished()
}
type Lifecycle interface{ Close() }

// Contract aggregate for DI.
type Contract interface {
	Source
	ImageEvents
	SelectionEvents
	DrawEvents
	Lifecycle
	AddListener(Listener)
}
