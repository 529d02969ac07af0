package pages

// State is the per-page fetch state machine. Pages move Idle → Loading →
// (Success | Error) and re-enter Loading on every filter, page, or
// mutation-triggered refetch.
type State int

const (
	Idle State = iota
	Loading
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
