package processor

// State is a phase of a run.
type State int

const (
	Initializing State = iota
	Open
	Processing
	Closing
	Done
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Open:
		return "open"
	case Processing:
		return "processing"
	case Closing:
		return "closing"
	case Done:
		return "done"
	}
	return "unknown"
}
