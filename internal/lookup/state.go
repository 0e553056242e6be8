package lookup

// State is the dispatch state for the current word.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateDisplayed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateDisplayed:
		return "displayed"
	default:
		return "unknown"
	}
}

// MarshalText lets State appear as its name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status is a snapshot of a Dispatcher.
type Status struct {
	State State  `json:"state"`
	Word  string `json:"word"`
	// Fetches counts lookups started since the dispatcher was created.
	Fetches uint64 `json:"fetches"`
}
