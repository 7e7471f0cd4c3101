package textfield

// State is the capture state of a text field.
type State int

const (
	// StateActive accepts printable input.
	StateActive State = iota
	// StateFull holds maxLength runes; printable input goes to the
	// overflow handler.
	StateFull
	// StateDone is entered when a terminator key is read.
	StateDone
)

// String returns the human-readable state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "ACTIVE"
	case StateFull:
		return "FULL"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// IsDone returns true once a terminator has been read.
func (s State) IsDone() bool {
	return s == StateDone
}
