package checkout

import (
	"fmt"
	"strconv"
)

// State is a step of one submission attempt.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

var stateNames = [...]string{
	StateEditing:    "Editing",
	StateValidating: "Validating",
	StateSubmitting: "Submitting",
	StateSucceeded:  "Succeeded",
	StateFailed:     "Failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown checkout state %q", text)
}

// next lists the legal moves out of each state.
var next = map[State][]State{
	StateEditing:    {StateValidating},
	StateValidating: {StateEditing, StateSubmitting},
	StateSubmitting: {StateSucceeded, StateFailed},
	StateFailed:     {StateEditing},
}

func (s State) canMoveTo(to State) bool {
	for _, allowed := range next[s] {
		if allowed == to {
			return true
		}
	}
	return false
}
