package teapot

import "fmt"

// State is the lifecycle state of a Scene.
type State int32

const (
	StateUninitialized State = iota
	StateConstructing
	StateReady
	StateRendering
	StateDestroyed
)

var stateNames = [...]string{
	StateUninitialized: "Uninitialized",
	StateConstructing:  "Constructing",
	StateReady:         "Ready",
	StateRendering:     "Rendering",
	StateDestroyed:     "Destroyed",
}

// String returns the state name.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int32(s))
}
