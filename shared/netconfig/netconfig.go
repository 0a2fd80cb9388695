// Package netconfig defines lightweight types shared between client and
// server for network serialization. It must have zero dependencies on any
// graphics library so the dedicated server binary stays headless.
package netconfig

// StateID identifies a body's derived movement state, used by clients to
// pick animations. It is derived from physics each tick, never set directly.
type StateID int

const (
	Idle StateID = iota
	Running
	Jumping
	Falling
)

var stateNames = map[StateID]string{
	Idle:    "idle",
	Running: "running",
	Jumping: "jumping",
	Falling: "falling",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
