package netcomponents

import (
	"github.com/fenwick/tilecollider/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetBodyStateData is the discrete part of a body's state. No interpolation;
// grounded flips and state changes are exact.
type NetBodyStateData struct {
	StateID      netconfig.StateID
	Grounded     bool
	Facing       int    // -1 left, 1 right
	LastSequence uint32 // Last input sequence processed by the server
}

var NetBodyState = donburi.NewComponentType[NetBodyStateData]()
