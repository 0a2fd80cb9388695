package protocol

import (
	"github.com/fenwick/tilecollider/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition  uint = 10
	SyncIDNetVelocity  uint = 11
	SyncIDNetBodyState uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetVelocity uint8 = 11
)

// RegisterComponents registers all network components with necs for
// serialization. Both server and client must call this before any network
// operations.
func RegisterComponents() error {
	// Position and velocity interpolate for smooth client-side rendering.
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return err
	}

	// Body state: no interpolation, discrete changes are exact.
	return esync.RegisterComponent(
		SyncIDNetBodyState,
		netcomponents.NetBodyStateData{},
		netcomponents.NetBodyState,
	)
}
