package netcomponents

import "github.com/yohamta/donburi"

// NetVelocityData is a body's velocity in units/s, synced every tick.
type NetVelocityData struct {
	VelX, VelY float64
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

// LerpNetVelocity interpolates between two velocities for client-side display.
func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	return &NetVelocityData{
		VelX: from.VelX + (to.VelX-from.VelX)*t,
		VelY: from.VelY + (to.VelY-from.VelY)*t,
	}
}
