package components

import "github.com/yohamta/donburi"

// SyncConfigData controls the simulation's own copy between the
// authoritative pose and the presentation transform.
type SyncConfigData struct {
	PositionToTransform bool
	TransformToPosition bool
}

var SyncConfig = donburi.NewComponentType[SyncConfigData]()
