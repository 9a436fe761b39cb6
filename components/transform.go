package components

import (
	"github.com/automoto/tickinterp/mathutil"
	"github.com/yohamta/donburi"
)

// TransformData is the presentation transform, relative to the parent when
// the entity has one. The renderer consumes GlobalTransform, which is
// resolved from it every frame.
type TransformData struct {
	mathutil.TRS
}

// GlobalTransformData is the resolved world transform of the presentation.
type GlobalTransformData struct {
	mathutil.TRS
}

// ParentData attaches an entity's transform to another entity's transform.
type ParentData struct {
	Entity donburi.Entity
}

var (
	Transform       = donburi.NewComponentType[TransformData](TransformData{TRS: mathutil.IdentityTRS()})
	GlobalTransform = donburi.NewComponentType[GlobalTransformData](GlobalTransformData{TRS: mathutil.IdentityTRS()})
	Parent          = donburi.NewComponentType[ParentData]()
)
