package factory

import (
	"github.com/automoto/tickinterp/archetypes"
	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/automoto/tickinterp/systems"
	"github.com/automoto/tickinterp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BodyConfig describes a body to spawn. A zero Rotation means identity and
// a zero Size spawns the body without a collider.
type BodyConfig struct {
	Kind     components.BodyKind
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Velocity components.VelocityData
	Width    float64
	Height   float64
}

// CreateBody spawns a body whose presentation transform starts at its pose.
func CreateBody(ecs *ecs.ECS, c BodyConfig) *donburi.Entry {
	body := archetypes.Body.Spawn(ecs)

	rot := c.Rotation
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	rot = rot.Normalize()

	components.RigidBody.SetValue(body, components.RigidBodyData{Kind: c.Kind})
	components.Velocity.SetValue(body, c.Velocity)

	start := mathutil.TRS{Translation: c.Position, Rotation: rot, Scale: mgl64.Vec3{1, 1, 1}}
	components.Transform.SetValue(body, components.TransformData{TRS: start})
	components.GlobalTransform.SetValue(body, components.GlobalTransformData{TRS: start})

	systems.AttachPose(body, c.Position, rot)

	if c.Width > 0 && c.Height > 0 {
		obj := resolv.NewObject(c.Position.X()-c.Width/2, c.Position.Y()-c.Height/2, c.Width, c.Height, bodyTags(c.Kind)...)
		obj.SetShape(resolv.NewRectangle(0, 0, c.Width, c.Height))
		if space := SpaceOf(ecs); space != nil {
			space.Add(obj)
		}
		systems.AttachCollider(body, obj)
	}

	return body
}

func bodyTags(kind components.BodyKind) []string {
	if kind == components.BodyStatic {
		return []string{tags.ResolvBody, tags.ResolvStatic}
	}
	return []string{tags.ResolvBody}
}

// CreateKinematicMover spawns a kinematic body that eases back and forth
// between from and to.
func CreateKinematicMover(ecs *ecs.ECS, from, to mgl64.Vec3, width, height float64) *donburi.Entry {
	body := CreateBody(ecs, BodyConfig{
		Kind:     components.BodyKinematic,
		Position: from,
		Width:    width,
		Height:   height,
	})
	donburi.Add(body, components.KinematicPath, &components.KinematicPathData{From: from, To: to})
	donburi.Add(body, components.Tween, &components.TweenData{
		Tween: gween.New(0, 1, cfg.Physics.PathDuration, ease.InOutSine),
	})
	return body
}

// AddColliderPulse makes the collider of body grow and shrink between
// minScale and maxScale of its original size.
func AddColliderPulse(body *donburi.Entry, minScale, maxScale float64) {
	if !body.Valid() || !body.HasComponent(components.Collider) {
		return
	}
	donburi.Add(body, components.ColliderPulse, &components.ColliderPulseData{MinScale: minScale, MaxScale: maxScale})
	if !body.HasComponent(components.Tween) {
		donburi.Add(body, components.Tween, &components.TweenData{
			Tween: gween.New(0, 1, cfg.Physics.PulseDuration, ease.InOutQuad),
		})
	}
}
