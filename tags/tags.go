package tags

import "github.com/yohamta/donburi"

var (
	// DisableInterpolation opts an entity out of interpolation entirely.
	// While present, no snapshot or policy is kept and the presentation
	// transform is left to the application.
	DisableInterpolation = donburi.NewTag().SetName("DisableInterpolation")

	Body = donburi.NewTag().SetName("Body")
	Prop = donburi.NewTag().SetName("Prop")
)

// Resolv tags for collider objects
const (
	ResolvBody   = "body"
	ResolvStatic = "static"
)
