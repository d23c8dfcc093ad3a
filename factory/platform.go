package factory

import (
	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/tscn"
)

// CreatePlatformNodes emits every moving platform.
func CreatePlatformNodes(layout *citydata.Layout, cfg *config.Config) *tscn.Document {
	doc := &tscn.Document{}
	for _, p := range layout.Platforms {
		CreatePlatform(doc, p, cfg)
	}
	return doc
}

// CreatePlatform emits a container holding an animatable body parked at the
// start point. The platform script reads StartPosition and EndPosition and
// tweens between them at runtime; nothing is interpolated here.
func CreatePlatform(doc *tscn.Document, p citydata.MovingPlatform, cfg *config.Config) {
	parent := cfg.CityParent()
	path := parent + "/" + p.Name
	body := path + "/AnimatableBody3D"

	doc.Node(tscn.Node{Name: p.Name, Type: "Node3D", Parent: parent})
	doc.Node(tscn.Node{Name: "AnimatableBody3D", Type: "AnimatableBody3D", Parent: path},
		tscn.Prop("transform", position(p.Start)),
		tscn.Prop("collision_layer", tscn.Int(cfg.Collision.WorldLayer)),
		tscn.Prop("physics_material_override", tscn.SubResource(cfg.Scene.PlatformPhysicsMaterial)),
		tscn.Prop("script", tscn.ExtResource(cfg.Scene.PlatformScript)),
		tscn.Prop("StartPosition", vector(p.Start)),
		tscn.Prop("EndPosition", vector(p.End)),
	)
	doc.Node(tscn.Node{Name: "MeshInstance3D", Type: "MeshInstance3D", Parent: body},
		tscn.Prop("mesh", tscn.SubResource(cfg.Scene.PlatformMesh)),
	)
	doc.Node(tscn.Node{Name: "CollisionShape3D", Type: "CollisionShape3D", Parent: body},
		tscn.Prop("shape", tscn.SubResource(cfg.Scene.PlatformShape)),
	)
}
