package factory

import (
	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/tscn"
)

// CreateHookNodes emits the hook target container and one grapple target per
// entry. Hook targets sit on their own collision layer so the grapple raycast
// can find them without hitting plain world geometry.
func CreateHookNodes(layout *citydata.Layout, cfg *config.Config) *tscn.Document {
	doc := &tscn.Document{}
	doc.Node(tscn.Node{Name: cfg.Scene.HookContainer, Type: "Node3D", Parent: cfg.CityParent()})

	for _, h := range layout.HookTargets {
		CreateHook(doc, h, cfg)
	}
	return doc
}

// CreateHook emits one hook target with the shared mesh, shape and highlight material.
func CreateHook(doc *tscn.Document, h citydata.HookTarget, cfg *config.Config) {
	parent := cfg.HookParent()
	path := parent + "/" + h.Name

	doc.Node(tscn.Node{Name: h.Name, Type: "StaticBody3D", Parent: parent, Groups: []string{cfg.Scene.HookGroup}},
		tscn.Prop("transform", position(h.Position)),
		tscn.Prop("collision_layer", tscn.Int(cfg.Collision.HookLayer)),
		tscn.Prop("collision_mask", tscn.Int(cfg.Collision.HookMask)),
	)
	doc.Node(tscn.Node{Name: "MeshInstance3D", Type: "MeshInstance3D", Parent: path},
		tscn.Prop("mesh", tscn.SubResource(cfg.Scene.HookMesh)),
		tscn.Prop("surface_material_override/0", tscn.SubResource(cfg.Scene.HookMaterial)),
	)
	doc.Node(tscn.Node{Name: "CollisionShape3D", Type: "CollisionShape3D", Parent: path},
		tscn.Prop("shape", tscn.SubResource(cfg.Scene.HookShape)),
	)
}
