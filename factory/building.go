package factory

import (
	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/tscn"
)

// CreateBuildingNodes emits the city container, then every building followed by
// every decoration as a static body with a mesh and a collision shape.
func CreateBuildingNodes(layout *citydata.Layout, sizes *SizeRegistry, cfg *config.Config) *tscn.Document {
	doc := &tscn.Document{}
	doc.Node(tscn.Node{Name: cfg.Scene.CityContainer, Type: "Node3D", Parent: cfg.Scene.RootParent})

	for _, b := range layout.Buildings {
		CreateBuilding(doc, b, sizes, cfg)
		if b.HasCheckpoint() {
			CreateCheckpoint(doc, b, cfg)
		}
	}

	// Decorations never get a trigger, even if one slipped into the record.
	for _, b := range layout.Decorations {
		CreateBuilding(doc, b, sizes, cfg)
	}

	return doc
}

// CreateBuilding emits one box body and its two children.
func CreateBuilding(doc *tscn.Document, b citydata.Building, sizes *SizeRegistry, cfg *config.Config) {
	parent := cfg.CityParent()
	path := parent + "/" + b.Name
	id := sizes.MustID(b.Size)

	doc.Node(tscn.Node{Name: b.Name, Type: "StaticBody3D", Parent: parent},
		tscn.Prop("transform", position(b.Position)),
		tscn.Prop("collision_layer", tscn.Int(cfg.Collision.WorldLayer)),
	)
	doc.Node(tscn.Node{Name: "MeshInstance3D", Type: "MeshInstance3D", Parent: path},
		tscn.Prop("mesh", tscn.SubResource(cfg.Scene.MeshPrefix+id)),
		tscn.Prop("surface_material_override/0", tscn.SubResource(b.Material)),
	)
	doc.Node(tscn.Node{Name: "CollisionShape3D", Type: "CollisionShape3D", Parent: path},
		tscn.Prop("shape", tscn.SubResource(cfg.Scene.ShapePrefix+id)),
	)
}
