package factory

import (
	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/tscn"
)

// CreateSubResources declares every palette material, then one box mesh and
// one box shape per collected size. The fragment opens with a blank line so it
// can be pasted directly above the first [node] line.
func CreateSubResources(layout *citydata.Layout, sizes *SizeRegistry, cfg *config.Config) *tscn.Document {
	doc := &tscn.Document{}
	doc.Blank()

	for _, m := range layout.Palette {
		doc.SubResource("StandardMaterial3D", m.Key,
			tscn.Prop("albedo_color", tscn.Color(m.Color[0], m.Color[1], m.Color[2], m.Color[3])),
		)
	}

	for _, e := range sizes.Sorted() {
		size := sizeVector(e.Size)
		doc.SubResource("BoxMesh", cfg.Scene.MeshPrefix+e.ID, tscn.Prop("size", size))
		doc.SubResource("BoxShape3D", cfg.Scene.ShapePrefix+e.ID, tscn.Prop("size", size))
	}

	return doc
}

func sizeVector(d citydata.Dimensions) string {
	return tscn.Vector3(tscn.Num(d.W()), tscn.Num(d.H()), tscn.Num(d.D()))
}

func position(v citydata.Vec3) string {
	return tscn.Transform3D(tscn.Num(v.X()), tscn.Num(v.Y()), tscn.Num(v.Z()))
}

func vector(v citydata.Vec3) string {
	return tscn.Vector3(tscn.Num(v.X()), tscn.Num(v.Y()), tscn.Num(v.Z()))
}
