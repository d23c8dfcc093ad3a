package factory

import (
	"fmt"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/tscn"
)

// CheckpointPosition is where the player respawns for one checkpoint.
type CheckpointPosition struct {
	Number   int
	Building string
	X, Y, Z  float64
}

// TriggerOffset is the checkpoint trigger height relative to the building center.
func TriggerOffset(b citydata.Building, cfg *config.Config) float64 {
	return b.Size.H()/2 + cfg.Checkpoint.TriggerMargin
}

// CreateCheckpoint instances the checkpoint scene as a child of its building,
// just above the rooftop.
func CreateCheckpoint(doc *tscn.Document, b citydata.Building, cfg *config.Config) {
	n := *b.Checkpoint
	doc.Node(tscn.Node{
		Name:     fmt.Sprintf(cfg.Checkpoint.NodeNameFormat, n),
		Parent:   cfg.CityParent() + "/" + b.Name,
		Instance: tscn.ExtResource(cfg.Scene.CheckpointScene),
	},
		tscn.Prop("transform", tscn.Transform3D("0", tscn.Float(TriggerOffset(b, cfg)), "0")),
		tscn.Prop("CheckpointNumber", tscn.Int(n)),
	)
}

// CheckpointPositions returns the world respawn point of every checkpoint, in
// building declaration order.
func CheckpointPositions(layout *citydata.Layout, cfg *config.Config) []CheckpointPosition {
	var out []CheckpointPosition
	for _, b := range layout.CheckpointBuildings() {
		out = append(out, CheckpointPosition{
			Number:   *b.Checkpoint,
			Building: b.Name,
			X:        b.Position.X(),
			Y:        b.Rooftop() + cfg.Checkpoint.SpawnLift,
			Z:        b.Position.Z(),
		})
	}
	return out
}
