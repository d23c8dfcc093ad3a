// Package factory turns a city layout into the two scene fragments: resource
// declarations and the node hierarchy.
package factory

import (
	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/tscn"
)

// City is the result of one generator run.
type City struct {
	Sizes         *SizeRegistry
	SubResources  *tscn.Document
	BuildingNodes *tscn.Document
	HookNodes     *tscn.Document
	PlatformNodes *tscn.Document
}

// CreateCity runs size collection, resource emission and node emission in order.
// It has no failure modes; layouts from outside the binary must pass
// citydata.Layout.Validate first.
func CreateCity(layout *citydata.Layout, cfg *config.Config) *City {
	sizes := CollectSizes(layout, cfg.Scene.SizePrefix)
	return &City{
		Sizes:         sizes,
		SubResources:  CreateSubResources(layout, sizes, cfg),
		BuildingNodes: CreateBuildingNodes(layout, sizes, cfg),
		HookNodes:     CreateHookNodes(layout, cfg),
		PlatformNodes: CreatePlatformNodes(layout, cfg),
	}
}

// Nodes returns the node fragment: buildings, then hook targets, then platforms.
func (c *City) Nodes() *tscn.Document {
	doc := &tscn.Document{}
	doc.Append(c.BuildingNodes)
	doc.Append(c.HookNodes)
	doc.Append(c.PlatformNodes)
	return doc
}
