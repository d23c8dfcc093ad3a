package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParents(t *testing.T) {
	c := Default()
	assert.Equal(t, "Floors/City", c.CityParent())
	assert.Equal(t, "Floors/City/HookTargets", c.HookParent())
}

func TestDefaultLayersAreDistinct(t *testing.T) {
	c := Default()
	assert.NotEqual(t, c.Collision.WorldLayer, c.Collision.HookLayer)
	assert.Equal(t, 4, c.Collision.HookLayer)
	assert.Equal(t, 3, c.Collision.HookMask)
	assert.Equal(t, 2, c.Collision.WorldLayer)
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Scene.RootParent = "Elsewhere"
	assert.Equal(t, "Floors", Default().Scene.RootParent)
}
