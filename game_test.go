package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zucenko/toxicgrid/model"
)

func TestGameRebuildOnResize(t *testing.T) {
	g := NewGame(model.DefaultConfig(), nil, rand.New(rand.NewSource(5)), false)
	w, h := g.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	now := time.Now()
	g.rebuild(640, 480, now)
	first, firstSurface := g.sim, g.surface
	assert.True(t, g.clock.Running())
	assert.NotZero(t, firstSurface.Len())

	g.rebuild(800, 600, now.Add(time.Second))
	assert.True(t, first.Closed())
	assert.Equal(t, 0, firstSurface.Len())
	assert.NotSame(t, first, g.sim)
	assert.Equal(t, 800/57, g.sim.Geometry.Cols)

	g.Close()
	assert.True(t, g.sim.Closed())
	assert.False(t, g.clock.Running())
}
