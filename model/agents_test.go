package model

import (
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAdjacentAgentsExplode(t *testing.T) {
	s, surface := newTestSim(10, 10, &scriptedRand{fallback: 0.5})
	a := s.Agents.Place(Cell{Row: 2, Col: 2})
	b := s.Agents.Place(Cell{Row: 2, Col: 3})
	require.NotNil(t, a)
	require.NotNil(t, b)
	surface.reset()

	res := s.Agents.Step()

	require.NotNil(t, res.Collision)
	assert.Empty(t, res.Moves)
	assert.Equal(t, 0, s.Agents.Len())
	assert.False(t, s.Grid.IsOccupied(2, 2))
	assert.False(t, s.Grid.IsOccupied(2, 3))

	ax, ay := s.Geometry.Center(Cell{Row: 2, Col: 2})
	bx, by := s.Geometry.Center(Cell{Row: 2, Col: 3})
	bursts := s.Explosions.Active()
	require.Len(t, bursts, 1)
	assert.InDelta(t, (ax+bx)/2, bursts[0].X, 1e-9)
	assert.InDelta(t, (ay+by)/2, bursts[0].Y, 1e-9)
	assert.InDelta(t, 171.0, res.Collision.X, 1e-9)
	assert.InDelta(t, 142.5, res.Collision.Y, 1e-9)

	assert.Len(t, surface.forID(a.ID, "remove"), 1)
	assert.Len(t, surface.forID(b.ID, "remove"), 1)
	assert.Empty(t, surface.named("move"))
}

func TestStepCollisionFreezesBystanders(t *testing.T) {
	s, surface := newTestSim(10, 10, &scriptedRand{fallback: 0.5})
	s.Agents.Place(Cell{Row: 2, Col: 2})
	s.Agents.Place(Cell{Row: 2, Col: 3})
	bystander := s.Agents.Place(Cell{Row: 7, Col: 7})
	surface.reset()

	res := s.Agents.Step()

	require.NotNil(t, res.Collision)
	require.Equal(t, 1, s.Agents.Len())
	assert.Same(t, bystander, s.Agents.Agents()[0])
	assert.Equal(t, Cell{Row: 7, Col: 7}, bystander.Cell)
	assert.True(t, s.Grid.IsOccupied(7, 7))
	assert.Empty(t, surface.named("move"))
}

func TestStepDiagonalNeighboursCollide(t *testing.T) {
	s, _ := newTestSim(10, 10, &scriptedRand{fallback: 0.5})
	s.Agents.Place(Cell{Row: 4, Col: 4})
	s.Agents.Place(Cell{Row: 5, Col: 5})

	res := s.Agents.Step()

	require.NotNil(t, res.Collision)
	assert.Equal(t, Cell{Row: 4, Col: 4}, res.Collision.A)
	assert.Equal(t, Cell{Row: 5, Col: 5}, res.Collision.B)
	assert.Equal(t, 0, s.Grid.Count())
}

func TestStepResolvesOnlyFirstPair(t *testing.T) {
	s, _ := newTestSim(10, 10, &scriptedRand{fallback: 0.5})
	s.Agents.Place(Cell{Row: 0, Col: 0})
	s.Agents.Place(Cell{Row: 0, Col: 1})
	c := s.Agents.Place(Cell{Row: 6, Col: 6})
	d := s.Agents.Place(Cell{Row: 6, Col: 7})

	res := s.Agents.Step()
	require.NotNil(t, res.Collision)
	assert.Equal(t, Cell{Row: 0, Col: 0}, res.Collision.A)
	require.Equal(t, 2, s.Agents.Len())
	assert.Equal(t, Cell{Row: 6, Col: 6}, c.Cell)
	assert.Equal(t, Cell{Row: 6, Col: 7}, d.Cell)

	res = s.Agents.Step()
	require.NotNil(t, res.Collision)
	assert.Equal(t, Cell{Row: 6, Col: 6}, res.Collision.A)
	assert.Equal(t, 0, s.Agents.Len())
	assert.Len(t, s.Explosions.Active(), 2)
}

func TestStepCorneredAgentStays(t *testing.T) {
	rnd := &scriptedRand{}
	s, surface := newTestSim(10, 10, rnd)
	s.Cells.Place(Cell{Row: 0, Col: 1}, 0, color.RGBA{})
	s.Cells.Place(Cell{Row: 1, Col: 0}, 0, color.RGBA{})
	agent := s.Agents.Place(Cell{Row: 0, Col: 0})
	surface.reset()

	res := s.Agents.Step()

	assert.Nil(t, res.Collision)
	assert.Empty(t, res.Moves)
	assert.Equal(t, Cell{Row: 0, Col: 0}, agent.Cell)
	assert.True(t, s.Grid.IsOccupied(0, 0))
	assert.Empty(t, surface.named("move"))
}

func TestStepPicksAmongFreeNeighbours(t *testing.T) {
	// up, down, left, right are all free; 0 picks up and 0.99 picks right
	for _, tc := range []struct {
		draw float64
		want Cell
	}{
		{0, Cell{Row: 4, Col: 5}},
		{0.3, Cell{Row: 6, Col: 5}},
		{0.6, Cell{Row: 5, Col: 4}},
		{0.99, Cell{Row: 5, Col: 6}},
	} {
		s, surface := newTestSim(10, 10, &scriptedRand{values: []float64{tc.draw}})
		agent := s.Agents.Place(Cell{Row: 5, Col: 5})
		surface.reset()

		res := s.Agents.Step()

		require.Len(t, res.Moves, 1)
		assert.Equal(t, Move{From: Cell{Row: 5, Col: 5}, To: tc.want}, res.Moves[0])
		assert.Equal(t, tc.want, agent.Cell)
		assert.False(t, s.Grid.IsOccupied(5, 5))
		assert.True(t, s.Grid.IsOccupied(tc.want.Row, tc.want.Col))

		moves := surface.forID(agent.ID, "move")
		require.Len(t, moves, 1)
		x, y := s.Geometry.Position(tc.want)
		assert.Equal(t, x, moves[0].X)
		assert.Equal(t, y, moves[0].Y)
		assert.Equal(t, 200*time.Millisecond, moves[0].Tr.Duration)
		assert.NotNil(t, moves[0].Tr.Ease)
	}
}

func TestStepSkipsOccupiedAndOutOfBounds(t *testing.T) {
	// agent in the top-right corner with a static cell to its left: only
	// down is left
	s, _ := newTestSim(4, 4, &scriptedRand{values: []float64{0.99}})
	s.Cells.Place(Cell{Row: 0, Col: 2}, 0, color.RGBA{})
	agent := s.Agents.Place(Cell{Row: 0, Col: 3})

	s.Agents.Step()

	assert.Equal(t, Cell{Row: 1, Col: 3}, agent.Cell)
}

func TestStepLaterAgentSeesEarlierMove(t *testing.T) {
	// 1x3 strip: the first agent takes the middle, the second finds it
	// taken and stays put
	s, _ := newTestSim(1, 3, &scriptedRand{})
	first := s.Agents.Place(Cell{Row: 0, Col: 0})
	second := s.Agents.Place(Cell{Row: 0, Col: 2})

	res := s.Agents.Step()

	assert.Nil(t, res.Collision)
	assert.Len(t, res.Moves, 1)
	assert.Equal(t, Cell{Row: 0, Col: 1}, first.Cell)
	assert.Equal(t, Cell{Row: 0, Col: 2}, second.Cell)
	assert.Equal(t, []string{".##"}, s.Grid.Strings())
}

func TestSpawnSkipsWhenGridIsFull(t *testing.T) {
	s, _ := newTestSim(1, 2, &scriptedRand{})
	s.Cells.Place(Cell{Row: 0, Col: 0}, 0, color.RGBA{})
	s.Cells.Place(Cell{Row: 0, Col: 1}, 0, color.RGBA{})

	assert.Equal(t, 0, s.Agents.Spawn(3))
	assert.Equal(t, 0, s.Agents.Len())
}

func TestSpawnFillsLastSlots(t *testing.T) {
	s, _ := newTestSim(1, 3, &scriptedRand{})
	s.Cells.Place(Cell{Row: 0, Col: 1}, 0, color.RGBA{})

	assert.Equal(t, 2, s.Agents.Spawn(5))
	assert.Equal(t, 3, s.Grid.Count())
	ok, why := checkOccupancy(s)
	assert.True(t, ok, why)
}

func TestOccupancyStaysConsistentUnderRandomPlay(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		cfg := emptyConfig()
		cfg.FillProbability = 0.4
		cfg.MaxAgents = 5
		w, h := gridViewport(8, 9)
		s := New(cfg, w, h, newRecordingSurface(), rnd)
		s.Populate()

		for step := 0; step < 300; step++ {
			if step%7 == 0 {
				s.PointerMove(rnd.Float64()*float64(w), rnd.Float64()*float64(h))
			}
			if step%23 == 0 {
				s.Click()
			}
			s.Step()
			s.Frame(time.Duration(step) * 16 * time.Millisecond)

			ok, why := checkOccupancy(s)
			require.True(t, ok, "seed %d step %d: %s", seed, step, why)
		}
	}
}
