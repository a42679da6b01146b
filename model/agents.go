package model

import "github.com/tanema/gween/ease"

// Agent is a roaming square.
type Agent struct {
	ID   ElementID
	Cell Cell
}

// up, down, left, right
var directions = [4]Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Collision is two agents that met and exploded.
type Collision struct {
	A, B Cell
	X, Y float64
}

type Move struct {
	From, To Cell
}

type StepResult struct {
	Collision *Collision
	Moves     []Move
}

type RoamingAgents struct {
	cfg        *Config
	geom       Geometry
	grid       *Occupancy
	surface    Surface
	ids        *idSource
	rnd        Rand
	explosions *Explosions

	agents []*Agent
	valid  []Cell
}

func (a *RoamingAgents) Agents() []*Agent {
	return a.agents
}

func (a *RoamingAgents) Len() int {
	return len(a.agents)
}

// Spawn places up to n agents on random free slots. Slots are skipped
// once the grid is full. It returns how many were placed.
func (a *RoamingAgents) Spawn(n int) int {
	placed := 0
	for i := 0; i < n; i++ {
		at, ok := a.grid.RandomEmptyCell(a.rnd)
		if !ok {
			continue
		}
		if a.Place(at) != nil {
			placed++
		}
	}
	return placed
}

// Place puts an agent on a free slot and claims it. It returns nil when
// the slot is taken or outside the grid.
func (a *RoamingAgents) Place(at Cell) *Agent {
	if !a.grid.InBounds(at.Row, at.Col) || a.grid.IsOccupied(at.Row, at.Col) {
		return nil
	}
	agent := &Agent{ID: a.ids.New(), Cell: at}
	a.grid.Set(at.Row, at.Col, true)
	x, y := a.geom.Position(at)
	a.surface.Rect(agent.ID, x, y, a.geom.CellSize, Style{
		Fill:        a.cfg.Colors.CellFill,
		Stroke:      a.cfg.Colors.AgentStroke,
		StrokeWidth: a.cfg.StrokeWidth,
	})
	a.agents = append(a.agents, agent)
	return agent
}

// Step runs one movement tick. The first adjacent pair found explodes and
// nothing moves that tick; otherwise every agent tries one orthogonal step
// into a free slot.
func (a *RoamingAgents) Step() StepResult {
	if c := a.collide(); c != nil {
		return StepResult{Collision: c}
	}

	moves := make([]Move, 0, len(a.agents))
	for _, agent := range a.agents {
		from := agent.Cell
		// release our slot while choosing, re-claimed below if we stay
		a.grid.Set(from.Row, from.Col, false)

		a.valid = a.valid[:0]
		for _, d := range directions {
			next := from.Add(d)
			if a.grid.InBounds(next.Row, next.Col) && !a.grid.IsOccupied(next.Row, next.Col) {
				a.valid = append(a.valid, next)
			}
		}
		if len(a.valid) == 0 {
			a.grid.Set(from.Row, from.Col, true)
			continue
		}

		to := a.valid[intn(a.rnd, len(a.valid))]
		agent.Cell = to
		a.grid.Set(to.Row, to.Col, true)
		x, y := a.geom.Position(to)
		a.surface.Move(agent.ID, x, y, Transition{Duration: a.cfg.MoveDuration, Ease: ease.Linear})
		moves = append(moves, Move{From: from, To: to})
	}
	return StepResult{Moves: moves}
}

func (a *RoamingAgents) collide() *Collision {
	for i := 0; i < len(a.agents); i++ {
		for j := i + 1; j < len(a.agents); j++ {
			first, second := a.agents[i], a.agents[j]
			if !first.Cell.Adjacent(second.Cell) {
				continue
			}
			x1, y1 := a.geom.Center(first.Cell)
			x2, y2 := a.geom.Center(second.Cell)
			c := &Collision{A: first.Cell, B: second.Cell, X: (x1 + x2) / 2, Y: (y1 + y2) / 2}

			a.explosions.Spawn(c.X, c.Y)
			a.surface.Remove(first.ID, 0)
			a.surface.Remove(second.ID, 0)
			a.grid.Set(first.Cell.Row, first.Cell.Col, false)
			a.grid.Set(second.Cell.Row, second.Cell.Col, false)

			// j > i, so dropping j first keeps i valid
			a.agents = append(a.agents[:j], a.agents[j+1:]...)
			a.agents = append(a.agents[:i], a.agents[i+1:]...)
			return c
		}
	}
	return nil
}

func (a *RoamingAgents) teardown() {
	for _, agent := range a.agents {
		a.surface.Remove(agent.ID, 0)
	}
	a.agents = nil
}
