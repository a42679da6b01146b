package model

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Simulation owns one grid and everything living on it. It is not safe
// for concurrent use: frames, steps and pointer events must all come from
// the same goroutine.
type Simulation struct {
	Config   Config
	Geometry Geometry

	Grid       *Occupancy
	Cells      *StaticCellField
	Agents     *RoamingAgents
	Explosions *Explosions
	Labels     *Labels

	Log *log.Entry

	surface Surface
	rnd     Rand
	ids     idSource
	ticks   uint64
	events  []Event
	closed  bool
}

// New builds an empty simulation for a viewport. Call Populate to fill it.
func New(cfg Config, width, height int, surface Surface, rnd Rand) *Simulation {
	if surface == nil {
		surface = NopSurface{}
	}
	s := &Simulation{
		Config:  cfg,
		surface: surface,
		rnd:     rnd,
		Log:     log.WithField("component", "simulation"),
	}
	s.Geometry = NewGeometry(width, height, cfg.CellSize, cfg.Gap)
	s.Grid = NewOccupancy(s.Geometry.Rows, s.Geometry.Cols)

	s.Cells = &StaticCellField{
		cfg:     &s.Config,
		geom:    s.Geometry,
		grid:    s.Grid,
		surface: surface,
		ids:     &s.ids,
	}
	s.Explosions = &Explosions{
		cfg:     &s.Config.Burst,
		style:   Style{Fill: cfg.Colors.Particle},
		surface: surface,
		ids:     &s.ids,
		rnd:     rnd,
	}
	s.Agents = &RoamingAgents{
		cfg:        &s.Config,
		geom:       s.Geometry,
		grid:       s.Grid,
		surface:    surface,
		ids:        &s.ids,
		rnd:        rnd,
		explosions: s.Explosions,
	}
	s.Labels = &Labels{
		cfg:     &s.Config,
		geom:    s.Geometry,
		surface: surface,
		ids:     &s.ids,
	}
	return s
}

// Populate scatters static cells, draws the labels and drops in
// MinAgents..MaxAgents roaming agents.
func (s *Simulation) Populate() {
	s.Cells.Populate(s.rnd)
	s.Labels.Populate(s.Config.Words)

	want := s.Config.MinAgents
	if spread := s.Config.MaxAgents - s.Config.MinAgents + 1; spread > 1 {
		want += intn(s.rnd, spread)
	}
	placed := s.Agents.Spawn(want)

	s.Log.WithFields(log.Fields{
		"cols":   s.Geometry.Cols,
		"rows":   s.Geometry.Rows,
		"cells":  s.Cells.Len(),
		"agents": placed,
		"wanted": want,
	}).Debug("grid populated")
}

// Frame runs the per-frame work: breathing and particle physics.
func (s *Simulation) Frame(elapsed time.Duration) {
	if s.closed {
		return
	}
	s.Cells.Tick(elapsed)
	s.Explosions.Step()
}

// Step runs one movement tick.
func (s *Simulation) Step() {
	if s.closed {
		return
	}
	s.ticks++
	res := s.Agents.Step()
	if c := res.Collision; c != nil {
		s.Log.WithFields(log.Fields{
			"a": c.A, "b": c.B, "x": c.X, "y": c.Y, "left": s.Agents.Len(),
		}).Debug("agents collided")
		s.events = append(s.events, Event{
			Kind: EventCollision, Tick: s.ticks,
			Row: c.A.Row, Col: c.A.Col, ToRow: c.B.Row, ToCol: c.B.Col,
			X: c.X, Y: c.Y,
		})
		return
	}
	for _, m := range res.Moves {
		s.events = append(s.events, Event{
			Kind: EventMoved, Tick: s.ticks,
			Row: m.From.Row, Col: m.From.Col, ToRow: m.To.Row, ToCol: m.To.Col,
		})
	}
}

func (s *Simulation) PointerMove(x, y float64) {
	if s.closed {
		return
	}
	s.Cells.UpdateProximity(x, y)
	s.Labels.Hover(x, y)
}

func (s *Simulation) Click() {
	if s.closed {
		return
	}
	c, ok := s.Cells.DeleteClosest()
	if !ok {
		return
	}
	s.Log.WithField("cell", c.Cell).Debug("cell deleted")
	x, y := c.Center()
	s.events = append(s.events, Event{
		Kind: EventDeleted, Tick: s.ticks,
		Row: c.Cell.Row, Col: c.Cell.Col, ToRow: c.Cell.Row, ToCol: c.Cell.Col,
		X: x, Y: y,
	})
}

// Ticks is the number of movement ticks run so far.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// DrainEvents hands over the events recorded since the last call.
func (s *Simulation) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *Simulation) Snapshot() Snapshot {
	agents := make([]Cell, 0, s.Agents.Len())
	for _, a := range s.Agents.Agents() {
		agents = append(agents, a.Cell)
	}
	return Snapshot{
		Cols:        s.Geometry.Cols,
		Rows:        s.Geometry.Rows,
		CellSize:    s.Geometry.CellSize,
		Gap:         s.Geometry.Gap,
		OffsetX:     s.Geometry.OffsetX,
		OffsetY:     s.Geometry.OffsetY,
		Occupancy:   s.Grid.Strings(),
		StaticCells: s.Cells.Len(),
		Agents:      agents,
		Bursts:      len(s.Explosions.Active()),
		Ticks:       s.ticks,
	}
}

// Teardown removes every element from the surface. Afterwards frames,
// steps and pointer events are ignored.
func (s *Simulation) Teardown() {
	if s.closed {
		return
	}
	s.closed = true
	s.Explosions.teardown()
	s.Agents.teardown()
	s.Labels.teardown()
	s.Cells.teardown()
	s.events = nil
}

func (s *Simulation) Closed() bool {
	return s.closed
}
