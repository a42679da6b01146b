package model

import (
	"image/color"
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// StaticCell is one stationary square. It breathes only after it has been
// hovered once.
type StaticCell struct {
	ID          ElementID
	Cell        Cell
	X, Y        float64
	Size        float64
	PhaseOffset float64
	Frequency   float64
	StrokeColor color.RGBA

	HasBeenHovered bool
	HoverScale     float64
	// Scale is the last scale pushed to the surface.
	Scale float64

	highlighted bool
}

func (c *StaticCell) Center() (float64, float64) {
	return c.X + c.Size/2, c.Y + c.Size/2
}

func (c *StaticCell) Distance(px, py float64) float64 {
	cx, cy := c.Center()
	return math.Hypot(px-cx, py-cy)
}

func (c *StaticCell) Highlighted() bool {
	return c.highlighted
}

// HoverScale falls off linearly from maxScale at distance 0 to 1 at radius.
func HoverScale(distance, radius, maxScale float64) float64 {
	if distance >= radius {
		return 1
	}
	return 1 + (maxScale-1)*(1-distance/radius)
}

type StaticCellField struct {
	cfg     *Config
	geom    Geometry
	grid    *Occupancy
	surface Surface
	ids     *idSource

	cells   []*StaticCell
	closest *StaticCell
	dist    []float64
}

func (f *StaticCellField) Cells() []*StaticCell {
	return f.cells
}

func (f *StaticCellField) Len() int {
	return len(f.cells)
}

// Closest is the cell nearest to the last pointer position, or nil.
func (f *StaticCellField) Closest() *StaticCell {
	return f.closest
}

// Populate gives every free slot a static cell with probability
// FillProbability.
func (f *StaticCellField) Populate(rnd Rand) {
	for row := 0; row < f.geom.Rows; row++ {
		for col := 0; col < f.geom.Cols; col++ {
			if f.grid.IsOccupied(row, col) {
				continue
			}
			if rnd.Float64() >= f.cfg.FillProbability {
				continue
			}
			phase := rnd.Float64() * math.Pi * 2
			f.Place(Cell{Row: row, Col: col}, phase, ToxicGreen(rnd))
		}
	}
}

// Place puts a static cell on a free slot and claims it. It returns nil
// when the slot is taken or outside the grid.
func (f *StaticCellField) Place(at Cell, phase float64, stroke color.RGBA) *StaticCell {
	if !f.grid.InBounds(at.Row, at.Col) || f.grid.IsOccupied(at.Row, at.Col) {
		return nil
	}
	x, y := f.geom.Position(at)
	c := &StaticCell{
		ID:          f.ids.New(),
		Cell:        at,
		X:           x,
		Y:           y,
		Size:        f.geom.CellSize,
		PhaseOffset: phase,
		Frequency:   f.cfg.BreatheFrequency,
		StrokeColor: stroke,
		HoverScale:  1,
		Scale:       1,
	}
	f.grid.Set(at.Row, at.Col, true)
	f.surface.Rect(c.ID, x, y, c.Size, Style{
		Fill:        f.cfg.Colors.CellFill,
		Stroke:      stroke,
		StrokeWidth: f.cfg.StrokeWidth,
	})
	f.cells = append(f.cells, c)
	return c
}

// UpdateProximity recomputes the closest cell and every cell's hover
// scale for a pointer at (px, py).
func (f *StaticCellField) UpdateProximity(px, py float64) {
	if cap(f.dist) < len(f.cells) {
		f.dist = make([]float64, len(f.cells))
	}
	f.dist = f.dist[:len(f.cells)]

	f.closest = nil
	minDistance := math.Inf(1)
	for i, c := range f.cells {
		d := c.Distance(px, py)
		f.dist[i] = d
		if d < minDistance {
			minDistance = d
			f.closest = c
		}
	}

	radius := f.cfg.HoverRadius
	for i, c := range f.cells {
		d := f.dist[i]
		if d < radius {
			c.HasBeenHovered = true
			c.HoverScale = HoverScale(d, radius, f.cfg.MaxScale)
			f.highlight(c, c == f.closest)
		} else {
			c.HoverScale = 1
			f.highlight(c, false)
		}
	}
}

func (f *StaticCellField) highlight(c *StaticCell, on bool) {
	if c.highlighted == on {
		return
	}
	c.highlighted = on
	stroke := c.StrokeColor
	if on {
		stroke = f.cfg.Colors.Highlight
	}
	f.surface.Stroke(c.ID, stroke, Immediate)
}

// Tick applies the breathing waveform to every hovered cell.
func (f *StaticCellField) Tick(elapsed time.Duration) {
	ms := float64(elapsed) / float64(time.Millisecond)
	for _, c := range f.cells {
		if !c.HasBeenHovered {
			continue
		}
		breathe := math.Sin(ms*0.001*c.Frequency + c.PhaseOffset)
		c.Scale = c.HoverScale + breathe*f.cfg.BreatheAmplitude
		f.surface.Scale(c.ID, c.Scale, Immediate)
	}
}

// DeleteClosest shrinks and fades the closest cell, frees its slot and
// drops it from the field. Without a closest cell it does nothing.
func (f *StaticCellField) DeleteClosest() (*StaticCell, bool) {
	c := f.closest
	if c == nil {
		return nil, false
	}
	f.closest = nil
	f.grid.Set(c.Cell.Row, c.Cell.Col, false)

	tr := Transition{Duration: f.cfg.DeleteDuration, Ease: ease.OutCubic}
	f.surface.Scale(c.ID, 0, tr)
	f.surface.Fade(c.ID, 0, tr)
	f.surface.Remove(c.ID, f.cfg.DeleteDuration)

	for i, other := range f.cells {
		if other == c {
			f.cells = append(f.cells[:i], f.cells[i+1:]...)
			break
		}
	}
	return c, true
}

func (f *StaticCellField) teardown() {
	for _, c := range f.cells {
		f.surface.Remove(c.ID, 0)
	}
	f.cells = nil
	f.closest = nil
}
