package model

import "math"

// Geometry is the pixel layout of the grid, centered in the viewport.
type Geometry struct {
	CellSize float64
	Gap      float64
	Cols     int
	Rows     int
	OffsetX  float64
	OffsetY  float64
}

func NewGeometry(width, height int, cellSize, gap float64) Geometry {
	pitch := cellSize + gap
	cols := int(math.Floor(float64(width) / pitch))
	rows := int(math.Floor(float64(height) / pitch))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	totalWidth := float64(cols)*pitch - gap
	totalHeight := float64(rows)*pitch - gap
	return Geometry{
		CellSize: cellSize,
		Gap:      gap,
		Cols:     cols,
		Rows:     rows,
		OffsetX:  (float64(width) - totalWidth) / 2,
		OffsetY:  (float64(height) - totalHeight) / 2,
	}
}

func (g Geometry) Pitch() float64 {
	return g.CellSize + g.Gap
}

// Position is the top-left pixel of a slot.
func (g Geometry) Position(c Cell) (x, y float64) {
	return g.OffsetX + float64(c.Col)*g.Pitch(), g.OffsetY + float64(c.Row)*g.Pitch()
}

func (g Geometry) Center(c Cell) (x, y float64) {
	x, y = g.Position(c)
	return x + g.CellSize/2, y + g.CellSize/2
}

func (g Geometry) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Hit reports whether a pixel lies inside the square of a slot.
func (g Geometry) Hit(c Cell, px, py float64) bool {
	x, y := g.Position(c)
	return px >= x && px < x+g.CellSize && py >= y && py < y+g.CellSize
}
