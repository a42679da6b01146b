package model

import (
	"image/color"
	"time"
)

// scriptedRand replays values in order, then keeps returning fallback.
type scriptedRand struct {
	values   []float64
	fallback float64
}

func (r *scriptedRand) Float64() float64 {
	if len(r.values) == 0 {
		return r.fallback
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

type op struct {
	Name  string
	ID    ElementID
	X, Y  float64
	Value float64
	Color color.RGBA
	Tr    Transition
	After time.Duration
}

// recordingSurface keeps every command and the set of live elements.
type recordingSurface struct {
	ops  []op
	live map[ElementID]string
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{live: make(map[ElementID]string)}
}

func (s *recordingSurface) Rect(id ElementID, x, y, size float64, st Style) {
	s.live[id] = "rect"
	s.ops = append(s.ops, op{Name: "rect", ID: id, X: x, Y: y, Value: size, Color: st.Stroke})
}

func (s *recordingSurface) Circle(id ElementID, cx, cy, r float64, st Style) {
	s.live[id] = "circle"
	s.ops = append(s.ops, op{Name: "circle", ID: id, X: cx, Y: cy, Value: r, Color: st.Fill})
}

func (s *recordingSurface) Text(id ElementID, cx, cy float64, text string, st Style) {
	s.live[id] = "text:" + text
	s.ops = append(s.ops, op{Name: "text", ID: id, X: cx, Y: cy, Color: st.Fill})
}

func (s *recordingSurface) Move(id ElementID, x, y float64, tr Transition) {
	s.ops = append(s.ops, op{Name: "move", ID: id, X: x, Y: y, Tr: tr})
}

func (s *recordingSurface) Scale(id ElementID, v float64, tr Transition) {
	s.ops = append(s.ops, op{Name: "scale", ID: id, Value: v, Tr: tr})
}

func (s *recordingSurface) Fade(id ElementID, v float64, tr Transition) {
	s.ops = append(s.ops, op{Name: "fade", ID: id, Value: v, Tr: tr})
}

func (s *recordingSurface) Stroke(id ElementID, c color.RGBA, tr Transition) {
	s.ops = append(s.ops, op{Name: "stroke", ID: id, Color: c, Tr: tr})
}

func (s *recordingSurface) Fill(id ElementID, c color.RGBA, tr Transition) {
	s.ops = append(s.ops, op{Name: "fill", ID: id, Color: c, Tr: tr})
}

func (s *recordingSurface) Remove(id ElementID, after time.Duration) {
	delete(s.live, id)
	s.ops = append(s.ops, op{Name: "remove", ID: id, After: after})
}

func (s *recordingSurface) named(name string) []op {
	out := make([]op, 0)
	for _, o := range s.ops {
		if o.Name == name {
			out = append(out, o)
		}
	}
	return out
}

func (s *recordingSurface) forID(id ElementID, name string) []op {
	out := make([]op, 0)
	for _, o := range s.ops {
		if o.ID == id && o.Name == name {
			out = append(out, o)
		}
	}
	return out
}

func (s *recordingSurface) reset() {
	s.ops = nil
}

// emptyConfig has no labels and no random fill, so tests place
// everything by hand.
func emptyConfig() Config {
	cfg := DefaultConfig()
	cfg.FillProbability = 0
	cfg.Words = nil
	return cfg
}

// gridViewport returns the viewport that yields exactly rows x cols slots
// with the default cell size and gap.
func gridViewport(rows, cols int) (int, int) {
	pitch := 57
	return cols * pitch, rows * pitch
}

func newTestSim(rows, cols int, rnd Rand) (*Simulation, *recordingSurface) {
	surface := newRecordingSurface()
	w, h := gridViewport(rows, cols)
	return New(emptyConfig(), w, h, surface, rnd), surface
}

// checkOccupancy reports whether the grid matches exactly the static
// cells and agents, each slot claimed at most once.
func checkOccupancy(s *Simulation) (bool, string) {
	claims := make(map[Cell]int)
	for _, c := range s.Cells.Cells() {
		claims[c.Cell]++
	}
	for _, a := range s.Agents.Agents() {
		claims[a.Cell]++
	}
	for row := 0; row < s.Grid.Rows(); row++ {
		for col := 0; col < s.Grid.Cols(); col++ {
			at := Cell{Row: row, Col: col}
			n := claims[at]
			if n > 1 {
				return false, "slot claimed twice"
			}
			if s.Grid.IsOccupied(row, col) != (n == 1) {
				return false, "grid disagrees with claims"
			}
		}
	}
	return true, ""
}
