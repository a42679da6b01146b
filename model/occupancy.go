package model

import "strings"

// Occupancy tracks which slots are claimed by a static cell or an agent.
// Indexing outside the grid panics; callers check InBounds first.
type Occupancy struct {
	rows, cols int
	cells      [][]bool
	free       []Cell
}

func NewOccupancy(rows, cols int) *Occupancy {
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}
	return &Occupancy{rows: rows, cols: cols, cells: cells}
}

func (o *Occupancy) Rows() int { return o.rows }
func (o *Occupancy) Cols() int { return o.cols }

func (o *Occupancy) InBounds(row, col int) bool {
	return row >= 0 && row < o.rows && col >= 0 && col < o.cols
}

func (o *Occupancy) IsOccupied(row, col int) bool {
	return o.cells[row][col]
}

func (o *Occupancy) Set(row, col int, occupied bool) {
	o.cells[row][col] = occupied
}

// Count returns the number of occupied slots.
func (o *Occupancy) Count() int {
	n := 0
	for _, line := range o.cells {
		for _, v := range line {
			if v {
				n++
			}
		}
	}
	return n
}

// RandomEmptyCell picks uniformly among all free slots, row-major.
// It returns false when the grid is full.
func (o *Occupancy) RandomEmptyCell(rnd Rand) (Cell, bool) {
	o.free = o.free[:0]
	for r, line := range o.cells {
		for c, v := range line {
			if !v {
				o.free = append(o.free, Cell{Row: r, Col: c})
			}
		}
	}
	if len(o.free) == 0 {
		return Cell{}, false
	}
	return o.free[intn(rnd, len(o.free))], true
}

// Strings renders the grid as one string per row, '#' occupied and '.' free.
func (o *Occupancy) Strings() []string {
	out := make([]string, 0, o.rows)
	var b strings.Builder
	for _, line := range o.cells {
		b.Reset()
		for _, v := range line {
			if v {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		out = append(out, b.String())
	}
	return out
}
