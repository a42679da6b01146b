package model

// Cell addresses one grid slot.
type Cell struct {
	Row, Col int
}

func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Adjacent reports whether two slots touch in the 8-connected sense.
// A slot is adjacent to itself.
func (c Cell) Adjacent(o Cell) bool {
	return abs(c.Row-o.Row) <= 1 && abs(c.Col-o.Col) <= 1
}

// Rand is the uniform [0,1) source behind every random decision.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// intn picks an index in [0,n) the way floor(random*n) does.
func intn(rnd Rand, n int) int {
	i := int(rnd.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ElementID identifies one visual element on a Surface.
type ElementID uint64

type idSource struct {
	next ElementID
}

func (s *idSource) New() ElementID {
	s.next++
	return s.next
}
