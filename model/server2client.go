package model

type EventKind string

const (
	EventMoved     EventKind = "moved"
	EventCollision EventKind = "collision"
	EventDeleted   EventKind = "deleted"
)

// Event is something observers of a running simulation care about. For
// moves Row/Col is the origin and ToRow/ToCol the destination; for a
// collision they are the two agents' slots and X/Y the blast center.
type Event struct {
	Kind  EventKind `json:"kind" msgpack:"kind"`
	Tick  uint64    `json:"tick" msgpack:"tick"`
	Row   int       `json:"row" msgpack:"row"`
	Col   int       `json:"col" msgpack:"col"`
	ToRow int       `json:"to_row" msgpack:"to_row"`
	ToCol int       `json:"to_col" msgpack:"to_col"`
	X     float64   `json:"x" msgpack:"x"`
	Y     float64   `json:"y" msgpack:"y"`
}

type Snapshot struct {
	Cols        int      `json:"cols"`
	Rows        int      `json:"rows"`
	CellSize    float64  `json:"cell_size"`
	Gap         float64  `json:"gap"`
	OffsetX     float64  `json:"offset_x"`
	OffsetY     float64  `json:"offset_y"`
	Occupancy   []string `json:"occupancy"`
	StaticCells int      `json:"static_cells"`
	Agents      []Cell   `json:"agents"`
	Bursts      int      `json:"bursts"`
	Ticks       uint64   `json:"ticks"`
}
