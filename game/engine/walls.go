package engine

// WallSet indexes the blocker units of all placed walls, one map per
// orientation. A horizontal blocker at (r,c) blocks the vertical step between
// rows r and r+1 at column c; a vertical blocker at (r,c) blocks the
// horizontal step between columns c and c+1 at row r.
type WallSet struct {
	horizontal map[Position]bool
	vertical   map[Position]bool
}

// NewWallSet creates an empty wall set
func NewWallSet() *WallSet {
	return &WallSet{
		horizontal: make(map[Position]bool),
		vertical:   make(map[Position]bool),
	}
}

// Clone returns an independent copy for trial validation. The live set is
// never mutated while probing a candidate placement.
func (ws *WallSet) Clone() *WallSet {
	c := NewWallSet()
	for p := range ws.horizontal {
		c.horizontal[p] = true
	}
	for p := range ws.vertical {
		c.vertical[p] = true
	}
	return c
}

// Units returns the number of blocker units in the set
func (ws *WallSet) Units() int {
	return len(ws.horizontal) + len(ws.vertical)
}

// HasHorizontal reports whether a horizontal blocker unit exists at (row, col)
func (ws *WallSet) HasHorizontal(row, col int) bool {
	return ws.horizontal[Position{Row: row, Col: col}]
}

// HasVertical reports whether a vertical blocker unit exists at (row, col)
func (ws *WallSet) HasVertical(row, col int) bool {
	return ws.vertical[Position{Row: row, Col: col}]
}

// BlocksStep reports whether a wall blocks the single orthogonal step from one
// cell to an adjacent cell. Callers guarantee the two cells are 4-neighbors.
func (ws *WallSet) BlocksStep(from, to Position) bool {
	switch {
	case to.Row == from.Row-1: // up
		return ws.horizontal[Position{Row: from.Row - 1, Col: from.Col}]
	case to.Row == from.Row+1: // down
		return ws.horizontal[Position{Row: from.Row, Col: from.Col}]
	case to.Col == from.Col-1: // left
		return ws.vertical[Position{Row: from.Row, Col: from.Col - 1}]
	case to.Col == from.Col+1: // right
		return ws.vertical[Position{Row: from.Row, Col: from.Col}]
	}
	return false
}

// units returns the two blocker units a segment occupies
func (seg WallSegment) units() [2]Position {
	if seg.Orientation == Horizontal {
		return [2]Position{
			{Row: seg.Row, Col: seg.Col},
			{Row: seg.Row, Col: seg.Col + 1},
		}
	}
	return [2]Position{
		{Row: seg.Row, Col: seg.Col},
		{Row: seg.Row + 1, Col: seg.Col},
	}
}

// WouldOverlap reports whether either blocker unit of the segment is already
// occupied by a wall of the same orientation.
func (ws *WallSet) WouldOverlap(seg WallSegment) bool {
	units := seg.units()
	if seg.Orientation == Horizontal {
		return ws.horizontal[units[0]] || ws.horizontal[units[1]]
	}
	return ws.vertical[units[0]] || ws.vertical[units[1]]
}

// WouldCross reports whether the segment would cross a perpendicular wall at
// the same intersection: a horizontal segment at (r,c) crosses when vertical
// blockers exist at both (r,c) and (r+1,c), and symmetrically for vertical.
func (ws *WallSet) WouldCross(seg WallSegment) bool {
	if seg.Orientation == Horizontal {
		return ws.vertical[Position{Row: seg.Row, Col: seg.Col}] &&
			ws.vertical[Position{Row: seg.Row + 1, Col: seg.Col}]
	}
	return ws.horizontal[Position{Row: seg.Row, Col: seg.Col}] &&
		ws.horizontal[Position{Row: seg.Row, Col: seg.Col + 1}]
}

// Insert adds both blocker units of the segment atomically. It fails with
// ErrAlreadyOccupied if either unit exists, leaving the set unchanged.
func (ws *WallSet) Insert(seg WallSegment) error {
	if ws.WouldOverlap(seg) {
		return ErrAlreadyOccupied
	}
	units := seg.units()
	if seg.Orientation == Horizontal {
		ws.horizontal[units[0]] = true
		ws.horizontal[units[1]] = true
	} else {
		ws.vertical[units[0]] = true
		ws.vertical[units[1]] = true
	}
	return nil
}
