package model

// Trail is the set of cells the player has stood on during the current
// stage.
type Trail struct {
	cols, rows int
	seen       []bool
	order      []Pos
}

func NewTrail(cols, rows int) *Trail {
	return &Trail{
		cols:  cols,
		rows:  rows,
		seen:  make([]bool, cols*rows),
		order: make([]Pos, 0, cols+rows),
	}
}

// Mark records p; out-of-range positions are ignored.
func (t *Trail) Mark(p Pos) {
	if p.I < 0 || p.J < 0 || p.I >= t.cols || p.J >= t.rows {
		return
	}
	k := p.I + p.J*t.cols
	if t.seen[k] {
		return
	}
	t.seen[k] = true
	t.order = append(t.order, p)
}

func (t *Trail) Has(p Pos) bool {
	if p.I < 0 || p.J < 0 || p.I >= t.cols || p.J >= t.rows {
		return false
	}
	return t.seen[p.I+p.J*t.cols]
}

func (t *Trail) Len() int {
	return len(t.order)
}

func (t *Trail) Clear() {
	for _, p := range t.order {
		t.seen[p.I+p.J*t.cols] = false
	}
	t.order = t.order[:0]
}

// Reset clears the trail and seeds it with p.
func (t *Trail) Reset(p Pos) {
	t.Clear()
	t.Mark(p)
}

// Positions returns the marked cells in the order they were first visited.
func (t *Trail) Positions() []Pos {
	out := make([]Pos, len(t.order))
	copy(out, t.order)
	return out
}
