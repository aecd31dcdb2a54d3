package model

// NewGrid returns a cols x rows grid with every wall standing.
func NewGrid(cols, rows int) *Grid {
	cells := make([]Cell, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			cells = append(cells, Cell{I: i, J: j, Walls: [4]bool{true, true, true, true}})
		}
	}
	return &Grid{Cols: cols, Rows: rows, Cells: cells}
}

// Index maps (i, j) to the row-major cell index, or -1 when out of range.
func (g *Grid) Index(i, j int) int {
	if i < 0 || j < 0 || i >= g.Cols || j >= g.Rows {
		return -1
	}
	return i + j*g.Cols
}

func (g *Grid) InBounds(p Pos) bool {
	return g.Index(p.I, p.J) != -1
}

func (g *Grid) Cell(i, j int) *Cell {
	idx := g.Index(i, j)
	if idx == -1 {
		return nil
	}
	return &g.Cells[idx]
}

func (g *Grid) At(p Pos) *Cell {
	return g.Cell(p.I, p.J)
}

// Neighbor returns the cell one step from c in direction d, or nil at the edge.
func (g *Grid) Neighbor(c *Cell, d Dir) *Cell {
	return g.At(c.Pos().Step(d))
}

// CanMove reports whether the wall on p's side d is open.
func (g *Grid) CanMove(p Pos, d Dir) bool {
	c := g.At(p)
	if c == nil {
		return false
	}
	return c.Open(d)
}

// RemoveWalls carves the passage between two adjacent cells. Non-adjacent
// pairs are left alone.
func RemoveWalls(a, b *Cell) {
	dx := a.I - b.I
	dy := a.J - b.J

	if dx == 1 && dy == 0 {
		a.Walls[Left] = false
		b.Walls[Right] = false
	} else if dx == -1 && dy == 0 {
		a.Walls[Right] = false
		b.Walls[Left] = false
	}

	if dy == 1 && dx == 0 {
		a.Walls[Top] = false
		b.Walls[Bottom] = false
	} else if dy == -1 && dx == 0 {
		a.Walls[Bottom] = false
		b.Walls[Top] = false
	}
}

// Passages counts open wall pairs, each shared pair counted once.
func (g *Grid) Passages() int {
	n := 0
	for k := range g.Cells {
		c := &g.Cells[k]
		if c.Open(Right) && c.I+1 < g.Cols {
			n++
		}
		if c.Open(Bottom) && c.J+1 < g.Rows {
			n++
		}
	}
	return n
}

// Symmetric reports whether every pair of adjacent cells agrees on the wall
// between them.
func (g *Grid) Symmetric() bool {
	for k := range g.Cells {
		c := &g.Cells[k]
		for _, d := range Dirs {
			n := g.Neighbor(c, d)
			if n == nil {
				continue
			}
			if c.Walls[d] != n.Walls[d.Opposite()] {
				return false
			}
		}
	}
	return true
}
