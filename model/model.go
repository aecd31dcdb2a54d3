package model

import "fmt"

type Dir int

const (
	Top Dir = iota
	Right
	Bottom
	Left
)

// Dirs lists directions in wall index order.
var Dirs = [4]Dir{Top, Right, Bottom, Left}

func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Delta returns the (di, dj) step for moving one cell in direction d.
func (d Dir) Delta() (int, int) {
	switch d {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Dir) Name() string {
	switch d {
	case Top:
		return "TOP"
	case Right:
		return "RIGHT"
	case Bottom:
		return "BOTTOM"
	case Left:
		return "LEFT"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

type Pos struct {
	I, J int
}

func (p Pos) Step(d Dir) Pos {
	di, dj := d.Delta()
	return Pos{I: p.I + di, J: p.J + dj}
}

type Cell struct {
	I, J    int
	Walls   [4]bool
	Visited bool
}

func (c *Cell) Pos() Pos {
	return Pos{I: c.I, J: c.J}
}

func (c *Cell) Open(d Dir) bool {
	return !c.Walls[d]
}

type Grid struct {
	Cols, Rows int
	Cells      []Cell
}
