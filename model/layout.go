package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Text layout of a grid. Cell rows and wall rows alternate:
//
//	cell row:  cell glyph at even columns, '|' or ' ' after it for the right wall
//	wall row:  '-' or ' ' under each cell for the bottom wall, '+' at odd columns
//
// The top edge and left edge are implicit and always walled.

var (
	ErrEmptyLayout  = errors.New("empty layout")
	ErrRaggedLayout = errors.New("ragged layout")
)

// ParseLayout reads a grid in the text layout. Every line must be as wide as
// the first and each cell row must be followed by its wall row. Trailing
// blank lines are ignored.
func ParseLayout(reader io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}
	if len(lines)%2 != 0 {
		return nil, fmt.Errorf("%w: %d cell rows but %d wall rows", ErrRaggedLayout, (len(lines)+1)/2, len(lines)/2)
	}
	width := len(lines[0])
	for k, s := range lines {
		if len(s) != width {
			return nil, fmt.Errorf("%w: line %d is %d wide, want %d", ErrRaggedLayout, k+1, len(s), width)
		}
	}

	cols := (width + 1) / 2
	rows := len(lines) / 2
	g := NewGrid(cols, rows)

	for j := 0; j < rows; j++ {
		cellLine, wallLine := lines[2*j], lines[2*j+1]
		for i := 0; i < cols-1; i++ {
			if cellLine[2*i+1] != '|' {
				RemoveWalls(g.Cell(i, j), g.Cell(i+1, j))
			}
		}
		if j == rows-1 {
			continue
		}
		for i := 0; i < cols; i++ {
			if wallLine[2*i] != '-' {
				RemoveWalls(g.Cell(i, j), g.Cell(i, j+1))
			}
		}
	}
	for k := range g.Cells {
		g.Cells[k].Visited = true
	}
	return g, nil
}

// Layout renders g in the text layout ParseLayout reads.
func (g *Grid) Layout() string {
	return g.LayoutWith(nil)
}

// LayoutWith renders g using glyph to pick the character drawn in each cell;
// nil draws blanks.
func (g *Grid) LayoutWith(glyph func(p Pos) byte) string {
	var sb strings.Builder
	for j := 0; j < g.Rows; j++ {
		for i := 0; i < g.Cols; i++ {
			ch := byte(' ')
			if glyph != nil {
				ch = glyph(Pos{I: i, J: j})
			}
			sb.WriteByte(ch)
			if g.Cell(i, j).Walls[Right] {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		for i := 0; i < g.Cols; i++ {
			if g.Cell(i, j).Walls[Bottom] {
				sb.WriteByte('-')
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
