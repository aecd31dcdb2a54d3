package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/zucenko/mazefall/model"
	"github.com/zucenko/mazefall/render"
)

const (
	glyphPlayer = '@'
	glyphGoal   = 'G'
	glyphBlock  = '#'
	glyphHint   = '*'
	glyphTrail  = '.'
)

// frameLines draws the snapshot as text: a top and left border followed by
// the grid layout with one glyph per cell.
func frameLines(snap model.Snapshot, hint []model.Pos) []string {
	blocked := make(map[model.Pos]bool)
	for _, b := range snap.Blocks {
		for _, p := range b.Cells() {
			blocked[p] = true
		}
	}
	onHint := make(map[model.Pos]bool, len(hint))
	for _, p := range hint {
		onHint[p] = true
	}
	trail := make(map[model.Pos]bool, len(snap.Trail))
	for _, p := range snap.Trail {
		trail[p] = true
	}

	body := snap.Grid.LayoutWith(func(p model.Pos) byte {
		switch {
		case p == snap.Player:
			return glyphPlayer
		case blocked[p]:
			return glyphBlock
		case p == snap.Goal:
			return glyphGoal
		case onHint[p]:
			return glyphHint
		case trail[p]:
			return glyphTrail
		default:
			return ' '
		}
	})

	rows := strings.Split(strings.TrimRight(body, "\n"), "\n")
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "+"+strings.Repeat("-+", snap.Grid.Cols))
	for k, r := range rows {
		if k%2 == 0 {
			lines = append(lines, "|"+r)
		} else {
			lines = append(lines, "+"+r)
		}
	}
	lines = append(lines, render.StageLabel(snap.Stage))
	return lines
}

func styleFor(ch rune) tcell.Style {
	switch ch {
	case glyphPlayer:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	case glyphGoal:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case glyphBlock:
		return tcell.StyleDefault.Foreground(tcell.ColorGray).Reverse(true)
	case glyphHint:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case glyphTrail:
		return tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	default:
		return tcell.StyleDefault
	}
}

func drawFrame(s tcell.Screen, snap model.Snapshot, hint []model.Pos) {
	s.Clear()
	for y, line := range frameLines(snap, hint) {
		for x, ch := range line {
			s.SetContent(x, y, ch, nil, styleFor(ch))
		}
	}
	s.Show()
}
