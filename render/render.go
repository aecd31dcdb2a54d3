// Package render turns a game snapshot into backend-neutral draw commands in
// pixel space.
package render

import (
	"fmt"
	"image/color"

	"github.com/zucenko/mazefall/model"
)

type Kind int

const (
	Clear Kind = iota
	Rect
	Line
	Ellipse
	Text
)

// Command is one draw primitive. Rect and Ellipse use X, Y as the top-left
// corner with size W, H; Line runs from (X, Y) to (X2, Y2); Text is drawn
// with its baseline at (X, Y).
type Command struct {
	Kind       Kind
	X, Y, W, H float64
	X2, Y2     float64
	Color      color.NRGBA
	Text       string
	TextSize   float64
}

var (
	ColorBackground = color.NRGBA{255, 255, 255, 255}
	ColorTrail      = color.NRGBA{100, 100, 255, 50}
	ColorBlock      = color.NRGBA{50, 50, 50, 255}
	ColorWall       = color.NRGBA{0, 0, 0, 255}
	ColorPlayer     = color.NRGBA{0, 0, 255, 255}
	ColorGoal       = color.NRGBA{255, 0, 0, 255}
	ColorText       = color.NRGBA{0, 0, 0, 255}
)

const TextSize = 14

// Size is the pixel size of the drawing surface for a snapshot.
func Size(s model.Snapshot) (int, int) {
	return s.Cols * s.CellSize, s.Rows * s.CellSize
}

// Frame lists the commands for one frame, back to front.
func Frame(s model.Snapshot) []Command {
	cs := float64(s.CellSize)
	w, h := Size(s)
	cmds := make([]Command, 0, 2+len(s.Trail)+4*len(s.Blocks)+2*len(s.Grid.Cells)+3)

	cmds = append(cmds, Command{Kind: Clear, W: float64(w), H: float64(h), Color: ColorBackground})

	for _, p := range s.Trail {
		cmds = append(cmds, Command{Kind: Rect, X: float64(p.I) * cs, Y: float64(p.J) * cs, W: cs, H: cs, Color: ColorTrail})
	}

	for _, b := range s.Blocks {
		for _, p := range b.Cells() {
			cmds = append(cmds, Command{Kind: Rect, X: float64(p.I) * cs, Y: float64(p.J) * cs, W: cs, H: cs, Color: ColorBlock})
		}
	}

	cmds = appendWalls(cmds, s.Grid, cs)

	pad := cs * 0.25
	cmds = append(cmds, Command{
		Kind:  Ellipse,
		X:     float64(s.Player.I)*cs + pad,
		Y:     float64(s.Player.J)*cs + pad,
		W:     cs * 0.5,
		H:     cs * 0.5,
		Color: ColorPlayer,
	})
	cmds = append(cmds, Command{
		Kind:  Rect,
		X:     float64(s.Goal.I)*cs + pad,
		Y:     float64(s.Goal.J)*cs + pad,
		W:     cs * 0.5,
		H:     cs * 0.5,
		Color: ColorGoal,
	})
	cmds = append(cmds, Command{
		Kind:     Text,
		X:        10,
		Y:        float64(h) - 20,
		Color:    ColorText,
		Text:     StageLabel(s.Stage),
		TextSize: TextSize,
	})
	return cmds
}

func StageLabel(stage int) string {
	return fmt.Sprintf("Stage: %d", stage)
}

func appendWalls(cmds []Command, g *model.Grid, cs float64) []Command {
	for k := range g.Cells {
		c := &g.Cells[k]
		x := float64(c.I) * cs
		y := float64(c.J) * cs
		if c.Walls[model.Top] {
			cmds = append(cmds, wall(x, y, x+cs, y))
		}
		if c.Walls[model.Right] {
			cmds = append(cmds, wall(x+cs, y, x+cs, y+cs))
		}
		if c.Walls[model.Bottom] {
			cmds = append(cmds, wall(x+cs, y+cs, x, y+cs))
		}
		if c.Walls[model.Left] {
			cmds = append(cmds, wall(x, y+cs, x, y))
		}
	}
	return cmds
}

func wall(x1, y1, x2, y2 float64) Command {
	return Command{Kind: Line, X: x1, Y: y1, X2: x2, Y2: y2, Color: ColorWall}
}
