package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazefall/model"
)

const corridor = "" +
	"   |\n" +
	"-+-+\n"

func snapshot(t *testing.T) model.Snapshot {
	t.Helper()
	g, err := model.ParseLayout(strings.NewReader(corridor))
	require.NoError(t, err)
	return model.Snapshot{
		Grid:     g,
		Player:   model.Pos{I: 0, J: 0},
		Goal:     model.Pos{I: 1, J: 0},
		Trail:    []model.Pos{{I: 0, J: 0}},
		Blocks:   []model.Block{*model.NewBlock(0, 0, model.Shapes[1], model.DefaultFallSpeed)},
		Stage:    3,
		Cols:     2,
		Rows:     1,
		CellSize: 20,
	}
}

func kinds(cmds []Command) []Kind {
	out := make([]Kind, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.Kind)
	}
	return out
}

func TestFrameOrder(t *testing.T) {
	cmds := Frame(snapshot(t))

	// clear, trail, 2 block cells, 6 wall segments, player, goal, text
	assert.Equal(t, []Kind{
		Clear,
		Rect,
		Rect, Rect,
		Line, Line, Line, Line, Line, Line,
		Ellipse, Rect, Text,
	}, kinds(cmds))

	assert.Equal(t, ColorTrail, cmds[1].Color)
	assert.Equal(t, ColorBlock, cmds[2].Color)
	assert.Equal(t, 20.0, cmds[3].X)
}

func TestFrameGeometry(t *testing.T) {
	cmds := Frame(snapshot(t))
	n := len(cmds)

	player := cmds[n-3]
	assert.Equal(t, Command{Kind: Ellipse, X: 5, Y: 5, W: 10, H: 10, Color: ColorPlayer}, player)

	goal := cmds[n-2]
	assert.Equal(t, Command{Kind: Rect, X: 25, Y: 5, W: 10, H: 10, Color: ColorGoal}, goal)

	label := cmds[n-1]
	assert.Equal(t, "Stage: 3", label.Text)
	assert.Equal(t, 10.0, label.X)
	assert.Equal(t, 0.0, label.Y, "20px surface puts the label 20px above the bottom")

	bg := cmds[0]
	assert.Equal(t, 40.0, bg.W)
	assert.Equal(t, 20.0, bg.H)
}

func TestWallsMatchGrid(t *testing.T) {
	s := snapshot(t)
	s.Grid = model.Generate(10, 10, model.NewRand(8))
	s.Cols, s.Rows = 10, 10

	lines := 0
	for _, c := range Frame(s) {
		if c.Kind == Line {
			lines++
		}
	}
	// every closed side is drawn once per cell that owns it
	walls := 0
	for _, c := range s.Grid.Cells {
		for _, w := range c.Walls {
			if w {
				walls++
			}
		}
	}
	assert.Equal(t, walls, lines)
	assert.Equal(t, 4*100-2*99, walls)
}

func TestSize(t *testing.T) {
	w, h := Size(model.Snapshot{Cols: 25, Rows: 25, CellSize: 24})
	assert.Equal(t, 600, w)
	assert.Equal(t, 600, h)
}
