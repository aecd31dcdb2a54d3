package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazefall/model"
)

const uTurn = "" +
	"     |\n" +
	"-+-+ +\n" +
	"     |\n" +
	"-+-+-+\n"

func uTurnSnapshot(t *testing.T) model.Snapshot {
	g, err := model.ParseLayout(strings.NewReader(uTurn))
	require.NoError(t, err)
	return model.Snapshot{
		Grid:   g,
		Player: model.Pos{I: 0, J: 0},
		Goal:   model.Pos{I: 2, J: 1},
		Trail:  []model.Pos{{I: 1, J: 1}},
		Blocks: []model.Block{{X: 1, Y: 0, Shape: model.Shapes[0]}},
		Stage:  1,
		Cols:   3,
		Rows:   2,
	}
}

func TestFrameLines(t *testing.T) {
	snap := uTurnSnapshot(t)
	hint := snap.Grid.Path(snap.Player, snap.Goal)

	assert.Equal(t, []string{
		"+-+-+-+",
		"|@ # *|",
		"+-+-+ +",
		"|  . G|",
		"+-+-+-+",
		"Stage: 1",
	}, frameLines(snap, hint))
}

func TestFrameLinesNoHint(t *testing.T) {
	snap := uTurnSnapshot(t)
	lines := frameLines(snap, nil)
	assert.Equal(t, "|@ #  |", lines[1])
}

func TestDrawFrame(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(20, 10)

	drawFrame(s, uTurnSnapshot(t), nil)

	ch, _, style, _ := s.GetContent(1, 1)
	assert.Equal(t, glyphPlayer, ch)
	assert.Equal(t, styleFor(glyphPlayer), style)
	ch, _, _, _ = s.GetContent(5, 3)
	assert.Equal(t, glyphGoal, ch)
}
