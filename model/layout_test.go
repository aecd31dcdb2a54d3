package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two rows joined only through the right-hand column.
const uTurn = "" +
	"     |\n" +
	"-+-+ +\n" +
	"     |\n" +
	"-+-+-+\n"

func TestParseLayout(t *testing.T) {
	g, err := ParseLayout(strings.NewReader(uTurn))
	require.NoError(t, err)
	require.Equal(t, 3, g.Cols)
	require.Equal(t, 2, g.Rows)

	assert.Equal(t, [4]bool{true, false, true, true}, g.Cell(0, 0).Walls)
	assert.Equal(t, [4]bool{true, false, true, false}, g.Cell(1, 0).Walls)
	assert.Equal(t, [4]bool{true, true, false, false}, g.Cell(2, 0).Walls)
	assert.Equal(t, [4]bool{false, true, true, false}, g.Cell(2, 1).Walls)
	assert.True(t, g.Symmetric())
	assert.Equal(t, 5, g.Passages())
}

func TestLayoutRoundTrip(t *testing.T) {
	g := Generate(9, 6, NewRand(17))
	parsed, err := ParseLayout(strings.NewReader(g.Layout()))
	require.NoError(t, err)
	assert.Equal(t, g.Cells, parsed.Cells)
}

func TestLayoutWithGlyphs(t *testing.T) {
	g, err := ParseLayout(strings.NewReader(uTurn))
	require.NoError(t, err)
	out := g.LayoutWith(func(p Pos) byte {
		if p == (Pos{0, 1}) {
			return '@'
		}
		return '.'
	})
	lines := strings.Split(out, "\n")
	assert.Equal(t, ". . .|", lines[0])
	assert.Equal(t, "@ . .|", lines[2])
}

func TestParseLayoutEmpty(t *testing.T) {
	_, err := ParseLayout(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = ParseLayout(strings.NewReader("\n  \n"))
	assert.ErrorIs(t, err, ErrEmptyLayout)
}

func TestParseLayoutTrailingBlankLines(t *testing.T) {
	g, err := ParseLayout(strings.NewReader(uTurn + "\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, 2, g.Rows)
}

func TestParseLayoutRejectsRagged(t *testing.T) {
	cases := map[string]string{
		"blank row mid layout": "   |\n- -+\n \n-+-+\n",
		"short cell row":       "   |\n-+-+\n  |\n-+-+\n",
		"short wall row":       "   |\n-+\n   |\n-+-+\n",
		"missing wall row":     "   |\n-+-+\n   |\n",
		"long cell row":        "   |\n-+-+\n     |\n-+-+\n",
	}
	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := ParseLayout(strings.NewReader(layout))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrRaggedLayout)
		})
	}
}

func TestPathFollowsPassages(t *testing.T) {
	g, err := ParseLayout(strings.NewReader(uTurn))
	require.NoError(t, err)

	path := g.Path(Pos{0, 0}, Pos{0, 1})
	assert.Equal(t, []Pos{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {0, 1}}, path)
	assert.Equal(t, []Pos{{1, 1}}, g.Path(Pos{1, 1}, Pos{1, 1}))
	assert.Nil(t, g.Path(Pos{0, 0}, Pos{5, 5}))

	closed := NewGrid(2, 2)
	assert.Nil(t, closed.Path(Pos{0, 0}, Pos{1, 1}))
	assert.Equal(t, 1, closed.Reachable(Pos{0, 0}))
}

func TestDirTo(t *testing.T) {
	d, ok := DirTo(Pos{2, 2}, Pos{2, 1})
	assert.True(t, ok)
	assert.Equal(t, Top, d)
	_, ok = DirTo(Pos{2, 2}, Pos{3, 3})
	assert.False(t, ok)
}

func TestTrail(t *testing.T) {
	tr := NewTrail(4, 4)
	tr.Mark(Pos{1, 1})
	tr.Mark(Pos{1, 1})
	tr.Mark(Pos{2, 1})
	tr.Mark(Pos{9, 9})
	assert.Equal(t, 2, tr.Len())
	assert.True(t, tr.Has(Pos{2, 1}))
	assert.False(t, tr.Has(Pos{9, 9}))
	assert.Equal(t, []Pos{{1, 1}, {2, 1}}, tr.Positions())

	tr.Reset(Pos{0, 0})
	assert.Equal(t, []Pos{{0, 0}}, tr.Positions())
	assert.False(t, tr.Has(Pos{1, 1}))
}
