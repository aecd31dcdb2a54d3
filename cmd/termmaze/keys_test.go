package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/zucenko/mazefall/model"
)

func TestKeyStateHoldWindow(t *testing.T) {
	k := NewKeyState()
	assert.Equal(t, model.Input{}, k.Input(0))

	k.Press(model.Left, 1000)
	assert.Equal(t, model.Input{Left: true}, k.Input(1000))
	assert.True(t, k.Held(model.Left, 1000+holdWindowMs))
	assert.False(t, k.Held(model.Left, 1001+holdWindowMs))

	k.Press(model.Top, 1100)
	assert.Equal(t, model.Input{Up: true, Left: true}, k.Input(1150))
	assert.Equal(t, model.Input{Up: true}, k.Input(1250))
}

func TestDirForKey(t *testing.T) {
	cases := []struct {
		key tcell.Key
		ch  rune
		dir model.Dir
	}{
		{tcell.KeyUp, 0, model.Top},
		{tcell.KeyRight, 0, model.Right},
		{tcell.KeyRune, 's', model.Bottom},
		{tcell.KeyRune, 'A', model.Left},
	}
	for _, c := range cases {
		d, ok := dirForKey(c.key, c.ch)
		assert.True(t, ok)
		assert.Equal(t, c.dir, d)
	}

	_, ok := dirForKey(tcell.KeyRune, 'x')
	assert.False(t, ok)
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.KeyEscape, 0))
	assert.True(t, isQuit(tcell.KeyRune, 'q'))
	assert.False(t, isQuit(tcell.KeyRune, 'w'))
}
