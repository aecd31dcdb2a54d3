package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zucenko/mazefall/model"
)

// holdWindowMs is how long a key press counts as held. Terminals only report
// presses and auto-repeats, never releases.
const holdWindowMs = 180

type KeyState struct {
	last map[model.Dir]int64
}

func NewKeyState() *KeyState {
	return &KeyState{last: make(map[model.Dir]int64)}
}

func (k *KeyState) Press(d model.Dir, now int64) {
	k.last[d] = now
}

func (k *KeyState) Held(d model.Dir, now int64) bool {
	t, ok := k.last[d]
	return ok && now-t <= holdWindowMs
}

func (k *KeyState) Input(now int64) model.Input {
	return model.Input{
		Up:    k.Held(model.Top, now),
		Down:  k.Held(model.Bottom, now),
		Left:  k.Held(model.Left, now),
		Right: k.Held(model.Right, now),
	}
}

// dirForKey maps arrow keys and WASD onto directions.
func dirForKey(key tcell.Key, ch rune) (model.Dir, bool) {
	switch key {
	case tcell.KeyUp:
		return model.Top, true
	case tcell.KeyDown:
		return model.Bottom, true
	case tcell.KeyLeft:
		return model.Left, true
	case tcell.KeyRight:
		return model.Right, true
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return model.Top, true
		case 's', 'S':
			return model.Bottom, true
		case 'a', 'A':
			return model.Left, true
		case 'd', 'D':
			return model.Right, true
		}
	}
	return 0, false
}

func isQuit(key tcell.Key, ch rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC ||
		(key == tcell.KeyRune && (ch == 'q' || ch == 'Q'))
}
