package main

import (
	"github.com/hajimehoshi/ebiten"

	"github.com/zucenko/mazefall/model"
)

// bindings maps each logical direction to its arrow key and WASD key.
var bindings = map[model.Dir][2]ebiten.Key{
	model.Top:    {ebiten.KeyUp, ebiten.KeyW},
	model.Bottom: {ebiten.KeyDown, ebiten.KeyS},
	model.Left:   {ebiten.KeyLeft, ebiten.KeyA},
	model.Right:  {ebiten.KeyRight, ebiten.KeyD},
}

func held(d model.Dir) bool {
	keys := bindings[d]
	return ebiten.IsKeyPressed(keys[0]) || ebiten.IsKeyPressed(keys[1])
}

func pollInput() model.Input {
	return model.Input{
		Up:    held(model.Top),
		Down:  held(model.Bottom),
		Left:  held(model.Left),
		Right: held(model.Right),
	}
}
