package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/game"
)

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
	downKeys    = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}
	rotateKeys  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// readInput samples held keys. Edge detection for rotate and confirm happens
// inside the game, so only the held state is reported here.
func readInput(pressed func(ebiten.Key) bool) game.Input {
	return game.Input{
		Left:    anyPressed(pressed, leftKeys),
		Right:   anyPressed(pressed, rightKeys),
		Down:    anyPressed(pressed, downKeys),
		Rotate:  anyPressed(pressed, rotateKeys),
		Confirm: anyPressed(pressed, confirmKeys),
	}
}

func anyPressed(pressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
