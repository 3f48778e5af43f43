package main

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
)

// keyHoldDuration is how long a key counts as held after its last press.
// Terminals only report presses, so auto-repeat keeps a key held.
const keyHoldDuration = 180 * time.Millisecond

type control int

const (
	controlLeft control = iota
	controlRight
	controlDown
	controlRotate
	controlConfirm
	controlCount
)

// keyboard turns terminal key presses into held-key game input.
type keyboard struct {
	mu      sync.Mutex
	pressed [controlCount]time.Time
	now     func() time.Time
}

func newKeyboard() *keyboard {
	return &keyboard{now: time.Now}
}

// handle records a key press and reports whether the player asked to quit.
func (k *keyboard) handle(key tcell.Key, r rune) (quit bool) {
	var c control
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		c = controlLeft
	case tcell.KeyRight:
		c = controlRight
	case tcell.KeyDown:
		c = controlDown
	case tcell.KeyUp:
		c = controlRotate
	case tcell.KeyEnter:
		c = controlConfirm
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case 'a', 'h':
			c = controlLeft
		case 'd', 'l':
			c = controlRight
		case 's', 'j':
			c = controlDown
		case 'w', 'k', 'e', ' ':
			c = controlRotate
		default:
			return false
		}
	default:
		return false
	}

	k.mu.Lock()
	k.pressed[c] = k.now()
	k.mu.Unlock()
	return false
}

// Poll implements game.InputSource.
func (k *keyboard) Poll() game.Input {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	held := func(c control) bool {
		return !k.pressed[c].IsZero() && now.Sub(k.pressed[c]) < keyHoldDuration
	}
	return game.Input{
		Left:    held(controlLeft),
		Right:   held(controlRight),
		Down:    held(controlDown),
		Rotate:  held(controlRotate),
		Confirm: held(controlConfirm),
	}
}
