package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

// blinkPeriod is how long the menu prompt stays on, then off.
const blinkPeriod = 0.75

var shapeColors = map[piece.Shape]tcell.Color{
	piece.I: tcell.ColorDarkCyan,
	piece.L: tcell.ColorOrange,
	piece.J: tcell.ColorBlue,
	piece.S: tcell.ColorGreen,
	piece.Z: tcell.ColorRed,
	piece.T: tcell.ColorPurple,
	piece.O: tcell.ColorYellow,
}

// renderer draws snapshots onto a tcell screen. Each board cell is two
// columns wide so squares look square.
type renderer struct {
	screen tcell.Screen
}

func (r *renderer) Present(snap game.Snapshot) {
	r.screen.Clear()
	if snap.Mode == game.ModeMenu {
		r.drawMenu(snap)
	} else {
		r.drawBoard(snap)
		r.drawSidebar(snap)
	}
	r.screen.Show()
}

func (r *renderer) drawMenu(snap game.Snapshot) {
	r.text(2, 1, tcell.StyleDefault.Bold(true), "BLOCKFALL")
	if int(math.Floor(snap.Time/blinkPeriod))%2 == 0 {
		r.text(2, 3, tcell.StyleDefault, "PRESS ENTER")
	}
	r.text(2, 5, tcell.StyleDefault.Dim(true), "arrows/hjkl move, up rotates, q quits")
}

func (r *renderer) drawBoard(snap game.Snapshot) {
	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)
	w, h := snap.Board.Width, snap.Board.Height

	for y := 0; y < h; y++ {
		r.screen.SetContent(0, y, '│', nil, frame)
		r.screen.SetContent(1+2*w, y, '│', nil, frame)
	}
	for x := 0; x < 2+2*w; x++ {
		r.screen.SetContent(x, h, '─', nil, frame)
	}

	clearing := make(map[int]bool, len(snap.Clearing))
	for _, y := range snap.Clearing {
		clearing[y] = true
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tag, ghost := snap.TagAt(x, y)
			if tag == board.Empty {
				continue
			}
			style := tcell.StyleDefault.Background(shapeColors[piece.ShapeOf(tag)])
			glyph := ' '
			switch {
			case clearing[y]:
				style = tcell.StyleDefault.Reverse(true)
			case ghost:
				style = tcell.StyleDefault.Foreground(shapeColors[piece.ShapeOf(tag)])
				glyph = '░'
			}
			r.screen.SetContent(1+2*x, y, glyph, nil, style)
			r.screen.SetContent(2+2*x, y, glyph, nil, style)
		}
	}
}

func (r *renderer) drawSidebar(snap game.Snapshot) {
	left := 4 + 2*snap.Board.Width
	r.text(left, 0, tcell.StyleDefault.Bold(true), "NEXT")
	if snap.Next.Valid() {
		def := piece.Lookup(snap.Next)
		style := tcell.StyleDefault.Background(shapeColors[snap.Next])
		for _, c := range def.Offsets {
			r.screen.SetContent(left+2*c.X, 2+c.Y, ' ', nil, style)
			r.screen.SetContent(left+2*c.X+1, 2+c.Y, ' ', nil, style)
		}
	}

	r.text(left, 5, tcell.StyleDefault, fmt.Sprintf("LINES  %d", snap.Lines))
	r.text(left, 6, tcell.StyleDefault, fmt.Sprintf("PIECES %d", snap.Pieces))
	if snap.Phase == game.PhaseGameOver {
		r.text(left, 8, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true), "GAME OVER")
		r.text(left, 9, tcell.StyleDefault, "ENTER for menu")
	}
}

func (r *renderer) text(x, y int, style tcell.Style, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
