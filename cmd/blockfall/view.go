package main

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

const (
	cellSize     = 24
	margin       = 24
	sidebarWidth = 160
	blinkPeriod  = 0.75
)

var (
	background = color.RGBA{0x12, 0x12, 0x18, 0xff}
	wellColor  = color.RGBA{0x22, 0x22, 0x2c, 0xff}
	frameColor = color.RGBA{0x70, 0x70, 0x80, 0xff}
	flashColor = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
)

var shapeColors = map[piece.Shape]color.RGBA{
	piece.I: {0x00, 0xc8, 0xd8, 0xff},
	piece.L: {0xf0, 0x96, 0x28, 0xff},
	piece.J: {0x3c, 0x64, 0xe6, 0xff},
	piece.S: {0x50, 0xc8, 0x50, 0xff},
	piece.Z: {0xe0, 0x46, 0x46, 0xff},
	piece.T: {0xa0, 0x50, 0xdc, 0xff},
	piece.O: {0xf0, 0xd2, 0x32, 0xff},
}

// view keeps the latest snapshot handed over by the game and draws it.
type view struct {
	width, height int
	last          game.Snapshot
}

func newView(width, height int) *view {
	return &view{width: width, height: height}
}

// Present implements game.Presenter.
func (v *view) Present(s game.Snapshot) {
	v.last = s
}

// size is the logical screen size for the configured board.
func (v *view) size() (int, int) {
	return 2*margin + v.width*cellSize + sidebarWidth, 2*margin + v.height*cellSize
}

func cellOrigin(x, y int) (float32, float32) {
	return float32(margin + x*cellSize), float32(margin + y*cellSize)
}

func tagColor(tag board.Tag) color.RGBA {
	if c, ok := shapeColors[piece.ShapeOf(tag)]; ok {
		return c
	}
	return frameColor
}

func (v *view) draw(screen *ebiten.Image) {
	screen.Fill(background)
	s := v.last
	if s.Mode == game.ModeMenu {
		v.drawMenu(screen, s)
		return
	}
	v.drawWell(screen, s)
	v.drawSidebar(screen, s)
}

func (v *view) drawMenu(screen *ebiten.Image, s game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, "BLOCKFALL", margin, margin)
	if int(math.Floor(s.Time/blinkPeriod))%2 == 0 {
		ebitenutil.DebugPrintAt(screen, "PRESS ENTER", margin, margin+32)
	}
	ebitenutil.DebugPrintAt(screen, "arrows/wasd move, up rotates, esc quits", margin, margin+64)
}

func (v *view) drawWell(screen *ebiten.Image, s game.Snapshot) {
	w, h := float32(s.Board.Width*cellSize), float32(s.Board.Height*cellSize)
	vector.DrawFilledRect(screen, margin, margin, w, h, wellColor, false)
	vector.StrokeRect(screen, margin-1, margin-1, w+2, h+2, 2, frameColor, false)

	for y := 0; y < s.Board.Height; y++ {
		if slices.Contains(s.Clearing, y) {
			ox, oy := cellOrigin(0, y)
			vector.DrawFilledRect(screen, ox, oy, w, cellSize, flashColor, false)
			continue
		}
		for x := 0; x < s.Board.Width; x++ {
			tag, ghost := s.TagAt(x, y)
			if tag == board.Empty {
				continue
			}
			ox, oy := cellOrigin(x, y)
			if ghost {
				vector.StrokeRect(screen, ox+2, oy+2, cellSize-4, cellSize-4, 1, tagColor(tag), false)
				continue
			}
			vector.DrawFilledRect(screen, ox+1, oy+1, cellSize-2, cellSize-2, tagColor(tag), false)
		}
	}
}

func (v *view) drawSidebar(screen *ebiten.Image, s game.Snapshot) {
	x := margin*2 + s.Board.Width*cellSize
	ebitenutil.DebugPrintAt(screen, "NEXT", x, margin)
	if s.Next.Valid() {
		for _, off := range piece.Lookup(s.Next).Offsets {
			ox := float32(x + off.X*cellSize/2)
			oy := float32(margin + 20 + off.Y*cellSize/2)
			vector.DrawFilledRect(screen, ox, oy, cellSize/2-1, cellSize/2-1, tagColor(s.Next.Tag()), false)
		}
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", s.Lines), x, margin+72)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES %d", s.Pieces), x, margin+88)
	if s.Phase == game.PhaseGameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", x, margin+120)
		ebitenutil.DebugPrintAt(screen, "ENTER: menu", x, margin+136)
	}
}
