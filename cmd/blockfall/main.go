// Command blockfall plays blockfall in a desktop window. With -debug it
// draws Dear ImGui windows over the board showing scheduler timings, the
// session resources and a text dump of the board.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
)

type app struct {
	game   *game.Game
	view   *view
	logger *log.Logger

	// overlay is nil unless the debug windows are enabled.
	overlay *debugui.Overlay
	backend debugui_ebiten.ImguiBackend
}

func (a *app) Update() error {
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return ebiten.Termination
		}
	}

	var in game.Input
	if a.overlay == nil || !a.overlay.Input().WantCaptureKeyboard {
		in = readInput(ebiten.IsKeyPressed)
	}

	if err := a.game.Update(in, 1.0/float64(ebiten.TPS())); err != nil {
		if !errors.Is(err, game.ErrBoardFull) {
			return err
		}
		a.logger.Info("Game over", "lines", a.view.last.Lines, "pieces", a.view.last.Pieces)
	}

	if a.overlay != nil {
		a.backend.Overlay(a.overlay.Frame)
	}
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	a.view.draw(screen)
	if a.overlay != nil {
		a.backend.Draw(screen)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.view.size()
}

func main() {
	fs := flag.NewFlagSet("blockfall", flag.ExitOnError)
	debug := fs.Bool("debug", false, "Show the ImGui debug windows.")

	opts, err := config.Load(fs, os.Args[1:], game.DefaultConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := opts.Logger(os.Stderr, "blockfall")

	v := newView(opts.Game.Width, opts.Game.Height)
	g, err := game.New(opts.Game,
		game.WithLogger(logger),
		game.WithPresenter(v),
		game.WithListener(func(ev game.Event) {
			logger.Debug("event", "kind", ev.Kind, "shape", ev.Shape, "rows", ev.Rows)
		}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	a := &app{game: g, view: v, logger: logger}

	width, height := v.size()
	if *debug {
		a.backend = debugui_ebiten.NewImguiBackend("blockfall (debug)", width+640, max(height, 720))
		a.overlay = debugui.NewOverlay(g)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("blockfall")
	}

	if err := ebiten.RunGame(a); err != nil {
		logger.Error("Game stopped", "err", err)
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
