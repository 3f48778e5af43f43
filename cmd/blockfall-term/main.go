// Command blockfall-term plays blockfall in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
)

func main() {
	fs := flag.NewFlagSet("blockfall-term", flag.ExitOnError)
	logFile := fs.String("log-file", "", "Write logs to this file; the terminal is busy drawing.")
	fps := fs.Int("fps", 60, "Frames per second.")

	opts, err := config.Load(fs, os.Args[1:], game.DefaultConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := opts.Logger(logOut, "term")

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	g, err := game.New(opts.Game,
		game.WithLogger(logger),
		game.WithPresenter(&renderer{screen: screen}),
		game.WithListener(func(ev game.Event) {
			logger.Debug("event", "kind", ev.Kind, "shape", ev.Shape, "rows", ev.Rows)
		}),
	)
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kb := newKeyboard()
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if kb.handle(ev.Key(), ev.Rune()) {
					cancel()
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	runErr := g.Run(ctx, time.Second/time.Duration(max(*fps, 1)), kb)
	screen.Fini()

	if runErr != nil {
		logger.Error("Game stopped", "err", runErr)
		fmt.Fprintf(os.Stderr, "%+v\n", runErr)
		os.Exit(1)
	}
}
