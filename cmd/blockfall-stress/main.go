// Command blockfall-stress plays many games headlessly with random input and
// reports frame timings and game statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
)

func main() {
	fs := flag.NewFlagSet("blockfall-stress", flag.ExitOnError)
	duration := fs.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	frameDt := fs.Duration("frame", 16*time.Millisecond, "Simulated time advanced per frame.")
	gcPauseMetrics := fs.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")

	opts, err := config.Load(fs, os.Args[1:], game.DefaultConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := opts.Logger(os.Stderr, "stress")

	report := &Report{
		Duration:       *duration,
		FrameDelta:     *frameDt,
		Config:         opts.Game,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	counter := &eventCounter{}

	g, err := game.New(opts.Game, game.WithListener(counter.listen))
	if err != nil {
		logger.Fatal("Failed to create game", "err", err)
	}
	input := newRandomInput(opts.Game.Seed)

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("Running simulation", "duration", *duration, "frame", *frameDt)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	dt := frameDt.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			err := g.Update(input.Poll(), dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++

			switch {
			case err == nil:
			case errors.Is(err, game.ErrBoardFull):
				report.Games++
				logger.Debug("Game over", "lines", counter.lines)
			default:
				logger.Fatal("Game faulted", "err", err)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Events = counter
	report.Systems = g.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("Simulation finished", "updates", report.TotalUpdates, "games", report.Games)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("Failed to generate report", "err", err)
	}
	fmt.Println("--- End of Report ---")
}

// randomInput holds each control for a random number of frames, so that
// both repeats and fresh presses are exercised. Confirm is pressed often
// enough to leave the menu and the game-over screen.
type randomInput struct {
	rng     *rand.Rand
	current game.Input
	hold    int
}

func newRandomInput(seed uint64) *randomInput {
	return &randomInput{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

func (r *randomInput) Poll() game.Input {
	if r.hold > 0 {
		r.hold--
		return r.current
	}
	r.hold = r.rng.IntN(20)
	r.current = game.Input{
		Left:    r.rng.IntN(4) == 0,
		Right:   r.rng.IntN(4) == 0,
		Down:    r.rng.IntN(3) == 0,
		Rotate:  r.rng.IntN(3) == 0,
		Confirm: r.rng.IntN(8) == 0,
	}
	return r.current
}

type eventCounter struct {
	spawned   int
	locked    int
	cancelled int
	cleared   int
	lines     int
	gameOvers int
}

func (c *eventCounter) listen(ev game.Event) {
	switch ev.Kind {
	case game.EventSpawned:
		c.spawned++
	case game.EventLocked:
		c.locked++
	case game.EventLockCancelled:
		c.cancelled++
	case game.EventCleared:
		c.cleared++
		c.lines += len(ev.Rows)
	case game.EventGameOver:
		c.gameOvers++
	}
}

func (c *eventCounter) Spawned() int   { return c.spawned }
func (c *eventCounter) Locked() int    { return c.locked }
func (c *eventCounter) Cancelled() int { return c.cancelled }
func (c *eventCounter) Clears() int    { return c.cleared }
func (c *eventCounter) Lines() int     { return c.lines }
func (c *eventCounter) GameOvers() int { return c.gameOvers }
