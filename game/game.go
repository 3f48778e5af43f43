// Package game runs a falling-block session as an ordered set of systems on
// an ecs.Scheduler. A frame resolves input, then horizontal movement,
// rotation and gravity, then contact and locking, then line clears and the
// next spawn, and finally hands a snapshot to the presenter.
package game

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/piece"
)

// Game owns one session and the scheduler that advances it.
type Game struct {
	resources *ecs.Resources
	scheduler *ecs.Scheduler

	config   *ecs.Singleton[Config]
	input    *ecs.Singleton[Input]
	controls *ecs.Singleton[Controls]
	session  *ecs.Singleton[Session]
	env      *ecs.Singleton[Env]
}

// Option configures a Game.
type Option func(*Env)

// WithSupplier replaces the supplier selected by Config.Supplier.
func WithSupplier(s piece.Supplier) Option {
	return func(e *Env) { e.Supplier = s }
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(e *Env) { e.Logger = l }
}

// WithListener adds an event listener.
func WithListener(l Listener) Option {
	return func(e *Env) { e.Listeners = append(e.Listeners, l) }
}

// WithPresenter sets the presenter called at the end of every frame.
func WithPresenter(p Presenter) Option {
	return func(e *Env) { e.Presenter = p }
}

// New creates a game in menu mode.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	env := Env{}
	for _, opt := range opts {
		opt(&env)
	}
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}
	if env.Supplier == nil {
		supplier, err := piece.NewSupplier(cfg.Supplier, cfg.Seed)
		if err != nil {
			return nil, errors.Wrap(err, "invalid config")
		}
		env.Supplier = supplier
	}

	resources := ecs.NewResources()
	g := &Game{
		resources: resources,
		scheduler: ecs.NewScheduler(resources),
		config:    ecs.NewSingleton(resources, cfg),
		input:     ecs.NewSingleton[Input](resources),
		controls:  ecs.NewSingleton[Controls](resources),
		session:   ecs.NewSingleton(resources, newSession(cfg)),
		env:       ecs.NewSingleton(resources, env),
	}

	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&ModeSystem{})
	g.scheduler.Register(&HorizontalSystem{})
	g.scheduler.Register(&RotationSystem{})
	g.scheduler.Register(&VerticalSystem{})
	g.scheduler.Register(&LockSystem{})
	g.scheduler.Register(&LineClearSystem{})
	g.scheduler.Register(&SpawnSystem{})
	g.scheduler.Register(&PresentSystem{})

	return g, nil
}

// Update advances the game by dt seconds with the given input.
//
// It returns an error wrapping ErrBoardFull on the frame the session ends,
// and an error wrapping *InvariantViolation when a logic bug is detected.
// After a violation the game is faulted and Update keeps returning it.
func (g *Game) Update(in Input, dt float64) error {
	session := g.session.Get()
	if session.fault != nil {
		return session.fault
	}

	*g.input.Get() = in
	g.scheduler.Once(dt)
	return session.takeSignal()
}

// Run advances the game in real time, polling src before every frame, until
// ctx is done or the game faults. Game over does not stop the loop; the
// player returns to the menu with confirm.
func (g *Game) Run(ctx context.Context, interval time.Duration, src InputSource) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := g.Update(src.Poll(), dt); err != nil && !errors.Is(err, ErrBoardFull) {
				return err
			}
		}
	}
}

// Start leaves the menu and begins a fresh session. The first piece spawns on
// the next Update. It does nothing if a session is already running.
func (g *Game) Start() {
	session := g.session.Get()
	if session.Mode == ModePlaying || session.fault != nil {
		return
	}
	enterPlaying(session, g.env.Get())
	g.controls.Get().reset()
	g.notify(Event{Kind: EventModeChanged, Mode: ModePlaying})
}

// Stop abandons the running session and returns to the menu.
func (g *Game) Stop() {
	session := g.session.Get()
	if session.Mode == ModeMenu {
		return
	}
	leavePlaying(session)
	g.controls.Get().reset()
	g.notify(Event{Kind: EventModeChanged, Mode: ModeMenu})
}

func (g *Game) notify(ev Event) {
	ev.Time = g.scheduler.Clock()
	for _, l := range g.env.Get().Listeners {
		l(ev)
	}
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Get().snapshot(g.scheduler.Clock())
}

// Stats returns per-system timing collected by the scheduler.
func (g *Game) Stats() *ecs.SchedulerStats {
	return g.scheduler.GetStats()
}

// Resources exposes the scheduler resources for debugging tools.
func (g *Game) Resources() *ecs.Resources {
	return g.resources
}

// Err returns the fault of the session, if any.
func (g *Game) Err() error {
	return g.session.Get().fault
}
