package game

import (
	"github.com/pkg/errors"
	"github.com/plus3/blockfall/collision"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/piece"
)

// InputSystem turns the raw Input of the frame into edges and intents.
type InputSystem struct {
	Input    ecs.Singleton[Input]
	Controls ecs.Singleton[Controls]
	Session  ecs.Singleton[Session]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	controls := s.Controls.Get()
	controls.observe(*s.Input.Get())

	session := s.Session.Get()
	if !session.playing() || !session.Phase.moving() || session.Active == nil {
		return
	}
	if controls.Held.Down && session.Active.Intent == piece.FallNone {
		session.Active.Intent = piece.FallSoftDrop
	}
}

// ModeSystem switches between the menu and a running session on confirm.
type ModeSystem struct {
	Controls ecs.Singleton[Controls]
	Session  ecs.Singleton[Session]
	Env      ecs.Singleton[Env]
}

func (s *ModeSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session.fault != nil || !s.Controls.Get().ConfirmPressed {
		return
	}

	switch {
	case session.Mode == ModeMenu:
		enterPlaying(session, s.Env.Get())
		s.Controls.Get().reset()
		s.Env.Get().emit(frame, Event{Kind: EventModeChanged, Mode: ModePlaying})
	case session.Phase == PhaseGameOver:
		leavePlaying(session)
		s.Controls.Get().reset()
		s.Env.Get().emit(frame, Event{Kind: EventModeChanged, Mode: ModeMenu})
	}
}

func enterPlaying(session *Session, env *Env) {
	session.reset()
	session.Mode = ModePlaying
	session.Phase = PhaseSpawning
	session.Next = env.draw()
	env.Logger.Info("session started", "next", session.Next)
}

func leavePlaying(session *Session) {
	session.reset()
	session.Mode = ModeMenu
}

// HorizontalSystem steps the piece one column when the repeat interval has
// passed. A blocked step clears the request until the key is pressed again.
type HorizontalSystem struct {
	Config   ecs.Singleton[Config]
	Controls ecs.Singleton[Controls]
	Session  ecs.Singleton[Session]
}

func (s *HorizontalSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	controls := s.Controls.Get()
	if !session.playing() || !session.Phase.moving() || session.Active == nil {
		return
	}

	dir := controls.Horizontal
	if dir == 0 || !due(session.Clock.Horizontal, frame.Now, s.Config.Get().RepeatInterval) {
		return
	}
	session.Clock.Horizontal = frame.Now

	candidate := session.Active.Translate(dir, 0)
	if !collision.IsLegal(session.Board, candidate) {
		controls.block(dir)
		return
	}
	*session.Active = candidate
}

// RotationSystem turns the piece once per press of the rotate control.
type RotationSystem struct {
	Controls ecs.Singleton[Controls]
	Session  ecs.Singleton[Session]
	Env      ecs.Singleton[Env]
}

func (s *RotationSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if !session.playing() || !session.Phase.moving() || session.Active == nil {
		return
	}
	if !s.Controls.Get().RotatePressed {
		return
	}

	candidate, err := session.Active.Rotate()
	if err != nil {
		fail(session, s.Env.Get(), violation("rotate", err))
		return
	}
	if collision.IsLegal(session.Board, candidate) {
		*session.Active = candidate
	}
}

// VerticalSystem applies gravity, or a single soft-drop step when one is
// requested. A soft drop reverts to normal gravity once applied.
type VerticalSystem struct {
	Config  ecs.Singleton[Config]
	Session ecs.Singleton[Session]
}

func (s *VerticalSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if !session.playing() || !session.Phase.moving() || session.Active == nil {
		return
	}
	cfg := s.Config.Get()
	active := session.Active

	switch active.Intent {
	case piece.FallSoftDrop:
		if !due(session.Clock.SoftDrop, frame.Now, cfg.SoftDropInterval) {
			return
		}
		session.Clock.SoftDrop = frame.Now
		candidate := active.Translate(0, 1)
		candidate.Intent = piece.FallNone
		if collision.IsLegal(session.Board, candidate) {
			*active = candidate
		} else {
			active.Intent = piece.FallNone
		}
	case piece.FallNone:
		if !due(session.Clock.Gravity, frame.Now, cfg.GravityInterval) {
			return
		}
		session.Clock.Gravity = frame.Now
		candidate := active.Translate(0, 1)
		if collision.IsLegal(session.Board, candidate) {
			*active = candidate
		}
	}
}

// LockSystem tracks contact every frame and settles the piece once it has
// rested for the lock delay.
type LockSystem struct {
	Config  ecs.Singleton[Config]
	Session ecs.Singleton[Session]
	Env     ecs.Singleton[Env]
}

func (s *LockSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if !session.playing() || !session.Phase.moving() || session.Active == nil {
		return
	}
	env := s.Env.Get()
	active := session.Active

	started, ended := session.Lock.Observe(collision.Resting(session.Board, *active), frame.Now)
	switch {
	case started:
		session.Phase = PhaseLocking
		env.emit(frame, Event{Kind: EventLocking, Shape: active.Shape})
	case ended:
		session.Phase = PhaseFalling
		env.emit(frame, Event{Kind: EventLockCancelled, Shape: active.Shape})
	}

	if session.Phase != PhaseLocking || session.Lock.Elapsed(frame.Now) < s.Config.Get().LockDelay {
		return
	}

	if err := active.Validate(); err != nil {
		fail(session, env, violation("lock", err))
		return
	}
	if active.AboveCeiling() {
		gameOver(frame, session, env, errors.Wrapf(ErrBoardFull, "%v locked above the top row", active.Shape))
		return
	}
	if err := session.Board.Settle(active.Slice(), active.Shape.Tag()); err != nil {
		fail(session, env, violation("settle", err))
		return
	}

	active.Intent = piece.FallLocked
	env.Logger.Debug("piece locked", "shape", active.Shape, "lowest", active.Lowest())
	env.emit(frame, Event{Kind: EventLocked, Shape: active.Shape})

	session.Active = nil
	session.Lock.Reset()
	session.Pieces++
	session.Phase = PhaseLineClearing
}

// LineClearSystem removes full rows after a lock, optionally holding them for
// the clear delay first.
type LineClearSystem struct {
	Config  ecs.Singleton[Config]
	Session ecs.Singleton[Session]
	Env     ecs.Singleton[Env]
}

func (s *LineClearSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if !session.playing() || session.Phase != PhaseLineClearing {
		return
	}

	if session.Clearing == nil {
		rows := session.Board.FullRows()
		if len(rows) == 0 {
			session.Phase = PhaseSpawning
			return
		}
		session.Clearing = rows
		session.ClearSince = frame.Now
	}
	if !due(session.ClearSince, frame.Now, s.Config.Get().ClearDelay) {
		return
	}

	rows := session.Clearing
	n := session.Board.ClearRows(rows)
	session.Lines += n
	session.Clearing = nil
	session.Phase = PhaseSpawning

	env := s.Env.Get()
	env.Logger.Info("rows cleared", "rows", rows, "lines", session.Lines)
	env.emit(frame, Event{Kind: EventCleared, Rows: rows})
}

// SpawnSystem brings in the next shape. A spawn that does not fit ends the
// session with ErrBoardFull.
type SpawnSystem struct {
	Config  ecs.Singleton[Config]
	Session ecs.Singleton[Session]
	Env     ecs.Singleton[Env]
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if !session.playing() || session.Phase != PhaseSpawning {
		return
	}
	env := s.Env.Get()

	shape := session.Next
	if !shape.Valid() {
		fail(session, env, violation("spawn", errors.Wrapf(piece.ErrInvalidShape, "supplier gave %d", uint8(shape))))
		return
	}
	session.Next = env.draw()

	candidate := piece.Spawn(shape, s.Config.Get().Width)
	if !collision.IsLegal(session.Board, candidate) {
		gameOver(frame, session, env, errors.Wrapf(ErrBoardFull, "no room to spawn %v", shape))
		return
	}

	session.Active = &candidate
	session.Clock.Reset(frame.Now)
	session.Lock.Reset()
	session.Phase = PhaseFalling

	env.Logger.Debug("piece spawned", "shape", shape, "next", session.Next)
	env.emit(frame, Event{Kind: EventSpawned, Shape: shape})
}

// PresentSystem hands a snapshot to the presenter once the frame is done.
type PresentSystem struct {
	Session ecs.Singleton[Session]
	Env     ecs.Singleton[Env]
}

func (s *PresentSystem) Execute(frame *ecs.UpdateFrame) {
	presenter := s.Env.Get().Presenter
	if presenter == nil {
		return
	}
	snap := s.Session.Get().snapshot(frame.Now)
	frame.Commands.Defer(func() { presenter.Present(snap) })
}

func gameOver(frame *ecs.UpdateFrame, session *Session, env *Env, err error) {
	var shape piece.Shape
	if session.Active != nil {
		shape = session.Active.Shape
	}
	session.Active = nil
	session.Lock.Reset()
	session.Phase = PhaseGameOver
	session.raise(err)

	env.Logger.Info("game over", "err", err, "lines", session.Lines, "pieces", session.Pieces)
	env.emit(frame, Event{Kind: EventGameOver, Shape: shape, Err: err})
}

// fail faults the session. The violation replaces any other signal of the frame.
func fail(session *Session, env *Env, err error) {
	session.fault = err
	session.signal = err
	env.Logger.Error("session faulted", "err", err)
}
