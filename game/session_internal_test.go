package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playing returns a game whose first piece spawned at t=0.0625, plus the
// list its events are recorded into.
func playing(t *testing.T, cfg Config, shapes ...piece.Shape) (*Game, *[]Event) {
	t.Helper()
	events := &[]Event{}
	g, err := New(cfg,
		WithSupplier(piece.NewSequence(shapes...)),
		WithListener(func(ev Event) { *events = append(*events, ev) }),
	)
	require.NoError(t, err)
	g.Start()
	require.NoError(t, g.Update(Input{}, 0.0625))
	require.NotNil(t, g.session.Get().Active)
	*events = (*events)[:0]
	return g, events
}

func settle(t *testing.T, g *Game, cells ...board.Cell) {
	t.Helper()
	require.NoError(t, g.session.Get().Board.Settle(cells, piece.Z.Tag()))
}

func place(g *Game, p piece.Piece) {
	*g.session.Get().Active = p
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestLockCancelledWhenMovedOffLedge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LockDelay = 1
	g, events := playing(t, cfg, piece.O)
	session := g.session.Get()

	settle(t, g, board.Cell{X: 5, Y: 10}, board.Cell{X: 0, Y: 19}, board.Cell{X: 1, Y: 19}, board.Cell{X: 2, Y: 19})
	place(g, piece.Spawn(piece.O, 10).Translate(0, 8))

	require.NoError(t, g.Update(Input{}, 0.0625))
	assert.Equal(t, PhaseLocking, session.Phase)
	assert.True(t, session.Lock.Contact)
	assert.Equal(t, 0.125, session.Lock.Since)

	require.NoError(t, g.Update(Input{Left: true}, 0.25))
	assert.Equal(t, PhaseFalling, session.Phase)
	assert.False(t, session.Lock.Contact)
	assert.Zero(t, session.Lock.Elapsed(0.375))
	assert.Equal(t, 3, session.Active.Cells[0].X)

	assert.Equal(t, []EventKind{EventLocking, EventLockCancelled}, kinds(*events))
}

func TestLockTimerSurvivesSliding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LockDelay = 0.5
	g, _ := playing(t, cfg, piece.O, piece.T)
	session := g.session.Get()

	place(g, piece.Spawn(piece.O, 10).Translate(0, 18))

	require.NoError(t, g.Update(Input{}, 0.0625))
	require.Equal(t, PhaseLocking, session.Phase)

	require.NoError(t, g.Update(Input{Left: true}, 0.25))
	assert.Equal(t, PhaseLocking, session.Phase)
	assert.Equal(t, 0.125, session.Lock.Since)
	assert.Equal(t, 3, session.Active.Cells[0].X)

	require.NoError(t, g.Update(Input{}, 0.25))
	assert.Equal(t, 1, session.Pieces)
	assert.Equal(t, piece.O.Tag(), session.Board.At(board.Cell{X: 3, Y: 19}))
	assert.Equal(t, piece.O.Tag(), session.Board.At(board.Cell{X: 4, Y: 18}))
	require.NotNil(t, session.Active)
	assert.Equal(t, piece.T, session.Active.Shape)
}

// rowFiveSetup leaves row 5 full except column 3, with an I piece standing in
// column 3 on top of a block at row 6.
func rowFiveSetup(t *testing.T, g *Game) {
	t.Helper()
	settle(t, g, board.Cell{X: 0, Y: 5}, board.Cell{X: 1, Y: 5}, board.Cell{X: 2, Y: 5}, board.Cell{X: 4, Y: 5})
	settle(t, g, board.Cell{X: 5, Y: 5}, board.Cell{X: 6, Y: 5}, board.Cell{X: 7, Y: 5}, board.Cell{X: 8, Y: 5})
	settle(t, g, board.Cell{X: 9, Y: 5}, board.Cell{X: 3, Y: 6}, board.Cell{X: 0, Y: 4}, board.Cell{X: 9, Y: 4})

	vertical, err := piece.Spawn(piece.I, 10).Rotate()
	require.NoError(t, err)
	place(g, vertical.Translate(-2, 3))
}

func TestLineClearRowFive(t *testing.T) {
	g, events := playing(t, DefaultConfig(), piece.I, piece.T)
	session := g.session.Get()
	rowFiveSetup(t, g)

	require.NoError(t, g.Update(Input{}, 0.0625))
	require.Equal(t, PhaseLocking, session.Phase)
	require.NoError(t, g.Update(Input{}, 0.25))

	assert.Equal(t, 1, session.Lines)
	assert.Empty(t, session.Board.FullRows())
	assert.Equal(t, []EventKind{EventLocking, EventLocked, EventCleared, EventSpawned}, kinds(*events))
	assert.Equal(t, []int{5}, (*events)[2].Rows)

	b := session.Board
	for x := 0; x < 10; x++ {
		assert.Equal(t, board.Empty, b.At(board.Cell{X: x, Y: 0}))
	}
	// Row 5 now holds what row 4 held.
	assert.Equal(t, piece.Z.Tag(), b.At(board.Cell{X: 0, Y: 5}))
	assert.Equal(t, piece.Z.Tag(), b.At(board.Cell{X: 9, Y: 5}))
	assert.Equal(t, piece.I.Tag(), b.At(board.Cell{X: 3, Y: 5}))
	assert.Equal(t, board.Empty, b.At(board.Cell{X: 1, Y: 5}))
	// Rows below the clear are untouched, rows above dropped by one.
	assert.Equal(t, piece.Z.Tag(), b.At(board.Cell{X: 3, Y: 6}))
	assert.Equal(t, piece.I.Tag(), b.At(board.Cell{X: 3, Y: 3}))
	assert.Equal(t, board.Empty, b.At(board.Cell{X: 3, Y: 2}))

	require.NotNil(t, session.Active)
	assert.Equal(t, piece.T, session.Active.Shape)
}

func TestLineClearDelay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClearDelay = 0.5
	g, _ := playing(t, cfg, piece.I, piece.T)
	session := g.session.Get()
	rowFiveSetup(t, g)

	require.NoError(t, g.Update(Input{}, 0.0625))
	require.NoError(t, g.Update(Input{}, 0.25))

	snap := g.Snapshot()
	assert.Equal(t, PhaseLineClearing, snap.Phase)
	assert.Equal(t, []int{5}, snap.Clearing)
	assert.Nil(t, snap.Active)
	assert.Equal(t, []int{5}, session.Board.FullRows())

	require.NoError(t, g.Update(Input{Left: true, Rotate: true}, 0.25))
	assert.Equal(t, PhaseLineClearing, session.Phase)

	require.NoError(t, g.Update(Input{}, 0.25))
	assert.Equal(t, PhaseFalling, session.Phase)
	assert.Empty(t, session.Board.FullRows())
	assert.Equal(t, 1, session.Lines)
	assert.Nil(t, session.Clearing)
}

func TestLockAboveCeilingEndsGame(t *testing.T) {
	g, events := playing(t, DefaultConfig(), piece.I, piece.O)
	session := g.session.Get()

	for y := 3; y < 19; y += 4 {
		settle(t, g, board.Cell{X: 5, Y: y}, board.Cell{X: 5, Y: y + 1}, board.Cell{X: 5, Y: y + 2}, board.Cell{X: 5, Y: y + 3})
	}

	require.NoError(t, g.Update(Input{Rotate: true}, 0.0625))
	require.Equal(t, PhaseLocking, session.Phase)
	require.True(t, session.Active.AboveCeiling())

	err := g.Update(Input{}, 0.25)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBoardFull))
	assert.Equal(t, PhaseGameOver, session.Phase)
	assert.Equal(t, 16, session.Board.Settled())
	assert.False(t, session.Faulted())
	assert.Equal(t, EventGameOver, (*events)[len(*events)-1].Kind)
	assert.Equal(t, piece.I, (*events)[len(*events)-1].Shape)
}

func TestSettleOntoOccupiedCellFaults(t *testing.T) {
	g, _ := playing(t, DefaultConfig(), piece.I)
	session := g.session.Get()

	settle(t, g, board.Cell{X: 0, Y: 19}, board.Cell{X: 1, Y: 19}, board.Cell{X: 2, Y: 19}, board.Cell{X: 3, Y: 19})
	place(g, piece.Spawn(piece.I, 10).Translate(0, 19))

	require.NoError(t, g.Update(Input{}, 0.0625))
	err := g.Update(Input{}, 0.25)
	require.Error(t, err)

	var violation *InvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "settle", violation.Op)
	assert.True(t, errors.Is(err, board.ErrOccupied))
	assert.True(t, session.Faulted())
	assert.Equal(t, 4, session.Board.Settled())

	assert.Equal(t, err, g.Update(Input{}, 0.25))
}

func TestDuplicateCellsFault(t *testing.T) {
	g, _ := playing(t, DefaultConfig(), piece.T)

	p := piece.Spawn(piece.T, 10).Translate(0, 18)
	p.Cells[1] = p.Cells[0]
	place(g, p)

	require.NoError(t, g.Update(Input{}, 0.0625))
	err := g.Update(Input{}, 0.25)

	var violation *InvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "lock", violation.Op)
	assert.True(t, errors.Is(err, piece.ErrDuplicateCell))
}

func TestUndefinedPivotFaults(t *testing.T) {
	g, _ := playing(t, DefaultConfig(), piece.T)
	g.session.Get().Active.Pivot = piece.Pivot{X2: 3, Y2: 2}

	err := g.Update(Input{Rotate: true}, 0.0625)

	var violation *InvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "rotate", violation.Op)
	assert.True(t, errors.Is(err, piece.ErrUndefinedPivot))
}

func TestControlsObserve(t *testing.T) {
	var c Controls

	c.observe(Input{Rotate: true, Confirm: true})
	assert.True(t, c.RotatePressed)
	assert.True(t, c.ConfirmPressed)

	c.observe(Input{Rotate: true})
	assert.False(t, c.RotatePressed)
	assert.False(t, c.ConfirmPressed)

	c.observe(Input{Left: true})
	assert.Equal(t, -1, c.Horizontal)

	c.block(-1)
	c.observe(Input{Left: true})
	assert.Zero(t, c.Horizontal)
	assert.True(t, c.BlockedLeft)

	c.observe(Input{Left: true, Right: true})
	assert.Equal(t, 1, c.Horizontal)

	c.observe(Input{})
	assert.False(t, c.BlockedLeft)
	c.observe(Input{Left: true})
	assert.Equal(t, -1, c.Horizontal)

	c.observe(Input{Left: true})
	c.reset()
	assert.True(t, c.Held.Left)
	c.observe(Input{Left: true})
	assert.False(t, c.LeftPressed)
	assert.Equal(t, -1, c.Horizontal)
}

func TestLockTimer(t *testing.T) {
	var lt LockTimer

	started, ended := lt.Observe(false, 1)
	assert.False(t, started)
	assert.False(t, ended)
	assert.Zero(t, lt.Elapsed(1))

	started, _ = lt.Observe(true, 1)
	assert.True(t, started)
	lt.Observe(true, 1.25)
	assert.Equal(t, 0.5, lt.Elapsed(1.5))

	_, ended = lt.Observe(false, 1.5)
	assert.True(t, ended)
	assert.Zero(t, lt.Elapsed(2))

	lt.Observe(true, 2)
	assert.Equal(t, 0.25, lt.Elapsed(2.25))
}
