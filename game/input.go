package game

// Input is the held state of every control for one frame. Edges are derived
// by comparing consecutive frames, so a front end that only reports a key for
// a single frame still produces a press.
type Input struct {
	Left    bool
	Right   bool
	Down    bool
	Rotate  bool
	Confirm bool
}

// InputSource supplies the input for each frame of Game.Run.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

func (f InputFunc) Poll() Input { return f() }

// Controls is the per-frame interpretation of Input.
type Controls struct {
	Held Input

	LeftPressed    bool
	RightPressed   bool
	RotatePressed  bool
	ConfirmPressed bool

	// Horizontal is the requested column step: -1, 0 or 1.
	Horizontal int
	// LastHorizontal is the direction of the most recent horizontal press.
	LastHorizontal int
	// A direction that hit a wall stays blocked until its key is released.
	BlockedLeft  bool
	BlockedRight bool
}

// observe derives edges and the horizontal request from the next input.
// When both directions are held the most recent press wins; two presses in
// the same frame resolve to left.
func (c *Controls) observe(in Input) {
	prev := c.Held
	c.Held = in

	c.LeftPressed = in.Left && !prev.Left
	c.RightPressed = in.Right && !prev.Right
	c.RotatePressed = in.Rotate && !prev.Rotate
	c.ConfirmPressed = in.Confirm && !prev.Confirm

	if c.RightPressed {
		c.LastHorizontal = 1
	}
	if c.LeftPressed {
		c.LastHorizontal = -1
	}
	if !in.Left {
		c.BlockedLeft = false
	}
	if !in.Right {
		c.BlockedRight = false
	}

	dir := 0
	switch {
	case in.Left && in.Right:
		dir = c.LastHorizontal
	case in.Left:
		dir = -1
	case in.Right:
		dir = 1
	}
	if (dir < 0 && c.BlockedLeft) || (dir > 0 && c.BlockedRight) {
		dir = 0
	}
	c.Horizontal = dir
}

func (c *Controls) block(dir int) {
	if dir < 0 {
		c.BlockedLeft = true
	} else if dir > 0 {
		c.BlockedRight = true
	}
	c.Horizontal = 0
}

// reset forgets derived state but keeps Held so a key still down after a
// mode change does not register as a fresh press.
func (c *Controls) reset() {
	*c = Controls{Held: c.Held}
}
