package game

import (
	"github.com/pkg/errors"
	"github.com/plus3/blockfall/piece"
)

// Config holds the board size and the timing of every axis, in seconds.
type Config struct {
	Width  int
	Height int

	// GravityInterval is the normal fall step.
	GravityInterval float64
	// RepeatInterval is the minimum gap between two horizontal steps.
	RepeatInterval float64
	// SoftDropInterval is the fast fall step used once per soft drop.
	SoftDropInterval float64
	// LockDelay is how long a piece may rest in contact before it settles.
	LockDelay float64
	// ClearDelay holds full rows on screen before they are removed.
	ClearDelay float64

	// Supplier selects the shape source: piece.KindRandom or piece.KindBag.
	Supplier string
	Seed     uint64
}

// DefaultConfig returns the classic 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Width:            10,
		Height:           20,
		GravityInterval:  0.5,
		RepeatInterval:   0.15,
		SoftDropInterval: 0.15,
		LockDelay:        0.15,
		ClearDelay:       0,
		Supplier:         piece.KindRandom,
		Seed:             1,
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return errors.Errorf("width %d is narrower than a piece", c.Width)
	case c.Height < 2:
		return errors.Errorf("height %d is shorter than a piece", c.Height)
	case c.GravityInterval <= 0:
		return errors.Errorf("gravity interval must be positive, got %v", c.GravityInterval)
	case c.RepeatInterval <= 0:
		return errors.Errorf("repeat interval must be positive, got %v", c.RepeatInterval)
	case c.SoftDropInterval <= 0:
		return errors.Errorf("soft drop interval must be positive, got %v", c.SoftDropInterval)
	case c.LockDelay < 0:
		return errors.Errorf("lock delay must not be negative, got %v", c.LockDelay)
	case c.ClearDelay < 0:
		return errors.Errorf("clear delay must not be negative, got %v", c.ClearDelay)
	}
	switch c.Supplier {
	case "", piece.KindRandom, piece.KindBag:
	default:
		return errors.Errorf("unknown supplier %q", c.Supplier)
	}
	return nil
}
