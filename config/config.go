// Package config binds game settings to command-line flags whose defaults
// can be overridden through BLOCKFALL_* environment variables.
package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/plus3/blockfall/game"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BLOCKFALL_"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Options are the settings shared by every front end.
type Options struct {
	Game     game.Config
	LogLevel string
}

// env reads typed defaults and remembers the first malformed variable.
type env struct {
	err error
}

func (e *env) getInt(name string, fallback int) int {
	raw, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		e.fail(name, err)
		return fallback
	}
	return v
}

func (e *env) getUint64(name string, fallback uint64) uint64 {
	raw, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		e.fail(name, err)
		return fallback
	}
	return v
}

func (e *env) getFloat(name string, fallback float64) float64 {
	raw, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		e.fail(name, err)
		return fallback
	}
	return v
}

func (e *env) getString(name, fallback string) string {
	return GetEnv(EnvPrefix+name, fallback)
}

func (e *env) fail(name string, err error) {
	if e.err == nil {
		e.err = errors.Wrapf(err, "%s%s", EnvPrefix, name)
	}
}

// Load registers the shared flags on fs, parses args and validates the
// result. Precedence is flag, then environment, then defaults.
func Load(fs *flag.FlagSet, args []string, defaults game.Config) (*Options, error) {
	var e env
	o := &Options{}
	cfg := &o.Game

	fs.IntVar(&cfg.Width, "width", e.getInt("WIDTH", defaults.Width), "board width in cells")
	fs.IntVar(&cfg.Height, "height", e.getInt("HEIGHT", defaults.Height), "board height in cells")
	fs.Float64Var(&cfg.GravityInterval, "gravity", e.getFloat("GRAVITY", defaults.GravityInterval), "seconds per gravity step")
	fs.Float64Var(&cfg.RepeatInterval, "repeat", e.getFloat("REPEAT", defaults.RepeatInterval), "seconds between horizontal steps")
	fs.Float64Var(&cfg.SoftDropInterval, "soft-drop", e.getFloat("SOFT_DROP", defaults.SoftDropInterval), "seconds before a soft drop step")
	fs.Float64Var(&cfg.LockDelay, "lock-delay", e.getFloat("LOCK_DELAY", defaults.LockDelay), "seconds a resting piece waits before it locks")
	fs.Float64Var(&cfg.ClearDelay, "clear-delay", e.getFloat("CLEAR_DELAY", defaults.ClearDelay), "seconds full rows stay visible before removal")
	fs.StringVar(&cfg.Supplier, "supplier", e.getString("SUPPLIER", defaults.Supplier), "shape supplier: random or bag")
	fs.Uint64Var(&cfg.Seed, "seed", e.getUint64("SEED", defaults.Seed), "random seed for the shape supplier")
	fs.StringVar(&o.LogLevel, "log-level", e.getString("LOG_LEVEL", "info"), "log level: debug, info, warn, error")

	if e.err != nil {
		return nil, e.err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := o.Game.Validate(); err != nil {
		return nil, err
	}
	if _, err := log.ParseLevel(o.LogLevel); err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	return o, nil
}

// Logger builds a logger at the configured level.
func (o *Options) Logger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}
