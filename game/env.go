package game

import (
	"github.com/charmbracelet/log"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/piece"
)

// Env carries the collaborators systems call out to.
type Env struct {
	Supplier  piece.Supplier
	Logger    *log.Logger
	Listeners []Listener
	Presenter Presenter
}

// emit queues ev for every listener at the end of the frame.
func (e *Env) emit(frame *ecs.UpdateFrame, ev Event) {
	ev.Time = frame.Now
	for _, l := range e.Listeners {
		frame.Commands.Defer(func() { l(ev) })
	}
}

// draw takes the next shape from the supplier.
func (e *Env) draw() piece.Shape {
	return e.Supplier.Next()
}
