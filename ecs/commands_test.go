package ecs_test

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
)

type resetSystem struct{}

func (s *resetSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.SetResource(Counter{Value: 100})
}

type readCounterSystem struct {
	Counter ecs.Singleton[Counter]
	seen    []int
}

func (s *readCounterSystem) Execute(frame *ecs.UpdateFrame) {
	s.seen = append(s.seen, s.Counter.Get().Value)
}

func TestCommandsSetResourceAppliesAfterFrame(t *testing.T) {
	resources := ecs.NewResources()
	ecs.NewSingleton(resources, Counter{Value: 1})

	scheduler := ecs.NewScheduler(resources)
	reader := &readCounterSystem{}
	scheduler.Register(&resetSystem{})
	scheduler.Register(reader)

	scheduler.Once(0.1)
	scheduler.Once(0.1)

	assert.Equal(t, []int{1, 100}, reader.seen)
}

func TestCommandsDeferOrder(t *testing.T) {
	resources := ecs.NewResources()
	scheduler := ecs.NewScheduler(resources)

	var order []string
	scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame) {
		frame.Commands.Defer(func() { order = append(order, "locked") })
		frame.Commands.Defer(func() {
			order = append(order, "cleared")
			frame.Commands.Defer(func() { order = append(order, "spawned") })
		})
	}))

	scheduler.Once(0.1)

	assert.Equal(t, []string{"locked", "cleared", "spawned"}, order)
}

func TestCommandsFlushResets(t *testing.T) {
	resources := ecs.NewResources()
	var frame *ecs.UpdateFrame
	scheduler := ecs.NewScheduler(resources)
	scheduler.Register(systemFunc(func(f *ecs.UpdateFrame) {
		frame = f
		f.Commands.Defer(func() {})
		f.Commands.SetResource(Label("a"))
		assert.Equal(t, 2, f.Commands.Len())
	}))

	scheduler.Once(0.1)

	assert.Equal(t, 0, frame.Commands.Len())
	assert.Equal(t, Label("a"), *ecs.ReadResource[Label](resources))
}

type systemFunc func(frame *ecs.UpdateFrame)

func (f systemFunc) Execute(frame *ecs.UpdateFrame) { f(frame) }
