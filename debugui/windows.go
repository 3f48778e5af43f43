package debugui

import (
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
)

// Source is what the debug windows read from. *game.Game satisfies it.
type Source interface {
	Snapshot() game.Snapshot
	Stats() *ecs.SchedulerStats
	Resources() *ecs.Resources
}

// Overlay is a scheduler that draws the debug windows for one game. Call
// Frame between the ImGui backend's BeginFrame and EndFrame.
type Overlay struct {
	Resources *ecs.Resources
	Scheduler *ecs.Scheduler
	Stats     *PerformanceStats

	timer *FrameTimer
	input *ecs.Singleton[ImguiInputState]
}

// NewOverlay registers the stats, inspector and board windows for src.
func NewOverlay(src Source) *Overlay {
	resources := ecs.NewResources()
	o := &Overlay{
		Resources: resources,
		Scheduler: ecs.NewScheduler(resources),
		Stats:     NewPerformanceStats(120),
		timer:     NewFrameTimer(),
		input:     ecs.NewSingleton[ImguiInputState](resources),
	}

	inspector := NewResourceInspector(src.Resources())
	viewer := NewBoardViewer(src.Snapshot)

	windows := ecs.NewSingleton[Windows](resources).Get()
	windows.Add(
		ImguiItem{Name: "stats", Render: func() {
			o.Stats.Render(src.Stats(), src.Resources().CollectStats())
		}},
		ImguiItem{Name: "inspector", Render: inspector.Render},
		ImguiItem{Name: "board", Render: viewer.Render},
	)

	o.Scheduler.Register(&ImguiSystem{})
	return o
}

// Frame records the frame time and runs the overlay systems once.
func (o *Overlay) Frame() {
	dt := o.timer.GetDeltaTime()
	o.Stats.Push(dt)
	o.Scheduler.Once(float64(dt))
}

// Input reports ImGui's capture state as of the last frame.
func (o *Overlay) Input() ImguiInputState {
	return *o.input.Get()
}
