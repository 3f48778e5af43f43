package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// PerformanceStats keeps a ring of recent frame times in milliseconds.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Push records one frame of deltaTime seconds.
func (ps *PerformanceStats) Push(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	if ps.recorded < ps.historyFrames {
		ps.recorded++
	}
}

// Average returns the mean frame time over the recorded frames, in ms.
func (ps *PerformanceStats) Average() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory[:ps.recorded] {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

// Render draws the stats window for the game scheduler and its resources.
func (ps *PerformanceStats) Render(stats *ecs.SchedulerStats, resources ecs.ResourceStats) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Clock: %.2f s", stats.Clock))
	imgui.Text(fmt.Sprintf("Resources: %d", resources.SingletonCount))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Resource Types") {
		for _, name := range resources.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
	now           func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
		now:           time.Now,
	}
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := ft.now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
