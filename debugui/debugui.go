// Package debugui draws Dear ImGui debug windows over a running game.
// Windows are plain render functions held in a resource and replayed by
// ImguiSystem after every frame of an overlay scheduler.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// Windows is the resource listing every ImguiItem to draw, in order.
type Windows struct {
	Items []ImguiItem
}

// Add appends a window.
func (w *Windows) Add(items ...ImguiItem) {
	w.Items = append(w.Items, items...)
}

// ImguiInputState tracks whether ImGui is consuming mouse or keyboard input.
// Front ends check it before acting on their own key handling.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers every window's render
// function to the end of the frame.
type ImguiSystem struct {
	Windows    ecs.Singleton[Windows]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	windows := i.Windows.Get()
	if windows == nil {
		return
	}
	for _, item := range windows.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
