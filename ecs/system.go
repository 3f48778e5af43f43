package ecs

// System is one step of a frame. Systems run in the order they were
// registered and may hold Singleton fields plus any private state that
// should persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
