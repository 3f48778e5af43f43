package ecs

// UpdateFrame is passed to every system during one Scheduler tick.
type UpdateFrame struct {
	// DeltaTime is the time in seconds since the previous frame.
	DeltaTime float64
	// Now is the scheduler clock in seconds, monotonic across frames.
	Now       float64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt, now float64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Now:       now,
		Commands:  newCommands(),
		Resources: resources,
	}
}
