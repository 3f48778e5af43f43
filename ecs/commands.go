package ecs

// Commands buffers work that must only happen once every system in the frame
// has run: resource replacement and deferred callbacks. Deferred functions
// run in the order they were queued.
type Commands struct {
	sets   []any
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// SetResource queues a replacement of the resource with value's type.
func (c *Commands) SetResource(value any) {
	c.sets = append(c.sets, value)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.sets) + len(c.defers)
}

// Flush applies resource replacements, then runs deferred functions, and
// resets the buffer. Functions deferred while flushing run in the same flush.
func (c *Commands) Flush(resources *Resources) {
	for _, value := range c.sets {
		resources.AddSingleton(value)
	}
	c.sets = c.sets[:0]

	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
}
