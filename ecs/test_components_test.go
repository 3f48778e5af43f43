package ecs_test

// Common test resource types
type Counter struct {
	Value int
}

type Gravity struct {
	Interval float64
	Last     float64
	Fired    int
}

type Label string

type Grid struct {
	Cells []int
}
