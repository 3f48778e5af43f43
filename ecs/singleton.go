package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton gives a system typed access to one resource. Declare it as a
// field on a System and the Scheduler initialises it during Register.
type Singleton[T any] struct {
	resources *Resources
	dataPtr   unsafe.Pointer
	typ       reflect.Type
}

// NewSingleton returns an accessor for the resource of type T, creating the
// resource from initializer (or the zero value) when it does not exist yet.
// An initializer for an existing resource is ignored.
func NewSingleton[T any](resources *Resources, initializer ...T) *Singleton[T] {
	typ := reflect.TypeFor[T]()

	if resources.getSingletonEntry(typ) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		resources.AddSingleton(&value)
	}

	s := &Singleton[T]{}
	s.Init(resources)
	return s
}

// Init binds the accessor to a resource store.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(resources *Resources) {
	s.resources = resources
	s.typ = reflect.TypeFor[T]()
	s.dataPtr = nil
	s.updateCache()
}

// Get returns a pointer to the resource, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.dataPtr == nil {
		s.updateCache()
	}
	if s.dataPtr == nil {
		return nil
	}
	return (*T)(s.dataPtr)
}

// Exists reports whether the resource is present.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.resources == nil {
		return
	}
	if entry := s.resources.getSingletonEntry(s.typ); entry != nil {
		s.dataPtr = entry.dataPtr
	}
}
