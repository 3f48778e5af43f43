package ecs

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Resources holds at most one value per Go type. Systems reach these values
// through Singleton fields, which the Scheduler wires up on registration.
type Resources struct {
	entries *intmap.Map[int, *resourceEntry]
	types   []reflect.Type
}

type resourceEntry struct {
	typ     reflect.Type
	value   reflect.Value // addressable, owns the data
	dataPtr unsafe.Pointer
}

// ResourceStats summarises the contents of a Resources store.
type ResourceStats struct {
	SingletonCount int
	SingletonTypes []string
}

// NewResources creates an empty resource store.
func NewResources() *Resources {
	return &Resources{
		entries: intmap.New[int, *resourceEntry](16),
	}
}

// AddSingleton stores value as the resource for its type. If a resource of the
// same type already exists it is overwritten in place, so pointers handed out
// by Singleton.Get stay valid.
func (r *Resources) AddSingleton(value any) {
	if value == nil {
		panic("cannot add nil singleton")
	}

	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			panic("cannot add nil singleton")
		}
		val = val.Elem()
	}
	typ := val.Type()

	if entry := r.getSingletonEntry(typ); entry != nil {
		entry.value.Set(val)
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(val)

	r.entries.Put(typeId(typ), &resourceEntry{
		typ:     typ,
		value:   ptr.Elem(),
		dataPtr: ptr.UnsafePointer(),
	})
	r.types = append(r.types, typ)
}

// RemoveSingleton drops the resource for the given type. Singletons that
// cached the old pointer keep it alive but no longer see replacements.
func (r *Resources) RemoveSingleton(typ reflect.Type) bool {
	if r.getSingletonEntry(typ) == nil {
		return false
	}
	r.entries.Del(typeId(typ))
	for i, t := range r.types {
		if t == typ {
			r.types = append(r.types[:i], r.types[i+1:]...)
			break
		}
	}
	return true
}

// ReadSingleton fills target, which must be a **T, with a pointer to the
// resource of type T. Returns false if no such resource exists.
func (r *Resources) ReadSingleton(target any) bool {
	targetVal := reflect.ValueOf(target)
	if targetVal.Kind() != reflect.Ptr || targetVal.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	typ := targetVal.Elem().Type().Elem()
	entry := r.getSingletonEntry(typ)
	if entry == nil {
		return false
	}

	targetVal.Elem().Set(reflect.NewAt(typ, entry.dataPtr))
	return true
}

// Get returns a pointer to the resource of the given type, or nil.
func (r *Resources) Get(typ reflect.Type) any {
	entry := r.getSingletonEntry(typ)
	if entry == nil {
		return nil
	}
	return reflect.NewAt(typ, entry.dataPtr).Interface()
}

// Types returns the stored resource types in insertion order.
func (r *Resources) Types() []reflect.Type {
	return r.types
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return r.entries.Len()
}

// CollectStats reports how many resources are stored and their type names.
func (r *Resources) CollectStats() ResourceStats {
	names := make([]string, 0, len(r.types))
	for _, t := range r.types {
		names = append(names, t.String())
	}
	sort.Strings(names)

	return ResourceStats{
		SingletonCount: r.entries.Len(),
		SingletonTypes: names,
	}
}

func (r *Resources) getSingletonEntry(typ reflect.Type) *resourceEntry {
	entry, ok := r.entries.Get(typeId(typ))
	if !ok {
		return nil
	}
	return entry
}

// typeId uses the runtime type descriptor address as a stable integer key.
func typeId(t reflect.Type) int {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return int(uintptr(ptr))
}

// ReadResource is a typed shortcut for Resources.Get.
func ReadResource[T any](r *Resources) *T {
	v := r.Get(reflect.TypeFor[T]())
	if v == nil {
		return nil
	}
	return v.(*T)
}
