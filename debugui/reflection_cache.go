package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

// FieldInfo describes one exported field of an inspected struct.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	IsStruct  bool
	IsSlice   bool
	IsMap     bool
}

// ReflectionCache memoises the exported fields of struct types.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the exported fields of t, or nil for non-struct types.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
				IsStruct:  fieldType.Kind() == reflect.Struct,
				IsSlice:   fieldType.Kind() == reflect.Slice || fieldType.Kind() == reflect.Array,
				IsMap:     fieldType.Kind() == reflect.Map,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// summarize renders a value on one line. Stringers win so board cells and
// phases show by name.
func summarize(val reflect.Value) string {
	if !val.IsValid() {
		return "<invalid>"
	}
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return "nil"
		}
	}
	if val.CanInterface() {
		if s, ok := val.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		if val.Len() <= 8 {
			return fmt.Sprintf("%v", val.Interface())
		}
		return fmt.Sprintf("[%d items]", val.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len())
	case reflect.Func:
		return "func"
	}
	if val.CanInterface() {
		return fmt.Sprintf("%v", val.Interface())
	}
	return val.Kind().String()
}
