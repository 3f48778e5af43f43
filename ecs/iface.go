package ecs

import "unsafe"

// iface mirrors the runtime layout of a non-empty interface value; typeId
// reads the data word of a reflect.Type to get at its *rtype.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
