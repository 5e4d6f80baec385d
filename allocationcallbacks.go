package vk

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// vkAllocationCallbacks mirrors the native host allocator callback table.
type vkAllocationCallbacks struct {
	pUserData             unsafe.Pointer
	pfnAllocation         uintptr
	pfnReallocation       uintptr
	pfnFree               uintptr
	pfnInternalAllocation uintptr
	pfnInternalFree       uintptr
}

// AllocationCallbacks routes the driver's host allocations through Go
// functions. A callback set is immutable once built: the exact same native
// table passed at creation must be passed again at destruction, so wrappers
// remember the set they were created with.
type AllocationCallbacks struct {
	raw vkAllocationCallbacks

	// held so the bridged callbacks stay reachable for the set's lifetime
	allocate   AllocationFunc
	reallocate ReallocationFunc
	free       FreeFunc
}

// AllocationFunc services a host allocation request. Returning nil makes the
// driver treat the allocation as failed.
type AllocationFunc func(size, alignment uintptr, scope SystemAllocationScope) unsafe.Pointer

// ReallocationFunc services a host reallocation request.
type ReallocationFunc func(original unsafe.Pointer, size, alignment uintptr, scope SystemAllocationScope) unsafe.Pointer

// FreeFunc releases memory returned by an earlier AllocationFunc.
type FreeFunc func(mem unsafe.Pointer)

// NewAllocationCallbacks bridges the given Go functions into a native
// callback table. All three must be non-nil per the native contract.
func NewAllocationCallbacks(alloc AllocationFunc, realloc ReallocationFunc, free FreeFunc) *AllocationCallbacks {
	a := &AllocationCallbacks{allocate: alloc, reallocate: realloc, free: free}
	a.raw.pfnAllocation = purego.NewCallback(func(userData, size, alignment uintptr, scope int32) uintptr {
		return uintptr(alloc(size, alignment, SystemAllocationScope(scope)))
	})
	a.raw.pfnReallocation = purego.NewCallback(func(userData, original, size, alignment uintptr, scope int32) uintptr {
		return uintptr(realloc(unsafe.Pointer(original), size, alignment, SystemAllocationScope(scope)))
	})
	a.raw.pfnFree = purego.NewCallback(func(userData, mem uintptr) uintptr {
		free(unsafe.Pointer(mem))
		return 0
	})
	return a
}

// handle returns the native table, or nil for a nil set (driver default
// allocator).
func (a *AllocationCallbacks) handle() *vkAllocationCallbacks {
	if a == nil {
		return nil
	}
	return &a.raw
}
