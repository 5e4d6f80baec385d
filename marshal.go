package vk

import (
	"runtime"
	"unsafe"
)

// allocSet owns the Go allocations backing a single native call: NUL
// terminated strings, pointer arrays, converted sub-structure arrays. It is
// created on the calling frame and must be released (after the native call
// returned, success or not) so the backing memory stays reachable for the
// whole call and no longer.
type allocSet struct {
	refs []interface{}
}

// keep pins v until release.
func (a *allocSet) keep(v interface{}) {
	a.refs = append(a.refs, v)
}

// release ends the lifetime of everything the set pinned.
func (a *allocSet) release() {
	runtime.KeepAlive(a.refs)
	a.refs = nil
}

// cstring returns a pointer to a NUL terminated copy of s.
func (a *allocSet) cstring(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	a.keep(b)
	return &b[0]
}

// cstrings marshals a string slice into a native array of char pointers.
// Empty input yields a nil pointer, never a zero length allocation.
func (a *allocSet) cstrings(ss []string) **byte {
	if len(ss) == 0 {
		return nil
	}
	ptrs := make([]*byte, len(ss))
	for i, s := range ss {
		ptrs[i] = a.cstring(s)
	}
	a.keep(ptrs)
	return &ptrs[0]
}

// sliceData returns a pointer to the first element, pinned in the set, or
// nil for an empty slice.
func sliceData[T any](a *allocSet, s []T) *T {
	if len(s) == 0 {
		return nil
	}
	a.keep(s)
	return &s[0]
}

// goString converts a NUL terminated native string back to a Go string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// goStrings reads count NUL terminated strings out of a native char pointer
// array.
func goStrings(pp **byte, count uint32) []string {
	if pp == nil || count == 0 {
		return nil
	}
	ptrs := unsafe.Slice(pp, count)
	out := make([]string, count)
	for i, p := range ptrs {
		out[i] = goString(p)
	}
	return out
}

// ToBytes reinterprets a native pointer and byte length as a Go slice. The
// slice aliases driver memory; it is only valid while the mapping is.
func ToBytes(ptr unsafe.Pointer, lenInBytes int) []byte {
	if ptr == nil || lenInBytes == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), lenInBytes)
}

// sliceUint32 views SPIR-V bytes as the uint32 words the native API expects.
func sliceUint32(data []byte) []uint32 {
	if len(data) < 4 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&data[0])), len(data)/4)
}
