package vk

import "testing"

// fakeResolver stands in for a driver's vkGetInstanceProcAddr. It hands out
// distinct fake addresses for the names it knows and counts lookups; the
// addresses are never invoked by these tests.
type fakeResolver struct {
	known map[string]uintptr
	calls map[string]int
}

func newFakeResolver(names ...string) *fakeResolver {
	r := &fakeResolver{known: map[string]uintptr{}, calls: map[string]int{}}
	for i, name := range names {
		r.known[name] = uintptr(0x1000 + i*8)
	}
	return r
}

func (r *fakeResolver) resolve(_ InstanceHandle, name string) uintptr {
	r.calls[name]++
	return r.known[name]
}

func TestNewLoaderNilResolver(t *testing.T) {
	if _, err := NewLoader(nil); err == nil {
		t.Fatal("NewLoader(nil) succeeded")
	}
}

func TestNewLoaderMissingCreateInstance(t *testing.T) {
	r := newFakeResolver() // knows nothing
	if _, err := NewLoader(r.resolve); err == nil {
		t.Fatal("loader accepted a driver without vkCreateInstance")
	}
}

func TestGlobalProcAddr(t *testing.T) {
	r := newFakeResolver("vkCreateInstance", "vkSomeCommand")
	l, err := NewLoader(r.resolve)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := l.GlobalProcAddr(""); err == nil {
		t.Error("empty proc name accepted")
	}

	// Unknown names resolve to zero without an error; the caller decides
	// whether that means "extension not present".
	addr, err := l.GlobalProcAddr("vkUnknownCommand")
	if err != nil {
		t.Fatalf("unknown name: %v", err)
	}
	if addr != 0 {
		t.Errorf("unknown name resolved to %#x", addr)
	}

	addr, err = l.GlobalProcAddr("vkSomeCommand")
	if err != nil {
		t.Fatal(err)
	}
	if addr != r.known["vkSomeCommand"] {
		t.Errorf("addr = %#x, want %#x", addr, r.known["vkSomeCommand"])
	}
}

func TestGlobalProcAddrCaches(t *testing.T) {
	r := newFakeResolver("vkCreateInstance", "vkSomeCommand")
	l, err := NewLoader(r.resolve)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if _, err := l.GlobalProcAddr("vkSomeCommand"); err != nil {
			t.Fatal(err)
		}
		if _, err := l.GlobalProcAddr("vkMissingCommand"); err != nil {
			t.Fatal(err)
		}
	}
	if r.calls["vkSomeCommand"] != 1 {
		t.Errorf("resolver hit %d times for a cached name", r.calls["vkSomeCommand"])
	}
	// Misses are cached too; the driver will not grow new entry points.
	if r.calls["vkMissingCommand"] != 1 {
		t.Errorf("resolver hit %d times for a cached miss", r.calls["vkMissingCommand"])
	}
}

func TestLoaderCloseTwice(t *testing.T) {
	r := newFakeResolver("vkCreateInstance")
	l, err := NewLoader(r.resolve)
	if err != nil {
		t.Fatal(err)
	}
	l.Close()
	l.Close()
}

func TestBindProcZero(t *testing.T) {
	var fn func(DeviceHandle) Result
	if bindProc(&fn, 0) {
		t.Error("bindProc bound a zero address")
	}
	if fn != nil {
		t.Error("bindProc touched the pointer for a zero address")
	}
	if RegisterProc(&fn, 0) {
		t.Error("RegisterProc bound a zero address")
	}
}
