package vk

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"
	"golang.org/x/exp/slog"
)

// ProcResolver resolves a named native entry point for an instance handle
// (zero for global-level commands). A zero return means the entry point is
// not available; resolvers never fail any harder than that.
//
// The default resolver wraps the driver's vkGetInstanceProcAddr. Tests
// inject their own to stand in for a driver.
type ProcResolver func(instance InstanceHandle, name string) uintptr

// Loader owns the native library handle and the global-level entry points.
// Instance and device level commands are not resolved here; per Vulkan
// loader rules they resolve through the owning Instance or Device.
type Loader struct {
	// Log receives loader diagnostics (library search, resolution misses).
	// Nil disables logging.
	Log *slog.Logger

	resolver ProcResolver
	lib      uintptr
	closed   bool

	mu    sync.Mutex
	cache map[string]uintptr

	createInstance                       func(*vkInstanceCreateInfo, *vkAllocationCallbacks, *InstanceHandle) Result
	enumerateInstanceExtensionProperties func(*byte, *uint32, *ExtensionProperties) Result
	enumerateInstanceLayerProperties     func(*uint32, *LayerProperties) Result
	getInstanceProcAddr                  func(InstanceHandle, string) uintptr
}

// Open loads the system Vulkan library and resolves the global entry points
// through its vkGetInstanceProcAddr.
func Open() (*Loader, error) {
	return OpenWithLogger(nil)
}

// OpenWithLogger is Open with loader diagnostics routed to log.
func OpenWithLogger(log *slog.Logger) (*Loader, error) {
	lib, path, err := openDefaultLibrary()
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.Debug("vulkan library loaded", "path", path)
	}
	return newLoaderFromLibrary(lib, log)
}

// OpenLibrary loads a specific Vulkan library instead of searching the
// platform default locations.
func OpenLibrary(path string) (*Loader, error) {
	if path == "" {
		return nil, errors.New("vk: library path must not be empty")
	}
	lib, err := openLibrary(path)
	if err != nil {
		return nil, err
	}
	return newLoaderFromLibrary(lib, nil)
}

// NewLoader builds a loader around a caller supplied resolver. No library
// is opened; Close is still safe to call.
func NewLoader(resolver ProcResolver) (*Loader, error) {
	if resolver == nil {
		return nil, errors.New("vk: resolver must not be nil")
	}
	l := &Loader{resolver: resolver, cache: map[string]uintptr{}}
	if err := l.resolveGlobals(); err != nil {
		return nil, err
	}
	return l, nil
}

func newLoaderFromLibrary(lib uintptr, log *slog.Logger) (*Loader, error) {
	l := &Loader{Log: log, lib: lib, cache: map[string]uintptr{}}
	if err := registerLibFunc(&l.getInstanceProcAddr, lib, "vkGetInstanceProcAddr"); err != nil {
		closeLibrary(lib)
		return nil, err
	}
	l.resolver = func(instance InstanceHandle, name string) uintptr {
		return l.getInstanceProcAddr(instance, name)
	}
	if err := l.resolveGlobals(); err != nil {
		closeLibrary(lib)
		return nil, err
	}
	return l, nil
}

func (l *Loader) resolveGlobals() error {
	bindProc(&l.createInstance, l.resolver(0, "vkCreateInstance"))
	bindProc(&l.enumerateInstanceExtensionProperties, l.resolver(0, "vkEnumerateInstanceExtensionProperties"))
	bindProc(&l.enumerateInstanceLayerProperties, l.resolver(0, "vkEnumerateInstanceLayerProperties"))
	if l.createInstance == nil {
		return errors.New("vk: driver does not expose vkCreateInstance")
	}
	return nil
}

// Resolver returns the proc resolver backing this loader.
func (l *Loader) Resolver() ProcResolver {
	return l.resolver
}

// GlobalProcAddr resolves a global-level entry point. An unknown name yields
// a zero address and no error; an empty name is an argument error.
func (l *Loader) GlobalProcAddr(name string) (uintptr, error) {
	if name == "" {
		return 0, errors.New("vk: proc name must not be empty")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if addr, ok := l.cache[name]; ok {
		return addr, nil
	}
	addr := l.resolver(0, name)
	if addr == 0 && l.Log != nil {
		l.Log.Debug("global proc not found", "name", name)
	}
	l.cache[name] = addr
	return addr, nil
}

// Close releases the native library handle. Closing twice is a no-op. Any
// instances or devices created through this loader must already be
// destroyed.
func (l *Loader) Close() {
	if l.closed {
		return
	}
	l.closed = true
	if l.lib != 0 {
		closeLibrary(l.lib)
		l.lib = 0
	}
}

// SupportedLayers returns the instance layers the driver advertises.
func (l *Loader) SupportedLayers() ([]string, error) {
	if l.enumerateInstanceLayerProperties == nil {
		return nil, ErrNotSupported
	}
	var count uint32
	if err := Error(l.enumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	props := make([]LayerProperties, count)
	if err := Error(l.enumerateInstanceLayerProperties(&count, &props[0])); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for i := range props {
		names = append(names, props[i].Name())
	}
	return names, nil
}

// SupportedExtensions returns the instance extensions the driver advertises.
func (l *Loader) SupportedExtensions() ([]string, error) {
	if l.enumerateInstanceExtensionProperties == nil {
		return nil, ErrNotSupported
	}
	var count uint32
	if err := Error(l.enumerateInstanceExtensionProperties(nil, &count, nil)); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	props := make([]ExtensionProperties, count)
	if err := Error(l.enumerateInstanceExtensionProperties(nil, &count, &props[0])); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for i := range props {
		names = append(names, props[i].Name())
	}
	return names, nil
}

// bindProc registers a typed trampoline for addr into fptr, leaving fptr nil
// when the entry point is unavailable. Callers treat a nil trampoline as
// "extension not present".
func bindProc(fptr interface{}, addr uintptr) bool {
	if addr == 0 {
		return false
	}
	purego.RegisterFunc(fptr, addr)
	return true
}

// RegisterProc binds a typed Go function pointer to a native entry point
// address. A zero address leaves the pointer untouched and reports false.
// The extension subpackages use this to bind the commands they resolve
// through Instance.ProcAddr and Device.ProcAddr.
func RegisterProc(fptr interface{}, addr uintptr) bool {
	return bindProc(fptr, addr)
}

// registerLibFunc is purego.RegisterLibFunc with the panic on a missing
// symbol converted to an error.
func registerLibFunc(fptr interface{}, lib uintptr, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("vk: %s: %v", name, r)
		}
	}()
	purego.RegisterLibFunc(fptr, lib, name)
	return nil
}

func libNotFoundError(names []string, paths []string) error {
	return errors.Newf("vk: vulkan library not found (tried %v in %v)", names, paths)
}
