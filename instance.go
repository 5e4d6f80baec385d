package vk

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// ApplicationInfo identifies the application and the API version it targets.
type ApplicationInfo struct {
	Next               unsafe.Pointer
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
}

type vkApplicationInfo struct {
	sType              StructureType
	pNext              unsafe.Pointer
	pApplicationName   *byte
	applicationVersion uint32
	pEngineName        *byte
	engineVersion      uint32
	apiVersion         uint32
}

func (info *ApplicationInfo) vulkanize(a *allocSet) *vkApplicationInfo {
	raw := &vkApplicationInfo{
		sType:              StructureTypeApplicationInfo,
		pNext:              info.Next,
		applicationVersion: info.ApplicationVersion,
		engineVersion:      info.EngineVersion,
		apiVersion:         info.APIVersion,
	}
	if info.ApplicationName != "" {
		raw.pApplicationName = a.cstring(info.ApplicationName)
	}
	if info.EngineName != "" {
		raw.pEngineName = a.cstring(info.EngineName)
	}
	a.keep(raw)
	return raw
}

func unmarshalApplicationInfo(raw *vkApplicationInfo) *ApplicationInfo {
	if raw == nil {
		return nil
	}
	return &ApplicationInfo{
		Next:               raw.pNext,
		ApplicationName:    goString(raw.pApplicationName),
		ApplicationVersion: raw.applicationVersion,
		EngineName:         goString(raw.pEngineName),
		EngineVersion:      raw.engineVersion,
		APIVersion:         raw.apiVersion,
	}
}

// InstanceCreateInfo configures instance creation.
type InstanceCreateInfo struct {
	Next                  unsafe.Pointer
	Flags                 InstanceCreateFlags
	ApplicationInfo       *ApplicationInfo
	EnabledLayerNames     []string
	EnabledExtensionNames []string
}

type vkInstanceCreateInfo struct {
	sType                   StructureType
	pNext                   unsafe.Pointer
	flags                   InstanceCreateFlags
	pApplicationInfo        *vkApplicationInfo
	enabledLayerCount       uint32
	ppEnabledLayerNames     **byte
	enabledExtensionCount   uint32
	ppEnabledExtensionNames **byte
}

func (info *InstanceCreateInfo) vulkanize(a *allocSet) *vkInstanceCreateInfo {
	raw := &vkInstanceCreateInfo{
		sType:                   StructureTypeInstanceCreateInfo,
		pNext:                   info.Next,
		flags:                   info.Flags,
		enabledLayerCount:       uint32(len(info.EnabledLayerNames)),
		ppEnabledLayerNames:     a.cstrings(info.EnabledLayerNames),
		enabledExtensionCount:   uint32(len(info.EnabledExtensionNames)),
		ppEnabledExtensionNames: a.cstrings(info.EnabledExtensionNames),
	}
	if info.ApplicationInfo != nil {
		raw.pApplicationInfo = info.ApplicationInfo.vulkanize(a)
	}
	a.keep(raw)
	return raw
}

func unmarshalInstanceCreateInfo(raw *vkInstanceCreateInfo) *InstanceCreateInfo {
	return &InstanceCreateInfo{
		Next:                  raw.pNext,
		Flags:                 raw.flags,
		ApplicationInfo:       unmarshalApplicationInfo(raw.pApplicationInfo),
		EnabledLayerNames:     goStrings(raw.ppEnabledLayerNames, raw.enabledLayerCount),
		EnabledExtensionNames: goStrings(raw.ppEnabledExtensionNames, raw.enabledExtensionCount),
	}
}

// App is used to provide information about this specific application to
// Vulkan, plus the layers and extensions it wants enabled.
type App struct {
	// Name the name of the application
	Name string
	// EngineName the name of the engine associated with the application
	EngineName string
	// Version the version of the application
	Version Version
	// APIVersion the expected minimum version of the Vulkan API (i.e. 1.0.0)
	APIVersion Version

	// EnabledLayers the enabled layers
	EnabledLayers []string

	// EnabledExtensions the enabled extensions
	EnabledExtensions []string

	// Allocator optionally routes host allocations for the instance; the
	// same set is reused when the instance is destroyed.
	Allocator *AllocationCallbacks
}

// EnableDebugging turns on the standard validation layer and the debug
// report extension.
func (a *App) EnableDebugging(loader *Loader) error {
	if _, err := a.EnableLayer(loader, "VK_LAYER_KHRONOS_validation"); err != nil {
		return err
	}
	a.EnableExtension("VK_EXT_debug_report")
	return nil
}

// EnableLayer enables a specific layer, verifying the driver supports it.
func (a *App) EnableLayer(loader *Loader, layer string) (*App, error) {
	layers, err := loader.SupportedLayers()
	if err != nil {
		return a, fmt.Errorf("error getting supported layers: %w", err)
	}
	for _, l := range layers {
		if l == layer {
			a.EnabledLayers = append(a.EnabledLayers, layer)
			return a, nil
		}
	}
	return a, fmt.Errorf("validation layer '%s' not found", layer)
}

// EnableExtension enables an extension for use by the application.
func (a *App) EnableExtension(extension string) *App {
	a.EnabledExtensions = append(a.EnabledExtensions, extension)
	return a
}

// CreateInfo builds the instance create info for this application.
func (a *App) CreateInfo() *InstanceCreateInfo {
	if a.APIVersion.Major < 1 {
		a.APIVersion.Major = 1
	}
	return &InstanceCreateInfo{
		ApplicationInfo: &ApplicationInfo{
			ApplicationName:    a.Name,
			ApplicationVersion: a.Version.VKVersion(),
			EngineName:         a.EngineName,
			APIVersion:         a.APIVersion.VKVersion(),
		},
		EnabledLayerNames:     a.EnabledLayers,
		EnabledExtensionNames: a.EnabledExtensions,
	}
}

// CreateInstance creates the Vulkan instance for this application.
func (a *App) CreateInstance(loader *Loader) (*Instance, error) {
	return loader.CreateInstance(a.CreateInfo(), a.Allocator)
}

// Instance is an instance of the Vulkan subsystem. Instance level commands
// are resolved once at creation and cached on the instance.
type Instance struct {
	// VKInstance is the native Vulkan instance handle
	VKInstance InstanceHandle
	Loader     *Loader

	allocator *AllocationCallbacks
	destroyed bool

	mu    sync.Mutex
	cache map[string]uintptr
	cmds  instanceCommands
}

// instanceCommands is the per-instance trampoline table. Entries stay nil
// when the driver does not expose the command.
type instanceCommands struct {
	destroyInstance                        func(InstanceHandle, *vkAllocationCallbacks)
	enumeratePhysicalDevices               func(InstanceHandle, *uint32, *PhysicalDeviceHandle) Result
	getPhysicalDeviceProperties            func(PhysicalDeviceHandle, *PhysicalDeviceProperties)
	getPhysicalDeviceFeatures              func(PhysicalDeviceHandle, *PhysicalDeviceFeatures)
	getPhysicalDeviceMemoryProperties      func(PhysicalDeviceHandle, *PhysicalDeviceMemoryProperties)
	getPhysicalDeviceQueueFamilyProperties func(PhysicalDeviceHandle, *uint32, *QueueFamilyProperties)
	getPhysicalDeviceFormatProperties      func(PhysicalDeviceHandle, Format, *FormatProperties)
	enumerateDeviceExtensionProperties     func(PhysicalDeviceHandle, *byte, *uint32, *ExtensionProperties) Result
	enumerateDeviceLayerProperties         func(PhysicalDeviceHandle, *uint32, *LayerProperties) Result
	createDevice                           func(PhysicalDeviceHandle, *vkDeviceCreateInfo, *vkAllocationCallbacks, *DeviceHandle) Result
	getDeviceProcAddr                      func(DeviceHandle, string) uintptr
}

func (i *Instance) resolveCommands() {
	r := i.Loader.resolver
	h := i.VKInstance
	bindProc(&i.cmds.destroyInstance, r(h, "vkDestroyInstance"))
	bindProc(&i.cmds.enumeratePhysicalDevices, r(h, "vkEnumeratePhysicalDevices"))
	bindProc(&i.cmds.getPhysicalDeviceProperties, r(h, "vkGetPhysicalDeviceProperties"))
	bindProc(&i.cmds.getPhysicalDeviceFeatures, r(h, "vkGetPhysicalDeviceFeatures"))
	bindProc(&i.cmds.getPhysicalDeviceMemoryProperties, r(h, "vkGetPhysicalDeviceMemoryProperties"))
	bindProc(&i.cmds.getPhysicalDeviceQueueFamilyProperties, r(h, "vkGetPhysicalDeviceQueueFamilyProperties"))
	bindProc(&i.cmds.getPhysicalDeviceFormatProperties, r(h, "vkGetPhysicalDeviceFormatProperties"))
	bindProc(&i.cmds.enumerateDeviceExtensionProperties, r(h, "vkEnumerateDeviceExtensionProperties"))
	bindProc(&i.cmds.enumerateDeviceLayerProperties, r(h, "vkEnumerateDeviceLayerProperties"))
	bindProc(&i.cmds.createDevice, r(h, "vkCreateDevice"))
	bindProc(&i.cmds.getDeviceProcAddr, r(h, "vkGetDeviceProcAddr"))
}

// CreateInstance creates an instance and resolves its command table.
func (l *Loader) CreateInstance(info *InstanceCreateInfo, allocator *AllocationCallbacks) (*Instance, error) {
	if info == nil {
		return nil, errors.New("vk: instance create info must not be nil")
	}
	var a allocSet
	raw := info.vulkanize(&a)

	instance := &Instance{Loader: l, allocator: allocator, cache: map[string]uintptr{}}
	res := l.createInstance(raw, allocator.handle(), &instance.VKInstance)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}
	instance.resolveCommands()
	return instance, nil
}

// ProcAddr resolves an instance level entry point, caching the result per
// instance. An unknown name yields a zero address and no error; an empty
// name is an argument error.
func (i *Instance) ProcAddr(name string) (uintptr, error) {
	if name == "" {
		return 0, errors.New("vk: proc name must not be empty")
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if addr, ok := i.cache[name]; ok {
		return addr, nil
	}
	addr := i.Loader.resolver(i.VKInstance, name)
	i.cache[name] = addr
	return addr, nil
}

// PhysicalDevices returns the physical devices known to this instance.
func (i *Instance) PhysicalDevices() ([]*PhysicalDevice, error) {
	var count uint32
	if err := Error(i.cmds.enumeratePhysicalDevices(i.VKInstance, &count, nil)); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	handles := make([]PhysicalDeviceHandle, count)
	if err := Error(i.cmds.enumeratePhysicalDevices(i.VKInstance, &count, &handles[0])); err != nil {
		return nil, err
	}

	ret := make([]*PhysicalDevice, count)
	for n, h := range handles {
		pd := &PhysicalDevice{Instance: i, VKPhysicalDevice: h}
		i.cmds.getPhysicalDeviceProperties(h, &pd.VKPhysicalDeviceProperties)
		pd.DeviceName = pd.VKPhysicalDeviceProperties.Name()
		ret[n] = pd
	}
	return ret, nil
}

// Destroy destroys the instance. All child objects must already be gone.
// Destroying twice is a no-op.
func (i *Instance) Destroy() error {
	if i.destroyed || i.VKInstance == 0 {
		return nil
	}
	i.destroyed = true
	if i.cmds.destroyInstance != nil {
		i.cmds.destroyInstance(i.VKInstance, i.allocator.handle())
	}
	i.VKInstance = 0
	return nil
}
