// Package ext wraps VK_EXT_debug_report: validation layer messages routed
// into a Go callback.
package ext

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"
	"golang.org/x/exp/slog"

	vk "github.com/discosultan/vk"
)

const DebugReportExtensionName = "VK_EXT_debug_report"

type DebugReportFlags uint32

const (
	DebugReportInformationBit        DebugReportFlags = 0x1
	DebugReportWarningBit            DebugReportFlags = 0x2
	DebugReportPerformanceWarningBit DebugReportFlags = 0x4
	DebugReportErrorBit              DebugReportFlags = 0x8
	DebugReportDebugBit              DebugReportFlags = 0x10
)

// DebugReportObjectType identifies the object a message refers to. The
// values follow the native enumeration; only Unknown is named here since
// messages carry the raw value through untouched.
type DebugReportObjectType int32

const DebugReportObjectTypeUnknown DebugReportObjectType = 0

const structureTypeDebugReportCallbackCreateInfo vk.StructureType = 1000011000

// DebugReportCallbackHandle is the non-dispatchable callback handle.
type DebugReportCallbackHandle uint64

// DebugCallback receives one validation message. Returning true asks the
// validation layer to abort the call that triggered the message.
type DebugCallback func(flags DebugReportFlags, objectType DebugReportObjectType,
	object uint64, location uintptr, messageCode int32,
	layerPrefix, message string) bool

type vkDebugReportCallbackCreateInfo struct {
	sType       vk.StructureType
	pNext       unsafe.Pointer
	flags       DebugReportFlags
	pfnCallback uintptr
	pUserData   unsafe.Pointer
}

type debugCommands struct {
	createDebugReportCallback  func(vk.InstanceHandle, *vkDebugReportCallbackCreateInfo, uintptr, *DebugReportCallbackHandle) vk.Result
	destroyDebugReportCallback func(vk.InstanceHandle, DebugReportCallbackHandle, uintptr)
}

// DebugReportExtension is the instance level VK_EXT_debug_report wrapper.
type DebugReportExtension struct {
	Instance *vk.Instance

	cmds debugCommands
}

// NewDebugReportExtension resolves the debug report commands from the
// instance. The instance must have been created with VK_EXT_debug_report
// enabled.
func NewDebugReportExtension(instance *vk.Instance) (*DebugReportExtension, error) {
	e := &DebugReportExtension{Instance: instance}
	addr := func(name string) uintptr {
		a, _ := instance.ProcAddr(name)
		return a
	}
	ok := vk.RegisterProc(&e.cmds.createDebugReportCallback, addr("vkCreateDebugReportCallbackEXT"))
	ok = vk.RegisterProc(&e.cmds.destroyDebugReportCallback, addr("vkDestroyDebugReportCallbackEXT")) && ok
	if !ok {
		return nil, errors.Wrap(vk.ErrNotSupported, DebugReportExtensionName)
	}
	return e, nil
}

// DebugReportCallback is a registered validation message sink.
type DebugReportCallback struct {
	Extension             *DebugReportExtension
	VKDebugReportCallback DebugReportCallbackHandle

	callback   DebugCallback
	trampoline uintptr
	destroyed  bool
}

// CreateCallback registers callback for messages matching flags.
//
// The native trampoline produced by purego.NewCallback is never released;
// callers should register a small fixed number of callbacks per process.
func (e *DebugReportExtension) CreateCallback(flags DebugReportFlags, callback DebugCallback) (*DebugReportCallback, error) {
	c := &DebugReportCallback{Extension: e, callback: callback}

	c.trampoline = purego.NewCallback(func(fl, objectType, object, location, messageCode, layerPrefix, message, userData uintptr) uintptr {
		abort := c.callback(
			DebugReportFlags(fl),
			DebugReportObjectType(objectType),
			uint64(object),
			location,
			int32(messageCode),
			cstring(layerPrefix),
			cstring(message),
		)
		if abort {
			return uintptr(vk.True)
		}
		return uintptr(vk.False)
	})

	info := vkDebugReportCallbackCreateInfo{
		sType:       structureTypeDebugReportCallbackCreateInfo,
		flags:       flags,
		pfnCallback: c.trampoline,
	}
	res := e.cmds.createDebugReportCallback(e.Instance.VKInstance, &info, 0, &c.VKDebugReportCallback)
	if err := vk.Error(res); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateDefaultCallback registers a callback that logs errors and warnings
// through log (slog.Default when nil).
func (e *DebugReportExtension) CreateDefaultCallback(log *slog.Logger) (*DebugReportCallback, error) {
	if log == nil {
		log = slog.Default()
	}
	flags := DebugReportErrorBit | DebugReportWarningBit | DebugReportPerformanceWarningBit
	return e.CreateCallback(flags, func(fl DebugReportFlags, _ DebugReportObjectType,
		_ uint64, _ uintptr, code int32, layerPrefix, message string) bool {

		args := []interface{}{"layer", layerPrefix, "code", code}
		switch {
		case fl&DebugReportErrorBit != 0:
			log.Error(message, args...)
		case fl&DebugReportWarningBit != 0:
			log.Warn(message, args...)
		case fl&DebugReportPerformanceWarningBit != 0:
			log.Warn(message, append(args, "performance", true)...)
		default:
			log.Info(message, args...)
		}
		return false
	})
}

// Destroy unregisters the callback. Destroying twice is a no-op.
func (c *DebugReportCallback) Destroy() {
	if c.destroyed || c.VKDebugReportCallback == 0 {
		return
	}
	c.destroyed = true
	c.Extension.cmds.destroyDebugReportCallback(c.Extension.Instance.VKInstance, c.VKDebugReportCallback, 0)
	c.VKDebugReportCallback = 0
}

// cstring reads a NUL-terminated native string.
func cstring(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
