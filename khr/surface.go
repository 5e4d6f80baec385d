// Package khr wraps the Khronos-ratified extensions: surfaces and
// swapchains. Commands are resolved from the instance or device at
// extension construction; a driver without the extension yields
// vk.ErrNotSupported.
package khr

import (
	"github.com/cockroachdb/errors"

	vk "github.com/discosultan/vk"
)

// Extension name constants, for use with App.EnableExtension and
// CreateDeviceOptions.EnabledExtensions.
const (
	SurfaceExtensionName   = "VK_KHR_surface"
	SwapchainExtensionName = "VK_KHR_swapchain"
)

type SurfaceTransformFlags uint32

const (
	SurfaceTransformIdentityBit SurfaceTransformFlags = 0x1
)

type CompositeAlphaFlags uint32

const (
	CompositeAlphaOpaqueBit         CompositeAlphaFlags = 0x1
	CompositeAlphaPreMultipliedBit  CompositeAlphaFlags = 0x2
	CompositeAlphaPostMultipliedBit CompositeAlphaFlags = 0x4
	CompositeAlphaInheritBit        CompositeAlphaFlags = 0x8
)

// SurfaceCapabilities mirrors the native surface capability query result.
type SurfaceCapabilities struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           vk.Extent2D
	MinImageExtent          vk.Extent2D
	MaxImageExtent          vk.Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlags
	CurrentTransform        SurfaceTransformFlags
	SupportedCompositeAlpha CompositeAlphaFlags
	SupportedUsageFlags     vk.ImageUsageFlags
}

// SurfaceFormat pairs a pixel format with the color space it presents in.
type SurfaceFormat struct {
	Format     vk.Format
	ColorSpace vk.ColorSpace
}

type SurfaceFormatSlice []SurfaceFormat

func (sf SurfaceFormatSlice) Filter(f func(SurfaceFormat) bool) SurfaceFormatSlice {
	ret := make(SurfaceFormatSlice, 0)
	for _, s := range sf {
		if f(s) {
			ret = append(ret, s)
		}
	}
	return ret
}

type PresentModeSlice []vk.PresentMode

func (pm PresentModeSlice) Filter(mode vk.PresentMode) PresentModeSlice {
	ret := make(PresentModeSlice, 0)
	for _, m := range pm {
		if m == mode {
			ret = append(ret, m)
		}
	}
	return ret
}

type surfaceCommands struct {
	destroySurface                       func(vk.InstanceHandle, vk.SurfaceHandle, uintptr)
	getPhysicalDeviceSurfaceSupport      func(vk.PhysicalDeviceHandle, uint32, vk.SurfaceHandle, *vk.Bool32) vk.Result
	getPhysicalDeviceSurfaceCapabilities func(vk.PhysicalDeviceHandle, vk.SurfaceHandle, *SurfaceCapabilities) vk.Result
	getPhysicalDeviceSurfaceFormats      func(vk.PhysicalDeviceHandle, vk.SurfaceHandle, *uint32, *SurfaceFormat) vk.Result
	getPhysicalDeviceSurfacePresentModes func(vk.PhysicalDeviceHandle, vk.SurfaceHandle, *uint32, *vk.PresentMode) vk.Result
}

// SurfaceExtension is the instance level VK_KHR_surface wrapper.
type SurfaceExtension struct {
	Instance *vk.Instance

	cmds surfaceCommands
}

// NewSurfaceExtension resolves the surface commands from the instance. The
// instance must have been created with VK_KHR_surface enabled.
func NewSurfaceExtension(instance *vk.Instance) (*SurfaceExtension, error) {
	e := &SurfaceExtension{Instance: instance}

	addr := func(name string) uintptr {
		a, _ := instance.ProcAddr(name)
		return a
	}
	ok := vk.RegisterProc(&e.cmds.destroySurface, addr("vkDestroySurfaceKHR"))
	ok = vk.RegisterProc(&e.cmds.getPhysicalDeviceSurfaceSupport, addr("vkGetPhysicalDeviceSurfaceSupportKHR")) && ok
	ok = vk.RegisterProc(&e.cmds.getPhysicalDeviceSurfaceCapabilities, addr("vkGetPhysicalDeviceSurfaceCapabilitiesKHR")) && ok
	ok = vk.RegisterProc(&e.cmds.getPhysicalDeviceSurfaceFormats, addr("vkGetPhysicalDeviceSurfaceFormatsKHR")) && ok
	ok = vk.RegisterProc(&e.cmds.getPhysicalDeviceSurfacePresentModes, addr("vkGetPhysicalDeviceSurfacePresentModesKHR")) && ok
	if !ok {
		return nil, errors.Wrap(vk.ErrNotSupported, SurfaceExtensionName)
	}
	return e, nil
}

// Surface is a presentable window surface. Surfaces are created by the
// windowing layer (e.g. glfw) and wrapped with SurfaceFromHandle, or by the
// platform subpackages.
type Surface struct {
	Extension *SurfaceExtension
	VKSurface vk.SurfaceHandle

	destroyed bool
}

// SurfaceFromHandle wraps a surface handle created outside this package.
func (e *SurfaceExtension) SurfaceFromHandle(h vk.SurfaceHandle) *Surface {
	return &Surface{Extension: e, VKSurface: h}
}

// Destroy destroys the surface. Destroying twice is a no-op.
func (s *Surface) Destroy() {
	if s.destroyed || s.VKSurface == 0 {
		return
	}
	s.destroyed = true
	s.Extension.cmds.destroySurface(s.Extension.Instance.VKInstance, s.VKSurface, 0)
	s.VKSurface = 0
}

// Supports reports whether the queue family can present to the surface.
func (s *Surface) Supports(q *vk.QueueFamily) (bool, error) {
	var supported vk.Bool32
	res := s.Extension.cmds.getPhysicalDeviceSurfaceSupport(q.PhysicalDevice.VKPhysicalDevice, uint32(q.Index), s.VKSurface, &supported)
	if err := vk.Error(res); err != nil {
		return false, err
	}
	return supported == vk.True, nil
}

// FilterPresent narrows queue families down to those able to present to
// the surface.
func (s *Surface) FilterPresent(qfs vk.QueueFamilySlice) vk.QueueFamilySlice {
	return qfs.Filter(func(q *vk.QueueFamily) bool {
		ok, err := s.Supports(q)
		return err == nil && ok
	})
}

// FilterGraphicsAndPresent narrows queue families down to those able to
// both draw and present.
func (s *Surface) FilterGraphicsAndPresent(qfs vk.QueueFamilySlice) vk.QueueFamilySlice {
	return s.FilterPresent(qfs.FilterGraphics())
}

// Capabilities queries the surface capabilities for the physical device.
func (s *Surface) Capabilities(p *vk.PhysicalDevice) (SurfaceCapabilities, error) {
	var caps SurfaceCapabilities
	res := s.Extension.cmds.getPhysicalDeviceSurfaceCapabilities(p.VKPhysicalDevice, s.VKSurface, &caps)
	return caps, vk.Error(res)
}

// Formats queries the surface formats supported by the physical device.
func (s *Surface) Formats(p *vk.PhysicalDevice) (SurfaceFormatSlice, error) {
	var count uint32
	if err := vk.Error(s.Extension.cmds.getPhysicalDeviceSurfaceFormats(p.VKPhysicalDevice, s.VKSurface, &count, nil)); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	formats := make([]SurfaceFormat, count)
	if err := vk.Error(s.Extension.cmds.getPhysicalDeviceSurfaceFormats(p.VKPhysicalDevice, s.VKSurface, &count, &formats[0])); err != nil {
		return nil, err
	}
	return formats[:count], nil
}

// PresentModes queries the present modes supported by the physical device.
func (s *Surface) PresentModes(p *vk.PhysicalDevice) (PresentModeSlice, error) {
	var count uint32
	if err := vk.Error(s.Extension.cmds.getPhysicalDeviceSurfacePresentModes(p.VKPhysicalDevice, s.VKSurface, &count, nil)); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	modes := make([]vk.PresentMode, count)
	if err := vk.Error(s.Extension.cmds.getPhysicalDeviceSurfacePresentModes(p.VKPhysicalDevice, s.VKSurface, &count, &modes[0])); err != nil {
		return nil, err
	}
	return PresentModeSlice(modes[:count]), nil
}
