// Package nn wraps VK_NN_vi_surface: creating a presentable surface from a
// Nintendo Vi window layer.
package nn

import (
	"unsafe"

	"github.com/cockroachdb/errors"

	vk "github.com/discosultan/vk"
	"github.com/discosultan/vk/khr"
)

const ViSurfaceExtensionName = "VK_NN_vi_surface"

const structureTypeViSurfaceCreateInfo vk.StructureType = 1000062000

type ViSurfaceCreateFlags uint32

type vkViSurfaceCreateInfo struct {
	sType  vk.StructureType
	pNext  unsafe.Pointer
	flags  ViSurfaceCreateFlags
	window unsafe.Pointer
}

type viCommands struct {
	createViSurface func(vk.InstanceHandle, *vkViSurfaceCreateInfo, uintptr, *vk.SurfaceHandle) vk.Result
}

// ViSurfaceExtension is the instance level VK_NN_vi_surface wrapper.
type ViSurfaceExtension struct {
	Instance *vk.Instance

	cmds viCommands
}

// NewViSurfaceExtension resolves the surface creation command from the
// instance. The instance must have been created with VK_NN_vi_surface
// enabled.
func NewViSurfaceExtension(instance *vk.Instance) (*ViSurfaceExtension, error) {
	e := &ViSurfaceExtension{Instance: instance}
	addr, _ := instance.ProcAddr("vkCreateViSurfaceNN")
	if !vk.RegisterProc(&e.cmds.createViSurface, addr) {
		return nil, errors.Wrap(vk.ErrNotSupported, ViSurfaceExtensionName)
	}
	return e, nil
}

// CreateSurface creates a surface over the native Vi window layer and hands
// it to the surface extension for the usual capability queries, swapchain
// creation and destruction.
func (e *ViSurfaceExtension) CreateSurface(surfaces *khr.SurfaceExtension, window unsafe.Pointer) (*khr.Surface, error) {
	info := vkViSurfaceCreateInfo{
		sType:  structureTypeViSurfaceCreateInfo,
		window: window,
	}
	var handle vk.SurfaceHandle
	res := e.cmds.createViSurface(e.Instance.VKInstance, &info, 0, &handle)
	if err := vk.Error(res); err != nil {
		return nil, err
	}
	return surfaces.SurfaceFromHandle(handle), nil
}
