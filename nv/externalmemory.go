// Package nv wraps VK_NV_external_memory_capabilities: querying whether an
// image format can be backed by memory shared with another API or process.
package nv

import (
	"unsafe"

	"github.com/cockroachdb/errors"

	vk "github.com/discosultan/vk"
)

const (
	ExternalMemoryCapabilitiesExtensionName = "VK_NV_external_memory_capabilities"
	ExternalMemoryExtensionName             = "VK_NV_external_memory"
)

const structureTypeExternalMemoryImageCreateInfo vk.StructureType = 1000056000

type ExternalMemoryHandleTypeFlags uint32

const (
	ExternalMemoryHandleTypeOpaqueWin32Bit    ExternalMemoryHandleTypeFlags = 0x1
	ExternalMemoryHandleTypeOpaqueWin32KmtBit ExternalMemoryHandleTypeFlags = 0x2
	ExternalMemoryHandleTypeD3D11ImageBit     ExternalMemoryHandleTypeFlags = 0x4
	ExternalMemoryHandleTypeD3D11ImageKmtBit  ExternalMemoryHandleTypeFlags = 0x8
)

type ExternalMemoryFeatureFlags uint32

const (
	ExternalMemoryFeatureDedicatedOnlyBit ExternalMemoryFeatureFlags = 0x1
	ExternalMemoryFeatureExportableBit    ExternalMemoryFeatureFlags = 0x2
	ExternalMemoryFeatureImportableBit    ExternalMemoryFeatureFlags = 0x4
)

// ImageFormatProperties mirrors the native image format limits struct.
type ImageFormatProperties struct {
	MaxExtent       vk.Extent3D
	MaxMipLevels    uint32
	MaxArrayLayers  uint32
	SampleCounts    vk.SampleCountFlags
	MaxResourceSize vk.DeviceSize
}

// ExternalImageFormatProperties mirrors the native query result. The struct
// carries no type tag; it is returned by value semantics through a pointer.
type ExternalImageFormatProperties struct {
	ImageFormatProperties         ImageFormatProperties
	ExternalMemoryFeatures        ExternalMemoryFeatureFlags
	ExportFromImportedHandleTypes ExternalMemoryHandleTypeFlags
	CompatibleHandleTypes         ExternalMemoryHandleTypeFlags
}

type externalMemoryCommands struct {
	getPhysicalDeviceExternalImageFormatProperties func(vk.PhysicalDeviceHandle, vk.Format, vk.ImageType, vk.ImageTiling, vk.ImageUsageFlags, vk.ImageCreateFlags, ExternalMemoryHandleTypeFlags, *ExternalImageFormatProperties) vk.Result
}

// ExternalMemoryExtension is the instance level
// VK_NV_external_memory_capabilities wrapper.
type ExternalMemoryExtension struct {
	Instance *vk.Instance

	cmds externalMemoryCommands
}

// NewExternalMemoryExtension resolves the capability query from the
// instance. The instance must have been created with
// VK_NV_external_memory_capabilities enabled.
func NewExternalMemoryExtension(instance *vk.Instance) (*ExternalMemoryExtension, error) {
	e := &ExternalMemoryExtension{Instance: instance}
	addr, _ := instance.ProcAddr("vkGetPhysicalDeviceExternalImageFormatPropertiesNV")
	if !vk.RegisterProc(&e.cmds.getPhysicalDeviceExternalImageFormatProperties, addr) {
		return nil, errors.Wrap(vk.ErrNotSupported, ExternalMemoryCapabilitiesExtensionName)
	}
	return e, nil
}

// ExternalImageFormatProperties queries the external memory limits for an
// image configuration. An ErrorFormatNotSupported result means the combination
// cannot be created at all.
func (e *ExternalMemoryExtension) ExternalImageFormatProperties(p *vk.PhysicalDevice,
	format vk.Format, imageType vk.ImageType, tiling vk.ImageTiling,
	usage vk.ImageUsageFlags, flags vk.ImageCreateFlags,
	handleTypes ExternalMemoryHandleTypeFlags) (ExternalImageFormatProperties, error) {

	var props ExternalImageFormatProperties
	res := e.cmds.getPhysicalDeviceExternalImageFormatProperties(
		p.VKPhysicalDevice, format, imageType, tiling, usage, flags, handleTypes, &props)
	return props, vk.Error(res)
}

type vkExternalMemoryImageCreateInfo struct {
	sType       vk.StructureType
	pNext       unsafe.Pointer
	handleTypes ExternalMemoryHandleTypeFlags
}

// ExternalMemoryImageCreateInfo chains external memory handle types onto
// image creation. Pass the result of Chain as ImageCreateInfo.Next.
type ExternalMemoryImageCreateInfo struct {
	Next        unsafe.Pointer
	HandleTypes ExternalMemoryHandleTypeFlags

	raw vkExternalMemoryImageCreateInfo
}

// Chain builds the native extension struct and returns its pointer for use
// in a pNext chain. The receiver owns the backing memory and must stay
// reachable until the create call returns.
func (info *ExternalMemoryImageCreateInfo) Chain() unsafe.Pointer {
	info.raw = vkExternalMemoryImageCreateInfo{
		sType:       structureTypeExternalMemoryImageCreateInfo,
		pNext:       info.Next,
		handleTypes: info.HandleTypes,
	}
	return unsafe.Pointer(&info.raw)
}
