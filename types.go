package vk

import "unsafe"

// Dispatchable handles are driver pointers; nondispatchable handles are
// 64-bit opaque values. Both are only ever produced by the driver and
// passed back verbatim.
type (
	InstanceHandle       uintptr
	PhysicalDeviceHandle uintptr
	DeviceHandle         uintptr
	QueueHandle          uintptr
	CommandBufferHandle  uintptr

	BufferHandle              uint64
	BufferViewHandle          uint64
	ImageHandle               uint64
	ImageViewHandle           uint64
	SamplerHandle             uint64
	DeviceMemoryHandle        uint64
	ShaderModuleHandle        uint64
	FenceHandle               uint64
	SemaphoreHandle           uint64
	EventHandle               uint64
	QueryPoolHandle           uint64
	DescriptorSetLayoutHandle uint64
	DescriptorPoolHandle      uint64
	DescriptorSetHandle       uint64
	PipelineLayoutHandle      uint64
	PipelineCacheHandle       uint64
	PipelineHandle            uint64
	RenderPassHandle          uint64
	FramebufferHandle         uint64
	CommandPoolHandle         uint64

	// SurfaceHandle lives here rather than in the khr package because
	// platform integrations (glfw, the nn package) mint surfaces that the
	// khr swapchain consumes.
	SurfaceHandle uint64
)

// DeviceSize is a device memory size or offset in bytes.
type DeviceSize uint64

// Bool32 is the 32-bit boolean the native ABI uses.
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// NewBool32 converts a Go bool to the native representation.
func NewBool32(b bool) Bool32 {
	if b {
		return True
	}
	return False
}

func (b Bool32) B() bool { return b != False }

// WholeSize can be passed where a size means "to the end of the allocation".
const WholeSize = ^DeviceSize(0)

// QueueFamilyIgnored marks a barrier as not transferring queue ownership.
const QueueFamilyIgnored = ^uint32(0)

// SubpassExternal refers to commands outside the render pass instance.
const SubpassExternal = ^uint32(0)

// AttachmentUnused marks an attachment reference as unused.
const AttachmentUnused = ^uint32(0)

const RemainingMipLevels = ^uint32(0)
const RemainingArrayLayers = ^uint32(0)

// Version packs a Vulkan version number the way the native API does.
type Version struct {
	Major int
	Minor int
	Patch int
}

// VKVersion returns the packed uint32 representation.
func (v Version) VKVersion() uint32 {
	return uint32(v.Major)<<22 | uint32(v.Minor)<<12 | uint32(v.Patch)
}

// MakeVersion packs major/minor/patch into the native version encoding.
func MakeVersion(major, minor, patch int) uint32 {
	return Version{Major: major, Minor: minor, Patch: patch}.VKVersion()
}

// APIVersion10 is the packed Vulkan 1.0 API version.
var APIVersion10 = MakeVersion(1, 0, 0)

type Extent2D struct {
	Width  uint32
	Height uint32
}

type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

type Offset2D struct {
	X int32
	Y int32
}

type Offset3D struct {
	X int32
	Y int32
	Z int32
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type Viewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// ClearColorValue is the 16-byte native color clear union.
type ClearColorValue [16]byte

func NewClearColorValueFloat(r, g, b, a float32) ClearColorValue {
	var cv ClearColorValue
	f := (*[4]float32)(unsafe.Pointer(&cv))
	f[0], f[1], f[2], f[3] = r, g, b, a
	return cv
}

func NewClearColorValueUint(r, g, b, a uint32) ClearColorValue {
	var cv ClearColorValue
	u := (*[4]uint32)(unsafe.Pointer(&cv))
	u[0], u[1], u[2], u[3] = r, g, b, a
	return cv
}

func NewClearColorValueInt(r, g, b, a int32) ClearColorValue {
	var cv ClearColorValue
	i := (*[4]int32)(unsafe.Pointer(&cv))
	i[0], i[1], i[2], i[3] = r, g, b, a
	return cv
}

// Float32 reads the union back as four floats.
func (cv ClearColorValue) Float32() [4]float32 {
	return *(*[4]float32)(unsafe.Pointer(&cv))
}

type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

// ClearValue is the 16-byte native clear union (color or depth/stencil).
type ClearValue [16]byte

func NewClearValueColor(c ClearColorValue) ClearValue {
	return ClearValue(c)
}

func NewClearValueDepthStencil(depth float32, stencil uint32) ClearValue {
	var cv ClearValue
	ds := (*ClearDepthStencilValue)(unsafe.Pointer(&cv))
	ds.Depth = depth
	ds.Stencil = stencil
	return cv
}

type ComponentMapping struct {
	R ComponentSwizzle
	G ComponentSwizzle
	B ComponentSwizzle
	A ComponentSwizzle
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
}

// MaxMemoryTypes and MaxMemoryHeaps bound the fixed inline arrays in the
// physical device memory properties.
const (
	MaxMemoryTypes            = 32
	MaxMemoryHeaps            = 16
	MaxPhysicalDeviceNameSize = 256
	UUIDSize                  = 16
	MaxExtensionNameSize      = 256
	MaxDescriptionSize        = 256
)

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [MaxMemoryTypes]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [MaxMemoryHeaps]MemoryHeap
}

type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

type FormatProperties struct {
	LinearTilingFeatures  FormatFeatureFlags
	OptimalTilingFeatures FormatFeatureFlags
	BufferFeatures        FormatFeatureFlags
}

type ExtensionProperties struct {
	ExtensionName [MaxExtensionNameSize]byte
	SpecVersion   uint32
}

// Name returns the NUL-terminated extension name as a Go string.
func (e *ExtensionProperties) Name() string {
	return goString(&e.ExtensionName[0])
}

type LayerProperties struct {
	LayerName             [MaxExtensionNameSize]byte
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           [MaxDescriptionSize]byte
}

// Name returns the NUL-terminated layer name as a Go string.
func (l *LayerProperties) Name() string {
	return goString(&l.LayerName[0])
}

type DescriptorBufferInfo struct {
	Buffer BufferHandle
	Offset DeviceSize
	Range  DeviceSize
}

type DescriptorImageInfo struct {
	Sampler     SamplerHandle
	ImageView   ImageViewHandle
	ImageLayout ImageLayout
}

type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

type BufferCopy struct {
	SrcOffset DeviceSize
	DstOffset DeviceSize
	Size      DeviceSize
}

type BufferImageCopy struct {
	BufferOffset      DeviceSize
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ImageCopy struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}
