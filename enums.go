package vk

// Numeric values in this file come from the published Vulkan registry and
// must never be invented or renumbered; the driver ABI depends on them.

// StructureType tags every extensible native structure.
type StructureType int32

const (
	StructureTypeApplicationInfo                      StructureType = 0
	StructureTypeInstanceCreateInfo                   StructureType = 1
	StructureTypeDeviceQueueCreateInfo                StructureType = 2
	StructureTypeDeviceCreateInfo                     StructureType = 3
	StructureTypeSubmitInfo                           StructureType = 4
	StructureTypeMemoryAllocateInfo                   StructureType = 5
	StructureTypeMappedMemoryRange                    StructureType = 6
	StructureTypeBindSparseInfo                       StructureType = 7
	StructureTypeFenceCreateInfo                      StructureType = 8
	StructureTypeSemaphoreCreateInfo                  StructureType = 9
	StructureTypeEventCreateInfo                      StructureType = 10
	StructureTypeQueryPoolCreateInfo                  StructureType = 11
	StructureTypeBufferCreateInfo                     StructureType = 12
	StructureTypeBufferViewCreateInfo                 StructureType = 13
	StructureTypeImageCreateInfo                      StructureType = 14
	StructureTypeImageViewCreateInfo                  StructureType = 15
	StructureTypeShaderModuleCreateInfo               StructureType = 16
	StructureTypePipelineCacheCreateInfo              StructureType = 17
	StructureTypePipelineShaderStageCreateInfo        StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo   StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo StructureType = 20
	StructureTypePipelineTessellationStateCreateInfo  StructureType = 21
	StructureTypePipelineViewportStateCreateInfo      StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo   StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo  StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo    StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo       StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo           StructureType = 28
	StructureTypeComputePipelineCreateInfo            StructureType = 29
	StructureTypePipelineLayoutCreateInfo             StructureType = 30
	StructureTypeSamplerCreateInfo                    StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo        StructureType = 32
	StructureTypeDescriptorPoolCreateInfo             StructureType = 33
	StructureTypeDescriptorSetAllocateInfo            StructureType = 34
	StructureTypeWriteDescriptorSet                   StructureType = 35
	StructureTypeCopyDescriptorSet                    StructureType = 36
	StructureTypeFramebufferCreateInfo                StructureType = 37
	StructureTypeRenderPassCreateInfo                 StructureType = 38
	StructureTypeCommandPoolCreateInfo                StructureType = 39
	StructureTypeCommandBufferAllocateInfo            StructureType = 40
	StructureTypeCommandBufferInheritanceInfo         StructureType = 41
	StructureTypeCommandBufferBeginInfo               StructureType = 42
	StructureTypeRenderPassBeginInfo                  StructureType = 43
	StructureTypeBufferMemoryBarrier                  StructureType = 44
	StructureTypeImageMemoryBarrier                   StructureType = 45
	StructureTypeMemoryBarrier                        StructureType = 46

	StructureTypeSwapchainCreateInfoKHR StructureType = 1000001000
	StructureTypePresentInfoKHR         StructureType = 1000001001

	StructureTypeDebugReportCallbackCreateInfoEXT StructureType = 1000011000

	StructureTypeExternalMemoryImageCreateInfoNV StructureType = 1000056000
	StructureTypeExportMemoryAllocateInfoNV      StructureType = 1000056001

	StructureTypeMemoryAllocateFlagsInfoKHX           StructureType = 1000060000
	StructureTypeDeviceGroupRenderPassBeginInfoKHX    StructureType = 1000060003
	StructureTypeDeviceGroupCommandBufferBeginInfoKHX StructureType = 1000060004
	StructureTypeDeviceGroupSubmitInfoKHX             StructureType = 1000060005

	StructureTypeViSurfaceCreateInfoNN StructureType = 1000062000

	StructureTypePhysicalDeviceGroupPropertiesKHX StructureType = 1000070000
	StructureTypeDeviceGroupDeviceCreateInfoKHX   StructureType = 1000070001

	StructureTypeObjectTableCreateInfoNVX            StructureType = 1000086000
	StructureTypeIndirectCommandsLayoutCreateInfoNVX StructureType = 1000086001
	StructureTypeCmdProcessCommandsInfoNVX           StructureType = 1000086002
	StructureTypeCmdReserveSpaceForCommandsInfoNVX   StructureType = 1000086003
	StructureTypeDeviceGeneratedCommandsLimitsNVX    StructureType = 1000086004
	StructureTypeDeviceGeneratedCommandsFeaturesNVX  StructureType = 1000086005
)

type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGPU PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGPU   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGPU    PhysicalDeviceType = 3
	PhysicalDeviceTypeCPU           PhysicalDeviceType = 4
)

func (t PhysicalDeviceType) String() string {
	switch t {
	case PhysicalDeviceTypeIntegratedGPU:
		return "IntegratedGPU"
	case PhysicalDeviceTypeDiscreteGPU:
		return "DiscreteGPU"
	case PhysicalDeviceTypeVirtualGPU:
		return "VirtualGPU"
	case PhysicalDeviceTypeCPU:
		return "CPU"
	}
	return "Other"
}

// Format is a native pixel/texel format. The full core list is declared so
// golden-value tests can pin the numbering.
type Format int32

const (
	FormatUndefined                Format = 0
	FormatR4G4UnormPack8           Format = 1
	FormatR4G4B4A4UnormPack16      Format = 2
	FormatB4G4R4A4UnormPack16      Format = 3
	FormatR5G6B5UnormPack16        Format = 4
	FormatB5G6R5UnormPack16        Format = 5
	FormatR5G5B5A1UnormPack16      Format = 6
	FormatB5G5R5A1UnormPack16      Format = 7
	FormatA1R5G5B5UnormPack16      Format = 8
	FormatR8Unorm                  Format = 9
	FormatR8Snorm                  Format = 10
	FormatR8Uscaled                Format = 11
	FormatR8Sscaled                Format = 12
	FormatR8Uint                   Format = 13
	FormatR8Sint                   Format = 14
	FormatR8Srgb                   Format = 15
	FormatR8G8Unorm                Format = 16
	FormatR8G8Snorm                Format = 17
	FormatR8G8Uscaled              Format = 18
	FormatR8G8Sscaled              Format = 19
	FormatR8G8Uint                 Format = 20
	FormatR8G8Sint                 Format = 21
	FormatR8G8Srgb                 Format = 22
	FormatR8G8B8Unorm              Format = 23
	FormatR8G8B8Snorm              Format = 24
	FormatR8G8B8Uscaled            Format = 25
	FormatR8G8B8Sscaled            Format = 26
	FormatR8G8B8Uint               Format = 27
	FormatR8G8B8Sint               Format = 28
	FormatR8G8B8Srgb               Format = 29
	FormatB8G8R8Unorm              Format = 30
	FormatB8G8R8Snorm              Format = 31
	FormatB8G8R8Uscaled            Format = 32
	FormatB8G8R8Sscaled            Format = 33
	FormatB8G8R8Uint               Format = 34
	FormatB8G8R8Sint               Format = 35
	FormatB8G8R8Srgb               Format = 36
	FormatR8G8B8A8Unorm            Format = 37
	FormatR8G8B8A8Snorm            Format = 38
	FormatR8G8B8A8Uscaled          Format = 39
	FormatR8G8B8A8Sscaled          Format = 40
	FormatR8G8B8A8Uint             Format = 41
	FormatR8G8B8A8Sint             Format = 42
	FormatR8G8B8A8Srgb             Format = 43
	FormatB8G8R8A8Unorm            Format = 44
	FormatB8G8R8A8Snorm            Format = 45
	FormatB8G8R8A8Uscaled          Format = 46
	FormatB8G8R8A8Sscaled          Format = 47
	FormatB8G8R8A8Uint             Format = 48
	FormatB8G8R8A8Sint             Format = 49
	FormatB8G8R8A8Srgb             Format = 50
	FormatA8B8G8R8UnormPack32      Format = 51
	FormatA8B8G8R8SnormPack32      Format = 52
	FormatA8B8G8R8UscaledPack32    Format = 53
	FormatA8B8G8R8SscaledPack32    Format = 54
	FormatA8B8G8R8UintPack32       Format = 55
	FormatA8B8G8R8SintPack32       Format = 56
	FormatA8B8G8R8SrgbPack32       Format = 57
	FormatA2R10G10B10UnormPack32   Format = 58
	FormatA2R10G10B10SnormPack32   Format = 59
	FormatA2R10G10B10UscaledPack32 Format = 60
	FormatA2R10G10B10SscaledPack32 Format = 61
	FormatA2R10G10B10UintPack32    Format = 62
	FormatA2R10G10B10SintPack32    Format = 63
	FormatA2B10G10R10UnormPack32   Format = 64
	FormatA2B10G10R10SnormPack32   Format = 65
	FormatA2B10G10R10UscaledPack32 Format = 66
	FormatA2B10G10R10SscaledPack32 Format = 67
	FormatA2B10G10R10UintPack32    Format = 68
	FormatA2B10G10R10SintPack32    Format = 69
	FormatR16Unorm                 Format = 70
	FormatR16Snorm                 Format = 71
	FormatR16Uscaled               Format = 72
	FormatR16Sscaled               Format = 73
	FormatR16Uint                  Format = 74
	FormatR16Sint                  Format = 75
	FormatR16Sfloat                Format = 76
	FormatR16G16Unorm              Format = 77
	FormatR16G16Snorm              Format = 78
	FormatR16G16Uscaled            Format = 79
	FormatR16G16Sscaled            Format = 80
	FormatR16G16Uint               Format = 81
	FormatR16G16Sint               Format = 82
	FormatR16G16Sfloat             Format = 83
	FormatR16G16B16Unorm           Format = 84
	FormatR16G16B16Snorm           Format = 85
	FormatR16G16B16Uscaled         Format = 86
	FormatR16G16B16Sscaled         Format = 87
	FormatR16G16B16Uint            Format = 88
	FormatR16G16B16Sint            Format = 89
	FormatR16G16B16Sfloat          Format = 90
	FormatR16G16B16A16Unorm        Format = 91
	FormatR16G16B16A16Snorm        Format = 92
	FormatR16G16B16A16Uscaled      Format = 93
	FormatR16G16B16A16Sscaled      Format = 94
	FormatR16G16B16A16Uint         Format = 95
	FormatR16G16B16A16Sint         Format = 96
	FormatR16G16B16A16Sfloat       Format = 97
	FormatR32Uint                  Format = 98
	FormatR32Sint                  Format = 99
	FormatR32Sfloat                Format = 100
	FormatR32G32Uint               Format = 101
	FormatR32G32Sint               Format = 102
	FormatR32G32Sfloat             Format = 103
	FormatR32G32B32Uint            Format = 104
	FormatR32G32B32Sint            Format = 105
	FormatR32G32B32Sfloat          Format = 106
	FormatR32G32B32A32Uint         Format = 107
	FormatR32G32B32A32Sint         Format = 108
	FormatR32G32B32A32Sfloat       Format = 109
	FormatR64Uint                  Format = 110
	FormatR64Sint                  Format = 111
	FormatR64Sfloat                Format = 112
	FormatR64G64Uint               Format = 113
	FormatR64G64Sint               Format = 114
	FormatR64G64Sfloat             Format = 115
	FormatR64G64B64Uint            Format = 116
	FormatR64G64B64Sint            Format = 117
	FormatR64G64B64Sfloat          Format = 118
	FormatR64G64B64A64Uint         Format = 119
	FormatR64G64B64A64Sint         Format = 120
	FormatR64G64B64A64Sfloat       Format = 121
	FormatB10G11R11UfloatPack32    Format = 122
	FormatE5B9G9R9UfloatPack32     Format = 123
	FormatD16Unorm                 Format = 124
	FormatX8D24UnormPack32         Format = 125
	FormatD32Sfloat                Format = 126
	FormatS8Uint                   Format = 127
	FormatD16UnormS8Uint           Format = 128
	FormatD24UnormS8Uint           Format = 129
	FormatD32SfloatS8Uint          Format = 130
	FormatBc1RgbUnormBlock         Format = 131
	FormatBc1RgbSrgbBlock          Format = 132
	FormatBc1RgbaUnormBlock        Format = 133
	FormatBc1RgbaSrgbBlock         Format = 134
	FormatBc2UnormBlock            Format = 135
	FormatBc2SrgbBlock             Format = 136
	FormatBc3UnormBlock            Format = 137
	FormatBc3SrgbBlock             Format = 138
	FormatBc4UnormBlock            Format = 139
	FormatBc4SnormBlock            Format = 140
	FormatBc5UnormBlock            Format = 141
	FormatBc5SnormBlock            Format = 142
	FormatBc6hUfloatBlock          Format = 143
	FormatBc6hSfloatBlock          Format = 144
	FormatBc7UnormBlock            Format = 145
	FormatBc7SrgbBlock             Format = 146
	FormatEtc2R8G8B8UnormBlock     Format = 147
	FormatEtc2R8G8B8SrgbBlock      Format = 148
	FormatEtc2R8G8B8A1UnormBlock   Format = 149
	FormatEtc2R8G8B8A1SrgbBlock    Format = 150
	FormatEtc2R8G8B8A8UnormBlock   Format = 151
	FormatEtc2R8G8B8A8SrgbBlock    Format = 152
	FormatEacR11UnormBlock         Format = 153
	FormatEacR11SnormBlock         Format = 154
	FormatEacR11G11UnormBlock      Format = 155
	FormatEacR11G11SnormBlock      Format = 156
)

type ColorSpace int32

const (
	ColorSpaceSrgbNonlinear ColorSpace = 0
)

type PresentMode int32

const (
	PresentModeImmediate   PresentMode = 0
	PresentModeMailbox     PresentMode = 1
	PresentModeFifo        PresentMode = 2
	PresentModeFifoRelaxed PresentMode = 3
)

type ImageType int32

const (
	ImageType1D ImageType = 0
	ImageType2D ImageType = 1
	ImageType3D ImageType = 2
)

type ImageViewType int32

const (
	ImageViewType1D        ImageViewType = 0
	ImageViewType2D        ImageViewType = 1
	ImageViewType3D        ImageViewType = 2
	ImageViewTypeCube      ImageViewType = 3
	ImageViewType1DArray   ImageViewType = 4
	ImageViewType2DArray   ImageViewType = 5
	ImageViewTypeCubeArray ImageViewType = 6
)

type ImageTiling int32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

type ImageLayout int32

const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPreinitialized                ImageLayout = 8
	ImageLayoutPresentSrc                    ImageLayout = 1000001002
)

type ComponentSwizzle int32

const (
	ComponentSwizzleIdentity ComponentSwizzle = 0
	ComponentSwizzleZero     ComponentSwizzle = 1
	ComponentSwizzleOne      ComponentSwizzle = 2
	ComponentSwizzleR        ComponentSwizzle = 3
	ComponentSwizzleG        ComponentSwizzle = 4
	ComponentSwizzleB        ComponentSwizzle = 5
	ComponentSwizzleA        ComponentSwizzle = 6
)

type SharingMode int32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

type Filter int32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

type SamplerMipmapMode int32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1
)

type SamplerAddressMode int32

const (
	SamplerAddressModeRepeat            SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat    SamplerAddressMode = 1
	SamplerAddressModeClampToEdge       SamplerAddressMode = 2
	SamplerAddressModeClampToBorder     SamplerAddressMode = 3
	SamplerAddressModeMirrorClampToEdge SamplerAddressMode = 4
)

type BorderColor int32

const (
	BorderColorFloatTransparentBlack BorderColor = 0
	BorderColorIntTransparentBlack   BorderColor = 1
	BorderColorFloatOpaqueBlack      BorderColor = 2
	BorderColorIntOpaqueBlack        BorderColor = 3
	BorderColorFloatOpaqueWhite      BorderColor = 4
	BorderColorIntOpaqueWhite        BorderColor = 5
)

type CompareOp int32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

type PrimitiveTopology int32

const (
	PrimitiveTopologyPointList                  PrimitiveTopology = 0
	PrimitiveTopologyLineList                   PrimitiveTopology = 1
	PrimitiveTopologyLineStrip                  PrimitiveTopology = 2
	PrimitiveTopologyTriangleList               PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip              PrimitiveTopology = 4
	PrimitiveTopologyTriangleFan                PrimitiveTopology = 5
	PrimitiveTopologyLineListWithAdjacency      PrimitiveTopology = 6
	PrimitiveTopologyLineStripWithAdjacency     PrimitiveTopology = 7
	PrimitiveTopologyTriangleListWithAdjacency  PrimitiveTopology = 8
	PrimitiveTopologyTriangleStripWithAdjacency PrimitiveTopology = 9
	PrimitiveTopologyPatchList                  PrimitiveTopology = 10
)

type PolygonMode int32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

type FrontFace int32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

type StencilOp int32

const (
	StencilOpKeep              StencilOp = 0
	StencilOpZero              StencilOp = 1
	StencilOpReplace           StencilOp = 2
	StencilOpIncrementAndClamp StencilOp = 3
	StencilOpDecrementAndClamp StencilOp = 4
	StencilOpInvert            StencilOp = 5
	StencilOpIncrementAndWrap  StencilOp = 6
	StencilOpDecrementAndWrap  StencilOp = 7
)

type LogicOp int32

const (
	LogicOpClear        LogicOp = 0
	LogicOpAnd          LogicOp = 1
	LogicOpAndReverse   LogicOp = 2
	LogicOpCopy         LogicOp = 3
	LogicOpAndInverted  LogicOp = 4
	LogicOpNoOp         LogicOp = 5
	LogicOpXor          LogicOp = 6
	LogicOpOr           LogicOp = 7
	LogicOpNor          LogicOp = 8
	LogicOpEquivalent   LogicOp = 9
	LogicOpInvert       LogicOp = 10
	LogicOpOrReverse    LogicOp = 11
	LogicOpCopyInverted LogicOp = 12
	LogicOpOrInverted   LogicOp = 13
	LogicOpNand         LogicOp = 14
	LogicOpSet          LogicOp = 15
)

type BlendFactor int32

const (
	BlendFactorZero                  BlendFactor = 0
	BlendFactorOne                   BlendFactor = 1
	BlendFactorSrcColor              BlendFactor = 2
	BlendFactorOneMinusSrcColor      BlendFactor = 3
	BlendFactorDstColor              BlendFactor = 4
	BlendFactorOneMinusDstColor      BlendFactor = 5
	BlendFactorSrcAlpha              BlendFactor = 6
	BlendFactorOneMinusSrcAlpha      BlendFactor = 7
	BlendFactorDstAlpha              BlendFactor = 8
	BlendFactorOneMinusDstAlpha      BlendFactor = 9
	BlendFactorConstantColor         BlendFactor = 10
	BlendFactorOneMinusConstantColor BlendFactor = 11
	BlendFactorConstantAlpha         BlendFactor = 12
	BlendFactorOneMinusConstantAlpha BlendFactor = 13
	BlendFactorSrcAlphaSaturate      BlendFactor = 14
	BlendFactorSrc1Color             BlendFactor = 15
	BlendFactorOneMinusSrc1Color     BlendFactor = 16
	BlendFactorSrc1Alpha             BlendFactor = 17
	BlendFactorOneMinusSrc1Alpha     BlendFactor = 18
)

type BlendOp int32

const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

type DynamicState int32

const (
	DynamicStateViewport           DynamicState = 0
	DynamicStateScissor            DynamicState = 1
	DynamicStateLineWidth          DynamicState = 2
	DynamicStateDepthBias          DynamicState = 3
	DynamicStateBlendConstants     DynamicState = 4
	DynamicStateDepthBounds        DynamicState = 5
	DynamicStateStencilCompareMask DynamicState = 6
	DynamicStateStencilWriteMask   DynamicState = 7
	DynamicStateStencilReference   DynamicState = 8
)

type VertexInputRate int32

const (
	VertexInputRateVertex   VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1
)

type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

type PipelineBindPoint int32

const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

type CommandBufferLevel int32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

type IndexType int32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

type SubpassContents int32

const (
	SubpassContentsInline                  SubpassContents = 0
	SubpassContentsSecondaryCommandBuffers SubpassContents = 1
)

type DescriptorType int32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeUniformBufferDynamic DescriptorType = 8
	DescriptorTypeStorageBufferDynamic DescriptorType = 9
	DescriptorTypeInputAttachment      DescriptorType = 10
)

type QueryType int32

const (
	QueryTypeOcclusion          QueryType = 0
	QueryTypePipelineStatistics QueryType = 1
	QueryTypeTimestamp          QueryType = 2
)

type SystemAllocationScope int32

const (
	SystemAllocationScopeCommand  SystemAllocationScope = 0
	SystemAllocationScopeObject   SystemAllocationScope = 1
	SystemAllocationScopeCache    SystemAllocationScope = 2
	SystemAllocationScopeDevice   SystemAllocationScope = 3
	SystemAllocationScopeInstance SystemAllocationScope = 4
)
