package vk

// Flags is the base 32-bit bitmask the native ABI uses for every *Flags type.
type Flags = uint32

type InstanceCreateFlags uint32

type QueueFlags uint32

const (
	QueueGraphicsBit      QueueFlags = 0x1
	QueueComputeBit       QueueFlags = 0x2
	QueueTransferBit      QueueFlags = 0x4
	QueueSparseBindingBit QueueFlags = 0x8
)

type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 0x1
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 0x2
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 0x4
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 0x8
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x10
)

type MemoryHeapFlags uint32

const (
	MemoryHeapDeviceLocalBit MemoryHeapFlags = 0x1
)

type BufferCreateFlags uint32

const (
	BufferCreateSparseBindingBit   BufferCreateFlags = 0x1
	BufferCreateSparseResidencyBit BufferCreateFlags = 0x2
	BufferCreateSparseAliasedBit   BufferCreateFlags = 0x4
)

type BufferUsageFlags uint32

const (
	BufferUsageTransferSrcBit        BufferUsageFlags = 0x1
	BufferUsageTransferDstBit        BufferUsageFlags = 0x2
	BufferUsageUniformTexelBufferBit BufferUsageFlags = 0x4
	BufferUsageStorageTexelBufferBit BufferUsageFlags = 0x8
	BufferUsageUniformBufferBit      BufferUsageFlags = 0x10
	BufferUsageStorageBufferBit      BufferUsageFlags = 0x20
	BufferUsageIndexBufferBit        BufferUsageFlags = 0x40
	BufferUsageVertexBufferBit       BufferUsageFlags = 0x80
	BufferUsageIndirectBufferBit     BufferUsageFlags = 0x100
)

type ImageCreateFlags uint32

const (
	ImageCreateSparseBindingBit   ImageCreateFlags = 0x1
	ImageCreateSparseResidencyBit ImageCreateFlags = 0x2
	ImageCreateSparseAliasedBit   ImageCreateFlags = 0x4
	ImageCreateMutableFormatBit   ImageCreateFlags = 0x8
	ImageCreateCubeCompatibleBit  ImageCreateFlags = 0x10
)

type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 0x1
	ImageUsageTransferDstBit            ImageUsageFlags = 0x2
	ImageUsageSampledBit                ImageUsageFlags = 0x4
	ImageUsageStorageBit                ImageUsageFlags = 0x8
	ImageUsageColorAttachmentBit        ImageUsageFlags = 0x10
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 0x20
	ImageUsageTransientAttachmentBit    ImageUsageFlags = 0x40
	ImageUsageInputAttachmentBit        ImageUsageFlags = 0x80
)

type ImageAspectFlags uint32

const (
	ImageAspectColorBit    ImageAspectFlags = 0x1
	ImageAspectDepthBit    ImageAspectFlags = 0x2
	ImageAspectStencilBit  ImageAspectFlags = 0x4
	ImageAspectMetadataBit ImageAspectFlags = 0x8
)

type SampleCountFlags uint32

const (
	SampleCount1Bit  SampleCountFlags = 0x1
	SampleCount2Bit  SampleCountFlags = 0x2
	SampleCount4Bit  SampleCountFlags = 0x4
	SampleCount8Bit  SampleCountFlags = 0x8
	SampleCount16Bit SampleCountFlags = 0x10
	SampleCount32Bit SampleCountFlags = 0x20
	SampleCount64Bit SampleCountFlags = 0x40
)

type FormatFeatureFlags uint32

const (
	FormatFeatureSampledImageBit             FormatFeatureFlags = 0x1
	FormatFeatureStorageImageBit             FormatFeatureFlags = 0x2
	FormatFeatureStorageImageAtomicBit       FormatFeatureFlags = 0x4
	FormatFeatureUniformTexelBufferBit       FormatFeatureFlags = 0x8
	FormatFeatureStorageTexelBufferBit       FormatFeatureFlags = 0x10
	FormatFeatureStorageTexelBufferAtomicBit FormatFeatureFlags = 0x20
	FormatFeatureVertexBufferBit             FormatFeatureFlags = 0x40
	FormatFeatureColorAttachmentBit          FormatFeatureFlags = 0x80
	FormatFeatureColorAttachmentBlendBit     FormatFeatureFlags = 0x100
	FormatFeatureDepthStencilAttachmentBit   FormatFeatureFlags = 0x200
	FormatFeatureBlitSrcBit                  FormatFeatureFlags = 0x400
	FormatFeatureBlitDstBit                  FormatFeatureFlags = 0x800
	FormatFeatureSampledImageFilterLinearBit FormatFeatureFlags = 0x1000
)

type FenceCreateFlags uint32

const (
	FenceCreateSignaledBit FenceCreateFlags = 0x1
)

type EventCreateFlags uint32

type SemaphoreCreateFlags uint32

type QueryPoolCreateFlags uint32

type QueryControlFlags uint32

const (
	QueryControlPreciseBit QueryControlFlags = 0x1
)

type QueryResultFlags uint32

const (
	QueryResult64Bit               QueryResultFlags = 0x1
	QueryResultWaitBit             QueryResultFlags = 0x2
	QueryResultWithAvailabilityBit QueryResultFlags = 0x4
	QueryResultPartialBit          QueryResultFlags = 0x8
)

type QueryPipelineStatisticFlags uint32

type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 0x1
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 0x2
)

type CommandPoolResetFlags uint32

const (
	CommandPoolResetReleaseResourcesBit CommandPoolResetFlags = 0x1
)

type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmitBit      CommandBufferUsageFlags = 0x1
	CommandBufferUsageRenderPassContinueBit CommandBufferUsageFlags = 0x2
	CommandBufferUsageSimultaneousUseBit    CommandBufferUsageFlags = 0x4
)

type CommandBufferResetFlags uint32

const (
	CommandBufferResetReleaseResourcesBit CommandBufferResetFlags = 0x1
)

type ShaderStageFlags uint32

const (
	ShaderStageVertexBit                 ShaderStageFlags = 0x1
	ShaderStageTessellationControlBit    ShaderStageFlags = 0x2
	ShaderStageTessellationEvaluationBit ShaderStageFlags = 0x4
	ShaderStageGeometryBit               ShaderStageFlags = 0x8
	ShaderStageFragmentBit               ShaderStageFlags = 0x10
	ShaderStageComputeBit                ShaderStageFlags = 0x20
	ShaderStageAllGraphics               ShaderStageFlags = 0x1F
	ShaderStageAll                       ShaderStageFlags = 0x7FFFFFFF
)

type PipelineCreateFlags uint32

const (
	PipelineCreateDisableOptimizationBit PipelineCreateFlags = 0x1
	PipelineCreateAllowDerivativesBit    PipelineCreateFlags = 0x2
	PipelineCreateDerivativeBit          PipelineCreateFlags = 0x4
)

type PipelineStageFlags uint32

const (
	PipelineStageTopOfPipeBit                    PipelineStageFlags = 0x1
	PipelineStageDrawIndirectBit                 PipelineStageFlags = 0x2
	PipelineStageVertexInputBit                  PipelineStageFlags = 0x4
	PipelineStageVertexShaderBit                 PipelineStageFlags = 0x8
	PipelineStageTessellationControlShaderBit    PipelineStageFlags = 0x10
	PipelineStageTessellationEvaluationShaderBit PipelineStageFlags = 0x20
	PipelineStageGeometryShaderBit               PipelineStageFlags = 0x40
	PipelineStageFragmentShaderBit               PipelineStageFlags = 0x80
	PipelineStageEarlyFragmentTestsBit           PipelineStageFlags = 0x100
	PipelineStageLateFragmentTestsBit            PipelineStageFlags = 0x200
	PipelineStageColorAttachmentOutputBit        PipelineStageFlags = 0x400
	PipelineStageComputeShaderBit                PipelineStageFlags = 0x800
	PipelineStageTransferBit                     PipelineStageFlags = 0x1000
	PipelineStageBottomOfPipeBit                 PipelineStageFlags = 0x2000
	PipelineStageHostBit                         PipelineStageFlags = 0x4000
	PipelineStageAllGraphicsBit                  PipelineStageFlags = 0x8000
	PipelineStageAllCommandsBit                  PipelineStageFlags = 0x10000
)

type AccessFlags uint32

const (
	AccessIndirectCommandReadBit         AccessFlags = 0x1
	AccessIndexReadBit                   AccessFlags = 0x2
	AccessVertexAttributeReadBit         AccessFlags = 0x4
	AccessUniformReadBit                 AccessFlags = 0x8
	AccessInputAttachmentReadBit         AccessFlags = 0x10
	AccessShaderReadBit                  AccessFlags = 0x20
	AccessShaderWriteBit                 AccessFlags = 0x40
	AccessColorAttachmentReadBit         AccessFlags = 0x80
	AccessColorAttachmentWriteBit        AccessFlags = 0x100
	AccessDepthStencilAttachmentReadBit  AccessFlags = 0x200
	AccessDepthStencilAttachmentWriteBit AccessFlags = 0x400
	AccessTransferReadBit                AccessFlags = 0x800
	AccessTransferWriteBit               AccessFlags = 0x1000
	AccessHostReadBit                    AccessFlags = 0x2000
	AccessHostWriteBit                   AccessFlags = 0x4000
	AccessMemoryReadBit                  AccessFlags = 0x8000
	AccessMemoryWriteBit                 AccessFlags = 0x10000
)

type DependencyFlags uint32

const (
	DependencyByRegionBit DependencyFlags = 0x1
)

type DescriptorSetLayoutCreateFlags uint32

type DescriptorPoolCreateFlags uint32

const (
	DescriptorPoolCreateFreeDescriptorSetBit DescriptorPoolCreateFlags = 0x1
)

type DescriptorPoolResetFlags uint32

type AttachmentDescriptionFlags uint32

const (
	AttachmentDescriptionMayAliasBit AttachmentDescriptionFlags = 0x1
)

type SubpassDescriptionFlags uint32

type RenderPassCreateFlags uint32

type FramebufferCreateFlags uint32

type PipelineLayoutCreateFlags uint32

type PipelineCacheCreateFlags uint32

type ShaderModuleCreateFlags uint32

type SamplerCreateFlags uint32

type ImageViewCreateFlags uint32

type BufferViewCreateFlags uint32

type DeviceCreateFlags uint32

type DeviceQueueCreateFlags uint32

type MemoryMapFlags uint32

type ColorComponentFlags uint32

const (
	ColorComponentRBit ColorComponentFlags = 0x1
	ColorComponentGBit ColorComponentFlags = 0x2
	ColorComponentBBit ColorComponentFlags = 0x4
	ColorComponentABit ColorComponentFlags = 0x8
)

type CullModeFlags uint32

const (
	CullModeNone         CullModeFlags = 0
	CullModeFrontBit     CullModeFlags = 0x1
	CullModeBackBit      CullModeFlags = 0x2
	CullModeFrontAndBack CullModeFlags = 0x3
)

type StencilFaceFlags uint32

const (
	StencilFaceFrontBit     StencilFaceFlags = 0x1
	StencilFaceBackBit      StencilFaceFlags = 0x2
	StencilFaceFrontAndBack StencilFaceFlags = 0x3
)

type PipelineVertexInputStateCreateFlags uint32

type PipelineInputAssemblyStateCreateFlags uint32

type PipelineTessellationStateCreateFlags uint32

type PipelineViewportStateCreateFlags uint32

type PipelineRasterizationStateCreateFlags uint32

type PipelineMultisampleStateCreateFlags uint32

type PipelineDepthStencilStateCreateFlags uint32

type PipelineColorBlendStateCreateFlags uint32

type PipelineDynamicStateCreateFlags uint32

type PipelineShaderStageCreateFlags uint32
