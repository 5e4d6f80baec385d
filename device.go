package vk

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// DeviceQueueCreateInfo requests queues from one family.
type DeviceQueueCreateInfo struct {
	Next             unsafe.Pointer
	Flags            DeviceQueueCreateFlags
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

type vkDeviceQueueCreateInfo struct {
	sType            StructureType
	pNext            unsafe.Pointer
	flags            DeviceQueueCreateFlags
	queueFamilyIndex uint32
	queueCount       uint32
	pQueuePriorities *float32
}

func (info *DeviceQueueCreateInfo) vulkanize(a *allocSet) vkDeviceQueueCreateInfo {
	return vkDeviceQueueCreateInfo{
		sType:            StructureTypeDeviceQueueCreateInfo,
		pNext:            info.Next,
		flags:            info.Flags,
		queueFamilyIndex: info.QueueFamilyIndex,
		queueCount:       uint32(len(info.QueuePriorities)),
		pQueuePriorities: sliceData(a, info.QueuePriorities),
	}
}

func unmarshalDeviceQueueCreateInfo(raw *vkDeviceQueueCreateInfo) DeviceQueueCreateInfo {
	info := DeviceQueueCreateInfo{
		Next:             raw.pNext,
		Flags:            raw.flags,
		QueueFamilyIndex: raw.queueFamilyIndex,
	}
	if raw.pQueuePriorities != nil && raw.queueCount > 0 {
		info.QueuePriorities = append(info.QueuePriorities, unsafe.Slice(raw.pQueuePriorities, raw.queueCount)...)
	}
	return info
}

// DeviceCreateInfo configures logical device creation.
type DeviceCreateInfo struct {
	Next                  unsafe.Pointer
	Flags                 DeviceCreateFlags
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledLayerNames     []string
	EnabledExtensionNames []string
	EnabledFeatures       *PhysicalDeviceFeatures
}

type vkDeviceCreateInfo struct {
	sType                   StructureType
	pNext                   unsafe.Pointer
	flags                   DeviceCreateFlags
	queueCreateInfoCount    uint32
	pQueueCreateInfos       *vkDeviceQueueCreateInfo
	enabledLayerCount       uint32
	ppEnabledLayerNames     **byte
	enabledExtensionCount   uint32
	ppEnabledExtensionNames **byte
	pEnabledFeatures        *PhysicalDeviceFeatures
}

func (info *DeviceCreateInfo) vulkanize(a *allocSet) *vkDeviceCreateInfo {
	var queues []vkDeviceQueueCreateInfo
	for i := range info.QueueCreateInfos {
		queues = append(queues, info.QueueCreateInfos[i].vulkanize(a))
	}
	raw := &vkDeviceCreateInfo{
		sType:                   StructureTypeDeviceCreateInfo,
		pNext:                   info.Next,
		flags:                   info.Flags,
		queueCreateInfoCount:    uint32(len(queues)),
		pQueueCreateInfos:       sliceData(a, queues),
		enabledLayerCount:       uint32(len(info.EnabledLayerNames)),
		ppEnabledLayerNames:     a.cstrings(info.EnabledLayerNames),
		enabledExtensionCount:   uint32(len(info.EnabledExtensionNames)),
		ppEnabledExtensionNames: a.cstrings(info.EnabledExtensionNames),
	}
	if info.EnabledFeatures != nil {
		features := *info.EnabledFeatures
		a.keep(&features)
		raw.pEnabledFeatures = &features
	}
	a.keep(raw)
	return raw
}

func unmarshalDeviceCreateInfo(raw *vkDeviceCreateInfo) *DeviceCreateInfo {
	info := &DeviceCreateInfo{
		Next:                  raw.pNext,
		Flags:                 raw.flags,
		EnabledLayerNames:     goStrings(raw.ppEnabledLayerNames, raw.enabledLayerCount),
		EnabledExtensionNames: goStrings(raw.ppEnabledExtensionNames, raw.enabledExtensionCount),
	}
	if raw.pQueueCreateInfos != nil && raw.queueCreateInfoCount > 0 {
		queues := unsafe.Slice(raw.pQueueCreateInfos, raw.queueCreateInfoCount)
		for i := range queues {
			info.QueueCreateInfos = append(info.QueueCreateInfos, unmarshalDeviceQueueCreateInfo(&queues[i]))
		}
	}
	if raw.pEnabledFeatures != nil {
		features := *raw.pEnabledFeatures
		info.EnabledFeatures = &features
	}
	return info
}

// CreateDeviceOptions carries the optional parts of logical device creation.
type CreateDeviceOptions struct {
	EnabledExtensions []string
	EnabledLayers     []string
	EnabledFeatures   *PhysicalDeviceFeatures
	Next              unsafe.Pointer
	Allocator         *AllocationCallbacks
}

// Device is the logical device; almost every other object is created
// through it. Device level commands resolve through vkGetDeviceProcAddr at
// creation, never through the global loader.
type Device struct {
	PhysicalDevice *PhysicalDevice
	VKDevice       DeviceHandle

	allocator *AllocationCallbacks
	destroyed bool

	mu    sync.Mutex
	cache map[string]uintptr
	cmds  deviceCommands

	// retained pins caller memory (extension chain arrays) until the
	// device is destroyed.
	retained []interface{}
}

// CreateLogicalDevice creates a device with one queue of priority 1.0 from
// each given family.
func (p *PhysicalDevice) CreateLogicalDevice(qfs QueueFamilySlice) (*Device, error) {
	return p.CreateLogicalDeviceWithOptions(qfs, nil)
}

func (p *PhysicalDevice) CreateLogicalDeviceWithOptions(qfs QueueFamilySlice, options *CreateDeviceOptions) (*Device, error) {
	info := &DeviceCreateInfo{}
	for _, q := range qfs {
		info.QueueCreateInfos = append(info.QueueCreateInfos, DeviceQueueCreateInfo{
			QueueFamilyIndex: uint32(q.Index),
			QueuePriorities:  []float32{1.0},
		})
	}

	features := p.Features()
	info.EnabledFeatures = &features

	var allocator *AllocationCallbacks
	if options != nil {
		info.EnabledExtensionNames = options.EnabledExtensions
		info.EnabledLayerNames = options.EnabledLayers
		info.Next = options.Next
		if options.EnabledFeatures != nil {
			info.EnabledFeatures = options.EnabledFeatures
		}
		allocator = options.Allocator
	}
	return p.CreateDevice(info, allocator)
}

// CreateDevice creates a logical device from a fully specified create info.
func (p *PhysicalDevice) CreateDevice(info *DeviceCreateInfo, allocator *AllocationCallbacks) (*Device, error) {
	if info == nil {
		return nil, errors.New("vk: device create info must not be nil")
	}
	var a allocSet
	raw := info.vulkanize(&a)

	device := &Device{PhysicalDevice: p, allocator: allocator, cache: map[string]uintptr{}}
	res := p.Instance.cmds.createDevice(p.VKPhysicalDevice, raw, allocator.handle(), &device.VKDevice)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}
	device.resolveCommands()
	return device, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("{ PhysicalDevice: %s }", d.PhysicalDevice)
}

// ProcAddr resolves a device level entry point, caching per device. An
// unknown name yields a zero address and no error; an empty name is an
// argument error.
func (d *Device) ProcAddr(name string) (uintptr, error) {
	if name == "" {
		return 0, errors.New("vk: proc name must not be empty")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if addr, ok := d.cache[name]; ok {
		return addr, nil
	}
	var addr uintptr
	if gdpa := d.PhysicalDevice.Instance.cmds.getDeviceProcAddr; gdpa != nil {
		addr = gdpa(d.VKDevice, name)
	}
	d.cache[name] = addr
	return addr, nil
}

// Retain pins v until the device is destroyed. Extension packages use this
// for chain allocations whose native lifetime matches the device's.
func (d *Device) Retain(v interface{}) {
	d.mu.Lock()
	d.retained = append(d.retained, v)
	d.mu.Unlock()
}

// WaitIdle blocks until the device finished all submitted work.
func (d *Device) WaitIdle() error {
	return Error(d.cmds.deviceWaitIdle(d.VKDevice))
}

// GetQueue returns the first queue of the given family.
func (d *Device) GetQueue(qf *QueueFamily) *Queue {
	return d.GetQueueAt(qf, 0)
}

// GetQueueAt returns the queue at index within the given family.
func (d *Device) GetQueueAt(qf *QueueFamily, index int) *Queue {
	var h QueueHandle
	d.cmds.getDeviceQueue(d.VKDevice, uint32(qf.Index), uint32(index), &h)
	return &Queue{Device: d, QueueFamily: qf, VKQueue: h}
}

// AllocationRequirements is the portion of a memory requirements query the
// allocator helpers care about.
type AllocationRequirements struct {
	Size           int
	MemoryTypeBits uint32
}

// AllocateForBuffer allocates device memory sized for the buffer.
func (d *Device) AllocateForBuffer(b *Buffer, memoryProperties MemoryPropertyFlags) (*DeviceMemory, error) {
	ar := b.AllocationRequirements()
	return d.Allocate(ar.Size, ar.MemoryTypeBits, memoryProperties)
}

// AllocateForImage allocates device memory sized for the image.
func (d *Device) AllocateForImage(i *Image, memoryProperties MemoryPropertyFlags) (*DeviceMemory, error) {
	ar := i.AllocationRequirements()
	return d.Allocate(ar.Size, ar.MemoryTypeBits, memoryProperties)
}

// Allocate allocates device memory from a type matching both the bitmask
// and the requested properties.
func (d *Device) Allocate(sizeInBytes int, memoryTypeBits uint32, memoryProperties MemoryPropertyFlags) (*DeviceMemory, error) {
	typeIndex, err := d.PhysicalDevice.FindMemoryType(memoryTypeBits, memoryProperties)
	if err != nil {
		return nil, err
	}

	allocateInfo := vkMemoryAllocateInfo{
		sType:           StructureTypeMemoryAllocateInfo,
		allocationSize:  DeviceSize(sizeInBytes),
		memoryTypeIndex: typeIndex,
	}

	var mem DeviceMemoryHandle
	if err := Error(d.cmds.allocateMemory(d.VKDevice, &allocateInfo, d.allocator.handle(), &mem)); err != nil {
		return nil, err
	}

	return &DeviceMemory{Device: d, VKDeviceMemory: mem, Size: uint64(sizeInBytes)}, nil
}

// Destroy destroys the device. All child objects must already be gone.
// Destroying twice is a no-op.
func (d *Device) Destroy() error {
	if d.destroyed || d.VKDevice == 0 {
		return nil
	}
	d.destroyed = true
	if d.cmds.destroyDevice != nil {
		d.cmds.destroyDevice(d.VKDevice, d.allocator.handle())
	}
	d.VKDevice = 0
	d.retained = nil
	return nil
}

// deviceCommands is the per-device trampoline table. Entries stay nil when
// the driver does not expose the command.
type deviceCommands struct {
	destroyDevice  func(DeviceHandle, *vkAllocationCallbacks)
	deviceWaitIdle func(DeviceHandle) Result
	getDeviceQueue func(DeviceHandle, uint32, uint32, *QueueHandle)

	allocateMemory               func(DeviceHandle, *vkMemoryAllocateInfo, *vkAllocationCallbacks, *DeviceMemoryHandle) Result
	freeMemory                   func(DeviceHandle, DeviceMemoryHandle, *vkAllocationCallbacks)
	mapMemory                    func(DeviceHandle, DeviceMemoryHandle, DeviceSize, DeviceSize, MemoryMapFlags, *unsafe.Pointer) Result
	unmapMemory                  func(DeviceHandle, DeviceMemoryHandle)
	flushMappedMemoryRanges      func(DeviceHandle, uint32, *vkMappedMemoryRange) Result
	invalidateMappedMemoryRanges func(DeviceHandle, uint32, *vkMappedMemoryRange) Result

	createBuffer                func(DeviceHandle, *vkBufferCreateInfo, *vkAllocationCallbacks, *BufferHandle) Result
	destroyBuffer               func(DeviceHandle, BufferHandle, *vkAllocationCallbacks)
	getBufferMemoryRequirements func(DeviceHandle, BufferHandle, *MemoryRequirements)
	bindBufferMemory            func(DeviceHandle, BufferHandle, DeviceMemoryHandle, DeviceSize) Result
	createBufferView            func(DeviceHandle, *vkBufferViewCreateInfo, *vkAllocationCallbacks, *BufferViewHandle) Result
	destroyBufferView           func(DeviceHandle, BufferViewHandle, *vkAllocationCallbacks)

	createImage                func(DeviceHandle, *vkImageCreateInfo, *vkAllocationCallbacks, *ImageHandle) Result
	destroyImage               func(DeviceHandle, ImageHandle, *vkAllocationCallbacks)
	getImageMemoryRequirements func(DeviceHandle, ImageHandle, *MemoryRequirements)
	bindImageMemory            func(DeviceHandle, ImageHandle, DeviceMemoryHandle, DeviceSize) Result
	createImageView            func(DeviceHandle, *vkImageViewCreateInfo, *vkAllocationCallbacks, *ImageViewHandle) Result
	destroyImageView           func(DeviceHandle, ImageViewHandle, *vkAllocationCallbacks)
	createSampler              func(DeviceHandle, *vkSamplerCreateInfo, *vkAllocationCallbacks, *SamplerHandle) Result
	destroySampler             func(DeviceHandle, SamplerHandle, *vkAllocationCallbacks)

	createShaderModule  func(DeviceHandle, *vkShaderModuleCreateInfo, *vkAllocationCallbacks, *ShaderModuleHandle) Result
	destroyShaderModule func(DeviceHandle, ShaderModuleHandle, *vkAllocationCallbacks)

	createPipelineLayout    func(DeviceHandle, *vkPipelineLayoutCreateInfo, *vkAllocationCallbacks, *PipelineLayoutHandle) Result
	destroyPipelineLayout   func(DeviceHandle, PipelineLayoutHandle, *vkAllocationCallbacks)
	createPipelineCache     func(DeviceHandle, *vkPipelineCacheCreateInfo, *vkAllocationCallbacks, *PipelineCacheHandle) Result
	destroyPipelineCache    func(DeviceHandle, PipelineCacheHandle, *vkAllocationCallbacks)
	getPipelineCacheData    func(DeviceHandle, PipelineCacheHandle, *uintptr, unsafe.Pointer) Result
	createComputePipelines  func(DeviceHandle, PipelineCacheHandle, uint32, *vkComputePipelineCreateInfo, *vkAllocationCallbacks, *PipelineHandle) Result
	createGraphicsPipelines func(DeviceHandle, PipelineCacheHandle, uint32, *vkGraphicsPipelineCreateInfo, *vkAllocationCallbacks, *PipelineHandle) Result
	destroyPipeline         func(DeviceHandle, PipelineHandle, *vkAllocationCallbacks)

	createDescriptorSetLayout  func(DeviceHandle, *vkDescriptorSetLayoutCreateInfo, *vkAllocationCallbacks, *DescriptorSetLayoutHandle) Result
	destroyDescriptorSetLayout func(DeviceHandle, DescriptorSetLayoutHandle, *vkAllocationCallbacks)
	createDescriptorPool       func(DeviceHandle, *vkDescriptorPoolCreateInfo, *vkAllocationCallbacks, *DescriptorPoolHandle) Result
	destroyDescriptorPool      func(DeviceHandle, DescriptorPoolHandle, *vkAllocationCallbacks)
	resetDescriptorPool        func(DeviceHandle, DescriptorPoolHandle, DescriptorPoolResetFlags) Result
	allocateDescriptorSets     func(DeviceHandle, *vkDescriptorSetAllocateInfo, *DescriptorSetHandle) Result
	freeDescriptorSets         func(DeviceHandle, DescriptorPoolHandle, uint32, *DescriptorSetHandle) Result
	updateDescriptorSets       func(DeviceHandle, uint32, *vkWriteDescriptorSet, uint32, *vkCopyDescriptorSet)

	createFence    func(DeviceHandle, *vkFenceCreateInfo, *vkAllocationCallbacks, *FenceHandle) Result
	destroyFence   func(DeviceHandle, FenceHandle, *vkAllocationCallbacks)
	resetFences    func(DeviceHandle, uint32, *FenceHandle) Result
	getFenceStatus func(DeviceHandle, FenceHandle) Result
	waitForFences  func(DeviceHandle, uint32, *FenceHandle, Bool32, uint64) Result

	createSemaphore  func(DeviceHandle, *vkSemaphoreCreateInfo, *vkAllocationCallbacks, *SemaphoreHandle) Result
	destroySemaphore func(DeviceHandle, SemaphoreHandle, *vkAllocationCallbacks)

	createEvent    func(DeviceHandle, *vkEventCreateInfo, *vkAllocationCallbacks, *EventHandle) Result
	destroyEvent   func(DeviceHandle, EventHandle, *vkAllocationCallbacks)
	getEventStatus func(DeviceHandle, EventHandle) Result
	setEvent       func(DeviceHandle, EventHandle) Result
	resetEvent     func(DeviceHandle, EventHandle) Result

	createQueryPool     func(DeviceHandle, *vkQueryPoolCreateInfo, *vkAllocationCallbacks, *QueryPoolHandle) Result
	destroyQueryPool    func(DeviceHandle, QueryPoolHandle, *vkAllocationCallbacks)
	getQueryPoolResults func(DeviceHandle, QueryPoolHandle, uint32, uint32, uintptr, unsafe.Pointer, DeviceSize, QueryResultFlags) Result

	createCommandPool  func(DeviceHandle, *vkCommandPoolCreateInfo, *vkAllocationCallbacks, *CommandPoolHandle) Result
	destroyCommandPool func(DeviceHandle, CommandPoolHandle, *vkAllocationCallbacks)
	resetCommandPool   func(DeviceHandle, CommandPoolHandle, CommandPoolResetFlags) Result

	allocateCommandBuffers func(DeviceHandle, *vkCommandBufferAllocateInfo, *CommandBufferHandle) Result
	freeCommandBuffers     func(DeviceHandle, CommandPoolHandle, uint32, *CommandBufferHandle)
	beginCommandBuffer     func(CommandBufferHandle, *vkCommandBufferBeginInfo) Result
	endCommandBuffer       func(CommandBufferHandle) Result
	resetCommandBuffer     func(CommandBufferHandle, CommandBufferResetFlags) Result

	createRenderPass   func(DeviceHandle, *vkRenderPassCreateInfo, *vkAllocationCallbacks, *RenderPassHandle) Result
	destroyRenderPass  func(DeviceHandle, RenderPassHandle, *vkAllocationCallbacks)
	createFramebuffer  func(DeviceHandle, *vkFramebufferCreateInfo, *vkAllocationCallbacks, *FramebufferHandle) Result
	destroyFramebuffer func(DeviceHandle, FramebufferHandle, *vkAllocationCallbacks)

	queueSubmit   func(QueueHandle, uint32, *vkSubmitInfo, FenceHandle) Result
	queueWaitIdle func(QueueHandle) Result

	cmdBindPipeline       func(CommandBufferHandle, PipelineBindPoint, PipelineHandle)
	cmdBindDescriptorSets func(CommandBufferHandle, PipelineBindPoint, PipelineLayoutHandle, uint32, uint32, *DescriptorSetHandle, uint32, *uint32)
	cmdBindVertexBuffers  func(CommandBufferHandle, uint32, uint32, *BufferHandle, *DeviceSize)
	cmdBindIndexBuffer    func(CommandBufferHandle, BufferHandle, DeviceSize, IndexType)
	cmdSetViewport        func(CommandBufferHandle, uint32, uint32, *Viewport)
	cmdSetScissor         func(CommandBufferHandle, uint32, uint32, *Rect2D)
	cmdSetLineWidth       func(CommandBufferHandle, float32)
	cmdSetBlendConstants  func(CommandBufferHandle, *float32)
	cmdPushConstants      func(CommandBufferHandle, PipelineLayoutHandle, ShaderStageFlags, uint32, uint32, unsafe.Pointer)
	cmdCopyBuffer         func(CommandBufferHandle, BufferHandle, BufferHandle, uint32, *BufferCopy)
	cmdCopyImage          func(CommandBufferHandle, ImageHandle, ImageLayout, ImageHandle, ImageLayout, uint32, *ImageCopy)
	cmdCopyBufferToImage  func(CommandBufferHandle, BufferHandle, ImageHandle, ImageLayout, uint32, *BufferImageCopy)
	cmdCopyImageToBuffer  func(CommandBufferHandle, ImageHandle, ImageLayout, BufferHandle, uint32, *BufferImageCopy)
	cmdClearColorImage    func(CommandBufferHandle, ImageHandle, ImageLayout, *ClearColorValue, uint32, *ImageSubresourceRange)
	cmdPipelineBarrier    func(CommandBufferHandle, PipelineStageFlags, PipelineStageFlags, DependencyFlags, uint32, *vkMemoryBarrier, uint32, *vkBufferMemoryBarrier, uint32, *vkImageMemoryBarrier)
	cmdDispatch           func(CommandBufferHandle, uint32, uint32, uint32)
	cmdDraw               func(CommandBufferHandle, uint32, uint32, uint32, uint32)
	cmdDrawIndexed        func(CommandBufferHandle, uint32, uint32, uint32, int32, uint32)
	cmdBeginRenderPass    func(CommandBufferHandle, *vkRenderPassBeginInfo, SubpassContents)
	cmdNextSubpass        func(CommandBufferHandle, SubpassContents)
	cmdEndRenderPass      func(CommandBufferHandle)
	cmdExecuteCommands    func(CommandBufferHandle, uint32, *CommandBufferHandle)
	cmdResetQueryPool     func(CommandBufferHandle, QueryPoolHandle, uint32, uint32)
	cmdBeginQuery         func(CommandBufferHandle, QueryPoolHandle, uint32, uint32)
	cmdEndQuery           func(CommandBufferHandle, QueryPoolHandle, uint32)
	cmdWriteTimestamp     func(CommandBufferHandle, PipelineStageFlags, QueryPoolHandle, uint32)
}

func (d *Device) resolveCommands() {
	gdpa := d.PhysicalDevice.Instance.cmds.getDeviceProcAddr
	if gdpa == nil {
		return
	}
	h := d.VKDevice
	r := func(name string) uintptr { return gdpa(h, name) }

	bindProc(&d.cmds.destroyDevice, r("vkDestroyDevice"))
	bindProc(&d.cmds.deviceWaitIdle, r("vkDeviceWaitIdle"))
	bindProc(&d.cmds.getDeviceQueue, r("vkGetDeviceQueue"))

	bindProc(&d.cmds.allocateMemory, r("vkAllocateMemory"))
	bindProc(&d.cmds.freeMemory, r("vkFreeMemory"))
	bindProc(&d.cmds.mapMemory, r("vkMapMemory"))
	bindProc(&d.cmds.unmapMemory, r("vkUnmapMemory"))
	bindProc(&d.cmds.flushMappedMemoryRanges, r("vkFlushMappedMemoryRanges"))
	bindProc(&d.cmds.invalidateMappedMemoryRanges, r("vkInvalidateMappedMemoryRanges"))

	bindProc(&d.cmds.createBuffer, r("vkCreateBuffer"))
	bindProc(&d.cmds.destroyBuffer, r("vkDestroyBuffer"))
	bindProc(&d.cmds.getBufferMemoryRequirements, r("vkGetBufferMemoryRequirements"))
	bindProc(&d.cmds.bindBufferMemory, r("vkBindBufferMemory"))
	bindProc(&d.cmds.createBufferView, r("vkCreateBufferView"))
	bindProc(&d.cmds.destroyBufferView, r("vkDestroyBufferView"))

	bindProc(&d.cmds.createImage, r("vkCreateImage"))
	bindProc(&d.cmds.destroyImage, r("vkDestroyImage"))
	bindProc(&d.cmds.getImageMemoryRequirements, r("vkGetImageMemoryRequirements"))
	bindProc(&d.cmds.bindImageMemory, r("vkBindImageMemory"))
	bindProc(&d.cmds.createImageView, r("vkCreateImageView"))
	bindProc(&d.cmds.destroyImageView, r("vkDestroyImageView"))
	bindProc(&d.cmds.createSampler, r("vkCreateSampler"))
	bindProc(&d.cmds.destroySampler, r("vkDestroySampler"))

	bindProc(&d.cmds.createShaderModule, r("vkCreateShaderModule"))
	bindProc(&d.cmds.destroyShaderModule, r("vkDestroyShaderModule"))

	bindProc(&d.cmds.createPipelineLayout, r("vkCreatePipelineLayout"))
	bindProc(&d.cmds.destroyPipelineLayout, r("vkDestroyPipelineLayout"))
	bindProc(&d.cmds.createPipelineCache, r("vkCreatePipelineCache"))
	bindProc(&d.cmds.destroyPipelineCache, r("vkDestroyPipelineCache"))
	bindProc(&d.cmds.getPipelineCacheData, r("vkGetPipelineCacheData"))
	bindProc(&d.cmds.createComputePipelines, r("vkCreateComputePipelines"))
	bindProc(&d.cmds.createGraphicsPipelines, r("vkCreateGraphicsPipelines"))
	bindProc(&d.cmds.destroyPipeline, r("vkDestroyPipeline"))

	bindProc(&d.cmds.createDescriptorSetLayout, r("vkCreateDescriptorSetLayout"))
	bindProc(&d.cmds.destroyDescriptorSetLayout, r("vkDestroyDescriptorSetLayout"))
	bindProc(&d.cmds.createDescriptorPool, r("vkCreateDescriptorPool"))
	bindProc(&d.cmds.destroyDescriptorPool, r("vkDestroyDescriptorPool"))
	bindProc(&d.cmds.resetDescriptorPool, r("vkResetDescriptorPool"))
	bindProc(&d.cmds.allocateDescriptorSets, r("vkAllocateDescriptorSets"))
	bindProc(&d.cmds.freeDescriptorSets, r("vkFreeDescriptorSets"))
	bindProc(&d.cmds.updateDescriptorSets, r("vkUpdateDescriptorSets"))

	bindProc(&d.cmds.createFence, r("vkCreateFence"))
	bindProc(&d.cmds.destroyFence, r("vkDestroyFence"))
	bindProc(&d.cmds.resetFences, r("vkResetFences"))
	bindProc(&d.cmds.getFenceStatus, r("vkGetFenceStatus"))
	bindProc(&d.cmds.waitForFences, r("vkWaitForFences"))

	bindProc(&d.cmds.createSemaphore, r("vkCreateSemaphore"))
	bindProc(&d.cmds.destroySemaphore, r("vkDestroySemaphore"))

	bindProc(&d.cmds.createEvent, r("vkCreateEvent"))
	bindProc(&d.cmds.destroyEvent, r("vkDestroyEvent"))
	bindProc(&d.cmds.getEventStatus, r("vkGetEventStatus"))
	bindProc(&d.cmds.setEvent, r("vkSetEvent"))
	bindProc(&d.cmds.resetEvent, r("vkResetEvent"))

	bindProc(&d.cmds.createQueryPool, r("vkCreateQueryPool"))
	bindProc(&d.cmds.destroyQueryPool, r("vkDestroyQueryPool"))
	bindProc(&d.cmds.getQueryPoolResults, r("vkGetQueryPoolResults"))

	bindProc(&d.cmds.createCommandPool, r("vkCreateCommandPool"))
	bindProc(&d.cmds.destroyCommandPool, r("vkDestroyCommandPool"))
	bindProc(&d.cmds.resetCommandPool, r("vkResetCommandPool"))

	bindProc(&d.cmds.allocateCommandBuffers, r("vkAllocateCommandBuffers"))
	bindProc(&d.cmds.freeCommandBuffers, r("vkFreeCommandBuffers"))
	bindProc(&d.cmds.beginCommandBuffer, r("vkBeginCommandBuffer"))
	bindProc(&d.cmds.endCommandBuffer, r("vkEndCommandBuffer"))
	bindProc(&d.cmds.resetCommandBuffer, r("vkResetCommandBuffer"))

	bindProc(&d.cmds.createRenderPass, r("vkCreateRenderPass"))
	bindProc(&d.cmds.destroyRenderPass, r("vkDestroyRenderPass"))
	bindProc(&d.cmds.createFramebuffer, r("vkCreateFramebuffer"))
	bindProc(&d.cmds.destroyFramebuffer, r("vkDestroyFramebuffer"))

	bindProc(&d.cmds.queueSubmit, r("vkQueueSubmit"))
	bindProc(&d.cmds.queueWaitIdle, r("vkQueueWaitIdle"))

	bindProc(&d.cmds.cmdBindPipeline, r("vkCmdBindPipeline"))
	bindProc(&d.cmds.cmdBindDescriptorSets, r("vkCmdBindDescriptorSets"))
	bindProc(&d.cmds.cmdBindVertexBuffers, r("vkCmdBindVertexBuffers"))
	bindProc(&d.cmds.cmdBindIndexBuffer, r("vkCmdBindIndexBuffer"))
	bindProc(&d.cmds.cmdSetViewport, r("vkCmdSetViewport"))
	bindProc(&d.cmds.cmdSetScissor, r("vkCmdSetScissor"))
	bindProc(&d.cmds.cmdSetLineWidth, r("vkCmdSetLineWidth"))
	bindProc(&d.cmds.cmdSetBlendConstants, r("vkCmdSetBlendConstants"))
	bindProc(&d.cmds.cmdPushConstants, r("vkCmdPushConstants"))
	bindProc(&d.cmds.cmdCopyBuffer, r("vkCmdCopyBuffer"))
	bindProc(&d.cmds.cmdCopyImage, r("vkCmdCopyImage"))
	bindProc(&d.cmds.cmdCopyBufferToImage, r("vkCmdCopyBufferToImage"))
	bindProc(&d.cmds.cmdCopyImageToBuffer, r("vkCmdCopyImageToBuffer"))
	bindProc(&d.cmds.cmdClearColorImage, r("vkCmdClearColorImage"))
	bindProc(&d.cmds.cmdPipelineBarrier, r("vkCmdPipelineBarrier"))
	bindProc(&d.cmds.cmdDispatch, r("vkCmdDispatch"))
	bindProc(&d.cmds.cmdDraw, r("vkCmdDraw"))
	bindProc(&d.cmds.cmdDrawIndexed, r("vkCmdDrawIndexed"))
	bindProc(&d.cmds.cmdBeginRenderPass, r("vkCmdBeginRenderPass"))
	bindProc(&d.cmds.cmdNextSubpass, r("vkCmdNextSubpass"))
	bindProc(&d.cmds.cmdEndRenderPass, r("vkCmdEndRenderPass"))
	bindProc(&d.cmds.cmdExecuteCommands, r("vkCmdExecuteCommands"))
	bindProc(&d.cmds.cmdResetQueryPool, r("vkCmdResetQueryPool"))
	bindProc(&d.cmds.cmdBeginQuery, r("vkCmdBeginQuery"))
	bindProc(&d.cmds.cmdEndQuery, r("vkCmdEndQuery"))
	bindProc(&d.cmds.cmdWriteTimestamp, r("vkCmdWriteTimestamp"))
}
