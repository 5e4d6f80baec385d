package vk

import "unsafe"

type vkCommandBufferBeginInfo struct {
	sType            StructureType
	pNext            unsafe.Pointer
	flags            CommandBufferUsageFlags
	pInheritanceInfo *vkCommandBufferInheritanceInfo
}

type vkCommandBufferInheritanceInfo struct {
	sType                StructureType
	pNext                unsafe.Pointer
	renderPass           RenderPassHandle
	subpass              uint32
	framebuffer          FramebufferHandle
	occlusionQueryEnable Bool32
	queryFlags           QueryControlFlags
	pipelineStatistics   QueryPipelineStatisticFlags
}

// MemoryBarrier is a global memory dependency.
type MemoryBarrier struct {
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

type vkMemoryBarrier struct {
	sType         StructureType
	pNext         unsafe.Pointer
	srcAccessMask AccessFlags
	dstAccessMask AccessFlags
}

// BufferMemoryBarrier is a memory dependency on a buffer range, optionally
// transferring queue family ownership.
type BufferMemoryBarrier struct {
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              *Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

type vkBufferMemoryBarrier struct {
	sType               StructureType
	pNext               unsafe.Pointer
	srcAccessMask       AccessFlags
	dstAccessMask       AccessFlags
	srcQueueFamilyIndex uint32
	dstQueueFamilyIndex uint32
	buffer              BufferHandle
	offset              DeviceSize
	size                DeviceSize
}

// ImageMemoryBarrier is a memory dependency on an image subresource range,
// optionally changing its layout.
type ImageMemoryBarrier struct {
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               ImageHandle
	SubresourceRange    ImageSubresourceRange
}

type vkImageMemoryBarrier struct {
	sType               StructureType
	pNext               unsafe.Pointer
	srcAccessMask       AccessFlags
	dstAccessMask       AccessFlags
	oldLayout           ImageLayout
	newLayout           ImageLayout
	srcQueueFamilyIndex uint32
	dstQueueFamilyIndex uint32
	image               ImageHandle
	subresourceRange    ImageSubresourceRange
}

type vkRenderPassBeginInfo struct {
	sType           StructureType
	pNext           unsafe.Pointer
	renderPass      RenderPassHandle
	framebuffer     FramebufferHandle
	renderArea      Rect2D
	clearValueCount uint32
	pClearValues    *ClearValue
}

// CommandBuffers describe a sequence of commands that will be executed
// upon being sent to a device queue. Not all available vulkan commands
// are wrapped by this package. It is expected that the calling application
// resolves and calls whatever else it needs through Device.ProcAddr.
type CommandBuffer struct {
	Device          *Device
	Pool            *CommandPool
	VKCommandBuffer CommandBufferHandle
}

// ResetAndRelease will reset this commandbuffer and release the associated resources
func (c *CommandBuffer) ResetAndRelease() error {
	return Error(c.Device.cmds.resetCommandBuffer(c.VKCommandBuffer, CommandBufferResetReleaseResourcesBit))
}

// Reset this command buffer
func (c *CommandBuffer) Reset() error {
	return Error(c.Device.cmds.resetCommandBuffer(c.VKCommandBuffer, 0))
}

// VK is a utility function for accessing the native vulkan command buffer
func (c *CommandBuffer) VK() CommandBufferHandle {
	return c.VKCommandBuffer
}

func (c *CommandBuffer) beginWithFlags(flags CommandBufferUsageFlags, inherit *vkCommandBufferInheritanceInfo) error {
	beginInfo := vkCommandBufferBeginInfo{
		sType:            StructureTypeCommandBufferBeginInfo,
		flags:            flags,
		pInheritanceInfo: inherit,
	}
	return Error(c.Device.cmds.beginCommandBuffer(c.VKCommandBuffer, &beginInfo))
}

// Begin capturing work for this command buffer
func (c *CommandBuffer) Begin() error {
	return c.beginWithFlags(0, nil)
}

// BeginOneTime begins capturing work for this command buffer, with the
// stipulation that it will only be used once (instead of put back in the
// pool of command buffers)
func (c *CommandBuffer) BeginOneTime() error {
	return c.beginWithFlags(CommandBufferUsageOneTimeSubmitBit, nil)
}

// BeginContinueRenderPass begins a secondary command buffer that executes
// entirely inside the given render pass and framebuffer.
func (c *CommandBuffer) BeginContinueRenderPass(renderpass *RenderPass, framebuffer *Framebuffer) error {
	inherit := vkCommandBufferInheritanceInfo{
		sType:       StructureTypeCommandBufferInheritanceInfo,
		renderPass:  renderpass.VKRenderPass,
		framebuffer: framebuffer.VKFramebuffer,
	}
	return c.beginWithFlags(CommandBufferUsageRenderPassContinueBit, &inherit)
}

// End describing work for this command buffer
func (c *CommandBuffer) End() error {
	return Error(c.Device.cmds.endCommandBuffer(c.VKCommandBuffer))
}

func (c *CommandBuffer) CmdBindComputePipeline(p *ComputePipeline) {
	c.Device.cmds.cmdBindPipeline(c.VKCommandBuffer, PipelineBindPointCompute, p.VKPipeline)
}

func (c *CommandBuffer) CmdBindGraphicsPipeline(p *GraphicsPipeline) {
	c.Device.cmds.cmdBindPipeline(c.VKCommandBuffer, PipelineBindPointGraphics, p.VKPipeline)
}

func (c *CommandBuffer) CmdBindDescriptorSets(bindPoint PipelineBindPoint, layout *PipelineLayout, firstSet int, descriptorSets ...*DescriptorSet) {
	sets := make([]DescriptorSetHandle, len(descriptorSets))
	for i := range descriptorSets {
		sets[i] = descriptorSets[i].VKDescriptorSet
	}
	c.Device.cmds.cmdBindDescriptorSets(c.VKCommandBuffer, bindPoint,
		layout.VKPipelineLayout, uint32(firstSet), uint32(len(sets)), &sets[0], 0, nil)
}

func (c *CommandBuffer) CmdBindVertexBuffers(firstBinding int, buffers []*Buffer, offsets []DeviceSize) {
	handles := make([]BufferHandle, len(buffers))
	for i := range buffers {
		handles[i] = buffers[i].VKBuffer
	}
	if offsets == nil {
		offsets = make([]DeviceSize, len(buffers))
	}
	c.Device.cmds.cmdBindVertexBuffers(c.VKCommandBuffer, uint32(firstBinding), uint32(len(handles)), &handles[0], &offsets[0])
}

func (c *CommandBuffer) CmdBindIndexBuffer(buffer *Buffer, offset DeviceSize, indexType IndexType) {
	c.Device.cmds.cmdBindIndexBuffer(c.VKCommandBuffer, buffer.VKBuffer, offset, indexType)
}

func (c *CommandBuffer) CmdSetViewport(viewports ...Viewport) {
	c.Device.cmds.cmdSetViewport(c.VKCommandBuffer, 0, uint32(len(viewports)), &viewports[0])
}

func (c *CommandBuffer) CmdSetScissor(scissors ...Rect2D) {
	c.Device.cmds.cmdSetScissor(c.VKCommandBuffer, 0, uint32(len(scissors)), &scissors[0])
}

func (c *CommandBuffer) CmdSetLineWidth(width float32) {
	c.Device.cmds.cmdSetLineWidth(c.VKCommandBuffer, width)
}

func (c *CommandBuffer) CmdSetBlendConstants(constants [4]float32) {
	c.Device.cmds.cmdSetBlendConstants(c.VKCommandBuffer, &constants[0])
}

func (c *CommandBuffer) CmdPushConstants(layout *PipelineLayout, stages ShaderStageFlags, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	c.Device.cmds.cmdPushConstants(c.VKCommandBuffer, layout.VKPipelineLayout, stages, uint32(offset), uint32(len(data)), unsafe.Pointer(&data[0]))
}

func (c *CommandBuffer) CmdCopyBuffer(src, dst *Buffer, regions ...BufferCopy) {
	if len(regions) == 0 {
		regions = []BufferCopy{{Size: DeviceSize(src.Size)}}
	}
	c.Device.cmds.cmdCopyBuffer(c.VKCommandBuffer, src.VKBuffer, dst.VKBuffer, uint32(len(regions)), &regions[0])
}

func (c *CommandBuffer) CmdCopyImage(src *Image, srcLayout ImageLayout, dst *Image, dstLayout ImageLayout, regions ...ImageCopy) {
	c.Device.cmds.cmdCopyImage(c.VKCommandBuffer, src.VKImage, srcLayout, dst.VKImage, dstLayout, uint32(len(regions)), &regions[0])
}

func (c *CommandBuffer) CmdCopyBufferToImage(src *Buffer, dst *Image, dstLayout ImageLayout, regions ...BufferImageCopy) {
	c.Device.cmds.cmdCopyBufferToImage(c.VKCommandBuffer, src.VKBuffer, dst.VKImage, dstLayout, uint32(len(regions)), &regions[0])
}

func (c *CommandBuffer) CmdCopyImageToBuffer(src *Image, srcLayout ImageLayout, dst *Buffer, regions ...BufferImageCopy) {
	c.Device.cmds.cmdCopyImageToBuffer(c.VKCommandBuffer, src.VKImage, srcLayout, dst.VKBuffer, uint32(len(regions)), &regions[0])
}

func (c *CommandBuffer) CmdClearColorImage(image *Image, layout ImageLayout, color ClearColorValue, ranges ...ImageSubresourceRange) {
	if len(ranges) == 0 {
		ranges = []ImageSubresourceRange{{
			AspectMask: ImageAspectColorBit,
			LevelCount: RemainingMipLevels,
			LayerCount: RemainingArrayLayers,
		}}
	}
	c.Device.cmds.cmdClearColorImage(c.VKCommandBuffer, image.VKImage, layout, &color, uint32(len(ranges)), &ranges[0])
}

// CmdPipelineBarrier records an execution and memory dependency between
// commands before and after it.
func (c *CommandBuffer) CmdPipelineBarrier(srcStage, dstStage PipelineStageFlags, depFlags DependencyFlags,
	memory []MemoryBarrier, buffer []BufferMemoryBarrier, image []ImageMemoryBarrier) {

	var mems []vkMemoryBarrier
	for _, m := range memory {
		mems = append(mems, vkMemoryBarrier{
			sType:         StructureTypeMemoryBarrier,
			srcAccessMask: m.SrcAccessMask,
			dstAccessMask: m.DstAccessMask,
		})
	}
	var bufs []vkBufferMemoryBarrier
	for _, b := range buffer {
		bufs = append(bufs, vkBufferMemoryBarrier{
			sType:               StructureTypeBufferMemoryBarrier,
			srcAccessMask:       b.SrcAccessMask,
			dstAccessMask:       b.DstAccessMask,
			srcQueueFamilyIndex: b.SrcQueueFamilyIndex,
			dstQueueFamilyIndex: b.DstQueueFamilyIndex,
			buffer:              b.Buffer.VKBuffer,
			offset:              b.Offset,
			size:                b.Size,
		})
	}
	var imgs []vkImageMemoryBarrier
	for _, im := range image {
		imgs = append(imgs, vkImageMemoryBarrier{
			sType:               StructureTypeImageMemoryBarrier,
			srcAccessMask:       im.SrcAccessMask,
			dstAccessMask:       im.DstAccessMask,
			oldLayout:           im.OldLayout,
			newLayout:           im.NewLayout,
			srcQueueFamilyIndex: im.SrcQueueFamilyIndex,
			dstQueueFamilyIndex: im.DstQueueFamilyIndex,
			image:               im.Image,
			subresourceRange:    im.SubresourceRange,
		})
	}

	var pm *vkMemoryBarrier
	if len(mems) > 0 {
		pm = &mems[0]
	}
	var pb *vkBufferMemoryBarrier
	if len(bufs) > 0 {
		pb = &bufs[0]
	}
	var pi *vkImageMemoryBarrier
	if len(imgs) > 0 {
		pi = &imgs[0]
	}

	c.Device.cmds.cmdPipelineBarrier(c.VKCommandBuffer, srcStage, dstStage, depFlags,
		uint32(len(mems)), pm, uint32(len(bufs)), pb, uint32(len(imgs)), pi)
}

// TransitionImageLayout records the barrier moving a staged image between
// the undefined, transfer destination and shader read layouts.
func (c *CommandBuffer) TransitionImageLayout(s *StagedBoundImage, oldLayout, newLayout ImageLayout) {
	barrier := ImageMemoryBarrier{
		OldLayout:           oldLayout,
		NewLayout:           newLayout,
		SrcQueueFamilyIndex: QueueFamilyIgnored,
		DstQueueFamilyIndex: QueueFamilyIgnored,
		Image:               s.VKImage,
		SubresourceRange: ImageSubresourceRange{
			AspectMask: ImageAspectColorBit,
			LevelCount: 1,
			LayerCount: 1,
		},
	}

	var sourceStage, destStage PipelineStageFlags

	if oldLayout == ImageLayoutUndefined && newLayout == ImageLayoutTransferDstOptimal {
		barrier.SrcAccessMask = 0
		barrier.DstAccessMask = AccessTransferWriteBit

		sourceStage = PipelineStageTopOfPipeBit
		destStage = PipelineStageTransferBit
	} else if oldLayout == ImageLayoutTransferDstOptimal && newLayout == ImageLayoutShaderReadOnlyOptimal {
		barrier.SrcAccessMask = AccessTransferWriteBit
		barrier.DstAccessMask = AccessShaderReadBit

		sourceStage = PipelineStageTransferBit
		destStage = PipelineStageFragmentShaderBit
	}

	c.CmdPipelineBarrier(sourceStage, destStage, 0, nil, nil, []ImageMemoryBarrier{barrier})
}

// CopyImage records the copy from a staged image's host buffer into the
// device local image.
func (c *CommandBuffer) CopyImage(s *StagedBoundImage) {
	c.Device.cmds.cmdCopyBufferToImage(c.VKCommandBuffer, s.HostBuffer.VKBuffer, s.VKImage, ImageLayoutTransferDstOptimal, 1, &BufferImageCopy{
		ImageSubresource: ImageSubresourceLayers{
			AspectMask: ImageAspectColorBit,
			LayerCount: 1,
		},
		ImageExtent: Extent3D{
			Width: uint32(s.Width), Height: uint32(s.Height), Depth: 1,
		},
	})
}

func (c *CommandBuffer) CmdDispatch(x, y, z int) {
	c.Device.cmds.cmdDispatch(c.VKCommandBuffer, uint32(x), uint32(y), uint32(z))
}

func (c *CommandBuffer) CmdDraw(vertexCount, instanceCount, firstVertex, firstInstance int) {
	c.Device.cmds.cmdDraw(c.VKCommandBuffer, uint32(vertexCount), uint32(instanceCount), uint32(firstVertex), uint32(firstInstance))
}

func (c *CommandBuffer) CmdDrawIndexed(indexCount, instanceCount, firstIndex int, vertexOffset int32, firstInstance int) {
	c.Device.cmds.cmdDrawIndexed(c.VKCommandBuffer, uint32(indexCount), uint32(instanceCount), uint32(firstIndex), vertexOffset, uint32(firstInstance))
}

// CmdBeginRenderPass starts recording into a render pass instance.
func (c *CommandBuffer) CmdBeginRenderPass(rp *RenderPass, fb *Framebuffer, renderArea Rect2D, clearValues []ClearValue, contents SubpassContents) {
	var a allocSet
	info := vkRenderPassBeginInfo{
		sType:           StructureTypeRenderPassBeginInfo,
		renderPass:      rp.VKRenderPass,
		framebuffer:     fb.VKFramebuffer,
		renderArea:      renderArea,
		clearValueCount: uint32(len(clearValues)),
		pClearValues:    sliceData(&a, clearValues),
	}
	c.Device.cmds.cmdBeginRenderPass(c.VKCommandBuffer, &info, contents)
	a.release()
}

func (c *CommandBuffer) CmdNextSubpass(contents SubpassContents) {
	c.Device.cmds.cmdNextSubpass(c.VKCommandBuffer, contents)
}

func (c *CommandBuffer) CmdEndRenderPass() {
	c.Device.cmds.cmdEndRenderPass(c.VKCommandBuffer)
}

// CmdExecuteCommands records secondary command buffers into this one.
func (c *CommandBuffer) CmdExecuteCommands(buffers ...*CommandBuffer) {
	if len(buffers) == 0 {
		return
	}
	handles := make([]CommandBufferHandle, len(buffers))
	for i := range buffers {
		handles[i] = buffers[i].VKCommandBuffer
	}
	c.Device.cmds.cmdExecuteCommands(c.VKCommandBuffer, uint32(len(handles)), &handles[0])
}

func (c *CommandBuffer) CmdResetQueryPool(pool *QueryPool, firstQuery, queryCount uint32) {
	c.Device.cmds.cmdResetQueryPool(c.VKCommandBuffer, pool.VKQueryPool, firstQuery, queryCount)
}

func (c *CommandBuffer) CmdBeginQuery(pool *QueryPool, query uint32, flags QueryControlFlags) {
	c.Device.cmds.cmdBeginQuery(c.VKCommandBuffer, pool.VKQueryPool, query, uint32(flags))
}

func (c *CommandBuffer) CmdEndQuery(pool *QueryPool, query uint32) {
	c.Device.cmds.cmdEndQuery(c.VKCommandBuffer, pool.VKQueryPool, query)
}

func (c *CommandBuffer) CmdWriteTimestamp(stage PipelineStageFlags, pool *QueryPool, query uint32) {
	c.Device.cmds.cmdWriteTimestamp(c.VKCommandBuffer, stage, pool.VKQueryPool, query)
}
