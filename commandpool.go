package vk

import "unsafe"

type vkCommandPoolCreateInfo struct {
	sType            StructureType
	pNext            unsafe.Pointer
	flags            CommandPoolCreateFlags
	queueFamilyIndex uint32
}

type vkCommandBufferAllocateInfo struct {
	sType              StructureType
	pNext              unsafe.Pointer
	commandPool        CommandPoolHandle
	level              CommandBufferLevel
	commandBufferCount uint32
}

type CommandPool struct {
	Device        *Device
	QueueFamily   *QueueFamily
	VKCommandPool CommandPoolHandle

	destroyed bool
}

func (d *Device) CreateCommandPool(q *QueueFamily) (*CommandPool, error) {
	return d.CreateCommandPoolWithFlags(q, CommandPoolCreateResetCommandBufferBit|CommandPoolCreateTransientBit)
}

func (d *Device) CreateCommandPoolWithFlags(q *QueueFamily, flags CommandPoolCreateFlags) (*CommandPool, error) {
	raw := vkCommandPoolCreateInfo{
		sType:            StructureTypeCommandPoolCreateInfo,
		flags:            flags,
		queueFamilyIndex: uint32(q.Index),
	}

	var pool CommandPoolHandle
	if err := Error(d.cmds.createCommandPool(d.VKDevice, &raw, d.allocator.handle(), &pool)); err != nil {
		return nil, err
	}

	return &CommandPool{Device: d, QueueFamily: q, VKCommandPool: pool}, nil
}

func (c *CommandPool) AllocateBuffers(count int) ([]*CommandBuffer, error) {
	return c.AllocateBuffersAtLevel(count, CommandBufferLevelPrimary)
}

func (c *CommandPool) AllocateBuffersAtLevel(count int, level CommandBufferLevel) ([]*CommandBuffer, error) {
	info := vkCommandBufferAllocateInfo{
		sType:              StructureTypeCommandBufferAllocateInfo,
		commandPool:        c.VKCommandPool,
		level:              level,
		commandBufferCount: uint32(count),
	}

	cmdBuffers := make([]CommandBufferHandle, count)
	if err := Error(c.Device.cmds.allocateCommandBuffers(c.Device.VKDevice, &info, &cmdBuffers[0])); err != nil {
		return nil, err
	}

	ret := make([]*CommandBuffer, count)
	for i := range ret {
		ret[i] = &CommandBuffer{Device: c.Device, Pool: c, VKCommandBuffer: cmdBuffers[i]}
	}
	return ret, nil
}

func (c *CommandPool) AllocateBuffer() (*CommandBuffer, error) {
	ret, err := c.AllocateBuffers(1)
	if err != nil {
		return nil, err
	}
	return ret[0], nil
}

func (c *CommandPool) FreeBuffers(bs []*CommandBuffer) {
	if len(bs) == 0 {
		return
	}
	b := make([]CommandBufferHandle, len(bs))
	for i := range bs {
		b[i] = bs[i].VKCommandBuffer
	}
	c.Device.cmds.freeCommandBuffers(c.Device.VKDevice, c.VKCommandPool, uint32(len(b)), &b[0])
}

func (c *CommandPool) FreeBuffer(b *CommandBuffer) {
	c.FreeBuffers([]*CommandBuffer{b})
}

// Reset returns all command buffers in the pool to the initial state.
func (c *CommandPool) Reset() error {
	return Error(c.Device.cmds.resetCommandPool(c.Device.VKDevice, c.VKCommandPool, 0))
}

// Destroy destroys the pool and implicitly frees its command buffers.
// Destroying twice is a no-op.
func (c *CommandPool) Destroy() {
	if c.destroyed || c.VKCommandPool == 0 {
		return
	}
	c.destroyed = true
	c.Device.cmds.destroyCommandPool(c.Device.VKDevice, c.VKCommandPool, c.Device.allocator.handle())
	c.VKCommandPool = 0
}
