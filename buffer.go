package vk

import "unsafe"

// BufferCreateInfo configures buffer creation.
type BufferCreateInfo struct {
	Next               unsafe.Pointer
	Flags              BufferCreateFlags
	Size               DeviceSize
	Usage              BufferUsageFlags
	SharingMode        SharingMode
	QueueFamilyIndices []uint32
}

type vkBufferCreateInfo struct {
	sType                 StructureType
	pNext                 unsafe.Pointer
	flags                 BufferCreateFlags
	size                  DeviceSize
	usage                 BufferUsageFlags
	sharingMode           SharingMode
	queueFamilyIndexCount uint32
	pQueueFamilyIndices   *uint32
}

func (info *BufferCreateInfo) vulkanize(a *allocSet) *vkBufferCreateInfo {
	raw := &vkBufferCreateInfo{
		sType:                 StructureTypeBufferCreateInfo,
		pNext:                 info.Next,
		flags:                 info.Flags,
		size:                  info.Size,
		usage:                 info.Usage,
		sharingMode:           info.SharingMode,
		queueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		pQueueFamilyIndices:   sliceData(a, info.QueueFamilyIndices),
	}
	a.keep(raw)
	return raw
}

func unmarshalBufferCreateInfo(raw *vkBufferCreateInfo) *BufferCreateInfo {
	info := &BufferCreateInfo{
		Next:        raw.pNext,
		Flags:       raw.flags,
		Size:        raw.size,
		Usage:       raw.usage,
		SharingMode: raw.sharingMode,
	}
	if raw.pQueueFamilyIndices != nil && raw.queueFamilyIndexCount > 0 {
		info.QueueFamilyIndices = append(info.QueueFamilyIndices, unsafe.Slice(raw.pQueueFamilyIndices, raw.queueFamilyIndexCount)...)
	}
	return info
}

// Buffer are used to map hunks of data that are then bound to resources used by the pipeline
// and command buffers to render data.
type Buffer struct {
	Device   *Device
	VKBuffer BufferHandle
	Size     uint64

	destroyed bool
}

func (d *Device) CreateBuffer(sizeInBytes uint64) (*Buffer, error) {
	return d.CreateBufferWithOptions(sizeInBytes, BufferUsageStorageBufferBit, SharingModeExclusive)
}

func (d *Device) CreateBufferWithOptions(sizeInBytes uint64, usage BufferUsageFlags, sharing SharingMode) (*Buffer, error) {
	return d.CreateBufferWithCreateInfo(&BufferCreateInfo{
		Size:        DeviceSize(sizeInBytes),
		Usage:       usage,
		SharingMode: sharing,
	})
}

func (d *Device) CreateBufferWithCreateInfo(info *BufferCreateInfo) (*Buffer, error) {
	var a allocSet
	raw := info.vulkanize(&a)

	var buffer BufferHandle
	res := d.cmds.createBuffer(d.VKDevice, raw, d.allocator.handle(), &buffer)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	return &Buffer{Device: d, VKBuffer: buffer, Size: uint64(info.Size)}, nil
}

// CreateAndBindBufferAndMemory creates a buffer, allocates memory matching
// its requirements and binds the two at the given offset.
func (d *Device) CreateAndBindBufferAndMemory(sizeInBytes uint64, offset uint64, usage BufferUsageFlags, props MemoryPropertyFlags, sharing SharingMode) (*Buffer, *DeviceMemory, error) {
	buffer, err := d.CreateBufferWithOptions(sizeInBytes, usage, sharing)
	if err != nil {
		return nil, nil, err
	}

	memory, err := d.AllocateForBuffer(buffer, props)
	if err != nil {
		buffer.Destroy()
		return nil, nil, err
	}

	if err := buffer.Bind(memory, offset); err != nil {
		memory.Destroy()
		buffer.Destroy()
		return nil, nil, err
	}

	return buffer, memory, nil
}

func (b *Buffer) VKMemoryRequirements() MemoryRequirements {
	var memoryRequirements MemoryRequirements
	b.Device.cmds.getBufferMemoryRequirements(b.Device.VKDevice, b.VKBuffer, &memoryRequirements)
	return memoryRequirements
}

func (b *Buffer) DSInfo(offset int) DescriptorBufferInfo {
	return DescriptorBufferInfo{
		Buffer: b.VKBuffer,
		Offset: DeviceSize(offset),
		Range:  DeviceSize(b.Size),
	}
}

func (b *Buffer) AllocationRequirements() AllocationRequirements {
	mr := b.VKMemoryRequirements()
	return AllocationRequirements{
		Size:           int(mr.Size),
		MemoryTypeBits: mr.MemoryTypeBits,
	}
}

func (b *Buffer) Bind(memory *DeviceMemory, offset uint64) error {
	return Error(b.Device.cmds.bindBufferMemory(b.Device.VKDevice, b.VKBuffer, memory.VKDeviceMemory, DeviceSize(offset)))
}

// Destroy destroys the buffer. Destroying twice is a no-op.
func (b *Buffer) Destroy() {
	if b.destroyed || b.VKBuffer == 0 {
		return
	}
	b.destroyed = true
	b.Device.cmds.destroyBuffer(b.Device.VKDevice, b.VKBuffer, b.Device.allocator.handle())
	b.VKBuffer = 0
}
