package vk

type HostBoundBuffer struct {
	HostBuffer       *Buffer
	HostMemory       *DeviceMemory
	HostMemoryOffset uint64
	BufferObject     BufferObject
}

type StagedBoundBuffer struct {
	HostBoundBuffer

	DeviceBuffer       *Buffer
	DeviceMemory       *DeviceMemory
	DeviceMemoryOffset uint64
}

func (d *Device) CreateHostIndexBuffer(bo BufferObject, sharingMode SharingMode) (*HostBoundBuffer, error) {
	return d.createHostBufferWithUsage(bo, BufferUsageIndexBufferBit, sharingMode)
}

func (d *Device) CreateHostVertexBuffer(bo BufferObject, sharingMode SharingMode) (*HostBoundBuffer, error) {
	return d.createHostBufferWithUsage(bo, BufferUsageVertexBufferBit, sharingMode)
}

func (d *Device) createHostBufferWithUsage(bo BufferObject, usage BufferUsageFlags, sharingMode SharingMode) (*HostBoundBuffer, error) {
	buffer, dmemory, err := d.CreateAndBindBufferAndMemory(uint64(len(bo.Bytes())), 0, usage,
		MemoryPropertyHostVisibleBit|MemoryPropertyHostCoherentBit, sharingMode)
	if err != nil {
		return nil, err
	}

	return &HostBoundBuffer{
		HostBuffer:   buffer,
		HostMemory:   dmemory,
		BufferObject: bo,
	}, nil
}

// CreateHostBoundBuffer creates a host visible buffer for the object, with
// usage bits inferred from the interfaces it implements.
func (d *Device) CreateHostBoundBuffer(bo BufferObject) (*HostBoundBuffer, error) {
	var usage BufferUsageFlags
	if _, ok := bo.(VertexSource); ok {
		usage |= BufferUsageVertexBufferBit
	}
	if _, ok := bo.(IndexSource); ok {
		usage |= BufferUsageIndexBufferBit
	}
	if usage == 0 {
		usage = BufferUsageUniformBufferBit
	}
	return d.createHostBufferWithUsage(bo, usage, SharingModeExclusive)
}

// CreateStagedBoundBuffer creates a host visible staging buffer and a
// matching device side buffer for the object.
func (d *Device) CreateStagedBoundBuffer(bo BufferObject) (*StagedBoundBuffer, error) {
	s := &StagedBoundBuffer{}
	s.BufferObject = bo

	size := uint64(len(bo.Bytes()))

	buffer, memory, err := d.CreateAndBindBufferAndMemory(size, 0,
		BufferUsageTransferSrcBit,
		MemoryPropertyHostVisibleBit|MemoryPropertyHostCoherentBit,
		SharingModeExclusive)
	if err != nil {
		return nil, err
	}

	s.HostBuffer = buffer
	s.HostMemory = memory

	usage := BufferUsageTransferDstBit
	if _, ok := bo.(VertexSource); ok {
		usage |= BufferUsageVertexBufferBit
	}
	if _, ok := bo.(IndexSource); ok {
		usage |= BufferUsageIndexBufferBit
	}

	buffer, memory, err = d.CreateAndBindBufferAndMemory(size, 0,
		usage,
		MemoryPropertyDeviceLocalBit,
		SharingModeExclusive)
	if err != nil {
		s.Destroy()
		return nil, err
	}

	s.DeviceBuffer = buffer
	s.DeviceMemory = memory

	return s, nil
}

// Map copies the object's current bytes into the host buffer.
func (h *HostBoundBuffer) Map() error {
	return h.HostMemory.MapCopyUnmap(h.BufferObject.Bytes())
}

func (h *HostBoundBuffer) Destroy() {
	if h.HostMemory != nil {
		h.HostMemory.Destroy()
	}
	if h.HostBuffer != nil {
		h.HostBuffer.Destroy()
	}
}

func (s *StagedBoundBuffer) Destroy() {
	s.HostBoundBuffer.Destroy()
	if s.DeviceMemory != nil {
		s.DeviceMemory.Destroy()
	}
	if s.DeviceBuffer != nil {
		s.DeviceBuffer.Destroy()
	}
}

// CopyBuffer records the staging copy from host to device buffer.
func (cb *CommandBuffer) CopyBuffer(s *StagedBoundBuffer) {
	cb.CmdCopyBuffer(s.HostBuffer, s.DeviceBuffer, BufferCopy{Size: DeviceSize(s.HostBuffer.Size)})
}
