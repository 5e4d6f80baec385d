package vk

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	units "github.com/docker/go-units"
)

type vkMemoryAllocateInfo struct {
	sType           StructureType
	pNext           unsafe.Pointer
	allocationSize  DeviceSize
	memoryTypeIndex uint32
}

type vkMappedMemoryRange struct {
	sType  StructureType
	pNext  unsafe.Pointer
	memory DeviceMemoryHandle
	offset DeviceSize
	size   DeviceSize
}

// DeviceMemory maps to Vulkan DeviceMemory and can either be memory on the host or on the device
type DeviceMemory struct {
	Device         *Device
	VKDeviceMemory DeviceMemoryHandle
	Size           uint64
	MapCount       int32
	Ptr            unsafe.Pointer

	destroyed bool
}

// IsMapped returns true if the device memory is currently mapped
func (d *DeviceMemory) IsMapped() bool {
	return atomic.LoadInt32(&d.MapCount) > 0
}

// Destroy frees this memory. Freeing twice is a no-op.
func (d *DeviceMemory) Destroy() {
	if d.destroyed || d.VKDeviceMemory == 0 {
		return
	}
	d.destroyed = true
	d.Device.cmds.freeMemory(d.Device.VKDevice, d.VKDeviceMemory, d.Device.allocator.handle())
	d.VKDeviceMemory = 0
}

// MapCopyUnmap will map this memory, copy the specified data to it and unmap
func (d *DeviceMemory) MapCopyUnmap(data []byte) error {
	pm, err := d.MapWithSize(len(data))
	if err != nil {
		return err
	}

	copy(ToBytes(pm, len(data)), data)

	d.Unmap()
	return nil
}

// MapWithOffset will map the memory with a certain size and offset
func (d *DeviceMemory) MapWithOffset(size uint64, offset uint64) (unsafe.Pointer, error) {
	var res unsafe.Pointer
	err := Error(d.Device.cmds.mapMemory(d.Device.VKDevice, d.VKDeviceMemory, DeviceSize(offset), DeviceSize(size), 0, &res))
	if err != nil {
		return nil, err
	}
	atomic.AddInt32(&d.MapCount, 1)
	return res, nil
}

// Map will map the entirety of this memory
func (d *DeviceMemory) Map() (unsafe.Pointer, error) {
	res, err := d.MapWithSize(int(d.Size))
	if err != nil {
		return nil, err
	}
	d.Ptr = res
	return res, nil
}

// MapWithSize will map this memory starting at offset 0 with a particular size
func (d *DeviceMemory) MapWithSize(size int) (unsafe.Pointer, error) {
	var res unsafe.Pointer
	err := Error(d.Device.cmds.mapMemory(d.Device.VKDevice, d.VKDeviceMemory, 0, DeviceSize(size), 0, &res))
	if err != nil {
		return nil, err
	}
	atomic.AddInt32(&d.MapCount, 1)
	return res, nil
}

// Unmap this memory
func (d *DeviceMemory) Unmap() {
	d.Ptr = nil
	d.Device.cmds.unmapMemory(d.Device.VKDevice, d.VKDeviceMemory)
	atomic.AddInt32(&d.MapCount, -1)
}

// Flush makes host writes to a non-coherent mapping visible to the device.
func (d *DeviceMemory) Flush(offset, size uint64) error {
	r := vkMappedMemoryRange{
		sType:  StructureTypeMappedMemoryRange,
		memory: d.VKDeviceMemory,
		offset: DeviceSize(offset),
		size:   DeviceSize(size),
	}
	return Error(d.Device.cmds.flushMappedMemoryRanges(d.Device.VKDevice, 1, &r))
}

// Invalidate makes device writes to a non-coherent mapping visible to the host.
func (d *DeviceMemory) Invalidate(offset, size uint64) error {
	r := vkMappedMemoryRange{
		sType:  StructureTypeMappedMemoryRange,
		memory: d.VKDeviceMemory,
		offset: DeviceSize(offset),
		size:   DeviceSize(size),
	}
	return Error(d.Device.cmds.invalidateMappedMemoryRanges(d.Device.VKDevice, 1, &r))
}

func (d *DeviceMemory) String() string {
	return fmt.Sprintf("{ Size: %s Mapped: %v }", units.HumanSize(float64(d.Size)), d.IsMapped())
}
