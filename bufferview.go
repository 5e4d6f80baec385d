package vk

import "unsafe"

// BufferViewCreateInfo configures a formatted view over a buffer range.
type BufferViewCreateInfo struct {
	Next   unsafe.Pointer
	Flags  BufferViewCreateFlags
	Format Format
	Offset DeviceSize
	Range  DeviceSize
}

type vkBufferViewCreateInfo struct {
	sType      StructureType
	pNext      unsafe.Pointer
	flags      BufferViewCreateFlags
	buffer     BufferHandle
	format     Format
	offset     DeviceSize
	rangeBytes DeviceSize
}

// BufferView is a formatted view over a buffer, bindable as a texel buffer
// descriptor.
type BufferView struct {
	Buffer       *Buffer
	VKBufferView BufferViewHandle

	destroyed bool
}

// CreateView creates a formatted view over part of the buffer. A Range of
// WholeSize covers everything from Offset to the end.
func (b *Buffer) CreateView(info *BufferViewCreateInfo) (*BufferView, error) {
	raw := vkBufferViewCreateInfo{
		sType:      StructureTypeBufferViewCreateInfo,
		pNext:      info.Next,
		flags:      info.Flags,
		buffer:     b.VKBuffer,
		format:     info.Format,
		offset:     info.Offset,
		rangeBytes: info.Range,
	}

	var view BufferViewHandle
	if err := Error(b.Device.cmds.createBufferView(b.Device.VKDevice, &raw, b.Device.allocator.handle(), &view)); err != nil {
		return nil, err
	}
	return &BufferView{Buffer: b, VKBufferView: view}, nil
}

// Destroy destroys the view. Destroying twice is a no-op.
func (v *BufferView) Destroy() {
	if v.destroyed || v.VKBufferView == 0 {
		return
	}
	v.destroyed = true
	d := v.Buffer.Device
	d.cmds.destroyBufferView(d.VKDevice, v.VKBufferView, d.allocator.handle())
	v.VKBufferView = 0
}
