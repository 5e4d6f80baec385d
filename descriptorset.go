package vk

import "unsafe"

// WriteDescriptorSet stages one descriptor update.
type WriteDescriptorSet struct {
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorType  DescriptorType
	ImageInfo       []DescriptorImageInfo
	BufferInfo      []DescriptorBufferInfo
	TexelBufferView []*BufferView
}

type vkWriteDescriptorSet struct {
	sType            StructureType
	pNext            unsafe.Pointer
	dstSet           DescriptorSetHandle
	dstBinding       uint32
	dstArrayElement  uint32
	descriptorCount  uint32
	descriptorType   DescriptorType
	pImageInfo       *DescriptorImageInfo
	pBufferInfo      *DescriptorBufferInfo
	pTexelBufferView *BufferViewHandle
}

type vkCopyDescriptorSet struct {
	sType           StructureType
	pNext           unsafe.Pointer
	srcSet          DescriptorSetHandle
	srcBinding      uint32
	srcArrayElement uint32
	dstSet          DescriptorSetHandle
	dstBinding      uint32
	dstArrayElement uint32
	descriptorCount uint32
}

// DescriptorSet is a binding of resources to a descriptor, per a specific DescriptorSetLayout
type DescriptorSet struct {
	Device          *Device
	DescriptorPool  *DescriptorPool
	VKDescriptorSet DescriptorSetHandle

	writes []WriteDescriptorSet
}

func (d *Device) NewDescriptorSet() *DescriptorSet {
	return &DescriptorSet{Device: d}
}

// AddBuffer adds a specific buffer to this descriptor set
func (du *DescriptorSet) AddBuffer(dstBinding int, dtype DescriptorType, b *Buffer, offset int) {
	du.writes = append(du.writes, WriteDescriptorSet{
		DstBinding:     uint32(dstBinding),
		DescriptorType: dtype,
		BufferInfo:     []DescriptorBufferInfo{b.DSInfo(offset)},
	})
}

// AddCombinedImageSampler adds an image layout, image view and sampler to support displaying a texture
func (du *DescriptorSet) AddCombinedImageSampler(dstBinding int, layout ImageLayout, imageView *ImageView, sampler *Sampler) {
	du.writes = append(du.writes, WriteDescriptorSet{
		DstBinding:     uint32(dstBinding),
		DescriptorType: DescriptorTypeCombinedImageSampler,
		ImageInfo: []DescriptorImageInfo{{
			Sampler:     sampler.VKSampler,
			ImageView:   imageView.VKImageView,
			ImageLayout: layout,
		}},
	})
}

// AddTexelBufferView adds a formatted buffer view to this descriptor set
func (du *DescriptorSet) AddTexelBufferView(dstBinding int, dtype DescriptorType, view *BufferView) {
	du.writes = append(du.writes, WriteDescriptorSet{
		DstBinding:      uint32(dstBinding),
		DescriptorType:  dtype,
		TexelBufferView: []*BufferView{view},
	})
}

func (w *WriteDescriptorSet) vulkanize(a *allocSet, dst DescriptorSetHandle) vkWriteDescriptorSet {
	raw := vkWriteDescriptorSet{
		sType:           StructureTypeWriteDescriptorSet,
		dstSet:          dst,
		dstBinding:      w.DstBinding,
		dstArrayElement: w.DstArrayElement,
		descriptorType:  w.DescriptorType,
	}
	switch {
	case len(w.ImageInfo) > 0:
		raw.descriptorCount = uint32(len(w.ImageInfo))
		raw.pImageInfo = sliceData(a, w.ImageInfo)
	case len(w.BufferInfo) > 0:
		raw.descriptorCount = uint32(len(w.BufferInfo))
		raw.pBufferInfo = sliceData(a, w.BufferInfo)
	case len(w.TexelBufferView) > 0:
		views := make([]BufferViewHandle, len(w.TexelBufferView))
		for i, v := range w.TexelBufferView {
			views[i] = v.VKBufferView
		}
		raw.descriptorCount = uint32(len(views))
		raw.pTexelBufferView = sliceData(a, views)
	}
	return raw
}

// Write flushes all staged updates to the driver.
func (du *DescriptorSet) Write() {
	if len(du.writes) == 0 {
		return
	}
	var a allocSet
	raws := make([]vkWriteDescriptorSet, len(du.writes))
	for i := range du.writes {
		raws[i] = du.writes[i].vulkanize(&a, du.VKDescriptorSet)
	}
	du.Device.cmds.updateDescriptorSets(du.Device.VKDevice, uint32(len(raws)), &raws[0], 0, nil)
	a.release()
	du.writes = nil
}
