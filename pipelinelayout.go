package vk

import "unsafe"

type vkPipelineLayoutCreateInfo struct {
	sType                  StructureType
	pNext                  unsafe.Pointer
	flags                  PipelineLayoutCreateFlags
	setLayoutCount         uint32
	pSetLayouts            *DescriptorSetLayoutHandle
	pushConstantRangeCount uint32
	pPushConstantRanges    *PushConstantRange
}

type PipelineLayout struct {
	Device           *Device
	VKPipelineLayout PipelineLayoutHandle

	destroyed bool
}

func (d *Device) CreatePipelineLayout(descriptorSetLayouts ...*DescriptorSetLayout) (*PipelineLayout, error) {
	return d.CreatePipelineLayoutWithPushConstants(descriptorSetLayouts, nil)
}

func (d *Device) CreatePipelineLayoutWithPushConstants(descriptorSetLayouts []*DescriptorSetLayout, pushConstants []PushConstantRange) (*PipelineLayout, error) {
	var a allocSet

	l := make([]DescriptorSetLayoutHandle, len(descriptorSetLayouts))
	for i, dsl := range descriptorSetLayouts {
		l[i] = dsl.VKDescriptorSetLayout
	}

	info := vkPipelineLayoutCreateInfo{
		sType:                  StructureTypePipelineLayoutCreateInfo,
		setLayoutCount:         uint32(len(l)),
		pSetLayouts:            sliceData(&a, l),
		pushConstantRangeCount: uint32(len(pushConstants)),
		pPushConstantRanges:    sliceData(&a, pushConstants),
	}

	var layout PipelineLayoutHandle
	res := d.cmds.createPipelineLayout(d.VKDevice, &info, d.allocator.handle(), &layout)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	return &PipelineLayout{Device: d, VKPipelineLayout: layout}, nil
}

// Destroy destroys the layout. Destroying twice is a no-op.
func (p *PipelineLayout) Destroy() {
	if p.destroyed || p.VKPipelineLayout == 0 {
		return
	}
	p.destroyed = true
	p.Device.cmds.destroyPipelineLayout(p.Device.VKDevice, p.VKPipelineLayout, p.Device.allocator.handle())
	p.VKPipelineLayout = 0
}
