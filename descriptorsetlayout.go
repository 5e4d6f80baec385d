package vk

import "unsafe"

// DescriptorSetLayoutBinding declares one binding slot within a layout.
type DescriptorSetLayoutBinding struct {
	Binding           uint32
	DescriptorType    DescriptorType
	DescriptorCount   uint32
	StageFlags        ShaderStageFlags
	ImmutableSamplers []*Sampler
}

type vkDescriptorSetLayoutBinding struct {
	binding            uint32
	descriptorType     DescriptorType
	descriptorCount    uint32
	stageFlags         ShaderStageFlags
	pImmutableSamplers *SamplerHandle
}

type vkDescriptorSetLayoutCreateInfo struct {
	sType        StructureType
	pNext        unsafe.Pointer
	flags        DescriptorSetLayoutCreateFlags
	bindingCount uint32
	pBindings    *vkDescriptorSetLayoutBinding
}

// DescriptorSetLayout describes the layout of a descriptorset
type DescriptorSetLayout struct {
	Device                *Device
	VKDescriptorSetLayout DescriptorSetLayoutHandle
	Bindings              []DescriptorSetLayoutBinding

	destroyed bool
}

func (d *Device) NewDescriptorSetLayout() *DescriptorSetLayout {
	return &DescriptorSetLayout{Device: d}
}

// AddBinding adds a binding to the descriptor set
func (d *DescriptorSetLayout) AddBinding(binding DescriptorSetLayoutBinding) {
	d.Bindings = append(d.Bindings, binding)
}

// CreateDescriptorSetLayout creates this descriptor set layout
func (d *Device) CreateDescriptorSetLayout(layout *DescriptorSetLayout) (*DescriptorSetLayout, error) {
	var a allocSet
	raws := make([]vkDescriptorSetLayoutBinding, len(layout.Bindings))
	for i, b := range layout.Bindings {
		raws[i] = vkDescriptorSetLayoutBinding{
			binding:         b.Binding,
			descriptorType:  b.DescriptorType,
			descriptorCount: b.DescriptorCount,
			stageFlags:      b.StageFlags,
		}
		if len(b.ImmutableSamplers) > 0 {
			samplers := make([]SamplerHandle, len(b.ImmutableSamplers))
			for n, s := range b.ImmutableSamplers {
				samplers[n] = s.VKSampler
			}
			raws[i].pImmutableSamplers = sliceData(&a, samplers)
		}
	}

	info := vkDescriptorSetLayoutCreateInfo{
		sType:        StructureTypeDescriptorSetLayoutCreateInfo,
		bindingCount: uint32(len(raws)),
		pBindings:    sliceData(&a, raws),
	}

	var dsl DescriptorSetLayoutHandle
	res := d.cmds.createDescriptorSetLayout(d.VKDevice, &info, d.allocator.handle(), &dsl)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	layout.Device = d
	layout.VKDescriptorSetLayout = dsl
	return layout, nil
}

// Destroy destroys this descriptor set layout. Destroying twice is a no-op.
func (d *DescriptorSetLayout) Destroy() {
	if d.destroyed || d.VKDescriptorSetLayout == 0 {
		return
	}
	d.destroyed = true
	d.Device.cmds.destroyDescriptorSetLayout(d.Device.VKDevice, d.VKDescriptorSetLayout, d.Device.allocator.handle())
	d.VKDescriptorSetLayout = 0
}
