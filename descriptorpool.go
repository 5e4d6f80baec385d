package vk

import "unsafe"

// DescriptorPoolSize declares how many descriptors of one type a pool holds.
type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

type vkDescriptorPoolCreateInfo struct {
	sType         StructureType
	pNext         unsafe.Pointer
	flags         DescriptorPoolCreateFlags
	maxSets       uint32
	poolSizeCount uint32
	pPoolSizes    *DescriptorPoolSize
}

type vkDescriptorSetAllocateInfo struct {
	sType              StructureType
	pNext              unsafe.Pointer
	descriptorPool     DescriptorPoolHandle
	descriptorSetCount uint32
	pSetLayouts        *DescriptorSetLayoutHandle
}

// DescriptorPool is essentially a resource manager for descriptor pools provided by Vulkan.
type DescriptorPool struct {
	Device           *Device
	VKDescriptorPool DescriptorPoolHandle
	PoolSizes        []DescriptorPoolSize

	destroyed bool
}

func (d *Device) NewDescriptorPool() *DescriptorPool {
	return &DescriptorPool{Device: d}
}

// AddPoolSize informs the descriptor pool how many of a certain descriptortype it will contain
func (d *DescriptorPool) AddPoolSize(dtype DescriptorType, count int) {
	d.PoolSizes = append(d.PoolSizes, DescriptorPoolSize{
		Type:            dtype,
		DescriptorCount: uint32(count),
	})
}

// CreateDescriptorPool creates the descriptor pool
func (d *Device) CreateDescriptorPool(pool *DescriptorPool, maxSets int) (*DescriptorPool, error) {
	var a allocSet
	info := vkDescriptorPoolCreateInfo{
		sType:         StructureTypeDescriptorPoolCreateInfo,
		maxSets:       uint32(maxSets),
		flags:         DescriptorPoolCreateFreeDescriptorSetBit,
		poolSizeCount: uint32(len(pool.PoolSizes)),
		pPoolSizes:    sliceData(&a, pool.PoolSizes),
	}

	var dp DescriptorPoolHandle
	res := d.cmds.createDescriptorPool(d.VKDevice, &info, d.allocator.handle(), &dp)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	pool.Device = d
	pool.VKDescriptorPool = dp
	return pool, nil
}

// Allocate allocates a descriptor set from the pool given the descriptor set layout
func (d *DescriptorPool) Allocate(layouts ...*DescriptorSetLayout) (*DescriptorSet, error) {
	var a allocSet
	dsl := make([]DescriptorSetLayoutHandle, len(layouts))
	for i, ds := range layouts {
		dsl[i] = ds.VKDescriptorSetLayout
	}

	info := vkDescriptorSetAllocateInfo{
		sType:              StructureTypeDescriptorSetAllocateInfo,
		descriptorPool:     d.VKDescriptorPool,
		descriptorSetCount: uint32(len(dsl)),
		pSetLayouts:        sliceData(&a, dsl),
	}

	var ds DescriptorSetHandle
	res := d.Device.cmds.allocateDescriptorSets(d.Device.VKDevice, &info, &ds)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	return &DescriptorSet{Device: d.Device, DescriptorPool: d, VKDescriptorSet: ds}, nil
}

func (d *DescriptorPool) Reset() error {
	return Error(d.Device.cmds.resetDescriptorPool(d.Device.VKDevice, d.VKDescriptorPool, 0))
}

func (d *DescriptorPool) Free(ds *DescriptorSet) error {
	h := ds.VKDescriptorSet
	return Error(d.Device.cmds.freeDescriptorSets(d.Device.VKDevice, d.VKDescriptorPool, 1, &h))
}

// Destroy destroys the pool and implicitly frees its sets. Destroying twice
// is a no-op.
func (d *DescriptorPool) Destroy() {
	if d.destroyed || d.VKDescriptorPool == 0 {
		return
	}
	d.destroyed = true
	d.Device.cmds.destroyDescriptorPool(d.Device.VKDevice, d.VKDescriptorPool, d.Device.allocator.handle())
	d.VKDescriptorPool = 0
}
