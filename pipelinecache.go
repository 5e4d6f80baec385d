package vk

import "unsafe"

type vkPipelineCacheCreateInfo struct {
	sType           StructureType
	pNext           unsafe.Pointer
	flags           PipelineCacheCreateFlags
	initialDataSize uintptr
	pInitialData    unsafe.Pointer
}

type PipelineCache struct {
	Device          *Device
	VKPipelineCache PipelineCacheHandle

	destroyed bool
}

func (d *Device) CreatePipelineCache() (*PipelineCache, error) {
	return d.CreatePipelineCacheWithData(nil)
}

// CreatePipelineCacheWithData seeds the cache with blob data from an
// earlier Data call.
func (d *Device) CreatePipelineCacheWithData(data []byte) (*PipelineCache, error) {
	var a allocSet
	info := vkPipelineCacheCreateInfo{
		sType: StructureTypePipelineCacheCreateInfo,
	}
	if len(data) > 0 {
		info.initialDataSize = uintptr(len(data))
		info.pInitialData = unsafe.Pointer(sliceData(&a, data))
	}

	var cache PipelineCacheHandle
	res := d.cmds.createPipelineCache(d.VKDevice, &info, d.allocator.handle(), &cache)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	return &PipelineCache{Device: d, VKPipelineCache: cache}, nil
}

// Data retrieves the cache blob using the usual size query then fetch
// pattern, retrying while the driver grows the blob between the calls.
func (p *PipelineCache) Data() ([]byte, error) {
	for {
		var size uintptr
		if err := Error(p.Device.cmds.getPipelineCacheData(p.Device.VKDevice, p.VKPipelineCache, &size, nil)); err != nil {
			return nil, err
		}
		if size == 0 {
			return nil, nil
		}
		data := make([]byte, size)
		res := p.Device.cmds.getPipelineCacheData(p.Device.VKDevice, p.VKPipelineCache, &size, unsafe.Pointer(&data[0]))
		if res == Incomplete {
			continue
		}
		if err := Error(res); err != nil {
			return nil, err
		}
		return data[:size], nil
	}
}

// Destroy destroys the cache. Destroying twice is a no-op.
func (p *PipelineCache) Destroy() {
	if p.destroyed || p.VKPipelineCache == 0 {
		return
	}
	p.destroyed = true
	p.Device.cmds.destroyPipelineCache(p.Device.VKDevice, p.VKPipelineCache, p.Device.allocator.handle())
	p.VKPipelineCache = 0
}
