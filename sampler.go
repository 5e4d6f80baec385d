package vk

import "unsafe"

// SamplerCreateInfo configures sampler creation.
type SamplerCreateInfo struct {
	Next                    unsafe.Pointer
	Flags                   SamplerCreateFlags
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             BorderColor
	UnnormalizedCoordinates Bool32
}

type vkSamplerCreateInfo struct {
	sType                   StructureType
	pNext                   unsafe.Pointer
	flags                   SamplerCreateFlags
	magFilter               Filter
	minFilter               Filter
	mipmapMode              SamplerMipmapMode
	addressModeU            SamplerAddressMode
	addressModeV            SamplerAddressMode
	addressModeW            SamplerAddressMode
	mipLodBias              float32
	anisotropyEnable        Bool32
	maxAnisotropy           float32
	compareEnable           Bool32
	compareOp               CompareOp
	minLod                  float32
	maxLod                  float32
	borderColor             BorderColor
	unnormalizedCoordinates Bool32
}

type Sampler struct {
	Device    *Device
	VKSampler SamplerHandle

	destroyed bool
}

// CreateSampler creates a linearly filtered, repeat-addressed sampler.
func (d *Device) CreateSampler() (*Sampler, error) {
	return d.CreateSamplerWithCreateInfo(&SamplerCreateInfo{
		MagFilter:  FilterLinear,
		MinFilter:  FilterLinear,
		MipmapMode: SamplerMipmapModeLinear,
	})
}

func (d *Device) CreateSamplerWithCreateInfo(info *SamplerCreateInfo) (*Sampler, error) {
	raw := vkSamplerCreateInfo{
		sType:                   StructureTypeSamplerCreateInfo,
		pNext:                   info.Next,
		flags:                   info.Flags,
		magFilter:               info.MagFilter,
		minFilter:               info.MinFilter,
		mipmapMode:              info.MipmapMode,
		addressModeU:            info.AddressModeU,
		addressModeV:            info.AddressModeV,
		addressModeW:            info.AddressModeW,
		mipLodBias:              info.MipLodBias,
		anisotropyEnable:        info.AnisotropyEnable,
		maxAnisotropy:           info.MaxAnisotropy,
		compareEnable:           info.CompareEnable,
		compareOp:               info.CompareOp,
		minLod:                  info.MinLod,
		maxLod:                  info.MaxLod,
		borderColor:             info.BorderColor,
		unnormalizedCoordinates: info.UnnormalizedCoordinates,
	}

	var sampler SamplerHandle
	if err := Error(d.cmds.createSampler(d.VKDevice, &raw, d.allocator.handle(), &sampler)); err != nil {
		return nil, err
	}
	return &Sampler{Device: d, VKSampler: sampler}, nil
}

// Destroy destroys the sampler. Destroying twice is a no-op.
func (s *Sampler) Destroy() {
	if s.destroyed || s.VKSampler == 0 {
		return
	}
	s.destroyed = true
	s.Device.cmds.destroySampler(s.Device.VKDevice, s.VKSampler, s.Device.allocator.handle())
	s.VKSampler = 0
}
