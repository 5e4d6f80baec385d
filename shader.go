package vk

import (
	"os"
	"unsafe"

	"github.com/cockroachdb/errors"
)

type vkShaderModuleCreateInfo struct {
	sType    StructureType
	pNext    unsafe.Pointer
	flags    ShaderModuleCreateFlags
	codeSize uintptr
	pCode    *uint32
}

type ShaderModule struct {
	Device         *Device
	Description    string
	VKShaderModule ShaderModuleHandle

	destroyed bool
}

// LoadShaderModuleFromFile reads SPIR-V from disk and creates a module.
func (d *Device) LoadShaderModuleFromFile(file string) (*ShaderModule, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	m, err := d.CreateShaderModule(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading shader %q", file)
	}
	m.Description = file
	return m, nil
}

// CreateShaderModule creates a shader module from SPIR-V code. The code
// length must be a multiple of four bytes.
func (d *Device) CreateShaderModule(code []byte) (*ShaderModule, error) {
	if len(code) == 0 || len(code)%4 != 0 {
		return nil, errors.Newf("vk: shader code size %d is not a positive multiple of 4", len(code))
	}

	var a allocSet
	words := sliceUint32(code)
	raw := vkShaderModuleCreateInfo{
		sType:    StructureTypeShaderModuleCreateInfo,
		codeSize: uintptr(len(code)),
		pCode:    sliceData(&a, words),
	}

	var module ShaderModuleHandle
	res := d.cmds.createShaderModule(d.VKDevice, &raw, d.allocator.handle(), &module)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	return &ShaderModule{Device: d, VKShaderModule: module}, nil
}

// VKPipelineShaderStageCreateInfo builds the shader stage description used
// when assembling pipelines.
func (s *ShaderModule) VKPipelineShaderStageCreateInfo(stage ShaderStageFlags, entryPoint string) PipelineShaderStage {
	return PipelineShaderStage{
		Stage:  stage,
		Module: s,
		Name:   entryPoint,
	}
}

// Destroy destroys the module. Destroying twice is a no-op.
func (s *ShaderModule) Destroy() {
	if s.destroyed || s.VKShaderModule == 0 {
		return
	}
	s.destroyed = true
	s.Device.cmds.destroyShaderModule(s.Device.VKDevice, s.VKShaderModule, s.Device.allocator.handle())
	s.VKShaderModule = 0
}
