package vk

import "testing"

// The structure type tag is the first field of every extensible native
// struct; a wrong value makes the driver reject or misread the whole call.
func TestStructureTypeValues(t *testing.T) {
	cases := []struct {
		st    StructureType
		value int32
	}{
		{StructureTypeApplicationInfo, 0},
		{StructureTypeInstanceCreateInfo, 1},
		{StructureTypeDeviceQueueCreateInfo, 2},
		{StructureTypeDeviceCreateInfo, 3},
		{StructureTypeSubmitInfo, 4},
		{StructureTypeMemoryAllocateInfo, 5},
		{StructureTypeMappedMemoryRange, 6},
		{StructureTypeFenceCreateInfo, 8},
		{StructureTypeBufferCreateInfo, 12},
		{StructureTypeImageCreateInfo, 14},
		{StructureTypeShaderModuleCreateInfo, 16},
		{StructureTypeGraphicsPipelineCreateInfo, 28},
		{StructureTypeComputePipelineCreateInfo, 29},
		{StructureTypePipelineLayoutCreateInfo, 30},
		{StructureTypeWriteDescriptorSet, 35},
		{StructureTypeFramebufferCreateInfo, 37},
		{StructureTypeRenderPassCreateInfo, 38},
		{StructureTypeCommandPoolCreateInfo, 39},
		{StructureTypeCommandBufferBeginInfo, 42},
		{StructureTypeRenderPassBeginInfo, 43},
		{StructureTypeMemoryBarrier, 46},
		{StructureTypeSwapchainCreateInfoKHR, 1000001000},
		{StructureTypePresentInfoKHR, 1000001001},
		{StructureTypeDebugReportCallbackCreateInfoEXT, 1000011000},
		{StructureTypeExternalMemoryImageCreateInfoNV, 1000056000},
		{StructureTypeViSurfaceCreateInfoNN, 1000062000},
		{StructureTypePhysicalDeviceGroupPropertiesKHX, 1000070000},
		{StructureTypeDeviceGroupDeviceCreateInfoKHX, 1000070001},
		{StructureTypeObjectTableCreateInfoNVX, 1000086000},
		{StructureTypeIndirectCommandsLayoutCreateInfoNVX, 1000086001},
	}
	for _, c := range cases {
		if int32(c.st) != c.value {
			t.Errorf("structure type %d, want %d", int32(c.st), c.value)
		}
	}
}

func TestFormatValues(t *testing.T) {
	cases := []struct {
		format Format
		value  int32
	}{
		{FormatUndefined, 0},
		{FormatR8Unorm, 9},
		{FormatR8G8B8A8Unorm, 37},
		{FormatB8G8R8A8Unorm, 44},
		{FormatR16G16B16A16Sfloat, 97},
		{FormatR32Uint, 98},
		{FormatR32G32B32A32Sfloat, 109},
		{FormatD16Unorm, 124},
		{FormatD32Sfloat, 126},
		{FormatD24UnormS8Uint, 129},
		{FormatBc1RgbUnormBlock, 131},
		{FormatEacR11G11SnormBlock, 156},
	}
	for _, c := range cases {
		if int32(c.format) != c.value {
			t.Errorf("format %d, want %d", int32(c.format), c.value)
		}
	}
}

func TestImageLayoutValues(t *testing.T) {
	if ImageLayoutShaderReadOnlyOptimal != 5 {
		t.Error("ImageLayoutShaderReadOnlyOptimal drifted")
	}
	if ImageLayoutTransferDstOptimal != 7 {
		t.Error("ImageLayoutTransferDstOptimal drifted")
	}
	// The present layout is an extension value, not the next core ordinal.
	if ImageLayoutPresentSrc != 1000001002 {
		t.Error("ImageLayoutPresentSrc drifted")
	}
}

func TestSentinelValues(t *testing.T) {
	if uint64(WholeSize) != ^uint64(0) {
		t.Error("WholeSize is not all ones")
	}
	if QueueFamilyIgnored != ^uint32(0) || SubpassExternal != ^uint32(0) {
		t.Error("queue family / subpass sentinels drifted")
	}
}

func TestPhysicalDeviceTypeString(t *testing.T) {
	if PhysicalDeviceTypeDiscreteGPU.String() != "DiscreteGPU" {
		t.Error("DiscreteGPU name wrong")
	}
	if PhysicalDeviceType(99).String() != "Other" {
		t.Error("unknown device type should read Other")
	}
}
