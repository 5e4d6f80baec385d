package vk

import (
	"reflect"
	"testing"
	"unsafe"
)

func TestCStringRoundTrip(t *testing.T) {
	var a allocSet
	p := a.cstring("VK_LAYER_KHRONOS_validation")
	if got := goString(p); got != "VK_LAYER_KHRONOS_validation" {
		t.Errorf("round trip = %q", got)
	}
	a.release()
}

func TestCStringsEmpty(t *testing.T) {
	var a allocSet
	// Empty slices must marshal to a nil pointer, never a zero length
	// allocation the driver would still dereference.
	if p := a.cstrings(nil); p != nil {
		t.Error("cstrings(nil) != nil")
	}
	if p := a.cstrings([]string{}); p != nil {
		t.Error("cstrings(empty) != nil")
	}
	a.release()
}

func TestCStringsRoundTrip(t *testing.T) {
	var a allocSet
	in := []string{"VK_KHR_surface", "VK_KHR_swapchain", "VK_EXT_debug_report"}
	pp := a.cstrings(in)
	if got := goStrings(pp, uint32(len(in))); !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %v", got)
	}
	a.release()
}

func TestSliceData(t *testing.T) {
	var a allocSet
	if p := sliceData(&a, []float32(nil)); p != nil {
		t.Error("sliceData(nil) != nil")
	}
	s := []float32{1.0, 0.5}
	if p := sliceData(&a, s); p != &s[0] {
		t.Error("sliceData did not return the first element")
	}
	a.release()
}

func TestToBytes(t *testing.T) {
	if b := ToBytes(nil, 8); b != nil {
		t.Error("ToBytes(nil) != nil")
	}
	data := []byte{1, 2, 3, 4}
	b := ToBytes(unsafe.Pointer(&data[0]), 4)
	if !reflect.DeepEqual(b, data) {
		t.Errorf("ToBytes = %v", b)
	}
}

func TestSliceUint32(t *testing.T) {
	if s := sliceUint32([]byte{1, 2}); s != nil {
		t.Error("sliceUint32 accepted a short slice")
	}
	words := sliceUint32([]byte{0x03, 0x02, 0x23, 0x07, 0, 0, 1, 0})
	if len(words) != 2 {
		t.Fatalf("len = %d", len(words))
	}
	if words[0] != 0x07230203 { // SPIR-V magic, little endian
		t.Errorf("words[0] = %#x", words[0])
	}
}

func TestInstanceCreateInfoRoundTrip(t *testing.T) {
	info := &InstanceCreateInfo{
		ApplicationInfo: &ApplicationInfo{
			ApplicationName: "demo",
			EngineName:      "none",
			APIVersion:      APIVersion10,
		},
		EnabledLayerNames:     []string{"VK_LAYER_KHRONOS_validation"},
		EnabledExtensionNames: []string{"VK_KHR_surface", "VK_EXT_debug_report"},
	}

	var a allocSet
	raw := info.vulkanize(&a)

	if raw.sType != StructureTypeInstanceCreateInfo {
		t.Errorf("sType = %d", raw.sType)
	}
	if raw.pApplicationInfo.sType != StructureTypeApplicationInfo {
		t.Errorf("app info sType = %d", raw.pApplicationInfo.sType)
	}
	if raw.enabledLayerCount != 1 || raw.enabledExtensionCount != 2 {
		t.Errorf("counts = %d/%d", raw.enabledLayerCount, raw.enabledExtensionCount)
	}

	got := unmarshalInstanceCreateInfo(raw)
	if !reflect.DeepEqual(got, info) {
		t.Errorf("round trip = %+v, want %+v", got, info)
	}
	a.release()
}

func TestInstanceCreateInfoEmpty(t *testing.T) {
	var a allocSet
	raw := (&InstanceCreateInfo{}).vulkanize(&a)
	if raw.pApplicationInfo != nil {
		t.Error("nil application info marshaled to a pointer")
	}
	if raw.ppEnabledLayerNames != nil || raw.ppEnabledExtensionNames != nil {
		t.Error("empty name lists marshaled to pointers")
	}
	a.release()
}

func TestDeviceCreateInfoRoundTrip(t *testing.T) {
	features := PhysicalDeviceFeatures{SamplerAnisotropy: True}
	info := &DeviceCreateInfo{
		QueueCreateInfos: []DeviceQueueCreateInfo{
			{QueueFamilyIndex: 0, QueuePriorities: []float32{1.0}},
			{QueueFamilyIndex: 2, QueuePriorities: []float32{0.5, 1.0}},
		},
		EnabledExtensionNames: []string{"VK_KHR_swapchain"},
		EnabledFeatures:       &features,
	}

	var a allocSet
	raw := info.vulkanize(&a)

	if raw.sType != StructureTypeDeviceCreateInfo {
		t.Errorf("sType = %d", raw.sType)
	}
	if raw.queueCreateInfoCount != 2 {
		t.Fatalf("queue count = %d", raw.queueCreateInfoCount)
	}
	queues := unsafe.Slice(raw.pQueueCreateInfos, 2)
	if queues[1].queueCount != 2 || *queues[1].pQueuePriorities != 0.5 {
		t.Errorf("second queue = %+v", queues[1])
	}
	if raw.pEnabledFeatures == nil || raw.pEnabledFeatures.SamplerAnisotropy != True {
		t.Error("features not carried through")
	}

	got := unmarshalDeviceCreateInfo(raw)
	if !reflect.DeepEqual(got, info) {
		t.Errorf("round trip = %+v, want %+v", got, info)
	}
	a.release()
}

func TestBufferCreateInfoRoundTrip(t *testing.T) {
	info := &BufferCreateInfo{
		Size:               4096,
		Usage:              BufferUsageStorageBufferBit | BufferUsageTransferDstBit,
		SharingMode:        SharingModeConcurrent,
		QueueFamilyIndices: []uint32{0, 3},
	}

	var a allocSet
	raw := info.vulkanize(&a)
	if raw.sType != StructureTypeBufferCreateInfo {
		t.Errorf("sType = %d", raw.sType)
	}
	if raw.queueFamilyIndexCount != 2 {
		t.Errorf("family index count = %d", raw.queueFamilyIndexCount)
	}

	got := unmarshalBufferCreateInfo(raw)
	if !reflect.DeepEqual(got, info) {
		t.Errorf("round trip = %+v, want %+v", got, info)
	}
	a.release()
}

func TestBufferCreateInfoExclusive(t *testing.T) {
	var a allocSet
	raw := (&BufferCreateInfo{Size: 16, Usage: BufferUsageUniformBufferBit}).vulkanize(&a)
	if raw.pQueueFamilyIndices != nil {
		t.Error("exclusive buffer marshaled a family index pointer")
	}
	a.release()
}

func TestBool32(t *testing.T) {
	if NewBool32(true) != True || NewBool32(false) != False {
		t.Error("NewBool32 mapping wrong")
	}
	if !True.B() || False.B() {
		t.Error("Bool32.B mapping wrong")
	}
}

func TestClearColorValue(t *testing.T) {
	cv := NewClearColorValueFloat(0.1, 0.2, 0.3, 1.0)
	f := cv.Float32()
	if f[0] != 0.1 || f[3] != 1.0 {
		t.Errorf("float clear = %v", f)
	}
}

func TestVersionPacking(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3}
	packed := v.VKVersion()
	if packed != 1<<22|2<<12|3 {
		t.Errorf("packed = %#x", packed)
	}
	if MakeVersion(1, 0, 0) != APIVersion10 {
		t.Error("MakeVersion(1,0,0) != APIVersion10")
	}
}
