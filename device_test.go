package vk

import (
	"testing"
	"time"
	"unsafe"
)

// fakeDriver backs a Device's command table with Go functions so object
// lifecycles run end to end without a native library. Handles are handed
// out sequentially; destroys are counted to catch double-free regressions.
type fakeDriver struct {
	instance *Instance
	physical *PhysicalDevice
	device   *Device

	nextHandle uint64

	createdDeviceInfo *DeviceCreateInfo
	destroys          map[string]int
}

func (f *fakeDriver) handle() uint64 {
	f.nextHandle++
	return f.nextHandle
}

func newFakeDriver(t *testing.T) *fakeDriver {
	t.Helper()
	f := &fakeDriver{destroys: map[string]int{}}

	f.instance = &Instance{VKInstance: 1, cache: map[string]uintptr{}}
	f.instance.cmds.getPhysicalDeviceFeatures = func(_ PhysicalDeviceHandle, features *PhysicalDeviceFeatures) {
		features.SamplerAnisotropy = True
	}
	f.instance.cmds.getPhysicalDeviceMemoryProperties = func(_ PhysicalDeviceHandle, props *PhysicalDeviceMemoryProperties) {
		props.MemoryTypeCount = 2
		props.MemoryTypes[0] = MemoryType{PropertyFlags: MemoryPropertyDeviceLocalBit, HeapIndex: 0}
		props.MemoryTypes[1] = MemoryType{PropertyFlags: MemoryPropertyHostVisibleBit | MemoryPropertyHostCoherentBit, HeapIndex: 1}
		props.MemoryHeapCount = 2
		props.MemoryHeaps[0] = MemoryHeap{Size: 1 << 30, Flags: MemoryHeapDeviceLocalBit}
		props.MemoryHeaps[1] = MemoryHeap{Size: 1 << 28}
	}
	f.instance.cmds.getPhysicalDeviceQueueFamilyProperties = func(_ PhysicalDeviceHandle, count *uint32, props *QueueFamilyProperties) {
		*count = 1
		if props != nil {
			*props = QueueFamilyProperties{
				QueueFlags: QueueComputeBit | QueueTransferBit,
				QueueCount: 1,
			}
		}
	}
	f.instance.cmds.createDevice = func(_ PhysicalDeviceHandle, raw *vkDeviceCreateInfo, _ *vkAllocationCallbacks, out *DeviceHandle) Result {
		f.createdDeviceInfo = unmarshalDeviceCreateInfo(raw)
		*out = DeviceHandle(f.handle())
		return Success
	}

	f.physical = &PhysicalDevice{DeviceName: "fake", Instance: f.instance, VKPhysicalDevice: 2}
	return f
}

// createDevice runs device creation through the instance command table and
// installs the device level stubs used by the object lifecycle tests.
func (f *fakeDriver) createDevice(t *testing.T) *Device {
	t.Helper()

	qfs, err := f.physical.QueueFamilies()
	if err != nil {
		t.Fatal(err)
	}
	device, err := f.physical.CreateLogicalDevice(qfs.FilterCompute())
	if err != nil {
		t.Fatal(err)
	}
	f.device = device

	device.cmds.destroyDevice = func(DeviceHandle, *vkAllocationCallbacks) { f.destroys["device"]++ }
	device.cmds.getDeviceQueue = func(_ DeviceHandle, _, _ uint32, out *QueueHandle) {
		*out = QueueHandle(f.handle())
	}

	device.cmds.createBuffer = func(_ DeviceHandle, raw *vkBufferCreateInfo, _ *vkAllocationCallbacks, out *BufferHandle) Result {
		*out = BufferHandle(f.handle())
		return Success
	}
	device.cmds.destroyBuffer = func(DeviceHandle, BufferHandle, *vkAllocationCallbacks) { f.destroys["buffer"]++ }
	device.cmds.getBufferMemoryRequirements = func(_ DeviceHandle, _ BufferHandle, reqs *MemoryRequirements) {
		*reqs = MemoryRequirements{Size: 64, Alignment: 16, MemoryTypeBits: 0b10}
	}
	device.cmds.bindBufferMemory = func(DeviceHandle, BufferHandle, DeviceMemoryHandle, DeviceSize) Result {
		return Success
	}

	device.cmds.allocateMemory = func(_ DeviceHandle, info *vkMemoryAllocateInfo, _ *vkAllocationCallbacks, out *DeviceMemoryHandle) Result {
		if info.sType != StructureTypeMemoryAllocateInfo {
			t.Errorf("allocate sType = %d", info.sType)
		}
		*out = DeviceMemoryHandle(f.handle())
		return Success
	}
	device.cmds.freeMemory = func(DeviceHandle, DeviceMemoryHandle, *vkAllocationCallbacks) { f.destroys["memory"]++ }

	device.cmds.createFence = func(_ DeviceHandle, _ *vkFenceCreateInfo, _ *vkAllocationCallbacks, out *FenceHandle) Result {
		*out = FenceHandle(f.handle())
		return Success
	}
	device.cmds.destroyFence = func(DeviceHandle, FenceHandle, *vkAllocationCallbacks) { f.destroys["fence"]++ }

	device.cmds.createEvent = func(_ DeviceHandle, _ *vkEventCreateInfo, _ *vkAllocationCallbacks, out *EventHandle) Result {
		*out = EventHandle(f.handle())
		return Success
	}
	device.cmds.destroyEvent = func(DeviceHandle, EventHandle, *vkAllocationCallbacks) { f.destroys["event"]++ }

	return device
}

func TestCreateLogicalDevice(t *testing.T) {
	f := newFakeDriver(t)
	device := f.createDevice(t)

	if device.VKDevice == 0 {
		t.Fatal("device handle not set")
	}
	info := f.createdDeviceInfo
	if info == nil {
		t.Fatal("createDevice never saw a create info")
	}
	if len(info.QueueCreateInfos) != 1 {
		t.Fatalf("queue create infos = %d", len(info.QueueCreateInfos))
	}
	q := info.QueueCreateInfos[0]
	if q.QueueFamilyIndex != 0 || len(q.QueuePriorities) != 1 || q.QueuePriorities[0] != 1.0 {
		t.Errorf("queue create info = %+v", q)
	}
	// Default creation enables the features the hardware reports.
	if info.EnabledFeatures == nil || info.EnabledFeatures.SamplerAnisotropy != True {
		t.Error("physical device features not forwarded")
	}
}

func TestCreateLogicalDeviceWithOptions(t *testing.T) {
	f := newFakeDriver(t)
	qfs, err := f.physical.QueueFamilies()
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.physical.CreateLogicalDeviceWithOptions(qfs, &CreateDeviceOptions{
		EnabledExtensions: []string{"VK_KHR_swapchain"},
		EnabledLayers:     []string{"VK_LAYER_KHRONOS_validation"},
	})
	if err != nil {
		t.Fatal(err)
	}
	info := f.createdDeviceInfo
	if len(info.EnabledExtensionNames) != 1 || info.EnabledExtensionNames[0] != "VK_KHR_swapchain" {
		t.Errorf("extensions = %v", info.EnabledExtensionNames)
	}
	if len(info.EnabledLayerNames) != 1 {
		t.Errorf("layers = %v", info.EnabledLayerNames)
	}
}

func TestDeviceProcAddr(t *testing.T) {
	f := newFakeDriver(t)
	calls := 0
	f.instance.cmds.getDeviceProcAddr = func(_ DeviceHandle, name string) uintptr {
		calls++
		if name == "vkCreateSwapchainKHR" {
			return 0x2000
		}
		return 0
	}
	device := f.createDevice(t)
	calls = 0 // resolveCommands probes during creation

	if _, err := device.ProcAddr(""); err == nil {
		t.Error("empty proc name accepted")
	}

	addr, err := device.ProcAddr("vkCreateSwapchainKHR")
	if err != nil || addr != 0x2000 {
		t.Fatalf("ProcAddr = %#x, %v", addr, err)
	}
	if _, err := device.ProcAddr("vkCreateSwapchainKHR"); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("resolver hit %d times for a cached name", calls)
	}

	// Unknown names resolve to zero without an error.
	addr, err = device.ProcAddr("vkNotARealCommand")
	if err != nil || addr != 0 {
		t.Errorf("unknown name = %#x, %v", addr, err)
	}
}

func TestBufferLifecycle(t *testing.T) {
	f := newFakeDriver(t)
	device := f.createDevice(t)

	buffer, memory, err := device.CreateAndBindBufferAndMemory(32, 0,
		BufferUsageUniformTexelBufferBit,
		MemoryPropertyHostVisibleBit|MemoryPropertyHostCoherentBit,
		SharingModeExclusive)
	if err != nil {
		t.Fatal(err)
	}
	if buffer.VKBuffer == 0 || memory.VKDeviceMemory == 0 {
		t.Fatal("handles not set")
	}

	// Allocation follows the driver reported requirements, not the request.
	ar := buffer.AllocationRequirements()
	if ar.Size != 64 || ar.MemoryTypeBits != 0b10 {
		t.Errorf("allocation requirements = %+v", ar)
	}
	if memory.Size != 64 {
		t.Errorf("memory size = %d, want the driver reported 64", memory.Size)
	}

	memory.Destroy()
	buffer.Destroy()
	memory.Destroy()
	buffer.Destroy()
	if f.destroys["buffer"] != 1 || f.destroys["memory"] != 1 {
		t.Errorf("destroy counts = %v, want exactly one each", f.destroys)
	}
}

func TestFindMemoryTypeMiss(t *testing.T) {
	f := newFakeDriver(t)
	// No type is both device local and host visible in the fake table.
	if _, err := f.physical.FindMemoryType(0b11, MemoryPropertyDeviceLocalBit|MemoryPropertyHostVisibleBit); err == nil {
		t.Error("impossible memory type combination found")
	}
	idx, err := f.physical.FindMemoryType(0b11, MemoryPropertyDeviceLocalBit)
	if err != nil || idx != 0 {
		t.Errorf("FindMemoryType = %d, %v", idx, err)
	}
}

func TestFenceWait(t *testing.T) {
	f := newFakeDriver(t)
	device := f.createDevice(t)

	var gotTimeout uint64
	result := Success
	device.cmds.waitForFences = func(_ DeviceHandle, count uint32, _ *FenceHandle, waitAll Bool32, timeout uint64) Result {
		if count != 1 || waitAll != True {
			t.Errorf("waitForFences count=%d waitAll=%d", count, waitAll)
		}
		gotTimeout = timeout
		return result
	}

	fence, err := device.CreateFence()
	if err != nil {
		t.Fatal(err)
	}

	if err := fence.Wait(time.Second); err != nil {
		t.Fatal(err)
	}
	if gotTimeout != uint64(time.Second.Nanoseconds()) {
		t.Errorf("timeout = %d", gotTimeout)
	}

	// Zero or negative waits forever.
	if err := fence.Wait(0); err != nil {
		t.Fatal(err)
	}
	if gotTimeout != ^uint64(0) {
		t.Errorf("forever timeout = %d", gotTimeout)
	}

	result = Timeout
	err = fence.Wait(time.Millisecond)
	if ResultCode(err) != Timeout {
		t.Errorf("expiry error = %v", err)
	}

	fence.Destroy()
	fence.Destroy()
	if f.destroys["fence"] != 1 {
		t.Errorf("fence destroyed %d times", f.destroys["fence"])
	}
}

func TestFenceStatus(t *testing.T) {
	f := newFakeDriver(t)
	device := f.createDevice(t)

	status := NotReady
	device.cmds.getFenceStatus = func(DeviceHandle, FenceHandle) Result { return status }

	fence, err := device.CreateFence()
	if err != nil {
		t.Fatal(err)
	}
	if signaled, err := fence.Status(); err != nil || signaled {
		t.Errorf("Status = %v, %v", signaled, err)
	}
	status = Success
	if signaled, err := fence.Status(); err != nil || !signaled {
		t.Errorf("Status = %v, %v", signaled, err)
	}
	status = ErrorDeviceLost
	if _, err := fence.Status(); ResultCode(err) != ErrorDeviceLost {
		t.Errorf("Status error = %v", err)
	}
}

func TestEventSetReset(t *testing.T) {
	f := newFakeDriver(t)
	device := f.createDevice(t)

	state := EventReset
	device.cmds.getEventStatus = func(DeviceHandle, EventHandle) Result { return state }
	device.cmds.setEvent = func(DeviceHandle, EventHandle) Result { state = EventSet; return Success }
	device.cmds.resetEvent = func(DeviceHandle, EventHandle) Result { state = EventReset; return Success }

	event, err := device.CreateEvent()
	if err != nil {
		t.Fatal(err)
	}
	if set, _ := event.Status(); set {
		t.Error("fresh event reports set")
	}
	if err := event.Set(); err != nil {
		t.Fatal(err)
	}
	if set, _ := event.Status(); !set {
		t.Error("event not set after Set")
	}
	if err := event.Reset(); err != nil {
		t.Fatal(err)
	}
	if set, _ := event.Status(); set {
		t.Error("event still set after Reset")
	}
}

func TestQueueSubmit(t *testing.T) {
	f := newFakeDriver(t)
	device := f.createDevice(t)

	var got struct {
		fence   FenceHandle
		waits   []SemaphoreHandle
		stages  []PipelineStageFlags
		cbs     []CommandBufferHandle
		signals []SemaphoreHandle
		batches uint32
	}
	device.cmds.queueSubmit = func(_ QueueHandle, count uint32, infos *vkSubmitInfo, fence FenceHandle) Result {
		got.batches = count
		got.fence = fence
		raw := unsafe.Slice(infos, count)[0]
		if raw.sType != StructureTypeSubmitInfo {
			t.Errorf("submit sType = %d", raw.sType)
		}
		got.waits = append([]SemaphoreHandle(nil), unsafe.Slice(raw.pWaitSemaphores, raw.waitSemaphoreCount)...)
		got.stages = append([]PipelineStageFlags(nil), unsafe.Slice(raw.pWaitDstStageMask, raw.waitSemaphoreCount)...)
		got.cbs = append([]CommandBufferHandle(nil), unsafe.Slice(raw.pCommandBuffers, raw.commandBufferCount)...)
		got.signals = append([]SemaphoreHandle(nil), unsafe.Slice(raw.pSignalSemaphores, raw.signalSemaphoreCount)...)
		return Success
	}

	qfs, err := f.physical.QueueFamilies()
	if err != nil {
		t.Fatal(err)
	}
	queue := device.GetQueue(qfs[0])
	if queue.VKQueue == 0 {
		t.Fatal("queue handle not set")
	}

	wait := &Semaphore{Device: device, VKSemaphore: 31}
	signal := &Semaphore{Device: device, VKSemaphore: 32}
	cb := &CommandBuffer{Device: device, VKCommandBuffer: 33}
	fence := &Fence{Device: device, VKFence: 34}

	err = queue.Submit(fence, &SubmitInfo{
		WaitSemaphores:   []*Semaphore{wait},
		WaitDstStageMask: []PipelineStageFlags{PipelineStageColorAttachmentOutputBit},
		CommandBuffers:   []*CommandBuffer{cb},
		SignalSemaphores: []*Semaphore{signal},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got.batches != 1 || got.fence != 34 {
		t.Errorf("batches=%d fence=%d", got.batches, got.fence)
	}
	if len(got.waits) != 1 || got.waits[0] != 31 {
		t.Errorf("waits = %v", got.waits)
	}
	if len(got.stages) != 1 || got.stages[0] != PipelineStageColorAttachmentOutputBit {
		t.Errorf("stages = %v", got.stages)
	}
	if len(got.cbs) != 1 || got.cbs[0] != 33 {
		t.Errorf("command buffers = %v", got.cbs)
	}
	if len(got.signals) != 1 || got.signals[0] != 32 {
		t.Errorf("signals = %v", got.signals)
	}
}

func TestDeviceDestroyTwice(t *testing.T) {
	f := newFakeDriver(t)
	device := f.createDevice(t)

	if err := device.Destroy(); err != nil {
		t.Fatal(err)
	}
	if err := device.Destroy(); err != nil {
		t.Fatal(err)
	}
	if f.destroys["device"] != 1 {
		t.Errorf("device destroyed %d times", f.destroys["device"])
	}
}

func TestInstanceDestroyTwice(t *testing.T) {
	f := newFakeDriver(t)
	destroys := 0
	f.instance.cmds.destroyInstance = func(InstanceHandle, *vkAllocationCallbacks) { destroys++ }

	if err := f.instance.Destroy(); err != nil {
		t.Fatal(err)
	}
	if err := f.instance.Destroy(); err != nil {
		t.Fatal(err)
	}
	if destroys != 1 {
		t.Errorf("instance destroyed %d times", destroys)
	}
}

func TestQueueFamilyFilters(t *testing.T) {
	compute := &QueueFamily{Index: 0, VKQueueFamilyProperties: QueueFamilyProperties{QueueFlags: QueueComputeBit | QueueTransferBit}}
	graphics := &QueueFamily{Index: 1, VKQueueFamilyProperties: QueueFamilyProperties{QueueFlags: QueueGraphicsBit}}
	qfs := QueueFamilySlice{compute, graphics}

	if got := qfs.FilterCompute(); len(got) != 1 || got[0] != compute {
		t.Errorf("FilterCompute = %v", got)
	}
	if got := qfs.FilterGraphics(); len(got) != 1 || got[0] != graphics {
		t.Errorf("FilterGraphics = %v", got)
	}
	if got := qfs.FilterTransfer(); len(got) != 1 || got[0] != compute {
		t.Errorf("FilterTransfer = %v", got)
	}
}

func TestAppCreateInfo(t *testing.T) {
	app := &App{Name: "demo", EnabledExtensions: []string{"VK_KHR_surface"}}
	info := app.CreateInfo()

	// The API version floors at 1.0; a zero version is rejected by drivers.
	if info.ApplicationInfo.APIVersion != APIVersion10 {
		t.Errorf("api version = %#x", info.ApplicationInfo.APIVersion)
	}
	if info.ApplicationInfo.ApplicationName != "demo" {
		t.Errorf("name = %q", info.ApplicationInfo.ApplicationName)
	}
	if len(info.EnabledExtensionNames) != 1 {
		t.Errorf("extensions = %v", info.EnabledExtensionNames)
	}
}
