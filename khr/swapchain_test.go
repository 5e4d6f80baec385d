package khr

import (
	"testing"
	"time"
	"unsafe"

	vk "github.com/discosultan/vk"
)

func fakeSurfaceExtension(formats []SurfaceFormat, modes []vk.PresentMode, caps SurfaceCapabilities) (*SurfaceExtension, *Surface) {
	e := &SurfaceExtension{Instance: &vk.Instance{VKInstance: 1}}
	e.cmds.getPhysicalDeviceSurfaceFormats = func(_ vk.PhysicalDeviceHandle, _ vk.SurfaceHandle, count *uint32, out *SurfaceFormat) vk.Result {
		*count = uint32(len(formats))
		if out != nil {
			copy(unsafe.Slice(out, len(formats)), formats)
		}
		return vk.Success
	}
	e.cmds.getPhysicalDeviceSurfacePresentModes = func(_ vk.PhysicalDeviceHandle, _ vk.SurfaceHandle, count *uint32, out *vk.PresentMode) vk.Result {
		*count = uint32(len(modes))
		if out != nil {
			copy(unsafe.Slice(out, len(modes)), modes)
		}
		return vk.Success
	}
	e.cmds.getPhysicalDeviceSurfaceCapabilities = func(_ vk.PhysicalDeviceHandle, _ vk.SurfaceHandle, out *SurfaceCapabilities) vk.Result {
		*out = caps
		return vk.Success
	}
	return e, &Surface{Extension: e, VKSurface: 7}
}

func fakeSwapchainExtension() (*SwapchainExtension, *vkSwapchainCreateInfo) {
	captured := &vkSwapchainCreateInfo{}
	e := &SwapchainExtension{
		Device: &vk.Device{
			PhysicalDevice: &vk.PhysicalDevice{VKPhysicalDevice: 2},
			VKDevice:       3,
		},
	}
	e.cmds.createSwapchain = func(_ vk.DeviceHandle, info *vkSwapchainCreateInfo, _ uintptr, out *SwapchainHandle) vk.Result {
		*captured = *info
		*out = 11
		return vk.Success
	}
	return e, captured
}

func TestCreateSwapchainPrefersMailboxAndBGRA(t *testing.T) {
	_, surface := fakeSurfaceExtension(
		[]SurfaceFormat{
			{Format: vk.FormatR8G8B8A8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
			{Format: vk.FormatB8G8R8A8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		},
		[]vk.PresentMode{vk.PresentModeFifo, vk.PresentModeMailbox},
		SurfaceCapabilities{
			MinImageCount:    2,
			CurrentExtent:    vk.Extent2D{Width: 800, Height: 600},
			CurrentTransform: SurfaceTransformIdentityBit,
		},
	)
	e, captured := fakeSwapchainExtension()

	family := &vk.QueueFamily{Index: 0}
	queue := &vk.Queue{QueueFamily: family}

	sc, err := e.CreateSwapchain(surface, queue, queue, nil)
	if err != nil {
		t.Fatal(err)
	}

	if captured.sType != vk.StructureTypeSwapchainCreateInfoKHR {
		t.Errorf("sType = %d", captured.sType)
	}
	if captured.presentMode != vk.PresentModeMailbox {
		t.Errorf("present mode = %d, want mailbox", captured.presentMode)
	}
	if captured.imageFormat != vk.FormatB8G8R8A8Unorm {
		t.Errorf("format = %d, want B8G8R8A8", captured.imageFormat)
	}
	if captured.minImageCount != 3 {
		t.Errorf("min image count = %d, want MinImageCount+1", captured.minImageCount)
	}
	if captured.imageExtent != (vk.Extent2D{Width: 800, Height: 600}) {
		t.Errorf("extent = %+v", captured.imageExtent)
	}
	if captured.imageSharingMode != vk.SharingModeExclusive {
		t.Errorf("sharing = %d for a single queue family", captured.imageSharingMode)
	}
	if sc.Format != vk.FormatB8G8R8A8Unorm || sc.VKSwapchain != 11 {
		t.Errorf("swapchain = %+v", sc)
	}
}

func TestCreateSwapchainFallbacks(t *testing.T) {
	// No mailbox, undefined current extent: fall back to fifo and the
	// caller supplied window size.
	_, surface := fakeSurfaceExtension(
		[]SurfaceFormat{{Format: vk.FormatR8G8B8A8Unorm}},
		[]vk.PresentMode{vk.PresentModeFifo},
		SurfaceCapabilities{
			MinImageCount: 2,
			CurrentExtent: vk.Extent2D{Width: ^uint32(0), Height: ^uint32(0)},
		},
	)
	e, captured := fakeSwapchainExtension()

	graphics := &vk.Queue{QueueFamily: &vk.QueueFamily{Index: 0}}
	present := &vk.Queue{QueueFamily: &vk.QueueFamily{Index: 2}}

	_, err := e.CreateSwapchain(surface, graphics, present, &CreateSwapchainOptions{
		ActualSize:                vk.Extent2D{Width: 1024, Height: 768},
		DesiredNumSwapchainImages: 4,
	})
	if err != nil {
		t.Fatal(err)
	}

	if captured.presentMode != vk.PresentModeFifo {
		t.Errorf("present mode = %d, want fifo", captured.presentMode)
	}
	if captured.imageFormat != vk.FormatR8G8B8A8Unorm {
		t.Errorf("format = %d, want the first advertised", captured.imageFormat)
	}
	if captured.imageExtent != (vk.Extent2D{Width: 1024, Height: 768}) {
		t.Errorf("extent = %+v, want the caller size", captured.imageExtent)
	}
	if captured.minImageCount != 4 {
		t.Errorf("min image count = %d", captured.minImageCount)
	}
	// Distinct graphics and present families share the images concurrently.
	if captured.imageSharingMode != vk.SharingModeConcurrent {
		t.Errorf("sharing = %d for distinct families", captured.imageSharingMode)
	}
	if captured.queueFamilyIndexCount != 2 {
		t.Errorf("family index count = %d", captured.queueFamilyIndexCount)
	}
}

func TestAcquireNext(t *testing.T) {
	e, _ := fakeSwapchainExtension()
	sc := &Swapchain{Extension: e, VKSwapchain: 11}

	var gotTimeout uint64
	result := vk.Success
	e.cmds.acquireNextImage = func(_ vk.DeviceHandle, _ SwapchainHandle, timeout uint64, _ vk.SemaphoreHandle, _ vk.FenceHandle, index *uint32) vk.Result {
		gotTimeout = timeout
		*index = 2
		return result
	}

	idx, err := sc.AcquireNext(nil, nil, time.Second)
	if err != nil || idx != 2 {
		t.Fatalf("AcquireNext = %d, %v", idx, err)
	}
	if gotTimeout != uint64(time.Second.Nanoseconds()) {
		t.Errorf("timeout = %d", gotTimeout)
	}

	if _, err := sc.AcquireNext(nil, nil, 0); err != nil {
		t.Fatal(err)
	}
	if gotTimeout != ^uint64(0) {
		t.Errorf("forever timeout = %d", gotTimeout)
	}

	// A suboptimal swapchain still hands back a usable image.
	result = vk.Suboptimal
	if idx, err := sc.AcquireNext(nil, nil, 0); err != nil || idx != 2 {
		t.Errorf("suboptimal acquire = %d, %v", idx, err)
	}

	result = vk.ErrorOutOfDate
	if _, err := sc.AcquireNext(nil, nil, 0); vk.ResultCode(err) != vk.ErrorOutOfDate {
		t.Errorf("out of date acquire error = %v", err)
	}
}

func TestPresent(t *testing.T) {
	e, _ := fakeSwapchainExtension()
	sc := &Swapchain{Extension: e, VKSwapchain: 11}

	var got vkPresentInfo
	e.cmds.queuePresent = func(_ vk.QueueHandle, info *vkPresentInfo) vk.Result {
		got = *info
		return vk.Success
	}

	queue := &vk.Queue{VKQueue: 5}
	wait := &vk.Semaphore{VKSemaphore: 21}
	if err := sc.Present(queue, 1, wait); err != nil {
		t.Fatal(err)
	}

	if got.sType != vk.StructureTypePresentInfoKHR {
		t.Errorf("sType = %d", got.sType)
	}
	if got.swapchainCount != 1 || *got.pSwapchains != 11 || *got.pImageIndices != 1 {
		t.Errorf("present info = %+v", got)
	}
	if got.waitSemaphoreCount != 1 || *got.pWaitSemaphores != 21 {
		t.Errorf("wait semaphores = %+v", got)
	}
}

func TestSwapchainDestroyTwice(t *testing.T) {
	e, _ := fakeSwapchainExtension()
	destroys := 0
	e.cmds.destroySwapchain = func(vk.DeviceHandle, SwapchainHandle, uintptr) { destroys++ }

	sc := &Swapchain{Extension: e, VKSwapchain: 11}
	sc.Destroy()
	sc.Destroy()
	if destroys != 1 {
		t.Errorf("swapchain destroyed %d times", destroys)
	}
}

func TestSurfaceFilters(t *testing.T) {
	e := &SurfaceExtension{Instance: &vk.Instance{VKInstance: 1}}
	e.cmds.getPhysicalDeviceSurfaceSupport = func(_ vk.PhysicalDeviceHandle, family uint32, _ vk.SurfaceHandle, supported *vk.Bool32) vk.Result {
		if family == 1 {
			*supported = vk.True
		}
		return vk.Success
	}
	s := &Surface{Extension: e, VKSurface: 7}

	pd := &vk.PhysicalDevice{VKPhysicalDevice: 2}
	qfs := vk.QueueFamilySlice{
		{Index: 0, PhysicalDevice: pd, VKQueueFamilyProperties: vk.QueueFamilyProperties{QueueFlags: vk.QueueGraphicsBit}},
		{Index: 1, PhysicalDevice: pd, VKQueueFamilyProperties: vk.QueueFamilyProperties{QueueFlags: vk.QueueGraphicsBit}},
	}

	got := s.FilterPresent(qfs)
	if len(got) != 1 || got[0].Index != 1 {
		t.Errorf("FilterPresent = %v", got)
	}
	got = s.FilterGraphicsAndPresent(qfs)
	if len(got) != 1 || got[0].Index != 1 {
		t.Errorf("FilterGraphicsAndPresent = %v", got)
	}
}
