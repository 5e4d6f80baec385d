package khr

import (
	"runtime"
	"time"
	"unsafe"

	"github.com/cockroachdb/errors"

	vk "github.com/discosultan/vk"
)

// SwapchainHandle is the non-dispatchable VkSwapchainKHR handle.
type SwapchainHandle uint64

type SwapchainCreateFlags uint32

type vkSwapchainCreateInfo struct {
	sType                 vk.StructureType
	pNext                 unsafe.Pointer
	flags                 SwapchainCreateFlags
	surface               vk.SurfaceHandle
	minImageCount         uint32
	imageFormat           vk.Format
	imageColorSpace       vk.ColorSpace
	imageExtent           vk.Extent2D
	imageArrayLayers      uint32
	imageUsage            vk.ImageUsageFlags
	imageSharingMode      vk.SharingMode
	queueFamilyIndexCount uint32
	pQueueFamilyIndices   *uint32
	preTransform          SurfaceTransformFlags
	compositeAlpha        CompositeAlphaFlags
	presentMode           vk.PresentMode
	clipped               vk.Bool32
	oldSwapchain          SwapchainHandle
}

type vkPresentInfo struct {
	sType              vk.StructureType
	pNext              unsafe.Pointer
	waitSemaphoreCount uint32
	pWaitSemaphores    *vk.SemaphoreHandle
	swapchainCount     uint32
	pSwapchains        *SwapchainHandle
	pImageIndices      *uint32
	pResults           *vk.Result
}

type swapchainCommands struct {
	createSwapchain    func(vk.DeviceHandle, *vkSwapchainCreateInfo, uintptr, *SwapchainHandle) vk.Result
	destroySwapchain   func(vk.DeviceHandle, SwapchainHandle, uintptr)
	getSwapchainImages func(vk.DeviceHandle, SwapchainHandle, *uint32, *vk.ImageHandle) vk.Result
	acquireNextImage   func(vk.DeviceHandle, SwapchainHandle, uint64, vk.SemaphoreHandle, vk.FenceHandle, *uint32) vk.Result
	queuePresent       func(vk.QueueHandle, *vkPresentInfo) vk.Result
}

// SwapchainExtension is the device level VK_KHR_swapchain wrapper.
type SwapchainExtension struct {
	Device *vk.Device

	cmds swapchainCommands
}

// NewSwapchainExtension resolves the swapchain commands from the device.
// The device must have been created with VK_KHR_swapchain enabled.
func NewSwapchainExtension(device *vk.Device) (*SwapchainExtension, error) {
	e := &SwapchainExtension{Device: device}

	addr := func(name string) uintptr {
		a, _ := device.ProcAddr(name)
		return a
	}
	ok := vk.RegisterProc(&e.cmds.createSwapchain, addr("vkCreateSwapchainKHR"))
	ok = vk.RegisterProc(&e.cmds.destroySwapchain, addr("vkDestroySwapchainKHR")) && ok
	ok = vk.RegisterProc(&e.cmds.getSwapchainImages, addr("vkGetSwapchainImagesKHR")) && ok
	ok = vk.RegisterProc(&e.cmds.acquireNextImage, addr("vkAcquireNextImageKHR")) && ok
	ok = vk.RegisterProc(&e.cmds.queuePresent, addr("vkQueuePresentKHR")) && ok
	if !ok {
		return nil, errors.Wrap(vk.ErrNotSupported, SwapchainExtensionName)
	}
	return e, nil
}

// Swapchain owns a set of presentable images bound to a surface.
type Swapchain struct {
	Extension   *SwapchainExtension
	Extent      vk.Extent2D
	Format      vk.Format
	VKSwapchain SwapchainHandle

	destroyed bool
}

// CreateSwapchainOptions carries the optional parts of swapchain creation.
type CreateSwapchainOptions struct {
	OldSwapchain              *Swapchain
	ActualSize                vk.Extent2D
	DesiredNumSwapchainImages int
}

// DefaultNumSwapchainImages is one above the surface's minimum, which
// gives the driver headroom for mailbox style presentation.
func (e *SwapchainExtension) DefaultNumSwapchainImages(surface *Surface) (int, error) {
	caps, err := surface.Capabilities(e.Device.PhysicalDevice)
	if err != nil {
		return 0, err
	}
	return int(caps.MinImageCount) + 1, nil
}

// CreateSwapchain builds a swapchain for the surface, preferring mailbox
// presentation and a B8G8R8A8 format when available.
func (e *SwapchainExtension) CreateSwapchain(surface *Surface, graphicsQueue, presentQueue *vk.Queue, options *CreateSwapchainOptions) (*Swapchain, error) {
	pd := e.Device.PhysicalDevice

	modes, err := surface.PresentModes(pd)
	if err != nil {
		return nil, err
	}

	presentMode := vk.PresentModeFifo
	if m := modes.Filter(vk.PresentModeMailbox); len(m) > 0 {
		presentMode = m[0]
	}

	formats, err := surface.Formats(pd)
	if err != nil {
		return nil, err
	}

	var format SurfaceFormat
	if len(formats) > 0 {
		format = formats[0]
	}
	for _, f := range formats {
		if f.Format == vk.FormatB8G8R8A8Unorm {
			format = f
			break
		}
	}

	caps, err := surface.Capabilities(pd)
	if err != nil {
		return nil, err
	}

	var swapchainSize vk.Extent2D
	if caps.CurrentExtent.Width == ^uint32(0) {
		if options != nil {
			swapchainSize = options.ActualSize
		} else {
			swapchainSize = caps.MinImageExtent
		}
	} else {
		swapchainSize = caps.CurrentExtent
	}

	desiredSwapchainImages := 0
	if options != nil {
		desiredSwapchainImages = options.DesiredNumSwapchainImages
	}
	if desiredSwapchainImages == 0 {
		desiredSwapchainImages = int(caps.MinImageCount) + 1
	}

	createInfo := vkSwapchainCreateInfo{
		sType:            vk.StructureTypeSwapchainCreateInfoKHR,
		surface:          surface.VKSurface,
		minImageCount:    uint32(desiredSwapchainImages),
		imageFormat:      format.Format,
		imageColorSpace:  format.ColorSpace,
		imageExtent:      swapchainSize,
		presentMode:      presentMode,
		imageUsage:       vk.ImageUsageColorAttachmentBit,
		imageArrayLayers: 1,
		clipped:          vk.True,
		preTransform:     caps.CurrentTransform,
		compositeAlpha:   CompositeAlphaOpaqueBit,
		imageSharingMode: vk.SharingModeExclusive,
	}
	if options != nil && options.OldSwapchain != nil {
		createInfo.oldSwapchain = options.OldSwapchain.VKSwapchain
	}

	var indices []uint32
	if graphicsQueue.QueueFamily.Index != presentQueue.QueueFamily.Index {
		indices = []uint32{uint32(graphicsQueue.QueueFamily.Index), uint32(presentQueue.QueueFamily.Index)}
		createInfo.queueFamilyIndexCount = 2
		createInfo.pQueueFamilyIndices = &indices[0]
		createInfo.imageSharingMode = vk.SharingModeConcurrent
	}

	var swapchain SwapchainHandle
	res := e.cmds.createSwapchain(e.Device.VKDevice, &createInfo, 0, &swapchain)
	runtime.KeepAlive(indices)
	if err := vk.Error(res); err != nil {
		return nil, err
	}

	return &Swapchain{
		Extension:   e,
		VKSwapchain: swapchain,
		Extent:      swapchainSize,
		Format:      format.Format,
	}, nil
}

// GetImages returns the presentable images. They are owned by the
// swapchain and must not be destroyed by the caller.
func (s *Swapchain) GetImages() ([]*vk.Image, error) {
	e := s.Extension
	var imageCount uint32
	if err := vk.Error(e.cmds.getSwapchainImages(e.Device.VKDevice, s.VKSwapchain, &imageCount, nil)); err != nil {
		return nil, err
	}
	if imageCount == 0 {
		return nil, nil
	}

	handles := make([]vk.ImageHandle, imageCount)
	if err := vk.Error(e.cmds.getSwapchainImages(e.Device.VKDevice, s.VKSwapchain, &imageCount, &handles[0])); err != nil {
		return nil, err
	}

	ret := make([]*vk.Image, imageCount)
	for i := range handles {
		ret[i] = &vk.Image{Device: e.Device, VKImage: handles[i], VKFormat: s.Format}
	}
	return ret, nil
}

// AcquireNext blocks until the next presentable image is available,
// signalling the given semaphore and/or fence. A timeout of zero or less
// waits forever. The Timeout and NotReady results surface as errors; a
// Suboptimal result returns the index with a nil error.
func (s *Swapchain) AcquireNext(semaphore *vk.Semaphore, fence *vk.Fence, timeout time.Duration) (int, error) {
	ns := uint64(^uint64(0))
	if timeout > 0 {
		ns = uint64(timeout.Nanoseconds())
	}
	var sem vk.SemaphoreHandle
	if semaphore != nil {
		sem = semaphore.VKSemaphore
	}
	var fen vk.FenceHandle
	if fence != nil {
		fen = fence.VKFence
	}

	var index uint32
	res := s.Extension.cmds.acquireNextImage(s.Extension.Device.VKDevice, s.VKSwapchain, ns, sem, fen, &index)
	if res == vk.Suboptimal {
		return int(index), nil
	}
	if err := vk.Error(res); err != nil {
		return 0, err
	}
	return int(index), nil
}

// Present queues the image at index for presentation, waiting on the given
// semaphores first.
func (s *Swapchain) Present(queue *vk.Queue, index int, waitSemaphores ...*vk.Semaphore) error {
	waits := make([]vk.SemaphoreHandle, len(waitSemaphores))
	for i, sem := range waitSemaphores {
		waits[i] = sem.VKSemaphore
	}

	sc := s.VKSwapchain
	idx := uint32(index)
	info := vkPresentInfo{
		sType:          vk.StructureTypePresentInfoKHR,
		swapchainCount: 1,
		pSwapchains:    &sc,
		pImageIndices:  &idx,
	}
	if len(waits) > 0 {
		info.waitSemaphoreCount = uint32(len(waits))
		info.pWaitSemaphores = &waits[0]
	}

	res := s.Extension.cmds.queuePresent(queue.VKQueue, &info)
	runtime.KeepAlive(waits)
	if res == vk.Suboptimal {
		return nil
	}
	return vk.Error(res)
}

// Destroy destroys the swapchain. Destroying twice is a no-op.
func (s *Swapchain) Destroy() {
	if s.destroyed || s.VKSwapchain == 0 {
		return
	}
	s.destroyed = true
	s.Extension.cmds.destroySwapchain(s.Extension.Device.VKDevice, s.VKSwapchain, 0)
	s.VKSwapchain = 0
}
