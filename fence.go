package vk

import (
	"time"
	"unsafe"
)

type vkFenceCreateInfo struct {
	sType StructureType
	pNext unsafe.Pointer
	flags FenceCreateFlags
}

// Fence is a device-to-host synchronization primitive.
type Fence struct {
	Device  *Device
	VKFence FenceHandle

	destroyed bool
}

// CreateFence creates an unsignaled fence.
func (d *Device) CreateFence() (*Fence, error) {
	return d.CreateFenceWithFlags(0)
}

// CreateSignaledFence creates a fence that starts out signaled.
func (d *Device) CreateSignaledFence() (*Fence, error) {
	return d.CreateFenceWithFlags(FenceCreateSignaledBit)
}

func (d *Device) CreateFenceWithFlags(flags FenceCreateFlags) (*Fence, error) {
	raw := vkFenceCreateInfo{
		sType: StructureTypeFenceCreateInfo,
		flags: flags,
	}
	var fence FenceHandle
	if err := Error(d.cmds.createFence(d.VKDevice, &raw, d.allocator.handle(), &fence)); err != nil {
		return nil, err
	}
	return &Fence{Device: d, VKFence: fence}, nil
}

// Status reports whether the fence is signaled without blocking.
func (f *Fence) Status() (bool, error) {
	res := f.Device.cmds.getFenceStatus(f.Device.VKDevice, f.VKFence)
	switch res {
	case Success:
		return true, nil
	case NotReady:
		return false, nil
	}
	return false, Error(res)
}

// Reset returns the fence to the unsignaled state.
func (f *Fence) Reset() error {
	h := f.VKFence
	return Error(f.Device.cmds.resetFences(f.Device.VKDevice, 1, &h))
}

// Wait blocks until the fence signals or the timeout elapses. A timeout of
// zero or less waits forever. Expiry surfaces as a Timeout result error.
func (f *Fence) Wait(timeout time.Duration) error {
	ns := uint64(^uint64(0))
	if timeout > 0 {
		ns = uint64(timeout.Nanoseconds())
	}
	h := f.VKFence
	return Error(f.Device.cmds.waitForFences(f.Device.VKDevice, 1, &h, True, ns))
}

// WaitForFences waits on several fences at once. With waitAll set the call
// returns when every fence signals, otherwise when any one does.
func (d *Device) WaitForFences(waitAll bool, timeout time.Duration, fences ...*Fence) error {
	if len(fences) == 0 {
		return nil
	}
	ns := uint64(^uint64(0))
	if timeout > 0 {
		ns = uint64(timeout.Nanoseconds())
	}
	handles := make([]FenceHandle, len(fences))
	for i, f := range fences {
		handles[i] = f.VKFence
	}
	return Error(d.cmds.waitForFences(d.VKDevice, uint32(len(handles)), &handles[0], NewBool32(waitAll), ns))
}

// ResetFences resets several fences at once.
func (d *Device) ResetFences(fences ...*Fence) error {
	if len(fences) == 0 {
		return nil
	}
	handles := make([]FenceHandle, len(fences))
	for i, f := range fences {
		handles[i] = f.VKFence
	}
	return Error(d.cmds.resetFences(d.VKDevice, uint32(len(handles)), &handles[0]))
}

// Destroy destroys the fence. Destroying twice is a no-op.
func (f *Fence) Destroy() {
	if f.destroyed || f.VKFence == 0 {
		return
	}
	f.destroyed = true
	f.Device.cmds.destroyFence(f.Device.VKDevice, f.VKFence, f.Device.allocator.handle())
	f.VKFence = 0
}
