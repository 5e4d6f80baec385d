package vk

import "unsafe"

type vkSemaphoreCreateInfo struct {
	sType StructureType
	pNext unsafe.Pointer
	flags SemaphoreCreateFlags
}

// Semaphore is a queue-to-queue synchronization primitive.
type Semaphore struct {
	Device      *Device
	VKSemaphore SemaphoreHandle

	destroyed bool
}

func (d *Device) CreateSemaphore() (*Semaphore, error) {
	raw := vkSemaphoreCreateInfo{sType: StructureTypeSemaphoreCreateInfo}
	var sem SemaphoreHandle
	if err := Error(d.cmds.createSemaphore(d.VKDevice, &raw, d.allocator.handle(), &sem)); err != nil {
		return nil, err
	}
	return &Semaphore{Device: d, VKSemaphore: sem}, nil
}

// Destroy destroys the semaphore. Destroying twice is a no-op.
func (s *Semaphore) Destroy() {
	if s.destroyed || s.VKSemaphore == 0 {
		return
	}
	s.destroyed = true
	s.Device.cmds.destroySemaphore(s.Device.VKDevice, s.VKSemaphore, s.Device.allocator.handle())
	s.VKSemaphore = 0
}
