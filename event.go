package vk

import "unsafe"

type vkEventCreateInfo struct {
	sType StructureType
	pNext unsafe.Pointer
	flags EventCreateFlags
}

// Event is a fine grained synchronization primitive the host and device can
// both signal and poll.
type Event struct {
	Device  *Device
	VKEvent EventHandle

	destroyed bool
}

func (d *Device) CreateEvent() (*Event, error) {
	raw := vkEventCreateInfo{sType: StructureTypeEventCreateInfo}
	var event EventHandle
	if err := Error(d.cmds.createEvent(d.VKDevice, &raw, d.allocator.handle(), &event)); err != nil {
		return nil, err
	}
	return &Event{Device: d, VKEvent: event}, nil
}

// Status reports whether the event is currently set.
func (e *Event) Status() (bool, error) {
	res := e.Device.cmds.getEventStatus(e.Device.VKDevice, e.VKEvent)
	switch res {
	case EventSet:
		return true, nil
	case EventReset:
		return false, nil
	}
	return false, Error(res)
}

// Set signals the event from the host.
func (e *Event) Set() error {
	return Error(e.Device.cmds.setEvent(e.Device.VKDevice, e.VKEvent))
}

// Reset unsignals the event from the host.
func (e *Event) Reset() error {
	return Error(e.Device.cmds.resetEvent(e.Device.VKDevice, e.VKEvent))
}

// Destroy destroys the event. Destroying twice is a no-op.
func (e *Event) Destroy() {
	if e.destroyed || e.VKEvent == 0 {
		return
	}
	e.destroyed = true
	e.Device.cmds.destroyEvent(e.Device.VKDevice, e.VKEvent, e.Device.allocator.handle())
	e.VKEvent = 0
}
