package vk

import (
	"fmt"
	"unsafe"
)

type Queue struct {
	Device      *Device
	QueueFamily *QueueFamily
	VKQueue     QueueHandle
}

type vkSubmitInfo struct {
	sType                StructureType
	pNext                unsafe.Pointer
	waitSemaphoreCount   uint32
	pWaitSemaphores      *SemaphoreHandle
	pWaitDstStageMask    *PipelineStageFlags
	commandBufferCount   uint32
	pCommandBuffers      *CommandBufferHandle
	signalSemaphoreCount uint32
	pSignalSemaphores    *SemaphoreHandle
}

// SubmitInfo is one batch of work for a queue, with the semaphores it
// waits on and signals.
type SubmitInfo struct {
	WaitSemaphores   []*Semaphore
	WaitDstStageMask []PipelineStageFlags
	CommandBuffers   []*CommandBuffer
	SignalSemaphores []*Semaphore
}

func (info *SubmitInfo) vulkanize(a *allocSet) vkSubmitInfo {
	raw := vkSubmitInfo{
		sType:                StructureTypeSubmitInfo,
		waitSemaphoreCount:   uint32(len(info.WaitSemaphores)),
		commandBufferCount:   uint32(len(info.CommandBuffers)),
		signalSemaphoreCount: uint32(len(info.SignalSemaphores)),
	}
	if len(info.WaitSemaphores) > 0 {
		waits := make([]SemaphoreHandle, len(info.WaitSemaphores))
		for i, s := range info.WaitSemaphores {
			waits[i] = s.VKSemaphore
		}
		raw.pWaitSemaphores = sliceData(a, waits)
	}
	raw.pWaitDstStageMask = sliceData(a, info.WaitDstStageMask)
	if len(info.CommandBuffers) > 0 {
		cbs := make([]CommandBufferHandle, len(info.CommandBuffers))
		for i, cb := range info.CommandBuffers {
			cbs[i] = cb.VKCommandBuffer
		}
		raw.pCommandBuffers = sliceData(a, cbs)
	}
	if len(info.SignalSemaphores) > 0 {
		signals := make([]SemaphoreHandle, len(info.SignalSemaphores))
		for i, s := range info.SignalSemaphores {
			signals[i] = s.VKSemaphore
		}
		raw.pSignalSemaphores = sliceData(a, signals)
	}
	return raw
}

// Submit submits batches to the queue, optionally signalling a fence when
// all of them complete. A nil fence is allowed.
func (q *Queue) Submit(fence *Fence, infos ...*SubmitInfo) error {
	var a allocSet
	raws := make([]vkSubmitInfo, len(infos))
	for i := range infos {
		raws[i] = infos[i].vulkanize(&a)
	}
	var fh FenceHandle
	if fence != nil {
		fh = fence.VKFence
	}
	res := q.Device.cmds.queueSubmit(q.VKQueue, uint32(len(raws)), sliceData(&a, raws), fh)
	a.release()
	return Error(res)
}

func (q *Queue) WaitIdle() error {
	return Error(q.Device.cmds.queueWaitIdle(q.VKQueue))
}

// SubmitWaitIdle submits the command buffers as one batch and blocks until
// the queue drains.
func (q *Queue) SubmitWaitIdle(buffers ...*CommandBuffer) error {
	if err := q.Submit(nil, &SubmitInfo{CommandBuffers: buffers}); err != nil {
		return err
	}
	return q.WaitIdle()
}

// SubmitWithFence submits the command buffers as one batch, signalling the
// fence on completion.
func (q *Queue) SubmitWithFence(fence *Fence, buffers ...*CommandBuffer) error {
	return q.Submit(fence, &SubmitInfo{CommandBuffers: buffers})
}

func (q *Queue) String() string {
	return fmt.Sprintf("{Device: %s QueueFamily: %s}", q.Device.String(), q.QueueFamily.String())
}
