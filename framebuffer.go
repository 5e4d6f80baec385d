package vk

import "unsafe"

type vkFramebufferCreateInfo struct {
	sType           StructureType
	pNext           unsafe.Pointer
	flags           FramebufferCreateFlags
	renderPass      RenderPassHandle
	attachmentCount uint32
	pAttachments    *ImageViewHandle
	width           uint32
	height          uint32
	layers          uint32
}

// Framebuffer binds image views to a render pass's attachments.
type Framebuffer struct {
	Device        *Device
	VKFramebuffer FramebufferHandle

	destroyed bool
}

func (d *Device) CreateFramebuffer(renderPass *RenderPass, extent Extent2D, attachments ...*ImageView) (*Framebuffer, error) {
	var a allocSet
	views := make([]ImageViewHandle, len(attachments))
	for i, v := range attachments {
		views[i] = v.VKImageView
	}

	info := vkFramebufferCreateInfo{
		sType:           StructureTypeFramebufferCreateInfo,
		renderPass:      renderPass.VKRenderPass,
		attachmentCount: uint32(len(views)),
		pAttachments:    sliceData(&a, views),
		width:           extent.Width,
		height:          extent.Height,
		layers:          1,
	}

	var fb FramebufferHandle
	res := d.cmds.createFramebuffer(d.VKDevice, &info, d.allocator.handle(), &fb)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	return &Framebuffer{Device: d, VKFramebuffer: fb}, nil
}

// Destroy destroys the framebuffer. Destroying twice is a no-op.
func (f *Framebuffer) Destroy() {
	if f.destroyed || f.VKFramebuffer == 0 {
		return
	}
	f.destroyed = true
	f.Device.cmds.destroyFramebuffer(f.Device.VKDevice, f.VKFramebuffer, f.Device.allocator.handle())
	f.VKFramebuffer = 0
}
