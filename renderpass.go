package vk

import "unsafe"

// AttachmentDescription describes one render pass attachment.
type AttachmentDescription struct {
	Flags          AttachmentDescriptionFlags
	Format         Format
	Samples        SampleCountFlags
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

// AttachmentReference points a subpass at an attachment by index.
type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

// SubpassDescription describes the attachments one subpass touches.
type SubpassDescription struct {
	Flags                  SubpassDescriptionFlags
	PipelineBindPoint      PipelineBindPoint
	InputAttachments       []AttachmentReference
	ColorAttachments       []AttachmentReference
	ResolveAttachments     []AttachmentReference
	DepthStencilAttachment *AttachmentReference
	PreserveAttachments    []uint32
}

type vkSubpassDescription struct {
	flags                   SubpassDescriptionFlags
	pipelineBindPoint       PipelineBindPoint
	inputAttachmentCount    uint32
	pInputAttachments       *AttachmentReference
	colorAttachmentCount    uint32
	pColorAttachments       *AttachmentReference
	pResolveAttachments     *AttachmentReference
	pDepthStencilAttachment *AttachmentReference
	preserveAttachmentCount uint32
	pPreserveAttachments    *uint32
}

// SubpassDependency orders execution and memory between two subpasses.
type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    PipelineStageFlags
	DstStageMask    PipelineStageFlags
	SrcAccessMask   AccessFlags
	DstAccessMask   AccessFlags
	DependencyFlags DependencyFlags
}

type vkRenderPassCreateInfo struct {
	sType           StructureType
	pNext           unsafe.Pointer
	flags           RenderPassCreateFlags
	attachmentCount uint32
	pAttachments    *AttachmentDescription
	subpassCount    uint32
	pSubpasses      *vkSubpassDescription
	dependencyCount uint32
	pDependencies   *SubpassDependency
}

// RenderPassCreateInfo configures render pass creation.
type RenderPassCreateInfo struct {
	Next         unsafe.Pointer
	Flags        RenderPassCreateFlags
	Attachments  []AttachmentDescription
	Subpasses    []SubpassDescription
	Dependencies []SubpassDependency
}

type RenderPass struct {
	Device       *Device
	VKRenderPass RenderPassHandle

	destroyed bool
}

func (s *SubpassDescription) vulkanize(a *allocSet) vkSubpassDescription {
	raw := vkSubpassDescription{
		flags:                   s.Flags,
		pipelineBindPoint:       s.PipelineBindPoint,
		inputAttachmentCount:    uint32(len(s.InputAttachments)),
		pInputAttachments:       sliceData(a, s.InputAttachments),
		colorAttachmentCount:    uint32(len(s.ColorAttachments)),
		pColorAttachments:       sliceData(a, s.ColorAttachments),
		pResolveAttachments:     sliceData(a, s.ResolveAttachments),
		preserveAttachmentCount: uint32(len(s.PreserveAttachments)),
		pPreserveAttachments:    sliceData(a, s.PreserveAttachments),
	}
	if s.DepthStencilAttachment != nil {
		ref := *s.DepthStencilAttachment
		a.keep(&ref)
		raw.pDepthStencilAttachment = &ref
	}
	return raw
}

func (d *Device) CreateRenderPass(info *RenderPassCreateInfo) (*RenderPass, error) {
	var a allocSet

	subs := make([]vkSubpassDescription, len(info.Subpasses))
	for i := range info.Subpasses {
		subs[i] = info.Subpasses[i].vulkanize(&a)
	}

	raw := vkRenderPassCreateInfo{
		sType:           StructureTypeRenderPassCreateInfo,
		pNext:           info.Next,
		flags:           info.Flags,
		attachmentCount: uint32(len(info.Attachments)),
		pAttachments:    sliceData(&a, info.Attachments),
		subpassCount:    uint32(len(subs)),
		pSubpasses:      sliceData(&a, subs),
		dependencyCount: uint32(len(info.Dependencies)),
		pDependencies:   sliceData(&a, info.Dependencies),
	}

	var rp RenderPassHandle
	res := d.cmds.createRenderPass(d.VKDevice, &raw, d.allocator.handle(), &rp)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	return &RenderPass{Device: d, VKRenderPass: rp}, nil
}

// CreateSimpleRenderPass builds the common single subpass color-only pass
// that clears on load and transitions to the present layout.
func (d *Device) CreateSimpleRenderPass(format Format) (*RenderPass, error) {
	return d.CreateRenderPass(&RenderPassCreateInfo{
		Attachments: []AttachmentDescription{{
			Format:        format,
			Samples:       SampleCount1Bit,
			LoadOp:        AttachmentLoadOpClear,
			StoreOp:       AttachmentStoreOpStore,
			InitialLayout: ImageLayoutUndefined,
			FinalLayout:   ImageLayoutPresentSrc,
		}},
		Subpasses: []SubpassDescription{{
			PipelineBindPoint: PipelineBindPointGraphics,
			ColorAttachments: []AttachmentReference{{
				Attachment: 0,
				Layout:     ImageLayoutColorAttachmentOptimal,
			}},
		}},
		Dependencies: []SubpassDependency{{
			SrcSubpass:    SubpassExternal,
			DstSubpass:    0,
			SrcStageMask:  PipelineStageColorAttachmentOutputBit,
			DstStageMask:  PipelineStageColorAttachmentOutputBit,
			DstAccessMask: AccessColorAttachmentWriteBit,
		}},
	})
}

// Destroy destroys the render pass. Destroying twice is a no-op.
func (r *RenderPass) Destroy() {
	if r.destroyed || r.VKRenderPass == 0 {
		return
	}
	r.destroyed = true
	r.Device.cmds.destroyRenderPass(r.Device.VKDevice, r.VKRenderPass, r.Device.allocator.handle())
	r.VKRenderPass = 0
}
