package vk

import "unsafe"

// PipelineShaderStage names the module and entry point for one stage.
type PipelineShaderStage struct {
	Stage  ShaderStageFlags
	Module *ShaderModule
	Name   string
}

type vkPipelineShaderStageCreateInfo struct {
	sType               StructureType
	pNext               unsafe.Pointer
	flags               PipelineShaderStageCreateFlags
	stage               ShaderStageFlags
	module              ShaderModuleHandle
	pName               *byte
	pSpecializationInfo unsafe.Pointer
}

func (s *PipelineShaderStage) vulkanize(a *allocSet) vkPipelineShaderStageCreateInfo {
	name := s.Name
	if name == "" {
		name = "main"
	}
	return vkPipelineShaderStageCreateInfo{
		sType:  StructureTypePipelineShaderStageCreateInfo,
		stage:  s.Stage,
		module: s.Module.VKShaderModule,
		pName:  a.cstring(name),
	}
}

type vkComputePipelineCreateInfo struct {
	sType              StructureType
	pNext              unsafe.Pointer
	flags              PipelineCreateFlags
	stage              vkPipelineShaderStageCreateInfo
	layout             PipelineLayoutHandle
	basePipelineHandle PipelineHandle
	basePipelineIndex  int32
}

type ComputePipeline struct {
	Device           *Device
	VKPipeline       PipelineHandle
	ShaderStage      PipelineShaderStage
	VKPipelineLayout PipelineLayoutHandle

	destroyed bool
}

func (c *ComputePipeline) SetPipelineLayout(layout *PipelineLayout) {
	c.VKPipelineLayout = layout.VKPipelineLayout
}

func (c *ComputePipeline) SetShaderStage(entryPoint string, shaderModule *ShaderModule) {
	c.ShaderStage = shaderModule.VKPipelineShaderStageCreateInfo(ShaderStageComputeBit, entryPoint)
}

func (d *Device) CreateComputePipelines(pc *PipelineCache, cp ...*ComputePipeline) error {
	var a allocSet

	ci := make([]vkComputePipelineCreateInfo, len(cp))
	for i, p := range cp {
		ci[i] = vkComputePipelineCreateInfo{
			sType:             StructureTypeComputePipelineCreateInfo,
			stage:             p.ShaderStage.vulkanize(&a),
			layout:            p.VKPipelineLayout,
			basePipelineIndex: -1,
		}
	}

	pipelines := make([]PipelineHandle, len(cp))
	var cache PipelineCacheHandle
	if pc != nil {
		cache = pc.VKPipelineCache
	}
	res := d.cmds.createComputePipelines(d.VKDevice, cache, uint32(len(ci)), &ci[0], d.allocator.handle(), &pipelines[0])
	a.release()
	if err := Error(res); err != nil {
		return err
	}

	for i := range pipelines {
		cp[i].Device = d
		cp[i].VKPipeline = pipelines[i]
	}
	return nil
}

// Destroy destroys the pipeline. Destroying twice is a no-op.
func (c *ComputePipeline) Destroy() {
	if c.destroyed || c.VKPipeline == 0 {
		return
	}
	c.destroyed = true
	c.Device.cmds.destroyPipeline(c.Device.VKDevice, c.VKPipeline, c.Device.allocator.handle())
	c.VKPipeline = 0
}

// StencilOpState configures one face of the stencil test.
type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// PipelineColorBlendAttachmentState configures blending for one color
// attachment.
type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

type vkPipelineVertexInputStateCreateInfo struct {
	sType                           StructureType
	pNext                           unsafe.Pointer
	flags                           PipelineVertexInputStateCreateFlags
	vertexBindingDescriptionCount   uint32
	pVertexBindingDescriptions      *VertexInputBindingDescription
	vertexAttributeDescriptionCount uint32
	pVertexAttributeDescriptions    *VertexInputAttributeDescription
}

type vkPipelineInputAssemblyStateCreateInfo struct {
	sType                  StructureType
	pNext                  unsafe.Pointer
	flags                  PipelineInputAssemblyStateCreateFlags
	topology               PrimitiveTopology
	primitiveRestartEnable Bool32
}

type vkPipelineTessellationStateCreateInfo struct {
	sType              StructureType
	pNext              unsafe.Pointer
	flags              PipelineTessellationStateCreateFlags
	patchControlPoints uint32
}

type vkPipelineViewportStateCreateInfo struct {
	sType         StructureType
	pNext         unsafe.Pointer
	flags         PipelineViewportStateCreateFlags
	viewportCount uint32
	pViewports    *Viewport
	scissorCount  uint32
	pScissors     *Rect2D
}

type vkPipelineRasterizationStateCreateInfo struct {
	sType                   StructureType
	pNext                   unsafe.Pointer
	flags                   PipelineRasterizationStateCreateFlags
	depthClampEnable        Bool32
	rasterizerDiscardEnable Bool32
	polygonMode             PolygonMode
	cullMode                CullModeFlags
	frontFace               FrontFace
	depthBiasEnable         Bool32
	depthBiasConstantFactor float32
	depthBiasClamp          float32
	depthBiasSlopeFactor    float32
	lineWidth               float32
}

type vkPipelineMultisampleStateCreateInfo struct {
	sType                 StructureType
	pNext                 unsafe.Pointer
	flags                 PipelineMultisampleStateCreateFlags
	rasterizationSamples  SampleCountFlags
	sampleShadingEnable   Bool32
	minSampleShading      float32
	pSampleMask           *uint32
	alphaToCoverageEnable Bool32
	alphaToOneEnable      Bool32
}

type vkPipelineDepthStencilStateCreateInfo struct {
	sType                 StructureType
	pNext                 unsafe.Pointer
	flags                 PipelineDepthStencilStateCreateFlags
	depthTestEnable       Bool32
	depthWriteEnable      Bool32
	depthCompareOp        CompareOp
	depthBoundsTestEnable Bool32
	stencilTestEnable     Bool32
	front                 StencilOpState
	back                  StencilOpState
	minDepthBounds        float32
	maxDepthBounds        float32
}

type vkPipelineColorBlendAttachmentState struct {
	blendEnable         Bool32
	srcColorBlendFactor BlendFactor
	dstColorBlendFactor BlendFactor
	colorBlendOp        BlendOp
	srcAlphaBlendFactor BlendFactor
	dstAlphaBlendFactor BlendFactor
	alphaBlendOp        BlendOp
	colorWriteMask      ColorComponentFlags
}

type vkPipelineColorBlendStateCreateInfo struct {
	sType           StructureType
	pNext           unsafe.Pointer
	flags           PipelineColorBlendStateCreateFlags
	logicOpEnable   Bool32
	logicOp         LogicOp
	attachmentCount uint32
	pAttachments    *vkPipelineColorBlendAttachmentState
	blendConstants  [4]float32
}

type vkPipelineDynamicStateCreateInfo struct {
	sType             StructureType
	pNext             unsafe.Pointer
	flags             PipelineDynamicStateCreateFlags
	dynamicStateCount uint32
	pDynamicStates    *DynamicState
}

type vkGraphicsPipelineCreateInfo struct {
	sType               StructureType
	pNext               unsafe.Pointer
	flags               PipelineCreateFlags
	stageCount          uint32
	pStages             *vkPipelineShaderStageCreateInfo
	pVertexInputState   *vkPipelineVertexInputStateCreateInfo
	pInputAssemblyState *vkPipelineInputAssemblyStateCreateInfo
	pTessellationState  *vkPipelineTessellationStateCreateInfo
	pViewportState      *vkPipelineViewportStateCreateInfo
	pRasterizationState *vkPipelineRasterizationStateCreateInfo
	pMultisampleState   *vkPipelineMultisampleStateCreateInfo
	pDepthStencilState  *vkPipelineDepthStencilStateCreateInfo
	pColorBlendState    *vkPipelineColorBlendStateCreateInfo
	pDynamicState       *vkPipelineDynamicStateCreateInfo
	layout              PipelineLayoutHandle
	renderPass          RenderPassHandle
	subpass             uint32
	basePipelineHandle  PipelineHandle
	basePipelineIndex   int32
}

type GraphicsPipeline struct {
	Device     *Device
	VKPipeline PipelineHandle

	destroyed bool
}

// Destroy destroys the pipeline. Destroying twice is a no-op.
func (g *GraphicsPipeline) Destroy() {
	if g.destroyed || g.VKPipeline == 0 {
		return
	}
	g.destroyed = true
	g.Device.cmds.destroyPipeline(g.Device.VKDevice, g.VKPipeline, g.Device.allocator.handle())
	g.VKPipeline = 0
}

// GraphicsPipelineConfig is a utility object to ease construction of graphics pipelines
type GraphicsPipelineConfig struct {
	Device               *Device
	ShaderStages         []PipelineShaderStage
	DescriptorSetLayouts []*DescriptorSetLayout

	PipelineLayout *PipelineLayout

	// PrimitiveTopology defaults to triangle lists
	PrimitiveTopology      PrimitiveTopology
	PrimitiveRestartEnable Bool32

	// PolygonMode defaults to fill
	PolygonMode PolygonMode

	// LineWidth of rasterized lines, defaults to 1.0
	LineWidth float32

	// CullMode defaults to back face culling
	CullMode CullModeFlags

	// DynamicState specifies which parts of the pipeline may be modified
	// by the command buffer; defaults to none
	DynamicState []DynamicState

	// FrontFace defaults to counter clockwise
	FrontFace FrontFace

	// BlendAttachments default to a single attachment with blending off
	BlendAttachments []PipelineColorBlendAttachmentState

	// DepthTestEnable defaults to true
	DepthTestEnable bool

	// DepthWriteEnable defaults to true
	DepthWriteEnable bool

	VertexInputBindingDescriptions   []VertexInputBindingDescription
	VertexInputAttributeDescriptions []VertexInputAttributeDescription

	toDestroy []Destroyer

	Viewport *Viewport
}

// CreateGraphicsPipelineConfig creates a new config object
func (d *Device) CreateGraphicsPipelineConfig() *GraphicsPipelineConfig {
	return &GraphicsPipelineConfig{
		Device:                 d,
		PrimitiveTopology:      PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: False,
		PolygonMode:            PolygonModeFill,
		LineWidth:              1.0,
		CullMode:               CullModeBackBit,
		FrontFace:              FrontFaceCounterClockwise,
		DepthTestEnable:        true,
		DepthWriteEnable:       true,
	}
}

func (g *GraphicsPipelineConfig) manageDestroy(d Destroyer) {
	g.toDestroy = append(g.toDestroy, d)
}

func (g *GraphicsPipelineConfig) Destroy() {
	for _, d := range g.toDestroy {
		d.Destroy()
	}
}

// AddBlendAttachment adds a new blend attachment
func (g *GraphicsPipelineConfig) AddBlendAttachment(ba PipelineColorBlendAttachmentState) {
	g.BlendAttachments = append(g.BlendAttachments, ba)
}

// SetCullMode sets the cull mode
func (g *GraphicsPipelineConfig) SetCullMode(mode CullModeFlags) *GraphicsPipelineConfig {
	g.CullMode = mode
	return g
}

// SetDynamicState specifies which part of the pipeline may be changed with command buffer commands
func (g *GraphicsPipelineConfig) SetDynamicState(states ...DynamicState) *GraphicsPipelineConfig {
	g.DynamicState = states
	return g
}

// AddShaderStageFromFile adds a shader from a specified file
func (g *GraphicsPipelineConfig) AddShaderStageFromFile(file, entryPoint string, stageType ShaderStageFlags) error {
	shader, err := g.Device.LoadShaderModuleFromFile(file)
	if err != nil {
		return err
	}
	g.ShaderStages = append(g.ShaderStages, shader.VKPipelineShaderStageCreateInfo(stageType, entryPoint))
	g.manageDestroy(shader)
	return nil
}

// SetPipelineLayout sets the pipeline layout
func (g *GraphicsPipelineConfig) SetPipelineLayout(layout *PipelineLayout) *GraphicsPipelineConfig {
	g.PipelineLayout = layout
	return g
}

// SetShaderStages sets the shader stages directly
func (g *GraphicsPipelineConfig) SetShaderStages(shaderStages []PipelineShaderStage) *GraphicsPipelineConfig {
	g.ShaderStages = shaderStages
	return g
}

// AddVertexDescriptor adds vertex descriptors based off the specified interface
func (g *GraphicsPipelineConfig) AddVertexDescriptor(v VertexDescriptor) *GraphicsPipelineConfig {
	g.VertexInputBindingDescriptions = append(g.VertexInputBindingDescriptions, v.GetBindingDescription())
	g.VertexInputAttributeDescriptions = append(g.VertexInputAttributeDescriptions, v.GetAttributeDescriptions()...)
	return g
}

// AddDescriptorSetLayout adds a specific DescriptorSetLayout
func (g *GraphicsPipelineConfig) AddDescriptorSetLayout(d *DescriptorSetLayout) *GraphicsPipelineConfig {
	g.DescriptorSetLayouts = append(g.DescriptorSetLayouts, d)
	return g
}

func (g *GraphicsPipelineConfig) vulkanize(a *allocSet, extent Extent2D, renderPass *RenderPass) vkGraphicsPipelineCreateInfo {
	vertexInputState := &vkPipelineVertexInputStateCreateInfo{
		sType:                           StructureTypePipelineVertexInputStateCreateInfo,
		vertexBindingDescriptionCount:   uint32(len(g.VertexInputBindingDescriptions)),
		pVertexBindingDescriptions:      sliceData(a, g.VertexInputBindingDescriptions),
		vertexAttributeDescriptionCount: uint32(len(g.VertexInputAttributeDescriptions)),
		pVertexAttributeDescriptions:    sliceData(a, g.VertexInputAttributeDescriptions),
	}
	a.keep(vertexInputState)

	inputAssemblyState := &vkPipelineInputAssemblyStateCreateInfo{
		sType:                  StructureTypePipelineInputAssemblyStateCreateInfo,
		topology:               g.PrimitiveTopology,
		primitiveRestartEnable: g.PrimitiveRestartEnable,
	}
	a.keep(inputAssemblyState)

	viewport := Viewport{
		Width:    float32(extent.Width),
		Height:   float32(extent.Height),
		MaxDepth: 1.0,
	}
	if g.Viewport != nil {
		viewport = *g.Viewport
	}
	scissor := Rect2D{Extent: extent}

	viewportState := &vkPipelineViewportStateCreateInfo{
		sType:         StructureTypePipelineViewportStateCreateInfo,
		viewportCount: 1,
		pViewports:    sliceData(a, []Viewport{viewport}),
		scissorCount:  1,
		pScissors:     sliceData(a, []Rect2D{scissor}),
	}
	a.keep(viewportState)

	rasterState := &vkPipelineRasterizationStateCreateInfo{
		sType:       StructureTypePipelineRasterizationStateCreateInfo,
		polygonMode: g.PolygonMode,
		lineWidth:   g.LineWidth,
		cullMode:    g.CullMode,
		frontFace:   g.FrontFace,
	}
	a.keep(rasterState)

	multisampleState := &vkPipelineMultisampleStateCreateInfo{
		sType:                StructureTypePipelineMultisampleStateCreateInfo,
		rasterizationSamples: SampleCount1Bit,
	}
	a.keep(multisampleState)

	blendAttachments := g.BlendAttachments
	if blendAttachments == nil {
		blendAttachments = []PipelineColorBlendAttachmentState{{
			ColorWriteMask: ColorComponentRBit | ColorComponentGBit | ColorComponentBBit | ColorComponentABit,
			BlendEnable:    False,
		}}
	}
	rawAttachments := make([]vkPipelineColorBlendAttachmentState, len(blendAttachments))
	for i, ba := range blendAttachments {
		rawAttachments[i] = vkPipelineColorBlendAttachmentState{
			blendEnable:         ba.BlendEnable,
			srcColorBlendFactor: ba.SrcColorBlendFactor,
			dstColorBlendFactor: ba.DstColorBlendFactor,
			colorBlendOp:        ba.ColorBlendOp,
			srcAlphaBlendFactor: ba.SrcAlphaBlendFactor,
			dstAlphaBlendFactor: ba.DstAlphaBlendFactor,
			alphaBlendOp:        ba.AlphaBlendOp,
			colorWriteMask:      ba.ColorWriteMask,
		}
	}

	colorBlendState := &vkPipelineColorBlendStateCreateInfo{
		sType:           StructureTypePipelineColorBlendStateCreateInfo,
		attachmentCount: uint32(len(rawAttachments)),
		pAttachments:    sliceData(a, rawAttachments),
	}
	a.keep(colorBlendState)

	dynamicState := &vkPipelineDynamicStateCreateInfo{
		sType:             StructureTypePipelineDynamicStateCreateInfo,
		dynamicStateCount: uint32(len(g.DynamicState)),
		pDynamicStates:    sliceData(a, g.DynamicState),
	}
	a.keep(dynamicState)

	depthStencil := &vkPipelineDepthStencilStateCreateInfo{
		sType:            StructureTypePipelineDepthStencilStateCreateInfo,
		depthTestEnable:  NewBool32(g.DepthTestEnable),
		depthWriteEnable: NewBool32(g.DepthWriteEnable),
		depthCompareOp:   CompareOpLess,
		maxDepthBounds:   1.0,
	}
	a.keep(depthStencil)

	stages := make([]vkPipelineShaderStageCreateInfo, len(g.ShaderStages))
	for i := range g.ShaderStages {
		stages[i] = g.ShaderStages[i].vulkanize(a)
	}

	var layout PipelineLayoutHandle
	if g.PipelineLayout != nil {
		layout = g.PipelineLayout.VKPipelineLayout
	}
	var rp RenderPassHandle
	if renderPass != nil {
		rp = renderPass.VKRenderPass
	}

	return vkGraphicsPipelineCreateInfo{
		sType:               StructureTypeGraphicsPipelineCreateInfo,
		stageCount:          uint32(len(stages)),
		pStages:             sliceData(a, stages),
		pVertexInputState:   vertexInputState,
		pInputAssemblyState: inputAssemblyState,
		pViewportState:      viewportState,
		pRasterizationState: rasterState,
		pMultisampleState:   multisampleState,
		pDepthStencilState:  depthStencil,
		pColorBlendState:    colorBlendState,
		pDynamicState:       dynamicState,
		layout:              layout,
		renderPass:          rp,
		basePipelineIndex:   -1,
	}
}

// CreateGraphicsPipeline assembles a pipeline from the config for the given
// render target extent and pass.
func (d *Device) CreateGraphicsPipeline(pc *PipelineCache, config *GraphicsPipelineConfig, extent Extent2D, renderPass *RenderPass) (*GraphicsPipeline, error) {
	var a allocSet
	ci := config.vulkanize(&a, extent, renderPass)

	var cache PipelineCacheHandle
	if pc != nil {
		cache = pc.VKPipelineCache
	}

	var pipeline PipelineHandle
	res := d.cmds.createGraphicsPipelines(d.VKDevice, cache, 1, &ci, d.allocator.handle(), &pipeline)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	return &GraphicsPipeline{Device: d, VKPipeline: pipeline}, nil
}
