// Package nvx wraps VK_NVX_device_generated_commands: building command
// buffer content on the device from an object table and a token layout.
package nvx

import (
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"

	vk "github.com/discosultan/vk"
)

const DeviceGeneratedCommandsExtensionName = "VK_NVX_device_generated_commands"

const (
	structureTypeObjectTableCreateInfo            vk.StructureType = 1000086000
	structureTypeIndirectCommandsLayoutCreateInfo vk.StructureType = 1000086001
	structureTypeCmdProcessCommandsInfo           vk.StructureType = 1000086002
	structureTypeCmdReserveSpaceForCommandsInfo   vk.StructureType = 1000086003
)

// ObjectTableHandle and IndirectCommandsLayoutHandle are the
// non-dispatchable handles this extension mints.
type (
	ObjectTableHandle            uint64
	IndirectCommandsLayoutHandle uint64
)

type ObjectEntryType int32

const (
	ObjectEntryDescriptorSet ObjectEntryType = 0
	ObjectEntryPipeline      ObjectEntryType = 1
	ObjectEntryIndexBuffer   ObjectEntryType = 2
	ObjectEntryVertexBuffer  ObjectEntryType = 3
	ObjectEntryPushConstant  ObjectEntryType = 4
)

type ObjectEntryUsageFlags uint32

const (
	ObjectEntryUsageGraphicsBit ObjectEntryUsageFlags = 0x1
	ObjectEntryUsageComputeBit  ObjectEntryUsageFlags = 0x2
)

type IndirectCommandsTokenType int32

const (
	IndirectCommandsTokenPipeline      IndirectCommandsTokenType = 0
	IndirectCommandsTokenDescriptorSet IndirectCommandsTokenType = 1
	IndirectCommandsTokenIndexBuffer   IndirectCommandsTokenType = 2
	IndirectCommandsTokenVertexBuffer  IndirectCommandsTokenType = 3
	IndirectCommandsTokenPushConstant  IndirectCommandsTokenType = 4
	IndirectCommandsTokenDrawIndexed   IndirectCommandsTokenType = 5
	IndirectCommandsTokenDraw          IndirectCommandsTokenType = 6
	IndirectCommandsTokenDispatch      IndirectCommandsTokenType = 7
)

type IndirectCommandsLayoutUsageFlags uint32

const (
	IndirectCommandsLayoutUsageUnorderedSequencesBit IndirectCommandsLayoutUsageFlags = 0x1
	IndirectCommandsLayoutUsageSparseSequencesBit    IndirectCommandsLayoutUsageFlags = 0x2
	IndirectCommandsLayoutUsageEmptyExecutionsBit    IndirectCommandsLayoutUsageFlags = 0x4
	IndirectCommandsLayoutUsageIndexedSequencesBit   IndirectCommandsLayoutUsageFlags = 0x8
)

type vkObjectTableCreateInfo struct {
	sType                          vk.StructureType
	pNext                          unsafe.Pointer
	objectCount                    uint32
	pObjectEntryTypes              *ObjectEntryType
	pObjectEntryCounts             *uint32
	pObjectEntryUsageFlags         *ObjectEntryUsageFlags
	maxUniformBuffersPerDescriptor uint32
	maxStorageBuffersPerDescriptor uint32
	maxStorageImagesPerDescriptor  uint32
	maxSampledImagesPerDescriptor  uint32
	maxPipelineLayouts             uint32
}

type vkIndirectCommandsLayoutToken struct {
	tokenType    IndirectCommandsTokenType
	bindingUnit  uint32
	dynamicCount uint32
	divisor      uint32
}

type vkIndirectCommandsLayoutCreateInfo struct {
	sType             vk.StructureType
	pNext             unsafe.Pointer
	pipelineBindPoint vk.PipelineBindPoint
	flags             IndirectCommandsLayoutUsageFlags
	tokenCount        uint32
	pTokens           *vkIndirectCommandsLayoutToken
}

type vkIndirectCommandsToken struct {
	tokenType IndirectCommandsTokenType
	buffer    vk.BufferHandle
	offset    vk.DeviceSize
}

type vkCmdProcessCommandsInfo struct {
	sType                      vk.StructureType
	pNext                      unsafe.Pointer
	objectTable                ObjectTableHandle
	indirectCommandsLayout     IndirectCommandsLayoutHandle
	indirectCommandsTokenCount uint32
	pIndirectCommandsTokens    *vkIndirectCommandsToken
	maxSequencesCount          uint32
	targetCommandBuffer        vk.CommandBufferHandle
	sequencesCountBuffer       vk.BufferHandle
	sequencesCountOffset       vk.DeviceSize
	sequencesIndexBuffer       vk.BufferHandle
	sequencesIndexOffset       vk.DeviceSize
}

type vkCmdReserveSpaceForCommandsInfo struct {
	sType                  vk.StructureType
	pNext                  unsafe.Pointer
	objectTable            ObjectTableHandle
	indirectCommandsLayout IndirectCommandsLayoutHandle
	maxSequencesCount      uint32
}

type generatedCommandsCommands struct {
	createObjectTable             func(vk.DeviceHandle, *vkObjectTableCreateInfo, uintptr, *ObjectTableHandle) vk.Result
	destroyObjectTable            func(vk.DeviceHandle, ObjectTableHandle, uintptr)
	registerObjects               func(vk.DeviceHandle, ObjectTableHandle, uint32, *unsafe.Pointer, *uint32) vk.Result
	unregisterObjects             func(vk.DeviceHandle, ObjectTableHandle, uint32, *ObjectEntryType, *uint32) vk.Result
	createIndirectCommandsLayout  func(vk.DeviceHandle, *vkIndirectCommandsLayoutCreateInfo, uintptr, *IndirectCommandsLayoutHandle) vk.Result
	destroyIndirectCommandsLayout func(vk.DeviceHandle, IndirectCommandsLayoutHandle, uintptr)
	cmdProcessCommands            func(vk.CommandBufferHandle, *vkCmdProcessCommandsInfo)
	cmdReserveSpaceForCommands    func(vk.CommandBufferHandle, *vkCmdReserveSpaceForCommandsInfo)
}

// GeneratedCommandsExtension is the device level
// VK_NVX_device_generated_commands wrapper.
type GeneratedCommandsExtension struct {
	Device *vk.Device

	cmds generatedCommandsCommands
}

// NewGeneratedCommandsExtension resolves the extension commands from the
// device. The device must have been created with
// VK_NVX_device_generated_commands enabled.
func NewGeneratedCommandsExtension(device *vk.Device) (*GeneratedCommandsExtension, error) {
	e := &GeneratedCommandsExtension{Device: device}
	addr := func(name string) uintptr {
		a, _ := device.ProcAddr(name)
		return a
	}
	ok := vk.RegisterProc(&e.cmds.createObjectTable, addr("vkCreateObjectTableNVX"))
	ok = vk.RegisterProc(&e.cmds.destroyObjectTable, addr("vkDestroyObjectTableNVX")) && ok
	ok = vk.RegisterProc(&e.cmds.registerObjects, addr("vkRegisterObjectsNVX")) && ok
	ok = vk.RegisterProc(&e.cmds.unregisterObjects, addr("vkUnregisterObjectsNVX")) && ok
	ok = vk.RegisterProc(&e.cmds.createIndirectCommandsLayout, addr("vkCreateIndirectCommandsLayoutNVX")) && ok
	ok = vk.RegisterProc(&e.cmds.destroyIndirectCommandsLayout, addr("vkDestroyIndirectCommandsLayoutNVX")) && ok
	ok = vk.RegisterProc(&e.cmds.cmdProcessCommands, addr("vkCmdProcessCommandsNVX")) && ok
	ok = vk.RegisterProc(&e.cmds.cmdReserveSpaceForCommands, addr("vkCmdReserveSpaceForCommandsNVX")) && ok
	if !ok {
		return nil, errors.Wrap(vk.ErrNotSupported, DeviceGeneratedCommandsExtensionName)
	}
	return e, nil
}

// ObjectTableEntryCounts sizes one entry type slot of an object table.
type ObjectTableEntryCounts struct {
	Type  ObjectEntryType
	Count uint32
	Flags ObjectEntryUsageFlags
}

// ObjectTableCreateInfo configures object table creation.
type ObjectTableCreateInfo struct {
	Entries                        []ObjectTableEntryCounts
	MaxUniformBuffersPerDescriptor uint32
	MaxStorageBuffersPerDescriptor uint32
	MaxStorageImagesPerDescriptor  uint32
	MaxSampledImagesPerDescriptor  uint32
	MaxPipelineLayouts             uint32
}

// ObjectTable holds resource bindings that generated command sequences
// index into.
type ObjectTable struct {
	Extension     *GeneratedCommandsExtension
	VKObjectTable ObjectTableHandle

	destroyed bool
}

// CreateObjectTable creates an object table sized per the create info.
func (e *GeneratedCommandsExtension) CreateObjectTable(info *ObjectTableCreateInfo) (*ObjectTable, error) {
	types := make([]ObjectEntryType, len(info.Entries))
	counts := make([]uint32, len(info.Entries))
	flags := make([]ObjectEntryUsageFlags, len(info.Entries))
	for i, entry := range info.Entries {
		types[i] = entry.Type
		counts[i] = entry.Count
		flags[i] = entry.Flags
	}

	raw := vkObjectTableCreateInfo{
		sType:                          structureTypeObjectTableCreateInfo,
		objectCount:                    uint32(len(info.Entries)),
		maxUniformBuffersPerDescriptor: info.MaxUniformBuffersPerDescriptor,
		maxStorageBuffersPerDescriptor: info.MaxStorageBuffersPerDescriptor,
		maxStorageImagesPerDescriptor:  info.MaxStorageImagesPerDescriptor,
		maxSampledImagesPerDescriptor:  info.MaxSampledImagesPerDescriptor,
		maxPipelineLayouts:             info.MaxPipelineLayouts,
	}
	if len(info.Entries) > 0 {
		raw.pObjectEntryTypes = &types[0]
		raw.pObjectEntryCounts = &counts[0]
		raw.pObjectEntryUsageFlags = &flags[0]
	}

	var table ObjectTableHandle
	res := e.cmds.createObjectTable(e.Device.VKDevice, &raw, 0, &table)
	runtime.KeepAlive(types)
	runtime.KeepAlive(counts)
	runtime.KeepAlive(flags)
	if err := vk.Error(res); err != nil {
		return nil, err
	}
	return &ObjectTable{Extension: e, VKObjectTable: table}, nil
}

// ObjectTableEntry is one registerable resource. The concrete entry types
// below mirror the native per-kind entry structs; entry marshals the native
// representation, which register passes through an array of pointers.
type ObjectTableEntry interface {
	entry() (ObjectEntryType, unsafe.Pointer)
}

type vkObjectTablePipelineEntry struct {
	entryType ObjectEntryType
	flags     ObjectEntryUsageFlags
	pipeline  vk.PipelineHandle
}

// PipelineEntry registers a pipeline for the Pipeline token.
type PipelineEntry struct {
	Flags    ObjectEntryUsageFlags
	Pipeline vk.PipelineHandle
}

func (p PipelineEntry) entry() (ObjectEntryType, unsafe.Pointer) {
	raw := &vkObjectTablePipelineEntry{
		entryType: ObjectEntryPipeline,
		flags:     p.Flags,
		pipeline:  p.Pipeline,
	}
	return ObjectEntryPipeline, unsafe.Pointer(raw)
}

type vkObjectTableDescriptorSetEntry struct {
	entryType      ObjectEntryType
	flags          ObjectEntryUsageFlags
	pipelineLayout vk.PipelineLayoutHandle
	descriptorSet  vk.DescriptorSetHandle
}

// DescriptorSetEntry registers a descriptor set for the DescriptorSet token.
type DescriptorSetEntry struct {
	Flags          ObjectEntryUsageFlags
	PipelineLayout vk.PipelineLayoutHandle
	DescriptorSet  vk.DescriptorSetHandle
}

func (d DescriptorSetEntry) entry() (ObjectEntryType, unsafe.Pointer) {
	raw := &vkObjectTableDescriptorSetEntry{
		entryType:      ObjectEntryDescriptorSet,
		flags:          d.Flags,
		pipelineLayout: d.PipelineLayout,
		descriptorSet:  d.DescriptorSet,
	}
	return ObjectEntryDescriptorSet, unsafe.Pointer(raw)
}

type vkObjectTableVertexBufferEntry struct {
	entryType ObjectEntryType
	flags     ObjectEntryUsageFlags
	buffer    vk.BufferHandle
}

// VertexBufferEntry registers a buffer for the VertexBuffer token.
type VertexBufferEntry struct {
	Flags  ObjectEntryUsageFlags
	Buffer vk.BufferHandle
}

func (v VertexBufferEntry) entry() (ObjectEntryType, unsafe.Pointer) {
	raw := &vkObjectTableVertexBufferEntry{
		entryType: ObjectEntryVertexBuffer,
		flags:     v.Flags,
		buffer:    v.Buffer,
	}
	return ObjectEntryVertexBuffer, unsafe.Pointer(raw)
}

type vkObjectTableIndexBufferEntry struct {
	entryType ObjectEntryType
	flags     ObjectEntryUsageFlags
	buffer    vk.BufferHandle
	indexType vk.IndexType
}

// IndexBufferEntry registers a buffer for the IndexBuffer token.
type IndexBufferEntry struct {
	Flags     ObjectEntryUsageFlags
	Buffer    vk.BufferHandle
	IndexType vk.IndexType
}

func (i IndexBufferEntry) entry() (ObjectEntryType, unsafe.Pointer) {
	raw := &vkObjectTableIndexBufferEntry{
		entryType: ObjectEntryIndexBuffer,
		flags:     i.Flags,
		buffer:    i.Buffer,
		indexType: i.IndexType,
	}
	return ObjectEntryIndexBuffer, unsafe.Pointer(raw)
}

type vkObjectTablePushConstantEntry struct {
	entryType      ObjectEntryType
	flags          ObjectEntryUsageFlags
	pipelineLayout vk.PipelineLayoutHandle
	stageFlags     vk.ShaderStageFlags
}

// PushConstantEntry registers a pipeline layout range for the PushConstant
// token.
type PushConstantEntry struct {
	Flags          ObjectEntryUsageFlags
	PipelineLayout vk.PipelineLayoutHandle
	StageFlags     vk.ShaderStageFlags
}

func (p PushConstantEntry) entry() (ObjectEntryType, unsafe.Pointer) {
	raw := &vkObjectTablePushConstantEntry{
		entryType:      ObjectEntryPushConstant,
		flags:          p.Flags,
		pipelineLayout: p.PipelineLayout,
		stageFlags:     p.StageFlags,
	}
	return ObjectEntryPushConstant, unsafe.Pointer(raw)
}

// Register stores entries at the given table indices. Entries and indices
// must be the same length.
func (t *ObjectTable) Register(entries []ObjectTableEntry, indices []uint32) error {
	if len(entries) != len(indices) {
		return errors.New("nvx: entry and index counts differ")
	}
	if len(entries) == 0 {
		return nil
	}

	ptrs := make([]unsafe.Pointer, len(entries))
	for i, entry := range entries {
		_, ptrs[i] = entry.entry()
	}

	res := t.Extension.cmds.registerObjects(t.Extension.Device.VKDevice, t.VKObjectTable,
		uint32(len(entries)), &ptrs[0], &indices[0])
	runtime.KeepAlive(ptrs)
	runtime.KeepAlive(indices)
	return vk.Error(res)
}

// Unregister releases the entries of the given types at the given indices.
func (t *ObjectTable) Unregister(types []ObjectEntryType, indices []uint32) error {
	if len(types) != len(indices) {
		return errors.New("nvx: type and index counts differ")
	}
	if len(types) == 0 {
		return nil
	}
	res := t.Extension.cmds.unregisterObjects(t.Extension.Device.VKDevice, t.VKObjectTable,
		uint32(len(types)), &types[0], &indices[0])
	runtime.KeepAlive(types)
	runtime.KeepAlive(indices)
	return vk.Error(res)
}

// Destroy destroys the object table. Destroying twice is a no-op.
func (t *ObjectTable) Destroy() {
	if t.destroyed || t.VKObjectTable == 0 {
		return
	}
	t.destroyed = true
	t.Extension.cmds.destroyObjectTable(t.Extension.Device.VKDevice, t.VKObjectTable, 0)
	t.VKObjectTable = 0
}

// IndirectCommandsLayoutToken describes one token of a generated sequence.
type IndirectCommandsLayoutToken struct {
	TokenType    IndirectCommandsTokenType
	BindingUnit  uint32
	DynamicCount uint32
	Divisor      uint32
}

// IndirectCommandsLayout describes the token stream format of generated
// command sequences.
type IndirectCommandsLayout struct {
	Extension                *GeneratedCommandsExtension
	VKIndirectCommandsLayout IndirectCommandsLayoutHandle

	destroyed bool
}

// CreateIndirectCommandsLayout creates a layout for sequences of the given
// tokens executed at the given bind point.
func (e *GeneratedCommandsExtension) CreateIndirectCommandsLayout(bindPoint vk.PipelineBindPoint,
	flags IndirectCommandsLayoutUsageFlags, tokens []IndirectCommandsLayoutToken) (*IndirectCommandsLayout, error) {

	raw := make([]vkIndirectCommandsLayoutToken, len(tokens))
	for i, t := range tokens {
		raw[i] = vkIndirectCommandsLayoutToken{
			tokenType:    t.TokenType,
			bindingUnit:  t.BindingUnit,
			dynamicCount: t.DynamicCount,
			divisor:      t.Divisor,
		}
	}

	info := vkIndirectCommandsLayoutCreateInfo{
		sType:             structureTypeIndirectCommandsLayoutCreateInfo,
		pipelineBindPoint: bindPoint,
		flags:             flags,
		tokenCount:        uint32(len(raw)),
	}
	if len(raw) > 0 {
		info.pTokens = &raw[0]
	}

	var layout IndirectCommandsLayoutHandle
	res := e.cmds.createIndirectCommandsLayout(e.Device.VKDevice, &info, 0, &layout)
	runtime.KeepAlive(raw)
	if err := vk.Error(res); err != nil {
		return nil, err
	}
	return &IndirectCommandsLayout{Extension: e, VKIndirectCommandsLayout: layout}, nil
}

// Destroy destroys the layout. Destroying twice is a no-op.
func (l *IndirectCommandsLayout) Destroy() {
	if l.destroyed || l.VKIndirectCommandsLayout == 0 {
		return
	}
	l.destroyed = true
	l.Extension.cmds.destroyIndirectCommandsLayout(l.Extension.Device.VKDevice, l.VKIndirectCommandsLayout, 0)
	l.VKIndirectCommandsLayout = 0
}

// IndirectCommandsToken points one layout token at its input buffer.
type IndirectCommandsToken struct {
	TokenType IndirectCommandsTokenType
	Buffer    *vk.Buffer
	Offset    vk.DeviceSize
}

// ProcessCommandsInfo parameterizes one generated command execution.
type ProcessCommandsInfo struct {
	ObjectTable            *ObjectTable
	IndirectCommandsLayout *IndirectCommandsLayout
	Tokens                 []IndirectCommandsToken
	MaxSequencesCount      uint32

	// TargetCommandBuffer, when set, receives the generated commands into
	// space previously reserved with CmdReserveSpace instead of executing
	// them directly.
	TargetCommandBuffer *vk.CommandBuffer

	SequencesCountBuffer *vk.Buffer
	SequencesCountOffset vk.DeviceSize
	SequencesIndexBuffer *vk.Buffer
	SequencesIndexOffset vk.DeviceSize
}

// CmdProcessCommands records execution (or target buffer generation) of
// device generated command sequences.
func (e *GeneratedCommandsExtension) CmdProcessCommands(cb *vk.CommandBuffer, info *ProcessCommandsInfo) {
	tokens := make([]vkIndirectCommandsToken, len(info.Tokens))
	for i, t := range info.Tokens {
		tokens[i] = vkIndirectCommandsToken{
			tokenType: t.TokenType,
			buffer:    t.Buffer.VKBuffer,
			offset:    t.Offset,
		}
	}

	raw := vkCmdProcessCommandsInfo{
		sType:                      structureTypeCmdProcessCommandsInfo,
		objectTable:                info.ObjectTable.VKObjectTable,
		indirectCommandsLayout:     info.IndirectCommandsLayout.VKIndirectCommandsLayout,
		indirectCommandsTokenCount: uint32(len(tokens)),
		maxSequencesCount:          info.MaxSequencesCount,
	}
	if len(tokens) > 0 {
		raw.pIndirectCommandsTokens = &tokens[0]
	}
	if info.TargetCommandBuffer != nil {
		raw.targetCommandBuffer = info.TargetCommandBuffer.VKCommandBuffer
	}
	if info.SequencesCountBuffer != nil {
		raw.sequencesCountBuffer = info.SequencesCountBuffer.VKBuffer
		raw.sequencesCountOffset = info.SequencesCountOffset
	}
	if info.SequencesIndexBuffer != nil {
		raw.sequencesIndexBuffer = info.SequencesIndexBuffer.VKBuffer
		raw.sequencesIndexOffset = info.SequencesIndexOffset
	}

	e.cmds.cmdProcessCommands(cb.VKCommandBuffer, &raw)
	runtime.KeepAlive(tokens)
}

// CmdReserveSpace records a reservation for commands later generated into
// this secondary command buffer.
func (e *GeneratedCommandsExtension) CmdReserveSpace(cb *vk.CommandBuffer, table *ObjectTable, layout *IndirectCommandsLayout, maxSequencesCount uint32) {
	raw := vkCmdReserveSpaceForCommandsInfo{
		sType:                  structureTypeCmdReserveSpaceForCommandsInfo,
		objectTable:            table.VKObjectTable,
		indirectCommandsLayout: layout.VKIndirectCommandsLayout,
		maxSequencesCount:      maxSequencesCount,
	}
	e.cmds.cmdReserveSpaceForCommands(cb.VKCommandBuffer, &raw)
}
