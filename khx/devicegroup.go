// Package khx wraps the experimental VK_KHX_device_group_creation and
// VK_KHX_device_group extensions for driving several physical devices as
// one logical device.
package khx

import (
	"unsafe"

	"github.com/cockroachdb/errors"

	vk "github.com/discosultan/vk"
)

const (
	DeviceGroupCreationExtensionName = "VK_KHX_device_group_creation"
	DeviceGroupExtensionName         = "VK_KHX_device_group"
)

// MaxDeviceGroupSize bounds the fixed device array in the group properties.
const MaxDeviceGroupSize = 32

const (
	structureTypePhysicalDeviceGroupProperties vk.StructureType = 1000070000
	structureTypeDeviceGroupDeviceCreateInfo   vk.StructureType = 1000070001
)

type PeerMemoryFeatureFlags uint32

const (
	PeerMemoryFeatureCopySrcBit    PeerMemoryFeatureFlags = 0x1
	PeerMemoryFeatureCopyDstBit    PeerMemoryFeatureFlags = 0x2
	PeerMemoryFeatureGenericSrcBit PeerMemoryFeatureFlags = 0x4
	PeerMemoryFeatureGenericDstBit PeerMemoryFeatureFlags = 0x8
)

type vkPhysicalDeviceGroupProperties struct {
	sType               vk.StructureType
	pNext               unsafe.Pointer
	physicalDeviceCount uint32
	physicalDevices     [MaxDeviceGroupSize]vk.PhysicalDeviceHandle
	subsetAllocation    vk.Bool32
}

// PhysicalDeviceGroup is one set of physical devices that can back a single
// logical device.
type PhysicalDeviceGroup struct {
	PhysicalDevices []*vk.PhysicalDevice

	// SubsetAllocation reports whether memory may be allocated on a subset
	// of the group's devices.
	SubsetAllocation bool
}

type groupCommands struct {
	enumeratePhysicalDeviceGroups func(vk.InstanceHandle, *uint32, *vkPhysicalDeviceGroupProperties) vk.Result
}

// DeviceGroupExtension is the instance level device group creation wrapper.
type DeviceGroupExtension struct {
	Instance *vk.Instance

	cmds groupCommands
}

// NewDeviceGroupExtension resolves the group enumeration command from the
// instance. The instance must have been created with
// VK_KHX_device_group_creation enabled.
func NewDeviceGroupExtension(instance *vk.Instance) (*DeviceGroupExtension, error) {
	e := &DeviceGroupExtension{Instance: instance}
	addr, _ := instance.ProcAddr("vkEnumeratePhysicalDeviceGroupsKHX")
	if !vk.RegisterProc(&e.cmds.enumeratePhysicalDeviceGroups, addr) {
		return nil, errors.Wrap(vk.ErrNotSupported, DeviceGroupCreationExtensionName)
	}
	return e, nil
}

// PhysicalDeviceGroups enumerates the device groups the driver exposes.
// Every group member also appears in Instance.PhysicalDevices.
func (e *DeviceGroupExtension) PhysicalDeviceGroups() ([]PhysicalDeviceGroup, error) {
	var count uint32
	if err := vk.Error(e.cmds.enumeratePhysicalDeviceGroups(e.Instance.VKInstance, &count, nil)); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	props := make([]vkPhysicalDeviceGroupProperties, count)
	for i := range props {
		props[i].sType = structureTypePhysicalDeviceGroupProperties
	}
	if err := vk.Error(e.cmds.enumeratePhysicalDeviceGroups(e.Instance.VKInstance, &count, &props[0])); err != nil {
		return nil, err
	}

	all, err := e.Instance.PhysicalDevices()
	if err != nil {
		return nil, err
	}
	byHandle := make(map[vk.PhysicalDeviceHandle]*vk.PhysicalDevice, len(all))
	for _, p := range all {
		byHandle[p.VKPhysicalDevice] = p
	}

	groups := make([]PhysicalDeviceGroup, 0, count)
	for i := range props[:count] {
		g := PhysicalDeviceGroup{SubsetAllocation: props[i].subsetAllocation.B()}
		for _, h := range props[i].physicalDevices[:props[i].physicalDeviceCount] {
			p := byHandle[h]
			if p == nil {
				p = &vk.PhysicalDevice{Instance: e.Instance, VKPhysicalDevice: h}
			}
			g.PhysicalDevices = append(g.PhysicalDevices, p)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

type vkDeviceGroupDeviceCreateInfo struct {
	sType               vk.StructureType
	pNext               unsafe.Pointer
	physicalDeviceCount uint32
	pPhysicalDevices    *vk.PhysicalDeviceHandle
}

// DeviceGroupDeviceCreateInfo chains a device group onto logical device
// creation. Pass the result of Chain as CreateDeviceOptions.Next and call
// Device.Retain(info) on the created device so the handle array outlives
// the driver's use of it.
type DeviceGroupDeviceCreateInfo struct {
	Next            unsafe.Pointer
	PhysicalDevices []*vk.PhysicalDevice

	handles []vk.PhysicalDeviceHandle
	raw     vkDeviceGroupDeviceCreateInfo
}

// Chain builds the native extension struct and returns its pointer for use
// in a pNext chain. The receiver owns the backing memory.
func (info *DeviceGroupDeviceCreateInfo) Chain() unsafe.Pointer {
	info.handles = make([]vk.PhysicalDeviceHandle, len(info.PhysicalDevices))
	for i, p := range info.PhysicalDevices {
		info.handles[i] = p.VKPhysicalDevice
	}
	info.raw = vkDeviceGroupDeviceCreateInfo{
		sType:               structureTypeDeviceGroupDeviceCreateInfo,
		pNext:               info.Next,
		physicalDeviceCount: uint32(len(info.handles)),
	}
	if len(info.handles) > 0 {
		info.raw.pPhysicalDevices = &info.handles[0]
	}
	return unsafe.Pointer(&info.raw)
}

// CreateGroupDevice creates one logical device spanning the group, with one
// queue per given family, and pins the group chain to the device.
func (g PhysicalDeviceGroup) CreateGroupDevice(qfs vk.QueueFamilySlice, options *vk.CreateDeviceOptions) (*vk.Device, error) {
	if len(g.PhysicalDevices) == 0 {
		return nil, errors.New("khx: device group is empty")
	}

	var opts vk.CreateDeviceOptions
	if options != nil {
		opts = *options
	}
	chain := &DeviceGroupDeviceCreateInfo{Next: opts.Next, PhysicalDevices: g.PhysicalDevices}
	opts.Next = chain.Chain()

	device, err := g.PhysicalDevices[0].CreateLogicalDeviceWithOptions(qfs, &opts)
	if err != nil {
		return nil, err
	}
	device.Retain(chain)
	return device, nil
}

type peerCommands struct {
	getDeviceGroupPeerMemoryFeatures func(vk.DeviceHandle, uint32, uint32, uint32, *PeerMemoryFeatureFlags)
	cmdSetDeviceMask                 func(vk.CommandBufferHandle, uint32)
}

// PeerMemoryExtension is the device level VK_KHX_device_group wrapper.
type PeerMemoryExtension struct {
	Device *vk.Device

	cmds peerCommands
}

// NewPeerMemoryExtension resolves the device group commands from the device.
// The device must have been created with VK_KHX_device_group enabled.
func NewPeerMemoryExtension(device *vk.Device) (*PeerMemoryExtension, error) {
	e := &PeerMemoryExtension{Device: device}
	addr := func(name string) uintptr {
		a, _ := device.ProcAddr(name)
		return a
	}
	ok := vk.RegisterProc(&e.cmds.getDeviceGroupPeerMemoryFeatures, addr("vkGetDeviceGroupPeerMemoryFeaturesKHX"))
	ok = vk.RegisterProc(&e.cmds.cmdSetDeviceMask, addr("vkCmdSetDeviceMaskKHX")) && ok
	if !ok {
		return nil, errors.Wrap(vk.ErrNotSupported, DeviceGroupExtensionName)
	}
	return e, nil
}

// PeerMemoryFeatures reports how memory in heapIndex on the remote device
// can be accessed from the local device.
func (e *PeerMemoryExtension) PeerMemoryFeatures(heapIndex, localDeviceIndex, remoteDeviceIndex uint32) PeerMemoryFeatureFlags {
	var flags PeerMemoryFeatureFlags
	e.cmds.getDeviceGroupPeerMemoryFeatures(e.Device.VKDevice, heapIndex, localDeviceIndex, remoteDeviceIndex, &flags)
	return flags
}

// CmdSetDeviceMask records which group members execute subsequent commands.
func (e *PeerMemoryExtension) CmdSetDeviceMask(cb *vk.CommandBuffer, deviceMask uint32) {
	e.cmds.cmdSetDeviceMask(cb.VKCommandBuffer, deviceMask)
}
