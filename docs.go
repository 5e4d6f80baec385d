/*
Package vk is a Vulkan binding for Go built directly on the system Vulkan
loader. It loads the native library at runtime, resolves entry points with
vkGetInstanceProcAddr and vkGetDeviceProcAddr following the loader's rules
for global, instance level and device level commands, and exposes the API
through small wrapper objects rather than free functions.

Vulkan is a very powerful graphics and compute framework which expands upon
what is possible with OpenGL and OpenCL, but at a cost - it is very
difficult and complex to use. This package strives to make it a little more
palatable to gophers without hiding the native objects: every wrapper keeps
its raw handle in an exported VK* field, and anything this package does not
wrap can be reached by resolving the command yourself through
Instance.ProcAddr or Device.ProcAddr.

# Overview

At a high level vulkan provides a method of submitting work to command
queues which execute pipelines the application has configured, to either
display graphics or perform compute work. The wrapper objects here follow
the ownership tree of the native API:

	Loader		the runtime library and the global commands
	Instance	an instance of the Vulkan subsystem
	PhysicalDevice	the physical hardware device
	Device		the logical device most of the API hangs off
	Queue		a queue which work (command buffers) may be submitted to
	DeviceMemory	an allocation of memory on the host or device
	Buffer, Image	descriptions of data the pipelines consume
	DescriptorSet	a mapping of data for use by shaders

Objects are created from their parent (Device.CreateBuffer,
CommandPool.AllocateBuffer and so on) and released with Destroy. Destroy is
safe to call twice; the second call does nothing. Parents must outlive
their children, as in the native API.

A minimal compute style session looks like:

	loader, err := vk.Open()
	app := &vk.App{Name: "example", APIVersion: vk.Version{Major: 1}}
	instance, err := app.CreateInstance(loader)
	pds, err := instance.PhysicalDevices()
	qfs, err := pds[0].QueueFamilies()
	device, err := pds[0].CreateLogicalDevice(qfs.FilterCompute())

Extension commands live in the subpackages khr, khx, ext, nv, nvx and nn,
named after the vendor suffixes they wrap. Each resolves its commands from
the instance or device at construction and reports ErrNotSupported when the
driver does not expose the extension.
*/
package vk
