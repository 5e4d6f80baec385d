package vk

import (
	"image"
	"image/draw"
	"os"
	"unsafe"

	_ "image/jpeg"
	_ "image/png"
)

// ImageCreateInfo configures image creation.
type ImageCreateInfo struct {
	Next               unsafe.Pointer
	Flags              ImageCreateFlags
	ImageType          ImageType
	Format             Format
	Extent             Extent3D
	MipLevels          uint32
	ArrayLayers        uint32
	Samples            SampleCountFlags
	Tiling             ImageTiling
	Usage              ImageUsageFlags
	SharingMode        SharingMode
	QueueFamilyIndices []uint32
	InitialLayout      ImageLayout
}

type vkImageCreateInfo struct {
	sType                 StructureType
	pNext                 unsafe.Pointer
	flags                 ImageCreateFlags
	imageType             ImageType
	format                Format
	extent                Extent3D
	mipLevels             uint32
	arrayLayers           uint32
	samples               SampleCountFlags
	tiling                ImageTiling
	usage                 ImageUsageFlags
	sharingMode           SharingMode
	queueFamilyIndexCount uint32
	pQueueFamilyIndices   *uint32
	initialLayout         ImageLayout
}

func (info *ImageCreateInfo) vulkanize(a *allocSet) *vkImageCreateInfo {
	raw := &vkImageCreateInfo{
		sType:                 StructureTypeImageCreateInfo,
		pNext:                 info.Next,
		flags:                 info.Flags,
		imageType:             info.ImageType,
		format:                info.Format,
		extent:                info.Extent,
		mipLevels:             info.MipLevels,
		arrayLayers:           info.ArrayLayers,
		samples:               info.Samples,
		tiling:                info.Tiling,
		usage:                 info.Usage,
		sharingMode:           info.SharingMode,
		queueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		pQueueFamilyIndices:   sliceData(a, info.QueueFamilyIndices),
		initialLayout:         info.InitialLayout,
	}
	a.keep(raw)
	return raw
}

type Image struct {
	Device   *Device
	VKImage  ImageHandle
	VKFormat Format

	destroyed bool
}

func (i *Image) GetMemoryRequirements() MemoryRequirements {
	var memRequirements MemoryRequirements
	i.Device.cmds.getImageMemoryRequirements(i.Device.VKDevice, i.VKImage, &memRequirements)
	return memRequirements
}

func (i *Image) AllocationRequirements() AllocationRequirements {
	mr := i.GetMemoryRequirements()
	return AllocationRequirements{
		Size:           int(mr.Size),
		MemoryTypeBits: mr.MemoryTypeBits,
	}
}

func (d *Device) CreateImage(extent Extent2D, format Format, tiling ImageTiling, usage ImageUsageFlags) (*Image, error) {
	return d.CreateImageWithCreateInfo(&ImageCreateInfo{
		ImageType:     ImageType2D,
		Extent:        Extent3D{Width: extent.Width, Height: extent.Height, Depth: 1},
		MipLevels:     1,
		ArrayLayers:   1,
		Format:        format,
		Tiling:        tiling,
		InitialLayout: ImageLayoutUndefined,
		Usage:         usage,
		Samples:       SampleCount1Bit,
		SharingMode:   SharingModeExclusive,
	})
}

func (d *Device) CreateImageWithCreateInfo(info *ImageCreateInfo) (*Image, error) {
	var a allocSet
	raw := info.vulkanize(&a)

	var img ImageHandle
	res := d.cmds.createImage(d.VKDevice, raw, d.allocator.handle(), &img)
	a.release()
	if err := Error(res); err != nil {
		return nil, err
	}

	return &Image{Device: d, VKImage: img, VKFormat: info.Format}, nil
}

func (i *Image) Bind(memory *DeviceMemory, offset uint64) error {
	return Error(i.Device.cmds.bindImageMemory(i.Device.VKDevice, i.VKImage, memory.VKDeviceMemory, DeviceSize(offset)))
}

// Destroy destroys the image. Destroying twice is a no-op.
func (i *Image) Destroy() {
	if i.destroyed || i.VKImage == 0 {
		return
	}
	i.destroyed = true
	i.Device.cmds.destroyImage(i.Device.VKDevice, i.VKImage, i.Device.allocator.handle())
	i.VKImage = 0
}

type BoundImage struct {
	Image
	DeviceMemory *DeviceMemory
}

type StagedBoundImage struct {
	BoundImage
	HostBuffer       *Buffer
	HostMemory       *DeviceMemory
	HostOffset       int
	HostMemoryOffset uint64
	Width            int
	Height           int
}

type LocalImage struct {
	img *image.RGBA
}

func (l *LocalImage) Bytes() []byte {
	return ToBytes(unsafe.Pointer(&l.img.Pix[0]), len(l.img.Pix))
}

func LoadImageFromDisk(file string) (*LocalImage, error) {
	imageFile, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer imageFile.Close()

	src, _, err := image.Decode(imageFile)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	m := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), src, b.Min, draw.Src)

	return &LocalImage{m}, nil
}

func (d *Device) StageRGBAImageFromMemory(img unsafe.Pointer, width, height int) (*StagedBoundImage, error) {
	size := uint64(width * height * 4)

	buffer, memory, err := d.CreateAndBindBufferAndMemory(size, 0,
		BufferUsageTransferSrcBit,
		MemoryPropertyHostVisibleBit|MemoryPropertyHostCoherentBit,
		SharingModeExclusive)
	if err != nil {
		return nil, err
	}

	if err := memory.MapCopyUnmap(ToBytes(img, int(size))); err != nil {
		return nil, err
	}

	bi, err := d.CreateBoundImage(
		Extent2D{Width: uint32(width), Height: uint32(height)},
		FormatR8G8B8A8Unorm,
		ImageTilingOptimal,
		ImageUsageTransferDstBit|ImageUsageSampledBit,
		MemoryPropertyDeviceLocalBit)

	if err != nil {
		return nil, err
	}

	si := &StagedBoundImage{
		HostMemory: memory,
		HostBuffer: buffer,
		HostOffset: 0,
	}
	si.Device = d
	si.VKImage = bi.VKImage
	si.DeviceMemory = bi.DeviceMemory
	si.VKFormat = bi.VKFormat
	si.Width = width
	si.Height = height

	return si, nil
}

func (d *Device) StageImageFromDisk(file string) (*StagedBoundImage, error) {
	img, err := LoadImageFromDisk(file)
	if err != nil {
		return nil, err
	}

	bounds := img.img.Bounds()
	return d.StageRGBAImageFromMemory(unsafe.Pointer(&img.img.Pix[0]), bounds.Dx(), bounds.Dy())
}

func (d *Device) CreateBoundImage(extent Extent2D, format Format, tiling ImageTiling, usage ImageUsageFlags, props MemoryPropertyFlags) (*BoundImage, error) {
	i, err := d.CreateImage(extent, format, tiling, usage)
	if err != nil {
		return nil, err
	}

	mem, err := d.AllocateForImage(i, props)
	if err != nil {
		return nil, err
	}

	if err := i.Bind(mem, 0); err != nil {
		return nil, err
	}

	boundImage := &BoundImage{}
	boundImage.Device = d
	boundImage.VKImage = i.VKImage
	boundImage.DeviceMemory = mem
	boundImage.VKFormat = i.VKFormat
	return boundImage, nil
}
