package vk

import "unsafe"

// ImageViewCreateInfo configures a typed view over an image.
type ImageViewCreateInfo struct {
	Next             unsafe.Pointer
	Flags            ImageViewCreateFlags
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

type vkImageViewCreateInfo struct {
	sType            StructureType
	pNext            unsafe.Pointer
	flags            ImageViewCreateFlags
	image            ImageHandle
	viewType         ImageViewType
	format           Format
	components       ComponentMapping
	subresourceRange ImageSubresourceRange
}

type ImageView struct {
	Device      *Device
	VKImageView ImageViewHandle

	destroyed bool
}

func (i *Image) CreateImageView() (*ImageView, error) {
	return i.CreateImageViewWithAspectMask(ImageAspectColorBit)
}

func (i *Image) CreateImageViewWithAspectMask(mask ImageAspectFlags) (*ImageView, error) {
	return i.CreateImageViewWithCreateInfo(&ImageViewCreateInfo{
		ViewType: ImageViewType2D,
		Format:   i.VKFormat,
		Components: ComponentMapping{
			R: ComponentSwizzleR,
			G: ComponentSwizzleG,
			B: ComponentSwizzleB,
			A: ComponentSwizzleA,
		},
		SubresourceRange: ImageSubresourceRange{
			AspectMask: mask,
			LevelCount: 1,
			LayerCount: 1,
		},
	})
}

func (i *Image) CreateImageViewWithCreateInfo(info *ImageViewCreateInfo) (*ImageView, error) {
	raw := vkImageViewCreateInfo{
		sType:            StructureTypeImageViewCreateInfo,
		pNext:            info.Next,
		flags:            info.Flags,
		image:            i.VKImage,
		viewType:         info.ViewType,
		format:           info.Format,
		components:       info.Components,
		subresourceRange: info.SubresourceRange,
	}

	var view ImageViewHandle
	if err := Error(i.Device.cmds.createImageView(i.Device.VKDevice, &raw, i.Device.allocator.handle(), &view)); err != nil {
		return nil, err
	}
	return &ImageView{Device: i.Device, VKImageView: view}, nil
}

// Destroy destroys the view. Destroying twice is a no-op.
func (i *ImageView) Destroy() {
	if i.destroyed || i.VKImageView == 0 {
		return
	}
	i.destroyed = true
	i.Device.cmds.destroyImageView(i.Device.VKDevice, i.VKImageView, i.Device.allocator.handle())
	i.VKImageView = 0
}
