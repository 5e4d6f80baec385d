package vk

// Destroyer is anything owning a native object it can release.
type Destroyer interface {
	Destroy()
}

// VertexDescriptor describes how a vertex type maps onto pipeline input.
type VertexDescriptor interface {
	GetBindingDescription() VertexInputBindingDescription
	GetAttributeDescriptions() []VertexInputAttributeDescription
}

// BufferObject is anything that can serialize itself for upload.
type BufferObject interface {
	Bytes() []byte
}

// IndexSource provides index data plus its element width.
type IndexSource interface {
	BufferObject
	IndexType() IndexType
}

// VertexSource provides vertex data plus its input layout.
type VertexSource interface {
	BufferObject
	VertexDescriptor
}

// DestroyAll destroys the given objects in order, skipping nils.
func DestroyAll(items ...Destroyer) {
	for _, i := range items {
		if i != nil {
			i.Destroy()
		}
	}
}
