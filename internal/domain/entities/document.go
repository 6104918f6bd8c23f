package entities

// ImageKind identifies which of the two design images is being produced.
type ImageKind string

const (
	ImageKindBlueprint ImageKind = "blueprint"
	ImageKindRender    ImageKind = "render"
)

// Document is a rendered file ready to be streamed to the client.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
	Pages       int
}
