package scene

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.uber.org/zap"
)

// MaxTextures is the number of texture slots; a slot maps 1:1 to the
// GPU texture unit the entry is bound to.
const MaxTextures = 16

var (
	ErrRegistryFull        = errors.New("texture registry full")
	ErrDuplicateTag        = errors.New("texture tag already registered")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	ErrUnknownTag          = errors.New("unknown texture tag")
)

// TextureHandle is an opaque GPU texture resource identifier.
type TextureHandle uint32

// Uploader hands decoded pixel data to the GPU. The GL implementation
// lives in the render package; tests substitute a fake.
type Uploader interface {
	Upload(img *image.RGBA) (TextureHandle, error)
	Bind(unit int, h TextureHandle) error
	Delete(h TextureHandle)
}

type textureEntry struct {
	tag    string
	handle TextureHandle
}

// TextureRegistry decodes image files, uploads them through an
// Uploader and maps a tag string to the assigned slot and handle.
// Slot index equals registration order equals the texture unit the
// entry is bound to by BindAll. Populated once during scene
// preparation, read-only afterwards.
type TextureRegistry struct {
	uploader Uploader
	log      *zap.Logger

	entries []textureEntry
}

func NewTextureRegistry(up Uploader, log *zap.Logger) *TextureRegistry {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextureRegistry{
		uploader: up,
		log:      log,
		entries:  make([]textureEntry, 0, MaxTextures),
	}
}

// Register decodes the image at path and stores it under tag. Only 3-
// and 4-channel sources are accepted; grayscale, paletted and
// alpha-only images are rejected. Every failure is returned to the
// caller, nothing is swallowed.
func (r *TextureRegistry) Register(path, tag string) error {
	if len(r.entries) >= MaxTextures {
		return fmt.Errorf("register %q: %w (max %d)", tag, ErrRegistryFull, MaxTextures)
	}
	if _, found := r.SlotOf(tag); found {
		return fmt.Errorf("register %q: %w", tag, ErrDuplicateTag)
	}

	file, err := os.Open(path)
	if err != nil {
		r.log.Error("could not open image", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("register %q: %w", tag, err)
	}
	defer file.Close()

	im, format, err := image.Decode(file)
	if err != nil {
		r.log.Error("could not decode image", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("register %q: decode: %w", tag, err)
	}

	channels, ok := channelCount(im)
	if !ok {
		r.log.Error("rejected image",
			zap.String("path", path),
			zap.Int("channels", channels))
		return fmt.Errorf("register %q: %w (%d)", tag, ErrUnsupportedChannels, channels)
	}

	// convert to rgba
	bounds := im.Bounds()
	rgba, isRGBA := im.(*image.RGBA)
	if !isRGBA {
		rgba = image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, im, bounds.Min, draw.Src)
	}

	handle, err := r.uploader.Upload(rgba)
	if err != nil {
		return fmt.Errorf("register %q: upload: %w", tag, err)
	}

	r.entries = append(r.entries, textureEntry{tag: tag, handle: handle})

	r.log.Info("loaded image",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.String("format", format),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Int("channels", channels),
		zap.Int("slot", len(r.entries)-1))

	return nil
}

// SlotOf returns the slot index assigned to tag. Linear scan, first
// match, case sensitive.
func (r *TextureRegistry) SlotOf(tag string) (int, bool) {
	for i, e := range r.entries {
		if e.tag == tag {
			return i, true
		}
	}
	return -1, false
}

// HandleOf returns the GPU handle registered under tag.
func (r *TextureRegistry) HandleOf(tag string) (TextureHandle, bool) {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.handle, true
		}
	}
	return 0, false
}

func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// BindAll binds every registered texture to the unit equal to its
// registration index.
func (r *TextureRegistry) BindAll() error {
	for i, e := range r.entries {
		if err := r.uploader.Bind(i, e.handle); err != nil {
			return fmt.Errorf("bind %q to unit %d: %w", e.tag, i, err)
		}
	}
	return nil
}

// Destroy releases all GPU handles and empties the registry.
func (r *TextureRegistry) Destroy() {
	for _, e := range r.entries {
		r.uploader.Delete(e.handle)
	}
	r.entries = r.entries[:0]
}

// channelCount reports the source channel count of a decoded image
// and whether it is renderable. Only 3-channel (RGB, YCbCr) and
// 4-channel (RGBA variants) sources are accepted.
func channelCount(im image.Image) (int, bool) {
	switch im.(type) {
	case *image.YCbCr:
		return 3, true
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA:
		return 4, true
	case *image.Gray, *image.Gray16:
		return 1, false
	case *image.Alpha, *image.Alpha16:
		return 1, false
	case *image.Paletted:
		return 1, false
	case *image.CMYK:
		return 4, false
	default:
		return 0, false
	}
}
