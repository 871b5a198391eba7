package render

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/der-antikeks/deskscene/scene"
)

// TextureUploader moves decoded images onto the GPU. It satisfies
// scene.Uploader.
type TextureUploader struct {
	log *zap.Logger
}

func NewTextureUploader(log *zap.Logger) *TextureUploader {
	return &TextureUploader{log: log}
}

// Upload creates a mipmapped 2D texture from img and returns its
// GL object name.
func (u *TextureUploader) Upload(img *image.RGBA) (scene.TextureHandle, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("upload texture: empty image %dx%d", width, height)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	u.log.Debug("uploaded texture",
		zap.Uint32("handle", id),
		zap.Int("width", width),
		zap.Int("height", height))
	return scene.TextureHandle(id), nil
}

// Bind attaches a texture to the given texture unit.
func (u *TextureUploader) Bind(unit int, handle scene.TextureHandle) error {
	if unit < 0 || unit >= scene.MaxTextures {
		return fmt.Errorf("bind texture: unit %d out of range", unit)
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(handle))
	return nil
}

// Delete releases the texture object.
func (u *TextureUploader) Delete(handle scene.TextureHandle) {
	id := uint32(handle)
	gl.DeleteTextures(1, &id)
}
