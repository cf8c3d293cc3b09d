package graphics

import (
	"context"
	"image"
	"log"

	"texcube/internal/texture"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// placeholderPixel is shown until the real image is uploaded.
var placeholderPixel = [4]uint8{0, 0, 255, 255}

// Texture is a 2D texture whose content is swapped in when a background
// load finishes. The GL handle never changes.
type Texture struct {
	ID uint32

	load    *texture.Load
	status  texture.Status
	err     error
	width   int
	height  int
	cancel  context.CancelFunc
	applied bool
}

// NewTexture allocates the texture, fills it with a 1x1 placeholder and
// starts loading source. Must be called on the GL thread.
func NewTexture(ctx context.Context, source string) *Texture {
	ctx, cancel := context.WithCancel(ctx)

	t := &Texture{
		status: texture.Pending,
		width:  1,
		height: 1,
		cancel: cancel,
	}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		1, 1,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(&placeholderPixel[0]),
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t.load = texture.Start(ctx, source)
	return t
}

// Sync applies a finished load. It is cheap while the load is pending and a
// no-op after the first completed load. Must be called on the GL thread.
func (t *Texture) Sync() texture.Status {
	if t.applied {
		return t.status
	}

	res := t.load.Poll()
	switch res.Status {
	case texture.Pending:
		return t.status
	case texture.Failed:
		t.status = texture.Failed
		t.err = res.Err
		log.Printf("Texture %s unavailable, keeping placeholder: %v", t.load.Source(), res.Err)
	case texture.Loaded:
		t.upload(res.Image)
		t.status = texture.Loaded
		log.Printf("Loaded texture %s (%dx%d)", t.load.Source(), t.width, t.height)
	}
	t.applied = true
	t.cancel()
	return t.status
}

func (t *Texture) upload(img *image.RGBA) {
	t.width = img.Rect.Dx()
	t.height = img.Rect.Dy()

	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(t.width),
		int32(t.height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)

	s := texture.SamplingFor(t.width, t.height)
	if s.Mipmap {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.GenerateMipmap(gl.TEXTURE_2D)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Status is the last status seen by Sync.
func (t *Texture) Status() texture.Status { return t.status }

// Err is the load failure, if any.
func (t *Texture) Err() error { return t.err }

// Size is the size of the current content, 1x1 while the placeholder is shown.
func (t *Texture) Size() (int, int) { return t.width, t.height }

// Done is closed when the background load finishes.
func (t *Texture) Done() <-chan struct{} { return t.load.Done() }

// Bind attaches the texture to the given unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete cancels a pending load and releases the texture.
func (t *Texture) Delete() {
	t.cancel()
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
