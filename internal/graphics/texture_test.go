package graphics

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"texcube/internal/graphics/gltest"
	"texcube/internal/texture"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

type textureProbe struct {
	idBefore     uint32
	idAfter      uint32
	statusBefore texture.Status
	status       texture.Status
	err          error
	w, h         int
	minFilter    int32
	wrapS        int32
	wrapT        int32
	glWidth      int32
}

func probeTexture(t *testing.T, source string) textureProbe {
	t.Helper()
	var p textureProbe
	var tex *Texture

	gltest.Do(t, func() {
		tex = NewTexture(context.Background(), source)
		p.idBefore = tex.ID
		p.statusBefore = tex.Status()
	})

	select {
	case <-tex.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("texture load did not finish")
	}

	gltest.Do(t, func() {
		p.status = tex.Sync()
		p.err = tex.Err()
		p.idAfter = tex.ID
		p.w, p.h = tex.Size()

		gl.BindTexture(gl.TEXTURE_2D, tex.ID)
		gl.GetTexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, &p.minFilter)
		gl.GetTexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, &p.wrapS)
		gl.GetTexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, &p.wrapT)
		gl.GetTexLevelParameteriv(gl.TEXTURE_2D, 0, gl.TEXTURE_WIDTH, &p.glWidth)
		gl.BindTexture(gl.TEXTURE_2D, 0)
		tex.Delete()
	})
	return p
}

func TestTexturePowerOfTwoGetsMipmaps(t *testing.T) {
	p := probeTexture(t, writePNG(t, 4, 8))
	if p.statusBefore != texture.Pending {
		t.Errorf("status before sync = %v, want pending", p.statusBefore)
	}
	if p.status != texture.Loaded {
		t.Fatalf("status = %v (err %v), want loaded", p.status, p.err)
	}
	if p.idAfter != p.idBefore {
		t.Errorf("texture handle changed %d -> %d", p.idBefore, p.idAfter)
	}
	if p.w != 4 || p.h != 8 || p.glWidth != 4 {
		t.Errorf("size = %dx%d (gl width %d), want 4x8", p.w, p.h, p.glWidth)
	}
	if p.minFilter != gl.LINEAR_MIPMAP_LINEAR {
		t.Errorf("min filter = 0x%x, want LINEAR_MIPMAP_LINEAR", p.minFilter)
	}
}

func TestTextureNonPowerOfTwoClamps(t *testing.T) {
	p := probeTexture(t, writePNG(t, 3, 3))
	if p.status != texture.Loaded {
		t.Fatalf("status = %v (err %v), want loaded", p.status, p.err)
	}
	if p.wrapS != gl.CLAMP_TO_EDGE || p.wrapT != gl.CLAMP_TO_EDGE {
		t.Errorf("wrap = 0x%x/0x%x, want CLAMP_TO_EDGE", p.wrapS, p.wrapT)
	}
	if p.minFilter != gl.LINEAR {
		t.Errorf("min filter = 0x%x, want LINEAR", p.minFilter)
	}
}

func TestTextureFailureKeepsPlaceholder(t *testing.T) {
	p := probeTexture(t, filepath.Join(t.TempDir(), "missing.png"))
	if p.status != texture.Failed {
		t.Fatalf("status = %v, want failed", p.status)
	}
	if p.err == nil {
		t.Errorf("failed texture reports no error")
	}
	if p.w != 1 || p.h != 1 || p.glWidth != 1 {
		t.Errorf("size = %dx%d (gl width %d), want the 1x1 placeholder", p.w, p.h, p.glWidth)
	}
	if p.idAfter != p.idBefore || p.idAfter == 0 {
		t.Errorf("texture handle %d -> %d", p.idBefore, p.idAfter)
	}
}
