package texture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func waitResult(t *testing.T, l *Load) Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := l.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	return res
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.png")
	if err := os.WriteFile(path, encodePNG(t, 8, 4), 0o644); err != nil {
		t.Fatal(err)
	}

	l := Start(context.Background(), path)
	res := waitResult(t, l)
	if res.Status != Loaded {
		t.Fatalf("status = %v (err %v), want loaded", res.Status, res.Err)
	}
	if got := res.Image.Bounds(); got.Dx() != 8 || got.Dy() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", got.Dx(), got.Dy())
	}
	if got := res.Image.RGBAAt(3, 2); got.R != 3 || got.G != 2 || got.B != 200 || got.A != 255 {
		t.Errorf("pixel (3,2) = %v", got)
	}
	if len(res.Image.Pix) != 8*4*4 {
		t.Errorf("pix length = %d, want tightly packed %d", len(res.Image.Pix), 8*4*4)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := Start(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	res := waitResult(t, l)
	if res.Status != Failed {
		t.Fatalf("status = %v, want failed", res.Status)
	}
	var le *LoadError
	if !errors.As(res.Err, &le) {
		t.Fatalf("err = %T, want *LoadError", res.Err)
	}
	if !errors.Is(res.Err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", res.Err)
	}
	if res.Image != nil {
		t.Errorf("failed load returned an image")
	}
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	res := waitResult(t, Start(context.Background(), path))
	if res.Status != Failed {
		t.Fatalf("status = %v, want failed", res.Status)
	}
	if !errors.Is(res.Err, image.ErrFormat) {
		t.Errorf("err = %v, want image.ErrFormat", res.Err)
	}
}

func TestLoadHTTP(t *testing.T) {
	data := encodePNG(t, 16, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cubetexture.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	res := waitResult(t, Start(context.Background(), srv.URL+"/cubetexture.png"))
	if res.Status != Loaded {
		t.Fatalf("status = %v (err %v), want loaded", res.Status, res.Err)
	}
	if res.Image.Bounds().Dx() != 16 {
		t.Errorf("width = %d, want 16", res.Image.Bounds().Dx())
	}

	res = waitResult(t, Start(context.Background(), srv.URL+"/missing.png"))
	if res.Status != Failed {
		t.Fatalf("404 status = %v, want failed", res.Status)
	}
}

func TestLoadPendingUntilDone(t *testing.T) {
	data := encodePNG(t, 2, 2)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write(data)
	}))
	defer srv.Close()

	l := Start(context.Background(), srv.URL)
	if got := l.Poll().Status; got != Pending {
		t.Fatalf("status before response = %v, want pending", got)
	}
	select {
	case <-l.Done():
		t.Fatalf("Done closed before the image arrived")
	default:
	}

	close(release)
	<-l.Done()
	if got := l.Poll().Status; got != Loaded {
		t.Fatalf("status after response = %v, want loaded", got)
	}
}

func TestLoadCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	l := Start(ctx, srv.URL)
	cancel()

	res := waitResult(t, l)
	if res.Status != Failed {
		t.Fatalf("status = %v, want failed", res.Status)
	}
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", res.Err)
	}
}
