package texture

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Status of an image load.
type Status int

const (
	Pending Status = iota
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// LoadError is returned when an image can not be fetched or decoded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load image %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Result is a snapshot of a Load.
type Result struct {
	Status Status
	Image  *image.RGBA
	Err    error
}

// Load fetches and decodes one image in the background.
type Load struct {
	source string
	done   chan struct{}

	mu     sync.Mutex
	result Result
}

// Start begins loading source, an http(s) URL or a file path.
// Cancelling ctx fails a load that has not finished yet.
func Start(ctx context.Context, source string) *Load {
	l := &Load{
		source: source,
		done:   make(chan struct{}),
		result: Result{Status: Pending},
	}
	go l.run(ctx)
	return l
}

func (l *Load) run(ctx context.Context) {
	img, err := fetch(ctx, l.source)

	l.mu.Lock()
	if err != nil {
		l.result = Result{Status: Failed, Err: &LoadError{Source: l.source, Err: err}}
	} else {
		l.result = Result{Status: Loaded, Image: img}
	}
	l.mu.Unlock()

	close(l.done)
}

// Source returns the path or URL being loaded.
func (l *Load) Source() string { return l.source }

// Poll returns the current result without blocking.
func (l *Load) Poll() Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.result
}

// Done is closed once the load has either succeeded or failed.
func (l *Load) Done() <-chan struct{} { return l.done }

// Wait blocks until the load finishes or ctx is done.
func (l *Load) Wait(ctx context.Context) (Result, error) {
	select {
	case <-l.done:
		return l.Poll(), nil
	case <-ctx.Done():
		return Result{Status: Pending}, ctx.Err()
	}
}

func fetch(ctx context.Context, source string) (*image.RGBA, error) {
	r, err := open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return toRGBA(img), nil
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	return f, nil
}

// toRGBA copies img into a tightly packed RGBA image with its origin at (0,0).
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
