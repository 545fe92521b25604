package silk

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The PNG is written to ScreenshotDir with a
// timestamped, frame-numbered filename.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame once for every queued label.
// Called at the end of App.Draw.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	defer func() { a.screenshotQueue = a.screenshotQueue[:0] }()

	if err := os.MkdirAll(a.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[silk] screenshot: mkdir %s: %v\n", a.ScreenshotDir, err)
		return
	}

	bounds := screen.Bounds()
	pixels := make([]byte, 4*bounds.Dx()*bounds.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, bounds.Dx(), bounds.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range a.screenshotQueue {
		name := fmt.Sprintf("%s_%06d_%s.png", stamp, a.frame, sanitizeLabel(label))
		if err := writePNG(filepath.Join(a.ScreenshotDir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[silk] screenshot: %v\n", err)
		}
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, al := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if al > 0 && al < 255 {
			r = uint8(min(int(r)*255/int(al), 255))
			g = uint8(min(int(g)*255/int(al), 255))
			b = uint8(min(int(b)*255/int(al), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = al
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
