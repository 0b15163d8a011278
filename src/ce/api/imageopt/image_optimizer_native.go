//go:build !imageopt

package imageopt

import (
	"bytes"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gen2brain/webp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/pkg/errors"

	// Registers the webp decoder so that webp sources can be resized too.
	_ "golang.org/x/image/webp"
)

func init() {
	slog.Debug(slog.LogOpts{
		Msg:   "image optimization is using the native engine. Build with -tags imageopt to use libvips.",
		Level: slog.DL1,
	})
}

// NativeOptimizer is the pure Go implementation of ImageOptimizer.
type NativeOptimizer struct{}

// NewImageOptimizer creates a new image optimizer instance
func NewImageOptimizer() ImageOptimizer {
	return &NativeOptimizer{}
}

// Optimize optimizes an image using imaging and the webp encoder.
func (o *NativeOptimizer) Optimize(content []byte, opts Options) ([]byte, error) {
	mtype := mimetype.Detect(content)

	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, errors.Wrapf(ErrTransformFailed, "unsupported content type %s", mtype.String())
	}

	// Decoding re-creates the pixels only, metadata is not carried over.
	img, err := imaging.Decode(bytes.NewReader(content), imaging.AutoOrientation(true))

	if err != nil {
		return nil, errors.Wrap(ErrTransformFailed, err.Error())
	}

	if opts.Crop {
		img = fillAttention(img, opts.Width, opts.Height)
	} else {
		b := img.Bounds()
		w, h := FitSize(b.Dx(), b.Dy(), opts.Width, opts.Height)

		if w != b.Dx() || h != b.Dy() {
			img = imaging.Resize(img, w, h, imaging.Lanczos)
		}
	}

	buf := &bytes.Buffer{}

	if err := webp.Encode(buf, img, webp.Options{Quality: opts.Quality}); err != nil {
		return nil, errors.Wrap(ErrTransformFailed, err.Error())
	}

	return buf.Bytes(), nil
}

// fillAttention scales the image to cover the box and crops the overflow
// around the region with the most edge energy.
func fillAttention(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	if srcW*height > srcH*width {
		img = imaging.Resize(img, 0, height, imaging.Lanczos)
	} else {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	b = img.Bounds()

	if b.Dx() == width && b.Dy() == height {
		return img
	}

	x, y := attentionOffset(img, width, height)
	return imaging.Crop(img, image.Rect(x, y, x+width, y+height))
}

// attentionOffset slides a width×height window along the overflowing axis
// and returns the offset with the highest sum of gradient magnitudes.
func attentionOffset(img image.Image, width, height int) (int, int) {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()

	horizontal := w > width
	length := h

	if horizontal {
		length = w
	}

	energy := make([]float64, length)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := gray.PixOffset(x, y)
			gx := float64(gray.Pix[i+4]) - float64(gray.Pix[i-4])
			gy := float64(gray.Pix[i+gray.Stride]) - float64(gray.Pix[i-gray.Stride])
			e := gx*gx + gy*gy

			if horizontal {
				energy[x] += e
			} else {
				energy[y] += e
			}
		}
	}

	window := height

	if horizontal {
		window = width
	}

	sum := 0.0

	for i := 0; i < window; i++ {
		sum += energy[i]
	}

	best, offset := sum, 0

	for i := window; i < length; i++ {
		sum += energy[i] - energy[i-window]

		if sum > best {
			best = sum
			offset = i - window + 1
		}
	}

	if horizontal {
		return offset, 0
	}

	return 0, offset
}

// IsVipsEnabled returns true when the binary is linked against libvips.
func IsVipsEnabled() bool {
	return false
}
