//go:build imageopt

package imageopt

import (
	"github.com/h2non/bimg"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/pkg/errors"
)

func init() {
	slog.Debug(slog.LogOpts{
		Msg:   "image optimization is using libvips",
		Level: slog.DL1,
	})
}

// BimgOptimizer is the bimg-based implementation of ImageOptimizer
type BimgOptimizer struct{}

// NewImageOptimizer creates a new image optimizer instance
func NewImageOptimizer() ImageOptimizer {
	return &BimgOptimizer{}
}

// Optimize optimizes an image using bimg
func (o *BimgOptimizer) Optimize(content []byte, opts Options) ([]byte, error) {
	// Rotate first so that the size below is the displayed size.
	rotated, err := bimg.NewImage(content).AutoRotate()

	if err != nil {
		return nil, errors.Wrap(ErrTransformFailed, err.Error())
	}

	image := bimg.NewImage(rotated)
	size, err := image.Size()

	if err != nil {
		return nil, errors.Wrap(ErrTransformFailed, err.Error())
	}

	process := bimg.Options{
		Quality:       opts.Quality,
		Type:          bimg.WEBP,
		StripMetadata: true,
		NoAutoRotate:  true,
	}

	if opts.Crop {
		process.Width = opts.Width
		process.Height = opts.Height
		process.Crop = true
		process.Gravity = bimg.GravitySmart
	} else {
		process.Width, process.Height = FitSize(size.Width, size.Height, opts.Width, opts.Height)
	}

	optimized, err := image.Process(process)

	if err != nil {
		return nil, errors.Wrap(ErrTransformFailed, err.Error())
	}

	return optimized, nil
}

// IsVipsEnabled returns true when the binary is linked against libvips.
func IsVipsEnabled() bool {
	return true
}
