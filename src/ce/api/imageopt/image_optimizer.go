package imageopt

import "math"

const (
	// ContentType is the content type of every optimized image.
	ContentType = "image/webp"

	// CacheControl lets shared caches keep the image for 7 days and
	// serve it stale while it is being revalidated.
	CacheControl = "s-maxage=604800, stale-while-revalidate"
)

// Options are the transformation parameters.
type Options struct {
	Width   int
	Height  int
	Quality int

	// Crop fills the whole box and crops the overflow, keeping the
	// most significant region of the image. When false the image is
	// fit inside the box.
	Crop bool
}

// DefaultOptions returns the thumbnail parameters used by the storefront.
func DefaultOptions() Options {
	return Options{
		Width:   500,
		Height:  375,
		Quality: 80,
	}
}

// ImageOptimizer defines the interface for image optimization operations
type ImageOptimizer interface {
	// Optimize auto-rotates the image, drops its metadata, resizes it
	// according to opts and encodes it as webp.
	Optimize(content []byte, opts Options) ([]byte, error)
}

// FitSize returns the largest size with the source's aspect ratio that
// fits inside the box. Sources that already fit are returned as they are.
func FitSize(srcW, srcH, boxW, boxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}

	if srcW <= boxW && srcH <= boxH {
		return srcW, srcH
	}

	ratio := math.Min(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))

	w := int(math.Round(float64(srcW) * ratio))
	h := int(math.Round(float64(srcH) * ratio))

	return clamp(w, 1, boxW), clamp(h, 1, boxH)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
