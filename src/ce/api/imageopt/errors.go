package imageopt

import "github.com/pkg/errors"

var (
	// ErrMissingParameter is returned when the source url is empty.
	ErrMissingParameter = errors.New("missing url parameter")

	// ErrUpstreamFetchFailed is returned when the source image cannot be fetched.
	ErrUpstreamFetchFailed = errors.New("upstream fetch failed")

	// ErrTransformFailed is returned when the image cannot be decoded,
	// resized or encoded.
	ErrTransformFailed = errors.New("image transform failed")
)
