package imageopt

import (
	"context"
	"net/http"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/pkg/errors"
)

// Fetcher downloads the source image.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches images with a plain GET request. It sets no timeout,
// the request lives as long as the context does.
type HTTPFetcher struct{}

// Fetch returns the whole response body. Non-2xx responses are failures.
func (HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	res, err := shttp.NewRequest().
		WithContext(ctx).
		URL(url).
		Method(http.MethodGet).
		Headers(shttp.HeadersFromMap(map[string]string{"Accept": "image/*"})).
		Do()

	if err != nil {
		return nil, errors.Wrap(ErrUpstreamFetchFailed, err.Error())
	}

	if !res.IsSuccess() {
		res.Close()
		return nil, errors.Wrapf(ErrUpstreamFetchFailed, "status %d", res.StatusCode)
	}

	content, err := res.Bytes()

	if err != nil {
		return nil, errors.Wrap(ErrUpstreamFetchFailed, err.Error())
	}

	return content, nil
}
