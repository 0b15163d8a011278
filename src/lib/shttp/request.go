package shttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// RequestInterface builds and sends outbound http requests.
type RequestInterface interface {
	URL(string) RequestInterface
	Method(string) RequestInterface
	Headers(http.Header) RequestInterface
	Payload(any) RequestInterface
	WithContext(context.Context) RequestInterface
	Do() (*HTTPResponse, error)
}

// DefaultRequest is returned by NewRequest when set. Tests use it to
// replace outbound calls with a mock.
var DefaultRequest RequestInterface

// client has no timeout of its own. Callers bound requests through the
// context.
var client = &http.Client{}

// Request is the default RequestInterface implementation.
type Request struct {
	ctx     context.Context
	url     string
	method  string
	headers http.Header
	payload any
}

// HTTPResponse wraps the http.Response.
type HTTPResponse struct {
	*http.Response
}

// NewRequest returns the DefaultRequest when set, otherwise a new Request.
func NewRequest() RequestInterface {
	if DefaultRequest != nil {
		return DefaultRequest
	}

	return &Request{
		method:  http.MethodGet,
		headers: make(http.Header),
	}
}

func (r *Request) URL(url string) RequestInterface {
	r.url = url
	return r
}

func (r *Request) Method(method string) RequestInterface {
	if method != "" {
		r.method = method
	}

	return r
}

func (r *Request) Headers(headers http.Header) RequestInterface {
	if headers != nil {
		r.headers = headers
	}

	return r
}

func (r *Request) Payload(payload any) RequestInterface {
	r.payload = payload
	return r
}

func (r *Request) WithContext(ctx context.Context) RequestInterface {
	r.ctx = ctx
	return r
}

// Do sends the request.
func (r *Request) Do() (*HTTPResponse, error) {
	ctx := r.ctx

	if ctx == nil {
		ctx = context.Background()
	}

	body, err := r.body()

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, body)

	if err != nil {
		return nil, errors.Wrap(err, "cannot create request")
	}

	req.Header = r.headers

	res, err := client.Do(req)

	if err != nil {
		return nil, err
	}

	return &HTTPResponse{Response: res}, nil
}

func (r *Request) body() (io.Reader, error) {
	switch p := r.payload.(type) {
	case nil:
		return nil, nil
	case io.Reader:
		return p, nil
	case []byte:
		return bytes.NewReader(p), nil
	case string:
		return strings.NewReader(p), nil
	default:
		data, err := json.Marshal(p)

		if err != nil {
			return nil, errors.Wrap(err, "cannot marshal payload")
		}

		if r.headers.Get("Content-Type") == "" {
			r.headers.Set("Content-Type", "application/json")
		}

		return bytes.NewReader(data), nil
	}
}

// Close closes the response body.
func (h *HTTPResponse) Close() {
	if h != nil && h.Response != nil && h.Body != nil {
		h.Body.Close()
	}
}

// IsSuccess returns true for 2xx statuses.
func (h *HTTPResponse) IsSuccess() bool {
	return h.StatusCode >= 200 && h.StatusCode < 300
}

// Bytes reads the whole body and closes it.
func (h *HTTPResponse) Bytes() ([]byte, error) {
	defer h.Close()
	return io.ReadAll(h.Body)
}

// JSON decodes the body into out and closes it.
func (h *HTTPResponse) JSON(out any) error {
	defer h.Close()
	return json.NewDecoder(h.Body).Decode(out)
}
