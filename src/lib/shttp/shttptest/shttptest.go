package shttptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

// Response wraps the recorder so that tests can read the body easily.
type Response struct {
	*httptest.ResponseRecorder
}

// String returns the body as a string.
func (r Response) String() string {
	return r.Body.String()
}

// Byte returns the body as bytes.
func (r Response) Byte() []byte {
	return r.Body.Bytes()
}

// Map decodes the JSON body into a map.
func (r Response) Map() map[string]any {
	m := map[string]any{}
	_ = json.Unmarshal(r.Body.Bytes(), &m)
	return m
}

// Request sends a request to the handler without custom headers.
func Request(handler http.Handler, method, url string, payload any) Response {
	return RequestWithHeaders(handler, method, url, payload, nil)
}

// RequestWithHeaders sends a request to the handler. Payloads other than
// strings and byte slices are JSON encoded.
func RequestWithHeaders(handler http.Handler, method, url string, payload any, headers map[string]string) Response {
	var body io.Reader

	switch p := payload.(type) {
	case nil:
	case string:
		body = strings.NewReader(p)
	case []byte:
		body = bytes.NewReader(p)
	default:
		data, err := json.Marshal(p)

		if err != nil {
			panic(err)
		}

		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, url, body)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	return Response{ResponseRecorder: w}
}
