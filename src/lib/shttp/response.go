package shttp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp/shttperr"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
)

// ServeContent serves the content using http.ServeContent, which takes
// care of range requests and conditional headers.
type ServeContent struct {
	Content io.ReadSeeker
	Name    string
	ModTime time.Time
}

// Response is the object returned by every handler.
type Response struct {
	// Status is the http status. Defaults to 200.
	Status int

	// Data is the response body. Byte slices and strings are written
	// as they are, anything else is JSON encoded.
	Data any

	Headers http.Header

	// Redirect is the location to redirect to.
	Redirect *string

	// ServeContent takes precedence over Data when set.
	ServeContent *ServeContent

	// BeforeClose is called after the response is written.
	BeforeClose func()
}

// Send writes the response to the writer.
func (r *Response) Send(w http.ResponseWriter, req *http.Request) {
	if r.BeforeClose != nil {
		defer r.BeforeClose()
	}

	for k, values := range r.Headers {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}

	status := r.Status

	if status == 0 {
		status = http.StatusOK
	}

	if r.Redirect != nil {
		if r.Status == 0 {
			status = http.StatusFound
		}

		http.Redirect(w, req, *r.Redirect, status)
		return
	}

	if r.ServeContent != nil {
		http.ServeContent(w, req, r.ServeContent.Name, r.ServeContent.ModTime, r.ServeContent.Content)
		return
	}

	var body []byte

	switch data := r.Data.(type) {
	case nil:
	case []byte:
		body = data
	case string:
		body = []byte(data)
	default:
		var err error

		if body, err = json.Marshal(data); err != nil {
			slog.Errorf("cannot marshal response: %s", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
	}

	w.WriteHeader(status)

	if body != nil && req.Method != http.MethodHead {
		if _, err := w.Write(body); err != nil {
			slog.Debug(slog.LogOpts{
				Msg:   "error while writing response: " + err.Error(),
				Level: slog.DL2,
			})
		}
	}
}

// HeadersFromMap converts a map into http.Header.
func HeadersFromMap(m map[string]string) http.Header {
	headers := make(http.Header)

	for k, v := range m {
		headers.Set(k, v)
	}

	return headers
}

// NotFound returns a 404 response.
func NotFound() *Response {
	return &Response{
		Status: http.StatusNotFound,
	}
}

// MethodNotAllowed returns a 405 response.
func MethodNotAllowed() *Response {
	return &Response{
		Status: http.StatusMethodNotAllowed,
	}
}

// BadRequest returns a 400 response with the given data.
func BadRequest(data ...any) *Response {
	res := &Response{
		Status: http.StatusBadRequest,
	}

	if len(data) > 0 {
		res.Data = data[0]
	}

	return res
}

// Error maps the error into a response. Errors that carry their own
// status are reported as they are, anything else is a 500.
func Error(err error) *Response {
	var verr *shttperr.ValidationError

	if errors.As(err, &verr) {
		return &Response{
			Status: verr.Status(),
			Data:   verr.JSON(),
		}
	}

	var serr *shttperr.Error

	if errors.As(err, &serr) {
		return &Response{
			Status: serr.Status,
			Data:   serr.JSON(),
		}
	}

	return UnexpectedError(err)
}

// UnexpectedError logs the error and returns a generic 500 response.
func UnexpectedError(err error) *Response {
	if err != nil {
		slog.Errorf("unexpected error: %s", err.Error())
	}

	return &Response{
		Status: http.StatusInternalServerError,
		Data: map[string]string{
			"error": "Something went wrong on our side.",
		},
	}
}
