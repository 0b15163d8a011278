package shttp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp/shttperr"
)

// RequestContext is the context for the current request.
type RequestContext struct {
	*http.Request
	writer http.ResponseWriter

	// StartTime is the time when the request was first received.
	StartTime time.Time

	parsedURL url.Values
}

// NewRequestContext returns a new context object.
func NewRequestContext(req *http.Request) *RequestContext {
	if req == nil {
		req = &http.Request{}
	}

	return &RequestContext{
		Request:   req,
		StartTime: time.Now(),
	}
}

// Http methods
const (
	MethodPost    = http.MethodPost
	MethodGet     = http.MethodGet
	MethodPut     = http.MethodPut
	MethodDelete  = http.MethodDelete
	MethodOptions = http.MethodOptions
	MethodHead    = http.MethodHead
	MethodPatch   = http.MethodPatch
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names instead of struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		if name == "" {
			return fld.Name
		}

		return name
	})

	return v
}

// SetWriter allows setting a different writer than http.ResponseWriter.
// It is mostly used for test purposes.
func (r *RequestContext) SetWriter(w http.ResponseWriter) {
	r.writer = w
}

// Writer returns the ResponseWriter object.
func (r *RequestContext) Writer() http.ResponseWriter {
	return r.writer
}

// Vars returns the route parameters.
func (r *RequestContext) Vars() map[string]string {
	if r.Request == nil {
		return map[string]string{}
	}

	return mux.Vars(r.Request)
}

// URL returns the current request's url.
func (r *RequestContext) URL() *url.URL {
	if r.Request == nil || r.Request.URL == nil {
		return &url.URL{}
	}

	u := *r.Request.URL

	// In case it is localhost, the scheme will be empty.
	if r.Request.TLS != nil {
		u.Scheme = "https"
	} else if u.Scheme == "" {
		u.Scheme = "http"
	}

	if u.Host == "" {
		u.Host = r.Request.Host
	}

	return &u
}

// Query returns the query parameters.
func (r *RequestContext) Query() url.Values {
	if r.Request == nil {
		return url.Values{}
	}

	if r.parsedURL == nil && r.Request.URL != nil {
		r.parsedURL = r.Request.URL.Query()
	}

	if r.parsedURL == nil {
		r.parsedURL = url.Values{}
	}

	return r.parsedURL
}

// Headers returns the request headers.
func (r *RequestContext) Headers() http.Header {
	if r.Request == nil || r.Request.Header == nil {
		return http.Header{}
	}

	return r.Request.Header
}

// HostName returns the host name from the request.
func (r *RequestContext) HostName() string {
	if r.Request == nil {
		return ""
	}

	// Check the X-Forwarded-Host header first (commonly used by proxies)
	host := r.Headers().Get("X-Forwarded-Host")

	if host == "" {
		host = r.Request.Host
	}

	if host == "" && r.Request.URL != nil {
		return r.Request.URL.Host
	}

	return host
}

// Post parses the JSON body into out and validates it using the
// `validate` struct tags.
func (r *RequestContext) Post(out any) error {
	if r.Request == nil || r.Request.Body == nil {
		return nil
	}

	contents, err := io.ReadAll(r.Request.Body)

	if err != nil {
		return err
	}

	defer func() {
		r.Request.Body = io.NopCloser(bytes.NewBuffer(contents))
	}()

	if err = json.Unmarshal(contents, out); err != nil {
		verr := &shttperr.ValidationError{}
		verr.SetError("error", fmt.Sprintf("Cannot unmarshal request: %s", err.Error()))
		return verr
	}

	return Validate(out)
}

// Validate runs the struct validations on v and converts the failures
// into a ValidationError.
func Validate(v any) error {
	err := validate.Struct(v)

	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)

	if !ok {
		return err
	}

	verr := &shttperr.ValidationError{}

	for _, fe := range verrs {
		verr.SetError(fieldPath(fe), validationMessage(fe))
	}

	return verr
}

// fieldPath strips the root struct name from the namespace:
// QuoteRequest.items[0].qty becomes items[0].qty.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()

	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// RemoteAddr returns the remote address. It first checks for X-Fowarded-*
// headers and if either the ip or the port is missing returns the request.RemoteAddr.
func (r *RequestContext) RemoteAddr() string {
	return RemoteAddr(r.Request)
}

// RemoteAddr returns the remote address. It first checks for X-Fowarded-*
// headers and if either the ip or the port is missing returns the request.RemoteAddr.
func RemoteAddr(r *http.Request) string {
	addr := r.Header.Get("X-Forwarded-For")
	port := r.Header.Get("X-Forwarded-Port")

	if addr == "" {
		addr = r.Header.Get("X-Real-IP")
	}

	if port == "" {
		port = r.Header.Get("X-Real-Port")
	}

	if addr == "" && port == "" {
		return r.RemoteAddr
	}

	if port == "" {
		return addr
	}

	return fmt.Sprintf("%s:%s", addr, port)
}

// ClientIP returns the client IP address without port, checking proxy
// headers first and falling back to RemoteAddr.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}

	// X-Forwarded-For format: "client, proxy1, proxy2"
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		client, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(client)
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	addr := r.RemoteAddr

	// [::1]:port
	if strings.HasPrefix(addr, "[") {
		if end := strings.Index(addr, "]"); end > 0 {
			return addr[1:end]
		}
	}

	if idx := strings.LastIndex(addr, ":"); idx > 0 {
		return addr[:idx]
	}

	return addr
}
