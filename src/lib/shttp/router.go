package shttp

import (
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
)

// RequestFunc is the signature of every endpoint handler.
type RequestFunc func(*RequestContext) *Response

// Middleware wraps a RequestFunc.
type Middleware func(RequestFunc) RequestFunc

// GzipContentTypes are the content types that are compressed when gzip is
// enabled. Images are already compressed and are never listed here.
var GzipContentTypes = []string{
	"text/html",
	"text/plain",
	"text/css",
	"text/javascript",
	"application/javascript",
	"application/json",
	"image/svg+xml",
}

// Router is a thin layer on top of gorilla/mux that knows how to talk
// with RequestFunc handlers.
type Router struct {
	mu          sync.Mutex
	mux         *mux.Router
	middlewares []func(http.Handler) http.Handler
	services    []*Service
	gzip        bool
}

// NewRouter returns a new router instance.
func NewRouter() *Router {
	return &Router{
		mux: mux.NewRouter(),
	}
}

// RegisterMiddleware registers an http middleware. Middlewares are applied
// in the order they are registered, the first one being the outermost.
func (r *Router) RegisterMiddleware(fn func(http.Handler) http.Handler) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.middlewares = append(r.middlewares, fn)
	return r
}

// RegisterService calls the given function with the router. It is the
// conventional way of wiring a handlers package.
func (r *Router) RegisterService(fn func(*Router) *Service) *Service {
	return fn(r)
}

// NewService creates a new service attached to this router.
func (r *Router) NewService() *Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Service{router: r}
	r.services = append(r.services, s)
	return s
}

// WithGzip enables gzip compression for the GzipContentTypes.
func (r *Router) WithGzip() *Router {
	r.gzip = true
	return r
}

// Handler returns the http.Handler for this router.
func (r *Router) Handler() http.Handler {
	var h http.Handler = r.mux

	if r.gzip {
		wrapper, err := gziphandler.GzipHandlerWithOpts(
			gziphandler.ContentTypes(GzipContentTypes),
		)

		if err == nil {
			h = wrapper(h)
		}
	}

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}

	return h
}

// Service groups endpoints.
type Service struct {
	router    *Router
	endpoints []*Endpoint
}

// Router returns the router that the service is attached to.
func (s *Service) Router() *Router {
	return s.router
}

// NewEndpoint creates a new endpoint under the given prefix.
func (s *Service) NewEndpoint(prefix string) *Endpoint {
	e := &Endpoint{
		service: s,
		prefix:  strings.TrimRight(prefix, "/"),
	}

	s.endpoints = append(s.endpoints, e)
	return e
}

// HandlerKeys returns the sorted list of registered handlers in the
// METHOD:path format.
func (s *Service) HandlerKeys() []string {
	keys := []string{}

	for _, e := range s.endpoints {
		keys = append(keys, e.keys...)
	}

	sort.Strings(keys)
	return keys
}

// Endpoint is a collection of handlers sharing the same prefix.
type Endpoint struct {
	service     *Service
	prefix      string
	middlewares []Middleware
	keys        []string
}

// Middleware registers a middleware that applies to the handlers that are
// registered after this call.
func (e *Endpoint) Middleware(fn Middleware) *Endpoint {
	e.middlewares = append(e.middlewares, fn)
	return e
}

// Handler registers a handler for the given method and path.
func (e *Endpoint) Handler(method, p string, fn RequestFunc) *Endpoint {
	full := e.prefix + p

	if full == "" {
		full = "/"
	}

	e.keys = append(e.keys, method+":"+full)

	e.service.router.mux.
		Methods(method).
		Path(full).
		Handler(e.httpHandler(fn))

	return e
}

// CatchAll registers a handler that matches every method and every path
// under the prefix + p.
func (e *Endpoint) CatchAll(fn RequestFunc, p string) *Endpoint {
	prefix := path.Join("/", e.prefix, p)

	e.keys = append(e.keys, "*:"+prefix)

	e.service.router.mux.
		PathPrefix(prefix).
		Handler(e.httpHandler(fn))

	return e
}

func (e *Endpoint) httpHandler(fn RequestFunc) http.Handler {
	for i := len(e.middlewares) - 1; i >= 0; i-- {
		fn = e.middlewares[i](fn)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := NewRequestContext(r)
		rc.SetWriter(w)

		res := fn(rc)

		if res == nil {
			res = NotFound()
		}

		res.Send(w, r)
	})
}
