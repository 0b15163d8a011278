package cataloghandlers

import (
	"sync"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
)

var (
	clientMu sync.Mutex
	client   *catalog.Client
)

// SetClient overrides the catalog backend client. Passing nil restores
// the environment configured one.
func SetClient(c *catalog.Client) {
	clientMu.Lock()
	defer clientMu.Unlock()
	client = c
}

func backend() *catalog.Client {
	clientMu.Lock()
	defer clientMu.Unlock()

	if client == nil {
		client = catalog.NewClient()
	}

	return client
}

// Services sets the handlers for this service.
func Services(r *shttp.Router) *shttp.Service {
	s := r.NewService()

	s.NewEndpoint("/api/products").
		Handler(shttp.MethodGet, "", handlerProductsList).
		Handler(shttp.MethodGet, "/{slug}", handlerProductGet)

	s.NewEndpoint("/api/checkout").
		Handler(shttp.MethodPost, "", handlerCheckout)

	return s
}
