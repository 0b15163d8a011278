package cataloghandlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog/cataloghandlers"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp/shttptest"
)

// backend is a fake catalog backend.
type backend struct {
	*httptest.Server

	mu      sync.Mutex
	queries []map[string]string
	quotes  [][]byte

	// products is returned by the list endpoint, total as the list size.
	products string
	total    int
	status   int
}

func newBackend() *backend {
	b := &backend{status: http.StatusOK, products: "[]"}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/public/products", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		b.queries = append(b.queries, map[string]string{
			"variant": r.URL.Query().Get("variant"),
			"q":       r.URL.Query().Get("q"),
			"take":    r.URL.Query().Get("take"),
			"skip":    r.URL.Query().Get("skip"),
		})

		if b.status != http.StatusOK {
			w.WriteHeader(b.status)
			return
		}

		_, _ = w.Write([]byte(`{"items": ` + b.products + `, "total": ` + strconv.Itoa(b.total) + `}`))
	})

	mux.HandleFunc("GET /api/public/products/by-slug", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("slug") != "vaso-azul" {
			http.NotFound(w, r)
			return
		}

		_, _ = w.Write([]byte(`{"id": 7, "sku": "VA-1", "name": "Vaso Azul", "slug": "vaso-azul", "price": "5990", "showPrice": true, "variant": "ready", "images": ["uploads/vaso.jpg"]}`))
	})

	mux.HandleFunc("POST /api/public/quotes", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		body, _ := io.ReadAll(r.Body)
		b.quotes = append(b.quotes, body)

		if b.status != http.StatusOK {
			w.WriteHeader(b.status)
			return
		}

		_, _ = w.Write([]byte(`{"ok": true, "id": 42}`))
	})

	b.Server = httptest.NewServer(mux)

	config.Set(&config.Config{
		Catalog: &config.CatalogConfig{
			APIBaseURL: b.URL,
			SalesEmail: "vendas@example.org",
			PageSize:   12,
		},
		Image: &config.ImageConfig{},
	})

	cataloghandlers.SetClient(catalog.NewClient())

	return b
}

func (b *backend) Close() {
	b.Server.Close()
	cataloghandlers.SetClient(nil)
	config.Reset()
}

func (b *backend) request(method, target string, payload any) shttptest.Response {
	return shttptest.Request(
		shttp.NewRouter().RegisterService(cataloghandlers.Services).Router().Handler(),
		method,
		target,
		payload,
	)
}
