package cataloghandlers

import (
	"net/http"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
)

// handlerProductGet returns the card of a single product.
func handlerProductGet(req *shttp.RequestContext) *shttp.Response {
	product, err := backend().ProductBySlug(req.Context(), req.Vars()["slug"])

	if err != nil {
		return backendError(err)
	}

	if product == nil {
		return &shttp.Response{
			Status: http.StatusNotFound,
			Data:   map[string]string{"error": "Product not found."},
		}
	}

	return &shttp.Response{
		Status: http.StatusOK,
		Data: map[string]any{
			"product": newCard(product, catalog.VariantImported, catalog.NewResolver()),
		},
	}
}
