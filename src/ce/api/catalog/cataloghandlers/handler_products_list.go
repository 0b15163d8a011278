package cataloghandlers

import (
	"net/http"
	"strings"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/utils"
)

func backendError(err error) *shttp.Response {
	slog.Errorf("catalog backend error: %s", err.Error())

	return &shttp.Response{
		Status: http.StatusBadGateway,
		Data:   map[string]string{"error": "The catalog is unavailable, please try again later."},
	}
}

// handlerProductsList returns a page of product cards.
func handlerProductsList(req *shttp.RequestContext) *shttp.Response {
	variant, ok := catalog.ParseVariant(req.Query().Get("variant"))

	if !ok {
		return shttp.BadRequest(map[string]string{"error": "Unknown variant."})
	}

	pageSize := config.Get().Catalog.PageSize
	page := max(1, utils.StringToInt(req.Query().Get("page")))
	opts := catalog.ListOptions{
		Variant: variant,
		Q:       strings.TrimSpace(req.Query().Get("q")),
		Take:    pageSize,
		Skip:    (page - 1) * pageSize,
	}

	list, err := backend().ListProducts(req.Context(), opts)

	if err != nil {
		return backendError(err)
	}

	pagination := catalog.Paginate(list.Total, page, pageSize)

	// The requested page is past the end: serve the last one instead.
	if pagination.Page != page && list.Total > 0 {
		opts.Skip = pagination.Start

		if list, err = backend().ListProducts(req.Context(), opts); err != nil {
			return backendError(err)
		}
	}

	// Backends that ignore take return the whole list.
	items := list.Items

	if len(items) > pageSize {
		start := min(pagination.Start, len(items))
		items = items[start:min(pagination.End, len(items))]
	}

	resolver := catalog.NewResolver()
	cards := make([]card, 0, len(items))

	for _, p := range items {
		cards = append(cards, newCard(p, variant, resolver))
	}

	return &shttp.Response{
		Status: http.StatusOK,
		Data: map[string]any{
			"products": cards,
			"label":    variant.Label(),
			"pagination": map[string]any{
				"page":       pagination.Page,
				"pageSize":   pagination.PageSize,
				"totalPages": pagination.TotalPages,
				"total":      pagination.Total,
				"pages":      catalog.PageWindow(pagination.Page, pagination.TotalPages),
			},
		},
	}
}
