package cataloghandlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HandlerProductsListSuite struct {
	suite.Suite
	backend *backend
}

func (s *HandlerProductsListSuite) BeforeTest(_, _ string) {
	s.backend = newBackend()
	s.backend.total = 25
	s.backend.products = `[
		{"id": 1, "sku": "VA-1", "name": "Vaso Azul", "price": "5990", "showPrice": true, "images": ["uploads/vaso.jpg", "https://cdn.example.org/v.png", "/uploads/local.jpg"]},
		{"id": "b-2", "sku": "CP-2", "name": "Copo", "price": 10, "active": false, "description": "Copo de vidro"}
	]`
}

func (s *HandlerProductsListSuite) AfterTest(_, _ string) {
	s.backend.Close()
}

func (s *HandlerProductsListSuite) Test_FirstPage() {
	response := s.backend.request(http.MethodGet, "/api/products?q=vaso", nil)
	s.Equal(http.StatusOK, response.Code)

	s.Equal([]map[string]string{
		{"variant": "imported", "q": "vaso", "take": "12", "skip": "0"},
	}, s.backend.queries)

	vaso := s.backend.URL + "/uploads/vaso.jpg"

	s.JSONEq(`{
		"label": "Produtos importados",
		"products": [
			{
				"id": 1,
				"sku": "VA-1",
				"name": "Vaso Azul",
				"slug": "vaso-azul",
				"images": [
					"/api/optimize-image?`+url.Values{"url": {vaso}}.Encode()+`",
					"/api/optimize-image?url=https%3A%2F%2Fcdn.example.org%2Fv.png",
					"/uploads/local.jpg"
				],
				"price": 59.9,
				"formattedPrice": "R$ 59,90",
				"showPrice": true,
				"active": true,
				"ctaLabel": "Solicitar orçamento",
				"variant": "imported"
			},
			{
				"id": "b-2",
				"sku": "CP-2",
				"name": "Copo",
				"slug": "copo",
				"summary": "Copo de vidro",
				"images": ["/placeholder.svg"],
				"price": 10,
				"showPrice": false,
				"active": false,
				"ctaLabel": "Solicitar orçamento",
				"variant": "imported"
			}
		],
		"pagination": {
			"page": 1,
			"pageSize": 12,
			"totalPages": 3,
			"total": 25,
			"pages": [{"page": 1, "active": true}, {"page": 2}, {"page": 3}]
		}
	}`, response.String())
}

func (s *HandlerProductsListSuite) Test_ReadyVariant() {
	response := s.backend.request(http.MethodGet, "/api/products?variant=ready&page=2", nil)
	s.Equal(http.StatusOK, response.Code)

	s.Equal([]map[string]string{
		{"variant": "ready", "q": "", "take": "12", "skip": "12"},
	}, s.backend.queries)

	data := response.Map()
	s.Equal("Produtos à pronta entrega", data["label"])

	products := data["products"].([]any)
	s.Len(products, 2)
	s.Equal("Fazer pedido", products[0].(map[string]any)["ctaLabel"])
	s.Equal(float64(2), data["pagination"].(map[string]any)["page"])
}

func (s *HandlerProductsListSuite) Test_PageOutOfRange() {
	response := s.backend.request(http.MethodGet, "/api/products?page=9", nil)
	s.Equal(http.StatusOK, response.Code)

	s.Len(s.backend.queries, 2)
	s.Equal("96", s.backend.queries[0]["skip"])
	s.Equal("24", s.backend.queries[1]["skip"])
	s.Equal(float64(3), response.Map()["pagination"].(map[string]any)["page"])
}

func (s *HandlerProductsListSuite) Test_EmptyCatalog() {
	s.backend.total = 0
	s.backend.products = "[]"

	response := s.backend.request(http.MethodGet, "/api/products?page=4", nil)
	s.Equal(http.StatusOK, response.Code)
	s.Len(s.backend.queries, 1)

	s.JSONEq(`{
		"label": "Produtos importados",
		"products": [],
		"pagination": {"page": 1, "pageSize": 12, "totalPages": 1, "total": 0, "pages": [{"page": 1, "active": true}]}
	}`, response.String())
}

func (s *HandlerProductsListSuite) Test_UnknownVariant() {
	response := s.backend.request(http.MethodGet, "/api/products?variant=used", nil)

	s.Equal(http.StatusBadRequest, response.Code)
	s.JSONEq(`{"error":"Unknown variant."}`, response.String())
	s.Empty(s.backend.queries)
}

func (s *HandlerProductsListSuite) Test_BackendFailure() {
	s.backend.status = http.StatusServiceUnavailable

	response := s.backend.request(http.MethodGet, "/api/products", nil)

	s.Equal(http.StatusBadGateway, response.Code)
	s.JSONEq(`{"error":"The catalog is unavailable, please try again later."}`, response.String())
}

func TestHandlerProductsList(t *testing.T) {
	suite.Run(t, &HandlerProductsListSuite{})
}
