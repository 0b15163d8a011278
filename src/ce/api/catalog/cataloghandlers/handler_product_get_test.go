package cataloghandlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HandlerProductGetSuite struct {
	suite.Suite
	backend *backend
}

func (s *HandlerProductGetSuite) BeforeTest(_, _ string) {
	s.backend = newBackend()
}

func (s *HandlerProductGetSuite) AfterTest(_, _ string) {
	s.backend.Close()
}

func (s *HandlerProductGetSuite) Test_Found() {
	response := s.backend.request(http.MethodGet, "/api/products/vaso-azul", nil)
	s.Equal(http.StatusOK, response.Code)

	source := s.backend.URL + "/uploads/vaso.jpg"

	s.JSONEq(`{
		"product": {
			"id": 7,
			"sku": "VA-1",
			"name": "Vaso Azul",
			"slug": "vaso-azul",
			"images": ["/api/optimize-image?`+url.Values{"url": {source}}.Encode()+`"],
			"price": 59.9,
			"formattedPrice": "R$ 59,90",
			"showPrice": true,
			"active": true,
			"ctaLabel": "Fazer pedido",
			"variant": "ready"
		}
	}`, response.String())
}

func (s *HandlerProductGetSuite) Test_NotFound() {
	response := s.backend.request(http.MethodGet, "/api/products/unknown", nil)

	s.Equal(http.StatusNotFound, response.Code)
	s.JSONEq(`{"error":"Product not found."}`, response.String())
}

func TestHandlerProductGet(t *testing.T) {
	suite.Run(t, &HandlerProductGetSuite{})
}
