package cataloghandlers_test

import (
	"testing"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog/cataloghandlers"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/stretchr/testify/suite"
)

type ServicesSuite struct {
	suite.Suite
}

func (s *ServicesSuite) Test_Services() {
	services := shttp.NewRouter().RegisterService(cataloghandlers.Services)

	s.NotNil(services)
	s.Equal([]string{
		"GET:/api/products",
		"GET:/api/products/{slug}",
		"POST:/api/checkout",
	}, services.HandlerKeys())
}

func TestServices(t *testing.T) {
	suite.Run(t, &ServicesSuite{})
}
