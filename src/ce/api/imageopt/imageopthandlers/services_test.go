package imageopthandlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/imageopt/imageopthandlers"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/rediscache"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp/shttptest"
	"github.com/stretchr/testify/suite"
)

type ServicesSuite struct {
	suite.Suite
}

func (s *ServicesSuite) AfterTest(_, _ string) {
	config.Reset()
}

func (s *ServicesSuite) Test_Services() {
	services := shttp.NewRouter().RegisterService(imageopthandlers.Services)

	s.NotNil(services)
	s.Equal([]string{"GET:/api/optimize-image"}, services.HandlerKeys())
}

func (s *ServicesSuite) Test_Services_CustomPath() {
	config.Set(&config.Config{Image: &config.ImageConfig{ServicePath: "/img"}})
	services := shttp.NewRouter().RegisterService(imageopthandlers.Services)

	s.Equal([]string{"GET:/img"}, services.HandlerKeys())
}

func (s *ServicesSuite) Test_LazyServiceDoesNotWaitForRedis() {
	backoff := rediscache.Backoff
	waits := 0

	defer func() {
		rediscache.Backoff = backoff
		rediscache.SetClient(nil)
		imageopthandlers.SetService(nil)
	}()

	rediscache.Backoff = func(int) time.Duration {
		waits++
		return time.Millisecond
	}

	mr, err := miniredis.Run()
	s.Require().NoError(err)

	addr := mr.Addr()
	mr.Close()

	config.Set(&config.Config{
		RedisAddr: addr,
		Image:     &config.ImageConfig{CacheEnabled: true},
	})

	imageopthandlers.SetService(nil)

	response := shttptest.Request(
		shttp.NewRouter().RegisterService(imageopthandlers.Services).Router().Handler(),
		shttp.MethodGet,
		"/api/optimize-image",
		nil,
	)

	s.Equal(http.StatusBadRequest, response.Code)
	s.Zero(waits)
}

func TestServices(t *testing.T) {
	suite.Run(t, &ServicesSuite{})
}
