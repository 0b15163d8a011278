package imageopthandlers

import (
	"sync"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/imageopt"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
)

var (
	serviceMu sync.Mutex
	service   *imageopt.Service
)

// SetService overrides the optimization service. Passing nil restores
// the environment configured one, which is then built on the first request.
func SetService(s *imageopt.Service) {
	serviceMu.Lock()
	defer serviceMu.Unlock()
	service = s
}

func optimizationService() *imageopt.Service {
	serviceMu.Lock()
	defer serviceMu.Unlock()

	// The lock is held by every image request, so redis gets one attempt.
	if service == nil {
		service = imageopt.NewService(imageopt.ServiceOpts{FailFast: true})
	}

	return service
}

// Services sets the handlers for this service.
func Services(r *shttp.Router) *shttp.Service {
	s := r.NewService()

	s.NewEndpoint(config.Get().Image.ServicePath).
		Handler(shttp.MethodGet, "", handlerOptimizeImage)

	return s
}
