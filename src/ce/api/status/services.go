package status

import "github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"

// Services sets the handlers for this service.
func Services(r *shttp.Router) *shttp.Service {
	s := r.NewService()

	s.NewEndpoint("/api/status").
		Handler(shttp.MethodGet, "", handlerAPIStatus).
		Handler(shttp.MethodHead, "", handlerAPIStatus)

	return s
}
