package hosting

import (
	"net/http"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog/cataloghandlers"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/imageopt/imageopthandlers"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/status"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/tracking"
)

// Handler returns the storefront http handler.
func Handler() http.Handler {
	slog.Debug(slog.LogOpts{
		Msg:   "registering middlewares and services",
		Level: slog.DL3,
	})

	r := shttp.NewRouter()
	r.RegisterMiddleware(WithRequestLog)
	r.RegisterMiddleware(tracking.WithRequestCount)
	r.RegisterService(imageopthandlers.Services)
	r.RegisterService(cataloghandlers.Services)
	r.RegisterService(status.Services)
	r.RegisterService(Services)

	return r.WithGzip().Handler()
}
