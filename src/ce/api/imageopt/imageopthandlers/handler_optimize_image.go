package imageopthandlers

import (
	"net/http"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/imageopt"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	errMissingURL = `Parameter "url" is required.`
	errProcessing = "Failed to process the image."
)

// handlerOptimizeImage fetches the image given in the url query parameter
// and returns a webp thumbnail of it.
func handlerOptimizeImage(req *shttp.RequestContext) *shttp.Response {
	source := req.Query().Get("url")
	content, err := optimizationService().Optimize(req.Context(), source)

	if errors.Is(err, imageopt.ErrMissingParameter) {
		return &shttp.Response{
			Status: http.StatusBadRequest,
			Data:   map[string]string{"error": errMissingURL},
		}
	}

	if err != nil {
		slog.Error("error while optimizing image", zap.String("url", source), zap.Error(err))

		return &shttp.Response{
			Status: http.StatusInternalServerError,
			Data:   map[string]string{"error": errProcessing},
		}
	}

	return &shttp.Response{
		Status: http.StatusOK,
		Data:   content,
		Headers: shttp.HeadersFromMap(map[string]string{
			"Content-Type":  imageopt.ContentType,
			"Cache-Control": imageopt.CacheControl,
		}),
	}
}
