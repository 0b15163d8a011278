package hosting

import (
	"errors"
	"net/http"
	"os"
	"path"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"go.uber.org/zap"
)

// HeaderAPI tells the UI where the catalog backend lives.
const HeaderAPI = "X-Storefront-API"

// Services registers the health check and, when a build directory is
// configured, the storefront UI. The UI matches every path so it has to be
// registered last.
func Services(r *shttp.Router) *shttp.Service {
	s := r.NewService()

	s.NewEndpoint("/health").
		Handler(shttp.MethodGet, "", handlerHealth).
		Handler(shttp.MethodHead, "", handlerHealth)

	if dir := config.Get().UI.Dir; dir != "" {
		s.NewEndpoint("/").CatchAll(uiHandler(dir), "")
	}

	return s
}

func handlerHealth(req *shttp.RequestContext) *shttp.Response {
	return &shttp.Response{
		Status:  http.StatusOK,
		Data:    "OK",
		Headers: shttp.HeadersFromMap(map[string]string{"Content-Type": "text/html; charset=utf-8"}),
	}
}

// uiHandler serves the single page application from dir. Unknown paths
// fall back to index.html so that client side routes work on reload.
func uiHandler(dir string) shttp.RequestFunc {
	index := path.Join(dir, "index.html")

	return func(rc *shttp.RequestContext) *shttp.Response {
		if rc.Method != http.MethodGet && rc.Method != http.MethodHead {
			return shttp.MethodNotAllowed()
		}

		// Clean against the root so that the path never leaves dir.
		absFileName := path.Join(dir, path.Clean("/"+rc.URL().Path))
		file, err := os.Open(absFileName)

		// Directories, the root included, are served the index.
		if err == nil {
			if info, serr := file.Stat(); serr != nil || info.IsDir() {
				file.Close()
				err = os.ErrNotExist
			}
		}

		if err != nil && errors.Is(err, os.ErrNotExist) {
			absFileName = index
			file, err = os.Open(absFileName)
		}

		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				slog.Error("cannot open ui file", zap.String("file", absFileName), zap.Error(err))
			}

			return shttp.NotFound()
		}

		fileInfo, err := file.Stat()

		if err != nil {
			file.Close()
			return shttp.NotFound()
		}

		headers := make(http.Header)

		if absFileName == index {
			headers.Set(HeaderAPI, config.Get().Catalog.APIBaseURL)
			headers.Set("Cache-Control", "no-cache")
		}

		return &shttp.Response{
			Status:  http.StatusOK,
			Headers: headers,
			BeforeClose: func() {
				if err := file.Close(); err != nil {
					slog.Errorf("error while closing file: %s", err.Error())
				}
			},
			ServeContent: &shttp.ServeContent{
				Content: file,
				Name:    path.Base(absFileName),
				ModTime: fileInfo.ModTime(),
			},
		}
	}
}
