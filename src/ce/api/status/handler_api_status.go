package status

import (
	"bytes"
	"html/template"
	"net/http"
	"regexp"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/imageopt"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/utils"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
	<head>
		<title>BM Imports Storefront</title>
		<meta name="viewport" content="width=device-width, initial-scale=1" />
		<style>
			html, body {
				font-family: Verdana, Geneva, sans-serif;
				background-color: #f7f5f0;
				color: #1d1d1b;
				display: flex;
				min-height: 100vh;
				align-items: center;
				justify-content: center;
			}

			table {
				border-collapse: collapse;
				border: 1px solid rgba(0, 0, 0, 0.1);
			}

			table td {
				padding: 1rem;
				min-width: 14rem;
				border: 1px solid rgba(0, 0, 0, 0.1);
			}

			table td:last-of-type {
				text-align: right;
			}
		</style>
	</head>
	<body>
		<main>
			<h1>Storefront</h1>
			<table>
				<tbody>
					<tr><td>Status</td><td style="color: green;">OK</td></tr>
					<tr><td>Commit</td><td>{{ .hash }}</td></tr>
					<tr><td>Version</td><td>{{ .version }}</td></tr>
					<tr><td>Environment</td><td>{{ .env }}</td></tr>
					<tr><td>Image engine</td><td>{{ .engine }}</td></tr>
					<tr><td>Image cache</td><td>{{ .cache }}</td></tr>
				</tbody>
			</table>
		</main>
	</body>
</html>`))

var whitespace = regexp.MustCompile(`\s+`)

// handlerAPIStatus renders the build information of the running instance.
func handlerAPIStatus(req *shttp.RequestContext) *shttp.Response {
	if req.Method == shttp.MethodHead {
		return &shttp.Response{
			Status: http.StatusOK,
		}
	}

	cfg := config.Get()
	hash := cfg.Version.Hash

	if len(hash) > 7 {
		hash = hash[:7]
	}

	engine := "native"

	if imageopt.IsVipsEnabled() {
		engine = "libvips"
	}

	cache := "off"

	if cfg.Image != nil && cfg.Image.CacheEnabled && cfg.RedisAddr != "" {
		cache = "redis"
	}

	var buf bytes.Buffer

	err := page.Execute(&buf, map[string]string{
		"hash":    utils.GetString(hash, "-"),
		"version": utils.GetString(cfg.Version.Tag, "dev"),
		"env":     cfg.Env,
		"engine":  engine,
		"cache":   cache,
	})

	if err != nil {
		return shttp.Error(err)
	}

	return &shttp.Response{
		Status:  http.StatusOK,
		Headers: shttp.HeadersFromMap(map[string]string{"Content-Type": "text/html; charset=utf-8"}),
		Data:    whitespace.ReplaceAll(buf.Bytes(), []byte(" ")),
	}
}
