package hosting_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/hosting"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp/shttptest"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MiddlewareSuite struct {
	suite.Suite
	logs    *observer.ObservedLogs
	restore func()
}

func (s *MiddlewareSuite) BeforeTest(_, _ string) {
	core, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs
	s.restore = slog.Replace(zap.New(core))
}

func (s *MiddlewareSuite) AfterTest(_, _ string) {
	s.restore()
}

func (s *MiddlewareSuite) handler() http.Handler {
	return hosting.WithRequestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen-ID", r.Header.Get(hosting.HeaderRequestID))
		w.WriteHeader(http.StatusTeapot)
	}))
}

func (s *MiddlewareSuite) Test_GeneratesID() {
	response := shttptest.Request(s.handler(), shttp.MethodGet, "/api/products?page=2", nil)

	id := response.Header().Get(hosting.HeaderRequestID)
	_, err := uuid.Parse(id)

	s.NoError(err)
	s.Equal(id, response.Header().Get("X-Seen-ID"))

	entries := s.logs.FilterMessage("request served").All()
	s.Len(entries, 1)

	fields := entries[0].ContextMap()
	s.Equal(id, fields["id"])
	s.Equal("GET", fields["method"])
	s.Equal("/api/products", fields["path"])
	s.Equal(int64(http.StatusTeapot), fields["status"])
}

func (s *MiddlewareSuite) Test_KeepsIncomingID() {
	response := shttptest.RequestWithHeaders(s.handler(), shttp.MethodGet, "/", nil, map[string]string{
		hosting.HeaderRequestID: "abc-123",
	})

	s.Equal("abc-123", response.Header().Get(hosting.HeaderRequestID))
	s.Equal("abc-123", s.logs.All()[0].ContextMap()["id"])
}

func TestMiddleware(t *testing.T) {
	suite.Run(t, &MiddlewareSuite{})
}
