package imageopt_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/imageopt"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FetcherSuite struct {
	suite.Suite
	mockRequest *mocks.RequestInterface
}

func (s *FetcherSuite) BeforeTest(_, _ string) {
	s.mockRequest = &mocks.RequestInterface{}
	shttp.DefaultRequest = s.mockRequest

	s.mockRequest.On("WithContext", mock.Anything).Return(s.mockRequest).Once()
	s.mockRequest.On("URL", "https://cdn.example.com/vaso.jpg").Return(s.mockRequest).Once()
	s.mockRequest.On("Method", shttp.MethodGet).Return(s.mockRequest).Once()
	s.mockRequest.On("Headers", shttp.HeadersFromMap(map[string]string{"Accept": "image/*"})).Return(s.mockRequest).Once()
}

func (s *FetcherSuite) AfterTest(_, _ string) {
	s.mockRequest.AssertExpectations(s.T())
	shttp.DefaultRequest = nil
}

func (s *FetcherSuite) response(status int, body string) *shttp.HTTPResponse {
	return &shttp.HTTPResponse{
		Response: &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		},
	}
}

func (s *FetcherSuite) Test_Success() {
	s.mockRequest.On("Do").Return(s.response(http.StatusOK, "image-bytes"), nil).Once()

	content, err := imageopt.HTTPFetcher{}.Fetch(context.Background(), "https://cdn.example.com/vaso.jpg")

	s.NoError(err)
	s.Equal([]byte("image-bytes"), content)
}

func (s *FetcherSuite) Test_NonSuccessStatus() {
	s.mockRequest.On("Do").Return(s.response(http.StatusForbidden, "denied"), nil).Once()

	content, err := imageopt.HTTPFetcher{}.Fetch(context.Background(), "https://cdn.example.com/vaso.jpg")

	s.Nil(content)
	s.True(errors.Is(err, imageopt.ErrUpstreamFetchFailed))
	s.Equal("status 403: upstream fetch failed", err.Error())
}

func (s *FetcherSuite) Test_TransportError() {
	s.mockRequest.On("Do").Return(nil, errors.New("dial tcp: no such host")).Once()

	content, err := imageopt.HTTPFetcher{}.Fetch(context.Background(), "https://cdn.example.com/vaso.jpg")

	s.Nil(content)
	s.True(errors.Is(err, imageopt.ErrUpstreamFetchFailed))
	s.Contains(err.Error(), "no such host")
}

func TestFetcher(t *testing.T) {
	suite.Run(t, &FetcherSuite{})
}
