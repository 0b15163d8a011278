package catalog_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ref  string
		kind catalog.ReferenceKind
	}{
		{"/placeholder.svg", catalog.LocalAsset},
		{"/uploads/a.jpg", catalog.LocalAsset},
		{"//cdn.example.com/a.jpg", catalog.LocalAsset},
		{"https://cdn.example.com/a.jpg", catalog.RemoteURL},
		{"http://cdn.example.com/a.jpg", catalog.RemoteURL},
		{"HTTPS://CDN.EXAMPLE.COM/A.JPG", catalog.RemoteURL},
		{"uploads/a.jpg", catalog.BackendRelative},
		{"ftp://files.example.com/a.jpg", catalog.BackendRelative},
		{"httpfoo/a.jpg", catalog.BackendRelative},
	}

	for _, tt := range tests {
		ref := catalog.Classify(tt.ref)
		assert.Equal(t, tt.kind, ref.Kind, tt.ref)
		assert.Equal(t, tt.ref, ref.Value)
	}
}

type ResolverSuite struct {
	suite.Suite
	resolver *catalog.Resolver
}

func (s *ResolverSuite) SetupTest() {
	s.resolver = &catalog.Resolver{
		BaseURL:     "https://api.bmimports.com.br",
		ServicePath: "/api/optimize-image",
		Placeholder: "/placeholder.svg",
	}
}

func (s *ResolverSuite) decoded(resolved string) string {
	path, query, found := strings.Cut(resolved, "?")
	s.Require().True(found, resolved)
	s.Equal("/api/optimize-image", path)

	values, err := url.ParseQuery(query)
	s.Require().NoError(err)
	s.Len(values, 1)

	return values.Get("url")
}

func (s *ResolverSuite) Test_LocalAssetsAreUnchanged() {
	for _, ref := range []string{"/placeholder.svg", "/img/logo.png?v=2", "/"} {
		s.Equal(ref, s.resolver.Resolve(ref))
	}
}

func (s *ResolverSuite) Test_RemoteRoundTrip() {
	refs := []string{
		"https://cdn.example.com/a.jpg",
		"https://cdn.example.com/path with spaces/ção.jpg?x=1&y=2#frag",
		"http://example.com/a+b%20c.png",
	}

	for _, ref := range refs {
		resolved := s.resolver.Resolve(ref)
		s.Equal(ref, s.decoded(resolved))
		s.NotContains(resolved, " ")
	}
}

func (s *ResolverSuite) Test_RemoteExactEncoding() {
	s.Equal(
		"/api/optimize-image?url=https%3A%2F%2Fcdn.example.com%2Fa.jpg",
		s.resolver.Resolve("https://cdn.example.com/a.jpg"),
	)
}

func (s *ResolverSuite) Test_RemoteSpacesArePercentEncoded() {
	s.Equal(
		"/api/optimize-image?url=https%3A%2F%2Fcdn.example.com%2Fvaso%20azul.jpg",
		s.resolver.Resolve("https://cdn.example.com/vaso azul.jpg"),
	)
}

func (s *ResolverSuite) Test_BackendRelativeSingleSeparator() {
	for _, base := range []string{"https://api.bmimports.com.br", "https://api.bmimports.com.br/"} {
		s.resolver.BaseURL = base

		s.Equal("https://api.bmimports.com.br/uploads/a.jpg", s.decoded(s.resolver.Resolve("uploads/a.jpg")))
		s.Equal("https://api.bmimports.com.br/uploads/a.jpg", s.resolver.Join("/uploads/a.jpg"))
		s.Equal("https://api.bmimports.com.br/uploads/a.jpg", s.resolver.Join("uploads/a.jpg"))
	}
}

func (s *ResolverSuite) Test_BackendRelativeStripsOnlyOneSeparator() {
	s.resolver.BaseURL = "https://api.bmimports.com.br//"
	s.Equal("https://api.bmimports.com.br//uploads/a.jpg", s.resolver.Join("uploads/a.jpg"))

	s.resolver.BaseURL = "https://api.bmimports.com.br"
	s.Equal("https://api.bmimports.com.br//uploads/a.jpg", s.resolver.Join("//uploads/a.jpg"))
}

func (s *ResolverSuite) Test_EmptyBaseURL() {
	s.resolver.BaseURL = ""
	s.Equal("/uploads/a.jpg", s.decoded(s.resolver.Resolve("uploads/a.jpg")))
}

func (s *ResolverSuite) Test_EmptyReference() {
	s.Equal("/placeholder.svg", s.resolver.Resolve(""))
	s.Equal("/placeholder.svg", s.resolver.Resolve("   "))
}

func (s *ResolverSuite) Test_ResolveAll() {
	s.Equal([]string{"/placeholder.svg"}, s.resolver.ResolveAll(nil))
	s.Equal([]string{"/placeholder.svg"}, s.resolver.ResolveAll([]string{}))
	s.Equal([]string{"/placeholder.svg"}, s.resolver.ResolveAll([]string{"", " "}))

	resolved := s.resolver.ResolveAll([]string{"/local.png", "", "https://cdn.example.com/a.jpg"})

	s.Len(resolved, 2)
	s.Equal("/local.png", resolved[0])
	s.Equal("https://cdn.example.com/a.jpg", s.decoded(resolved[1]))
}

func TestResolver(t *testing.T) {
	suite.Run(t, &ResolverSuite{})
}
