package catalog

import (
	"strings"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
)

// ReferenceKind tells where the bytes of an image live.
type ReferenceKind int

const (
	// LocalAsset is served by the storefront itself and is not optimized.
	LocalAsset ReferenceKind = iota

	// RemoteURL is an absolute http(s) url.
	RemoteURL

	// BackendRelative is a path relative to the catalog backend.
	BackendRelative
)

func (k ReferenceKind) String() string {
	switch k {
	case LocalAsset:
		return "local"
	case RemoteURL:
		return "remote"
	default:
		return "backend"
	}
}

var networkPrefixes = []string{"http://", "https://"}

// Reference is a classified image reference.
type Reference struct {
	Kind  ReferenceKind
	Value string
}

// Classify decides the kind of the reference. The first matching rule wins.
func Classify(ref string) Reference {
	if strings.HasPrefix(ref, "/") {
		return Reference{Kind: LocalAsset, Value: ref}
	}

	lower := strings.ToLower(ref)

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return Reference{Kind: RemoteURL, Value: ref}
		}
	}

	return Reference{Kind: BackendRelative, Value: ref}
}

// Resolver turns image references into urls that the browser can load.
type Resolver struct {
	// BaseURL is the catalog backend url.
	BaseURL string

	// ServicePath is the path of the image optimization service.
	ServicePath string

	// Placeholder is returned for empty references.
	Placeholder string
}

// NewResolver returns a resolver configured from the environment.
func NewResolver() *Resolver {
	cnf := config.Get()

	return &Resolver{
		BaseURL:     cnf.Catalog.APIBaseURL,
		ServicePath: cnf.Image.ServicePath,
		Placeholder: cnf.Image.Placeholder,
	}
}

// Resolve returns the source url for the reference. It never fails.
func (r *Resolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)

	if ref == "" {
		return r.Placeholder
	}

	reference := Classify(ref)

	switch reference.Kind {
	case LocalAsset:
		return reference.Value
	case RemoteURL:
		return r.ServiceURL(reference.Value)
	default:
		return r.ServiceURL(r.Join(reference.Value))
	}
}

// ResolveAll resolves every non-empty reference. The result always has at
// least one entry: the placeholder.
func (r *Resolver) ResolveAll(refs []string) []string {
	resolved := make([]string, 0, len(refs))

	for _, ref := range refs {
		if strings.TrimSpace(ref) == "" {
			continue
		}

		resolved = append(resolved, r.Resolve(ref))
	}

	if len(resolved) == 0 {
		return []string{r.Placeholder}
	}

	return resolved
}

// Join joins the base url and the path with a single separator. Exactly one
// trailing separator is removed from the base and at most one leading
// separator from the path.
func (r *Resolver) Join(path string) string {
	return strings.TrimSuffix(r.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// ServiceURL returns the optimization service url for an absolute url.
func (r *Resolver) ServiceURL(absolute string) string {
	return r.ServicePath + "?url=" + encodeComponent(absolute)
}
