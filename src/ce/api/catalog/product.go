package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"
)

// Variant is the catalog a product belongs to.
type Variant string

const (
	VariantImported Variant = "imported"
	VariantReady    Variant = "ready"
)

// ParseVariant returns the variant with the given name. An empty string
// yields the imported catalog.
func ParseVariant(s string) (Variant, bool) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantImported:
		return VariantImported, true
	case VariantReady:
		return VariantReady, true
	default:
		return "", false
	}
}

// Label is the tab title of the catalog.
func (v Variant) Label() string {
	if v == VariantReady {
		return "Produtos à pronta entrega"
	}

	return "Produtos importados"
}

// CTALabel is the label of the product card button.
func (v Variant) CTALabel() string {
	if v == VariantReady {
		return "Fazer pedido"
	}

	return "Solicitar orçamento"
}

// ProductID is either a number or a string in the backend payloads.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var s string

	if err := json.Unmarshal(data, &s); err == nil {
		*id = ProductID(s)
		return nil
	}

	var n json.Number

	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "product id must be a number or a string")
	}

	*id = ProductID(n.String())
	return nil
}

// MarshalJSON writes numeric ids as numbers.
func (id ProductID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}

	return json.Marshal(string(id))
}

// Image is a product image.
type Image struct {
	URL string      `json:"url"`
	Alt null.String `json:"alt"`
}

// Images accepts both a list of urls and a list of image objects.
type Images []Image

func (im *Images) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage

	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "images must be a list")
	}

	if raw == nil {
		*im = nil
		return nil
	}

	images := make(Images, 0, len(raw))

	for _, item := range raw {
		var s string

		if err := json.Unmarshal(item, &s); err == nil {
			images = append(images, Image{URL: s})
			continue
		}

		image := Image{}

		if err := json.Unmarshal(item, &image); err != nil {
			return errors.Wrap(err, "image must be a url or an object")
		}

		images = append(images, image)
	}

	*im = images
	return nil
}

// Product is a catalog product as returned by the backend.
type Product struct {
	ID             ProductID   `json:"id"`
	SKU            string      `json:"sku"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug,omitempty"`
	Description    null.String `json:"description"`
	SeoDescription null.String `json:"seoDescription"`
	Price          Price       `json:"price"`
	Variant        Variant     `json:"variant,omitempty"`
	Active         *bool       `json:"active,omitempty"`
	ShowPrice      bool        `json:"showPrice"`
	Images         Images      `json:"images,omitempty"`
}

// ImageURLs returns the non-empty image urls.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))

	for _, im := range p.Images {
		if im.URL != "" {
			urls = append(urls, im.URL)
		}
	}

	return urls
}

// FirstImage returns the first image url or an empty string.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0].URL
}

// Summary returns the seo description, falling back to the description.
func (p *Product) Summary() string {
	if p.SeoDescription.Valid {
		return p.SeoDescription.String
	}

	return p.Description.String
}

// IsActive reports whether the product can be added to the cart. Products
// without the flag are active.
func (p *Product) IsActive() bool {
	return p.Active == nil || *p.Active
}

// SlugOrName returns the slug or one generated from the name.
func (p *Product) SlugOrName() string {
	if p.Slug != "" {
		return p.Slug
	}

	return slug.Make(p.Name)
}
