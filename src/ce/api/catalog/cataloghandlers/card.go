package cataloghandlers

import "github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"

// card is the product as rendered by the storefront grid.
type card struct {
	ID             catalog.ProductID `json:"id"`
	SKU            string            `json:"sku"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Summary        string            `json:"summary,omitempty"`
	Images         []string          `json:"images"`
	Price          float64           `json:"price"`
	FormattedPrice string            `json:"formattedPrice,omitempty"`
	ShowPrice      bool              `json:"showPrice"`
	Active         bool              `json:"active"`
	CTALabel       string            `json:"ctaLabel"`
	Variant        catalog.Variant   `json:"variant"`
}

func newCard(p *catalog.Product, variant catalog.Variant, resolver *catalog.Resolver) card {
	if p.Variant != "" {
		variant = p.Variant
	}

	c := card{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Slug:      p.SlugOrName(),
		Summary:   p.Summary(),
		Images:    resolver.ResolveAll(p.ImageURLs()),
		Price:     p.Price.Float(),
		ShowPrice: p.ShowPrice,
		Active:    p.IsActive(),
		CTALabel:  variant.CTALabel(),
		Variant:   variant,
	}

	if p.ShowPrice {
		c.FormattedPrice = catalog.FormatBRL(c.Price)
	}

	return c
}
