package factory

import (
	"fmt"

	"github.com/Pallinder/go-randomdata"
	"github.com/gosimple/slug"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/utils"
	"gopkg.in/guregu/null.v3"
)

var productCounter = 0

type MockProduct struct {
	*catalog.Product
	*Factory
}

// GetProduct returns the first product that was created in this factory.
// If none is found, it will create a new one.
func (f *Factory) GetProduct() *MockProduct {
	if res := factoryLookup[MockProduct](f); res != nil {
		return res
	}

	return f.MockProduct()
}

// MockProduct returns a new product. Fields can be overwritten by name.
func (f *Factory) MockProduct(overwrites ...map[string]any) *MockProduct {
	productCounter = productCounter + 1

	name := fmt.Sprintf("%s %d", randomdata.SillyName(), productCounter)

	p := &catalog.Product{
		ID:             catalog.ProductID(fmt.Sprintf("%d", productCounter)),
		SKU:            fmt.Sprintf("BM-%05d", productCounter),
		Name:           name,
		Slug:           slug.Make(name),
		Description:    null.NewString(randomdata.Paragraph(), true),
		SeoDescription: null.String{},
		Price:          catalog.Price(float64(randomdata.Number(1000, 100000)) / 100),
		Variant:        catalog.VariantImported,
		Active:         utils.Ptr(true),
		ShowPrice:      true,
		Images: catalog.Images{
			{URL: fmt.Sprintf("uploads/products/%d/front.jpg", productCounter)},
			{URL: fmt.Sprintf("https://cdn.bmimports.com.br/products/%d/side.jpg", productCounter), Alt: null.StringFrom(name)},
		},
	}

	for _, o := range overwrites {
		merge(p, o)
	}

	return f.newObject(&MockProduct{
		Product: p,
		Factory: f,
	}).(*MockProduct)
}

// MockProducts returns n new products sharing the overwrites.
func (f *Factory) MockProducts(n int, overwrites ...map[string]any) []*catalog.Product {
	products := make([]*catalog.Product, 0, n)

	for range n {
		products = append(products, f.MockProduct(overwrites...).Product)
	}

	return products
}
