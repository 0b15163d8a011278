package catalog_test

import (
	"testing"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/factory"
	"github.com/stretchr/testify/suite"
)

type CartSuite struct {
	suite.Suite
	*factory.Factory
}

func (s *CartSuite) BeforeTest(_, _ string) {
	s.Factory = factory.New()
}

func (s *CartSuite) Test_AddIncrementsExistingLines() {
	p := s.MockProduct(map[string]any{"Price": catalog.Price(10)})
	cart := &catalog.Cart{}

	cart.Add(p.Product)
	cart.Add(p.Product)

	s.Len(cart.Items, 1)
	s.Equal(2, cart.Items[0].Qty)
	s.Equal(p.FirstImage(), cart.Items[0].Image)
	s.InDelta(20, cart.Subtotal(), 1e-9)
}

func (s *CartSuite) Test_IncDecRemove() {
	a := s.MockProduct(map[string]any{"Price": catalog.Price(10)})
	b := s.MockProduct(map[string]any{"Price": catalog.Price(2.5)})
	cart := &catalog.Cart{}

	cart.Add(a.Product)
	cart.Add(b.Product)

	cart.Inc(b.ID)
	cart.Inc(b.ID)
	s.Equal(3, cart.Items[1].Qty)

	cart.Dec(a.ID)
	s.Equal(1, cart.Items[0].Qty)

	cart.Inc("unknown")
	cart.Remove(a.ID)

	s.Len(cart.Items, 1)
	s.Equal(b.ID, cart.Items[0].ID)
	s.InDelta(7.5, cart.Subtotal(), 1e-9)
}

func (s *CartSuite) Test_Merge() {
	cart := &catalog.Cart{}
	cart.Merge([]catalog.CartItem{
		{ID: "1", Name: "A", SKU: "A", Price: 1, Qty: 0},
		{ID: "2", Name: "B", SKU: "B", Price: 2, Qty: 3},
		{ID: "1", Name: "A", SKU: "A", Price: 1, Qty: 2},
	})

	s.Len(cart.Items, 2)
	s.Equal(3, cart.Items[0].Qty)
	s.Equal(3, cart.Items[1].Qty)
	s.InDelta(9, cart.Subtotal(), 1e-9)
}

func TestCart(t *testing.T) {
	suite.Run(t, &CartSuite{})
}
