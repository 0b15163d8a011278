package catalog

// CartItem is a line of the shopping cart.
type CartItem struct {
	ID    ProductID `json:"id"`
	Name  string    `json:"name" validate:"required"`
	SKU   string    `json:"sku" validate:"required"`
	Price float64   `json:"price" validate:"gte=0"`
	Qty   int       `json:"qty"`
	Image string    `json:"image,omitempty"`
}

// Total returns price × quantity.
func (i CartItem) Total() float64 {
	return i.Price * float64(i.Qty)
}

// Cart holds the products the customer wants a quote for.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c *Cart) find(id ProductID) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}

	return -1
}

// Add adds one unit of the product.
func (c *Cart) Add(p *Product) {
	if i := c.find(p.ID); i >= 0 {
		c.Items[i].Qty++
		return
	}

	c.Items = append(c.Items, CartItem{
		ID:    p.ID,
		Name:  p.Name,
		SKU:   p.SKU,
		Price: p.Price.Float(),
		Qty:   1,
		Image: p.FirstImage(),
	})
}

// Inc adds one unit to the line.
func (c *Cart) Inc(id ProductID) {
	if i := c.find(id); i >= 0 {
		c.Items[i].Qty++
	}
}

// Dec removes one unit from the line. The quantity never drops below 1.
func (c *Cart) Dec(id ProductID) {
	if i := c.find(id); i >= 0 {
		c.Items[i].Qty = max(1, c.Items[i].Qty-1)
	}
}

// Remove removes the line.
func (c *Cart) Remove(id ProductID) {
	if i := c.find(id); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Subtotal is the sum of the line totals.
func (c *Cart) Subtotal() float64 {
	total := 0.0

	for _, item := range c.Items {
		total += item.Total()
	}

	return total
}

// Merge adds the items to the cart. Lines for the same product are merged
// and quantities below 1 count as 1.
func (c *Cart) Merge(items []CartItem) {
	for _, item := range items {
		item.Qty = max(1, item.Qty)

		if i := c.find(item.ID); i >= 0 {
			c.Items[i].Qty += item.Qty
			continue
		}

		c.Items = append(c.Items, item)
	}
}
