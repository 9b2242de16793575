package cart

import "github.com/GantalaAvinash/mobile-store/internal/catalog"

// CartItem is one product/quantity pairing. Quantity is always >= 1; a
// decrement to zero removes the item instead.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds the selected products for one user, in insertion order,
// with at most one item per product id. Total and ItemCount are derived
// from the item sequence and recomputed after every mutation.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func (c *Cart) recompute() {
	var total int64
	var count int
	for _, item := range c.Items {
		total += item.Product.Price * int64(item.Quantity)
		count += item.Quantity
	}
	c.Total = total
	c.ItemCount = count
}

// clone returns a deep-enough copy for handing out as a snapshot: the
// item slice is copied so callers cannot mutate manager state.
func (c *Cart) clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{
		Items:     items,
		Total:     c.Total,
		ItemCount: c.ItemCount,
	}
}
