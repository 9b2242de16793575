package catalog

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingID     = errors.New("product id is empty")
	ErrMissingName   = errors.New("product name is empty")
	ErrNegativePrice = errors.New("product price is negative")
)

type DeliveryInfo struct {
	FreeDelivery    bool `json:"freeDelivery"`
	EstimatedDays   int  `json:"estimatedDays"`
	ExpressDelivery bool `json:"expressDelivery,omitempty"`
}

// Product is the catalog document shape. Prices are in minor currency
// units (paise).
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          int64             `json:"price"`
	OriginalPrice  int64             `json:"originalPrice,omitempty"`
	Image          string            `json:"image"`
	Images         []string          `json:"images,omitempty"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	InStock        bool              `json:"inStock"`
	StockCount     int               `json:"stockCount,omitempty"`
	Rating         float64           `json:"rating,omitempty"`
	Reviews        int               `json:"reviews,omitempty"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	Discount       int               `json:"discount,omitempty"`
	IsNew          bool              `json:"isNew,omitempty"`
	IsBestseller   bool              `json:"isBestseller,omitempty"`
	DeliveryInfo   *DeliveryInfo     `json:"deliveryInfo,omitempty"`
	Warranty       string            `json:"warranty,omitempty"`
	Seller         string            `json:"seller,omitempty"`
	Highlights     []string          `json:"highlights,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate enforces the schema at the store boundary. Malformed records
// are rejected instead of trusted.
func (p *Product) Validate() error {
	if p.ID == "" {
		return ErrMissingID
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: %w", p.ID, ErrMissingName)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: %w", p.ID, ErrNegativePrice)
	}

	return nil
}

// HasValidDiscount reports whether the original price can be shown as a
// strike-through. Discount display assumes originalPrice >= price.
func (p *Product) HasValidDiscount() bool {
	return p.OriginalPrice > 0 && p.OriginalPrice >= p.Price
}
