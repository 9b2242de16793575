package checkout

import (
	"fmt"
	"time"

	"github.com/GantalaAvinash/mobile-store/internal/cart"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// GST rate applied to every order, in percent. Fixed, not configurable.
const gstRatePercent = 18

type InvoiceItem struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Total       int64  `json:"total"`
}

// Invoice is an immutable snapshot of an order: line items, address,
// and computed totals. It exists only for the current session and is
// never persisted. Amounts are in paise.
type Invoice struct {
	ID            string        `json:"id"`
	OrderDate     time.Time     `json:"orderDate"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	GST           int64         `json:"gst"`
	Total         int64         `json:"total"`
	Address       Address       `json:"address"`
	PaymentMethod string        `json:"paymentMethod"`
	OrderStatus   OrderStatus   `json:"orderStatus"`
}

// GenerateInvoice snapshots the cart, address, and payment method at
// the moment of order placement. Subtotal is the cart total, GST is 18%
// of it, and the order status is fixed to confirmed: there is no
// intermediate payment confirmation step.
func GenerateInvoice(snapshot cart.Cart, address Address, paymentMethod string, now time.Time) *Invoice {
	items := make([]InvoiceItem, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, InvoiceItem{
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
			Total:       item.Product.Price * int64(item.Quantity),
		})
	}

	subtotal := snapshot.Total
	gst := subtotal * gstRatePercent / 100

	return &Invoice{
		ID:            fmt.Sprintf("INV-%d", now.UnixMilli()),
		OrderDate:     now,
		Items:         items,
		Subtotal:      subtotal,
		GST:           gst,
		Total:         subtotal + gst,
		Address:       address,
		PaymentMethod: paymentMethod,
		OrderStatus:   OrderStatusConfirmed,
	}
}
