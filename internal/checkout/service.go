package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GantalaAvinash/mobile-store/internal/cart"
	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"go.uber.org/zap"
)

const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
)

// ErrPaymentUnavailable is returned for the online payment option,
// which is shown but disabled.
var ErrPaymentUnavailable = errors.New("online payment is not available yet")

var ErrNoCheckout = errors.New("no checkout in progress")

// CartManager is the slice of the cart state manager checkout needs:
// a snapshot at order placement and the terminal clear.
type CartManager interface {
	Get(ctx context.Context, userID string) cart.Cart
	Clear(ctx context.Context, userID string) cart.Cart
}

type EventProducer interface {
	ProduceMessage(ctx context.Context, topic string, message interface{}) error
}

// OrderPlacedEvent is emitted after an order is placed so downstream
// consumers (notifications) can react. Delivery is fire-and-forget.
type OrderPlacedEvent struct {
	InvoiceID     string    `json:"invoice_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Total         int64     `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	OrderDate     time.Time `json:"order_date"`
}

// Service drives the checkout flow per user: address entry, payment
// selection, then invoice display. Checkout state is view-local; it is
// held in memory only and discarded when the flow is abandoned.
type Service struct {
	mu         sync.Mutex
	flows      map[string]*Flow
	carts      CartManager
	producer   EventProducer
	orderTopic string
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(carts CartManager, producer EventProducer, orderTopic string, logger *zap.Logger) *Service {
	return &Service{
		flows:      make(map[string]*Flow),
		carts:      carts,
		producer:   producer,
		orderTopic: orderTopic,
		logger:     logger,
		now:        time.Now,
	}
}

// Flow returns the user's current checkout state, starting a new flow
// at address entry when none is in progress.
func (s *Service) Flow(userID string) Flow {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[userID]
	if !ok {
		f = newFlow()
		s.flows[userID] = f
	}
	return *f
}

// SubmitAddress validates the address and advances to payment
// selection. A validation failure blocks the transition and surfaces
// the first failing field.
func (s *Service) SubmitAddress(ctx context.Context, userID string, a Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[userID]
	if !ok {
		f = newFlow()
		s.flows[userID] = f
	}

	if err := f.submitAddress(a); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			applog.Info(
				ctx,
				s.logger,
				"Address validation failed",
				zap.String("user_id", userID),
				zap.String("field", vErr.Field),
			)
		}
		return err
	}

	return nil
}

// Back returns from payment selection to address entry, preserving the
// entered address fields.
func (s *Service) Back(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[userID]
	if !ok {
		return ErrNoCheckout
	}
	return f.back()
}

// Abandon discards all checkout-local state. The cart is untouched.
func (s *Service) Abandon(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, userID)
}

// PlaceOrder snapshots the cart into an immutable invoice, clears the
// cart as its terminal side effect, and emits an order-placed event.
// Only cash on delivery is functional.
func (s *Service) PlaceOrder(ctx context.Context, userID string, paymentMethod string) (*Invoice, error) {
	if paymentMethod == PaymentMethodOnline {
		return nil, ErrPaymentUnavailable
	}
	if paymentMethod != PaymentMethodCOD {
		return nil, &ValidationError{Field: "paymentMethod", Message: "Please select a payment method"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[userID]
	if !ok {
		return nil, ErrNoCheckout
	}
	if f.Step != StepPaymentSelection {
		return nil, ErrWrongStep
	}

	snapshot := s.carts.Get(ctx, userID)
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	invoice := GenerateInvoice(snapshot, f.Address, "Cash on Delivery", s.now())
	s.carts.Clear(ctx, userID)

	f.Invoice = invoice
	f.Step = StepInvoiceDisplay

	applog.Info(
		ctx,
		s.logger,
		"Order placed",
		zap.String("user_id", userID),
		zap.String("invoice_id", invoice.ID),
		zap.Int64("total", invoice.Total),
	)

	s.emitOrderPlaced(ctx, invoice)

	return invoice, nil
}

// emitOrderPlaced is a single attempt with no retry; a failed publish
// is logged and the order still stands.
func (s *Service) emitOrderPlaced(ctx context.Context, invoice *Invoice) {
	if s.producer == nil {
		return
	}

	event := OrderPlacedEvent{
		InvoiceID:     invoice.ID,
		Email:         invoice.Address.Email,
		Name:          invoice.Address.Name,
		Total:         invoice.Total,
		PaymentMethod: invoice.PaymentMethod,
		OrderDate:     invoice.OrderDate,
	}

	if err := s.producer.ProduceMessage(ctx, s.orderTopic, event); err != nil {
		applog.Warn(
			ctx,
			s.logger,
			"Failed to publish order placed event",
			zap.String("invoice_id", invoice.ID),
			zap.Error(err),
		)
	}
}
