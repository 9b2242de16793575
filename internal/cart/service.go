package cart

import (
	"context"
	"sync"

	"github.com/GantalaAvinash/mobile-store/internal/catalog"
	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"go.uber.org/zap"
)

// ChangedFunc receives a snapshot of a user's cart after each mutation.
type ChangedFunc func(userID string, snapshot Cart)

// Service is the single authoritative owner of all carts. It keeps them
// in memory, mirrors every mutation to the durable store, and emits a
// changed signal consumers can subscribe to. A mutex serializes
// mutations, so they are processed strictly in arrival order.
type Service struct {
	mu     sync.Mutex
	carts  map[string]*Cart
	store  Store
	logger *zap.Logger
	subs   []ChangedFunc
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		carts:  make(map[string]*Cart),
		store:  store,
		logger: logger,
	}
}

// Subscribe registers a callback invoked after every cart mutation.
// Must be called during wiring, before the service handles traffic.
func (s *Service) Subscribe(fn ChangedFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// cartFor returns the live cart for the user, restoring it from the
// durable store on first access. Load and parse failures are logged and
// downgraded to an empty cart; they never reach the caller.
func (s *Service) cartFor(ctx context.Context, userID string) *Cart {
	if c, ok := s.carts[userID]; ok {
		return c
	}

	c := &Cart{}
	stored, err := s.store.Load(ctx, userID)
	if err != nil {
		applog.Warn(
			ctx,
			s.logger,
			"Failed to restore cart, starting empty",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	} else if stored != nil {
		c = stored
		c.recompute()
	}

	s.carts[userID] = c
	return c
}

// mirror serializes the full cart to the durable store. Write failures
// are logged and swallowed: the in-memory cart stays authoritative and
// there is nothing to roll back.
func (s *Service) mirror(ctx context.Context, userID string, c *Cart) {
	if err := s.store.Save(ctx, userID, *c); err != nil {
		applog.Warn(
			ctx,
			s.logger,
			"Failed to persist cart",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

// afterMutation finalizes a mutation: recompute, mirror, snapshot. It
// releases the mutex before fanning out so callbacks may re-enter the
// service. Callers must hold s.mu and must not unlock it themselves.
func (s *Service) afterMutation(ctx context.Context, userID string, c *Cart) Cart {
	c.recompute()
	s.mirror(ctx, userID, c)

	snapshot := c.clone()
	subs := make([]ChangedFunc, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(userID, snapshot)
	}
	return snapshot
}

// Get returns a snapshot of the user's cart.
func (s *Service) Get(ctx context.Context, userID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartFor(ctx, userID).clone()
}

// AddToCart increments the quantity when an item for the product id
// already exists, otherwise appends a new item. Stock count is not
// enforced.
func (s *Service) AddToCart(ctx context.Context, userID string, product catalog.Product, quantity int) Cart {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()

	c := s.cartFor(ctx, userID)
	found := false
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity})
	}

	return s.afterMutation(ctx, userID, c)
}

// RemoveFromCart deletes the item for the product id. Removing an
// absent product is a no-op, not an error.
func (s *Service) RemoveFromCart(ctx context.Context, userID string, productID string) Cart {
	s.mu.Lock()

	c := s.cartFor(ctx, userID)
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}

	return s.afterMutation(ctx, userID, c)
}

// UpdateQuantity replaces the item's quantity. A non-positive quantity
// is equivalent to removal.
func (s *Service) UpdateQuantity(ctx context.Context, userID string, productID string, quantity int) Cart {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userID, productID)
	}

	s.mu.Lock()

	c := s.cartFor(ctx, userID)
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			break
		}
	}

	return s.afterMutation(ctx, userID, c)
}

// Clear resets the user's cart to empty.
func (s *Service) Clear(ctx context.Context, userID string) Cart {
	s.mu.Lock()

	c := s.cartFor(ctx, userID)
	c.Items = nil

	return s.afterMutation(ctx, userID, c)
}
