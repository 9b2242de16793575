package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/GantalaAvinash/mobile-store/internal/cart"
	"github.com/GantalaAvinash/mobile-store/internal/catalog"
	"github.com/GantalaAvinash/mobile-store/internal/identity"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCatalog struct {
	products map[string]catalog.Product
}

func (s *stubCatalog) List(_ context.Context) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubCatalog) GetByID(_ context.Context, id string) (*catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return &p, nil
}

func (s *stubCatalog) Seed(_ context.Context, products []catalog.Product) (int, error) {
	for _, p := range products {
		s.products[p.ID] = p
	}
	return len(products), nil
}

type memCartStore struct {
	carts map[string]cart.Cart
}

func (m *memCartStore) Load(_ context.Context, userID string) (*cart.Cart, error) {
	c, ok := m.carts[userID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCartStore) Save(_ context.Context, userID string, c cart.Cart) error {
	m.carts[userID] = c
	return nil
}

func newCartTestApp(t *testing.T) *fiber.App {
	t.Helper()

	products := &stubCatalog{products: map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Phone", Price: 100000},
	}}
	carts := cart.NewService(&memCartStore{carts: make(map[string]cart.Cart)}, zap.NewNop())
	h := NewCartHandler(carts, products, zap.NewNop())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &identity.User{UID: "u1"})
		return c.Next()
	})
	app.Get("/cart", h.GetCart)
	app.Post("/cart/items", h.AddToCart)
	app.Delete("/cart/items/:id", h.RemoveFromCart)

	return app
}

func TestAddToCartHandler_AddsResolvedProduct(t *testing.T) {
	app := newCartTestApp(t)

	body, err := json.Marshal(AddToCartInput{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Cart cart.Cart `json:"cart"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Cart.Items, 1)
	require.Equal(t, "p1", payload.Cart.Items[0].Product.ID)
	require.Equal(t, 2, payload.Cart.Items[0].Quantity)
	require.Equal(t, int64(200000), payload.Cart.Total)
}

func TestAddToCartHandler_UnknownProductIs404(t *testing.T) {
	app := newCartTestApp(t)

	body, err := json.Marshal(AddToCartInput{ProductID: "nope", Quantity: 1})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCartHandlers_AddThenRemoveRoundTrip(t *testing.T) {
	app := newCartTestApp(t)

	body, err := json.Marshal(AddToCartInput{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/cart/items/p1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/cart", nil))
	require.NoError(t, err)

	var payload struct {
		Cart cart.Cart `json:"cart"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Empty(t, payload.Cart.Items)
	require.Zero(t, payload.Cart.Total)
}
