package http

import (
	"github.com/GantalaAvinash/mobile-store/internal/identity"
	"github.com/GantalaAvinash/mobile-store/internal/transport/http/handler"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
}

func RegisterRoutes(app *fiber.App, h *Handlers, provider identity.Provider) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/logout", h.Auth.Logout)

	api := app.Group("/api", NewAuthMiddleware(provider))
	api.Get("/me", h.Auth.GetMe)

	product := api.Group("/products")
	product.Get("/categories", h.Catalog.ListCategories)
	product.Post("/seed", h.Catalog.SeedProducts)
	product.Get("/:id", h.Catalog.GetProduct)
	product.Get("", h.Catalog.ListProducts)

	cart := api.Group("/cart")
	cart.Get("", h.Cart.GetCart)
	cart.Post("/items", h.Cart.AddToCart)
	cart.Patch("/items/:id", h.Cart.UpdateQuantity)
	cart.Delete("/items/:id", h.Cart.RemoveFromCart)
	cart.Delete("", h.Cart.ClearCart)

	checkout := api.Group("/checkout")
	checkout.Get("", h.Checkout.GetFlow)
	checkout.Post("/address", h.Checkout.SubmitAddress)
	checkout.Post("/back", h.Checkout.Back)
	checkout.Post("/order", h.Checkout.PlaceOrder)
	checkout.Delete("", h.Checkout.Abandon)
}
