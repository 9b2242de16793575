package handler

import (
	"context"
	"errors"
	"time"

	"github.com/GantalaAvinash/mobile-store/internal/cart"
	"github.com/GantalaAvinash/mobile-store/internal/catalog"
	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CartHandler struct {
	carts    *cart.Service
	products catalog.Service
	validate *validator.Validate
	logger   *zap.Logger
}

func NewCartHandler(carts *cart.Service, products catalog.Service, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		validate: validator.New(),
		logger:   logger,
	}
}

type AddToCartInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	return c.JSON(fiber.Map{"cart": h.carts.Get(ctx, user.UID)})
}

func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	input := new(AddToCartInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product, err := h.products.GetByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}

		applog.Error(ctx, h.logger, "Failed to resolve product for cart", zap.Error(err), zap.String("product_id", input.ProductID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not add to cart"})
	}

	updated := h.carts.AddToCart(ctx, user.UID, *product, input.Quantity)

	return c.JSON(fiber.Map{"cart": updated})
}

func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product id is required"})
	}

	updated := h.carts.RemoveFromCart(ctx, user.UID, productID)

	return c.JSON(fiber.Map{"cart": updated})
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product id is required"})
	}

	input := new(UpdateQuantityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated := h.carts.UpdateQuantity(ctx, user.UID, productID, input.Quantity)

	return c.JSON(fiber.Map{"cart": updated})
}

func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	updated := h.carts.Clear(ctx, user.UID)

	return c.JSON(fiber.Map{"cart": updated})
}
