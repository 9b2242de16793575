package handler

import (
	"context"
	"errors"
	"time"

	"github.com/GantalaAvinash/mobile-store/internal/checkout"
	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkout *checkout.Service
	logger   *zap.Logger
}

func NewCheckoutHandler(service *checkout.Service, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: service,
		logger:   logger,
	}
}

type PlaceOrderInput struct {
	PaymentMethod string `json:"payment_method"`
}

func (h *CheckoutHandler) GetFlow(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	return c.JSON(fiber.Map{"checkout": h.checkout.Flow(user.UID)})
}

func (h *CheckoutHandler) SubmitAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	address := new(checkout.Address)
	if err := c.BodyParser(address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.checkout.SubmitAddress(ctx, user.UID, *address); err != nil {
		var vErr *checkout.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": vErr.Message,
				"field": vErr.Field,
			})
		}
		if errors.Is(err, checkout.ErrWrongStep) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}

		applog.Error(ctx, h.logger, "Failed to submit address", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not submit address"})
	}

	return c.JSON(fiber.Map{"checkout": h.checkout.Flow(user.UID)})
}

func (h *CheckoutHandler) Back(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	if err := h.checkout.Back(user.UID); err != nil {
		if errors.Is(err, checkout.ErrWrongStep) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not go back"})
	}

	return c.JSON(fiber.Map{"checkout": h.checkout.Flow(user.UID)})
}

func (h *CheckoutHandler) Abandon(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	h.checkout.Abandon(user.UID)

	return c.JSON(fiber.Map{"success": true})
}

func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed user"})
	}

	input := new(PlaceOrderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	invoice, err := h.checkout.PlaceOrder(ctx, user.UID, input.PaymentMethod)
	if err != nil {
		var vErr *checkout.ValidationError
		switch {
		case errors.Is(err, checkout.ErrPaymentUnavailable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": vErr.Message,
				"field": vErr.Field,
			})
		case errors.Is(err, checkout.ErrWrongStep), errors.Is(err, checkout.ErrNoCheckout):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, checkout.ErrEmptyCart):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}

		applog.Error(ctx, h.logger, "Failed to place order", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not place order"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invoice": invoice})
}
