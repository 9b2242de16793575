package handler

import (
	"context"
	"errors"
	"time"

	"github.com/GantalaAvinash/mobile-store/internal/catalog"
	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"github.com/gofiber/fiber/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service catalog.Service
	logger  *zap.Logger
	cb      *gobreaker.CircuitBreaker
}

func NewCatalogHandler(service catalog.Service, logger *zap.Logger) *CatalogHandler {
	settings := gobreaker.Settings{
		Name:        "CatalogService",
		MaxRequests: 3,
		Interval:    5 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn(
				"Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &CatalogHandler{
		service: service,
		logger:  logger,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	search := c.Query("search")
	category := c.Query("category", catalog.CategoryAll)

	result, err := h.cb.Execute(func() (interface{}, error) {
		return h.service.List(ctx)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			applog.Warn(ctx, h.logger, "Circuit breaker open")

			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Service temporarily unavailable",
			})
		}

		applog.Error(ctx, h.logger, "Failed to list products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load products"})
	}

	products := catalog.Filter(result.([]catalog.Product), search, category)

	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product id is required"})
	}

	result, err := h.cb.Execute(func() (interface{}, error) {
		return h.service.GetByID(ctx, id)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			applog.Warn(ctx, h.logger, "Circuit breaker open")

			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Service temporarily unavailable",
			})
		}
		if errors.Is(err, catalog.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}

		applog.Error(ctx, h.logger, "Failed to get product", zap.Error(err), zap.String("product_id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load product"})
	}

	return c.JSON(fiber.Map{"product": result})
}

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	result, err := h.cb.Execute(func() (interface{}, error) {
		return h.service.List(ctx)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			applog.Warn(ctx, h.logger, "Circuit breaker open")

			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Service temporarily unavailable",
			})
		}

		applog.Error(ctx, h.logger, "Failed to list categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load categories"})
	}

	return c.JSON(fiber.Map{
		"categories": catalog.Categories(result.([]catalog.Product)),
	})
}

func (h *CatalogHandler) SeedProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
	defer cancel()

	inserted, err := h.service.Seed(ctx, catalog.SampleProducts())
	if err != nil {
		applog.Error(ctx, h.logger, "Failed to seed products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not seed products"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"inserted": inserted,
	})
}
