package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Seed(ctx context.Context, products []Product) (int, error)
}

type catalogService struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &catalogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *catalogService) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		applog.Error(ctx, s.logger, "Error listing catalog", zap.Error(err))
		return nil, fmt.Errorf("error listing catalog: %w", err)
	}

	return products, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			applog.Warn(ctx, s.logger, "Product not found", zap.String("product_id", id))
			return nil, err
		}

		applog.Error(ctx, s.logger, "Error getting product", zap.String("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("error getting product by id: %w", err)
	}

	return product, nil
}

func (s *catalogService) Seed(ctx context.Context, products []Product) (int, error) {
	inserted, err := s.repo.SeedBatch(ctx, products)
	if err != nil {
		applog.Error(ctx, s.logger, "Error seeding catalog", zap.Error(err))
		return inserted, fmt.Errorf("error seeding catalog: %w", err)
	}

	applog.Info(ctx, s.logger, "Catalog seeded", zap.Int("inserted", inserted))
	return inserted, nil
}
