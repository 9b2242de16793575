package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	SeedBatch(ctx context.Context, products []Product) (int, error)
}

// productDetails carries the document-ish optional fields in one jsonb
// column.
type productDetails struct {
	Images         []string          `json:"images,omitempty"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	DeliveryInfo   *DeliveryInfo     `json:"deliveryInfo,omitempty"`
	Highlights     []string          `json:"highlights,omitempty"`
}

type productRepo struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
	logger *zap.Logger
}

func NewRepository(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	return &productRepo{
		pool:   pool,
		logger: logger,
		tracer: otel.Tracer("catalog/repository"),
	}
}

const productColumns = `id, name, description, price, original_price, image,
	category, brand, in_stock, stock_count, rating, reviews, discount,
	is_new, is_bestseller, warranty, seller, details, created_at, updated_at`

func (r *productRepo) scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	var details []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.Image,
		&p.Category, &p.Brand, &p.InStock, &p.StockCount, &p.Rating, &p.Reviews,
		&p.Discount, &p.IsNew, &p.IsBestseller, &p.Warranty, &p.Seller,
		&details, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(details) > 0 {
		var d productDetails
		if err := json.Unmarshal(details, &d); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		p.Images = d.Images
		p.Features = d.Features
		p.Specifications = d.Specifications
		p.Tags = d.Tags
		p.DeliveryInfo = d.DeliveryInfo
		p.Highlights = d.Highlights
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]Product, error) {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.List")
	defer span.End()

	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at ASC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		span.RecordError(err)

		applog.Error(ctx, r.logger, "Error listing products", zap.Error(err))
		return nil, fmt.Errorf("error selecting products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			if errors.Is(err, ErrMalformedRecord) {
				// Flag and skip rather than fail the whole catalog.
				applog.Warn(ctx, r.logger, "Skipping malformed product record", zap.Error(err))
				continue
			}

			span.RecordError(err)
			applog.Error(ctx, r.logger, "Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("error scanning product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)

		applog.Error(ctx, r.logger, "Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return products, nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.GetByID")
	defer span.End()

	span.SetAttributes(
		attribute.String("id", id),
	)

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1;
	`

	p, err := r.scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		span.RecordError(err)

		applog.Error(
			ctx,
			r.logger,
			"Error getting product by id",
			zap.String("id", id),
			zap.Error(err),
		)

		return nil, fmt.Errorf("error getting product: %w", err)
	}

	return p, nil
}

// SeedBatch bulk-writes the sample catalog. Records failing schema
// validation reject the whole batch.
func (r *productRepo) SeedBatch(ctx context.Context, products []Product) (int, error) {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.SeedBatch")
	defer span.End()

	span.SetAttributes(
		attribute.Int("count", len(products)),
	)

	for i := range products {
		if err := products[i].Validate(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
	}

	query := `
		INSERT INTO products (id, name, description, price, original_price,
			image, category, brand, in_stock, stock_count, rating, reviews,
			discount, is_new, is_bestseller, warranty, seller, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18)
		ON CONFLICT (id) DO NOTHING;
	`

	batch := &pgx.Batch{}
	for _, p := range products {
		details, err := json.Marshal(productDetails{
			Images:         p.Images,
			Features:       p.Features,
			Specifications: p.Specifications,
			Tags:           p.Tags,
			DeliveryInfo:   p.DeliveryInfo,
			Highlights:     p.Highlights,
		})
		if err != nil {
			return 0, fmt.Errorf("error marshaling product details: %w", err)
		}

		batch.Queue(query,
			p.ID, p.Name, p.Description, p.Price, p.OriginalPrice, p.Image,
			p.Category, p.Brand, p.InStock, p.StockCount, p.Rating, p.Reviews,
			p.Discount, p.IsNew, p.IsBestseller, p.Warranty, p.Seller, details,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer func() {
		if err := results.Close(); err != nil {
			applog.Warn(ctx, r.logger, "Error closing seed batch", zap.Error(err))
		}
	}()

	inserted := 0
	for range products {
		tag, err := results.Exec()
		if err != nil {
			span.RecordError(err)

			applog.Error(ctx, r.logger, "Error seeding products", zap.Error(err))
			return inserted, fmt.Errorf("error seeding products: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
