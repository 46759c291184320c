package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	pkgcache "github.com/ghuser/bizservices/pkg/cache"
	"github.com/ghuser/bizservices/pkg/logger"
	productdomain "github.com/ghuser/bizservices/services/product/domain"
	"github.com/ghuser/bizservices/services/product/domain/models"
	"github.com/ghuser/bizservices/services/product/domain/repositories"
	domainsvcs "github.com/ghuser/bizservices/services/product/domain/services"
)

var tracer = otel.Tracer("github.com/ghuser/bizservices/services/product")

// ProductService implements the product use cases.
type ProductService struct {
	repo  repositories.ProductRepository
	cache *pkgcache.EntityCache[models.Product]
	log   logger.Logger
	now   func() time.Time
}

// NewProductService returns a ProductService. cache may be nil.
func NewProductService(repo repositories.ProductRepository, cache *pkgcache.EntityCache[models.Product], log logger.Logger) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cache,
		log:   log.With("context", "product"),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Create inserts a new product. A missing SKU is generated; a supplied one
// must be unused.
func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (_ *models.Product, err error) {
	ctx, span := tracer.Start(ctx, "ProductService.Create")
	defer endSpan(span, &err)

	sku := in.SKU
	if sku == "" {
		sku = domainsvcs.NewSKU()
	} else if err := s.ensureSKUFree(ctx, sku); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("product.sku", sku))

	p := models.NewProduct(in, sku, s.now())
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.log.InfoContext(ctx, "product created", "product_id", p.ID, "sku", p.SKU)
	return p, nil
}

// GetByID returns the product with id, checking the cache first. A miss is not
// written back; the worker fills the cache from write events.
func (s *ProductService) GetByID(ctx context.Context, id int64) (_ *models.Product, err error) {
	ctx, span := tracer.Start(ctx, "ProductService.GetByID", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer endSpan(span, &err)

	cached, err := s.cache.Get(ctx, id)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		s.log.WarnContext(ctx, "product cache read failed", "product_id", id, "error", err)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}
	return p, nil
}

// GetBySKU returns the product with sku.
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	p, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, notFound(err, "sku", sku)
	}
	return p, nil
}

// List returns every product.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	return listResult("list products")(s.repo.FindAll(ctx))
}

// ListByCategory returns products whose category is exactly category.
func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	return listResult("list products by category")(s.repo.FindByCategory(ctx, category))
}

// ListInStock returns products with a positive quantity.
func (s *ProductService) ListInStock(ctx context.Context) ([]*models.Product, error) {
	return listResult("list products in stock")(s.repo.FindInStock(ctx))
}

// SearchByName returns products whose name contains fragment, ignoring case.
func (s *ProductService) SearchByName(ctx context.Context, fragment string) ([]*models.Product, error) {
	s.log.DebugContext(ctx, "search products", "name", fragment)
	return listResult("search products")(s.repo.SearchByName(ctx, fragment))
}

// ListByPriceRange returns products priced between low and high inclusive.
// A reversed range matches nothing.
func (s *ProductService) ListByPriceRange(ctx context.Context, low, high decimal.Decimal) ([]*models.Product, error) {
	return listResult("list products by price")(s.repo.FindByPriceBetween(ctx, low, high))
}

// Update replaces the product with id. An omitted SKU keeps the stored one;
// a changed SKU is checked for uniqueness.
func (s *ProductService) Update(ctx context.Context, id int64, in models.ProductInput) (_ *models.Product, err error) {
	ctx, span := tracer.Start(ctx, "ProductService.Update", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer endSpan(span, &err)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}
	if in.SKU != "" && in.SKU != p.SKU {
		if err := s.ensureSKUFree(ctx, in.SKU); err != nil {
			return nil, err
		}
	}

	p.Replace(in, s.now())
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, notFound(err, "id", id)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "product updated", "product_id", id)
	return p, nil
}

// UpdateQuantity sets the stock level of the product with id.
func (s *ProductService) UpdateQuantity(ctx context.Context, id int64, quantity int) (_ *models.Product, err error) {
	ctx, span := tracer.Start(ctx, "ProductService.UpdateQuantity", trace.WithAttributes(
		attribute.Int64("product.id", id),
		attribute.Int("product.quantity", quantity),
	))
	defer endSpan(span, &err)

	if err := s.repo.UpdateQuantity(ctx, id, quantity, s.now()); err != nil {
		return nil, notFound(err, "id", id)
	}
	s.evict(ctx, id)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}
	s.log.InfoContext(ctx, "product quantity updated", "product_id", id, "quantity", quantity)
	return p, nil
}

// Delete removes the product with id.
func (s *ProductService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "ProductService.Delete", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer endSpan(span, &err)

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return productdomain.NotFoundBy("id", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "id", id)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "product deleted", "product_id", id)
	return nil
}

// WarmCache loads id into the cache, or evicts it when the product is gone.
func (s *ProductService) WarmCache(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, productdomain.ErrProductNotFound) {
		return s.cache.Delete(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("load product %d: %w", id, err)
	}
	return s.cache.Set(ctx, id, p)
}

// EvictCache drops id from the cache.
func (s *ProductService) EvictCache(ctx context.Context, id int64) error {
	return s.cache.Delete(ctx, id)
}

func (s *ProductService) ensureSKUFree(ctx context.Context, sku string) error {
	taken, err := s.repo.ExistsBySKU(ctx, sku)
	if err != nil {
		return fmt.Errorf("check product sku: %w", err)
	}
	if taken {
		return productdomain.AlreadyExistsBy("sku", sku)
	}
	return nil
}

func (s *ProductService) evict(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "product cache evict failed", "product_id", id, "error", err)
	}
}

func listResult(op string) func([]*models.Product, error) ([]*models.Product, error) {
	return func(ps []*models.Product, err error) ([]*models.Product, error) {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return ps, nil
	}
}

func notFound(err error, field string, value any) error {
	if errors.Is(err, productdomain.ErrProductNotFound) {
		return productdomain.NotFoundBy(field, value)
	}
	return err
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}
