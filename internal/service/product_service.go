package service

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves the catalogue and applies filter. An empty filter means All.
func (s *productService) List(ctx context.Context, filter string) ([]model.Product, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		filter = model.CategoryAll
	}

	products, err := s.productRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	filtered := repository.FilterByCategory(products, filter)

	s.logger.Debug().
		Str("filter", filter).
		Int("total", len(products)).
		Int("count", len(filtered)).
		Msg("retrieved products")

	return filtered, nil
}

// Categories retrieves every category.
func (s *productService) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	if id <= 0 {
		s.logger.Warn().Int("product_id", id).Msg("invalid product ID")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}
