package repository

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// productRepository implements ProductRepository over the backend REST API.
type productRepository struct {
	client *Client
	logger zerolog.Logger
}

// NewProductRepository creates a new backend-backed product repository.
func NewProductRepository(client *Client, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		client: client,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// All retrieves every product.
func (r *productRepository) All(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.client.do(ctx, http.MethodGet, "/api/products/", nil, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to fetch products")
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// Categories retrieves every category.
func (r *productRepository) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.client.do(ctx, http.MethodGet, "/api/products/categories", nil, &categories); err != nil {
		r.logger.Error().Err(err).Msg("failed to fetch categories")
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// ByID retrieves a single product. A backend 404 is reported as
// model.ErrProductNotFound.
func (r *productRepository) ByID(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	err := r.client.do(ctx, http.MethodGet, "/api/products/select/"+strconv.Itoa(id), nil, &product)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			r.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, model.ErrProductNotFound
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to fetch product")
		return nil, fmt.Errorf("failed to fetch product %d: %w", id, err)
	}
	if product.ID == 0 {
		return nil, model.ErrProductNotFound
	}
	return &product, nil
}

// FilterByCategory applies the catalogue page filter: "All", "Specials" or a
// numeric category id. An unparseable filter matches nothing.
func FilterByCategory(products []model.Product, filter string) []model.Product {
	filtered := make([]model.Product, 0, len(products))

	switch filter {
	case model.CategoryAll:
		return append(filtered, products...)
	case model.CategorySpecials:
		for _, p := range products {
			if p.IsSpecial {
				filtered = append(filtered, p)
			}
		}
		return filtered
	}

	categoryID, err := strconv.Atoi(filter)
	if err != nil {
		return filtered
	}
	for _, p := range products {
		if p.CategoryID == categoryID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// CategoryName looks up a category's display name.
func CategoryName(categories []model.Category, id int) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown Category"
}
