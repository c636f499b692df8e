// Package repository defines the catalog access contracts. Implementations
// sit at the fault boundary: they catch every raw error, classify it into
// the apperr taxonomy and hand results back as result.Result values, so no
// unwrapped error ever reaches calling code.
package repository

import (
	"context"

	"github.com/shopflow/storekit/domain"
	"github.com/shopflow/storekit/pkg/result"
)

// Page selects a window of a product listing.
type Page struct {
	Limit int
	Skip  int
}

// ProductRepository provides read access to the product catalog.
type ProductRepository interface {
	// List returns a page of the full catalog.
	List(ctx context.Context, page Page) result.Result[domain.ProductPage]
	// GetByID returns a single product.
	GetByID(ctx context.Context, id int) result.Result[domain.Product]
	// Search returns a page of products matching the query string.
	Search(ctx context.Context, query string, page Page) result.Result[domain.ProductPage]
	// ListByCategory returns a page of products within one category.
	ListByCategory(ctx context.Context, category string, page Page) result.Result[domain.ProductPage]
	// Categories returns all catalog categories.
	Categories(ctx context.Context) result.Result[[]domain.Category]
}
