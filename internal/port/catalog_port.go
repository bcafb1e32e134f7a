package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type CatalogClient interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}
