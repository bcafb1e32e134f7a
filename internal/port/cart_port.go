package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type CartRepository interface {
	CreateCart(ctx context.Context, ownerID string) (domain.Cart, error)
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, product domain.Product) (domain.CartEntry, error)
	RemoveItem(ctx context.Context, ownerID string, productID domain.ProductID) (int, error)
	ClearCart(ctx context.Context, ownerID string) error
	DeleteCart(ctx context.Context, ownerID string) (bool, error)
}
