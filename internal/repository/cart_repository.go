package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrCartExists   = errors.New("cart already exists")
)

type cartRepository struct {
	mu       sync.Mutex
	carts    map[string]domain.Cart
	currency currency.Unit
}

// NewCart returns an in-memory repository holding one cart per session.
// Carts live until DeleteCart or process exit.
func NewCart(cur currency.Unit) port.CartRepository {
	return &cartRepository{
		carts:    make(map[string]domain.Cart),
		currency: cur,
	}
}

func (r *cartRepository) CreateCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[ownerID]; ok {
		return domain.Cart{}, ErrCartExists
	}

	cart := domain.NewCart(ownerID, r.currency)
	r.carts[ownerID] = cart

	return cart.Clone(), nil
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[ownerID]
	if !ok {
		return domain.Cart{}, ErrCartNotFound
	}

	return cart.Clone(), nil
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID string, product domain.Product) (domain.CartEntry, error) {
	if ownerID == "" {
		return domain.CartEntry{}, fmt.Errorf("ownerID is empty")
	}

	entry, err := withCart(r, ownerID, func(cart *domain.Cart) (domain.CartEntry, error) {
		return cart.Add(product), nil
	})
	if err != nil {
		return domain.CartEntry{}, fmt.Errorf("withCart: %w", err)
	}

	return entry, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, ownerID string, productID domain.ProductID) (int, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	quantity, err := withCart(r, ownerID, func(cart *domain.Cart) (int, error) {
		return cart.Remove(productID)
	})
	if err != nil {
		return 0, fmt.Errorf("withCart: %w", err)
	}

	return quantity, nil
}

func (r *cartRepository) ClearCart(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withCart(r, ownerID, func(cart *domain.Cart) (struct{}, error) {
		cart.Clear()
		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withCart: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[ownerID]; !ok {
		return false, nil
	}
	delete(r.carts, ownerID)

	return true, nil
}
