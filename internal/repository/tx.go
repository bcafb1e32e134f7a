package repository

import (
	"github.com/nikolayk812/storefront/internal/domain"
)

// withCart runs fn on a copy of the owner's cart and commits the copy only if
// fn succeeds. The caller must not hold r.mu.
func withCart[T any](r *cartRepository, ownerID string, fn func(cart *domain.Cart) (T, error)) (T, error) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[ownerID]
	if !ok {
		return zero, ErrCartNotFound
	}

	// Work on a copy so a failed fn leaves the stored cart untouched
	draft := cart.Clone()

	result, err := fn(&draft)
	if err != nil {
		return zero, err
	}

	r.carts[ownerID] = draft

	return result, nil
}
