package handler

import (
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CategoryResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type ProductResponse struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	Image        string          `json:"image"`
}

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	SessionID    string             `json:"session_id"`
	Items        []CartItemResponse `json:"items"`
	Count        int                `json:"count"`
	Total        decimal.Decimal    `json:"total"`
	TotalDisplay string             `json:"total_display"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
}

type AddItemResponse struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type RemoveItemResponse struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func mapProductToResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:           int(p.ID),
		Title:        p.Title,
		Category:     p.Category,
		Price:        p.Price.Amount,
		PriceDisplay: p.Price.String(),
		Image:        p.Image,
	}
}

func mapProductsToResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, mapProductToResponse(p))
	}
	return result
}

func mapCartToResponse(cart domain.Cart) CartResponse {
	entries := cart.Entries()

	items := make([]CartItemResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, CartItemResponse{
			Product:  mapProductToResponse(e.Product),
			Quantity: e.Quantity,
			Subtotal: e.Subtotal().Amount,
		})
	}

	total := cart.Total()

	return CartResponse{
		SessionID:    cart.OwnerID,
		Items:        items,
		Count:        cart.Count(),
		Total:        total.Amount,
		TotalDisplay: total.String(),
	}
}
