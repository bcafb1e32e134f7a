package fakestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

const DefaultURL = "https://fakestoreapi.com/products"

var ErrFetch = errors.New("failed to fetch products")

// FetchError is returned for any failed catalog fetch. StatusCode is zero
// when no response was received.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", ErrFetch, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrFetch, e.Err)
	default:
		return ErrFetch.Error()
	}
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetch}
	}
	return []error{ErrFetch, e.Err}
}

type productDTO struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
}

type client struct {
	url        string
	currency   currency.Unit
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(url string, cur currency.Unit, timeout time.Duration, logger *zap.Logger) port.CatalogClient {
	return &client{
		url:        url,
		currency:   cur,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

func (c *client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	c.log.Debug("fetching catalog", zap.String("url", c.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("http.NewRequest: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("catalog request failed", zap.Error(err))
		return nil, &FetchError{Err: fmt.Errorf("client.Do: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("catalog request rejected", zap.Int("status", resp.StatusCode))
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var dtos []productDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("json.Decode: %w", err)}
	}

	products, err := mapProductsToDomain(dtos, c.currency)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("mapProductsToDomain: %w", err)}
	}

	c.log.Info("catalog fetched", zap.Int("products", len(products)))

	return products, nil
}

func mapProductToDomain(dto productDTO, cur currency.Unit) (domain.Product, error) {
	if dto.Price.IsNegative() {
		return domain.Product{}, fmt.Errorf("price[%s] of product[%d] is negative", dto.Price, dto.ID)
	}

	return domain.Product{
		ID:       domain.ProductID(dto.ID),
		Title:    dto.Title,
		Category: dto.Category,
		Price:    domain.Money{Amount: dto.Price, Currency: cur},
		Image:    dto.Image,
	}, nil
}

func mapProductsToDomain(dtos []productDTO, cur currency.Unit) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(dtos))
	seen := make(map[int]struct{}, len(dtos))

	for _, dto := range dtos {
		if _, ok := seen[dto.ID]; ok {
			return nil, fmt.Errorf("product id[%d] is duplicated", dto.ID)
		}
		seen[dto.ID] = struct{}{}

		product, err := mapProductToDomain(dto, cur)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
