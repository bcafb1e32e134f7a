package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		amount string
		cur    currency.Unit
		want   string
	}{
		{amount: "25", cur: currency.USD, want: "$25.00"},
		{amount: "109.95", cur: currency.USD, want: "$109.95"},
		{amount: "0.125", cur: currency.EUR, want: "€0.13"},
		{amount: "3", cur: currency.CHF, want: "CHF 3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := domain.Money{Amount: decimal.RequireFromString(tt.amount), Currency: tt.cur}
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	price := domain.Money{Amount: decimal.RequireFromString("19.99"), Currency: currency.USD}

	assert.True(t, price.Mul(3).Amount.Equal(decimal.RequireFromString("59.97")))
	assert.True(t, price.Add(price).Equal(price.Mul(2)))
	assert.True(t, domain.ZeroMoney(currency.USD).Add(price).Equal(price))
	assert.False(t, price.IsNegative())
}
