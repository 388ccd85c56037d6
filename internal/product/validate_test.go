package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestNewFromRequest_NegativePriceRejected(t *testing.T) {
	_, err := NewFromRequest(CreateProductRequest{Type: KindCakeType, Name: "Chocolate", Price: price(-1)})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestNewFromRequest_PricedKindNeedsPrice(t *testing.T) {
	_, err := NewFromRequest(CreateProductRequest{Type: KindCakeSize, Name: "6-inch"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestNewFromRequest_FillingDropsPrice(t *testing.T) {
	p, err := NewFromRequest(CreateProductRequest{Type: KindCakeFilling, Name: "none", Price: price(30)})
	require.NoError(t, err)
	assert.Nil(t, p.Price)

	p, err = NewFromRequest(CreateProductRequest{Type: KindCakeFilling, Name: "custard"})
	require.NoError(t, err)
	assert.Nil(t, p.Price)
}

func TestNewFromRequest_UnknownKindAndBlankName(t *testing.T) {
	_, err := NewFromRequest(CreateProductRequest{Type: "cakeTopping", Name: "x"})
	assert.True(t, IsValidation(err))

	_, err = NewFromRequest(CreateProductRequest{Type: KindCakeType, Name: "   ", Price: price(1)})
	assert.True(t, IsValidation(err))
}

func TestApplyUpdate(t *testing.T) {
	cur := Product{ID: "p", Type: KindCakeType, Name: "Chocolate", Price: price(500)}

	got, err := ApplyUpdate(cur, UpdateProductRequest{Price: price(550)})
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(550)))
	assert.Equal(t, "Chocolate", got.Name)

	_, err = ApplyUpdate(cur, UpdateProductRequest{Price: price(-5)})
	assert.True(t, IsValidation(err))

	filling := KindCakeFilling
	got, err = ApplyUpdate(cur, UpdateProductRequest{Type: &filling})
	require.NoError(t, err)
	assert.Nil(t, got.Price)
}
