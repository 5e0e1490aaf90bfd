package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Keyboard", "KB-01", money(t, "199.90"), 10)
		require.NoError(t, err)

		assert.Equal(t, "Keyboard", p.Name())
		assert.Equal(t, product.StatusActive, p.Status())
		assert.Equal(t, 10, p.Stock())
		require.NoError(t, p.Validate())
	})

	t.Run("requires name and sku", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "KB-01", money(t, "1.00"), 1)
		require.Error(t, err)

		_, err = product.NewProduct(kernel.NewUUID(), "Keyboard", "", money(t, "1.00"), 1)
		require.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Keyboard", "KB-01", money(t, "1.00"), -1)
		require.Error(t, err)
	})
}

func TestProduct_EffectivePrice(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Mouse", "MS-01", money(t, "50.00"), 5)
	require.NoError(t, err)

	assert.Equal(t, "50.00", p.EffectivePrice().String())

	sale := money(t, "39.90")
	p.SetPricing(p.Price(), &sale)
	assert.Equal(t, "39.90", p.EffectivePrice().String())
}

func TestProduct_Status(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Mouse", "MS-01", money(t, "50.00"), 5)
	require.NoError(t, err)

	require.NoError(t, p.SetStatus(product.StatusInactive))
	assert.False(t, p.IsActive())

	require.Error(t, p.SetStatus(product.Status("archived")))
}

func TestProduct_NotConstructed(t *testing.T) {
	var p product.Product
	require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
}
