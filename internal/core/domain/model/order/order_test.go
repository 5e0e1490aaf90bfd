package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testNumber(t *testing.T) order.Number {
	t.Helper()
	n, err := order.NewNumber(time.Now(), 1)
	require.NoError(t, err)
	return n
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Jane Doe", "jane@example.com", "", nil)
	require.NoError(t, err)
	return c
}

func testItem(t *testing.T, price string, qty int) order.Item {
	t.Helper()
	it, err := order.NewItem(kernel.NewUUID(), "Widget", "WD-01", qty, money(t, price))
	require.NoError(t, err)
	return it
}

func TestNewItem(t *testing.T) {
	t.Run("derives the line total", func(t *testing.T) {
		it := testItem(t, "15.00", 3)
		assert.Equal(t, "45.00", it.Total().String())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Widget", "WD-01", 0, money(t, "1.00"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewItem(kernel.NewUUID(), "Widget", "WD-01", -2, money(t, "1.00"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewCustomer(t *testing.T) {
	t.Run("requires name and email", func(t *testing.T) {
		_, err := order.NewCustomer("", "jane@example.com", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewCustomer("Jane", "", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := order.NewCustomer("Jane", "not-an-email", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOrder_Totals(t *testing.T) {
	// price_A*3 + price_B*2 + tax 1.00 + shipping 2.00
	items := []order.Item{
		testItem(t, "10.00", 3),
		testItem(t, "5.50", 2),
	}

	o, err := order.NewOrder(kernel.NewUUID(), testNumber(t), testCustomer(t), items,
		money(t, "1.00"), money(t, "2.00"), "card", "addr", "addr", "")
	require.NoError(t, err)

	assert.Equal(t, order.StatusPending, o.Status())
	assert.Equal(t, "41.00", o.Subtotal().String())
	assert.Equal(t, "44.00", o.Total().String())
	assert.True(t, o.NeedsRestitution())
}

func TestNewOrder_RequiresItems(t *testing.T) {
	_, err := order.NewOrder(kernel.NewUUID(), testNumber(t), testCustomer(t), nil,
		kernel.ZeroMoney(), kernel.ZeroMoney(), "", "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestOrder_ChangeStatus(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), testNumber(t), testCustomer(t),
		[]order.Item{testItem(t, "10.00", 1)},
		kernel.ZeroMoney(), kernel.ZeroMoney(), "", "", "", "")
	require.NoError(t, err)

	require.NoError(t, o.ChangeStatus(order.StatusShipped))
	assert.Equal(t, order.StatusShipped, o.Status())

	// Backward transitions are allowed by policy.
	require.NoError(t, o.ChangeStatus(order.StatusPending))
	assert.Equal(t, order.StatusPending, o.Status())

	require.ErrorIs(t, o.ChangeStatus(order.Status("refunded")), errs.ErrValueIsInvalid)
	assert.Equal(t, order.StatusPending, o.Status())
}

func TestOrder_StockRestoredIsSticky(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), testNumber(t), testCustomer(t),
		[]order.Item{testItem(t, "10.00", 2)},
		kernel.ZeroMoney(), kernel.ZeroMoney(), "", "", "", "")
	require.NoError(t, err)

	require.True(t, o.NeedsRestitution())
	o.MarkStockRestored()
	assert.False(t, o.NeedsRestitution())

	// Moving the status around does not re-arm restitution.
	require.NoError(t, o.ChangeStatus(order.StatusCancelled))
	require.NoError(t, o.ChangeStatus(order.StatusPending))
	assert.False(t, o.NeedsRestitution())
}

func TestOrder_ItemsByProductID(t *testing.T) {
	items := []order.Item{
		testItem(t, "1.00", 1),
		testItem(t, "2.00", 1),
		testItem(t, "3.00", 1),
	}
	o, err := order.NewOrder(kernel.NewUUID(), testNumber(t), testCustomer(t), items,
		kernel.ZeroMoney(), kernel.ZeroMoney(), "", "", "", "")
	require.NoError(t, err)

	sorted := o.ItemsByProductID()
	require.Len(t, sorted, 3)
	for i := 1; i < len(sorted); i++ {
		assert.Less(t, sorted[i-1].ProductID().String(), sorted[i].ProductID().String())
	}

	// The original request order is preserved on Items().
	got := o.Items()
	for i := range items {
		assert.True(t, got[i].ProductID().IsEqual(items[i].ProductID()))
	}
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	created := time.Now().UTC().Add(-time.Hour)
	o, err := order.RestoreOrder(id, testNumber(t), testCustomer(t),
		[]order.Item{testItem(t, "10.00", 1)},
		order.StatusCancelled,
		kernel.ZeroMoney(), kernel.ZeroMoney(), "card", "a", "b", "n",
		true, created, created)
	require.NoError(t, err)

	assert.Equal(t, order.StatusCancelled, o.Status())
	assert.True(t, o.StockRestored())
	assert.Equal(t, created, o.CreatedAt())
}

func TestOrder_NotConstructed(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
