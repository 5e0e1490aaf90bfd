package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		assert.True(t, errors.Is(err, cause))
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customer_name")

	assert.Equal(t, "customer_name", err.ParamName)
	assert.Equal(t, "value is required: customer_name", err.Error())
	assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, "value is out of range: 0 is quantity, min value is 1, max value is 1000", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsOutOfRange))
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestInsufficientStockError(t *testing.T) {
	t.Run("names the product", func(t *testing.T) {
		err := errs.NewInsufficientStockError("p-1", "Mechanical Keyboard", 5, 2)

		assert.Equal(t, "insufficient stock: product Mechanical Keyboard, requested 5, available 2", err.Error())
		assert.Equal(t, "p-1", err.ProductID)
		assert.True(t, errors.Is(err, errs.ErrInsufficientStock))
	})

	t.Run("falls back to the product id", func(t *testing.T) {
		err := errs.NewInsufficientStockError("p-1", "", 3, 0)
		assert.Contains(t, err.Error(), "product p-1")
	})
}

func TestTransactionError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewTransactionError("create order", cause)

	assert.Equal(t, "transaction failed: create order (cause: connection reset)", err.Error())
	assert.True(t, errors.Is(err, errs.ErrTransactionFailed))
}

func TestSentinelErrors(t *testing.T) {
	require.Error(t, errs.ErrObjectNotFound)
	require.Error(t, errs.ErrValueIsInvalid)
	require.Error(t, errs.ErrValueIsOutOfRange)
	require.Error(t, errs.ErrValueIsRequired)
	require.Error(t, errs.ErrInsufficientStock)
	require.Error(t, errs.ErrTransactionFailed)
}
