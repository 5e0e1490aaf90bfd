package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustProduct(t *testing.T, name string, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "SKU-"+name, mustMoney(t, price), stock)
	require.NoError(t, err)
	return p
}

func mustNumber(t *testing.T, seq int) order.Number {
	t.Helper()
	n, err := order.NewNumber(time.Now().UTC(), seq)
	require.NoError(t, err)
	return n
}

func createCmd(t *testing.T, lines []commands.OrderLine) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), mustCustomer(t),
		lines, mustMoney(t, "1.00"), mustMoney(t, "2.00"),
		"card", "1 Main St", "1 Main St", "")
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := mustProduct(t, "Widget", "10.00", 5)
	cmd := createCmd(t, []commands.OrderLine{mustLine(t, p.ID(), 3)})

	catalog := new(MockProductRepository)
	catalog.On("Get", ctx, p.ID()).Return(p, nil).Once()

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("NextOrderNumber", ctx, mock.AnythingOfType("time.Time")).
			Return(mustNumber(t, 1), nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("DecrementStock", ctx, p.ID(), 3).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, catalog, nil, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, cmd.OrderID(), result.OrderID)
	assert.Equal(t, mustNumber(t, 1).String(), result.OrderNumber.String())

	catalog.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UsesSalePrice(t *testing.T) {
	ctx := t.Context()
	p := mustProduct(t, "Widget", "10.00", 5)
	sale := mustMoney(t, "8.00")
	p.SetPricing(p.Price(), &sale)
	cmd := createCmd(t, []commands.OrderLine{mustLine(t, p.ID(), 2)})

	catalog := new(MockProductRepository)
	catalog.On("Get", ctx, p.ID()).Return(p, nil).Once()

	var added *order.Order
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("NextOrderNumber", ctx, mock.AnythingOfType("time.Time")).
			Return(mustNumber(t, 1), nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("DecrementStock", ctx, p.ID(), 2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, catalog, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, added)
	// 2 x 8.00 sale price + 1.00 tax + 2.00 shipping
	assert.Equal(t, "16.00", added.Subtotal().String())
	assert.Equal(t, "19.00", added.Total().String())
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	p := mustProduct(t, "Widget", "10.00", 2)
	cmd := createCmd(t, []commands.OrderLine{mustLine(t, p.ID(), 3)})

	catalog := new(MockProductRepository)
	catalog.On("Get", ctx, p.ID()).Return(p, nil).Once()

	// Validation fails before any unit of work is created.
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, catalog, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)

	var stockErr *errs.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	missing := kernel.NewUUID()
	cmd := createCmd(t, []commands.OrderLine{mustLine(t, missing, 1)})

	catalog := new(MockProductRepository)
	catalog.On("Get", ctx, missing).
		Return(nil, errs.NewObjectNotFoundError("product", missing)).Once()

	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), catalog, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_InactiveProduct(t *testing.T) {
	ctx := t.Context()
	p := mustProduct(t, "Widget", "10.00", 5)
	require.NoError(t, p.SetStatus(product.StatusInactive))
	cmd := createCmd(t, []commands.OrderLine{mustLine(t, p.ID(), 1)})

	catalog := new(MockProductRepository)
	catalog.On("Get", ctx, p.ID()).Return(p, nil).Once()

	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), catalog, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_DecrementFailsRollsBack(t *testing.T) {
	ctx := t.Context()
	p := mustProduct(t, "Widget", "10.00", 5)
	cmd := createCmd(t, []commands.OrderLine{mustLine(t, p.ID(), 3)})

	catalog := new(MockProductRepository)
	catalog.On("Get", ctx, p.ID()).Return(p, nil).Once()

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("NextOrderNumber", ctx, mock.AnythingOfType("time.Time")).
			Return(mustNumber(t, 1), nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("DecrementStock", ctx, p.ID(), 3).
			Return(errs.NewInsufficientStockError(p.ID().String(), p.Name(), 3, 1)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, catalog, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory),
		new(MockProductRepository), nil, discardLogger())
	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	p := mustProduct(t, "Widget", "10.00", 5)
	cmd := createCmd(t, []commands.OrderLine{mustLine(t, p.ID(), 1)})

	catalog := new(MockProductRepository)
	catalog.On("Get", ctx, p.ID()).Return(p, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, catalog, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
