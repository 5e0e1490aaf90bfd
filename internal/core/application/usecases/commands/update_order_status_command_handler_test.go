package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

func mustStoredOrder(t *testing.T, status order.Status, stockRestored bool, productID kernel.UUID, qty int) *order.Order {
	t.Helper()

	item, err := order.NewItem(productID, "Widget", "SKU-1", qty, mustMoney(t, "10.00"))
	require.NoError(t, err)

	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.NewUUID(), mustNumber(t, 7), mustCustomer(t),
		[]order.Item{item}, status, mustMoney(t, "0"), mustMoney(t, "0"),
		"card", "1 Main St", "1 Main St", "", stockRestored, now, now)
	require.NoError(t, err)
	return o
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	stored := mustStoredOrder(t, order.StatusPending, false, productID, 2)
	cmd, err := commands.NewUpdateOrderStatusCommand(stored.ID(), order.StatusShipped)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusShipped, stored.Status())
	assert.False(t, stored.StockRestored())
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelRestoresStock(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	stored := mustStoredOrder(t, order.StatusPending, false, productID, 2)
	cmd, err := commands.NewUpdateOrderStatusCommand(stored.ID(), order.StatusCancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("RestoreStock", ctx, productID, 2).Return(nil).Once(),
		orderRepo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusCancelled, stored.Status())
	assert.True(t, stored.StockRestored())
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ReCancelDoesNotRestoreTwice(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	stored := mustStoredOrder(t, order.StatusCancelled, true, productID, 2)
	cmd, err := commands.NewUpdateOrderStatusCommand(stored.ID(), order.StatusCancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ReopenedThenCancelledRestoresOnce(t *testing.T) {
	// An order was cancelled (stock already restored) and then moved back to
	// pending. Cancelling it again must not touch stock a second time.
	ctx := t.Context()
	productID := kernel.NewUUID()
	stored := mustStoredOrder(t, order.StatusPending, true, productID, 2)
	cmd, err := commands.NewUpdateOrderStatusCommand(stored.ID(), order.StatusCancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "ProductRepository")
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.StatusShipped)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, id).
			Return(nil, errs.NewObjectNotFoundError("order", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil, discardLogger())
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Status("archived"))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
