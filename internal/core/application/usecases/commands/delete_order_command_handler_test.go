package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

func TestDeleteOrderCommandHandler_Handle_PendingRestoresStock(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	stored := mustStoredOrder(t, order.StatusPending, false, productID, 3)
	cmd, err := commands.NewDeleteOrderCommand(stored.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("RestoreStock", ctx, productID, 3).Return(nil).Once(),
		orderRepo.On("Delete", ctx, stored.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_CancelledSkipsRestitution(t *testing.T) {
	// Stock was already returned when the order was cancelled; deleting it
	// afterwards must not add the quantities back a second time.
	ctx := t.Context()
	productID := kernel.NewUUID()
	stored := mustStoredOrder(t, order.StatusCancelled, true, productID, 3)
	cmd, err := commands.NewDeleteOrderCommand(stored.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("Delete", ctx, stored.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ShippedIsRejected(t *testing.T) {
	ctx := t.Context()
	stored := mustStoredOrder(t, order.StatusShipped, false, kernel.NewUUID(), 1)
	cmd, err := commands.NewDeleteOrderCommand(stored.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, commands.ErrOrderIsNotDeletable)
	uow.AssertNotCalled(t, "Commit", ctx)
	orderRepo.AssertNotCalled(t, "Delete", ctx, stored.ID())
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(id)
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

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
