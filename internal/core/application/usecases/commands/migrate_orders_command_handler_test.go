package commands_test

import (
	"context"
	"errors"
	"testing"

	"rugops/internal/core/application/usecases/commands"
	"rugops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const legacySnapshot = `[
  {
    "id": "ORD-001",
    "name": "Old Client",
    "signature": "",
    "createdAt": "2024-03-01T10:00:00Z",
    "requiresApproval": false,
    "items": [
      {"id": "1", "status": "pending"}
    ]
  },
  {
    "id": "ORD-002",
    "clientName": "Broken Record",
    "createdAt": "2024-03-02T10:00:00Z",
    "items": [
      {"id": "1", "status": "cleaning_estimated"}
    ]
  },
  {
    "id": "ORD-003",
    "clientName": "Maya Petros",
    "phone": "555-0103",
    "createdAt": "2024-03-03T10:00:00Z",
    "requiresApproval": true,
    "approvalStatus": "approved",
    "items": [
      {
        "id": "1",
        "status": "repair_estimated",
        "length": "2",
        "width": "3",
        "material": "Wool",
        "state": "Worn",
        "cleaningCost": 120,
        "repairEstimate": {"cost": 45.5, "description": "Rebind fringe"}
      }
    ]
  }
]`

func TestMigrateOrdersCommandHandler_Handle_SkipsBadRecords(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewMigrateOrdersCommand([]byte(legacySnapshot))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	repo.On("Exists", mock.Anything, mock.Anything).Return(false, nil).Twice()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewMigrateOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Migrated)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ORD-002")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMigrateOrdersCommandHandler_Handle_SkipsExistingOrders(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewMigrateOrdersCommand([]byte(legacySnapshot))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	repo.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewMigrateOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Migrated)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 1)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMigrateOrdersCommandHandler_Handle_ContinuesPastStoreError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewMigrateOrdersCommand([]byte(legacySnapshot))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	repo.On("Exists", mock.Anything, mock.Anything).Return(false, nil).Twice()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("connection reset")).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewMigrateOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err, "a store error on one record must not abort the batch")
	assert.Equal(t, 1, result.Migrated)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "ORD-001")
	assert.Contains(t, result.Errors[0], "connection reset")
	assert.Contains(t, result.Errors[1], "ORD-002")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMigrateOrdersCommandHandler_Handle_ReadsConditionFromLegacyStateField(t *testing.T) {
	ctx := context.Background()
	snapshot := `[
	  {
	    "id": "ORD-007",
	    "name": "Legacy Client",
	    "createdAt": "2024-02-01T09:00:00Z",
	    "items": [
	      {"id": "1", "status": "measured", "length": "2", "width": "3",
	       "material": "Wool", "state": "Damaged", "cleaningCost": 120}
	    ]
	  }
	]`
	cmd, err := commands.NewMigrateOrdersCommand([]byte(snapshot))
	require.NoError(t, err)

	var added *order.Order
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Exists", mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			added = args.Get(1).(*order.Order)
		}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMigrateOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Migrated)
	require.NotNil(t, added)

	item, err := added.Item("1")
	require.NoError(t, err)
	assert.Equal(t, order.Damaged, item.Condition())
	assert.True(t, item.NeedsRepairReview())
}

func TestMigrateOrdersCommandHandler_Handle_RejectsInvalidPayload(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewMigrateOrdersCommand([]byte(`{"not": "a list"}`))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewMigrateOrdersCommandHandler(factory)

	_, handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
}

func TestNewMigrateOrdersCommand_EmptySnapshot(t *testing.T) {
	_, err := commands.NewMigrateOrdersCommand(nil)
	require.Error(t, err)
}
