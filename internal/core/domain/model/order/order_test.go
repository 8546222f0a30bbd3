package order_test

import (
	"testing"
	"time"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/core/domain/model/order"
	"rugops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItems(t *testing.T, ids ...string) []*order.Item {
	t.Helper()
	items := make([]*order.Item, 0, len(ids))
	for _, id := range ids {
		item, err := order.NewItem(id, "")
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func newTestOrder(t *testing.T, itemIDs ...string) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID(1)
	require.NoError(t, err)

	o, err := order.NewOrder(id, "Amira Haddad", "555-0101", "amira@example.com",
		"12 Cedar Lane", "sig-blob", "", time.Time{}, newTestItems(t, itemIDs...))
	require.NoError(t, err)
	return o
}

func measurePatch(length, width string, material order.Material, condition order.Condition) order.ItemPatch {
	return order.ItemPatch{
		Length:    &length,
		Width:     &width,
		Material:  &material,
		Condition: &condition,
	}
}

func TestNewOrder(t *testing.T) {
	validID, _ := kernel.NewOrderID(1)

	t.Run("should create a valid order at intake", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Amira Haddad", "", "", "",
			"sig-blob", "", time.Time{}, newTestItems(t, "1", "2"))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "Amira Haddad", o.ClientName())
		assert.False(t, o.RequiresApproval())
		assert.Equal(t, order.NotNeeded, o.ApprovalStatus())
		assert.Len(t, o.Items(), 2)
		assert.False(t, o.CreatedAt().IsZero())

		for _, item := range o.Items() {
			assert.Equal(t, order.Pending, item.Status())
		}
	})

	t.Run("should fail without a client name", func(t *testing.T) {
		_, err := order.NewOrder(validID, "", "", "", "",
			"sig-blob", "", time.Time{}, newTestItems(t, "1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "clientName")
	})

	t.Run("should fail without a signature", func(t *testing.T) {
		_, err := order.NewOrder(validID, "Amira Haddad", "", "", "",
			"", "", time.Time{}, newTestItems(t, "1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "signature")
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(validID, "Amira Haddad", "", "", "",
			"sig-blob", "", time.Time{}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with duplicate item ids", func(t *testing.T) {
		_, err := order.NewOrder(validID, "Amira Haddad", "", "", "",
			"sig-blob", "", time.Time{}, newTestItems(t, "1", "1"))

		require.Error(t, err)
	})

	t.Run("should fail with an invalid order id", func(t *testing.T) {
		var invalidID kernel.OrderID

		_, err := order.NewOrder(invalidID, "Amira Haddad", "", "", "",
			"sig-blob", "", time.Time{}, newTestItems(t, "1"))

		require.Error(t, err)
	})

	t.Run("should keep a supplied creation timestamp", func(t *testing.T) {
		createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

		o, err := order.NewOrder(validID, "Amira Haddad", "", "", "",
			"sig-blob", "", createdAt, newTestItems(t, "1"))

		require.NoError(t, err)
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("zero value should not validate", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_UpdateItemDetails(t *testing.T) {
	t.Run("should auto-measure once all four fields are supplied", func(t *testing.T) {
		o := newTestOrder(t, "1")

		err := o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good))

		require.NoError(t, err)
		item, _ := o.Item("1")
		assert.Equal(t, order.Measured, item.Status())
		assert.Equal(t, "120", item.CleaningCost().String())
	})

	t.Run("should stay pending while measurements are incomplete", func(t *testing.T) {
		o := newTestOrder(t, "1")
		length := "2"

		err := o.UpdateItemDetails("1", order.ItemPatch{Length: &length})

		require.NoError(t, err)
		item, _ := o.Item("1")
		assert.Equal(t, order.Pending, item.Status())
		assert.True(t, item.CleaningCost().IsZero())
	})

	t.Run("should recompute the cleaning cost when the material changes", func(t *testing.T) {
		o := newTestOrder(t, "1")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))

		silk := order.Silk
		err := o.UpdateItemDetails("1", order.ItemPatch{Material: &silk})

		require.NoError(t, err)
		item, _ := o.Item("1")
		assert.Equal(t, "300", item.CleaningCost().String())
		assert.Equal(t, order.Measured, item.Status())
	})

	t.Run("should patch only the supplied fields", func(t *testing.T) {
		o := newTestOrder(t, "1")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))

		photo := "rug-1.jpg"
		err := o.UpdateItemDetails("1", order.ItemPatch{Photo: &photo})

		require.NoError(t, err)
		item, _ := o.Item("1")
		assert.Equal(t, "2", item.Length())
		assert.Equal(t, "3", item.Width())
		assert.Equal(t, "rug-1.jpg", item.Photo())
	})

	t.Run("should fail for an unknown item", func(t *testing.T) {
		o := newTestOrder(t, "1")

		err := o.UpdateItemDetails("99", order.ItemPatch{})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_ApprovalGate(t *testing.T) {
	t.Run("should block ready transition while approval is pending", func(t *testing.T) {
		o := newTestOrder(t, "1")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))
		o.SetRequiresApproval(true)

		err := o.MarkItemReady("1")

		require.ErrorIs(t, err, order.ErrApprovalRequired)
		item, _ := o.Item("1")
		assert.Equal(t, order.Measured, item.Status(), "no status change on blocked transition")
	})

	t.Run("should block ready transition after rejection", func(t *testing.T) {
		o := newTestOrder(t, "1")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))
		o.SetRequiresApproval(true)
		require.NoError(t, o.DecideApproval(order.Rejected))

		require.ErrorIs(t, o.MarkItemReady("1"), order.ErrApprovalRequired)
	})

	t.Run("should allow ready transition once approved", func(t *testing.T) {
		o := newTestOrder(t, "1")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))
		o.SetRequiresApproval(true)
		require.NoError(t, o.DecideApproval(order.Approved))

		require.NoError(t, o.MarkItemReady("1"))
		item, _ := o.Item("1")
		assert.Equal(t, order.ReadyForDelivery, item.Status())
	})

	t.Run("should allow ready transition when approval is not required", func(t *testing.T) {
		o := newTestOrder(t, "1")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))

		require.NoError(t, o.MarkItemReady("1"))
	})
}

func TestOrder_SetRequiresApproval(t *testing.T) {
	t.Run("turning on should always yield pending", func(t *testing.T) {
		o := newTestOrder(t, "1")

		o.SetRequiresApproval(true)

		assert.True(t, o.RequiresApproval())
		assert.Equal(t, order.PendingApproval, o.ApprovalStatus())
	})

	t.Run("turning off should always yield not_needed", func(t *testing.T) {
		o := newTestOrder(t, "1")
		o.SetRequiresApproval(true)
		require.NoError(t, o.DecideApproval(order.Approved))

		o.SetRequiresApproval(false)

		assert.False(t, o.RequiresApproval())
		assert.Equal(t, order.NotNeeded, o.ApprovalStatus())
	})

	t.Run("re-toggling should restart a rejected cycle", func(t *testing.T) {
		o := newTestOrder(t, "1")
		o.SetRequiresApproval(true)
		require.NoError(t, o.DecideApproval(order.Rejected))

		o.SetRequiresApproval(false)
		o.SetRequiresApproval(true)

		assert.Equal(t, order.PendingApproval, o.ApprovalStatus())
	})
}

func TestOrder_DecideApproval(t *testing.T) {
	t.Run("should record the client decision", func(t *testing.T) {
		o := newTestOrder(t, "1")
		o.SetRequiresApproval(true)

		require.NoError(t, o.DecideApproval(order.Approved))
		assert.Equal(t, order.Approved, o.ApprovalStatus())
	})

	t.Run("re-approving should be allowed", func(t *testing.T) {
		o := newTestOrder(t, "1")
		o.SetRequiresApproval(true)
		require.NoError(t, o.DecideApproval(order.Approved))

		require.NoError(t, o.DecideApproval(order.Approved))
	})

	t.Run("should fail when the order never requested approval", func(t *testing.T) {
		o := newTestOrder(t, "1")

		require.ErrorIs(t, o.DecideApproval(order.Approved), order.ErrApprovalNotRequested)
	})

	t.Run("should reject non-decision values", func(t *testing.T) {
		o := newTestOrder(t, "1")
		o.SetRequiresApproval(true)

		require.Error(t, o.DecideApproval(order.PendingApproval))
		require.Error(t, o.DecideApproval(order.NotNeeded))
	})
}

// restoreAwaitingEscalation builds an order in the migrated state
// requiresApproval=true, approvalStatus=not_needed with pending items.
func restoreAwaitingEscalation(t *testing.T, itemIDs ...string) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID(9)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, "Amira Haddad", "", "", "", "sig-blob", "",
		time.Now().UTC(), true, order.NotNeeded, newTestItems(t, itemIDs...))
	require.NoError(t, err)
	return o
}

func TestOrder_ApprovalEscalation(t *testing.T) {
	t.Run("should escalate once every item is priced", func(t *testing.T) {
		o := restoreAwaitingEscalation(t, "1", "2")

		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))
		assert.Equal(t, order.NotNeeded, o.ApprovalStatus(), "one of two items priced")

		require.NoError(t, o.UpdateItemDetails("2", measurePatch("1", "1", order.Silk, order.Stained)))
		assert.Equal(t, order.PendingApproval, o.ApprovalStatus())
	})

	t.Run("repair-estimated items should count as priced", func(t *testing.T) {
		o := restoreAwaitingEscalation(t, "1", "2")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))

		require.NoError(t, o.SetRepairEstimate("2", "rebind fringe", decimal.NewFromInt(40)))

		assert.Equal(t, order.PendingApproval, o.ApprovalStatus())
	})

	t.Run("repair_needed items should hold escalation back", func(t *testing.T) {
		o := restoreAwaitingEscalation(t, "1", "2")
		require.NoError(t, o.FlagItemForRepair("2"))

		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))

		assert.Equal(t, order.NotNeeded, o.ApprovalStatus())
	})

	t.Run("should not fire once a decision was made", func(t *testing.T) {
		o := newTestOrder(t, "1")
		o.SetRequiresApproval(true)
		require.NoError(t, o.DecideApproval(order.Rejected))

		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))

		assert.Equal(t, order.Rejected, o.ApprovalStatus(), "latch only fires from not_needed")
	})

	t.Run("should not fire while approval is not required", func(t *testing.T) {
		o := newTestOrder(t, "1")

		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))

		assert.Equal(t, order.NotNeeded, o.ApprovalStatus())
	})
}

func TestOrder_RepairEstimate(t *testing.T) {
	t.Run("should record cost and description together", func(t *testing.T) {
		o := newTestOrder(t, "1")

		err := o.SetRepairEstimate("1", "patch corner tear", decimal.NewFromFloat(75.50))

		require.NoError(t, err)
		item, _ := o.Item("1")
		assert.Equal(t, order.RepairEstimated, item.Status())
		assert.True(t, item.HasRepairEstimate())
		require.NotNil(t, item.RepairCost())
		assert.Equal(t, "75.5", item.RepairCost().String())
		assert.Equal(t, "patch corner tear", item.RepairDescription())
	})

	t.Run("should keep measurements when estimating a measured item", func(t *testing.T) {
		o := newTestOrder(t, "1")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Worn)))

		require.NoError(t, o.SetRepairEstimate("1", "rebind edges", decimal.NewFromInt(40)))

		item, _ := o.Item("1")
		assert.Equal(t, order.RepairEstimated, item.Status())
		assert.Equal(t, "120", item.CleaningCost().String(), "cleaning cost survives the repair estimate")
	})

	t.Run("should fail without a description", func(t *testing.T) {
		o := newTestOrder(t, "1")

		err := o.SetRepairEstimate("1", "", decimal.NewFromInt(40))

		require.ErrorIs(t, err, order.ErrRepairDescriptionRequired)
	})

	t.Run("should fail with a negative cost", func(t *testing.T) {
		o := newTestOrder(t, "1")

		err := o.SetRepairEstimate("1", "rebind edges", decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("worn condition should put the item in the repair queue", func(t *testing.T) {
		o := newTestOrder(t, "1", "2")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Worn)))

		first, _ := o.Item("1")
		second, _ := o.Item("2")
		assert.True(t, first.NeedsRepairReview())
		assert.False(t, second.NeedsRepairReview())
	})
}

func TestOrder_Totals(t *testing.T) {
	t.Run("grand total should equal cleaning plus repair", func(t *testing.T) {
		o := newTestOrder(t, "1", "2")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))  // 120
		require.NoError(t, o.UpdateItemDetails("2", measurePatch("1", "2", order.Silk, order.Worn))) // 100
		require.NoError(t, o.SetRepairEstimate("2", "patch hole", decimal.NewFromFloat(35.25)))

		assert.Equal(t, "220", o.CleaningTotal().String())
		assert.Equal(t, "35.25", o.RepairTotal().String())
		assert.Equal(t, "255.25", o.GrandTotal().String())
	})

	t.Run("recomputing should be idempotent", func(t *testing.T) {
		o := newTestOrder(t, "1")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))

		first := o.GrandTotal()
		second := o.GrandTotal()

		assert.True(t, first.Equal(second))
		item, _ := o.Item("1")
		assert.Equal(t, order.Measured, item.Status(), "reading totals mutates nothing")
	})

	t.Run("unpriced items should contribute zero", func(t *testing.T) {
		o := newTestOrder(t, "1", "2")
		require.NoError(t, o.UpdateItemDetails("1", measurePatch("2", "3", order.Wool, order.Good)))

		assert.Equal(t, "120", o.GrandTotal().String())
	})
}

func TestOrder_IsDeliveryReady(t *testing.T) {
	bringTo := func(t *testing.T, o *order.Order, itemID string, target order.Status) {
		t.Helper()
		require.NoError(t, o.UpdateItemDetails(itemID, measurePatch("2", "3", order.Wool, order.Good)))
		if target == order.Measured {
			return
		}
		require.NoError(t, o.MarkItemReady(itemID))
		if target == order.ReadyForDelivery {
			return
		}
		require.NoError(t, o.MarkItemDelivered(itemID))
	}

	t.Run("ready plus delivered should qualify", func(t *testing.T) {
		o := newTestOrder(t, "1", "2")
		bringTo(t, o, "1", order.ReadyForDelivery)
		bringTo(t, o, "2", order.Delivered)

		assert.True(t, o.IsDeliveryReady())
	})

	t.Run("fully delivered should not qualify", func(t *testing.T) {
		o := newTestOrder(t, "1", "2")
		bringTo(t, o, "1", order.Delivered)
		bringTo(t, o, "2", order.Delivered)

		assert.False(t, o.IsDeliveryReady())
	})

	t.Run("a measured item should disqualify the order", func(t *testing.T) {
		o := newTestOrder(t, "1", "2")
		bringTo(t, o, "1", order.Measured)
		bringTo(t, o, "2", order.ReadyForDelivery)

		assert.False(t, o.IsDeliveryReady())
	})

	t.Run("a pending item should disqualify the order", func(t *testing.T) {
		o := newTestOrder(t, "1", "2")
		bringTo(t, o, "1", order.ReadyForDelivery)

		assert.False(t, o.IsDeliveryReady())
	})
}

func TestOrder_UpdateContactDetails(t *testing.T) {
	t.Run("should patch only the supplied fields", func(t *testing.T) {
		o := newTestOrder(t, "1")
		phone := "555-0202"

		err := o.UpdateContactDetails(order.ContactPatch{Phone: &phone})

		require.NoError(t, err)
		assert.Equal(t, "555-0202", o.Phone())
		assert.Equal(t, "Amira Haddad", o.ClientName())
		assert.Equal(t, "amira@example.com", o.Email())
	})

	t.Run("should not clear the client name", func(t *testing.T) {
		o := newTestOrder(t, "1")
		empty := ""

		err := o.UpdateContactDetails(order.ContactPatch{ClientName: &empty})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should attach a receipt", func(t *testing.T) {
		o := newTestOrder(t, "1")
		receipt := "receipt-17.pdf"

		require.NoError(t, o.UpdateContactDetails(order.ContactPatch{Receipt: &receipt}))
		assert.Equal(t, "receipt-17.pdf", o.Receipt())
	})
}

func TestRestoreOrder(t *testing.T) {
	id, _ := kernel.NewOrderID(3)

	t.Run("should restore a persisted order", func(t *testing.T) {
		cost := decimal.NewFromInt(40)
		item, err := order.RestoreItem("1", order.RepairEstimated, "2", "3",
			order.Wool, order.Worn, "rug.jpg", decimal.NewFromInt(120), &cost, "rebind edges")
		require.NoError(t, err)

		o, err := order.RestoreOrder(id, "Amira Haddad", "555-0101", "", "",
			"sig-blob", "", time.Now().UTC(), true, order.PendingApproval, []*order.Item{item})

		require.NoError(t, err)
		assert.Equal(t, order.PendingApproval, o.ApprovalStatus())
		assert.True(t, o.RequiresApproval())
	})

	t.Run("should restore a legacy order without a signature", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "Amira Haddad", "", "", "",
			"", "", time.Now().UTC(), false, order.NotNeeded, newTestItems(t, "1"))

		require.NoError(t, err)
		assert.Empty(t, o.Signature())
	})

	t.Run("should reject a decision without a requirement", func(t *testing.T) {
		_, err := order.RestoreOrder(id, "Amira Haddad", "", "", "",
			"sig-blob", "", time.Now().UTC(), false, order.Approved, newTestItems(t, "1"))

		require.Error(t, err)
	})

	t.Run("should reject a repair description without a cost", func(t *testing.T) {
		_, err := order.RestoreItem("1", order.Measured, "2", "3",
			order.Wool, order.Good, "", decimal.NewFromInt(120), nil, "loose thread")

		require.Error(t, err)
	})

	t.Run("should reject a repair cost without a description", func(t *testing.T) {
		cost := decimal.NewFromInt(10)
		_, err := order.RestoreItem("1", order.Measured, "2", "3",
			order.Wool, order.Good, "", decimal.NewFromInt(120), &cost, "")

		require.ErrorIs(t, err, order.ErrRepairDescriptionRequired)
	})
}
