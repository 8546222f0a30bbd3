package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/core/domain/model/order"
)

// MigrationResult summarizes a snapshot import run.
type MigrationResult struct {
	Migrated int      `json:"migrated"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// legacyOrder mirrors the legacy export format. Older exports used "name"
// instead of "clientName" and nested the repair quote under "repairEstimate".
type legacyOrder struct {
	ID               string       `json:"id"`
	ClientName       string       `json:"clientName"`
	Name             string       `json:"name"`
	Phone            string       `json:"phone"`
	Email            string       `json:"email"`
	Address          string       `json:"address"`
	Signature        string       `json:"signature"`
	Receipt          string       `json:"receipt"`
	CreatedAt        string       `json:"createdAt"`
	RequiresApproval bool         `json:"requiresApproval"`
	ApprovalStatus   string       `json:"approvalStatus"`
	Items            []legacyItem `json:"items"`
}

// legacyItem mirrors one exported rug. The old export writes the condition
// under "state"; "condition" is accepted as well for hand-edited snapshots.
type legacyItem struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	Length            string  `json:"length"`
	Width             string  `json:"width"`
	Material          string  `json:"material"`
	Condition         string  `json:"condition"`
	State             string  `json:"state"`
	Photo             string  `json:"photo"`
	CleaningCost      float64 `json:"cleaningCost"`
	RepairCost        float64 `json:"repairCost"`
	RepairDescription string  `json:"repairDescription"`
	RepairEstimate    *struct {
		Cost        float64 `json:"cost"`
		Description string  `json:"description"`
	} `json:"repairEstimate"`
}

// MigrateOrdersCommandHandler imports a legacy snapshot. Records whose id
// already exists are counted as skipped; records that cannot be restored or
// stored are reported in the result and do not abort the remaining records.
type MigrateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMigrateOrdersCommandHandler creates a handler for snapshot imports.
func NewMigrateOrdersCommandHandler(uowFactory OrderUoWFactory) MigrateOrdersCommandHandler {
	return MigrateOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle imports the snapshot record by record, each in its own
// transaction. A record that fails to restore or store is reported in the
// result and the batch continues; records already committed stay committed.
func (h *MigrateOrdersCommandHandler) Handle(ctx context.Context, cmd MigrateOrdersCommand) (MigrationResult, error) {
	result := MigrationResult{Errors: []string{}}

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	var records []legacyOrder
	if err := json.Unmarshal(cmd.Snapshot(), &records); err != nil {
		return result, fmt.Errorf("snapshot is not a valid order export: %w", err)
	}

	for i, record := range records {
		restored, err := restoreLegacyOrder(record)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("record %d (%s): %s", i+1, record.ID, err))
			continue
		}

		imported, err := h.importOrder(ctx, restored)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("record %d (%s): %s", i+1, record.ID, err))
			continue
		}
		if imported {
			result.Migrated++
		} else {
			result.Skipped++
		}
	}

	return result, nil
}

// importOrder stores one restored order in its own transaction. Returns
// false without an error when the order id is already present.
func (h *MigrateOrdersCommandHandler) importOrder(ctx context.Context, restored *order.Order) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	exists, err := orderRepo.Exists(ctx, restored.ID())
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if err = orderRepo.Add(ctx, restored); err != nil {
		return false, err
	}

	return true, uow.Commit(ctx)
}

func restoreLegacyOrder(record legacyOrder) (*order.Order, error) {
	id, err := kernel.ParseOrderID(record.ID)
	if err != nil {
		return nil, err
	}

	clientName := record.ClientName
	if clientName == "" {
		clientName = record.Name
	}
	if clientName == "" {
		clientName = "Unknown Client"
	}

	createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
	if err != nil {
		createdAt = time.Now().UTC()
	}

	approvalValue := record.ApprovalStatus
	if approvalValue == "" {
		if record.RequiresApproval {
			approvalValue = "pending"
		} else {
			approvalValue = "not_needed"
		}
	}
	approvalStatus, err := order.ParseApprovalStatus(approvalValue)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(record.Items))
	for _, legacy := range record.Items {
		item, err := restoreLegacyItem(legacy)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		clientName,
		record.Phone, record.Email, record.Address,
		record.Signature,
		record.Receipt,
		createdAt,
		record.RequiresApproval,
		approvalStatus,
		items,
	)
}

func legacyCondition(legacy legacyItem) string {
	if legacy.State != "" {
		return legacy.State
	}
	return legacy.Condition
}

func restoreLegacyItem(legacy legacyItem) (*order.Item, error) {
	statusValue := legacy.Status
	if statusValue == "" {
		statusValue = "pending"
	}
	status, err := order.ParseStatus(statusValue)
	if err != nil {
		return nil, err
	}

	repairCostValue := legacy.RepairCost
	repairDescription := legacy.RepairDescription
	if legacy.RepairEstimate != nil {
		if repairCostValue == 0 {
			repairCostValue = legacy.RepairEstimate.Cost
		}
		if repairDescription == "" {
			repairDescription = legacy.RepairEstimate.Description
		}
	}

	var repairCost *decimal.Decimal
	if repairCostValue != 0 {
		cost := decimal.NewFromFloat(repairCostValue)
		repairCost = &cost
	}

	return order.RestoreItem(
		legacy.ID,
		status,
		legacy.Length, legacy.Width,
		order.MaterialOrUnknown(legacy.Material),
		order.ConditionOrUnspecified(legacyCondition(legacy)),
		legacy.Photo,
		decimal.NewFromFloat(legacy.CleaningCost),
		repairCost,
		repairDescription,
	)
}
