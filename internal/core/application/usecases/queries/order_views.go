// Package queries contains the read side of the workshop: denormalized order
// views loaded straight from the database, with totals computed at read time
// so they can never drift from the stored measurements.
package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemView is the read model for a single rug within an order.
type ItemView struct {
	ID                string           `json:"id"`
	Status            string           `json:"status"`
	Length            string           `json:"length,omitempty"`
	Width             string           `json:"width,omitempty"`
	Material          string           `json:"material,omitempty"`
	Condition         string           `json:"condition,omitempty"`
	Photo             string           `json:"photo,omitempty"`
	CleaningCost      decimal.Decimal  `json:"cleaningCost"`
	RepairCost        *decimal.Decimal `json:"repairCost,omitempty"`
	RepairDescription string           `json:"repairDescription,omitempty"`
}

// OrderView is the read model for an order with its items and totals.
type OrderView struct {
	ID               string          `json:"id"`
	ClientName       string          `json:"clientName"`
	Phone            string          `json:"phone,omitempty"`
	Email            string          `json:"email,omitempty"`
	Address          string          `json:"address,omitempty"`
	Signature        string          `json:"signature,omitempty"`
	Receipt          string          `json:"receipt,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	RequiresApproval bool            `json:"requiresApproval"`
	ApprovalStatus   string          `json:"approvalStatus"`
	Items            []ItemView      `json:"items"`
	CleaningTotal    decimal.Decimal `json:"cleaningTotal"`
	RepairTotal      decimal.Decimal `json:"repairTotal"`
	GrandTotal       decimal.Decimal `json:"grandTotal"`
}

// IsDeliveryReady reports whether the order belongs in the delivery queue:
// every item finished processing and at least one still awaits handover.
func (v OrderView) IsDeliveryReady() bool {
	if len(v.Items) == 0 {
		return false
	}

	hasReady := false
	for _, item := range v.Items {
		switch item.Status {
		case "ready_for_delivery":
			hasReady = true
		case "delivered":
		default:
			return false
		}
	}
	return hasReady
}

func (v *OrderView) computeTotals() {
	v.CleaningTotal = decimal.Zero
	v.RepairTotal = decimal.Zero
	for _, item := range v.Items {
		v.CleaningTotal = v.CleaningTotal.Add(item.CleaningCost)
		if item.RepairCost != nil {
			v.RepairTotal = v.RepairTotal.Add(*item.RepairCost)
		}
	}
	v.GrandTotal = v.CleaningTotal.Add(v.RepairTotal)
}

const orderColumns = `
	SELECT
		id,
		client_name,
		phone,
		email,
		address,
		signature,
		receipt,
		created_at,
		requires_approval,
		approval_status
	FROM orders
`

const itemColumns = `
	SELECT
		order_id,
		id,
		status,
		length,
		width,
		material,
		condition,
		photo,
		cleaning_cost,
		repair_cost,
		repair_description
	FROM items
`

// itemSequence sorts items in intake order: ids are numbered at intake, so
// shorter ids come first ("2" before "10") and equal lengths fall back to
// the text value.
const itemSequence = `length(id), id`

func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)
	for rows.Next() {
		var view OrderView
		if err := rows.Scan(
			&view.ID,
			&view.ClientName,
			&view.Phone,
			&view.Email,
			&view.Address,
			&view.Signature,
			&view.Receipt,
			&view.CreatedAt,
			&view.RequiresApproval,
			&view.ApprovalStatus,
		); err != nil {
			return nil, err
		}
		view.Items = make([]ItemView, 0)
		views = append(views, view)
	}
	return views, rows.Err()
}

func scanItemView(rows *sql.Rows) (string, ItemView, error) {
	var orderID string
	var item ItemView
	var repairCost decimal.NullDecimal

	err := rows.Scan(
		&orderID,
		&item.ID,
		&item.Status,
		&item.Length,
		&item.Width,
		&item.Material,
		&item.Condition,
		&item.Photo,
		&item.CleaningCost,
		&repairCost,
		&item.RepairDescription,
	)
	if err != nil {
		return "", ItemView{}, err
	}

	if repairCost.Valid {
		item.RepairCost = &repairCost.Decimal
	}
	return orderID, item, nil
}

// loadAllOrderViews reads every order with its items, newest order first,
// and attaches computed totals.
func loadAllOrderViews(ctx context.Context, db *gorm.DB) ([]OrderView, error) {
	orderRows, err := db.WithContext(ctx).Raw(orderColumns + ` ORDER BY created_at DESC, id DESC`).Rows()
	if err != nil {
		return nil, err
	}
	defer orderRows.Close()

	views, err := scanOrderViews(orderRows)
	if err != nil {
		return nil, err
	}

	indexByID := make(map[string]int, len(views))
	for i, view := range views {
		indexByID[view.ID] = i
	}

	itemRows, err := db.WithContext(ctx).Raw(itemColumns + ` ORDER BY order_id, ` + itemSequence).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		orderID, item, scanErr := scanItemView(itemRows)
		if scanErr != nil {
			return nil, scanErr
		}
		if i, ok := indexByID[orderID]; ok {
			views[i].Items = append(views[i].Items, item)
		}
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		views[i].computeTotals()
	}
	return views, nil
}
