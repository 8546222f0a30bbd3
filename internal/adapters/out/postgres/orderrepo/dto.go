// Package orderrepo maps order aggregates onto their relational form. An
// order owns its items; the two tables are always written together inside
// the surrounding unit of work.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order. Statuses are stored in their
// string form so the read side and ad-hoc SQL stay legible.
type OrderDTO struct {
	ID               string `gorm:"primaryKey;size:16"`
	ClientName       string
	Phone            string
	Email            string
	Address          string
	Signature        string
	Receipt          string
	CreatedAt        time.Time `gorm:"index"`
	RequiresApproval bool
	ApprovalStatus   string    `gorm:"index"`
	Items            []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the database row for a single rug. Items are identified by
// their tag within the order, so the key is composite.
type ItemDTO struct {
	OrderID           string `gorm:"primaryKey;size:16"`
	ID                string `gorm:"primaryKey;size:32"`
	Status            string
	Length            string
	Width             string
	Material          string
	Condition         string
	Photo             string
	CleaningCost      decimal.Decimal     `gorm:"type:numeric(12,2)"`
	RepairCost        decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	RepairDescription string
}

// TableName overrides GORM's default naming to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an order aggregate and its items to database rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:               aggregate.ID().String(),
		ClientName:       aggregate.ClientName(),
		Phone:            aggregate.Phone(),
		Email:            aggregate.Email(),
		Address:          aggregate.Address(),
		Signature:        aggregate.Signature(),
		Receipt:          aggregate.Receipt(),
		CreatedAt:        aggregate.CreatedAt(),
		RequiresApproval: aggregate.RequiresApproval(),
		ApprovalStatus:   aggregate.ApprovalStatus().String(),
		Items:            items,
	}
}

func itemFromDomain(orderID kernel.OrderID, item *order.Item) ItemDTO {
	repairCost := decimal.NullDecimal{}
	if cost := item.RepairCost(); cost != nil {
		repairCost = decimal.NewNullDecimal(*cost)
	}

	return ItemDTO{
		OrderID:           orderID.String(),
		ID:                item.ID(),
		Status:            item.Status().String(),
		Length:            item.Length(),
		Width:             item.Width(),
		Material:          item.Material().String(),
		Condition:         item.Condition().String(),
		Photo:             item.Photo(),
		CleaningCost:      item.CleaningCost(),
		RepairCost:        repairCost,
		RepairDescription: item.RepairDescription(),
	}
}

// toDomain converts database rows back into an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.ParseOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	approvalStatus, err := order.ParseApprovalStatus(dto.ApprovalStatus)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.ClientName,
		dto.Phone, dto.Email, dto.Address,
		dto.Signature,
		dto.Receipt,
		dto.CreatedAt,
		dto.RequiresApproval,
		approvalStatus,
		items,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	material, err := order.ParseMaterial(dto.Material)
	if err != nil {
		return nil, err
	}

	condition, err := order.ParseCondition(dto.Condition)
	if err != nil {
		return nil, err
	}

	var repairCost *decimal.Decimal
	if dto.RepairCost.Valid {
		cost := dto.RepairCost.Decimal
		repairCost = &cost
	}

	return order.RestoreItem(
		dto.ID,
		status,
		dto.Length, dto.Width,
		material,
		condition,
		dto.Photo,
		dto.CleaningCost,
		repairCost,
		dto.RepairDescription,
	)
}
