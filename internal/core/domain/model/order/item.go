package order

import (
	"errors"
	"fmt"

	"rugops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrRepairDescriptionRequired is returned when a repair estimate is
	// created or restored without a description.
	ErrRepairDescriptionRequired = errors.New("repair description is required with a repair cost")
)

// Item is a single rug tracked through the cleaning/repair/delivery
// workflow. Items belong to exactly one Order; their id is unique only
// within that order.
//
// Measurements (length, width) are stored as the free-text strings the
// operator entered; the cleaning cost is derived from them and the material
// and is recomputed on every measurement change, never hand-entered.
// Repair cost and description are either both absent or both present.
type Item struct {
	id     string
	status Status

	length    string
	width     string
	material  Material
	condition Condition
	photo     string

	cleaningCost      decimal.Decimal
	repairCost        *decimal.Decimal
	repairDescription string
}

// ItemPatch carries the measurement fields an item update is permitted to
// mutate. Nil fields are left untouched; an item update never overwrites
// fields it does not supply.
type ItemPatch struct {
	Length    *string
	Width     *string
	Material  *Material
	Condition *Condition
	Photo     *string
}

// NewItem creates an item at intake in pending status with no measurements.
// The photo is optional at intake; everything else is recorded later during
// measurement.
func NewItem(id string, photo string) (*Item, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("itemId")
	}

	return &Item{
		id:           id,
		status:       Pending,
		photo:        photo,
		cleaningCost: decimal.Zero,
	}, nil
}

// RestoreItem reconstructs an item from persistence, validating the status
// and the repair estimate invariant.
func RestoreItem(
	id string,
	status Status,
	length, width string,
	material Material,
	condition Condition,
	photo string,
	cleaningCost decimal.Decimal,
	repairCost *decimal.Decimal,
	repairDescription string,
) (*Item, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("itemId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if repairCost != nil && repairDescription == "" {
		return nil, ErrRepairDescriptionRequired
	}
	if repairCost == nil && repairDescription != "" {
		return nil, errs.NewValueIsRequiredErrorWithCause("repairCost",
			fmt.Errorf("item %s has a repair description without a cost", id))
	}

	return &Item{
		id:                id,
		status:            status,
		length:            length,
		width:             width,
		material:          material,
		condition:         condition,
		photo:             photo,
		cleaningCost:      cleaningCost,
		repairCost:        repairCost,
		repairDescription: repairDescription,
	}, nil
}

// ID returns the item's identifier, unique within its parent order.
func (i *Item) ID() string {
	return i.id
}

// Status returns the item's current workflow status.
func (i *Item) Status() Status {
	return i.status
}

// Length returns the recorded length as entered by the operator.
func (i *Item) Length() string {
	return i.length
}

// Width returns the recorded width as entered by the operator.
func (i *Item) Width() string {
	return i.width
}

// Material returns the recorded material, or MaterialUnspecified.
func (i *Item) Material() Material {
	return i.material
}

// Condition returns the recorded condition, or ConditionUnspecified.
func (i *Item) Condition() Condition {
	return i.condition
}

// Photo returns the stored photo filename, if any.
func (i *Item) Photo() string {
	return i.photo
}

// CleaningCost returns the derived cleaning cost. Zero means the item has
// not been priced yet.
func (i *Item) CleaningCost() decimal.Decimal {
	return i.cleaningCost
}

// RepairCost returns the repair estimate cost, or nil when no estimate
// exists.
func (i *Item) RepairCost() *decimal.Decimal {
	if i.repairCost == nil {
		return nil
	}
	cost := *i.repairCost
	return &cost
}

// RepairDescription returns the repair estimate description, empty when no
// estimate exists.
func (i *Item) RepairDescription() string {
	return i.repairDescription
}

// HasRepairEstimate reports whether a repair estimate has been recorded.
func (i *Item) HasRepairEstimate() bool {
	return i.repairCost != nil
}

// NeedsRepairReview reports whether the item belongs in the repair queue:
// its condition routes it there, or the repair sub-flow has already begun.
func (i *Item) NeedsRepairReview() bool {
	return i.condition.NeedsRepair() || i.status == RepairNeeded || i.status == RepairEstimated
}

// measurementsComplete reports whether length, width, material and
// condition have all been supplied.
func (i *Item) measurementsComplete() bool {
	return i.length != "" && i.width != "" && i.material.IsSpecified() && i.condition.IsSpecified()
}

// applyDetails merges a measurement patch into the item, recomputes the
// derived cleaning cost and auto-transitions pending items to measured once
// all four measurement fields are present.
func (i *Item) applyDetails(patch ItemPatch) error {
	if patch.Length != nil {
		i.length = *patch.Length
	}
	if patch.Width != nil {
		i.width = *patch.Width
	}
	if patch.Material != nil {
		i.material = *patch.Material
	}
	if patch.Condition != nil {
		if err := patch.Condition.Validate(); err != nil {
			return err
		}
		i.condition = *patch.Condition
	}
	if patch.Photo != nil {
		i.photo = *patch.Photo
	}

	i.cleaningCost = CleaningCost(i.length, i.width, i.material)

	if i.status == Pending && i.measurementsComplete() {
		newStatus, err := i.status.Measure()
		if err != nil {
			return err
		}
		i.status = newStatus
	}

	return nil
}

// setRepairEstimate records a repair cost and description and moves the
// item into repair_estimated status. Editing an existing estimate follows
// the same path.
func (i *Item) setRepairEstimate(description string, cost decimal.Decimal) error {
	if description == "" {
		return ErrRepairDescriptionRequired
	}
	if cost.IsNegative() {
		return errs.NewValueIsOutOfRangeError("repairCost", cost.String(), "0", "unbounded")
	}

	newStatus, err := i.status.EstimateRepair()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.repairCost = &cost
	i.repairDescription = description
	return nil
}

// flagRepairNeeded routes the item into the repair sub-flow ahead of an
// estimate.
func (i *Item) flagRepairNeeded() error {
	newStatus, err := i.status.FlagRepairNeeded()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// markReady moves the item to ready_for_delivery. The approval gate is
// checked by the aggregate before this is called.
func (i *Item) markReady() error {
	newStatus, err := i.status.MarkReady()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// markDelivered moves the item to delivered.
func (i *Item) markDelivered() error {
	newStatus, err := i.status.Deliver()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}
