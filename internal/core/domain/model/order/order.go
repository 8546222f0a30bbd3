package order

import (
	"errors"
	"fmt"
	"time"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrApprovalRequired is returned when an item is marked ready for
	// delivery while the order still awaits the client's approval.
	ErrApprovalRequired = errors.New("client approval is required before delivery")

	// ErrApprovalNotRequested is returned when an approval decision is
	// recorded for an order that never requested approval.
	ErrApprovalNotRequested = errors.New("order does not require approval")
)

// Order is the aggregate root for one client drop-off: contact details, the
// intake signature, an optional approval cycle, and one or more Items moving
// through the cleaning/repair/delivery workflow.
//
// Invariants:
//   - An order always has at least one item.
//   - Item ids are unique within the order.
//   - approvalStatus is not_needed exactly while requiresApproval is false.
//   - While requiresApproval is true and the client has not approved, no
//     item may move from measured to ready_for_delivery.
//   - Totals are derived from current item state and never stored.
//
// All mutation goes through validated methods; the struct cannot be used
// without one of its constructors.
type Order struct {
	id kernel.OrderID

	clientName string
	phone      string
	email      string
	address    string

	// signature is the opaque encoded image captured at intake.
	signature string
	// receipt is an optional filename reference.
	receipt string

	createdAt time.Time

	requiresApproval bool
	approvalStatus   ApprovalStatus

	items []*Item

	isConstructed bool
}

// NewOrder creates an order at intake. Client name and signature are
// required, contact fields are optional, and at least one item must be
// supplied. The order starts without an approval requirement.
//
// A zero createdAt is replaced with the current time; migration passes the
// historical timestamp through.
func NewOrder(
	id kernel.OrderID,
	clientName string,
	phone, email, address string,
	signature string,
	receipt string,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{
		approvalStatus: NotNeeded,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setSignature(signature),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.phone = phone
	o.email = email
	o.address = address
	o.receipt = receipt

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	o.createdAt = createdAt

	return o, nil
}

// RestoreOrder reconstructs an order from persistence or a migrated
// snapshot, re-validating the approval invariant and the item set. Unlike
// NewOrder it tolerates a missing signature: legacy snapshots predate
// signature capture.
func RestoreOrder(
	id kernel.OrderID,
	clientName string,
	phone, email, address string,
	signature string,
	receipt string,
	createdAt time.Time,
	requiresApproval bool,
	approvalStatus ApprovalStatus,
	items []*Item,
) (*Order, error) {
	if err := approvalStatus.Validate(); err != nil {
		return nil, err
	}
	// Migrated snapshots may carry requiresApproval=true with approvalStatus
	// still not_needed; the escalation latch resolves that once all items are
	// priced. The reverse combination is never valid.
	if !requiresApproval && approvalStatus != NotNeeded {
		return nil, errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%s is not valid while approval is not required", approvalStatus))
	}

	o := &Order{
		approvalStatus: NotNeeded,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.phone = phone
	o.email = email
	o.address = address
	o.signature = signature
	o.receipt = receipt

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	o.createdAt = createdAt

	o.requiresApproval = requiresApproval
	o.approvalStatus = approvalStatus
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ClientName returns the client's name.
func (o *Order) ClientName() string {
	return o.clientName
}

// Phone returns the client's phone number, if recorded.
func (o *Order) Phone() string {
	return o.phone
}

// Email returns the client's email address, if recorded.
func (o *Order) Email() string {
	return o.email
}

// Address returns the client's address, if recorded.
func (o *Order) Address() string {
	return o.address
}

// Signature returns the opaque intake signature blob.
func (o *Order) Signature() string {
	return o.signature
}

// Receipt returns the receipt filename reference, if any.
func (o *Order) Receipt() string {
	return o.receipt
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// RequiresApproval reports whether the order is gated on client approval.
func (o *Order) RequiresApproval() bool {
	return o.requiresApproval
}

// ApprovalStatus returns the current approval cycle state.
func (o *Order) ApprovalStatus() ApprovalStatus {
	return o.approvalStatus
}

// Items returns the order's items in intake sequence.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the item with the given id.
func (o *Order) Item(itemID string) (*Item, error) {
	for _, item := range o.items {
		if item.id == itemID {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", fmt.Sprintf("%s/%s", o.id, itemID))
}

// ContactPatch carries the order-level fields a contact update is permitted
// to mutate. Nil fields are left untouched.
type ContactPatch struct {
	ClientName *string
	Phone      *string
	Email      *string
	Address    *string
	Receipt    *string
}

// UpdateContactDetails merges a contact patch into the order. The client
// name cannot be cleared.
func (o *Order) UpdateContactDetails(patch ContactPatch) error {
	if patch.ClientName != nil {
		if err := o.setClientName(*patch.ClientName); err != nil {
			return err
		}
	}
	if patch.Phone != nil {
		o.phone = *patch.Phone
	}
	if patch.Email != nil {
		o.email = *patch.Email
	}
	if patch.Address != nil {
		o.address = *patch.Address
	}
	if patch.Receipt != nil {
		o.receipt = *patch.Receipt
	}
	return nil
}

// UpdateItemDetails applies a measurement patch to one item, then runs the
// approval escalation check: once every item in the order has been priced,
// an order that requires approval moves from not_needed to pending.
func (o *Order) UpdateItemDetails(itemID string, patch ItemPatch) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err := item.applyDetails(patch); err != nil {
		return err
	}

	o.escalateApproval()
	return nil
}

// SetRepairEstimate records a repair estimate on one item. Creating or
// editing the estimate moves the item to repair_estimated without touching
// the measured/ready progression of other items; the escalation check runs
// afterwards because repair_estimated items count as priced.
func (o *Order) SetRepairEstimate(itemID, description string, cost decimal.Decimal) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err := item.setRepairEstimate(description, cost); err != nil {
		return err
	}

	o.escalateApproval()
	return nil
}

// FlagItemForRepair routes one item into the repair sub-flow ahead of an
// estimate.
func (o *Order) FlagItemForRepair(itemID string) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	return item.flagRepairNeeded()
}

// MarkItemReady moves one item from measured (or repair_estimated) to
// ready_for_delivery.
//
// The transition is blocked while the order requires approval and the
// client has not approved; in that case nothing changes and
// ErrApprovalRequired is returned.
func (o *Order) MarkItemReady(itemID string) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if o.requiresApproval && o.approvalStatus != Approved {
		return ErrApprovalRequired
	}

	return item.markReady()
}

// MarkItemDelivered moves one item from ready_for_delivery to delivered.
// Unconditional; triggered by operations staff at handoff.
func (o *Order) MarkItemDelivered(itemID string) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	return item.markDelivered()
}

// SetRequiresApproval toggles the order's approval requirement.
// Turning it on puts the approval cycle into pending; turning it off
// resets to not_needed, regardless of any prior decision.
func (o *Order) SetRequiresApproval(required bool) {
	o.requiresApproval = required
	if required {
		o.approvalStatus = PendingApproval
	} else {
		o.approvalStatus = NotNeeded
	}
}

// DecideApproval records the client's decision. Only approved and rejected
// are decisions; recording one on an order that does not require approval
// fails. Re-recording the same decision is allowed, and staff can restart a
// rejected cycle by re-toggling the requirement.
func (o *Order) DecideApproval(decision ApprovalStatus) error {
	if !decision.IsDecision() {
		return errs.NewValueIsInvalidErrorWithCause("approvalDecision",
			fmt.Errorf("%s is not an approval decision", decision))
	}
	if !o.requiresApproval {
		return ErrApprovalNotRequested
	}

	o.approvalStatus = decision
	return nil
}

// escalateApproval is the one-way latch of the approval cycle: while the
// order requires approval and the cycle has not started, the moment every
// item is priced the order moves to pending. It fires only from exactly
// not_needed, so it cannot overwrite a decision already made.
func (o *Order) escalateApproval() {
	if !o.requiresApproval || o.approvalStatus != NotNeeded {
		return
	}

	for _, item := range o.items {
		if !item.status.AtOrPastMeasurement() {
			return
		}
	}

	o.approvalStatus = PendingApproval
}

// IsDeliveryReady reports whether the order qualifies for the delivery
// queue: it has at least one item, every item is ready_for_delivery or
// delivered, and at least one is still ready_for_delivery (excluding orders
// already fully delivered).
func (o *Order) IsDeliveryReady() bool {
	if len(o.items) == 0 {
		return false
	}

	hasReady := false
	for _, item := range o.items {
		switch item.status {
		case ReadyForDelivery:
			hasReady = true
		case Delivered:
		default:
			return false
		}
	}

	return hasReady
}

// CleaningTotal sums the derived cleaning costs of all items.
// Computed on read; never persisted.
func (o *Order) CleaningTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.cleaningCost)
	}
	return total
}

// RepairTotal sums the repair estimates of all items, counting items
// without an estimate as zero.
func (o *Order) RepairTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		if item.repairCost != nil {
			total = total.Add(*item.repairCost)
		}
	}
	return total
}

// GrandTotal is the cleaning total plus the repair total.
func (o *Order) GrandTotal() decimal.Decimal {
	return o.CleaningTotal().Add(o.RepairTotal())
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	o.clientName = clientName
	return nil
}

func (o *Order) setSignature(signature string) error {
	if signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}
	o.signature = signature
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items",
			fmt.Errorf("an order must contain at least one item"))
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item == nil {
			return errs.NewValueIsRequiredError("item")
		}
		if _, duplicate := seen[item.id]; duplicate {
			return errs.NewValueIsInvalidErrorWithCause("itemId",
				fmt.Errorf("item id %q appears more than once", item.id))
		}
		seen[item.id] = struct{}{}
	}

	o.items = items
	return nil
}
