package commands

import (
	"errors"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/pkg/errs"
	"rugops/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNoItems = errors.New("an order needs at least one item")
)

// ItemIntake describes one rug handed over at the counter. Only the tag id
// is mandatory; a photo may be attached during intake.
type ItemIntake struct {
	ID    string
	Photo string
}

// CreateOrderCommand represents a request to register a new order at intake:
// the client, their pickup signature, optional contact details and one tag
// per rug handed over.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.OrderID
	clientName string
	phone      string
	email      string
	address    string
	signature  string
	receipt    string
	items      []ItemIntake

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order id is well-formed, the client name and signature
// are present, and at least one item tag was supplied.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	clientName string,
	phone, email, address string,
	signature string,
	receipt string,
	items []ItemIntake,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientName(clientName),
		cmd.setSignature(signature),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.phone = phone
	cmd.email = email
	cmd.address = address
	cmd.receipt = receipt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ClientName returns the client the order belongs to.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// Phone returns the optional contact phone number.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Email returns the optional contact email address.
func (c CreateOrderCommand) Email() string {
	return c.email
}

// Address returns the optional delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Signature returns the pickup signature captured at intake.
func (c CreateOrderCommand) Signature() string {
	return c.signature
}

// Receipt returns the optional receipt reference.
func (c CreateOrderCommand) Receipt() string {
	return c.receipt
}

// Items returns the rug tags handed over at intake.
func (c CreateOrderCommand) Items() []ItemIntake {
	items := make([]ItemIntake, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}

	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setSignature(signature string) error {
	if signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}

	c.signature = signature
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemIntake) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	c.items = make([]ItemIntake, len(items))
	copy(c.items, items)
	return nil
}
