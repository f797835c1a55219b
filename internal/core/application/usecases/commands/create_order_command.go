package commands

import (
	"errors"
	"slices"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateOrderCommand represents a request to open a new work order.
//
// Example:
//
//	line, _ := order.NewMaterialLine("oak-20", "Oak board 20mm", decimal.NewFromInt(6))
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Kitchen cabinet", []order.MaterialLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	title           string
	billOfMaterials []order.MaterialLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the id, requires a title and checks every material line.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	title string,
	billOfMaterials []order.MaterialLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTitle(title),
		cmd.setBillOfMaterials(billOfMaterials),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Title() string {
	return c.title
}

func (c CreateOrderCommand) BillOfMaterials() []order.MaterialLine {
	return slices.Clone(c.billOfMaterials)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateOrderCommand) setBillOfMaterials(lines []order.MaterialLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.billOfMaterials = slices.Clone(lines)
	return nil
}
