package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	line, err := order.NewMaterialLine("oak-20", "Oak board 20mm", decimal.NewFromInt(6))
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(id, "  Kitchen cabinet ", []order.MaterialLine{line})
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Kitchen cabinet", cmd.Title())
	assert.Equal(t, []order.MaterialLine{line}, cmd.BillOfMaterials())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "Kitchen cabinet", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyTitle(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "   ", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTitleIsRequired)
}

func TestNewCreateOrderCommand_UnconstructedMaterialLine(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Kitchen cabinet", []order.MaterialLine{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrMaterialLineIsNotConstructed)
}

func TestNewCreateOrderCommand_JoinsErrors(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, commands.ErrTitleIsRequired)
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
