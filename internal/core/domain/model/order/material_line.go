package order

import (
	"errors"
	"fmt"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMaterialLineIsNotConstructed = errors.New("MaterialLine must be created via NewMaterialLine constructor")

// MaterialLine is one bill-of-materials entry: how much of an inventory item the work needs.
type MaterialLine struct {
	materialID       string
	name             string
	requiredQuantity decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMaterialLine validates the material id and requires a positive quantity.
func NewMaterialLine(materialID, name string, requiredQuantity decimal.Decimal) (MaterialLine, error) {
	if materialID == "" {
		return MaterialLine{}, errs.NewValueIsRequiredError("materialID")
	}
	if !requiredQuantity.IsPositive() {
		return MaterialLine{}, errs.NewValueIsInvalidErrorWithCause(
			"requiredQuantity",
			fmt.Errorf("%s is not greater than 0", requiredQuantity),
		)
	}
	if name == "" {
		name = materialID
	}

	return MaterialLine{
		materialID:       materialID,
		name:             name,
		requiredQuantity: requiredQuantity,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (l MaterialLine) Validate() error {
	return l.guard.Validate(ErrMaterialLineIsNotConstructed)
}

func (l MaterialLine) MaterialID() string { return l.materialID }
func (l MaterialLine) Name() string { return l.name }
func (l MaterialLine) RequiredQuantity() decimal.Decimal { return l.requiredQuantity }
