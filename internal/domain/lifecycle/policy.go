package lifecycle

import (
	"errors"

	"github.com/shopspring/decimal"

	"installworks/internal/domain/entities"
)

var (
	ErrInvalidPolicy     = errors.New("invalid payment policy")
	ErrInvalidOrderTotal = errors.New("invalid order total")
)

var hundred = decimal.NewFromInt(100)

// ResolveDeposit turns the tenant payment policy into a concrete deposit for
// an order total.
//
// Rules:
//   - stage full: the deposit is the whole total.
//   - percentage: round-half-up to the currency minor unit. This is the only
//     place deposit rounding happens, so creation and display cannot drift.
//   - fixed: capped at the total.
func ResolveDeposit(p entities.PaymentPolicy, total decimal.Decimal) (decimal.Decimal, error) {
	if total.Sign() <= 0 {
		return decimal.Zero, ErrInvalidOrderTotal
	}

	switch p.Stage {
	case entities.PaymentStageFull:
		return total, nil
	case entities.PaymentStageDeposit, entities.PaymentStageStaged:
	default:
		return decimal.Zero, ErrInvalidPolicy
	}

	switch p.DepositType {
	case entities.DepositTypePercentage:
		if p.DepositValue.Sign() < 0 || p.DepositValue.GreaterThan(hundred) {
			return decimal.Zero, ErrInvalidPolicy
		}
		// decimal.Round rounds half away from zero, which is round-half-up
		// for non-negative money.
		return total.Mul(p.DepositValue).Div(hundred).Round(2), nil
	case entities.DepositTypeFixed:
		if p.DepositValue.Sign() < 0 {
			return decimal.Zero, ErrInvalidPolicy
		}
		return decimal.Min(p.DepositValue, total), nil
	default:
		return decimal.Zero, ErrInvalidPolicy
	}
}
