package mappers

import (
	"github.com/shopspring/decimal"

	"preorder-sync/internal/domain"
)

// minPrice is the smallest representable currency unit. Rounding a tiny base
// price can hit zero, and a zero price means "free item" downstream, so the
// deriver clamps instead.
var minPrice = decimal.New(1, -2) // 0.01

// PriceRule holds the two payment-choice percentages.
// Kept configurable: drafts of the business rule disagreed on the deposit cut.
type PriceRule struct {
	DepositPct decimal.Decimal
	PrepayPct  decimal.Decimal
}

func DefaultPriceRule() PriceRule {
	return PriceRule{
		DepositPct: decimal.New(30, -2), // 0.30
		PrepayPct:  decimal.New(95, -2), // 0.95
	}
}

// Derive computes the two variant prices from the base price. The prepay
// choice keeps the base price as compare-at. Never reads prices from the CSV.
func (r PriceRule) Derive(base decimal.Decimal) (deposit, prepay domain.VariantSpec) {
	deposit = domain.VariantSpec{
		ChoiceLabel: domain.ChoiceDeposit,
		Price:       clamp(base.Mul(r.DepositPct).Round(2)),
	}
	prepay = domain.VariantSpec{
		ChoiceLabel: domain.ChoicePrepay,
		Price:       clamp(base.Mul(r.PrepayPct).Round(2)),
		CompareAt:   base.Round(2),
	}
	return deposit, prepay
}

func clamp(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(minPrice) {
		return minPrice
	}
	return d
}
