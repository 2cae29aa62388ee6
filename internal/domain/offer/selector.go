package offer

import (
	"github.com/shopspring/decimal"
)

// HighestDiscount returns the maximum discount any of the given offers yields
// for the transaction amount, rounded to two decimal places. The caller is
// expected to have filtered the offers by bank, instrument and minimum
// transaction value already; an empty slice yields zero.
func HighestDiscount(offers []*Offer, amount decimal.Decimal) decimal.Decimal {
	best := decimal.Zero
	for _, o := range offers {
		if d := o.DiscountFor(amount); d.GreaterThan(best) {
			best = d
		}
	}
	return best.Round(2)
}
