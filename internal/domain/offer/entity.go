package offer

import (
	"time"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type Offer struct {
	key               Key
	description       string
	bankName          string
	paymentInstrument string
	discountType      DiscountType
	discountValue     decimal.Decimal
	maxDiscount       *decimal.Decimal
	minTxnValue       decimal.Decimal
	createdAt         time.Time
}

func NewOffer(
	description string,
	bankName string,
	paymentInstrument string,
	discountType DiscountType,
	discountValue decimal.Decimal,
	maxDiscount *decimal.Decimal,
	minTxnValue decimal.Decimal,
	now time.Time,
) (*Offer, error) {
	key, err := NewKey(description)
	if err != nil {
		return nil, err
	}

	return &Offer{
		key:               key,
		description:       description,
		bankName:          bankName,
		paymentInstrument: paymentInstrument,
		discountType:      discountType,
		discountValue:     discountValue,
		maxDiscount:       maxDiscount,
		minTxnValue:       minTxnValue,
		createdAt:         now,
	}, nil
}

// Reconstruct rebuilds an Offer from persisted state without re-deriving the key.
func Reconstruct(
	key Key,
	description string,
	bankName string,
	paymentInstrument string,
	discountType DiscountType,
	discountValue decimal.Decimal,
	maxDiscount *decimal.Decimal,
	minTxnValue decimal.Decimal,
	createdAt time.Time,
) *Offer {
	return &Offer{
		key:               key,
		description:       description,
		bankName:          bankName,
		paymentInstrument: paymentInstrument,
		discountType:      discountType,
		discountValue:     discountValue,
		maxDiscount:       maxDiscount,
		minTxnValue:       minTxnValue,
		createdAt:         createdAt,
	}
}

// DiscountFor computes the concrete discount this offer yields for a
// transaction amount. Unknown discount types yield zero.
func (o *Offer) DiscountFor(amount decimal.Decimal) decimal.Decimal {
	switch o.discountType {
	case DiscountFlat:
		return o.discountValue
	case DiscountPercentage:
		d := o.discountValue.Div(oneHundred).Mul(amount)
		if o.maxDiscount != nil && d.GreaterThan(*o.maxDiscount) {
			return *o.maxDiscount
		}
		return d
	default:
		return decimal.Zero
	}
}

func (o *Offer) Key() Key                       { return o.key }
func (o *Offer) Description() string            { return o.description }
func (o *Offer) BankName() string               { return o.bankName }
func (o *Offer) PaymentInstrument() string      { return o.paymentInstrument }
func (o *Offer) DiscountType() DiscountType     { return o.discountType }
func (o *Offer) DiscountValue() decimal.Decimal { return o.discountValue }
func (o *Offer) MaxDiscount() *decimal.Decimal  { return o.maxDiscount }
func (o *Offer) MinTxnValue() decimal.Decimal   { return o.minTxnValue }
func (o *Offer) CreatedAt() time.Time           { return o.createdAt }
