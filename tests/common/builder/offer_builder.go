//go:build unit || e2e

package builder

import (
	"time"

	domoffer "offer-engine/internal/domain/offer"
	"offer-engine/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// OfferBuilder builds offer fixtures in their various shapes (domain entity,
// command input, JSON request map). Defaults match a plain FLAT offer.
type OfferBuilder struct {
	description       string
	bankName          string
	paymentInstrument string
	discountType      string
	discountValue     decimal.Decimal
	maxDiscount       *decimal.Decimal
	minTxnValue       decimal.Decimal
	now               time.Time
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		description:       "Flat Rs.100 off on AXIS credit cards",
		bankName:          "AXIS",
		paymentInstrument: "CREDIT",
		discountType:      string(domoffer.DiscountFlat),
		discountValue:     decimal.NewFromInt(100),
		maxDiscount:       nil,
		minTxnValue:       decimal.NewFromInt(500),
		now:               time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *OfferBuilder) WithDescription(d string) *OfferBuilder {
	b.description = d
	return b
}

func (b *OfferBuilder) WithBank(bank string) *OfferBuilder {
	b.bankName = bank
	return b
}

func (b *OfferBuilder) WithInstrument(instrument string) *OfferBuilder {
	b.paymentInstrument = instrument
	return b
}

func (b *OfferBuilder) WithDiscountType(t string) *OfferBuilder {
	b.discountType = t
	return b
}

func (b *OfferBuilder) WithDiscountValue(v int64) *OfferBuilder {
	b.discountValue = decimal.NewFromInt(v)
	return b
}

func (b *OfferBuilder) WithMaxDiscount(v int64) *OfferBuilder {
	d := decimal.NewFromInt(v)
	b.maxDiscount = &d
	return b
}

func (b *OfferBuilder) WithMinTxnValue(v int64) *OfferBuilder {
	b.minTxnValue = decimal.NewFromInt(v)
	return b
}

func (b *OfferBuilder) AsPercentage(percent int64) *OfferBuilder {
	b.discountType = string(domoffer.DiscountPercentage)
	b.discountValue = decimal.NewFromInt(percent)
	return b
}

func (b *OfferBuilder) BuildDomain() (*domoffer.Offer, error) {
	return domoffer.NewOffer(
		b.description,
		b.bankName,
		b.paymentInstrument,
		domoffer.DiscountType(b.discountType),
		b.discountValue,
		b.maxDiscount,
		b.minTxnValue,
		b.now,
	)
}

func (b *OfferBuilder) BuildRawOffer() commands.RawOffer {
	return commands.RawOffer{
		Description:       b.description,
		BankName:          b.bankName,
		PaymentInstrument: b.paymentInstrument,
		DiscountType:      b.discountType,
		DiscountValue:     b.discountValue,
		MaxDiscount:       b.maxDiscount,
		MinTxnValue:       b.minTxnValue,
	}
}

// BuildEntryMap renders the builder as one entry of the upstream offers list.
func (b *OfferBuilder) BuildEntryMap() map[string]any {
	entry := map[string]any{
		"description":       b.description,
		"bankName":          b.bankName,
		"paymentInstrument": b.paymentInstrument,
		"discountType":      b.discountType,
		"discountValue":     b.discountValue.InexactFloat64(),
		"minTxnValue":       b.minTxnValue.InexactFloat64(),
	}
	if b.maxDiscount != nil {
		entry["maxDiscount"] = b.maxDiscount.InexactFloat64()
	}
	return entry
}

// IngestBody wraps entry maps into the POST /offer body shape.
func IngestBody(entries ...map[string]any) map[string]any {
	offers := make([]any, 0, len(entries))
	for _, e := range entries {
		offers = append(offers, e)
	}
	return map[string]any{
		"flipkartOfferApiResponse": map[string]any{
			"offers": offers,
		},
	}
}
