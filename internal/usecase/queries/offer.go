package queries

import (
	"context"

	domoffer "offer-engine/internal/domain/offer"

	"github.com/shopspring/decimal"
)

type OfferReadStore interface {
	FindApplicable(ctx context.Context, bankName, paymentInstrument string, amount decimal.Decimal) ([]*domoffer.Offer, error)
}

type OfferQueries interface {
	HighestDiscount(ctx context.Context, amount decimal.Decimal, bankName, paymentInstrument string) (decimal.Decimal, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
}

func NewOfferQueries(store OfferReadStore) OfferQueries {
	return &offerQueriesImpl{store: store}
}

// HighestDiscount returns the best discount any stored offer yields for the
// transaction, rounded to two decimal places. Zero when nothing applies.
func (q *offerQueriesImpl) HighestDiscount(ctx context.Context, amount decimal.Decimal, bankName, paymentInstrument string) (decimal.Decimal, error) {
	offers, err := q.store.FindApplicable(ctx, bankName, paymentInstrument, amount)
	if err != nil {
		return decimal.Zero, err
	}
	return domoffer.HighestDiscount(offers, amount), nil
}
