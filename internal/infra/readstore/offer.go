package readstore

import (
	"context"

	domoffer "offer-engine/internal/domain/offer"
	"offer-engine/internal/infra"
	"offer-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const findApplicableSQL = `
SELECT id, description, bank_name, payment_instrument, discount_type, discount_value, max_discount, min_txn_value, created_at
FROM offers
WHERE UPPER(bank_name) = UPPER($1)
  AND UPPER(payment_instrument) = UPPER($2)
  AND min_txn_value <= $3
ORDER BY created_at, id`

type offerRow struct {
	ID                string
	Description       string
	BankName          string
	PaymentInstrument string
	DiscountType      string
	DiscountValue     pgtype.Numeric
	MaxDiscount       pgtype.Numeric
	MinTxnValue       pgtype.Numeric
	CreatedAt         pgtype.Timestamptz
}

type OfferReadStore struct {
	pool *pgxpool.Pool
}

func NewOfferReadStore(pool *pgxpool.Pool) *OfferReadStore {
	return &OfferReadStore{pool: pool}
}

// FindApplicable returns the offers matching the bank and payment instrument
// (case-insensitively) whose minimum transaction value does not exceed the
// amount. Bank and instrument are compared upper-cased at query time.
func (s *OfferReadStore) FindApplicable(ctx context.Context, bankName, paymentInstrument string, amount decimal.Decimal) ([]*domoffer.Offer, error) {
	rows, err := s.pool.Query(ctx, findApplicableSQL, bankName, paymentInstrument, pgconv.NumericFromDecimal(amount))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query applicable offers", err)
	}
	defer rows.Close()

	var offers []*domoffer.Offer
	for rows.Next() {
		var row offerRow
		if err := rows.Scan(
			&row.ID,
			&row.Description,
			&row.BankName,
			&row.PaymentInstrument,
			&row.DiscountType,
			&row.DiscountValue,
			&row.MaxDiscount,
			&row.MinTxnValue,
			&row.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}

		o, convErr := toOfferFromRow(row)
		if convErr != nil {
			return nil, infra.WrapRepoErr("failed to convert offer row", convErr)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer rows", err)
	}

	return offers, nil
}

func toOfferFromRow(row offerRow) (*domoffer.Offer, error) {
	discountValue, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, err
	}
	maxDiscount, err := pgconv.DecimalPtrFromNumeric(row.MaxDiscount)
	if err != nil {
		return nil, err
	}
	minTxnValue, err := pgconv.DecimalFromNumeric(row.MinTxnValue)
	if err != nil {
		return nil, err
	}

	return domoffer.Reconstruct(
		domoffer.Key(row.ID),
		row.Description,
		row.BankName,
		row.PaymentInstrument,
		domoffer.DiscountType(row.DiscountType),
		discountValue,
		maxDiscount,
		minTxnValue,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
