package repository

import (
	"context"
	"errors"

	domoffer "offer-engine/internal/domain/offer"
	"offer-engine/internal/infra"
	"offer-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

const insertOfferSQL = `
INSERT INTO offers (id, description, bank_name, payment_instrument, discount_type, discount_value, max_discount, min_txn_value, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING`

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

// CreateIgnoringDuplicates bulk-inserts offers, silently skipping rows whose
// identity key already exists, and reports how many rows were actually new.
// The whole batch runs in a single transaction so a failing payload leaves no
// partial state behind.
func (r *OfferRepository) CreateIgnoringDuplicates(ctx context.Context, offers []*domoffer.Offer) (int64, error) {
	if len(offers) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to begin offer insert transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, o := range offers {
		batch.Queue(insertOfferSQL,
			o.Key().String(),
			o.Description(),
			o.BankName(),
			o.PaymentInstrument(),
			string(o.DiscountType()),
			pgconv.NumericFromDecimal(o.DiscountValue()),
			pgconv.NumericFromDecimalPtr(o.MaxDiscount()),
			pgconv.NumericFromDecimal(o.MinTxnValue()),
			pgconv.TimeToPgtype(o.CreatedAt()),
		)
	}

	br := tx.SendBatch(ctx, batch)

	var created int64
	for range offers {
		ct, execErr := br.Exec()
		if execErr != nil {
			_ = br.Close()
			// ON CONFLICT only absorbs id collisions; any other unique
			// violation still surfaces as a classified error.
			var pgErr *pgconn.PgError
			if errors.As(execErr, &pgErr) && pgErr.Code == pgUniqueViolation {
				return 0, infra.WrapRepoErr("conflicting offer insert", execErr, infra.KindDuplicateKey)
			}
			return 0, infra.WrapRepoErr("failed to insert offers", execErr)
		}
		created += ct.RowsAffected()
	}

	if err := br.Close(); err != nil {
		return 0, infra.WrapRepoErr("failed to close offer insert batch", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to commit offer insert transaction", err)
	}

	return created, nil
}
