package commands

import (
	"context"
	"errors"
	"log/slog"

	domoffer "offer-engine/internal/domain/offer"
	"offer-engine/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

// RawOffer is one loosely-structured entry from the upstream offer feed,
// already JSON-decoded but not yet normalized.
type RawOffer struct {
	Description       string
	BankName          string
	PaymentInstrument string
	DiscountType      string
	DiscountValue     decimal.Decimal
	MaxDiscount       *decimal.Decimal
	MinTxnValue       decimal.Decimal
}

type IngestResult struct {
	Identified int
	Created    int
}

type OfferRepository interface {
	CreateIgnoringDuplicates(ctx context.Context, offers []*domoffer.Offer) (int64, error)
}

type OfferCommands interface {
	IngestOffers(ctx context.Context, raw []RawOffer) (*IngestResult, error)
}

type offerCommandsImpl struct {
	repo  OfferRepository
	clock clock.Clock
}

func NewOfferCommands(repo OfferRepository, clk clock.Clock) OfferCommands {
	return &offerCommandsImpl{repo: repo, clock: clk}
}

// IngestOffers normalizes the raw entries into canonical offers, collapses
// entries whose descriptions normalize to the same identity key, and persists
// them with insert-ignore semantics. Identified counts the entries that
// normalized into a canonical offer; Created counts the rows actually new to
// the store.
func (uc *offerCommandsImpl) IngestOffers(ctx context.Context, raw []RawOffer) (*IngestResult, error) {
	offers, identified := uc.normalize(raw)

	created, err := uc.repo.CreateIgnoringDuplicates(ctx, offers)
	if err != nil {
		return nil, err
	}

	return &IngestResult{Identified: identified, Created: int(created)}, nil
}

func (uc *offerCommandsImpl) normalize(raw []RawOffer) ([]*domoffer.Offer, int) {
	now := uc.clock.Now()

	identified := 0
	seen := make(map[domoffer.Key]struct{}, len(raw))
	offers := make([]*domoffer.Offer, 0, len(raw))

	for _, entry := range raw {
		o, err := domoffer.NewOffer(
			entry.Description,
			entry.BankName,
			entry.PaymentInstrument,
			domoffer.DiscountType(entry.DiscountType),
			entry.DiscountValue,
			entry.MaxDiscount,
			entry.MinTxnValue,
			now,
		)
		if err != nil {
			if !errors.Is(err, domoffer.ErrEmptyDescription) {
				slog.Warn("skipping malformed offer entry", "error", err.Error())
			}
			continue
		}
		identified++

		// In-payload duplicates collapse to the first occurrence.
		if _, dup := seen[o.Key()]; dup {
			continue
		}
		seen[o.Key()] = struct{}{}
		offers = append(offers, o)
	}

	return offers, identified
}
