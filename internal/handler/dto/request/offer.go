package request

import (
	"encoding/json"

	"offer-engine/internal/usecase/commands"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type IngestOffersRequest struct {
	FlipkartOfferAPIResponse *FlipkartOfferAPIResponse `json:"flipkartOfferApiResponse" binding:"required"`
}

type FlipkartOfferAPIResponse struct {
	// Kept raw: the upstream feed sometimes carries a non-array value here,
	// which counts as "no offers identified" rather than a client error.
	Offers json.RawMessage `json:"offers"`
}

type OfferEntry struct {
	Description       string           `json:"description"`
	BankName          string           `json:"bankName"`
	PaymentInstrument string           `json:"paymentInstrument"`
	DiscountType      string           `json:"discountType"`
	DiscountValue     decimal.Decimal  `json:"discountValue"`
	MaxDiscount       *decimal.Decimal `json:"maxDiscount"`
	MinTxnValue       decimal.Decimal  `json:"minTxnValue"`
}

// Entries decodes the raw offers list. Missing or malformed lists yield nil.
func (r *IngestOffersRequest) Entries() []OfferEntry {
	if r.FlipkartOfferAPIResponse == nil || len(r.FlipkartOfferAPIResponse.Offers) == 0 {
		return nil
	}
	var entries []OfferEntry
	if err := json.Unmarshal(r.FlipkartOfferAPIResponse.Offers, &entries); err != nil {
		return nil
	}
	return entries
}

func ToRawOffers(entries []OfferEntry) []commands.RawOffer {
	return lo.Map(entries, func(e OfferEntry, _ int) commands.RawOffer {
		return commands.RawOffer{
			Description:       e.Description,
			BankName:          e.BankName,
			PaymentInstrument: e.PaymentInstrument,
			DiscountType:      e.DiscountType,
			DiscountValue:     e.DiscountValue,
			MaxDiscount:       e.MaxDiscount,
			MinTxnValue:       e.MinTxnValue,
		}
	})
}
