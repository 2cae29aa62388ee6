package response

import (
	"offer-engine/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type IngestOffersResponse struct {
	NoOfOffersIdentified int `json:"noOfOffersIdentified"`
	NoOfNewOffersCreated int `json:"noOfNewOffersCreated"`
}

func FromIngestResult(r *commands.IngestResult) *IngestOffersResponse {
	return &IngestOffersResponse{
		NoOfOffersIdentified: r.Identified,
		NoOfNewOffersCreated: r.Created,
	}
}

type HighestDiscountResponse struct {
	HighestDiscountAmount float64 `json:"highestDiscountAmount"`
}

func FromHighestDiscount(d decimal.Decimal) *HighestDiscountResponse {
	return &HighestDiscountResponse{
		HighestDiscountAmount: d.InexactFloat64(),
	}
}
