//go:build e2e

package offer_test

import (
	"net/http"
	"testing"

	resdto "offer-engine/internal/handler/dto/response"
	"offer-engine/tests/common/builder"
	"offer-engine/tests/common/httptest"
	"offer-engine/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	offerURL           = "/offer"
	highestDiscountURL = "/highest-discount"
)

type OfferSuite struct {
	e2e.SharedSuite
}

func TestOfferSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OfferSuite))
}

func (s *OfferSuite) postOffers(entries ...map[string]any) resdto.IngestOffersResponse {
	s.T().Helper()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, offerURL, builder.IngestBody(entries...))
	require.Contains(s.T(), []int{http.StatusOK, http.StatusCreated}, w.Code)

	var resp resdto.IngestOffersResponse
	_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
	return resp
}

func (s *OfferSuite) queryHighestDiscount(query string) (int, resdto.HighestDiscountResponse) {
	s.T().Helper()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, highestDiscountURL+query, nil)
	var resp resdto.HighestDiscountResponse
	if w.Code == http.StatusOK {
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
	}
	return w.Code, resp
}

// =============================================================================
// TestIngestOffers - POST /offer
// =============================================================================

func (s *OfferSuite) TestIngestOffers() {
	s.Run("ingest stores a new offer and reports counts", func() {
		resp := s.postOffers(builder.NewOfferBuilder().BuildEntryMap())

		s.Equal(1, resp.NoOfOffersIdentified)
		s.Equal(1, resp.NoOfNewOffersCreated)
	})

	s.Run("repeated ingestion is idempotent", func() {
		entry := builder.NewOfferBuilder().BuildEntryMap()

		first := s.postOffers(entry)
		s.Equal(1, first.NoOfNewOffersCreated)

		second := s.postOffers(entry)
		s.Equal(1, second.NoOfOffersIdentified)
		s.Equal(0, second.NoOfNewOffersCreated)
	})

	s.Run("descriptions differing only in whitespace and case deduplicate", func() {
		first := s.postOffers(builder.NewOfferBuilder().WithDescription("5% off").AsPercentage(5).BuildEntryMap())
		s.Equal(1, first.NoOfNewOffersCreated)

		second := s.postOffers(builder.NewOfferBuilder().WithDescription(" 5%   OFF ").AsPercentage(5).BuildEntryMap())
		s.Equal(1, second.NoOfOffersIdentified)
		s.Equal(0, second.NoOfNewOffersCreated)
	})

	s.Run("missing top-level field returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, offerURL, map[string]any{"unexpected": true})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestHighestDiscount - GET /highest-discount
// =============================================================================

func (s *OfferSuite) TestHighestDiscount() {
	s.Run("flat offer discounts verbatim above the threshold", func() {
		resp := s.postOffers(builder.NewOfferBuilder().BuildEntryMap()) // FLAT 100, min txn 500, AXIS/CREDIT
		s.Equal(1, resp.NoOfNewOffersCreated)

		code, got := s.queryHighestDiscount("?amountToPay=1000&bankName=AXIS&paymentInstrument=CREDIT")
		s.Equal(http.StatusOK, code)
		s.InDelta(100, got.HighestDiscountAmount, 0.001)
	})

	s.Run("offer below the minimum transaction value does not apply", func() {
		s.postOffers(builder.NewOfferBuilder().BuildEntryMap()) // min txn 500

		code, got := s.queryHighestDiscount("?amountToPay=400&bankName=AXIS&paymentInstrument=CREDIT")
		s.Equal(http.StatusOK, code)
		s.InDelta(0, got.HighestDiscountAmount, 0.001)
	})

	s.Run("percentage offer is clamped to its cap", func() {
		s.postOffers(builder.NewOfferBuilder().
			WithDescription("10% off up to Rs.50 on AXIS credit cards").
			AsPercentage(10).
			WithMaxDiscount(50).
			WithMinTxnValue(0).
			BuildEntryMap())

		code, got := s.queryHighestDiscount("?amountToPay=1000&bankName=AXIS&paymentInstrument=CREDIT")
		s.Equal(http.StatusOK, code)
		s.InDelta(50, got.HighestDiscountAmount, 0.001)
	})

	s.Run("maximum across several applicable offers wins", func() {
		s.postOffers(
			builder.NewOfferBuilder().BuildEntryMap(), // FLAT 100
			builder.NewOfferBuilder().
				WithDescription("15% off on AXIS credit cards").
				AsPercentage(15).
				WithMinTxnValue(0).
				BuildEntryMap(), // 150 at amount 1000
		)

		code, got := s.queryHighestDiscount("?amountToPay=1000&bankName=AXIS&paymentInstrument=CREDIT")
		s.Equal(http.StatusOK, code)
		s.InDelta(150, got.HighestDiscountAmount, 0.001)
	})

	s.Run("bank and instrument match case-insensitively", func() {
		s.postOffers(builder.NewOfferBuilder().WithBank("Axis").WithInstrument("Credit").BuildEntryMap())

		code, got := s.queryHighestDiscount("?amountToPay=1000&bankName=AXIS&paymentInstrument=CREDIT")
		s.Equal(http.StatusOK, code)
		s.InDelta(100, got.HighestDiscountAmount, 0.001)
	})

	s.Run("other banks see no discount", func() {
		s.postOffers(builder.NewOfferBuilder().BuildEntryMap())

		code, got := s.queryHighestDiscount("?amountToPay=1000&bankName=HDFC&paymentInstrument=CREDIT")
		s.Equal(http.StatusOK, code)
		s.InDelta(0, got.HighestDiscountAmount, 0.001)
	})

	s.Run("non-numeric amount returns 400", func() {
		code, _ := s.queryHighestDiscount("?amountToPay=abc&bankName=AXIS&paymentInstrument=CREDIT")
		s.Equal(http.StatusBadRequest, code)
	})
}

// =============================================================================
// TestLiveness - GET /
// =============================================================================

func (s *OfferSuite) TestLiveness() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "alive")
}
