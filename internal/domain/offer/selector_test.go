//go:build unit

package offer_test

import (
	"testing"

	"offer-engine/internal/domain/offer"
	"offer-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, b *builder.OfferBuilder) *offer.Offer {
	t.Helper()
	o, err := b.BuildDomain()
	require.NoError(t, err)
	return o
}

func TestHighestDiscount(t *testing.T) {
	amount := decimal.NewFromInt(1000)

	t.Run("empty set yields zero", func(t *testing.T) {
		got := offer.HighestDiscount(nil, amount)
		assert.True(t, got.IsZero())
	})

	t.Run("maximum across mixed offers", func(t *testing.T) {
		offers := []*offer.Offer{
			mustBuild(t, builder.NewOfferBuilder().WithDescription("flat 100").WithDiscountValue(100)),
			mustBuild(t, builder.NewOfferBuilder().WithDescription("15% off").AsPercentage(15)), // 150
			mustBuild(t, builder.NewOfferBuilder().WithDescription("20% capped").AsPercentage(20).WithMaxDiscount(120)),
		}

		got := offer.HighestDiscount(offers, amount)
		if diff := cmp.Diff(decimal.NewFromInt(150), got); diff != "" {
			t.Errorf("highest discount mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown discount types never win", func(t *testing.T) {
		offers := []*offer.Offer{
			mustBuild(t, builder.NewOfferBuilder().WithDescription("mystery cashback").WithDiscountType("CASHBACK").WithDiscountValue(9999)),
			mustBuild(t, builder.NewOfferBuilder().WithDescription("flat 10").WithDiscountValue(10)),
		}

		got := offer.HighestDiscount(offers, amount)
		assert.True(t, got.Equal(decimal.NewFromInt(10)), "got %s", got)
	})

	t.Run("only unknown types yields zero", func(t *testing.T) {
		offers := []*offer.Offer{
			mustBuild(t, builder.NewOfferBuilder().WithDescription("mystery cashback").WithDiscountType("CASHBACK").WithDiscountValue(9999)),
		}

		got := offer.HighestDiscount(offers, amount)
		assert.True(t, got.IsZero())
	})

	t.Run("result is rounded to two decimal places", func(t *testing.T) {
		offers := []*offer.Offer{
			mustBuild(t, builder.NewOfferBuilder().WithDescription("7.5% off").AsPercentage(75)),
		}
		// 75% is unrealistic but convenient: use a fractional amount instead
		got := offer.HighestDiscount(offers, decimal.RequireFromString("33.33"))
		// 0.75 * 33.33 = 24.9975 -> 25.00
		assert.Equal(t, "25", got.String())
	})

	t.Run("percentage with repeating expansion rounds cleanly", func(t *testing.T) {
		offers := []*offer.Offer{
			mustBuild(t, builder.NewOfferBuilder().WithDescription("12.5% off").AsPercentage(125).WithMaxDiscount(1000000)),
		}
		got := offer.HighestDiscount(offers, decimal.RequireFromString("10.01"))
		// 1.25 * 10.01 = 12.5125 -> 12.51
		assert.Equal(t, "12.51", got.String())
	})
}
