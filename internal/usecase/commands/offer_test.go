//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domoffer "offer-engine/internal/domain/offer"
	"offer-engine/internal/pkg/clock"
	"offer-engine/internal/pkg/errs"
	"offer-engine/internal/usecase/commands"
	"offer-engine/tests/common/builder"
	commandsmock "offer-engine/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newOfferCommands(t *testing.T) (commands.OfferCommands, *commandsmock.MockOfferRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockOfferRepository(ctrl)
	uc := commands.NewOfferCommands(repo, clock.NewMockClock(fixedNow))
	return uc, repo
}

func TestIngestOffers(t *testing.T) {
	ctx := context.Background()

	t.Run("single offer is normalized and created", func(t *testing.T) {
		uc, repo := newOfferCommands(t)

		repo.EXPECT().
			CreateIgnoringDuplicates(gomock.Any(), gomock.Len(1)).
			DoAndReturn(func(_ context.Context, offers []*domoffer.Offer) (int64, error) {
				assert.Equal(t, "flatrs.100offonaxiscreditcards", offers[0].Key().String())
				assert.Equal(t, fixedNow, offers[0].CreatedAt())
				return 1, nil
			})

		result, err := uc.IngestOffers(ctx, []commands.RawOffer{builder.NewOfferBuilder().BuildRawOffer()})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Identified)
		assert.Equal(t, 1, result.Created)
	})

	t.Run("whitespace and case duplicates collapse to one record", func(t *testing.T) {
		uc, repo := newOfferCommands(t)

		raw := []commands.RawOffer{
			builder.NewOfferBuilder().WithDescription("5% off").BuildRawOffer(),
			builder.NewOfferBuilder().WithDescription(" 5%   OFF ").BuildRawOffer(),
		}

		repo.EXPECT().
			CreateIgnoringDuplicates(gomock.Any(), gomock.Len(1)).
			DoAndReturn(func(_ context.Context, offers []*domoffer.Offer) (int64, error) {
				assert.Equal(t, "5%off", offers[0].Key().String())
				// first occurrence wins
				assert.Equal(t, "5% off", offers[0].Description())
				return 1, nil
			})

		result, err := uc.IngestOffers(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Identified)
		assert.Equal(t, 1, result.Created)
	})

	t.Run("entries with blank descriptions are skipped", func(t *testing.T) {
		uc, repo := newOfferCommands(t)

		raw := []commands.RawOffer{
			builder.NewOfferBuilder().WithDescription("   ").BuildRawOffer(),
			builder.NewOfferBuilder().BuildRawOffer(),
		}

		repo.EXPECT().
			CreateIgnoringDuplicates(gomock.Any(), gomock.Len(1)).
			Return(int64(1), nil)

		result, err := uc.IngestOffers(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Identified)
		assert.Equal(t, 1, result.Created)
	})

	t.Run("already-stored offers count as identified but not created", func(t *testing.T) {
		uc, repo := newOfferCommands(t)

		repo.EXPECT().
			CreateIgnoringDuplicates(gomock.Any(), gomock.Len(1)).
			Return(int64(0), nil)

		result, err := uc.IngestOffers(ctx, []commands.RawOffer{builder.NewOfferBuilder().BuildRawOffer()})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Identified)
		assert.Equal(t, 0, result.Created)
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		uc, repo := newOfferCommands(t)

		storeErr := errs.New("db down")
		repo.EXPECT().
			CreateIgnoringDuplicates(gomock.Any(), gomock.Any()).
			Return(int64(0), storeErr)

		result, err := uc.IngestOffers(ctx, []commands.RawOffer{builder.NewOfferBuilder().BuildRawOffer()})
		require.ErrorIs(t, err, storeErr)
		require.Nil(t, result)
	})
}
