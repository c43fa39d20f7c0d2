//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-storefront/internal/domain/review"
	"salon-storefront/internal/infra"
	"salon-storefront/internal/pkg/clock"
	"salon-storefront/internal/usecase/commands"
	commandsmock "salon-storefront/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const reviewID = "65f1c0ffee0000000000c001"

func TestReviewCommands_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 7, 4, 9, 15, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		rating  int
		wantErr error
	}{
		{name: "success: lowest rating", rating: 1},
		{name: "success: highest rating", rating: 5},
		{name: "error: zero rating", rating: 0, wantErr: review.ErrInvalidRating},
		{name: "error: six stars", rating: 6, wantErr: review.ErrInvalidRating},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := commandsmock.NewMockReviewRepository(ctrl)
			if tc.wantErr == nil {
				repo.EXPECT().Insert(ctx, gomock.Any()).Return(reviewID, nil)
			}

			r, err := commands.NewReviewCommands(repo, clock.NewMockClock(now), nil).Create(ctx, review.Attributes{
				Name: "Meera", Rating: tc.rating, Comment: "Lovely",
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reviewID, r.ID)
			assert.False(t, r.Approved, "new reviews start unapproved")
		})
	}
}

func TestReviewCommands_SetApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("success: can revoke approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockReviewRepository(ctrl)
		repo.EXPECT().SetApproval(ctx, reviewID, false).Return(nil)
		repo.EXPECT().FindByID(ctx, reviewID).Return(&review.Review{ID: reviewID, Approved: false}, nil)

		r, err := commands.NewReviewCommands(repo, clock.NewRealClock(), nil).SetApproval(ctx, reviewID, false)

		require.NoError(t, err)
		assert.False(t, r.Approved)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockReviewRepository(ctrl)
		repo.EXPECT().SetApproval(ctx, reviewID, true).
			Return(infra.WrapRepoErr("reviews document not found", nil, infra.KindNotFound))

		_, err := commands.NewReviewCommands(repo, clock.NewRealClock(), nil).SetApproval(ctx, reviewID, true)

		assert.ErrorIs(t, err, review.ErrNotFound)
	})
}
