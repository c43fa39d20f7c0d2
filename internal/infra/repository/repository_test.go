//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"salon-storefront/internal/domain/booking"
	"salon-storefront/internal/domain/product"
	"salon-storefront/internal/domain/review"
	"salon-storefront/internal/infra/repository"
	"salon-storefront/internal/pkg/ptr"
	"salon-storefront/internal/usecase/queries"
	mock_docstore "salon-storefront/tests/mock/docstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/mock/gomock"
)

func emptyCursor(t *testing.T) *mongo.Cursor {
	t.Helper()
	cur, err := mongo.NewCursorFromDocuments([]interface{}{}, nil, nil)
	require.NoError(t, err)
	return cur
}

func TestProductRepository_FindFilters(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		filter   queries.ProductFilter
		expected bson.D
	}{
		{
			name:     "no filter",
			filter:   queries.ProductFilter{},
			expected: bson.D{},
		},
		{
			name:     "category only",
			filter:   queries.ProductFilter{Category: ptr.Of("Makeup")},
			expected: bson.D{{Key: "category", Value: "Makeup"}},
		},
		{
			name:   "category and featured=false",
			filter: queries.ProductFilter{Category: ptr.Of("Skincare"), Featured: ptr.Of(false)},
			expected: bson.D{
				{Key: "category", Value: "Skincare"},
				{Key: "featured", Value: false},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			coll := mock_docstore.NewMockCollection(ctrl)
			coll.EXPECT().
				Find(ctx, tc.expected, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
					require.Len(t, opts, 1)
					assert.Nil(t, opts[0].Sort, "products keep store order")
					return emptyCursor(t), nil
				})

			got, err := repository.NewProductRepository(coll).Find(ctx, tc.filter, queries.ListLimit)

			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestProductRepository_FindByID_MapsDocument(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	coll := mock_docstore.NewMockCollection(ctrl)

	oid := primitive.NewObjectID()
	created := time.Date(2025, 3, 1, 10, 30, 0, 123_000_000, time.UTC)
	coll.EXPECT().FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Return(mongo.NewSingleResultFromDocument(bson.D{
		{Key: "_id", Value: oid},
		{Key: "name", Value: "Lip Balm"},
		{Key: "description", Value: "Tinted"},
		{Key: "price", Value: 199.0},
		{Key: "category", Value: "Makeup"},
		{Key: "image", Value: "data:image/png;base64,AA=="},
		{Key: "inStock", Value: false},
		{Key: "featured", Value: true},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(created)},
	}, nil, nil))

	got, err := repository.NewProductRepository(coll).FindByID(ctx, oid.Hex())

	require.NoError(t, err)
	want := &product.Product{
		ID:          oid.Hex(),
		Name:        "Lip Balm",
		Description: "Tinted",
		Price:       199,
		Category:    "Makeup",
		Image:       "data:image/png;base64,AA==",
		InStock:     false,
		Featured:    true,
		CreatedAt:   created,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("product mismatch (-want +got):\n%s", diff)
	}
}

func TestBookingRepository_FindNewestFirst(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	coll := mock_docstore.NewMockCollection(ctrl)

	coll.EXPECT().
		Find(ctx, bson.D{{Key: "status", Value: "pending"}}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
			assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts[0].Sort)
			assert.EqualValues(t, 100, *opts[0].Limit)
			return emptyCursor(t), nil
		})

	_, err := repository.NewBookingRepository(coll).Find(ctx, queries.BookingFilter{Status: ptr.Of("pending")}, queries.ListLimit)

	require.NoError(t, err)
}

func TestBookingRepository_SetStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	coll := mock_docstore.NewMockCollection(ctrl)
	oid := primitive.NewObjectID()

	coll.EXPECT().
		UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: "completed"}}}}).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	err := repository.NewBookingRepository(coll).SetStatus(ctx, oid.Hex(), booking.StatusCompleted)

	require.NoError(t, err)
}

func TestReviewRepository_SetApprovalFalse(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	coll := mock_docstore.NewMockCollection(ctrl)
	oid := primitive.NewObjectID()

	coll.EXPECT().
		UpdateOne(ctx, gomock.Any(), bson.D{{Key: "$set", Value: bson.D{{Key: "approved", Value: false}}}}).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	err := repository.NewReviewRepository(coll).SetApproval(ctx, oid.Hex(), false)

	require.NoError(t, err)
}

func TestSeedRepository_InsertReviewsInOneBatch(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	products := mock_docstore.NewMockCollection(ctrl)
	services := mock_docstore.NewMockCollection(ctrl)
	reviews := mock_docstore.NewMockCollection(ctrl)

	reviews.EXPECT().InsertMany(ctx, gomock.Len(2)).Return(&mongo.InsertManyResult{}, nil).Times(1)

	seed := repository.NewSeedRepository(
		repository.NewProductRepository(products),
		repository.NewServiceRepository(services),
		repository.NewReviewRepository(reviews),
	)
	err := seed.InsertReviews(ctx, []*review.Review{
		{Name: "A", Rating: 5, Comment: "ok"},
		{Name: "B", Rating: 4, Comment: "fine"},
	})

	require.NoError(t, err)
}
