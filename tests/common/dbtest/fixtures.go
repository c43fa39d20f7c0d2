//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"salon-storefront/internal/domain/booking"
	"salon-storefront/internal/domain/gallery"
	"salon-storefront/internal/domain/product"
	"salon-storefront/internal/domain/review"
	"salon-storefront/internal/infra/db"
	"salon-storefront/internal/infra/docid"
	"salon-storefront/internal/infra/repository/converter"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var collections = []string{
	db.CollectionProducts,
	db.CollectionBookings,
	db.CollectionReviews,
	db.CollectionServices,
	db.CollectionGallery,
}

func CreateTestProduct(t *testing.T, d DBLike, p *product.Product) string {
	t.Helper()
	return insert(t, d, db.CollectionProducts, converter.ProductToDocument(p))
}

func CreateTestBooking(t *testing.T, d DBLike, b *booking.Booking) string {
	t.Helper()
	return insert(t, d, db.CollectionBookings, converter.BookingToDocument(b))
}

func CreateTestReview(t *testing.T, d DBLike, r *review.Review) string {
	t.Helper()
	return insert(t, d, db.CollectionReviews, converter.ReviewToDocument(r))
}

func CreateTestGalleryItem(t *testing.T, d DBLike, i *gallery.Item) string {
	t.Helper()
	return insert(t, d, db.CollectionGallery, converter.GalleryToDocument(i))
}

// CountDocuments returns how many documents in collection match filter.
func CountDocuments(t *testing.T, d DBLike, collection string, filter bson.D) int64 {
	t.Helper()
	if filter == nil {
		filter = bson.D{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := d.Collection(collection).CountDocuments(ctx, filter)
	require.NoError(t, err)
	return n
}

// FindRaw loads the stored document with the given wire id as a bson.M, so
// tests can check what was persisted rather than what the API returned.
func FindRaw(t *testing.T, d DBLike, collection, id string) bson.M {
	t.Helper()
	oid, err := docid.FromWire(id)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc bson.M
	require.NoError(t, d.Collection(collection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc))
	return doc
}

// ResetDB empties every storefront collection.
func ResetDB(d DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range collections {
		if _, err := d.Collection(name).DeleteMany(ctx, bson.D{}); err != nil {
			return err
		}
	}
	return nil
}

func insert(t *testing.T, d DBLike, collection string, doc any) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := d.Collection(collection).InsertOne(ctx, doc)
	require.NoError(t, err)
	oid, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok, "unexpected id type %T", res.InsertedID)
	return docid.ToWire(oid)
}
