//go:build e2e

package storefront_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"salon-storefront/internal/domain/booking"
	"salon-storefront/internal/handler/dto/response"
	"salon-storefront/internal/infra/db"
	"salon-storefront/tests/common/builder"
	"salon-storefront/tests/common/dbtest"
	"salon-storefront/tests/common/httptest"
	"salon-storefront/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	bookingsURL = "/api/bookings"
	reviewsURL  = "/api/reviews"
	loginURL    = "/api/admin/login"
	seedURL     = "/api/seed-data"
)

type StorefrontSuite struct {
	e2e.SharedSuite
}

func (s *StorefrontSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestStorefrontSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StorefrontSuite))
}

// =============================================================================
// Bookings
// =============================================================================

func (s *StorefrontSuite) TestBookings() {
	s.Run("create defaults to pending", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, builder.NewBookingBuilder().BuildRequestDTO())
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.NotEmpty(t, created.ID)
		require.Equal(t, "pending", created.Status)
	})

	s.Run("status update leaves every other field untouched", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, builder.NewBookingBuilder().BuildDomain())
		before := dbtest.FindRaw(t, s.DB, db.CollectionBookings, id)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+id, map[string]any{"status": "confirmed"})
		var updated response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "confirmed", updated.Status)

		after := dbtest.FindRaw(t, s.DB, db.CollectionBookings, id)
		require.Equal(t, "confirmed", after["status"])
		ignoreStatus := cmpopts.IgnoreMapEntries(func(k string, _ any) bool { return k == "status" })
		if diff := cmp.Diff(before, after, ignoreStatus); diff != "" {
			t.Errorf("booking changed beyond status (-before +after):\n%s", diff)
		}
	})

	s.Run("status filter and newest first", func() {
		t := s.T()
		base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		for i, st := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusPending} {
			dbtest.CreateTestBooking(t, s.DB, builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.Status = st
				b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			}).BuildDomain())
		}

		var all, pending, blank []response.BookingResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil), http.StatusOK, &all)
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=pending", nil), http.StatusOK, &pending)
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=", nil), http.StatusOK, &blank)

		require.Len(t, all, 3)
		require.Len(t, pending, 2)
		require.Len(t, blank, 3)
		require.True(t, all[0].CreatedAt.After(all[1].CreatedAt))
		require.True(t, pending[0].CreatedAt.After(pending[1].CreatedAt))
	})

	s.Run("invalid status is rejected", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, builder.NewBookingBuilder().BuildDomain())

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+id, map[string]any{"status": "archived"})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		require.Equal(t, "pending", dbtest.FindRaw(t, s.DB, db.CollectionBookings, id)["status"])
	})

	s.Run("malformed id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/42", map[string]any{"status": "confirmed"})
		httptest.AssertErrorDetail(t, w, http.StatusBadRequest, "Invalid id")
	})
}

// =============================================================================
// Reviews
// =============================================================================

func (s *StorefrontSuite) TestReviews() {
	s.Run("new reviews are hidden until approved", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, builder.NewReviewBuilder().BuildRequestDTO())
		var created response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.False(t, created.Approved)

		var visible []response.ReviewResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL+"?approved=true", nil), http.StatusOK, &visible)
		require.Empty(t, visible)

		before := dbtest.FindRaw(t, s.DB, db.CollectionReviews, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+created.ID, map[string]any{"approved": true})
		var approved response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		require.True(t, approved.Approved)

		after := dbtest.FindRaw(t, s.DB, db.CollectionReviews, created.ID)
		ignoreApproved := cmpopts.IgnoreMapEntries(func(k string, _ any) bool { return k == "approved" })
		if diff := cmp.Diff(before, after, ignoreApproved); diff != "" {
			t.Errorf("review changed beyond approval (-before +after):\n%s", diff)
		}

		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL+"?approved=true", nil), http.StatusOK, &visible)
		require.Len(t, visible, 1)
	})

	s.Run("rating outside 1..5 is rejected", func() {
		t := s.T()
		req := builder.NewReviewBuilder().With(func(r *builder.ReviewBuilder) { r.Rating = 9 }).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		require.Zero(t, dbtest.CountDocuments(t, s.DB, db.CollectionReviews, nil))
	})

	s.Run("unknown review", func() {
		t := s.T()
		id := dbtest.CreateTestReview(t, s.DB, builder.NewReviewBuilder().BuildDomain())
		_, err := s.DB.Collection(db.CollectionReviews).DeleteMany(t.Context(), bson.D{})
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+id, map[string]any{"approved": false})
		httptest.AssertErrorDetail(t, w, http.StatusNotFound, "Review not found")
	})
}

// =============================================================================
// Admin and seed
// =============================================================================

func (s *StorefrontSuite) TestAdminLogin() {
	s.Run("built-in credentials", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, map[string]any{"username": "admin", "password": "admin123"})
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"message":"Login successful","token":"admin_token_admin"}`, w.Body.String())
	})

	s.Run("any other pair is unauthorized", func() {
		t := s.T()
		for _, creds := range []map[string]any{
			{"username": "admin", "password": "admin1234"},
			{"username": "Admin", "password": "admin123"},
			{"username": "", "password": ""},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, creds)
			httptest.AssertErrorDetail(t, w, http.StatusUnauthorized, "Invalid credentials")
		}
	})
}

func (s *StorefrontSuite) TestSeed() {
	s.Run("second run does not duplicate", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, seedURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"message":"Data seeded successfully"}`, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, seedURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"message":"Data already seeded"}`, w.Body.String())

		require.EqualValues(t, 4, dbtest.CountDocuments(t, s.DB, db.CollectionProducts, nil))
		require.EqualValues(t, 3, dbtest.CountDocuments(t, s.DB, db.CollectionServices, nil))
		require.EqualValues(t, 3, dbtest.CountDocuments(t, s.DB, db.CollectionReviews, nil))
		require.EqualValues(t, 3, dbtest.CountDocuments(t, s.DB, db.CollectionReviews, bson.D{{Key: "approved", Value: true}}))
	})

	s.Run("existing products skip the seed", func() {
		t := s.T()
		dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().BuildDomain())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, seedURL, nil)
		require.JSONEq(t, `{"message":"Data already seeded"}`, w.Body.String())
		require.Zero(t, dbtest.CountDocuments(t, s.DB, db.CollectionServices, nil))
	})
}

// =============================================================================
// Cross-cutting
// =============================================================================

func (s *StorefrontSuite) TestOpenCORS() {
	t := s.T()
	req := stdhttptest.NewRequest(http.MethodOptions, bookingsURL, nil)
	req.Header.Set("Origin", "https://shop.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := stdhttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	httptest.AssertHeaders(t, w, map[string]string{"Access-Control-Allow-Origin": "*"})
}

func (s *StorefrontSuite) TestHealthAndMetrics() {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "http_requests_total")
}
