//go:build e2e

package catalogue_test

import (
	"net/http"
	"testing"
	"time"

	"salon-storefront/internal/handler/dto/response"
	"salon-storefront/internal/infra/db"
	"salon-storefront/tests/common/builder"
	"salon-storefront/tests/common/dbtest"
	"salon-storefront/tests/common/httptest"
	"salon-storefront/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	productsURL = "/api/products"
	servicesURL = "/api/services"
	galleryURL  = "/api/gallery"
)

type CatalogueSuite struct {
	e2e.SharedSuite
}

func (s *CatalogueSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCatalogueSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogueSuite))
}

// =============================================================================
// Products
// =============================================================================

func (s *CatalogueSuite) TestProductLifecycle() {
	s.Run("create applies defaults and get returns the same record", func() {
		t := s.T()

		body := map[string]any{
			"name":        "X",
			"description": "d",
			"price":       10.0,
			"category":    "Makeup",
			"image":       builder.SampleImage,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, body)

		var created response.ProductResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.NotEmpty(t, created.ID)
		require.True(t, created.InStock)
		require.False(t, created.Featured)
		require.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"/"+created.ID, nil)
		var fetched response.ProductResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		if diff := cmp.Diff(created, fetched); diff != "" {
			t.Errorf("fetched product mismatch (-created +fetched):\n%s", diff)
		}
	})

	s.Run("delete then get and repeated delete are not found", func() {
		t := s.T()
		id := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().BuildDomain())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, productsURL+"/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"message":"Product deleted successfully"}`, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"/"+id, nil)
		httptest.AssertErrorDetail(t, w, http.StatusNotFound, "Product not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, productsURL+"/"+id, nil)
		httptest.AssertErrorDetail(t, w, http.StatusNotFound, "Product not found")
	})

	s.Run("replace swaps every field and keeps the id", func() {
		t := s.T()
		id := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().BuildDomain())

		req := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Name = "Rose Water Toner"
			b.Category = "Skincare"
			b.Price = 12
			b.InStock = false
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, productsURL+"/"+id, req)
		var updated response.ProductResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, id, updated.ID)
		require.Equal(t, "Rose Water Toner", updated.Name)
		require.False(t, updated.InStock)

		raw := dbtest.FindRaw(t, s.DB, db.CollectionProducts, id)
		require.Equal(t, "Skincare", raw["category"])
	})

	s.Run("malformed id is rejected before any lookup", func() {
		t := s.T()
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			w := httptest.PerformRequest(t, s.Router, method, productsURL+"/not-an-object-id", builder.NewProductBuilder().BuildRequestDTO())
			httptest.AssertErrorDetail(t, w, http.StatusBadRequest, "Invalid id")
		}
	})

	s.Run("well-formed unknown id is not found", func() {
		t := s.T()
		missing := primitive.NewObjectID().Hex()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, productsURL+"/"+missing, builder.NewProductBuilder().BuildRequestDTO())
		httptest.AssertErrorDetail(t, w, http.StatusNotFound, "Product not found")
	})

	s.Run("filtered list is a subset of the unfiltered list", func() {
		t := s.T()
		dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().BuildDomain())
		dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Category = "Fragrances"
			b.Featured = true
		}).BuildDomain())
		dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Category = "Fragrances"
		}).BuildDomain())

		var all, fragrances, featured, blank []response.ProductResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil), http.StatusOK, &all)
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"?category=Fragrances", nil), http.StatusOK, &fragrances)
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"?category=Fragrances&featured=true", nil), http.StatusOK, &featured)

		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"?category=", nil), http.StatusOK, &blank)

		require.Len(t, all, 3)
		require.Len(t, blank, 3)
		require.Len(t, fragrances, 2)
		require.Len(t, featured, 1)

		idsOf := func(ps []response.ProductResponse) []string {
			out := make([]string, 0, len(ps))
			for _, p := range ps {
				out = append(out, p.ID)
			}
			return out
		}
		for _, sub := range [][]response.ProductResponse{fragrances, featured} {
			require.Subset(t, idsOf(all), idsOf(sub))
		}
		for _, p := range fragrances {
			require.Equal(t, "Fragrances", p.Category)
		}
	})

	s.Run("list is capped at one hundred", func() {
		t := s.T()
		for range 105 {
			dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().BuildDomain())
		}

		var all []response.ProductResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil), http.StatusOK, &all)
		require.Len(t, all, 100)
	})

	s.Run("unknown fields are rejected and nothing is stored", func() {
		t := s.T()
		body := map[string]any{
			"name": "X", "description": "d", "price": 1, "category": "Makeup", "image": "i",
			"sku": "ABC-1",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, body)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		require.Zero(t, dbtest.CountDocuments(t, s.DB, db.CollectionProducts, nil))
	})
}

// =============================================================================
// Services
// =============================================================================

func (s *CatalogueSuite) TestServiceLifecycle() {
	s.Run("create, replace and delete", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, servicesURL, builder.NewServiceBuilder().BuildRequestDTO())
		var created response.ServiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.NotEmpty(t, created.ID)

		req := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) {
			b.Duration = "90 mins"
			b.Popular = false
		}).BuildRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, servicesURL+"/"+created.ID, req)
		var replaced response.ServiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replaced)
		require.Equal(t, "90 mins", replaced.Duration)
		require.False(t, replaced.Popular)

		var list []response.ServiceResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, servicesURL, nil), http.StatusOK, &list)
		require.Len(t, list, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, servicesURL+"/"+created.ID, nil)
		require.JSONEq(t, `{"message":"Service deleted successfully"}`, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, servicesURL+"/"+created.ID, nil)
		httptest.AssertErrorDetail(t, w, http.StatusNotFound, "Service not found")
	})
}

// =============================================================================
// Gallery
// =============================================================================

func (s *CatalogueSuite) TestGallery() {
	s.Run("newest first", func() {
		t := s.T()
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := range 3 {
			dbtest.CreateTestGalleryItem(t, s.DB, builder.NewGalleryItemBuilder().With(func(b *builder.GalleryItemBuilder) {
				b.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			}).BuildDomain())
		}

		var items []response.GalleryItemResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, galleryURL, nil), http.StatusOK, &items)
		require.Len(t, items, 3)
		require.True(t, items[0].CreatedAt.After(items[1].CreatedAt))
		require.True(t, items[1].CreatedAt.After(items[2].CreatedAt))
	})

	s.Run("create without caption stores null and delete removes it", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, galleryURL, map[string]any{"image": builder.SampleImage})
		var created response.GalleryItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.Nil(t, created.Caption)

		raw := dbtest.FindRaw(t, s.DB, db.CollectionGallery, created.ID)
		require.Contains(t, raw, "caption")
		require.Nil(t, raw["caption"])

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, galleryURL+"/"+created.ID, nil)
		require.JSONEq(t, `{"message":"Gallery item deleted successfully"}`, w.Body.String())
		require.Zero(t, dbtest.CountDocuments(t, s.DB, db.CollectionGallery, nil))
	})
}
