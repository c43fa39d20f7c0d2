//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-storefront/internal/domain/gallery"
	"salon-storefront/internal/domain/service"
	"salon-storefront/internal/handler/api"
	reqdto "salon-storefront/internal/handler/dto/request"
	resdto "salon-storefront/internal/handler/dto/response"
	"salon-storefront/tests/common/builder"
	"salon-storefront/tests/common/httptest"
	"salon-storefront/tests/common/testutil"
	commandsmock "salon-storefront/tests/mock/commands"
	queriesmock "salon-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Services and gallery items share the plain list/create/delete shape.
type CatalogueHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	serviceCommands *commandsmock.MockServiceCommands
	serviceQueries  *queriesmock.MockServiceQueries
	galleryCommands *commandsmock.MockGalleryCommands
	galleryQueries  *queriesmock.MockGalleryQueries
}

func (s *CatalogueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
	s.Require().NoError(reqdto.RegisterValidations())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.serviceCommands = commandsmock.NewMockServiceCommands(s.mockCtrl)
	s.serviceQueries = queriesmock.NewMockServiceQueries(s.mockCtrl)
	s.galleryCommands = commandsmock.NewMockGalleryCommands(s.mockCtrl)
	s.galleryQueries = queriesmock.NewMockGalleryQueries(s.mockCtrl)

	services := api.NewServiceHandler(s.serviceCommands, s.serviceQueries)
	s.router.GET("/services", services.List)
	s.router.POST("/services", services.Create)
	s.router.PUT("/services/:id", services.Update)
	s.router.DELETE("/services/:id", services.Delete)

	items := api.NewGalleryHandler(s.galleryCommands, s.galleryQueries)
	s.router.GET("/gallery", items.List)
	s.router.POST("/gallery", items.Create)
	s.router.DELETE("/gallery/:id", items.Delete)
}

func (s *CatalogueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogueHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogueHandlerTestSuite))
}

// ================================================================================
// Services
// ================================================================================

func (s *CatalogueHandlerTestSuite) TestServiceList() {
	svc := builder.NewServiceBuilder().BuildDomain()
	s.serviceQueries.EXPECT().List(gomock.Any()).Return([]*service.Service{svc}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil)

	var res []resdto.ServiceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Require().Len(res, 1)
	s.Equal(svc.Duration, res[0].Duration)
	s.NotContains(rec.Body.String(), "createdAt")
}

func (s *CatalogueHandlerTestSuite) TestServiceCreate() {
	sb := builder.NewServiceBuilder()
	reqBody := sb.BuildRequestDTO()

	s.Run("success", func() {
		s.serviceCommands.EXPECT().Create(gomock.Any(), reqBody.ToAttributes()).Return(sb.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", reqBody)

		var res resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(sb.ID, res.ID)
	})

	s.Run("error: duration is required", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("duration", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: createdAt is not a service field", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("createdAt", "2024-01-01T00:00:00Z"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CatalogueHandlerTestSuite) TestServiceUpdate() {
	sb := builder.NewServiceBuilder()
	url := "/services/" + sb.ID

	s.Run("success", func() {
		s.serviceCommands.EXPECT().Replace(gomock.Any(), sb.ID, gomock.Any()).Return(sb.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, sb.BuildRequestDTO())
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: not found", func() {
		s.serviceCommands.EXPECT().Replace(gomock.Any(), sb.ID, gomock.Any()).Return(nil, service.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, sb.BuildRequestDTO())
		httptest.AssertErrorDetail(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

func (s *CatalogueHandlerTestSuite) TestServiceDelete() {
	id := builder.NewServiceBuilder().ID

	s.Run("success", func() {
		s.serviceCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/services/"+id, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"message":"Service deleted successfully"}`, rec.Body.String())
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/services/xyz", nil)
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// Gallery
// ================================================================================

func (s *CatalogueHandlerTestSuite) TestGalleryList() {
	s.galleryQueries.EXPECT().List(gomock.Any()).Return([]*gallery.Item{}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gallery", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *CatalogueHandlerTestSuite) TestGalleryCreate() {
	gb := builder.NewGalleryItemBuilder()

	s.Run("success: caption may be omitted", func() {
		item := gb.With(func(b *builder.GalleryItemBuilder) { b.Caption = nil }).BuildDomain()
		s.galleryCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(item, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/gallery", map[string]any{"image": item.Image})

		var res resdto.GalleryItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Nil(res.Caption)
	})

	s.Run("error: image is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/gallery", map[string]any{"caption": "x"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CatalogueHandlerTestSuite) TestGalleryDelete() {
	id := builder.NewGalleryItemBuilder().ID

	s.Run("success", func() {
		s.galleryCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/gallery/"+id, nil)
		s.JSONEq(`{"message":"Gallery item deleted successfully"}`, rec.Body.String())
	})

	s.Run("error: not found", func() {
		s.galleryCommands.EXPECT().Delete(gomock.Any(), id).Return(gallery.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/gallery/"+id, nil)
		httptest.AssertErrorDetail(s.T(), rec, http.StatusNotFound, "Gallery item not found")
	})
}
