//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"petboard/internal/domain/account"
	"petboard/internal/handler/api"
	resdto "petboard/internal/handler/dto/response"
	"petboard/internal/usecase/queries"
	"petboard/tests/common/builder"
	"petboard/tests/common/httptest"
	commandsmock "petboard/tests/mock/commands"
	queriesmock "petboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockServiceCommands
	mockQueries  *queriesmock.MockServiceQueries
	handler      *api.ServiceHandler
	provider     account.Actor
}

func (s *ServiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockServiceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockServiceQueries(s.mockCtrl)
	s.handler = api.NewServiceHandler(s.mockCommands, s.mockQueries)

	s.provider = account.Actor{ID: uuid.New(), Role: account.RoleProvider}

	injectProvider := func(c *gin.Context) {
		c.Set("account_id", s.provider.ID)
		c.Set("account_role", s.provider.Role)
	}

	s.router.GET("/services", s.handler.SearchServices)
	s.router.GET("/services/:id/availability", s.handler.GetAvailability)
	s.router.GET("/services/:id/reservations", injectProvider, s.handler.ListServiceReservations)
}

func (s *ServiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ServiceHandlerTestSuite))
}

func (s *ServiceHandlerTestSuite) TestSearchServices() {
	s.Run("success: フィルタなしで全件返す", func() {
		views := []*queries.ServiceView{
			builder.NewServiceBuilder().BuildView(),
			builder.NewServiceBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().Search(gomock.Any(), queries.ServiceFilters{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")

		var response []*resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: クエリパラメータがフィルタに束ねられる", func() {
		location := "Springfield"
		maxPrice := 50.0
		s.mockQueries.EXPECT().Search(gomock.Any(), queries.ServiceFilters{
			Location: &location,
			MaxPrice: &maxPrice,
		}).Return([]*queries.ServiceView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/services?location=Springfield&max_price=50", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *ServiceHandlerTestSuite) TestGetAvailability() {
	serviceID := uuid.New()
	url := "/services/" + serviceID.String() + "/availability?start_date=2026-06-02&end_date=2026-06-05"

	s.Run("success: 残枠を返す", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), serviceID, gomock.Any()).
			Return(&queries.AvailabilityView{
				ServiceID:     serviceID,
				CapacityKnown: true,
				Capacity:      5,
				Reserved:      2,
				Available:     3,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.CapacityKnown)
		s.Require().NotNil(response.Available)
		s.Equal(int32(3), *response.Available)
		s.Equal("2026-06-02", response.StartDate)
	})

	s.Run("success: 定員未設定なら capacity_known=false", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), serviceID, gomock.Any()).
			Return(&queries.AvailabilityView{
				ServiceID:     serviceID,
				CapacityKnown: false,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.CapacityKnown)
		s.Nil(response.Available)
	})

	s.Run("error: 400 Bad Request（日付欠落）", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/services/"+serviceID.String()+"/availability", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), serviceID, gomock.Any()).
			Return(nil, queries.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

func (s *ServiceHandlerTestSuite) TestListServiceReservations() {
	serviceID := uuid.New()
	url := "/services/" + serviceID.String() + "/reservations"

	s.Run("success: 200 OK で予約一覧を返す", func() {
		views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), s.provider, serviceID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 403 Forbidden（他プロバイダのサービス）", func() {
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), s.provider, serviceID).
			Return(nil, queries.ErrNotServiceOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another provider")
	})
}
