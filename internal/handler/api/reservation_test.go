//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"petboard/internal/domain/account"
	"petboard/internal/handler/api"
	resdto "petboard/internal/handler/dto/response"
	"petboard/internal/usecase/commands"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actor        account.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.actor = account.Actor{ID: uuid.New(), Role: account.RoleOwner}

	// 認証ミドルウェアの代わりにアクターを注入する
	injectActor := func(c *gin.Context) {
		c.Set("account_id", s.actor.ID)
		c.Set("account_role", s.actor.Role)
	}

	s.router.POST("/reservations", injectActor, s.handler.CreateReservation)
	s.router.GET("/reservations", injectActor, s.handler.ListReservations)
	s.router.DELETE("/reservations/:id", injectActor, s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildDTO()

	s.Run("success: 201 Created で予約を返す", func() {
		returned := b.BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody).
			Return(returned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returned.ID, response.ID)
		s.Equal(b.StartDate, response.StartDate)
		s.Equal(b.EndDate, response.EndDate)
	})

	s.Run("error: 409 Conflict（満室）", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody).
			Return(nil, commands.ErrCapacityExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "fully booked")
	})

	s.Run("error: 404 Not Found（ペット不在）", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody).
			Return(nil, commands.ErrPetNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pet not found")
	})

	s.Run("error: 403 Forbidden（他人のペット）", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody).
			Return(nil, commands.ErrNotPetOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another owner")
	})

	s.Run("error: 400 Bad Request（期間不正）", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody).
			Return(nil, commands.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.Run("success: 200 OK で自分の予約一覧を返す", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildView(),
			builder.NewReservationBuilder().WithDates("2026-11-01", "2026-11-03").BuildView(),
		}
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.actor.ID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("2026-11-01", response[1].StartDate)
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, reservationID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, reservationID).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 Bad Request（ID不正）", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
