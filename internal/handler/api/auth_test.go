//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"petboard/internal/domain/account"
	"petboard/internal/handler/api"
	resdto "petboard/internal/handler/dto/response"
	"petboard/internal/pkg/config"
	"petboard/internal/pkg/cookie"
	"petboard/internal/pkg/jwt"
	"petboard/internal/usecase/commands"
	"petboard/tests/common/builder"
	"petboard/tests/common/httptest"
	"petboard/tests/common/testutil"
	commandsmock "petboard/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, jwtService, config.NewTestConfig().Cookie)

	s.router.POST("/auth/owner/register", s.handler.RegisterOwner)
	s.router.POST("/auth/owner/login", s.handler.LoginOwner)
	s.router.POST("/auth/provider/register", s.handler.RegisterProvider)
	s.router.POST("/auth/logout", s.handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegisterOwner() {
	url := "/auth/owner/register"
	reqBody := builder.NewAccountBuilder().BuildRegisterDTO()

	s.Run("success: 201 Created で登録アカウントを返す", func() {
		returned := builder.NewAccountBuilder().BuildView()
		s.mockCommands.EXPECT().Register(gomock.Any(), account.RoleOwner, reqBody).
			Return(returned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returned.Email, response.Account.Email)
		s.Equal("owner", response.Account.Role)
	})

	s.Run("error: 409 Conflict（メール重複）", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), account.RoleOwner, reqBody).
			Return(nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 400 Bad Request（バリデーション）", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "メール形式不正", mutate: testutil.Field("email", "invalid-email")},
			{name: "メール欠落", mutate: testutil.Field("email", nil)},
			{name: "名前欠落", mutate: testutil.Field("name", nil)},
			{name: "名前81文字", mutate: testutil.Field("name", strings.Repeat("a", 81))},
			{name: "パスワード5文字", mutate: testutil.Field("password", "12345")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLoginOwner() {
	url := "/auth/owner/login"
	reqBody := builder.NewAccountBuilder().BuildLoginDTO()

	s.Run("success: 200 OK でトークンとCookieを返す", func() {
		returned := builder.NewAccountBuilder().BuildView()
		s.mockCommands.EXPECT().Login(gomock.Any(), account.RoleOwner, reqBody).
			Return(&commands.LoginResult{
				AccountID: returned.ID,
				Token:     "test-jwt-token",
				Account:   returned,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(returned.Email, response.Account.Email)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal("test-jwt-token", tokenCookie.Value)
		s.True(tokenCookie.HttpOnly)
	})

	s.Run("error: 401 Unauthorized（資格情報不正）", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), account.RoleOwner, reqBody).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: 204 No Content でCookieを無効化する", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Less(tokenCookie.MaxAge, 0)
	})
}
