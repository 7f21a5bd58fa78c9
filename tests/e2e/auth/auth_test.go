//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"petboard/internal/handler/dto/request"
	"petboard/internal/handler/dto/response"
	"petboard/internal/pkg/cookie"
	commonhttp "petboard/tests/common/httptest"
	"petboard/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ownerRegisterURL    = "/api/auth/owner/register"
	ownerLoginURL       = "/api/auth/owner/login"
	providerRegisterURL = "/api/auth/provider/register"
	providerLoginURL    = "/api/auth/provider/login"
	logoutURL           = "/api/auth/logout"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) register(url, email string) *response.RegisterResponse {
	t := s.T()
	t.Helper()

	w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, url, request.RegisterRequest{
		Name:     "E2E Account",
		Email:    email,
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "登録に失敗: %s", w.Body.String())

	var res response.RegisterResponse
	commonhttp.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res
}

func (s *authSuite) login(url, email, password string) (*response.AuthResponse, int) {
	t := s.T()
	t.Helper()

	w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, url, request.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
	if w.Code != http.StatusOK {
		return nil, w.Code
	}

	var auth response.AuthResponse
	commonhttp.AssertSuccessResponse(t, w, http.StatusOK, &auth)
	return &auth, w.Code
}

func (s *authSuite) TestRegistration() {
	s.Run("飼い主として登録できること", func() {
		t := s.T()

		res := s.register(ownerRegisterURL, "owner@example.com")
		require.Equal(t, "owner@example.com", res.Account.Email)
		require.Equal(t, "owner", res.Account.Role)
	})

	s.Run("事業者として登録できること", func() {
		t := s.T()

		res := s.register(providerRegisterURL, "provider@example.com")
		require.Equal(t, "provider", res.Account.Role)
	})

	s.Run("重複メールアドレスは拒否されること", func() {
		t := s.T()

		s.register(ownerRegisterURL, "taken@example.com")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, ownerRegisterURL, request.RegisterRequest{
			Name:     "Another",
			Email:    "taken@example.com",
			Password: "password123",
		}, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("ロールをまたいでもメールアドレスは一意であること", func() {
		t := s.T()

		s.register(ownerRegisterURL, "shared@example.com")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, providerRegisterURL, request.RegisterRequest{
			Name:     "Provider",
			Email:    "shared@example.com",
			Password: "password123",
		}, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *authSuite) TestLogin() {
	s.Run("正しい認証情報でログインできること", func() {
		t := s.T()

		s.register(ownerRegisterURL, "owner@example.com")

		auth, code := s.login(ownerLoginURL, "owner@example.com", "password123")
		require.Equal(t, http.StatusOK, code)
		require.NotEmpty(t, auth.AccessToken)
		require.Equal(t, "owner@example.com", auth.Account.Email)
	})

	s.Run("間違ったパスワードは拒否されること", func() {
		t := s.T()

		s.register(ownerRegisterURL, "owner@example.com")

		_, code := s.login(ownerLoginURL, "owner@example.com", "wrongpassword")
		require.Equal(t, http.StatusUnauthorized, code)
	})

	s.Run("飼い主の認証情報で事業者としてログインできないこと", func() {
		t := s.T()

		s.register(ownerRegisterURL, "owner@example.com")

		_, code := s.login(providerLoginURL, "owner@example.com", "password123")
		require.Equal(t, http.StatusUnauthorized, code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでクッキーが破棄されること", func() {
		t := s.T()

		s.register(ownerRegisterURL, "owner@example.com")
		auth, code := s.login(ownerLoginURL, "owner@example.com", "password123")
		require.Equal(t, http.StatusOK, code)

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, auth.AccessToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		c := commonhttp.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, c)
		require.Negative(t, c.MaxAge)
	})
}

func (s *authSuite) TestRoleGates() {
	s.Run("未認証では予約APIにアクセスできないこと", func() {
		t := s.T()

		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/reservations", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("飼い主はサービスを作成できないこと", func() {
		t := s.T()

		s.register(ownerRegisterURL, "owner@example.com")
		auth, code := s.login(ownerLoginURL, "owner@example.com", "password123")
		require.Equal(t, http.StatusOK, code)

		price := 45.0
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/services", request.ServiceRequest{
			Name:        "Happy Paws Boarding",
			Location:    "Springfield",
			PricePerDay: &price,
			Type:        "boarding",
		}, auth.AccessToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("事業者はペットを登録できないこと", func() {
		t := s.T()

		s.register(providerRegisterURL, "provider@example.com")
		auth, code := s.login(providerLoginURL, "provider@example.com", "password123")
		require.Equal(t, http.StatusOK, code)

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/pets", request.CreatePetRequest{
			Name: "Rex",
			Type: "dog",
			Age:  3,
		}, auth.AccessToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
