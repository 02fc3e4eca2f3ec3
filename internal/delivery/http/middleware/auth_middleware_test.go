package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"goalazo/config"
	"goalazo/internal/domain/entity"
	domainerrors "goalazo/internal/domain/errors"
	mockUc "goalazo/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestContext(t *testing.T, token string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if token != "" {
		req.Header.Set("x-access-token", token)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	userUc := mockUc.NewMockUserUsecase(t)
	m := NewAuthMiddleware(userUc, nil)

	c, rec := newAuthTestContext(t, "")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	assert.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
	userUc.AssertNotCalled(t, "CheckAuthentication", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	userUc := mockUc.NewMockUserUsecase(t)
	m := NewAuthMiddleware(userUc, nil)

	userUc.EXPECT().
		CheckAuthentication(mock.Anything, "expired-token").
		Return(nil, domainerrors.ErrAuthenticationFailed.WrapMessage("invalid or expired token"))

	c, rec := newAuthTestContext(t, "expired-token")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	assert.NoError(t, err)
	assert.False(t, nextCalled)

	// Token failures are a 401; 403 is reserved for failed credential logins.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userUc := mockUc.NewMockUserUsecase(t)
	m := NewAuthMiddleware(userUc, nil)

	authUser := &entity.AuthenticatedUser{ID: 11, Name: "alice"}
	userUc.EXPECT().
		CheckAuthentication(mock.Anything, "valid-token").
		Return(authUser, nil)

	c, _ := newAuthTestContext(t, "valid-token")

	err := m.Authenticate(func(c echo.Context) error {
		assert.Equal(t, authUser, GetAuthUser(c))

		return nil
	})(c)

	assert.NoError(t, err)
}

func TestAuthMiddleware_ConfigurableHeader(t *testing.T) {
	userUc := mockUc.NewMockUserUsecase(t)
	cfg := &config.Config{Request: &config.RequestConfig{AccessTokenHeader: "authorization"}}
	m := NewAuthMiddleware(userUc, cfg)

	authUser := &entity.AuthenticatedUser{ID: 11, Name: "alice"}
	userUc.EXPECT().
		CheckAuthentication(mock.Anything, "valid-token").
		Return(authUser, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("authorization", "valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(func(c echo.Context) error {
		return nil
	})(c)

	assert.NoError(t, err)
}

func TestGetAuthUser_NotSet(t *testing.T) {
	c, _ := newAuthTestContext(t, "")

	assert.Nil(t, GetAuthUser(c))
}
