package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "goalazo/internal/delivery/context"
	"goalazo/internal/delivery/http/middleware"
	"goalazo/internal/delivery/http/validator"
	"goalazo/internal/domain/entity"
	domainerrors "goalazo/internal/domain/errors"
	mockUc "goalazo/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newUserHandlerServer wires a UserHandler into an echo instance with the
// real validator and error handler, so responses carry the production
// status codes and envelope.
func newUserHandlerServer(t *testing.T) (*echo.Echo, *mockUc.MockUserUsecase) {
	t.Helper()

	uc := mockUc.NewMockUserUsecase(t)
	logger := newDiscardLogger()
	h := NewUserHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.POST("/users", h.Register)
	e.POST("/users/auth", h.Login)

	setAuthUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(string(deliverycontext.KeyAuthUser), &entity.AuthenticatedUser{ID: 11, Name: "alice"})

			return next(c)
		}
	}
	e.POST("/users/me/filters", h.SetFilter, setAuthUser)
	e.POST("/users/me/unauthenticated-filters", h.SetFilter)

	return e, uc
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_Register_Anonymous(t *testing.T) {
	e, uc := newUserHandlerServer(t)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&entity.AuthenticatedUser{
			ID:              7,
			Name:            "7f0f4a6e-08f6-44a7-9a44-2b6f7a81b4a2",
			IsAutoGenerated: true,
			Token:           "signed-token",
		}, nil)

	rec := doJSON(e, http.MethodPost, "/users", `{}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Contains(t, rec.Body.String(), `"isAutoGenerated":true`)
}

func TestUserHandler_Register_NameWithoutPassword(t *testing.T) {
	e, uc := newUserHandlerServer(t)

	rec := doJSON(e, http.MethodPost, "/users", `{"name":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_NameConflict(t *testing.T) {
	e, uc := newUserHandlerServer(t)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUniqueNameConflict.WrapMessage("name already exists"))

	rec := doJSON(e, http.MethodPost, "/users", `{"name":"alice","password":"Password123!"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNIQUE_NAME_CONFLICT")
}

func TestUserHandler_Login_Success(t *testing.T) {
	e, uc := newUserHandlerServer(t)

	uc.EXPECT().
		Authenticate(mock.Anything, mock.AnythingOfType("*usecase.AuthenticateInput")).
		Return(&entity.AuthenticatedUser{ID: 11, Name: "alice", Token: "signed-token"}, nil)

	rec := doJSON(e, http.MethodPost, "/users/auth", `{"name":"alice","password":"Password123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestUserHandler_Login_MissingName(t *testing.T) {
	e, uc := newUserHandlerServer(t)

	rec := doJSON(e, http.MethodPost, "/users/auth", `{"password":"Password123!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestUserHandler_Login_AuthenticationFailed(t *testing.T) {
	e, uc := newUserHandlerServer(t)

	uc.EXPECT().
		Authenticate(mock.Anything, mock.AnythingOfType("*usecase.AuthenticateInput")).
		Return(nil, domainerrors.ErrAuthenticationFailed.WrapMessage("authentication failed"))

	rec := doJSON(e, http.MethodPost, "/users/auth", `{"name":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTHENTICATION_FAILED")
}

func TestUserHandler_SetFilter_Success(t *testing.T) {
	e, uc := newUserHandlerServer(t)

	uc.EXPECT().
		SetUserFilter(mock.Anything, mock.AnythingOfType("*usecase.SetUserFilterInput")).
		Return(&entity.Filter{ID: 21, Name: "My Teams", TeamIDs: []int64{1, 2}}, nil)

	rec := doJSON(e, http.MethodPost, "/users/me/filters", `{"filterName":"My Teams","teamIds":[1,2]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "My Teams")
}

func TestUserHandler_SetFilter_NoLinks(t *testing.T) {
	e, uc := newUserHandlerServer(t)

	rec := doJSON(e, http.MethodPost, "/users/me/filters", `{"filterName":"Empty"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "SetUserFilter", mock.Anything, mock.Anything)
}

func TestUserHandler_SetFilter_Unauthenticated(t *testing.T) {
	e, uc := newUserHandlerServer(t)

	rec := doJSON(e, http.MethodPost, "/users/me/unauthenticated-filters", `{"filterName":"My Teams","teamIds":[1]}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
	uc.AssertNotCalled(t, "SetUserFilter", mock.Anything, mock.Anything)
}
