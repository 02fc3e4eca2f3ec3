// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"goalazo/internal/delivery/http/middleware"
	"goalazo/internal/delivery/http/response"
	"goalazo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password"`
}

type setFilterRequest struct {
	FilterName           string  `json:"filterName" validate:"required"`
	TeamIDs              []int64 `json:"teamIds"`
	CompetitionSeriesIDs []int64 `json:"competitionSeriesIds"`
}

// Register handles the user registration request. An empty body creates an
// anonymous user; name and password together create an explicit one.
func (h *UserHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if (input.Name == "") != (input.Password == "") {
		return response.BadRequest(c, "VALIDATION_FAILED", "name and password must both be provided or both be omitted")
	}

	authUser, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     input.Name,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authUser, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	authUser, err := h.uc.Authenticate(c.Request().Context(), &usecase.AuthenticateInput{
		Name:     input.Name,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authUser, "Login successful")
}

// GetMe returns the identity embedded in the presented token.
func (h *UserHandler) GetMe(c echo.Context) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return response.Unauthorized(c, "TOKEN_MISSING", "authentication required")
	}

	return response.Success(c, http.StatusOK, authUser, "Authenticated")
}

// SetFilter creates a filter and links it to the calling user.
func (h *UserHandler) SetFilter(c echo.Context) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return response.Unauthorized(c, "TOKEN_MISSING", "authentication required")
	}

	var input setFilterRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}
	if input.FilterName == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "filterName is required")
	}
	if len(input.TeamIDs) == 0 && len(input.CompetitionSeriesIDs) == 0 {
		return response.BadRequest(c, "VALIDATION_FAILED", "at least one team or competition series is required")
	}

	filter, err := h.uc.SetUserFilter(c.Request().Context(), &usecase.SetUserFilterInput{
		UserID:               authUser.ID,
		FilterName:           input.FilterName,
		TeamIDs:              input.TeamIDs,
		CompetitionSeriesIDs: input.CompetitionSeriesIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, filter, "Filter created successfully")
}

// GetFilters returns the filters saved by the calling user.
func (h *UserHandler) GetFilters(c echo.Context) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return response.Unauthorized(c, "TOKEN_MISSING", "authentication required")
	}

	filters, err := h.uc.GetUserFilters(c.Request().Context(), authUser.ID, middleware.GetLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, filters, "Filters retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
