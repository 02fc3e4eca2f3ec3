package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"goalazo/internal/delivery/http/middleware"
	"goalazo/internal/delivery/http/response"
	"goalazo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the reference data read endpoints.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCountries lists the known countries.
func (h *CatalogHandler) GetCountries(c echo.Context) error {
	countries, err := h.uc.GetCountries(c.Request().Context(), middleware.GetLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countries, "Countries retrieved successfully")
}

// GetCountryCompetitions lists the competitions held in a country.
func (h *CatalogHandler) GetCountryCompetitions(c echo.Context) error {
	countryID, err := parseIDParam(c, "countryId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "countryId must be an integer")
	}

	competitions, err := h.uc.GetCountryCompetitions(c.Request().Context(), countryID, middleware.GetLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, competitions, "Competitions retrieved successfully")
}

// GetCompetitionSeries lists the known competition series.
func (h *CatalogHandler) GetCompetitionSeries(c echo.Context) error {
	series, err := h.uc.GetCompetitionSeries(c.Request().Context(), middleware.GetLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, series, "Competition series retrieved successfully")
}

// GetCompetitionTeams lists the teams taking part in a competition.
func (h *CatalogHandler) GetCompetitionTeams(c echo.Context) error {
	competitionID, err := parseIDParam(c, "competitionId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "competitionId must be an integer")
	}

	teams, err := h.uc.GetCompetitionTeams(c.Request().Context(), competitionID, middleware.GetLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, teams, "Teams retrieved successfully")
}

// GetTeams lists all teams.
func (h *CatalogHandler) GetTeams(c echo.Context) error {
	teams, err := h.uc.GetTeams(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, teams, "Teams retrieved successfully")
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
