package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"goalazo/internal/delivery/http/middleware"
	"goalazo/internal/delivery/http/response"
	"goalazo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// MatchHandler serves match and viewing read endpoints.
type MatchHandler struct {
	uc     usecase.MatchUsecase
	logger *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler, injected by Fx.
func NewMatchHandler(uc usecase.MatchUsecase, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetFilterMatches lists upcoming matches referenced by a filter.
func (h *MatchHandler) GetFilterMatches(c echo.Context) error {
	filterID, err := parseIDParam(c, "filterId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "filterId must be an integer")
	}

	matches, err := h.uc.GetFilterMatches(c.Request().Context(), filterID, middleware.GetLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, matches, "Matches retrieved successfully")
}

// GetMatchViewings lists the viewings of a match inside a map section given
// by two corner coordinates (lon1/lat1 and lon2/lat2 query parameters).
func (h *MatchHandler) GetMatchViewings(c echo.Context) error {
	matchID, err := parseIDParam(c, "matchId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "matchId must be an integer")
	}

	section, err := parseMapSection(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "map section needs lon1, lat1, lon2 and lat2 coordinates")
	}

	viewings, err := h.uc.GetMatchViewings(c.Request().Context(), matchID, section)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewings, "Viewings retrieved successfully")
}

// parseMapSection reads the four corner coordinates of the requested map
// section. The corners may arrive in any order; the bound normalizes them.
func parseMapSection(c echo.Context) (orb.Bound, error) {
	coords := make([]float64, 0, 4)
	for _, name := range []string{"lon1", "lat1", "lon2", "lat2"} {
		value, err := strconv.ParseFloat(c.QueryParam(name), 64)
		if err != nil {
			return orb.Bound{}, errors.Wrapf(err, "invalid coordinate %s", name)
		}
		coords = append(coords, value)
	}

	section := orb.MultiPoint{
		{coords[0], coords[1]},
		{coords[2], coords[3]},
	}.Bound()

	return section, nil
}
