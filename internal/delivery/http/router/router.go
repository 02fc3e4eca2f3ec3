// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"goalazo/internal/delivery/http/middleware"
	"goalazo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	MatchHandler    *handler.MatchHandler
	AuthMiddleware  *middleware.AuthMiddleware
	LimitMiddleware *middleware.LimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	matchHandler    *handler.MatchHandler
	authMiddleware  *middleware.AuthMiddleware
	limitMiddleware *middleware.LimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		matchHandler:    params.MatchHandler,
		authMiddleware:  params.AuthMiddleware,
		limitMiddleware: params.LimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes: registration and login are open, everything under /users/me
	// requires a valid token.
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/auth", r.userHandler.Login)

		meGroup := userGroup.Group("/me")
		meGroup.Use(r.authMiddleware.Authenticate)
		{
			meGroup.GET("", r.userHandler.GetMe)
			meGroup.POST("/filters", r.userHandler.SetFilter)
			meGroup.GET("/filters", r.userHandler.GetFilters, r.limitMiddleware.Handle)
		}
	}

	// Catalog read routes, all bounded by the limit middleware where a limit
	// makes sense.
	e.GET("/countries", r.catalogHandler.GetCountries, r.limitMiddleware.Handle)
	e.GET("/countries/:countryId/competitions", r.catalogHandler.GetCountryCompetitions, r.limitMiddleware.Handle)
	e.GET("/competition-series", r.catalogHandler.GetCompetitionSeries, r.limitMiddleware.Handle)
	e.GET("/competitions/:competitionId/teams", r.catalogHandler.GetCompetitionTeams, r.limitMiddleware.Handle)
	e.GET("/teams", r.catalogHandler.GetTeams)

	// Match read routes.
	e.GET("/filters/:filterId/matches", r.matchHandler.GetFilterMatches, r.limitMiddleware.Handle)
	e.GET("/matches/:matchId/viewings", r.matchHandler.GetMatchViewings)
}
