// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"secureauth/internal/delivery/http/middleware"
	"secureauth/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	AdminHandler      *handler.AdminHandler
	DemoHandler       *handler.DemoHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	adminHandler      *handler.AdminHandler
	demoHandler       *handler.DemoHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		adminHandler:      params.AdminHandler,
		demoHandler:       params.DemoHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Routes that require an authenticated session
	userGroup := e.Group("/user")
	userGroup.Use(r.sessionMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
	}

	// Walkthrough inspection endpoints. Deliberately unauthenticated: the
	// history page is how the demo shows what the database actually stores.
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/credentials", r.adminHandler.ListCredentials)
	}

	demoGroup := e.Group("/demo")
	{
		demoGroup.POST("/hash", r.demoHandler.HashPreview)
	}
}
