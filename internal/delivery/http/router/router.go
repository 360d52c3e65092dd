// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gobarber/internal/delivery/http/middleware"
	"gobarber/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	SessionHandler  *handler.SessionHandler
	ProfileHandler  *handler.ProfileHandler
	AvatarHandler   *handler.AvatarHandler
	PasswordHandler *handler.PasswordHandler
	ProviderHandler *handler.ProviderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	sessionHandler  *handler.SessionHandler
	profileHandler  *handler.ProfileHandler
	avatarHandler   *handler.AvatarHandler
	passwordHandler *handler.PasswordHandler
	providerHandler *handler.ProviderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		sessionHandler:  params.SessionHandler,
		profileHandler:  params.ProfileHandler,
		avatarHandler:   params.AvatarHandler,
		passwordHandler: params.PasswordHandler,
		providerHandler: params.ProviderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/users", r.userHandler.Register)
	e.POST("/sessions", r.sessionHandler.Authenticate)

	passwordGroup := e.Group("/password")
	{
		passwordGroup.POST("/forgot", r.passwordHandler.Forgot)
		passwordGroup.POST("/reset", r.passwordHandler.Reset)
	}

	// Routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Show)
		profileGroup.PUT("", r.profileHandler.Update)
	}

	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.PATCH("/avatar", r.avatarHandler.Update)
	}

	providersGroup := e.Group("/providers")
	providersGroup.Use(r.authMiddleware.Authenticate)
	{
		providersGroup.GET("", r.providerHandler.List)
	}
}
