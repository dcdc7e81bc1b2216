// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the base path of every versioned endpoint.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	JobHandler     *handler.JobHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	authHandler    *handler.AuthHandler
	jobHandler     *handler.JobHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler:    params.AuthHandler,
		jobHandler:     params.JobHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group(APIPrefix)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	userGroup := api.Group("/user", r.authMiddleware.Authenticate)
	{
		userGroup.PUT("/update-user", r.userHandler.UpdateUser)
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	jobGroup := api.Group("/jobs", r.authMiddleware.Authenticate)
	{
		jobGroup.POST("/create-job", r.jobHandler.CreateJob)
		jobGroup.GET("/get-job", r.jobHandler.ListJobs)
		jobGroup.PATCH("/update-job/:id", r.jobHandler.UpdateJob)
		jobGroup.DELETE("/delete-job/:id", r.jobHandler.DeleteJob)
		jobGroup.GET("/job-stats", r.jobHandler.JobStats)
	}
}
