// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"transit/internal/delivery/http/middleware"
	"transit/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TripHandler     *handler.TripHandler
	FavoriteHandler *handler.FavoriteHandler
	FeedbackHandler *handler.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	tripHandler     *handler.TripHandler
	favoriteHandler *handler.FavoriteHandler
	feedbackHandler *handler.FeedbackHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tripHandler:     params.TripHandler,
		favoriteHandler: params.FavoriteHandler,
		feedbackHandler: params.FeedbackHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Trip planning routes require authentication
	tripGroup := e.Group("/trips")
	tripGroup.Use(r.authMiddleware.Authenticate)
	{
		tripGroup.GET("/search", r.tripHandler.SearchPlaces)
		tripGroup.POST("/plan", r.tripHandler.PlanTrip)
	}

	// Favorite routes require authentication
	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.GET("", r.favoriteHandler.ListFavorites)
		favoriteGroup.POST("/toggle", r.favoriteHandler.ToggleFavorite)
		favoriteGroup.GET("/qr", r.favoriteHandler.ShareQR)
	}

	// Feedback routes require authentication; listing everything and
	// deleting entries additionally require the "admin" role
	feedbackGroup := e.Group("/feedback")
	feedbackGroup.Use(r.authMiddleware.Authenticate)
	{
		feedbackGroup.POST("", r.feedbackHandler.CreateFeedback)
		feedbackGroup.GET("", r.feedbackHandler.ListFeedback)
		feedbackGroup.GET("/:id", r.feedbackHandler.GetFeedback)
		feedbackGroup.GET("/:id/replies", r.feedbackHandler.ListReplies)
		feedbackGroup.POST("/:id/replies", r.feedbackHandler.PostReply)
		feedbackGroup.DELETE("/:id/replies/:replyId", r.feedbackHandler.DeleteReply)

		adminGroup := feedbackGroup.Group("")
		adminGroup.Use(r.authMiddleware.RequireRole("admin"))
		{
			adminGroup.GET("/all", r.feedbackHandler.ListAllFeedback)
			adminGroup.DELETE("/:id", r.feedbackHandler.DeleteFeedback)
		}
	}
}
