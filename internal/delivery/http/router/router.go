// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mediahub/internal/delivery/http/middleware"
	"mediahub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the mount point of every versioned route.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	PlaylistHandler     *handler.PlaylistHandler
	SubscriptionHandler *handler.SubscriptionHandler
	LikeHandler         *handler.LikeHandler
	DashboardHandler    *handler.DashboardHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	videoHandler        *handler.VideoHandler
	commentHandler      *handler.CommentHandler
	playlistHandler     *handler.PlaylistHandler
	subscriptionHandler *handler.SubscriptionHandler
	likeHandler         *handler.LikeHandler
	dashboardHandler    *handler.DashboardHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		videoHandler:        params.VideoHandler,
		commentHandler:      params.CommentHandler,
		playlistHandler:     params.PlaylistHandler,
		subscriptionHandler: params.SubscriptionHandler,
		likeHandler:         params.LikeHandler,
		dashboardHandler:    params.DashboardHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group(APIPrefix)
	auth := r.authMiddleware.Authenticate

	api.GET("/healthcheck", r.healthHandler.Check)

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.POST("/refresh-token", r.userHandler.RefreshToken)

		usersGroup.POST("/logout", r.userHandler.Logout, auth)
		usersGroup.GET("/current-user", r.userHandler.CurrentUser, auth)
		usersGroup.POST("/change-password", r.userHandler.ChangePassword, auth)
		usersGroup.PATCH("/update-account", r.userHandler.UpdateAccount, auth)
		usersGroup.PATCH("/:userId/account", r.userHandler.UpdateAccountByID, auth)
		usersGroup.PATCH("/avatar", r.userHandler.UpdateAvatar, auth)
		usersGroup.PATCH("/cover-image", r.userHandler.UpdateCoverImage, auth)
		usersGroup.GET("/c/:username", r.userHandler.ChannelProfile, auth)
		usersGroup.GET("/history", r.userHandler.WatchHistory, auth)
	}

	videosGroup := api.Group("/videos", auth)
	{
		videosGroup.GET("", r.videoHandler.List)
		videosGroup.POST("", r.videoHandler.Publish)
		videosGroup.GET("/:videoId", r.videoHandler.Get)
		videosGroup.PATCH("/:videoId", r.videoHandler.Update)
		videosGroup.DELETE("/:videoId", r.videoHandler.Delete)
		videosGroup.PATCH("/toggle/publish/:videoId", r.videoHandler.TogglePublish)
	}

	commentsGroup := api.Group("/comments", auth)
	{
		commentsGroup.GET("/:videoId", r.commentHandler.List)
		commentsGroup.POST("/:videoId", r.commentHandler.Add)
		commentsGroup.PATCH("/c/:commentId", r.commentHandler.Update)
		commentsGroup.DELETE("/c/:commentId", r.commentHandler.Delete)
	}

	playlistGroup := api.Group("/playlist", auth)
	{
		playlistGroup.POST("", r.playlistHandler.Create)
		playlistGroup.GET("/user", r.playlistHandler.ListMine)
		playlistGroup.GET("/:playlistId", r.playlistHandler.Get)
		playlistGroup.PATCH("/:playlistId", r.playlistHandler.Update)
		playlistGroup.DELETE("/:playlistId", r.playlistHandler.Delete)
		playlistGroup.PATCH("/add/:videoId/:playlistId", r.playlistHandler.AddVideo)
		playlistGroup.PATCH("/remove/:videoId/:playlistId", r.playlistHandler.RemoveVideo)
	}

	subscriptionsGroup := api.Group("/subscriptions", auth)
	{
		subscriptionsGroup.POST("/c/:channelId", r.subscriptionHandler.Toggle)
		subscriptionsGroup.GET("/c/:channelId", r.subscriptionHandler.Subscribers)
		subscriptionsGroup.GET("/u/:subscriberId", r.subscriptionHandler.SubscribedChannels)
		subscriptionsGroup.GET("/qr", r.subscriptionHandler.ChannelQR)
		subscriptionsGroup.POST("/qr", r.subscriptionHandler.SubscribeByQR)
	}

	likesGroup := api.Group("/likes", auth)
	{
		likesGroup.POST("/toggle/v/:videoId", r.likeHandler.ToggleVideoLike)
		likesGroup.POST("/toggle/c/:commentId", r.likeHandler.ToggleCommentLike)
		likesGroup.GET("/videos", r.likeHandler.LikedVideos)
	}

	dashboardGroup := api.Group("/dashboard", auth)
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.Stats)
		dashboardGroup.GET("/videos", r.dashboardHandler.Videos)
	}
}
