package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vidtube/domain/repository"
	"vidtube/infrastructure/configuration"
	httpHandler "vidtube/interfaces/http"
	"vidtube/interfaces/middleware"
)

type Handlers struct {
	User         httpHandler.IUserHandler
	Video        httpHandler.IVideoHandler
	Comment      httpHandler.ICommentHandler
	Like         httpHandler.ILikeHandler
	Tweet        httpHandler.ITweetHandler
	Playlist     httpHandler.IPlaylistHandler
	Subscription httpHandler.ISubscriptionHandler
	Dashboard    httpHandler.IDashboardHandler
	Health       httpHandler.IHealthHandler
}

func InitiateRouter(handlers Handlers, userRepository repository.IUser) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     configuration.C.Cors.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", handlers.Health.Health)
	router.POST("/register", handlers.User.Register)
	router.POST("/login", handlers.User.Login)
	router.POST("/refresh", handlers.User.Refresh)

	api := router.Group("api")
	api.Use(middleware.Auth(userRepository))

	users := api.Group("/users")
	{
		users.POST("/logout", handlers.User.Logout)
		users.POST("/change-password", handlers.User.ChangePassword)
		users.GET("/me", handlers.User.CurrentUser)
		users.PATCH("/me", handlers.User.UpdateAccount)
		users.PATCH("/avatar", handlers.User.UpdateAvatar)
		users.PATCH("/cover", handlers.User.UpdateCover)
		users.GET("/c/:username", handlers.User.ChannelProfile)
		users.GET("/history", handlers.User.WatchHistory)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", handlers.Video.List)
		videos.POST("", handlers.Video.Publish)
		videos.GET("/:videoId", handlers.Video.Details)
		videos.PATCH("/:videoId", handlers.Video.Update)
		videos.DELETE("/:videoId", handlers.Video.Delete)
		videos.PATCH("/:videoId/toggle-publish", handlers.Video.TogglePublish)
		videos.POST("/:videoId/view", handlers.Video.RecordView)
		videos.GET("/:videoId/comments", handlers.Comment.ListForVideo)
		videos.POST("/:videoId/comments", handlers.Comment.Add)
	}

	comments := api.Group("/comments")
	{
		comments.PATCH("/:commentId", handlers.Comment.Update)
		comments.DELETE("/:commentId", handlers.Comment.Delete)
	}

	likes := api.Group("/likes")
	{
		likes.POST("/toggle/v/:videoId", handlers.Like.ToggleVideo)
		likes.POST("/toggle/c/:commentId", handlers.Like.ToggleComment)
		likes.POST("/toggle/t/:tweetId", handlers.Like.ToggleTweet)
		likes.GET("/videos", handlers.Like.LikedVideos)
	}

	tweets := api.Group("/tweets")
	{
		tweets.POST("", handlers.Tweet.Create)
		tweets.GET("/user/:userId", handlers.Tweet.ListByUser)
		tweets.PATCH("/:tweetId", handlers.Tweet.Update)
		tweets.DELETE("/:tweetId", handlers.Tweet.Delete)
	}

	playlists := api.Group("/playlists")
	{
		playlists.POST("", handlers.Playlist.Create)
		playlists.GET("/user/:userId", handlers.Playlist.ListByUser)
		playlists.GET("/:playlistId", handlers.Playlist.Get)
		playlists.PATCH("/:playlistId", handlers.Playlist.Update)
		playlists.DELETE("/:playlistId", handlers.Playlist.Delete)
		playlists.PATCH("/:playlistId/videos/:videoId", handlers.Playlist.AddVideo)
		playlists.DELETE("/:playlistId/videos/:videoId", handlers.Playlist.RemoveVideo)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channelId", handlers.Subscription.Toggle)
		subscriptions.GET("/c/:channelId", handlers.Subscription.Subscribers)
		subscriptions.GET("/u/:subscriberId", handlers.Subscription.SubscribedChannels)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats/:channelId", handlers.Dashboard.Stats)
		dashboard.GET("/videos/:channelId", handlers.Dashboard.Videos)
	}

	return router
}
