package server

import (
	"time"

	"vidhub/domain/repository"
	httpHandler "vidhub/interfaces/http"
	"vidhub/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	channelHandler httpHandler.IChannelHandler,
	videoHandler httpHandler.IVideoHandler,
	playlistHandler httpHandler.IPlaylistHandler,
	commentHandler httpHandler.ICommentHandler,
	searchHandler httpHandler.ISearchHandler,
	userRepository repository.IUser,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.Auth(userRepository, secretKey)

	authGroup := router.Group("api/auth")
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
		authGroup.GET("/check-email", userHandler.CheckEmail)
		authGroup.POST("/forget-password", userHandler.ForgetPassword)
	}

	users := router.Group("api/users", auth)
	{
		users.GET("/me", userHandler.GetProfile)
		users.PUT("/default-channel", userHandler.SetDefaultChannel)
		users.GET("/history", userHandler.GetHistory)
		users.DELETE("/history", userHandler.ClearHistory)
		users.DELETE("/history/:videoId", userHandler.RemoveFromHistory)
		users.GET("/liked-videos", userHandler.GetLikedVideos)
		users.DELETE("/liked-videos/:videoId", userHandler.RemoveFromLikedVideos)
		users.GET("/watch-later", userHandler.GetWatchLater)
		users.DELETE("/watch-later/:videoId", userHandler.RemoveFromWatchLater)
		users.GET("/subscriptions", channelHandler.GetSubscribed)
	}

	channels := router.Group("api/channels")
	{
		channels.GET("/:channelId", channelHandler.Get)
		channels.POST("", auth, channelHandler.Create)
		channels.GET("", auth, channelHandler.GetMine)
		channels.PUT("/:channelId", auth, channelHandler.Update)
		channels.DELETE("/:channelId", auth, channelHandler.Delete)
		channels.POST("/:channelId/subscribe", auth, channelHandler.Subscribe)
		channels.POST("/:channelId/unsubscribe", auth, channelHandler.Unsubscribe)
	}

	videos := router.Group("api/videos")
	{
		videos.GET("", videoHandler.GetAll)
		videos.GET("/:videoId", videoHandler.Get)
		videos.POST("", auth, videoHandler.Upload)
		videos.PUT("/:videoId", auth, videoHandler.Update)
		videos.DELETE("/:videoId", auth, videoHandler.Delete)
		videos.POST("/:videoId/like", auth, videoHandler.ToggleLike)
		videos.POST("/:videoId/dislike", auth, videoHandler.ToggleDislike)
		videos.POST("/:videoId/view", auth, videoHandler.AddView)
		videos.POST("/:videoId/history", auth, videoHandler.AddToHistory)
		videos.POST("/:videoId/watch-later", auth, videoHandler.ToggleWatchLater)
	}

	comments := router.Group("api/comments", auth)
	{
		comments.POST("/:videoId", commentHandler.Add)
		comments.DELETE("/:videoId/:commentId", commentHandler.Delete)
	}

	playlists := router.Group("api/playlists", auth)
	{
		playlists.POST("", playlistHandler.Create)
		playlists.GET("", playlistHandler.GetMine)
		playlists.POST("/:playlistId/videos", playlistHandler.AddVideo)
		playlists.DELETE("/:playlistId/videos", playlistHandler.RemoveVideo)
		playlists.PUT("/:playlistId", playlistHandler.Update)
		playlists.DELETE("/:playlistId", playlistHandler.Delete)
	}

	search := router.Group("api/search")
	{
		search.GET("/suggestions", searchHandler.Suggest)
		search.GET("", searchHandler.Search)
	}

	return router
}
