package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	dashboard "vidtube.com/cmd/api/handlers/dashboard"
	interaction "vidtube.com/cmd/api/handlers/interaction"
	playlist "vidtube.com/cmd/api/handlers/playlist"
	relation "vidtube.com/cmd/api/handlers/relation"
	tweet "vidtube.com/cmd/api/handlers/tweet"
	user "vidtube.com/cmd/api/handlers/user"
	video "vidtube.com/cmd/api/handlers/video"
	"vidtube.com/pkg/jwt"
)

func register(r *server.Hertz) {
	likes := r.Group("/likes", jwt.Auth())
	{
		likes.POST("/toggle/v/:video_id", interaction.ToggleVideoLike)
		likes.POST("/toggle/c/:comment_id", interaction.ToggleCommentLike)
		likes.POST("/toggle/t/:tweet_id", interaction.ToggleTweetLike)
		likes.GET("/videos", interaction.GetLikedVideos)
	}

	subscriptions := r.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channel_id", jwt.Auth(), relation.ToggleSubscription)
		subscriptions.GET("/u/:channel_id", relation.GetChannelSubscribers)
		subscriptions.GET("/c/:subscriber_id", relation.GetSubscribedChannels)
	}

	dash := r.Group("/dashboard", jwt.Auth())
	{
		dash.GET("/stats", dashboard.GetChannelStats)
		dash.GET("/videos", dashboard.GetChannelVideos)
	}

	videos := r.Group("/videos")
	{
		videos.GET("", video.ListVideos)
		videos.GET("/:video_id", video.GetVideoById)
		videos.POST("/visit/:video_id", video.VideoVisit)
		videos.POST("", jwt.Auth(), video.PublishVideo)
		videos.PUT("/:video_id", jwt.Auth(), video.UpdateVideo)
		videos.DELETE("/:video_id", jwt.Auth(), video.DeleteVideo)
		videos.PATCH("/toggle/publish/:video_id", jwt.Auth(), video.TogglePublishStatus)
	}

	comments := r.Group("/comments")
	{
		comments.GET("/:video_id", interaction.ListComments)
		comments.POST("/:video_id", jwt.Auth(), interaction.AddComment)
		comments.PUT("/c/:comment_id", jwt.Auth(), interaction.UpdateComment)
		comments.DELETE("/c/:comment_id", jwt.Auth(), interaction.DeleteComment)
	}

	tweets := r.Group("/tweets")
	{
		tweets.POST("", jwt.Auth(), tweet.CreateTweet)
		tweets.GET("/user/:user_id", tweet.GetUserTweets)
		tweets.PUT("/:tweet_id", jwt.Auth(), tweet.UpdateTweet)
		tweets.DELETE("/:tweet_id", jwt.Auth(), tweet.DeleteTweet)
	}

	playlists := r.Group("/playlists")
	{
		playlists.POST("", jwt.Auth(), playlist.CreatePlaylist)
		playlists.GET("/:playlist_id", playlist.GetPlaylistById)
		playlists.GET("/user/:user_id", playlist.GetUserPlaylists)
		playlists.PUT("/:playlist_id", jwt.Auth(), playlist.UpdatePlaylist)
		playlists.DELETE("/:playlist_id", jwt.Auth(), playlist.DeletePlaylist)
		playlists.PATCH("/add/:video_id/:playlist_id", jwt.Auth(), playlist.AddVideoToPlaylist)
		playlists.PATCH("/remove/:video_id/:playlist_id", jwt.Auth(), playlist.RemoveVideoFromPlaylist)
	}

	users := r.Group("/users")
	{
		users.POST("/register", user.Register)
		users.POST("/login", user.Login)
		users.POST("/refresh", user.RefreshTokens)
		users.POST("/logout", jwt.Auth(), user.Logout)
		users.GET("/c/:username", jwt.OptionalAuth(), user.GetChannelProfile)
	}
}
