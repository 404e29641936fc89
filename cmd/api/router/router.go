package router

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/route"

	"vidtube.com/cmd/api/handlers/common"
	dashboard "vidtube.com/cmd/api/handlers/dashboard"
	interaction "vidtube.com/cmd/api/handlers/interaction"
	playlist "vidtube.com/cmd/api/handlers/playlist"
	relation "vidtube.com/cmd/api/handlers/relation"
	tweet "vidtube.com/cmd/api/handlers/tweet"
	user "vidtube.com/cmd/api/handlers/user"
	video "vidtube.com/cmd/api/handlers/video"
)

// Auth bundles the identity middleware with the login endpoints backed by it.
// Optional identifies the caller when it can and never rejects.
type Auth struct {
	Required app.HandlerFunc
	Optional app.HandlerFunc
	Login    app.HandlerFunc
	Refresh  app.HandlerFunc
}

func Register(r *route.Engine, auth Auth) {
	r.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		common.SendResponse(c, http.StatusOK, map[string]string{"message": "pong"}, "pong")
	})

	v1 := r.Group("/api/v1")
	a := auth.Required
	o := auth.Optional
	if o == nil {
		o = func(ctx context.Context, c *app.RequestContext) { c.Next(ctx) }
	}

	users := v1.Group("/users")
	users.POST("/register", user.Register)
	if auth.Login != nil {
		users.POST("/login", auth.Login)
	}
	if auth.Refresh != nil {
		users.GET("/refresh-token", auth.Refresh)
	}
	users.GET("/me/liked-videos", a, interaction.LikedVideos)
	users.GET("/:userId/playlists", playlist.UserPlaylists)
	users.GET("/:userId/tweets", tweet.UserTweets)
	users.GET("/:userId/subscriptions", relation.ListSubscriptions)

	videos := v1.Group("/videos")
	videos.GET("", video.ListVideos)
	videos.POST("", a, video.PublishVideo)
	videos.GET("/:videoId", o, video.GetVideo)
	videos.PATCH("/:videoId", a, video.UpdateVideo)
	videos.DELETE("/:videoId", a, video.DeleteVideo)
	videos.PATCH("/:videoId/toggle-publish", a, video.TogglePublish)
	videos.GET("/:videoId/comments", interaction.ListComments)
	videos.POST("/:videoId/comments", a, interaction.AddComment)
	videos.POST("/:videoId/like", a, interaction.ToggleVideoLike)

	comments := v1.Group("/comments")
	comments.PATCH("/:commentId", a, interaction.UpdateComment)
	comments.DELETE("/:commentId", a, interaction.DeleteComment)
	comments.POST("/:commentId/like", a, interaction.ToggleCommentLike)

	tweets := v1.Group("/tweets")
	tweets.POST("", a, tweet.CreateTweet)
	tweets.PATCH("/:tweetId", a, tweet.UpdateTweet)
	tweets.DELETE("/:tweetId", a, tweet.DeleteTweet)
	tweets.POST("/:tweetId/like", a, interaction.ToggleTweetLike)

	playlists := v1.Group("/playlists")
	playlists.POST("", a, playlist.CreatePlaylist)
	playlists.GET("/:playlistId", playlist.GetPlaylist)
	playlists.PATCH("/:playlistId", a, playlist.UpdatePlaylist)
	playlists.DELETE("/:playlistId", a, playlist.DeletePlaylist)
	playlists.POST("/:playlistId/videos/:videoId", a, playlist.AddVideoToPlaylist)
	playlists.DELETE("/:playlistId/videos/:videoId", a, playlist.RemoveVideoFromPlaylist)

	channels := v1.Group("/channels")
	channels.POST("/:channelId/subscribe", a, relation.ToggleSubscription)
	channels.GET("/:channelId/subscribers", relation.ListSubscribers)

	board := v1.Group("/dashboard", a)
	board.GET("/stats", dashboard.ChannelStats)
	board.GET("/videos", dashboard.ChannelVideos)
}
