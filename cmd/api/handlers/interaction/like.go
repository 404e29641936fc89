package handlers

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/constants"
)

// likeToggle builds the handler for one target kind. param names the path
// parameter, noun is used in the response message.
func likeToggle(targetType, param, noun string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		targetId, err := common.PathID(c, param)
		if err != nil {
			common.SendError(ctx, c, err)
			return
		}
		actor, err := common.ActingUser(c)
		if err != nil {
			common.SendError(ctx, c, err)
			return
		}
		res, err := service.NewLikeService(ctx).ToggleLike(actor, targetType, targetId)
		if err != nil {
			common.SendError(ctx, c, err)
			return
		}
		if !res.Liked {
			common.SendResponse(c, http.StatusOK, common.Empty, noun+" unliked")
			return
		}
		common.SendResponse(c, http.StatusCreated, res.Like, noun+" liked")
	}
}

var (
	ToggleVideoLike   = likeToggle(constants.LikeTargetVideo, "videoId", "Video")
	ToggleCommentLike = likeToggle(constants.LikeTargetComment, "commentId", "Comment")
	ToggleTweetLike   = likeToggle(constants.LikeTargetTweet, "tweetId", "Tweet")
)

func LikedVideos(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	videos, err := service.NewLikeService(ctx).LikedVideos(actor)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
