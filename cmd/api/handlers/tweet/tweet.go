package handlers

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/tweet/service"
	"vidtube.com/pkg/errno"
)

type TweetParam struct {
	Content string `json:"content" form:"content"`
}

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param TweetParam
	if err = c.BindAndValidate(&param); err != nil {
		common.SendError(ctx, c, errno.ErrBind)
		return
	}
	tweet, err := service.NewTweetService(ctx).CreateTweet(actor, param.Content)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusCreated, tweet, "Tweet created successfully")
}

func UserTweets(ctx context.Context, c *app.RequestContext) {
	userId, err := common.PathID(c, "userId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	tweets, err := service.NewTweetService(ctx).UserTweets(userId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, tweets, "User tweets fetched successfully")
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := common.PathID(c, "tweetId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param TweetParam
	if err = c.BindAndValidate(&param); err != nil {
		common.SendError(ctx, c, errno.ErrBind)
		return
	}
	tweet, err := service.NewTweetService(ctx).UpdateTweet(actor, tweetId, param.Content)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, tweet, "Tweet updated successfully")
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := common.PathID(c, "tweetId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if err = service.NewTweetService(ctx).DeleteTweet(actor, tweetId); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, common.Empty, "Tweet deleted successfully")
}
