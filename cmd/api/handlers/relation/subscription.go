package handlers

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/relation/service"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	channelId, err := common.PathID(c, "channelId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	res, err := service.NewSubscriptionService(ctx).ToggleSubscription(actor, channelId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if !res.Subscribed {
		common.SendResponse(c, http.StatusOK, common.Empty, "Unsubscribed successfully")
		return
	}
	common.SendResponse(c, http.StatusCreated, res.Subscription, "Subscribed successfully")
}

func ListSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := common.PathID(c, "channelId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	subs, err := service.NewSubscriptionService(ctx).Subscribers(channelId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, subs, "Subscribers fetched successfully")
}

func ListSubscriptions(ctx context.Context, c *app.RequestContext) {
	// registered as /users/:userId/subscriptions next to the other user routes
	subscriberId, err := common.PathID(c, "userId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	channels, err := service.NewSubscriptionService(ctx).SubscribedChannels(subscriberId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
