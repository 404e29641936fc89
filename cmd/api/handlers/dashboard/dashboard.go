package handlers

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/dashboard/service"
)

func ChannelStats(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	stats, err := service.NewDashboardService(ctx).ChannelStats(actor)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

func ChannelVideos(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	videos, err := service.NewDashboardService(ctx).ChannelVideos(actor)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
