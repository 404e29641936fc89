package handlers

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/errno"
)

type CommentParam struct {
	Content string `json:"content" form:"content"`
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathID(c, "videoId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	page, limit, err := common.PageParams(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewCommentService(ctx).ListComments(videoId, page, limit)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, resp, "Comments fetched successfully")
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathID(c, "videoId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param CommentParam
	if err = c.BindAndValidate(&param); err != nil {
		common.SendError(ctx, c, errno.ErrBind)
		return
	}
	comment, err := service.NewCommentService(ctx).AddComment(actor, videoId, param.Content)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusCreated, comment, "Comment added successfully")
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := common.PathID(c, "commentId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param CommentParam
	if err = c.BindAndValidate(&param); err != nil {
		common.SendError(ctx, c, errno.ErrBind)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(actor, commentId, param.Content)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, comment, "Comment updated successfully")
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := common.PathID(c, "commentId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if err = service.NewCommentService(ctx).DeleteComment(actor, commentId); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, common.Empty, "Comment deleted successfully")
}
