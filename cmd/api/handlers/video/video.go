package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// UploadDir is where multipart uploads are spooled before they reach storage.
var UploadDir = os.TempDir()

type ListVideosParam struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

type UpdateVideoParam struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Thumbnail   *string `json:"thumbnail" form:"thumbnail"`
}

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.BindQuery(&param); err != nil {
		common.SendError(ctx, c, errno.ErrBind.WithMessage("page and limit must be integers"))
		return
	}
	req := &service.ListVideosRequest{
		Query:    param.Query,
		SortBy:   param.SortBy,
		SortType: param.SortType,
		Page:     param.Page,
		Limit:    param.Limit,
	}
	if param.UserId != "" {
		ownerId, err := utils.ParseID(param.UserId)
		if err != nil {
			common.SendError(ctx, c, errno.InvalidIdentifier.WithMessage("Invalid userId"))
			return
		}
		req.OwnerId = ownerId
	}
	page, err := service.NewVideoListService(ctx).ListVideos(req)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, page, "Videos fetched successfully")
}

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	req := &service.PublishVideoRequest{
		ActorId:     actor,
		Title:       string(c.FormValue("title")),
		Description: string(c.FormValue("description")),
	}
	if file, ferr := c.FormFile("video"); ferr == nil {
		spool, err := os.CreateTemp(UploadDir, "upload-*"+filepath.Ext(file.Filename))
		if err != nil {
			common.SendError(ctx, c, err)
			return
		}
		spool.Close()
		defer os.Remove(spool.Name())
		if err = c.SaveUploadedFile(file, spool.Name()); err != nil {
			hlog.CtxErrorf(ctx, "spool upload: %v", err)
			common.SendError(ctx, c, errno.UpstreamErr.WithMessage("Error uploading video"))
			return
		}
		req.FilePath = spool.Name()
		req.FileName = file.Filename
		req.ContentType = file.Header.Get("Content-Type")
	}

	video, err := service.NewVideoUploadService(ctx).PublishVideo(req)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusCreated, video, "Video published successfully")
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathID(c, "videoId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	video, err := service.NewVideoService(ctx).GetVideo(common.ViewerID(c), videoId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, video, "Video fetched successfully")
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
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
	var param UpdateVideoParam
	if err = c.BindAndValidate(&param); err != nil {
		common.SendError(ctx, c, errno.ErrBind)
		return
	}
	video, err := service.NewVideoService(ctx).UpdateVideo(&service.UpdateVideoRequest{
		ActorId:     actor,
		VideoId:     videoId,
		Title:       param.Title,
		Description: param.Description,
		Thumbnail:   param.Thumbnail,
	})
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, video, "Video updated successfully")
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
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
	if err = service.NewVideoService(ctx).DeleteVideo(actor, videoId); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, common.Empty, "Video deleted successfully")
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
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
	video, err := service.NewVideoService(ctx).TogglePublish(actor, videoId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	state := "unpublished"
	if video.IsPublished {
		state = "published"
	}
	common.SendResponse(c, http.StatusOK, video, "Video is now "+state)
}
