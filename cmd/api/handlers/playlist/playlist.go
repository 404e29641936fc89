package handlers

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/playlist/service"
	"vidtube.com/pkg/errno"
)

type CreatePlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type UpdatePlaylistParam struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param CreatePlaylistParam
	if err = c.BindAndValidate(&param); err != nil {
		common.SendError(ctx, c, errno.ErrBind)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(actor, param.Name, param.Description)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusCreated, playlist, "Playlist created successfully")
}

func UserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := common.PathID(c, "userId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).UserPlaylists(userId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, playlists, "User playlists fetched successfully")
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := common.PathID(c, "playlistId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).GetPlaylist(playlistId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := common.PathID(c, "playlistId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param UpdatePlaylistParam
	if err = c.BindAndValidate(&param); err != nil {
		common.SendError(ctx, c, errno.ErrBind)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(&service.UpdatePlaylistRequest{
		ActorId:     actor,
		PlaylistId:  playlistId,
		Name:        param.Name,
		Description: param.Description,
	})
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, playlist, "Playlist updated successfully")
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := common.PathID(c, "playlistId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActingUser(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if err = service.NewPlaylistService(ctx).DeletePlaylist(actor, playlistId); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, common.Empty, "Playlist deleted successfully")
}

// membership parses the playlist and video path parameters plus the actor.
func membership(c *app.RequestContext) (actor, playlistId, videoId int64, err error) {
	if playlistId, err = common.PathID(c, "playlistId"); err != nil {
		return
	}
	if videoId, err = common.PathID(c, "videoId"); err != nil {
		return
	}
	actor, err = common.ActingUser(c)
	return
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	actor, playlistId, videoId, err := membership(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).AddVideo(actor, playlistId, videoId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, playlist, "Video added to playlist")
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	actor, playlistId, videoId, err := membership(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).RemoveVideo(actor, playlistId, videoId)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusOK, playlist, "Video removed from playlist")
}
