package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/playlist/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/ownership"
	"vidtube.com/pkg/utils"
)

const kindPlaylist = "Playlist"

// UpdatePlaylistRequest applies only the non-nil fields.
type UpdatePlaylistRequest struct {
	ActorId     int64
	PlaylistId  int64
	Name        *string
	Description *string
}

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (s *PlaylistService) CreatePlaylist(actorId int64, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errno.MissingField.WithMessage("Playlist name is required")
	}
	playlist := &model.Playlist{
		PlaylistId:  utils.NextID(),
		OwnerId:     actorId,
		Name:        name,
		Description: description,
		Videos:      []*model.Video{},
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dao.CreatePlaylist failed")
	}
	return playlist, nil
}

func (s *PlaylistService) UserPlaylists(userId int64) ([]*model.Playlist, error) {
	playlists, err := db.ListUserPlaylists(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListUserPlaylists failed")
	}
	if err = s.fill(playlists...); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (s *PlaylistService) GetPlaylist(playlistId int64) (*model.Playlist, error) {
	playlist, err := ownership.Load(s.ctx, kindPlaylist, playlistId, db.GetPlaylist)
	if err != nil {
		return nil, err
	}
	if err = s.fill(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) UpdatePlaylist(req *UpdatePlaylistRequest) (*model.Playlist, error) {
	playlist, err := ownership.LoadOwned(s.ctx, kindPlaylist, req.PlaylistId, req.ActorId, "update", db.GetPlaylist)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errno.MissingField.WithMessage("Playlist name cannot be empty")
		}
		playlist.Name = name
	}
	if req.Description != nil {
		playlist.Description = *req.Description
	}
	if err = db.UpdatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdatePlaylist failed")
	}
	if err = s.fill(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(actorId, playlistId int64) error {
	if _, err := ownership.LoadOwned(s.ctx, kindPlaylist, playlistId, actorId, "delete", db.GetPlaylist); err != nil {
		return err
	}
	if err := db.DeletePlaylistCascade(s.ctx, playlistId); err != nil {
		return errors.WithMessage(err, "dao.DeletePlaylistCascade failed")
	}
	return nil
}

// AddVideo appends the video unless the playlist already holds it.
func (s *PlaylistService) AddVideo(actorId, playlistId, videoId int64) (*model.Playlist, error) {
	playlist, err := ownership.LoadOwned(s.ctx, kindPlaylist, playlistId, actorId, "modify", db.GetPlaylist)
	if err != nil {
		return nil, err
	}
	exist, err := videodb.CheckVideoVisible(s.ctx, videoId, actorId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckVideoVisible failed")
	}
	if !exist {
		return nil, errno.NotFound.WithMessage("Video not found")
	}
	if err = db.AddVideo(s.ctx, playlistId, videoId); err != nil {
		return nil, errors.WithMessage(err, "dao.AddVideo failed")
	}
	mq.Emit(s.ctx, mq.NewEvent(mq.EventPlaylistChanged, actorId, constants.LikeTargetVideo, videoId))
	if err = s.fill(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// RemoveVideo drops the video; a video that is not in the playlist is not an
// error.
func (s *PlaylistService) RemoveVideo(actorId, playlistId, videoId int64) (*model.Playlist, error) {
	playlist, err := ownership.LoadOwned(s.ctx, kindPlaylist, playlistId, actorId, "modify", db.GetPlaylist)
	if err != nil {
		return nil, err
	}
	if err = db.RemoveVideo(s.ctx, playlistId, videoId); err != nil {
		return nil, errors.WithMessage(err, "dao.RemoveVideo failed")
	}
	mq.Emit(s.ctx, mq.NewEvent(mq.EventPlaylistChanged, actorId, constants.LikeTargetVideo, videoId))
	if err = s.fill(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// fill attaches owners and the ordered member videos.
func (s *PlaylistService) fill(playlists ...*model.Playlist) error {
	if len(playlists) == 0 {
		return nil
	}
	if err := userdb.AttachPlaylistOwners(s.ctx, playlists); err != nil {
		return errors.WithMessage(err, "dao.AttachPlaylistOwners failed")
	}
	ids := make([]int64, 0, len(playlists))
	for _, p := range playlists {
		ids = append(ids, p.PlaylistId)
	}
	members, err := db.ListPlaylistVideoIds(s.ctx, ids)
	if err != nil {
		return errors.WithMessage(err, "dao.ListPlaylistVideoIds failed")
	}
	for _, p := range playlists {
		videos, err := videodb.MGetVideos(s.ctx, members[p.PlaylistId])
		if err != nil {
			return errors.WithMessage(err, "dao.MGetVideos failed")
		}
		// videos unpublished by someone else drop out of the playlist view
		p.Videos = videos[:0]
		for _, v := range videos {
			if v.VisibleTo(p.OwnerId) {
				p.Videos = append(p.Videos, v)
			}
		}
	}
	return nil
}
