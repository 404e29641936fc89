package service

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/ownership"
)

const kindVideo = "Video"

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

// GetVideo counts a view and returns the video with its owner. An
// unpublished video is reported missing to anyone but its owner; viewerId 0
// is an anonymous viewer.
func (s *VideoService) GetVideo(viewerId, videoId int64) (*model.Video, error) {
	video, err := ownership.Load(s.ctx, kindVideo, videoId, db.GetVideo)
	if err != nil {
		return nil, err
	}
	if !video.VisibleTo(viewerId) {
		return nil, errno.NotFound.WithMessage("Video not found")
	}
	if err = db.IncrVideoViews(s.ctx, videoId); err != nil {
		return nil, errors.WithMessage(err, "dao.IncrVideoViews failed")
	}
	video.Views++
	if err = userdb.AttachVideoOwners(s.ctx, []*model.Video{video}); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachVideoOwners failed")
	}
	return video, nil
}

func (s *VideoService) UpdateVideo(req *UpdateVideoRequest) (*model.Video, error) {
	video, err := ownership.LoadOwned(s.ctx, kindVideo, req.VideoId, req.ActorId, "update", db.GetVideo)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errno.MissingField.WithMessage("Title cannot be empty")
		}
		video.Title = title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	var staleThumbnail string
	if req.Thumbnail != nil && *req.Thumbnail != video.ThumbnailUrl {
		staleThumbnail = video.ThumbnailId
		video.ThumbnailUrl = *req.Thumbnail
		video.ThumbnailId = ""
	}
	if err = db.UpdateVideoMeta(s.ctx, video); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateVideoMeta failed")
	}
	if staleThumbnail != "" && oss.Default != nil {
		if err = oss.Default.Remove(s.ctx, constants.ThumbnailBucket, staleThumbnail); err != nil {
			hlog.CtxWarnf(s.ctx, "remove replaced thumbnail %s: %v", staleThumbnail, err)
		}
	}
	if err = userdb.AttachVideoOwners(s.ctx, []*model.Video{video}); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachVideoOwners failed")
	}
	return video, nil
}

// DeleteVideo removes the video and everything that points at it, then the
// stored media.
func (s *VideoService) DeleteVideo(actorId, videoId int64) error {
	video, err := ownership.LoadOwned(s.ctx, kindVideo, videoId, actorId, "delete", db.GetVideo)
	if err != nil {
		return err
	}
	if err = db.DeleteVideoCascade(s.ctx, videoId); err != nil {
		return errors.WithMessage(err, "dao.DeleteVideoCascade failed")
	}
	removeMedia(s.ctx, video)
	mq.Emit(s.ctx, mq.NewEvent(mq.EventVideoDeleted, actorId, constants.LikeTargetVideo, videoId))
	return nil
}

func (s *VideoService) TogglePublish(actorId, videoId int64) (*model.Video, error) {
	video, err := ownership.LoadOwned(s.ctx, kindVideo, videoId, actorId, "modify", db.GetVideo)
	if err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	if err = db.UpdatePublished(s.ctx, videoId, video.IsPublished); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdatePublished failed")
	}
	return video, nil
}
