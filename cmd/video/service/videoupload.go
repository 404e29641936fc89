package service

import (
	"context"
	"os"
	"path/filepath"
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
	"vidtube.com/pkg/utils"
)

// Thumbnailer extracts a still frame and reads the duration of a video file.
type Thumbnailer interface {
	Thumbnail(videoPath, outputDir string) (string, error)
	Duration(videoPath string) (float64, error)
}

type ffmpegThumbnailer struct{}

func (ffmpegThumbnailer) Thumbnail(videoPath, outputDir string) (string, error) {
	return utils.GetVideoThumbnail(videoPath, outputDir)
}

func (ffmpegThumbnailer) Duration(videoPath string) (float64, error) {
	return utils.MediaDuration(videoPath)
}

// Frames is swapped out by tests that have no ffmpeg binary.
var Frames Thumbnailer = ffmpegThumbnailer{}

type VideoUploadService struct {
	ctx context.Context
}

func NewVideoUploadService(ctx context.Context) *VideoUploadService {
	return &VideoUploadService{ctx: ctx}
}

// PublishVideo uploads the spooled file, best-effort extracts a thumbnail and
// the duration, then stores the record. The uploaded objects are removed when
// the record cannot be written.
func (s *VideoUploadService) PublishVideo(req *PublishVideoRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errno.MissingField.WithMessage("Title is required")
	}
	if req.FilePath == "" {
		return nil, errno.MissingField.WithMessage("Video file is required")
	}
	if oss.Default == nil {
		return nil, errno.UpstreamErr.WithMessage("Error uploading video")
	}

	videoId := utils.NextID()
	contentType := req.ContentType
	if contentType == "" {
		contentType = "video/mp4"
	}
	stored, err := oss.Default.Upload(s.ctx, req.FilePath, constants.VideoBucket,
		oss.ObjectName("video", videoId, "video", req.FileName), contentType)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "upload video failed: %v", err)
		return nil, errno.UpstreamErr.WithMessage("Error uploading video")
	}

	video := &model.Video{
		VideoId:     videoId,
		OwnerId:     req.ActorId,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		VideoUrl:    stored.URL,
		StorageId:   stored.StorageID,
		IsPublished: true,
	}
	if video.Duration, err = Frames.Duration(req.FilePath); err != nil {
		hlog.CtxWarnf(s.ctx, "read duration of video %d: %v", videoId, err)
	}
	s.attachThumbnail(video, req.FilePath)

	if err = db.CreateVideo(s.ctx, video); err != nil {
		removeMedia(s.ctx, video)
		return nil, errors.WithMessage(err, "dao.CreateVideo failed")
	}
	if err = userdb.AttachVideoOwners(s.ctx, []*model.Video{video}); err != nil {
		hlog.CtxWarnf(s.ctx, "attach owner of video %d: %v", videoId, err)
	}
	mq.Emit(s.ctx, mq.NewEvent(mq.EventVideoPublished, req.ActorId, constants.LikeTargetVideo, videoId))
	return video, nil
}

func (s *VideoUploadService) attachThumbnail(video *model.Video, videoPath string) {
	dir, err := os.MkdirTemp("", "vidtube-thumb-*")
	if err != nil {
		hlog.CtxWarnf(s.ctx, "thumbnail dir: %v", err)
		return
	}
	defer os.RemoveAll(dir)

	frame, err := Frames.Thumbnail(videoPath, dir)
	if err != nil {
		hlog.CtxWarnf(s.ctx, "thumbnail of video %d: %v", video.VideoId, err)
		return
	}
	stored, err := oss.Default.Upload(s.ctx, frame, constants.ThumbnailBucket,
		oss.ObjectName("picture", video.VideoId, "cover", filepath.Base(frame)), "image/jpeg")
	if err != nil {
		hlog.CtxWarnf(s.ctx, "upload thumbnail of video %d: %v", video.VideoId, err)
		return
	}
	video.ThumbnailUrl = stored.URL
	video.ThumbnailId = stored.StorageID
}

func removeMedia(ctx context.Context, video *model.Video) {
	if oss.Default == nil {
		return
	}
	if err := oss.Default.Remove(ctx, constants.VideoBucket, video.StorageId); err != nil {
		hlog.CtxWarnf(ctx, "remove video object %s: %v", video.StorageId, err)
	}
	if err := oss.Default.Remove(ctx, constants.ThumbnailBucket, video.ThumbnailId); err != nil {
		hlog.CtxWarnf(ctx, "remove thumbnail object %s: %v", video.ThumbnailId, err)
	}
}
