package service

import "vidtube.com/cmd/model"

type ListVideosRequest struct {
	Query    string
	OwnerId  int64
	SortBy   string
	SortType string
	Page     int64
	Limit    int64
}

type VideoPage struct {
	Videos      []*model.Video `json:"videos"`
	TotalVideos int64          `json:"totalVideos"`
	Page        int64          `json:"page"`
	Limit       int64          `json:"limit"`
	TotalPages  int64          `json:"totalPages"`
}

// PublishVideoRequest carries an upload already spooled to FilePath.
type PublishVideoRequest struct {
	ActorId     int64
	Title       string
	Description string
	FilePath    string
	FileName    string
	ContentType string
}

// UpdateVideoRequest applies only the non-nil fields.
type UpdateVideoRequest struct {
	ActorId     int64
	VideoId     int64
	Title       *string
	Description *string
	Thumbnail   *string
}
