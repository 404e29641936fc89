package service

import (
	"context"

	"github.com/pkg/errors"

	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/utils"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// ListVideos pages through published videos.
func (s *VideoListService) ListVideos(req *ListVideosRequest) (*VideoPage, error) {
	page, limit := utils.NormalizePage(req.Page, req.Limit)
	videos, total, err := db.ListVideos(s.ctx, &db.VideoQuery{
		Keyword:       req.Query,
		OwnerId:       req.OwnerId,
		PublishedOnly: true,
		SortBy:        req.SortBy,
		SortType:      req.SortType,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListVideos failed")
	}
	if err = userdb.AttachVideoOwners(s.ctx, videos); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachVideoOwners failed")
	}
	return &VideoPage{
		Videos:      videos,
		TotalVideos: total,
		Page:        page,
		Limit:       limit,
		TotalPages:  utils.TotalPages(total, limit),
	}, nil
}
