package service

import (
	"context"

	"github.com/pkg/errors"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	relationdb "vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
)

type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// ChannelStats reads each figure independently; they are not a consistent
// snapshot.
func (s *DashboardService) ChannelStats(channelId int64) (*ChannelStats, error) {
	var (
		stats ChannelStats
		err   error
	)
	if stats.TotalVideos, err = videodb.CountVideosByOwner(s.ctx, channelId); err != nil {
		return nil, errors.WithMessage(err, "dao.CountVideosByOwner failed")
	}
	if stats.TotalViews, err = videodb.SumViewsByOwner(s.ctx, channelId); err != nil {
		return nil, errors.WithMessage(err, "dao.SumViewsByOwner failed")
	}
	if stats.TotalSubscribers, err = relationdb.CountSubscribers(s.ctx, channelId); err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribers failed")
	}
	if stats.TotalLikes, err = interactiondb.CountVideoLikesByOwner(s.ctx, channelId); err != nil {
		return nil, errors.WithMessage(err, "dao.CountVideoLikesByOwner failed")
	}
	return &stats, nil
}

// ChannelVideos lists every video of the channel, published or not, newest
// first.
func (s *DashboardService) ChannelVideos(channelId int64) ([]*model.Video, error) {
	videos, err := videodb.ListVideosByOwner(s.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListVideosByOwner failed")
	}
	if err = userdb.AttachVideoOwners(s.ctx, videos); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachVideoOwners failed")
	}
	return videos, nil
}
