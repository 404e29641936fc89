package service

import (
	"context"
	"testing"

	"vidtube.com/cmd/dal"
	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	relationdb "vidtube.com/cmd/relation/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/database/dbtest"
	"vidtube.com/pkg/utils"
)

func TestChannelStatsEmpty(t *testing.T) {
	dal.Init(dbtest.New(t))

	stats, err := NewDashboardService(context.Background()).ChannelStats(utils.NextID())
	if err != nil {
		t.Fatal(err)
	}
	if *stats != (ChannelStats{}) {
		t.Fatalf("stats = %+v, want zeros", stats)
	}
}

func TestChannelStats(t *testing.T) {
	dal.Init(dbtest.New(t))
	ctx := context.Background()
	channel, fan := utils.NextID(), utils.NextID()

	var published, hidden *model.Video
	for i, pub := range []bool{true, false} {
		v := &model.Video{VideoId: utils.NextID(), OwnerId: channel, Title: "clip", IsPublished: pub, Views: int64(10 * (i + 1))}
		if err := videodb.CreateVideo(ctx, v); err != nil {
			t.Fatal(err)
		}
		if pub {
			published = v
		} else {
			hidden = v
		}
	}
	other := &model.Video{VideoId: utils.NextID(), OwnerId: fan, Title: "fan clip", Views: 99}
	if err := videodb.CreateVideo(ctx, other); err != nil {
		t.Fatal(err)
	}
	for _, target := range []int64{published.VideoId, hidden.VideoId, other.VideoId} {
		like := &model.Like{LikeId: utils.NextID(), UserId: fan, TargetType: constants.LikeTargetVideo, TargetId: target}
		if err := interactiondb.CreateLike(ctx, like); err != nil {
			t.Fatal(err)
		}
	}
	sub := &model.Subscription{SubscriptionId: utils.NextID(), SubscriberId: fan, ChannelId: channel}
	if err := relationdb.CreateSubscription(ctx, sub); err != nil {
		t.Fatal(err)
	}

	svc := NewDashboardService(ctx)
	stats, err := svc.ChannelStats(channel)
	if err != nil {
		t.Fatal(err)
	}
	want := ChannelStats{TotalVideos: 2, TotalViews: 30, TotalSubscribers: 1, TotalLikes: 2}
	if *stats != want {
		t.Fatalf("stats = %+v, want %+v", *stats, want)
	}

	videos, err := svc.ChannelVideos(channel)
	if err != nil || len(videos) != 2 || videos[0].VideoId != hidden.VideoId {
		t.Fatalf("ChannelVideos = %+v, %v", videos, err)
	}
}
