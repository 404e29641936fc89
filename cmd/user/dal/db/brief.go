package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func AttachVideoOwners(ctx context.Context, videos []*model.Video) error {
	ids := make([]int64, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.OwnerId)
	}
	briefs, err := MGetUserBriefs(ctx, ids)
	if err != nil {
		return err
	}
	for _, v := range videos {
		v.Owner = briefs[v.OwnerId]
	}
	return nil
}

func AttachCommentAuthors(ctx context.Context, comments []*model.Comment) error {
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.UserId)
	}
	briefs, err := MGetUserBriefs(ctx, ids)
	if err != nil {
		return err
	}
	for _, c := range comments {
		c.Author = briefs[c.UserId]
	}
	return nil
}

func AttachTweetAuthors(ctx context.Context, tweets []*model.Tweet) error {
	ids := make([]int64, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.UserId)
	}
	briefs, err := MGetUserBriefs(ctx, ids)
	if err != nil {
		return err
	}
	for _, t := range tweets {
		t.Author = briefs[t.UserId]
	}
	return nil
}

func AttachPlaylistOwners(ctx context.Context, playlists []*model.Playlist) error {
	ids := make([]int64, 0, len(playlists))
	for _, p := range playlists {
		ids = append(ids, p.OwnerId)
	}
	briefs, err := MGetUserBriefs(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range playlists {
		p.Owner = briefs[p.OwnerId]
	}
	return nil
}

// AttachSubscriptionUsers fills both ends of each subscription.
func AttachSubscriptionUsers(ctx context.Context, subs []*model.Subscription) error {
	ids := make([]int64, 0, 2*len(subs))
	for _, s := range subs {
		ids = append(ids, s.SubscriberId, s.ChannelId)
	}
	briefs, err := MGetUserBriefs(ctx, ids)
	if err != nil {
		return err
	}
	for _, s := range subs {
		s.Subscriber = briefs[s.SubscriberId]
		s.Channel = briefs[s.ChannelId]
	}
	return nil
}
