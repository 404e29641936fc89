package service

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/lock"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/toggle"
	"vidtube.com/pkg/utils"
)

// targetKind.exist answers for the given actor; unpublished videos exist
// for their owner only.
type targetKind struct {
	name  string
	exist func(ctx context.Context, targetId, actorId int64) (bool, error)
}

func anyActor(check func(context.Context, int64) (bool, error)) func(context.Context, int64, int64) (bool, error) {
	return func(ctx context.Context, targetId, _ int64) (bool, error) {
		return check(ctx, targetId)
	}
}

var likeTargets = map[string]targetKind{
	constants.LikeTargetVideo:   {name: "Video", exist: videodb.CheckVideoVisible},
	constants.LikeTargetComment: {name: "Comment", exist: anyActor(db.CheckCommentExist)},
	constants.LikeTargetTweet:   {name: "Tweet", exist: anyActor(tweetdb.CheckTweetExist)},
}

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

// ToggleLike likes the target when the actor has not, and unlikes it
// otherwise.
func (s *LikeService) ToggleLike(actorId int64, targetType string, targetId int64) (*LikeResult, error) {
	kind, ok := likeTargets[targetType]
	if !ok {
		return nil, errno.ErrBind.WithMessagef("unknown like target %q", targetType)
	}
	exist, err := kind.exist(s.ctx, targetId, actorId)
	if err != nil {
		return nil, errors.WithMessage(err, "check like target failed")
	}
	if !exist {
		return nil, errno.NotFound.WithMessagef("%s not found", kind.name)
	}

	res, err := toggle.Do(s.ctx, lock.Key("like:"+targetType, actorId, targetId), toggle.Relation[model.Like]{
		Find: func(ctx context.Context) (*model.Like, error) {
			return db.FindLike(ctx, actorId, targetType, targetId)
		},
		Create: func(ctx context.Context) (*model.Like, error) {
			like := &model.Like{
				LikeId:     utils.NextID(),
				UserId:     actorId,
				TargetType: targetType,
				TargetId:   targetId,
			}
			return like, db.CreateLike(ctx, like)
		},
		Remove: func(ctx context.Context, like *model.Like) error {
			return db.DeleteLike(ctx, like.LikeId)
		},
	})
	if err != nil {
		return nil, errors.WithMessage(err, "toggle like failed")
	}

	if res.Added {
		mq.Emit(s.ctx, mq.NewEvent(mq.EventLikeAdded, actorId, targetType, targetId))
		return &LikeResult{Liked: true, Like: res.Record}, nil
	}
	mq.Emit(s.ctx, mq.NewEvent(mq.EventLikeRemoved, actorId, targetType, targetId))
	return &LikeResult{Liked: false}, nil
}

// LikedVideos returns the videos the actor liked, most recent like first.
// Likes whose video is gone or was unpublished by someone else are skipped.
func (s *LikeService) LikedVideos(actorId int64) ([]*model.Video, error) {
	ids, err := db.ListLikedVideoIds(s.ctx, actorId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListLikedVideoIds failed")
	}
	found, err := videodb.MGetVideos(s.ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.MGetVideos failed")
	}
	videos := found[:0]
	for _, v := range found {
		if v.VisibleTo(actorId) {
			videos = append(videos, v)
		}
	}
	if err = userdb.AttachVideoOwners(s.ctx, videos); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachVideoOwners failed")
	}
	return videos, nil
}
