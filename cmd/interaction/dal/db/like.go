package db

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

// FindLike returns (nil, nil) when the user has not liked the target.
func FindLike(ctx context.Context, userId int64, targetType string, targetId int64) (*model.Like, error) {
	likes := make([]*model.Like, 0, 1)
	if err := DB.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
		Limit(1).Find(&likes).Error; err != nil {
		return nil, errors.Wrap(err, "FindLike failed")
	}
	if len(likes) == 0 {
		return nil, nil
	}
	return likes[0], nil
}

// CreateLike keeps the driver error in the chain, errors.Is(err,
// gorm.ErrDuplicatedKey) holds when a concurrent toggle won the insert.
func CreateLike(ctx context.Context, like *model.Like) error {
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		return errors.Wrap(err, "CreateLike failed")
	}
	return nil
}

func DeleteLike(ctx context.Context, likeId int64) error {
	if err := DB.WithContext(ctx).Where("like_id = ?", likeId).Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteLike failed, like_id=%d", likeId)
	}
	return nil
}

// ListLikedVideoIds returns the videos a user liked, most recent like first.
func ListLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ?", userId, constants.LikeTargetVideo).
		Order("created_at DESC, like_id DESC").Pluck("target_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "ListLikedVideoIds failed")
	}
	return ids, nil
}

func CountLikes(ctx context.Context, targetType string, targetId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetId).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "CountLikes failed")
	}
	return count, nil
}

// CountVideoLikesByOwner counts the likes on every video owned by ownerId.
func CountVideoLikesByOwner(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	owned := DB.WithContext(ctx).Model(&model.Video{}).Select("video_id").Where("owner_id = ?", ownerId)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id IN (?)", constants.LikeTargetVideo, owned).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "CountVideoLikesByOwner failed")
	}
	return count, nil
}
