package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/utils"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrap(err, "CreateComment failed")
	}
	return nil
}

// GetComment returns gorm.ErrRecordNotFound when absent.
func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func CheckCommentExist(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckCommentExist failed, comment_id=%d", commentId)
	}
	return count > 0, nil
}

// ListVideoComments pages through the comments of a video, newest first.
func ListVideoComments(ctx context.Context, videoId, page, limit int64) ([]*model.Comment, int64, error) {
	page, limit = utils.NormalizePage(page, limit)
	var total int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListVideoComments count failed")
	}
	comments := make([]*model.Comment, 0, limit)
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).
		Order("created_at DESC, comment_id DESC").
		Offset(utils.Offset(page, limit)).Limit(int(limit)).Find(&comments).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListVideoComments failed")
	}
	return comments, total, nil
}

func UpdateCommentContent(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Model(comment).Select("content", "updated_at").Updates(comment).Error; err != nil {
		return errors.Wrapf(err, "UpdateCommentContent failed, comment_id=%d", comment.CommentId)
	}
	return nil
}

// DeleteCommentCascade removes the comment and the likes pointing at it.
func DeleteCommentCascade(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", constants.LikeTargetComment, commentId).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete comment likes")
		}
		if err := tx.Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrap(err, "delete comment")
		}
		return nil
	})
}
