package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrap(err, "CreateTweet failed")
	}
	return nil
}

// GetTweet returns gorm.ErrRecordNotFound when absent.
func GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).First(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func CheckTweetExist(ctx context.Context, tweetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckTweetExist failed, tweet_id=%d", tweetId)
	}
	return count > 0, nil
}

func ListUserTweets(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).
		Order("created_at DESC, tweet_id DESC").Find(&tweets).Error; err != nil {
		return nil, errors.Wrap(err, "ListUserTweets failed")
	}
	return tweets, nil
}

func UpdateTweetContent(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Model(tweet).Select("content", "updated_at").Updates(tweet).Error; err != nil {
		return errors.Wrapf(err, "UpdateTweetContent failed, tweet_id=%d", tweet.TweetId)
	}
	return nil
}

// DeleteTweetCascade removes the tweet and the likes pointing at it.
func DeleteTweetCascade(ctx context.Context, tweetId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", constants.LikeTargetTweet, tweetId).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete tweet likes")
		}
		if err := tx.Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
			return errors.Wrap(err, "delete tweet")
		}
		return nil
	})
}
