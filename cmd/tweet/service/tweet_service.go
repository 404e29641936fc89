package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/tweet/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/ownership"
	"vidtube.com/pkg/utils"
)

const kindTweet = "Tweet"

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) CreateTweet(actorId int64, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.MissingField.WithMessage("Tweet content is required")
	}
	tweet := &model.Tweet{
		TweetId: utils.NextID(),
		UserId:  actorId,
		Content: content,
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateTweet failed")
	}
	mq.Emit(s.ctx, mq.NewEvent(mq.EventTweetCreated, actorId, constants.LikeTargetTweet, tweet.TweetId))
	return tweet, nil
}

// UserTweets lists the tweets of userId, newest first.
func (s *TweetService) UserTweets(userId int64) ([]*model.Tweet, error) {
	tweets, err := db.ListUserTweets(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListUserTweets failed")
	}
	if err = userdb.AttachTweetAuthors(s.ctx, tweets); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachTweetAuthors failed")
	}
	return tweets, nil
}

func (s *TweetService) UpdateTweet(actorId, tweetId int64, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.MissingField.WithMessage("Tweet content is required")
	}
	tweet, err := ownership.LoadOwned(s.ctx, kindTweet, tweetId, actorId, "update", db.GetTweet)
	if err != nil {
		return nil, err
	}
	tweet.Content = content
	if err = db.UpdateTweetContent(s.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateTweetContent failed")
	}
	return tweet, nil
}

func (s *TweetService) DeleteTweet(actorId, tweetId int64) error {
	if _, err := ownership.LoadOwned(s.ctx, kindTweet, tweetId, actorId, "delete", db.GetTweet); err != nil {
		return err
	}
	if err := db.DeleteTweetCascade(s.ctx, tweetId); err != nil {
		return errors.WithMessage(err, "dao.DeleteTweetCascade failed")
	}
	return nil
}
