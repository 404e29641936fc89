package service

import (
	"context"
	"testing"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/tweet/dal/db"
	"vidtube.com/pkg/database/dbtest"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

func code(err error) int64 {
	return errno.ConvertErr(err).ErrCode
}

func TestTweetService(t *testing.T) {
	dal.Init(dbtest.New(t))
	ctx := context.Background()
	svc := NewTweetService(ctx)
	alice, bob := utils.NextID(), utils.NextID()

	if _, err := svc.CreateTweet(alice, "\t"); code(err) != errno.MissingFieldCode {
		t.Fatalf("blank tweet: %v", err)
	}
	tweet, err := svc.CreateTweet(alice, " hello ")
	if err != nil || tweet.Content != "hello" {
		t.Fatalf("CreateTweet = %+v, %v", tweet, err)
	}

	t.Run("stranger cannot touch it", func(t *testing.T) {
		if _, err := svc.UpdateTweet(bob, tweet.TweetId, "pwned"); code(err) != errno.ForbiddenCode {
			t.Fatalf("update: %v", err)
		}
		if err := svc.DeleteTweet(bob, tweet.TweetId); code(err) != errno.ForbiddenCode {
			t.Fatalf("delete: %v", err)
		}
		got, _ := db.GetTweet(ctx, tweet.TweetId)
		if got.Content != "hello" {
			t.Fatalf("tweet changed: %q", got.Content)
		}
	})

	t.Run("author edits and deletes", func(t *testing.T) {
		updated, err := svc.UpdateTweet(alice, tweet.TweetId, "bye")
		if err != nil || updated.Content != "bye" {
			t.Fatalf("UpdateTweet = %+v, %v", updated, err)
		}
		tweets, err := svc.UserTweets(alice)
		if err != nil || len(tweets) != 1 {
			t.Fatalf("UserTweets = %+v, %v", tweets, err)
		}
		if err = svc.DeleteTweet(alice, tweet.TweetId); err != nil {
			t.Fatal(err)
		}
		if err = svc.DeleteTweet(alice, tweet.TweetId); code(err) != errno.NotFoundCode {
			t.Fatalf("second delete: %v", err)
		}
	})
}

func TestUpdateTweetBlankContent(t *testing.T) {
	dal.Init(dbtest.New(t))
	ctx := context.Background()
	svc := NewTweetService(ctx)
	alice := utils.NextID()
	tweet, err := svc.CreateTweet(alice, "hello")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tab", "\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.UpdateTweet(alice, tweet.TweetId, tt.content); code(err) != errno.MissingFieldCode {
				t.Fatalf("code = %d", code(err))
			}
			got, err := db.GetTweet(ctx, tweet.TweetId)
			if err != nil || got.Content != "hello" {
				t.Fatalf("stored tweet = %+v, %v", got, err)
			}
		})
	}
}
