package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/database/dbtest"
	"vidtube.com/pkg/utils"
)

func subscribe(t *testing.T, subscriber, channel int64) *model.Subscription {
	t.Helper()
	sub := &model.Subscription{SubscriptionId: utils.NextID(), SubscriberId: subscriber, ChannelId: channel}
	if err := CreateSubscription(context.Background(), sub); err != nil {
		t.Fatal(err)
	}
	return sub
}

func TestSubscriptionLists(t *testing.T) {
	Init(dbtest.New(t))
	ctx := context.Background()

	subscribe(t, 1, 10)
	subscribe(t, 2, 10)
	subscribe(t, 1, 11)

	subs, err := ListSubscribers(ctx, 10)
	if err != nil || len(subs) != 2 {
		t.Fatalf("subscribers = %d, %v", len(subs), err)
	}
	subs, err = ListSubscriptions(ctx, 1)
	if err != nil || len(subs) != 2 {
		t.Fatalf("subscriptions = %d, %v", len(subs), err)
	}
	if n, _ := CountSubscribers(ctx, 11); n != 1 {
		t.Fatalf("CountSubscribers = %d", n)
	}
}

func TestSubscriptionUniqueAndDelete(t *testing.T) {
	Init(dbtest.New(t))
	ctx := context.Background()

	sub := subscribe(t, 1, 10)
	dup := &model.Subscription{SubscriptionId: utils.NextID(), SubscriberId: 1, ChannelId: 10}
	if err := CreateSubscription(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicate key, got %v", err)
	}

	found, err := FindSubscription(ctx, 1, 10)
	if err != nil || found == nil || found.SubscriptionId != sub.SubscriptionId {
		t.Fatalf("FindSubscription = %+v, %v", found, err)
	}
	if err = DeleteSubscription(ctx, sub.SubscriptionId); err != nil {
		t.Fatal(err)
	}
	if found, _ = FindSubscription(ctx, 1, 10); found != nil {
		t.Fatal("subscription survived")
	}
}
