package service

import (
	"context"
	"testing"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/database/dbtest"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

func newUser(t *testing.T, name string) int64 {
	t.Helper()
	u := &model.User{UserId: utils.NextID(), UserName: name, Email: name + "@example.com"}
	if err := userdb.CreateUser(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	return u.UserId
}

func TestToggleSubscription(t *testing.T) {
	dal.Init(dbtest.New(t))
	ctx := context.Background()
	alice, bob := newUser(t, "alice"), newUser(t, "bob")
	svc := NewSubscriptionService(ctx)

	res, err := svc.ToggleSubscription(bob, alice)
	if err != nil || !res.Subscribed || res.Subscription == nil {
		t.Fatalf("subscribe: %+v, %v", res, err)
	}
	subs, err := svc.Subscribers(alice)
	if err != nil || len(subs) != 1 || subs[0].Subscriber.UserName != "bob" {
		t.Fatalf("Subscribers = %+v, %v", subs, err)
	}
	channels, err := svc.SubscribedChannels(bob)
	if err != nil || len(channels) != 1 || channels[0].UserName != "alice" {
		t.Fatalf("SubscribedChannels = %+v, %v", channels, err)
	}

	res, err = svc.ToggleSubscription(bob, alice)
	if err != nil || res.Subscribed {
		t.Fatalf("unsubscribe: %+v, %v", res, err)
	}
	if subs, _ = svc.Subscribers(alice); len(subs) != 0 {
		t.Fatalf("subscription left: %+v", subs)
	}
}

func TestToggleSubscriptionRejects(t *testing.T) {
	dal.Init(dbtest.New(t))
	ctx := context.Background()
	alice := newUser(t, "alice")
	svc := NewSubscriptionService(ctx)

	_, err := svc.ToggleSubscription(alice, alice)
	if e := errno.ConvertErr(err); e.ErrCode != errno.SelfSubscriptionCode || e.StatusCode() != 400 {
		t.Fatalf("self subscription: %v", err)
	}
	if n, _ := db.CountSubscribers(ctx, alice); n != 0 {
		t.Fatalf("self subscription stored")
	}
	if _, err = svc.ToggleSubscription(alice, utils.NextID()); errno.ConvertErr(err).ErrCode != errno.NotFoundCode {
		t.Fatalf("missing channel: %v", err)
	}
}
