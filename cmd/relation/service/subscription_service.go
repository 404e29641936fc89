package service

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/lock"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/toggle"
	"vidtube.com/pkg/utils"
)

const targetUser = "user"

type SubscriptionResult struct {
	Subscribed   bool
	Subscription *model.Subscription
}

type SubscriptionService struct {
	ctx context.Context
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{ctx: ctx}
}

// ToggleSubscription subscribes the actor to channelId, or unsubscribes when
// already subscribed.
func (s *SubscriptionService) ToggleSubscription(actorId, channelId int64) (*SubscriptionResult, error) {
	if actorId == channelId {
		return nil, errno.SelfSubscription
	}
	exist, err := userdb.CheckUserExistById(s.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckUserExistById failed")
	}
	if !exist {
		return nil, errno.NotFound.WithMessage("Channel not found")
	}

	res, err := toggle.Do(s.ctx, lock.Key("sub", actorId, channelId), toggle.Relation[model.Subscription]{
		Find: func(ctx context.Context) (*model.Subscription, error) {
			return db.FindSubscription(ctx, actorId, channelId)
		},
		Create: func(ctx context.Context) (*model.Subscription, error) {
			sub := &model.Subscription{
				SubscriptionId: utils.NextID(),
				SubscriberId:   actorId,
				ChannelId:      channelId,
			}
			return sub, db.CreateSubscription(ctx, sub)
		},
		Remove: func(ctx context.Context, sub *model.Subscription) error {
			return db.DeleteSubscription(ctx, sub.SubscriptionId)
		},
	})
	if err != nil {
		return nil, errors.WithMessage(err, "toggle subscription failed")
	}

	if !res.Added {
		mq.Emit(s.ctx, mq.NewEvent(mq.EventUnsubscribed, actorId, targetUser, channelId))
		return &SubscriptionResult{Subscribed: false}, nil
	}
	mq.Emit(s.ctx, mq.NewEvent(mq.EventSubscribed, actorId, targetUser, channelId))
	return &SubscriptionResult{Subscribed: true, Subscription: res.Record}, nil
}

// Subscribers lists the subscriptions of a channel with the subscriber
// embedded.
func (s *SubscriptionService) Subscribers(channelId int64) ([]*model.Subscription, error) {
	subs, err := db.ListSubscribers(s.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListSubscribers failed")
	}
	if err = userdb.AttachSubscriptionUsers(s.ctx, subs); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachSubscriptionUsers failed")
	}
	return subs, nil
}

// SubscribedChannels returns the channels subscriberId follows. Channels
// whose user no longer exists are skipped.
func (s *SubscriptionService) SubscribedChannels(subscriberId int64) ([]*model.UserBrief, error) {
	subs, err := db.ListSubscriptions(s.ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListSubscriptions failed")
	}
	if err = userdb.AttachSubscriptionUsers(s.ctx, subs); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachSubscriptionUsers failed")
	}
	channels := make([]*model.UserBrief, 0, len(subs))
	for _, sub := range subs {
		if sub.Channel != nil {
			channels = append(channels, sub.Channel)
		}
	}
	return channels, nil
}
