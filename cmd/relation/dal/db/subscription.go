package db

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
)

// FindSubscription returns (nil, nil) when subscriberId does not follow channelId.
func FindSubscription(ctx context.Context, subscriberId, channelId int64) (*model.Subscription, error) {
	subs := make([]*model.Subscription, 0, 1)
	if err := DB.WithContext(ctx).Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Limit(1).Find(&subs).Error; err != nil {
		return nil, errors.Wrap(err, "FindSubscription failed")
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return subs[0], nil
}

func CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	if err := DB.WithContext(ctx).Create(sub).Error; err != nil {
		return errors.Wrap(err, "CreateSubscription failed")
	}
	return nil
}

func DeleteSubscription(ctx context.Context, subscriptionId int64) error {
	if err := DB.WithContext(ctx).Where("subscription_id = ?", subscriptionId).
		Delete(&model.Subscription{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteSubscription failed, subscription_id=%d", subscriptionId)
	}
	return nil
}

// ListSubscribers returns the subscriptions whose channel is channelId.
func ListSubscribers(ctx context.Context, channelId int64) ([]*model.Subscription, error) {
	subs := make([]*model.Subscription, 0)
	if err := DB.WithContext(ctx).Where("channel_id = ?", channelId).
		Order("created_at DESC, subscription_id DESC").Find(&subs).Error; err != nil {
		return nil, errors.Wrap(err, "ListSubscribers failed")
	}
	return subs, nil
}

// ListSubscriptions returns the subscriptions made by subscriberId.
func ListSubscriptions(ctx context.Context, subscriberId int64) ([]*model.Subscription, error) {
	subs := make([]*model.Subscription, 0)
	if err := DB.WithContext(ctx).Where("subscriber_id = ?", subscriberId).
		Order("created_at DESC, subscription_id DESC").Find(&subs).Error; err != nil {
		return nil, errors.Wrap(err, "ListSubscriptions failed")
	}
	return subs, nil
}

func CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).
		Count(&count).Error; err != nil {
		return -1, errors.Wrap(err, "CountSubscribers failed")
	}
	return count, nil
}
