package model

import "time"

// Subscription is the subscriber -> channel edge, both ends are users.
type Subscription struct {
	SubscriptionId int64      `gorm:"column:subscription_id;primaryKey;autoIncrement:false" json:"id,string"`
	SubscriberId   int64      `gorm:"column:subscriber_id;uniqueIndex:idx_sub_pair,priority:1" json:"subscriberId,string"`
	ChannelId      int64      `gorm:"column:channel_id;uniqueIndex:idx_sub_pair,priority:2;index" json:"channelId,string"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"createdAt"`
	Subscriber     *UserBrief `gorm:"-" json:"subscriber,omitempty"`
	Channel        *UserBrief `gorm:"-" json:"channel,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// All lists every model for migration.
func All() []interface{} {
	return []interface{}{
		&User{}, &Video{}, &Comment{}, &Like{}, &Tweet{},
		&Playlist{}, &PlaylistVideo{}, &Subscription{},
	}
}
