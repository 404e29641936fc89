package model

import "time"

type Tweet struct {
	TweetId   int64      `gorm:"column:tweet_id;primaryKey;autoIncrement:false" json:"id,string"`
	UserId    int64      `gorm:"column:user_id;index" json:"userId,string"`
	Content   string     `gorm:"column:content;type:text" json:"content"`
	CreatedAt time.Time  `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	Author    *UserBrief `gorm:"-" json:"user,omitempty"`
}

func (Tweet) TableName() string {
	return "tweets"
}

func (t *Tweet) OwnerID() int64 {
	return t.UserId
}
