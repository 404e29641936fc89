package model

import "time"

type Comment struct {
	CommentId int64      `gorm:"column:comment_id;primaryKey;autoIncrement:false" json:"id,string"`
	VideoId   int64      `gorm:"column:video_id;index" json:"videoId,string"`
	UserId    int64      `gorm:"column:user_id;index" json:"userId,string"`
	Content   string     `gorm:"column:content;type:text" json:"content"`
	CreatedAt time.Time  `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	Author    *UserBrief `gorm:"-" json:"user,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) OwnerID() int64 {
	return c.UserId
}

// Like points at exactly one video, comment or tweet. At most one like exists
// per (user, target); the unique index backs the toggle's pre-check.
type Like struct {
	LikeId     int64     `gorm:"column:like_id;primaryKey;autoIncrement:false" json:"id,string"`
	UserId     int64     `gorm:"column:user_id;uniqueIndex:idx_like_user_target,priority:1" json:"userId,string"`
	TargetType string    `gorm:"column:target_type;size:16;uniqueIndex:idx_like_user_target,priority:2;index:idx_like_target,priority:1" json:"targetType"`
	TargetId   int64     `gorm:"column:target_id;uniqueIndex:idx_like_user_target,priority:3;index:idx_like_target,priority:2" json:"targetId,string"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
