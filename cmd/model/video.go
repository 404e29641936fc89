package model

import "time"

type Video struct {
	VideoId      int64      `gorm:"column:video_id;primaryKey;autoIncrement:false" json:"id,string"`
	OwnerId      int64      `gorm:"column:owner_id;index" json:"ownerId,string"`
	Title        string     `gorm:"column:title;size:255" json:"title"`
	Description  string     `gorm:"column:description;type:text" json:"description"`
	VideoUrl     string     `gorm:"column:video_url;size:512" json:"videoUrl"`
	StorageId    string     `gorm:"column:storage_id;size:255" json:"storageId"`
	ThumbnailUrl string     `gorm:"column:thumbnail_url;size:512" json:"thumbnailUrl"`
	ThumbnailId  string     `gorm:"column:thumbnail_id;size:255" json:"-"`
	Duration     float64    `gorm:"column:duration" json:"duration"`
	IsPublished  bool       `gorm:"column:is_published;index" json:"isPublished"`
	Views        int64      `gorm:"column:views" json:"views"`
	CreatedAt    time.Time  `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	Owner        *UserBrief `gorm:"-" json:"owner,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}

// VisibleTo hides unpublished videos from everyone but the owner.
func (v *Video) VisibleTo(viewerId int64) bool {
	return v.IsPublished || (viewerId != 0 && v.OwnerId == viewerId)
}

func (v *Video) OwnerID() int64 {
	return v.OwnerId
}
