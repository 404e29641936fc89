package model

import "time"

type Playlist struct {
	PlaylistId  int64      `gorm:"column:playlist_id;primaryKey;autoIncrement:false" json:"id,string"`
	OwnerId     int64      `gorm:"column:owner_id;index" json:"ownerId,string"`
	Name        string     `gorm:"column:name;size:255" json:"name"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	Owner       *UserBrief `gorm:"-" json:"owner,omitempty"`
	Videos      []*Video   `gorm:"-" json:"videos"`
}

func (Playlist) TableName() string {
	return "playlists"
}

func (p *Playlist) OwnerID() int64 {
	return p.OwnerId
}

// PlaylistVideo is one ordered membership row.
type PlaylistVideo struct {
	PlaylistId int64     `gorm:"column:playlist_id;primaryKey;autoIncrement:false"`
	VideoId    int64     `gorm:"column:video_id;primaryKey;autoIncrement:false;index"`
	Position   int64     `gorm:"column:position"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
