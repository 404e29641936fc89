package model

import "time"

type User struct {
	UserId    int64     `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"id,string"`
	UserName  string    `gorm:"column:user_name;size:64;uniqueIndex" json:"username"`
	Email     string    `gorm:"column:email;size:128;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;size:128" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserBrief is the owner/author projection embedded in listings.
type UserBrief struct {
	UserId   int64  `gorm:"column:user_id" json:"id,string"`
	UserName string `gorm:"column:user_name" json:"username"`
	Email    string `gorm:"column:email" json:"email"`
}

func (UserBrief) TableName() string {
	return "users"
}
