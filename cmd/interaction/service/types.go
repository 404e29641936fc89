package service

import "vidtube.com/cmd/model"

type CommentPage struct {
	Comments   []*model.Comment `json:"comments"`
	Total      int64            `json:"total"`
	Page       int64            `json:"page"`
	Limit      int64            `json:"limit"`
	TotalPages int64            `json:"totalPages"`
}

// LikeResult reports the state after a toggle. Like is nil once removed.
type LikeResult struct {
	Liked bool
	Like  *model.Like
}
