package db

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/utils"
)

// VideoQuery is the filter/sort/page input of the public listing.
type VideoQuery struct {
	Keyword       string
	OwnerId       int64
	PublishedOnly bool
	SortBy        string
	SortType      string
	Page          int64
	Limit         int64
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"views":     "views",
	"title":     "title",
	"duration":  "duration",
}

// SortClause resolves the client sort field against the whitelist; unknown
// fields fall back to created_at, direction defaults to desc.
func SortClause(sortBy, sortType string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortType, "asc") {
		dir = "ASC"
	}
	// video_id breaks ties so pages never overlap
	return col + " " + dir + ", video_id " + dir
}

func CreateVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrap(err, "CreateVideo failed")
	}
	return nil
}

// GetVideo returns gorm.ErrRecordNotFound when absent.
func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// CheckVideoVisible reports whether viewerId may see the video: published
// videos are public, unpublished ones belong to their owner only. viewerId 0
// is an anonymous viewer.
func CheckVideoVisible(ctx context.Context, videoId, viewerId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND (is_published = ? OR owner_id = ?)", videoId, true, viewerId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckVideoVisible failed, video_id=%d", videoId)
	}
	return count > 0, nil
}

// likeEscaper makes the keyword match literally. '!' is the escape since a
// backslash needs different quoting on MySQL and SQLite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func ListVideos(ctx context.Context, q *VideoQuery) ([]*model.Video, int64, error) {
	page, limit := utils.NormalizePage(q.Page, q.Limit)
	filter := func(tx *gorm.DB) *gorm.DB {
		if q.Keyword != "" {
			tx = tx.Where("LOWER(title) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(q.Keyword))+"%")
		}
		if q.OwnerId != 0 {
			tx = tx.Where("owner_id = ?", q.OwnerId)
		}
		if q.PublishedOnly {
			tx = tx.Where("is_published = ?", true)
		}
		return tx
	}

	var total int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListVideos count failed")
	}
	videos := make([]*model.Video, 0, limit)
	if err := DB.WithContext(ctx).Scopes(filter).Order(SortClause(q.SortBy, q.SortType)).
		Offset(utils.Offset(page, limit)).Limit(int(limit)).Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListVideos failed")
	}
	return videos, total, nil
}

// ListVideosByOwner returns every video of the owner, newest first.
func ListVideosByOwner(ctx context.Context, ownerId int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := DB.WithContext(ctx).Where("owner_id = ?", ownerId).
		Order("created_at DESC, video_id DESC").Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "ListVideosByOwner failed")
	}
	return videos, nil
}

// MGetVideos loads the given videos keeping the order of videoIds. Missing
// ids are skipped.
func MGetVideos(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	if len(videoIds) == 0 {
		return []*model.Video{}, nil
	}
	var found []*model.Video
	if err := DB.WithContext(ctx).Where("video_id IN ?", videoIds).Find(&found).Error; err != nil {
		return nil, errors.Wrap(err, "MGetVideos failed")
	}
	byId := make(map[int64]*model.Video, len(found))
	for _, v := range found {
		byId[v.VideoId] = v
	}
	videos := make([]*model.Video, 0, len(found))
	for _, id := range videoIds {
		if v, ok := byId[id]; ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

// UpdateVideoMeta persists title, description and thumbnail.
func UpdateVideoMeta(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Model(video).Select("title", "description", "thumbnail_url", "thumbnail_id", "updated_at").
		Updates(video).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideoMeta failed, video_id=%d", video.VideoId)
	}
	return nil
}

func UpdatePublished(ctx context.Context, videoId int64, published bool) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("is_published", published).Error; err != nil {
		return errors.Wrapf(err, "UpdatePublished failed, video_id=%d", videoId)
	}
	return nil
}

func IncrVideoViews(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		return errors.Wrapf(err, "IncrVideoViews failed, video_id=%d", videoId)
	}
	return nil
}

// DeleteVideoCascade removes the video together with its likes, its comments
// and their likes, and its playlist memberships.
func DeleteVideoCascade(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIds []int64
		if err := tx.Model(&model.Comment{}).Where("video_id = ?", videoId).Pluck("comment_id", &commentIds).Error; err != nil {
			return errors.Wrap(err, "load comments")
		}
		if len(commentIds) > 0 {
			if err := tx.Where("target_type = ? AND target_id IN ?", constants.LikeTargetComment, commentIds).
				Delete(&model.Like{}).Error; err != nil {
				return errors.Wrap(err, "delete comment likes")
			}
			if err := tx.Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
				return errors.Wrap(err, "delete comments")
			}
		}
		if err := tx.Where("target_type = ? AND target_id = ?", constants.LikeTargetVideo, videoId).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete video likes")
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.Wrap(err, "delete playlist entries")
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
			return errors.Wrap(err, "delete video")
		}
		return nil
	})
}

func CountVideosByOwner(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("owner_id = ?", ownerId).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "CountVideosByOwner failed")
	}
	return count, nil
}

// SumViewsByOwner is 0 for a channel without videos.
func SumViewsByOwner(ctx context.Context, ownerId int64) (int64, error) {
	var total int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("owner_id = ?", ownerId).
		Select("COALESCE(SUM(views), 0)").Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "SumViewsByOwner failed")
	}
	return total, nil
}
