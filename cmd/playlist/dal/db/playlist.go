package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrap(err, "CreatePlaylist failed")
	}
	return nil
}

// GetPlaylist returns gorm.ErrRecordNotFound when absent.
func GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func ListUserPlaylists(ctx context.Context, ownerId int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := DB.WithContext(ctx).Where("owner_id = ?", ownerId).
		Order("created_at DESC, playlist_id DESC").Find(&playlists).Error; err != nil {
		return nil, errors.Wrap(err, "ListUserPlaylists failed")
	}
	return playlists, nil
}

func UpdatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Model(playlist).Select("name", "description", "updated_at").
		Updates(playlist).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylist failed, playlist_id=%d", playlist.PlaylistId)
	}
	return nil
}

// DeletePlaylistCascade removes the playlist and its membership rows.
func DeletePlaylistCascade(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.Wrap(err, "delete playlist entries")
		}
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
			return errors.Wrap(err, "delete playlist")
		}
		return nil
	})
}

// AddVideo appends videoId at the end of the playlist. Adding a video that is
// already a member is a no-op.
func AddVideo(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ? AND video_id = ?", playlistId, videoId).Count(&count).Error; err != nil {
			return errors.Wrap(err, "check membership")
		}
		if count > 0 {
			return nil
		}
		var last int64
		if err := tx.Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
			Select("COALESCE(MAX(position), 0)").Scan(&last).Error; err != nil {
			return errors.Wrap(err, "load last position")
		}
		err := tx.Create(&model.PlaylistVideo{
			PlaylistId: playlistId,
			VideoId:    videoId,
			Position:   last + 1,
		}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return errors.Wrap(err, "insert membership")
	})
}

// RemoveVideo drops videoId from the playlist; removing a non-member is a no-op.
func RemoveVideo(ctx context.Context, playlistId, videoId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrap(err, "RemoveVideo failed")
	}
	return nil
}

// ListPlaylistVideoIds returns the member video ids of each playlist in
// position order.
func ListPlaylistVideoIds(ctx context.Context, playlistIds []int64) (map[int64][]int64, error) {
	res := make(map[int64][]int64, len(playlistIds))
	if len(playlistIds) == 0 {
		return res, nil
	}
	var rows []model.PlaylistVideo
	if err := DB.WithContext(ctx).Where("playlist_id IN ?", playlistIds).
		Order("playlist_id, position").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "ListPlaylistVideoIds failed")
	}
	for _, row := range rows {
		res[row.PlaylistId] = append(res[row.PlaylistId], row.VideoId)
	}
	return res, nil
}
