package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/utils"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return DB.WithContext(ctx).Create(playlist).Error
}

func IsPlaylistExist(ctx context.Context, playlistId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func GetPlaylistsByUser(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId).Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

func UpdatePlaylistInfo(ctx context.Context, playlistId int64, name, description, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).
		Updates(map[string]interface{}{"name": name, "description": description, "updated_at": updatedAt}).Error
}

// DeletePlaylist 删除列表及其成员行 成员行随列表本体一起消亡
// (区别于视频删除 后者不级联)
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
	})
}

// AddVideoToPlaylist 追加到序列末尾 复合唯一索引兜底并发下的重复加入
func AddVideoToPlaylist(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos *int64
		if err := tx.Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
			Select("MAX(position)").Scan(&maxPos).Error; err != nil {
			return err
		}
		var next int64
		if maxPos != nil {
			next = *maxPos + 1
		}
		return tx.Create(&model.PlaylistVideo{
			PlaylistVideoId: utils.GenerateID(),
			PlaylistId:      playlistId,
			VideoId:         videoId,
			Position:        next,
			CreatedAt:       time.Now().Format(constants.DataFormate),
		}).Error
	})
}

// RemoveVideoFromPlaylist 返回是否确有成员被移除
func RemoveVideoFromPlaylist(ctx context.Context, playlistId, videoId int64) (bool, error) {
	res := DB.WithContext(ctx).Where("playlist_id = ? AND video_id = ?", playlistId, videoId).Delete(&model.PlaylistVideo{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func IsVideoInPlaylist(ctx context.Context, playlistId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// 获取列表的成员序列 按加入顺序
func GetPlaylistVideos(ctx context.Context, playlistId int64) ([]*model.PlaylistVideo, error) {
	var members []*model.PlaylistVideo
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
		Order("position").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CountPlaylistVideos 存量成员数 含可能悬挂的引用
func CountPlaylistVideos(ctx context.Context, playlistId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
