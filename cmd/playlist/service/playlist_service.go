package service

import (
	"context"
	"strings"
	"time"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (service *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, errno.ParamErr.WithMessage("Name and description should contain some text")
	}
	now := time.Now().Format(constants.DataFormate)
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.CreatePlaylist(service.ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (service *PlaylistService) UpdatePlaylist(userId, playlistId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, errno.ParamErr.WithMessage("Name and description should contain some text")
	}
	if _, err := service.ownPlaylist(userId, playlistId); err != nil {
		return nil, err
	}
	if err := db.UpdatePlaylistInfo(service.ctx, playlistId, name, description,
		time.Now().Format(constants.DataFormate)); err != nil {
		return nil, err
	}
	return db.GetPlaylistInfo(service.ctx, playlistId)
}

func (service *PlaylistService) DeletePlaylist(userId, playlistId int64) error {
	if _, err := service.ownPlaylist(userId, playlistId); err != nil {
		return err
	}
	return db.DeletePlaylist(service.ctx, playlistId)
}

// AddVideo 列表与视频都必须存在 重复加入拒绝
func (service *PlaylistService) AddVideo(userId, playlistId, videoId int64) error {
	if _, err := service.ownPlaylist(userId, playlistId); err != nil {
		return err
	}
	exist, err := db.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return err
	}
	if !exist {
		return errno.VideoNotExistErr
	}
	member, err := db.IsVideoInPlaylist(service.ctx, playlistId, videoId)
	if err != nil {
		return err
	}
	if member {
		return errno.VideoAlreadyInPlaylistErr
	}
	return db.AddVideoToPlaylist(service.ctx, playlistId, videoId)
}

func (service *PlaylistService) RemoveVideo(userId, playlistId, videoId int64) error {
	if _, err := service.ownPlaylist(userId, playlistId); err != nil {
		return err
	}
	exist, err := db.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return err
	}
	if !exist {
		return errno.VideoNotExistErr
	}
	removed, err := db.RemoveVideoFromPlaylist(service.ctx, playlistId, videoId)
	if err != nil {
		return err
	}
	if !removed {
		return errno.VideoNotInPlaylistErr
	}
	return nil
}

func (service *PlaylistService) ownPlaylist(userId, playlistId int64) (*model.Playlist, error) {
	exist, err := db.IsPlaylistExist(service.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.PlaylistNotExistErr
	}
	playlist, err := db.GetPlaylistInfo(service.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist.UserId != userId {
		return nil, errno.AuthorizationErr
	}
	return playlist, nil
}
