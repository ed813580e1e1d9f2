package service

import (
	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

// PlaylistOwner 列表与成员视频共用的所有者投影
type PlaylistOwner struct {
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
}

type PlaylistVideoItem struct {
	VideoId     int64         `json:"video_id"`
	CoverUrl    string        `json:"cover_url"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    int64         `json:"duration"`
	VisitCount  int64         `json:"visit_count"`
	IsPublished bool          `json:"is_published"`
	Owner       PlaylistOwner `json:"owner"`
	UpdatedAt   string        `json:"updated_at"`
}

type PlaylistDetail struct {
	PlaylistId  int64                `json:"playlist_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Owner       PlaylistOwner        `json:"owner"`
	Videos      []*PlaylistVideoItem `json:"videos"`
	VideosCount int64                `json:"videos_count"`
	UpdatedAt   string               `json:"updated_at"`
}

// PlaylistSummary 用户列表概览项 成员数按存量计
type PlaylistSummary struct {
	PlaylistId  int64  `json:"playlist_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	VideosCount int64  `json:"videos_count"`
	UpdatedAt   string `json:"updated_at"`
}

// GetPlaylistById 两级联查: 列表→成员视频→视频所有者 外加列表所有者
// 无法解析的成员引用从返回中剔除 存量序列不动 VideosCount按解析后计
func (service *PlaylistService) GetPlaylistById(playlistId int64) (*PlaylistDetail, error) {
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

	members, err := db.GetPlaylistVideos(service.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	videoIds := make([]int64, 0, len(members))
	for _, member := range members {
		videoIds = append(videoIds, member.VideoId)
	}
	var videos []*model.Video
	if len(videoIds) > 0 {
		if videos, err = db.GetVideosByIds(service.ctx, videoIds); err != nil {
			return nil, err
		}
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos)+1)
	for _, video := range videos {
		videoById[video.VideoId] = video
		ownerIds = append(ownerIds, video.UserId)
	}
	ownerIds = append(ownerIds, playlist.UserId)

	owners, err := db.GetUsersByIds(service.ctx, ownerIds)
	if err != nil {
		return nil, err
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, owner := range owners {
		ownerById[owner.UserId] = owner
	}

	items := make([]*PlaylistVideoItem, 0, len(members))
	for _, member := range members {
		video, ok := videoById[member.VideoId]
		if !ok {
			// 悬挂引用 序列中保留 视图中剔除
			continue
		}
		item := &PlaylistVideoItem{
			VideoId:     video.VideoId,
			CoverUrl:    video.CoverUrl,
			Title:       video.Title,
			Description: video.Description,
			Duration:    video.Duration,
			VisitCount:  video.VisitCount,
			IsPublished: video.IsPublished,
			UpdatedAt:   video.UpdatedAt,
		}
		if owner, ok := ownerById[video.UserId]; ok {
			item.Owner = PlaylistOwner{UserName: owner.UserName, FullName: owner.FullName}
		}
		items = append(items, item)
	}

	detail := &PlaylistDetail{
		PlaylistId:  playlist.PlaylistId,
		Name:        playlist.Name,
		Description: playlist.Description,
		Videos:      items,
		VideosCount: int64(len(items)),
		UpdatedAt:   playlist.UpdatedAt,
	}
	if owner, ok := ownerById[playlist.UserId]; ok {
		detail.Owner = PlaylistOwner{UserName: owner.UserName, FullName: owner.FullName}
	}
	return detail, nil
}

// GetUserPlaylists 概览视图的成员数按存量序列计 与详情视图不同
func (service *PlaylistService) GetUserPlaylists(userId int64) ([]*PlaylistSummary, error) {
	exist, err := db.IsUserExist(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}
	playlists, err := db.GetPlaylistsByUser(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	summaries := make([]*PlaylistSummary, 0, len(playlists))
	for _, playlist := range playlists {
		count, err := db.CountPlaylistVideos(service.ctx, playlist.PlaylistId)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &PlaylistSummary{
			PlaylistId:  playlist.PlaylistId,
			Name:        playlist.Name,
			Description: playlist.Description,
			VideosCount: count,
			UpdatedAt:   playlist.UpdatedAt,
		})
	}
	return summaries, nil
}
