package service

import (
	"context"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
)

// LikedVideoOwner 点赞流中视频所有者的投影
type LikedVideoOwner struct {
	UserName string `json:"user_name"`
}

type LikedVideo struct {
	VideoId     int64           `json:"video_id"`
	CoverUrl    string          `json:"cover_url"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int64           `json:"duration"`
	VisitCount  int64           `json:"visit_count"`
	IsPublished bool            `json:"is_published"`
	Owner       LikedVideoOwner `json:"owner"`
}

type LikedVideoItem struct {
	Video LikedVideo `json:"video"`
}

type LikedVideosService struct {
	ctx context.Context
}

func NewLikedVideosService(ctx context.Context) *LikedVideosService {
	return &LikedVideosService{ctx: ctx}
}

// LikedVideos 用户点赞过的视频流
// 目标视频已删除的边在联查中自然失配 直接略过
func (service *LikedVideosService) LikedVideos(userId int64) ([]*LikedVideoItem, error) {
	likes, err := db.GetVideoLikesByUser(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(likes) == 0 {
		return []*LikedVideoItem{}, nil
	}

	videoIds := make([]int64, 0, len(likes))
	for _, like := range likes {
		videoIds = append(videoIds, *like.VideoId)
	}
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, err
	}

	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		ownerIds = append(ownerIds, video.UserId)
	}
	owners, err := db.GetUsersByIds(service.ctx, ownerIds)
	if err != nil {
		return nil, err
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, owner := range owners {
		ownerById[owner.UserId] = owner
	}

	videoById := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		videoById[video.VideoId] = video
	}

	items := make([]*LikedVideoItem, 0, len(likes))
	for _, like := range likes {
		video, ok := videoById[*like.VideoId]
		if !ok {
			continue
		}
		item := &LikedVideoItem{Video: LikedVideo{
			VideoId:     video.VideoId,
			CoverUrl:    video.CoverUrl,
			Title:       video.Title,
			Description: video.Description,
			Duration:    video.Duration,
			VisitCount:  video.VisitCount,
			IsPublished: video.IsPublished,
		}}
		if owner, ok := ownerById[video.UserId]; ok {
			item.Video.Owner = LikedVideoOwner{UserName: owner.UserName}
		}
		items = append(items, item)
	}
	return items, nil
}
