package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/pkg/errno"
)

// VideoDetail 视频详情 所有者投影附带订阅数
type VideoDetail struct {
	VideoId     int64  `json:"video_id"`
	VideoUrl    string `json:"video_url"`
	CoverUrl    string `json:"cover_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	VisitCount  int64  `json:"visit_count"`
	LikesCount  int64  `json:"likes_count"`
	IsPublished bool   `json:"is_published"`
	UserName    string `json:"user_name"`
	AvatarUrl   string `json:"avatar_url"`
	Subscribers int64  `json:"subscribers"`
	UpdatedAt   string `json:"updated_at"`
}

type VideoDetailService struct {
	ctx context.Context
}

func NewVideoDetailService(ctx context.Context) *VideoDetailService {
	return &VideoDetailService{ctx: ctx}
}

// GetVideoById 详情视图 只读 不计观看
func (service *VideoDetailService) GetVideoById(videoId int64) (*VideoDetail, error) {
	exist, err := db.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.VideoNotExistErr
	}

	video, err := db.GetVideoInfo(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	likes, err := db.CountLikesByTarget(service.ctx, "video_id", videoId)
	if err != nil {
		return nil, err
	}
	detail := &VideoDetail{
		VideoId:     video.VideoId,
		VideoUrl:    video.VideoUrl,
		CoverUrl:    video.CoverUrl,
		Title:       video.Title,
		Description: video.Description,
		Duration:    video.Duration,
		VisitCount:  video.VisitCount,
		LikesCount:  likes,
		IsPublished: video.IsPublished,
		UpdatedAt:   video.UpdatedAt,
	}

	owner, err := db.GetUserInfo(service.ctx, video.UserId)
	if err != nil {
		// 所有者已不存在属于悬挂引用 投影留空 其他错误整视图失败
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.UserName = owner.UserName
	detail.AvatarUrl = owner.AvatarUrl
	subscribers, err := db.CountSubscribers(service.ctx, owner.UserId)
	if err != nil {
		return nil, err
	}
	detail.Subscribers = subscribers
	return detail, nil
}
