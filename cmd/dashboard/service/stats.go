package service

import (
	"context"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
)

// ChannelStats 频道统计快照 空组计0
type ChannelStats struct {
	TotalViews  int64 `json:"total_views"`
	TotalVideos int64 `json:"total_videos"`
	Subscribers int64 `json:"subscribers"`
	TotalLikes  int64 `json:"total_likes"`
}

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// GetChannelStats 视图整体成败 任一步查询失败即不返回部分聚合
// 总点赞数按视频/推文/评论三路独立联查后求和
func (service *DashboardService) GetChannelStats(userId int64) (*ChannelStats, error) {
	totalViews, err := db.SumVideoViews(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	totalVideos, err := db.CountVideosByUser(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	subscribers, err := db.CountSubscribers(service.ctx, userId)
	if err != nil {
		return nil, err
	}

	videoLikes, err := db.CountVideoLikesForOwner(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	tweetLikes, err := db.CountTweetLikesForOwner(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	commentLikes, err := db.CountCommentLikesForOwner(service.ctx, userId)
	if err != nil {
		return nil, err
	}

	return &ChannelStats{
		TotalViews:  totalViews,
		TotalVideos: totalVideos,
		Subscribers: subscribers,
		TotalLikes:  videoLikes + tweetLikes + commentLikes,
	}, nil
}

// GetChannelVideos 频道主自己的视频 含未发布的
func (service *DashboardService) GetChannelVideos(userId int64) ([]*model.Video, error) {
	videos, err := db.GetVideosByUserId(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	return videos, nil
}
