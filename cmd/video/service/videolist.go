package service

import (
	"context"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/config"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
)

// sortColumns 可排序字段白名单 外部名→列名
// 未识别的字段回落到views
var sortColumns = map[string]string{
	"views":       "visit_count",
	"title":       "title",
	"description": "description",
	"duration":    "duration",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

type ListVideosRequest struct {
	Page     int64
	Limit    int64
	Query    string
	SortBy   string
	SortType string
	OwnerId  int64
}

// VideoSummary 目录项 附带所有者投影
type VideoSummary struct {
	VideoId     int64  `json:"video_id"`
	VideoUrl    string `json:"video_url"`
	CoverUrl    string `json:"cover_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	VisitCount  int64  `json:"visit_count"`
	UserName    string `json:"user_name"`
	AvatarUrl   string `json:"avatar_url"`
	UpdatedAt   string `json:"updated_at"`
}

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// ListVideos 过滤→排序→窗口
// 目录只含已发布视频 未发布的仅频道主自己经dashboard可见
func (service *VideoListService) ListVideos(req *ListVideosRequest) ([]*VideoSummary, int64, error) {
	if req.Page <= 0 {
		req.Page = constants.DefaultPage
	}
	if req.Limit <= 0 {
		req.Limit = constants.DefaultLimit
	}
	if req.Limit > constants.MaxLimit {
		req.Limit = constants.MaxLimit
	}

	if req.OwnerId != 0 {
		exist, err := db.IsUserExist(service.ctx, req.OwnerId)
		if err != nil {
			return nil, 0, err
		}
		if !exist {
			return nil, 0, errno.UserNotExistErr
		}
	}

	column, ok := sortColumns[req.SortBy]
	if !ok {
		column = sortColumns[constants.DefaultSortBy]
	}

	offset := int((req.Page - 1) * req.Limit)
	// 旧版行为: take=page*limit 页码越大窗口越大(累计窗口)
	// strict_pages开启时按固定页大小返回
	take := int(req.Page * req.Limit)
	if config.ConfigInfo.Pagination.StrictPages {
		take = int(req.Limit)
	}

	opt := &db.VideoQueryOption{
		Keyword:       req.Query,
		OwnerId:       req.OwnerId,
		PublishedOnly: true,
		OrderBy:       column,
		Desc:          req.SortType != constants.SortAsc,
		Offset:        offset,
		Limit:         take,
	}
	videos, count, err := db.QueryVideos(service.ctx, opt)
	if err != nil {
		return nil, 0, err
	}
	summaries, err := service.withOwners(videos)
	if err != nil {
		return nil, 0, err
	}
	return summaries, count, nil
}

func (service *VideoListService) withOwners(videos []*model.Video) ([]*VideoSummary, error) {
	if len(videos) == 0 {
		return []*VideoSummary{}, nil
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

	summaries := make([]*VideoSummary, 0, len(videos))
	for _, video := range videos {
		summary := &VideoSummary{
			VideoId:     video.VideoId,
			VideoUrl:    video.VideoUrl,
			CoverUrl:    video.CoverUrl,
			Title:       video.Title,
			Description: video.Description,
			Duration:    video.Duration,
			VisitCount:  video.VisitCount,
			UpdatedAt:   video.UpdatedAt,
		}
		if owner, ok := ownerById[video.UserId]; ok {
			summary.UserName = owner.UserName
			summary.AvatarUrl = owner.AvatarUrl
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
