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

// PublishVideoRequest 上传由外部存储完成 这里只落视频元数据
type PublishVideoRequest struct {
	Title       string
	Description string
	VideoUrl    string
	CoverUrl    string
	Duration    int64
}

type VideoPublishService struct {
	ctx context.Context
}

func NewVideoPublishService(ctx context.Context) *VideoPublishService {
	return &VideoPublishService{ctx: ctx}
}

func (service *VideoPublishService) PublishVideo(userId int64, req *PublishVideoRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, errno.ParamErr.WithMessage("Title and description is required")
	}
	if req.VideoUrl == "" {
		return nil, errno.ParamErr.WithMessage("Video file is required")
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      userId,
		VideoUrl:    req.VideoUrl,
		CoverUrl:    req.CoverUrl,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.InsertVideo(service.ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (service *VideoPublishService) UpdateVideo(userId, videoId int64, title, description, coverUrl string) (*model.Video, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, errno.ParamErr.WithMessage("Title and description is required")
	}
	if _, err := service.ownVideo(userId, videoId); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": description,
		"updated_at":  time.Now().Format(constants.DataFormate),
	}
	if coverUrl != "" {
		updates["cover_url"] = coverUrl
	}
	if err := db.UpdateVideoInfo(service.ctx, videoId, updates); err != nil {
		return nil, err
	}
	return db.GetVideoInfo(service.ctx, videoId)
}

// DeleteVideo 不级联删除点赞边与列表成员 悬挂引用由读路径剔除
func (service *VideoPublishService) DeleteVideo(userId, videoId int64) error {
	if _, err := service.ownVideo(userId, videoId); err != nil {
		return err
	}
	return db.DeleteVideo(service.ctx, videoId)
}

func (service *VideoPublishService) TogglePublishStatus(userId, videoId int64) (*model.Video, error) {
	video, err := service.ownVideo(userId, videoId)
	if err != nil {
		return nil, err
	}
	if err := db.UpdateVideoPublish(service.ctx, videoId, !video.IsPublished); err != nil {
		return nil, err
	}
	return db.GetVideoInfo(service.ctx, videoId)
}

func (service *VideoPublishService) ownVideo(userId, videoId int64) (*model.Video, error) {
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
	if video.UserId != userId {
		return nil, errno.AuthorizationErr
	}
	return video, nil
}
