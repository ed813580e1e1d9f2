package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

const (
	StateCreated = "created"
	StateRemoved = "removed"
)

// ToggleResult 翻转结果 移除时Edge为空
type ToggleResult struct {
	State string      `json:"state"`
	Edge  *model.Like `json:"edge,omitempty"`
}

type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

// ToggleVideoLike 目标视频必须存在 翻转前不做任何写入
func (service *LikeActionService) ToggleVideoLike(userId, videoId int64) (*ToggleResult, error) {
	exist, err := db.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.VideoNotExistErr
	}
	created, edge, err := db.ToggleVideoLike(service.ctx, userId, videoId)
	if err != nil {
		hlog.CtxErrorf(service.ctx, "Failed to toggle video like: %v", err)
		return nil, err
	}
	return toggleResult(created, edge), nil
}

func (service *LikeActionService) ToggleCommentLike(userId, commentId int64) (*ToggleResult, error) {
	exist, err := db.IsCommentExist(service.ctx, commentId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.CommentNotExistErr
	}
	created, edge, err := db.ToggleCommentLike(service.ctx, userId, commentId)
	if err != nil {
		hlog.CtxErrorf(service.ctx, "Failed to toggle comment like: %v", err)
		return nil, err
	}
	return toggleResult(created, edge), nil
}

func (service *LikeActionService) ToggleTweetLike(userId, tweetId int64) (*ToggleResult, error) {
	exist, err := db.IsTweetExist(service.ctx, tweetId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.TweetNotExistErr
	}
	created, edge, err := db.ToggleTweetLike(service.ctx, userId, tweetId)
	if err != nil {
		hlog.CtxErrorf(service.ctx, "Failed to toggle tweet like: %v", err)
		return nil, err
	}
	return toggleResult(created, edge), nil
}

func toggleResult(created bool, edge *model.Like) *ToggleResult {
	if created {
		return &ToggleResult{State: StateCreated, Edge: edge}
	}
	return &ToggleResult{State: StateRemoved}
}
