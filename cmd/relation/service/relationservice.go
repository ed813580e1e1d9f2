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

type ToggleResult struct {
	State string              `json:"state"`
	Edge  *model.Subscription `json:"edge,omitempty"`
}

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleSubscription 频道必须存在 订阅自己不在此处拦截
func (service *RelationService) ToggleSubscription(subscriberId, channelId int64) (*ToggleResult, error) {
	exist, err := db.IsUserExist(service.ctx, channelId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}
	created, edge, err := db.ToggleSubscription(service.ctx, subscriberId, channelId)
	if err != nil {
		hlog.CtxErrorf(service.ctx, "Failed to toggle subscription: %v", err)
		return nil, err
	}
	if created {
		return &ToggleResult{State: StateCreated, Edge: edge}, nil
	}
	return &ToggleResult{State: StateRemoved}, nil
}

// Subscribe 非翻转的创建路径 已订阅时返回冲突
func (service *RelationService) Subscribe(subscriberId, channelId int64) (*model.Subscription, error) {
	exist, err := db.IsUserExist(service.ctx, channelId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}
	subscribed, err := db.IsSubscribed(service.ctx, subscriberId, channelId)
	if err != nil {
		return nil, err
	}
	if subscribed {
		return nil, errno.AlreadySubscribedErr
	}
	return db.CreateSubscription(service.ctx, subscriberId, channelId)
}
