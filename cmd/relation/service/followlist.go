package service

import (
	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

// UserSummary 订阅边另一侧的用户投影
type UserSummary struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	AvatarUrl string `json:"avatar_url"`
}

// GetChannelSubscribers 某一频道的订阅者列表
func (service *RelationService) GetChannelSubscribers(channelId int64) ([]*UserSummary, error) {
	exist, err := db.IsUserExist(service.ctx, channelId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}
	subs, err := db.GetSubscribersByChannel(service.ctx, channelId)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.SubscriberId)
	}
	return service.userSummaries(ids)
}

// GetSubscribedChannels 某一用户订阅的频道列表
func (service *RelationService) GetSubscribedChannels(subscriberId int64) ([]*UserSummary, error) {
	exist, err := db.IsUserExist(service.ctx, subscriberId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}
	subs, err := db.GetSubscriptionsBySubscriber(service.ctx, subscriberId)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ChannelId)
	}
	return service.userSummaries(ids)
}

func (service *RelationService) userSummaries(userIds []int64) ([]*UserSummary, error) {
	if len(userIds) == 0 {
		return []*UserSummary{}, nil
	}
	users, err := db.GetUsersByIds(service.ctx, userIds)
	if err != nil {
		return nil, err
	}
	userById := make(map[int64]*model.User, len(users))
	for _, user := range users {
		userById[user.UserId] = user
	}
	list := make([]*UserSummary, 0, len(userIds))
	for _, id := range userIds {
		user, ok := userById[id]
		if !ok {
			continue
		}
		list = append(list, &UserSummary{
			UserId:    user.UserId,
			UserName:  user.UserName,
			AvatarUrl: user.AvatarUrl,
		})
	}
	return list, nil
}
