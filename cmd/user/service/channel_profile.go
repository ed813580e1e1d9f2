package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/pkg/errno"
)

// ChannelProfile 频道主页视图 IsSubscribed相对于可选的观看者
type ChannelProfile struct {
	UserId               int64  `json:"user_id"`
	UserName             string `json:"user_name"`
	FullName             string `json:"full_name"`
	AvatarUrl            string `json:"avatar_url"`
	CoverImageUrl        string `json:"cover_image_url"`
	SubscribersCount     int64  `json:"subscribers_count"`
	ChannelsSubscribedTo int64  `json:"channels_subscribed_to"`
	IsSubscribed         bool   `json:"is_subscribed"`
}

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

// GetChannelProfile viewerId为-1时表示匿名访问
func (service *UserService) GetChannelProfile(userName string, viewerId int64) (*ChannelProfile, error) {
	user, err := db.GetUserByName(service.ctx, userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.UserNotExistErr
		}
		return nil, err
	}

	subscribers, err := db.CountSubscribers(service.ctx, user.UserId)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := db.CountSubscribedChannels(service.ctx, user.UserId)
	if err != nil {
		return nil, err
	}

	profile := &ChannelProfile{
		UserId:               user.UserId,
		UserName:             user.UserName,
		FullName:             user.FullName,
		AvatarUrl:            user.AvatarUrl,
		CoverImageUrl:        user.CoverImageUrl,
		SubscribersCount:     subscribers,
		ChannelsSubscribedTo: subscribedTo,
	}
	if viewerId > 0 {
		subscribed, err := db.IsSubscribed(service.ctx, viewerId, user.UserId)
		if err != nil {
			return nil, err
		}
		profile.IsSubscribed = subscribed
	}
	return profile, nil
}
