package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/utils"
)

// ToggleSubscription 订阅的翻转 与点赞同样的单事务先删后插路径
func ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (bool, *model.Subscription, error) {
	var created bool
	var edge *model.Subscription
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).Delete(&model.Subscription{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			created = false
			return nil
		}
		edge = &model.Subscription{
			SubscriptionId: utils.GenerateID(),
			SubscriberId:   subscriberId,
			ChannelId:      channelId,
			CreatedAt:      time.Now().Format(constants.DataFormate),
		}
		if err := tx.Create(edge).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	if !created {
		edge = nil
	}
	return created, edge, nil
}

// CreateSubscription 非翻转的创建路径 已订阅时由唯一索引拒绝
func CreateSubscription(ctx context.Context, subscriberId, channelId int64) (*model.Subscription, error) {
	edge := &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(edge).Error; err != nil {
		return nil, err
	}
	return edge, nil
}

func IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountSubscribedChannels(ctx context.Context, subscriberId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// 获得订阅某一频道的所有订阅边
func GetSubscribersByChannel(ctx context.Context, channelId int64) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// 获得某一用户订阅的所有频道边
func GetSubscriptionsBySubscriber(ctx context.Context, subscriberId int64) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
