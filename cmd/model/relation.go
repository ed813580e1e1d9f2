package model

// Subscription 订阅关系实体
type Subscription struct {
	SubscriptionId int64  `json:"subscription_id" gorm:"primaryKey"`
	SubscriberId   int64  `json:"subscriber_id" gorm:"uniqueIndex:uk_subscriber_channel"`
	ChannelId      int64  `json:"channel_id" gorm:"uniqueIndex:uk_subscriber_channel;index"`
	CreatedAt      string `json:"created_at"`
}
